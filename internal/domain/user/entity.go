package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleHR       Role = "hr"
	RoleEmployee Role = "employee"
)

// Elevated reports whether the role may act on any employee's records.
func (r Role) Elevated() bool {
	return r == RoleAdmin || r == RoleHR
}

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleHR || r == RoleEmployee
}

// User is a login account. Each user is linked one-to-one to an Employee
// record through employees.user_id.
type User struct {
	ID           int64
	EmployeeCode string
	Email        string
	PasswordHash string
	Role         Role
	IsVerified   bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
