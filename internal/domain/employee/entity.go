package employee

import "time"

type EmploymentStatus string

const (
	StatusActive     EmploymentStatus = "active"
	StatusTerminated EmploymentStatus = "terminated"
)

// Employee is the scoping unit for "self" access: every standard-role
// request is restricted to the employee row linked to its login account.
type Employee struct {
	ID               int64
	UserID           int64
	Code             string
	FirstName        string
	LastName         string
	Email            string
	Phone            *string
	Address          *string
	DateOfBirth      *time.Time
	Department       string
	Designation      string
	ManagerID        *int64
	ProfilePicture   *string
	DateOfJoining    time.Time
	EmploymentStatus EmploymentStatus
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// Joined from users for responses
	AccountEmail *string
	AccountRole  *string
}

func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
