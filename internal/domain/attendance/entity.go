package attendance

import "time"

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusHalfDay Status = "half_day"
	StatusLeave   Status = "leave"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusHalfDay, StatusLeave:
		return true
	}
	return false
}

// Record is one attendance row, unique per (employee, calendar date).
// WorkingHours stays nil until check-out, then holds (out - in) in hours
// rounded to 2 decimals.
type Record struct {
	ID           int64
	EmployeeID   int64
	Date         time.Time
	Status       Status
	CheckInTime  *time.Time
	CheckOutTime *time.Time
	WorkingHours *float64
	Remarks      *string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined from employees for responses
	EmployeeName *string
	EmployeeCode *string
}
