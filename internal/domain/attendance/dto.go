package attendance

import (
	"time"

	"github.com/hrmstack/hrms-backend-go/internal/pkg/validator"
)

// MarkRequest is the administrative override: it upserts the day's record
// with whatever is given, regardless of prior state.
type MarkRequest struct {
	EmployeeID   int64   `json:"employeeId"`
	Date         string  `json:"date"`
	Status       string  `json:"status"`
	CheckInTime  *string `json:"checkInTime,omitempty"`
	CheckOutTime *string `json:"checkOutTime,omitempty"`
	Remarks      *string `json:"remarks,omitempty"`
}

func (r *MarkRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "employeeId", Message: "employeeId is required"})
	}
	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date is required"})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD format"})
	}
	if validator.IsEmpty(r.Status) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status is required"})
	} else if !Status(r.Status).Valid() {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be one of present, absent, half_day, leave"})
	}
	for _, f := range []struct {
		name  string
		value *string
	}{{"checkInTime", r.CheckInTime}, {"checkOutTime", r.CheckOutTime}} {
		if f.value == nil || *f.value == "" {
			continue
		}
		if _, ok := validator.IsValidDateTime(*f.value); !ok {
			errs = append(errs, validator.ValidationError{Field: f.name, Message: f.name + " must be an ISO8601 timestamp"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ListFilter narrows the attendance listing. EmployeeID is ignored for
// standard-role callers, who always see their own records.
type ListFilter struct {
	EmployeeID *int64
	StartDate  *time.Time
	EndDate    *time.Time
}

type CheckInResponse struct {
	CheckInTime time.Time `json:"checkInTime"`
}

type CheckOutResponse struct {
	CheckOutTime time.Time `json:"checkOutTime"`
	WorkingHours float64   `json:"workingHours"`
}
