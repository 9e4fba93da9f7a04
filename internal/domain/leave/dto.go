package leave

import "github.com/hrmstack/hrms-backend-go/internal/pkg/validator"

type ApplyRequest struct {
	LeaveType string `json:"leaveType"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Reason    string `json:"reason,omitempty"`
}

func (r *ApplyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LeaveType) {
		errs = append(errs, validator.ValidationError{Field: "leaveType", Message: "leaveType is required"})
	} else if !Type(r.LeaveType).Valid() {
		errs = append(errs, validator.ValidationError{Field: "leaveType", Message: "leaveType must be one of paid, sick, casual"})
	}

	for _, f := range []struct {
		name  string
		value string
	}{{"startDate", r.StartDate}, {"endDate", r.EndDate}} {
		if validator.IsEmpty(f.value) {
			errs = append(errs, validator.ValidationError{Field: f.name, Message: f.name + " is required"})
		} else if _, ok := validator.IsValidDate(f.value); !ok {
			errs = append(errs, validator.ValidationError{Field: f.name, Message: f.name + " must be in YYYY-MM-DD format"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DecideRequest struct {
	Status        string  `json:"status"`
	AdminComments *string `json:"adminComments,omitempty"`
}

func (r *DecideRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Status, []string{string(StatusApproved), string(StatusRejected)}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be approved or rejected"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ListFilter narrows the request listing. EmployeeID is honored for elevated
// callers only; standard roles always see their own requests.
type ListFilter struct {
	Status     *RequestStatus
	EmployeeID *int64
}
