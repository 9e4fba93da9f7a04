package employee

import "github.com/hrmstack/hrms-backend-go/internal/pkg/validator"

// SelfUpdateRequest is the field set a standard-role employee may change on
// their own record. Organizational fields are deliberately absent.
type SelfUpdateRequest struct {
	Phone          *string `json:"phone,omitempty"`
	Address        *string `json:"address,omitempty"`
	ProfilePicture *string `json:"profilePicture,omitempty"`
}

func (r *SelfUpdateRequest) Empty() bool {
	return r.Phone == nil && r.Address == nil && r.ProfilePicture == nil
}

// AdminUpdateRequest is the full field set available to admin/HR.
type AdminUpdateRequest struct {
	FirstName      *string `json:"firstName,omitempty"`
	LastName       *string `json:"lastName,omitempty"`
	Phone          *string `json:"phone,omitempty"`
	Address        *string `json:"address,omitempty"`
	DateOfBirth    *string `json:"dateOfBirth,omitempty"`
	Department     *string `json:"department,omitempty"`
	Designation    *string `json:"designation,omitempty"`
	ManagerID      *int64  `json:"managerId,omitempty"`
	ProfilePicture *string `json:"profilePicture,omitempty"`
}

func (r *AdminUpdateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FirstName != nil && validator.IsEmpty(*r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "firstName", Message: "firstName must not be empty"})
	}
	if r.LastName != nil && validator.IsEmpty(*r.LastName) {
		errs = append(errs, validator.ValidationError{Field: "lastName", Message: "lastName must not be empty"})
	}
	if r.DateOfBirth != nil && *r.DateOfBirth != "" {
		if _, ok := validator.IsValidDate(*r.DateOfBirth); !ok {
			errs = append(errs, validator.ValidationError{Field: "dateOfBirth", Message: "dateOfBirth must be in YYYY-MM-DD format"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
