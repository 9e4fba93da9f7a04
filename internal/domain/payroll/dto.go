package payroll

import (
	"github.com/hrmstack/hrms-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateProfileRequest struct {
	EmployeeID         int64            `json:"employeeId"`
	BasicSalary        decimal.Decimal  `json:"basicSalary"`
	HRA                *decimal.Decimal `json:"hra,omitempty"`
	TransportAllowance *decimal.Decimal `json:"transportAllowance,omitempty"`
	MedicalAllowance   *decimal.Decimal `json:"medicalAllowance,omitempty"`
	OtherAllowances    *decimal.Decimal `json:"otherAllowances,omitempty"`
	PFDeduction        *decimal.Decimal `json:"pfDeduction,omitempty"`
	TaxDeduction       *decimal.Decimal `json:"taxDeduction,omitempty"`
	OtherDeductions    *decimal.Decimal `json:"otherDeductions,omitempty"`
	EffectiveFrom      string           `json:"effectiveFrom"`
}

func (r *CreateProfileRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "employeeId", Message: "employeeId is required"})
	}
	if r.BasicSalary.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, validator.ValidationError{Field: "basicSalary", Message: "basicSalary must be positive"})
	}
	if validator.IsEmpty(r.EffectiveFrom) {
		errs = append(errs, validator.ValidationError{Field: "effectiveFrom", Message: "effectiveFrom is required"})
	} else if _, ok := validator.IsValidDate(r.EffectiveFrom); !ok {
		errs = append(errs, validator.ValidationError{Field: "effectiveFrom", Message: "effectiveFrom must be in YYYY-MM-DD format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateProfileRequest struct {
	BasicSalary        decimal.Decimal  `json:"basicSalary"`
	HRA                *decimal.Decimal `json:"hra,omitempty"`
	TransportAllowance *decimal.Decimal `json:"transportAllowance,omitempty"`
	MedicalAllowance   *decimal.Decimal `json:"medicalAllowance,omitempty"`
	OtherAllowances    *decimal.Decimal `json:"otherAllowances,omitempty"`
	PFDeduction        *decimal.Decimal `json:"pfDeduction,omitempty"`
	TaxDeduction       *decimal.Decimal `json:"taxDeduction,omitempty"`
	OtherDeductions    *decimal.Decimal `json:"otherDeductions,omitempty"`
}

func (r *UpdateProfileRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.BasicSalary.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, validator.ValidationError{Field: "basicSalary", Message: "basicSalary must be positive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type GenerateSlipRequest struct {
	EmployeeID int64 `json:"employeeId"`
	Month      int   `json:"month"`
	Year       int   `json:"year"`
}

func (r *GenerateSlipRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "employeeId", Message: "employeeId is required"})
	}
	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "month must be between 1 and 12"})
	}
	if r.Year < 1900 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "year is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SlipFilter narrows slip listing; EmployeeID is only honored for elevated
// callers.
type SlipFilter struct {
	EmployeeID *int64
	Month      *int
	Year       *int
}

// MonthlySummary is the non-persisting current-month view of the latest
// profile with the leave deduction applied.
type MonthlySummary struct {
	Profile        Profile         `json:"profile"`
	LeavesTaken    int             `json:"leavesTaken"`
	LeaveDeduction decimal.Decimal `json:"leaveDeduction"`
	NetPayroll     decimal.Decimal `json:"netPayroll"`
	CurrentMonth   int             `json:"currentMonth"`
	CurrentYear    int             `json:"currentYear"`
}
