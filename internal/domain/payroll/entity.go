package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// Profile is one payroll version for an employee. Multiple rows per employee
// are allowed; the authoritative one is the latest by EffectiveFrom.
type Profile struct {
	ID                 int64
	EmployeeID         int64
	BasicSalary        decimal.Decimal
	HRA                decimal.Decimal
	TransportAllowance decimal.Decimal
	MedicalAllowance   decimal.Decimal
	OtherAllowances    decimal.Decimal
	PFDeduction        decimal.Decimal
	TaxDeduction       decimal.Decimal
	OtherDeductions    decimal.Decimal
	EffectiveFrom      time.Time
	CreatedAt          time.Time

	// Joined from employees for responses
	EmployeeName *string
	EmployeeCode *string
	Department   *string
	Designation  *string
}

// LeaveDeductionPerDay is the fixed rate charged per approved leave day when
// a slip is generated.
var LeaveDeductionPerDay = decimal.NewFromInt(100)

// Slip is the immutable monthly salary snapshot, unique per
// (employee, month, year). The allowance and deduction components other than
// the leave deduction are persisted as zero in the simplified scheme.
type Slip struct {
	ID                 int64
	EmployeeID         int64
	PayrollID          int64
	Month              int
	Year               int
	WorkingDays        int
	PresentDays        int
	LeavesTaken        int
	BasicSalary        decimal.Decimal
	HRA                decimal.Decimal
	TransportAllowance decimal.Decimal
	MedicalAllowance   decimal.Decimal
	OtherAllowances    decimal.Decimal
	PFDeduction        decimal.Decimal
	TaxDeduction       decimal.Decimal
	OtherDeductions    decimal.Decimal
	GrossSalary        decimal.Decimal
	NetSalary          decimal.Decimal
	CreatedAt          time.Time

	// Joined from employees for responses
	EmployeeName *string
	EmployeeCode *string
	Department   *string
	Designation  *string
}
