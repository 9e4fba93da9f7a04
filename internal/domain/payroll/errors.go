package payroll

import "errors"

var (
	ErrNoProfile         = errors.New("no payroll information found for this employee")
	ErrSlipAlreadyExists = errors.New("salary slip already exists for this period")
	ErrProfileNotFound   = errors.New("payroll record not found")
)
