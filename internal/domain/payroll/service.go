package payroll

import "context"

type PayrollService interface {
	// CreateProfile adds a new payroll version; elevated roles only.
	CreateProfile(ctx context.Context, req CreateProfileRequest) (Profile, error)
	// UpdateProfile edits an existing version in place; elevated roles only.
	UpdateProfile(ctx context.Context, id int64, req UpdateProfileRequest) error
	// ListProfiles returns payroll versions newest first, self-scoped for
	// standard roles.
	ListProfiles(ctx context.Context, employeeID *int64) ([]Profile, error)

	// GenerateSlip derives and persists the monthly slip; elevated roles
	// only. Fails when a slip for the period exists or the employee has no
	// profile.
	GenerateSlip(ctx context.Context, req GenerateSlipRequest) (Slip, error)
	// ListSlips returns slips newest period first, self-scoped for standard
	// roles.
	ListSlips(ctx context.Context, filter SlipFilter) ([]Slip, error)

	// MonthlySummary computes the current-month deduction view without
	// persisting anything; returns nil when the employee has no profile.
	MonthlySummary(ctx context.Context, employeeID *int64) (*MonthlySummary, error)
}
