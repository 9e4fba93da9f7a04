package payroll

import (
	"context"
	"time"
)

// PayrollRepository - interface for the payroll and salary_slips tables plus
// the aggregations slip generation needs.
type PayrollRepository interface {
	// Profiles
	CreateProfile(ctx context.Context, p Profile) (Profile, error)
	UpdateProfile(ctx context.Context, id int64, req UpdateProfileRequest) error
	ListProfiles(ctx context.Context, employeeID *int64) ([]Profile, error)
	// GetLatestProfile selects the profile with the maximum effective_from
	// date, or ErrNoProfile.
	GetLatestProfile(ctx context.Context, employeeID int64) (Profile, error)

	// Slips
	SlipExists(ctx context.Context, employeeID int64, month, year int) (bool, error)
	CreateSlip(ctx context.Context, s Slip) (Slip, error)
	ListSlips(ctx context.Context, filter SlipFilter) ([]Slip, error)

	// Aggregations over the attendance register and leave requests.
	// CountPresentDays counts rows in [from, to] with status present or
	// half_day.
	CountPresentDays(ctx context.Context, employeeID int64, from, to time.Time) (int, error)
	// SumApprovedLeaveDays sums total_days over approved requests whose
	// start or end date falls inside [from, to]. A request spanning the
	// whole window with both endpoints outside it is not counted; the
	// boundary test is kept as-is for compatibility with historical slips.
	SumApprovedLeaveDays(ctx context.Context, employeeID int64, from, to time.Time) (int, error)
}
