package attendance

import "context"

// AttendanceService defines business logic for attendance operations.
type AttendanceService interface {
	// CheckIn records the acting employee's arrival for today.
	CheckIn(ctx context.Context) (CheckInResponse, error)

	// CheckOut records departure and computes working hours.
	CheckOut(ctx context.Context) (CheckOutResponse, error)

	// Today returns the acting employee's record for the current date, or
	// nil when none exists yet.
	Today(ctx context.Context) (*Record, error)

	// Mark upserts a record for any employee; elevated roles only.
	Mark(ctx context.Context, req MarkRequest) error

	// List returns attendance records, self-scoped for standard roles.
	List(ctx context.Context, filter ListFilter) ([]Record, error)
}
