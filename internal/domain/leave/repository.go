package leave

import (
	"context"
	"time"
)

// BalanceRepository - interface for the leave_balance table
type BalanceRepository interface {
	// GetByEmployeeYear returns every balance row for the (employee, year)
	// pair, ordered by leave type.
	GetByEmployeeYear(ctx context.Context, employeeID int64, year int) ([]Balance, error)

	// CreateDefaults inserts one row per known leave type with the default
	// allotment for the year.
	CreateDefaults(ctx context.Context, employeeID int64, year int) error

	// ApplyUsage atomically adds days to used_leaves and subtracts them from
	// remaining_leaves for the matching row. No clamping.
	ApplyUsage(ctx context.Context, employeeID int64, leaveType Type, year int, days int) error
}

// RequestRepository - interface for the leave_requests table
type RequestRepository interface {
	Create(ctx context.Context, req Request) (Request, error)
	GetByID(ctx context.Context, id int64) (Request, error)
	List(ctx context.Context, filter ListFilter) ([]Request, error)
	// RecordDecision stamps status, approver, approval time and comments on a
	// still-pending request; returns ErrAlreadyDecided otherwise.
	RecordDecision(ctx context.Context, id int64, status RequestStatus, approvedBy int64, approvedAt time.Time, comments *string) error
	Delete(ctx context.Context, id int64) error
}
