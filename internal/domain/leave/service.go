package leave

import "context"

type LeaveService interface {
	// Apply submits a pending request for the acting employee. No balance
	// check happens here; the ledger is only reconciled at approval.
	Apply(ctx context.Context, req ApplyRequest) (Request, error)

	// Decide approves or rejects a pending request; elevated roles only.
	// Approval applies ledger usage and marks the attendance range as leave,
	// all in one transaction.
	Decide(ctx context.Context, requestID int64, req DecideRequest) error

	// Cancel deletes a pending request; owner or elevated roles.
	Cancel(ctx context.Context, requestID int64) error

	// List returns requests newest first, self-scoped for standard roles.
	List(ctx context.Context, filter ListFilter) ([]Request, error)

	// GetBalance returns the acting employee's ledger rows for the current
	// year, creating them with the default allotment when absent.
	GetBalance(ctx context.Context) ([]Balance, error)
}
