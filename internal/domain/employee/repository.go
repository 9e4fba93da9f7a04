package employee

import "context"

// EmployeeRepository - interface for the employees table
type EmployeeRepository interface {
	Create(ctx context.Context, e Employee) (Employee, error)
	GetByID(ctx context.Context, id int64) (Employee, error)
	GetByUserID(ctx context.Context, userID int64) (Employee, error)
	ListActive(ctx context.Context) ([]Employee, error)
	UpdateSelf(ctx context.Context, id int64, req SelfUpdateRequest) error
	UpdateAdmin(ctx context.Context, id int64, req AdminUpdateRequest) error
	Deactivate(ctx context.Context, id int64) error
}
