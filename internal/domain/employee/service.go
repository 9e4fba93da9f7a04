package employee

import "context"

type EmployeeService interface {
	// List returns active employees; elevated roles only.
	List(ctx context.Context) ([]Employee, error)
	// Get returns a single employee; standard roles may only fetch their own
	// linked record.
	Get(ctx context.Context, id int64) (Employee, error)
	// Me returns the acting user's own employee profile.
	Me(ctx context.Context) (Employee, error)
	// UpdateSelf applies the narrow self-service field set to the caller's
	// own record.
	UpdateSelf(ctx context.Context, id int64, req SelfUpdateRequest) error
	// UpdateAdmin applies the full field set; elevated roles only.
	UpdateAdmin(ctx context.Context, id int64, req AdminUpdateRequest) error
	// Deactivate marks the employee terminated; elevated roles only.
	Deactivate(ctx context.Context, id int64) error
}
