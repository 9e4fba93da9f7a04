package user

import "context"

// UserRepository - interface for the users table
type UserRepository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id int64) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	AdminExists(ctx context.Context) (bool, error)
	// LastEmployeeCode returns the most recently issued employee code, or
	// empty string when no user exists yet.
	LastEmployeeCode(ctx context.Context) (string, error)
}
