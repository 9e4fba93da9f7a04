package user

import "errors"

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrEmailExists            = errors.New("user with this email already exists")
	ErrAdminAlreadyExists     = errors.New("an admin already exists in the system")
	ErrAdminPrivilegeRequired = errors.New("admin or HR privileges required")
)
