package leave

import "errors"

var (
	ErrRequestNotFound = errors.New("leave request not found")
	ErrAlreadyDecided  = errors.New("leave request has already been approved or rejected")
	ErrNotPending      = errors.New("can only cancel pending leave requests")
)
