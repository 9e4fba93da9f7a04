package response

import (
	"errors"
	"net/http"

	"github.com/hrmstack/hrms-backend-go/internal/domain/attendance"
	"github.com/hrmstack/hrms-backend-go/internal/domain/auth"
	"github.com/hrmstack/hrms-backend-go/internal/domain/employee"
	"github.com/hrmstack/hrms-backend-go/internal/domain/leave"
	"github.com/hrmstack/hrms-backend-go/internal/domain/payroll"
	"github.com/hrmstack/hrms-backend-go/internal/domain/user"
	"github.com/hrmstack/hrms-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrUnauthorized):
		Unauthorized(w, "Authentication required")
	case errors.Is(err, auth.ErrForbidden):
		Forbidden(w, "Access denied")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "User with this email already exists")
	case errors.Is(err, user.ErrAdminAlreadyExists):
		Conflict(w, "An admin account already exists")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin or HR privileges required")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrProfileNotFound):
		NotFound(w, "Employee profile not found")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		BadRequest(w, "Already checked in today", nil)
	case errors.Is(err, attendance.ErrNotCheckedIn):
		BadRequest(w, "Please check in first", nil)
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		BadRequest(w, "Already checked out today", nil)
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrAlreadyDecided):
		Conflict(w, "Leave request has already been processed")
	case errors.Is(err, leave.ErrNotPending):
		BadRequest(w, "Only pending leave requests can be cancelled", nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrNoProfile):
		NotFound(w, "No payroll information found for this employee")
	case errors.Is(err, payroll.ErrProfileNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrSlipAlreadyExists):
		Conflict(w, "Salary slip already exists for this period")

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
