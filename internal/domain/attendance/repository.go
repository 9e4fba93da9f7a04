package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for attendance records. The
// (employee_id, attendance_date) pair is unique; Upsert and UpsertLeave rely
// on that constraint so repeated calls never duplicate rows.
type AttendanceRepository interface {
	// GetByEmployeeAndDate returns the day's record, or ErrRecordNotFound.
	GetByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) (Record, error)

	// Create inserts a new record.
	Create(ctx context.Context, rec Record) (Record, error)

	// Update rewrites the mutable fields of an existing record by ID.
	Update(ctx context.Context, rec Record) error

	// Upsert creates or fully overwrites the record for (employee, date).
	// Administrative marking only.
	Upsert(ctx context.Context, rec Record) error

	// UpsertLeave sets status=leave for (employee, date), creating the row if
	// absent and preserving any recorded times otherwise.
	UpsertLeave(ctx context.Context, employeeID int64, date time.Time) error

	// List returns records matching the filter, most recent date first.
	List(ctx context.Context, filter ListFilter) ([]Record, error)
}
