package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hrmstack/hrms-backend-go/internal/domain/attendance"
	"github.com/hrmstack/hrms-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceColumns = `
	a.id, a.employee_id, a.attendance_date, a.status,
	a.check_in_time, a.check_out_time, a.working_hours, a.remarks,
	a.created_at, a.updated_at
`

func (r *attendanceRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance a
		WHERE a.employee_id = $1 AND a.attendance_date = $2
	`

	var rec attendance.Record
	err := q.QueryRow(ctx, query, employeeID, date).Scan(
		&rec.ID, &rec.EmployeeID, &rec.Date, &rec.Status,
		&rec.CheckInTime, &rec.CheckOutTime, &rec.WorkingHours, &rec.Remarks,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Record{}, attendance.ErrRecordNotFound
		}
		return attendance.Record{}, err
	}

	return rec, nil
}

func (r *attendanceRepositoryImpl) Create(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance (
			employee_id, attendance_date, status,
			check_in_time, check_out_time, working_hours, remarks,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rec.EmployeeID, rec.Date, rec.Status,
		rec.CheckInTime, rec.CheckOutTime, rec.WorkingHours, rec.Remarks,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return attendance.Record{}, err
	}

	return rec, nil
}

func (r *attendanceRepositoryImpl) Update(ctx context.Context, rec attendance.Record) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance
		SET status = $1, check_in_time = $2, check_out_time = $3,
			working_hours = $4, remarks = $5, updated_at = NOW()
		WHERE id = $6
	`

	tag, err := q.Exec(ctx, query,
		rec.Status, rec.CheckInTime, rec.CheckOutTime,
		rec.WorkingHours, rec.Remarks, rec.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrRecordNotFound
	}
	return nil
}

func (r *attendanceRepositoryImpl) Upsert(ctx context.Context, rec attendance.Record) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance (
			employee_id, attendance_date, status,
			check_in_time, check_out_time, working_hours, remarks,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		ON CONFLICT (employee_id, attendance_date) DO UPDATE SET
			status = EXCLUDED.status,
			check_in_time = EXCLUDED.check_in_time,
			check_out_time = EXCLUDED.check_out_time,
			working_hours = EXCLUDED.working_hours,
			remarks = EXCLUDED.remarks,
			updated_at = NOW()
	`

	_, err := q.Exec(ctx, query,
		rec.EmployeeID, rec.Date, rec.Status,
		rec.CheckInTime, rec.CheckOutTime, rec.WorkingHours, rec.Remarks,
	)
	return err
}

func (r *attendanceRepositoryImpl) UpsertLeave(ctx context.Context, employeeID int64, date time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance (employee_id, attendance_date, status, created_at, updated_at)
		VALUES ($1, $2, 'leave', NOW(), NOW())
		ON CONFLICT (employee_id, attendance_date) DO UPDATE SET
			status = 'leave',
			updated_at = NOW()
	`

	_, err := q.Exec(ctx, query, employeeID, date)
	return err
}

func (r *attendanceRepositoryImpl) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	conditions := make([]string, 0)
	args := make([]interface{}, 0)
	argIdx := 1

	if filter.EmployeeID != nil {
		conditions = append(conditions, fmt.Sprintf("a.employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.StartDate != nil {
		conditions = append(conditions, fmt.Sprintf("a.attendance_date >= $%d", argIdx))
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil {
		conditions = append(conditions, fmt.Sprintf("a.attendance_date <= $%d", argIdx))
		args = append(args, *filter.EndDate)
		argIdx++
	}

	query := `
		SELECT ` + attendanceColumns + `,
			e.first_name || ' ' || e.last_name AS employee_name,
			e.employee_code
		FROM attendance a
		JOIN employees e ON a.employee_id = e.id
	`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY a.attendance_date DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]attendance.Record, 0)
	for rows.Next() {
		var rec attendance.Record
		err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.Date, &rec.Status,
			&rec.CheckInTime, &rec.CheckOutTime, &rec.WorkingHours, &rec.Remarks,
			&rec.CreatedAt, &rec.UpdatedAt,
			&rec.EmployeeName, &rec.EmployeeCode,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}
