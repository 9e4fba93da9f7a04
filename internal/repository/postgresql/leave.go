package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hrmstack/hrms-backend-go/internal/domain/leave"
	"github.com/hrmstack/hrms-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveBalanceRepositoryImpl struct {
	db *database.DB
}

func NewLeaveBalanceRepository(db *database.DB) leave.BalanceRepository {
	return &leaveBalanceRepositoryImpl{db: db}
}

func (r *leaveBalanceRepositoryImpl) GetByEmployeeYear(ctx context.Context, employeeID int64, year int) ([]leave.Balance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, leave_type, year,
			total_leaves, used_leaves, remaining_leaves,
			created_at, updated_at
		FROM leave_balance
		WHERE employee_id = $1 AND year = $2
		ORDER BY leave_type
	`

	rows, err := q.Query(ctx, query, employeeID, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	balances := make([]leave.Balance, 0)
	for rows.Next() {
		var b leave.Balance
		err := rows.Scan(
			&b.ID, &b.EmployeeID, &b.LeaveType, &b.Year,
			&b.TotalLeaves, &b.UsedLeaves, &b.RemainingLeaves,
			&b.CreatedAt, &b.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		balances = append(balances, b)
	}

	return balances, rows.Err()
}

func (r *leaveBalanceRepositoryImpl) CreateDefaults(ctx context.Context, employeeID int64, year int) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_balance (
			employee_id, leave_type, year,
			total_leaves, used_leaves, remaining_leaves,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, 0, $4, NOW(), NOW())
		ON CONFLICT (employee_id, leave_type, year) DO NOTHING
	`

	for _, t := range leave.Types() {
		if _, err := q.Exec(ctx, query, employeeID, t, year, leave.DefaultAnnualAllotment); err != nil {
			return err
		}
	}
	return nil
}

func (r *leaveBalanceRepositoryImpl) ApplyUsage(ctx context.Context, employeeID int64, leaveType leave.Type, year int, days int) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_balance
		SET used_leaves = used_leaves + $1,
			remaining_leaves = remaining_leaves - $1,
			updated_at = NOW()
		WHERE employee_id = $2 AND leave_type = $3 AND year = $4
	`

	_, err := q.Exec(ctx, query, days, employeeID, leaveType, year)
	return err
}

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.RequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

const leaveRequestColumns = `
	lr.id, lr.employee_id, lr.leave_type, lr.start_date, lr.end_date,
	lr.total_days, lr.reason, lr.status, lr.approved_by, lr.approved_at,
	lr.admin_comments, lr.created_at
`

func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, req leave.Request) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (
			employee_id, leave_type, start_date, end_date,
			total_days, reason, status, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		req.EmployeeID, req.LeaveType, req.StartDate, req.EndDate,
		req.TotalDays, req.Reason, req.Status,
	).Scan(&req.ID, &req.CreatedAt)
	if err != nil {
		return leave.Request{}, err
	}

	return req, nil
}

func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id int64) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveRequestColumns + `,
			e.first_name || ' ' || e.last_name AS employee_name,
			e.employee_code,
			u.email AS approver_email
		FROM leave_requests lr
		JOIN employees e ON lr.employee_id = e.id
		LEFT JOIN users u ON lr.approved_by = u.id
		WHERE lr.id = $1
	`

	var req leave.Request
	err := q.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.EmployeeID, &req.LeaveType, &req.StartDate, &req.EndDate,
		&req.TotalDays, &req.Reason, &req.Status, &req.ApprovedBy, &req.ApprovedAt,
		&req.AdminComments, &req.CreatedAt,
		&req.EmployeeName, &req.EmployeeCode, &req.ApproverEmail,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Request{}, leave.ErrRequestNotFound
		}
		return leave.Request{}, err
	}

	return req, nil
}

func (r *leaveRequestRepositoryImpl) List(ctx context.Context, filter leave.ListFilter) ([]leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	conditions := make([]string, 0)
	args := make([]interface{}, 0)
	argIdx := 1

	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("lr.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.EmployeeID != nil {
		conditions = append(conditions, fmt.Sprintf("lr.employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}

	query := `
		SELECT ` + leaveRequestColumns + `,
			e.first_name || ' ' || e.last_name AS employee_name,
			e.employee_code,
			u.email AS approver_email
		FROM leave_requests lr
		JOIN employees e ON lr.employee_id = e.id
		LEFT JOIN users u ON lr.approved_by = u.id
	`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY lr.created_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := make([]leave.Request, 0)
	for rows.Next() {
		var req leave.Request
		err := rows.Scan(
			&req.ID, &req.EmployeeID, &req.LeaveType, &req.StartDate, &req.EndDate,
			&req.TotalDays, &req.Reason, &req.Status, &req.ApprovedBy, &req.ApprovedAt,
			&req.AdminComments, &req.CreatedAt,
			&req.EmployeeName, &req.EmployeeCode, &req.ApproverEmail,
		)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}

	return requests, rows.Err()
}

func (r *leaveRequestRepositoryImpl) RecordDecision(ctx context.Context, id int64, status leave.RequestStatus, approvedBy int64, approvedAt time.Time, comments *string) error {
	q := GetQuerier(ctx, r.db)

	// The status guard makes the transition atomic: of two concurrent
	// decisions, only one row update wins.
	query := `
		UPDATE leave_requests
		SET status = $1, approved_by = $2, approved_at = $3, admin_comments = $4
		WHERE id = $5 AND status = 'pending'
	`

	tag, err := q.Exec(ctx, query, status, approvedBy, approvedAt, comments, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrAlreadyDecided
	}
	return nil
}

func (r *leaveRequestRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM leave_requests WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrRequestNotFound
	}
	return nil
}
