package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hrmstack/hrms-backend-go/internal/domain/payroll"
	"github.com/hrmstack/hrms-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepositoryImpl{db: db}
}

const profileColumns = `
	p.id, p.employee_id, p.basic_salary, p.hra, p.transport_allowance,
	p.medical_allowance, p.other_allowances, p.pf_deduction, p.tax_deduction,
	p.other_deductions, p.effective_from, p.created_at
`

const profileJoinedColumns = profileColumns + `,
	e.first_name || ' ' || e.last_name AS employee_name,
	e.employee_code, e.department, e.designation
`

func (r *payrollRepositoryImpl) CreateProfile(ctx context.Context, p payroll.Profile) (payroll.Profile, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll (
			employee_id, basic_salary, hra, transport_allowance,
			medical_allowance, other_allowances, pf_deduction, tax_deduction,
			other_deductions, effective_from, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		p.EmployeeID, p.BasicSalary, p.HRA, p.TransportAllowance,
		p.MedicalAllowance, p.OtherAllowances, p.PFDeduction, p.TaxDeduction,
		p.OtherDeductions, p.EffectiveFrom,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return payroll.Profile{}, err
	}

	return p, nil
}

func (r *payrollRepositoryImpl) UpdateProfile(ctx context.Context, id int64, req payroll.UpdateProfileRequest) error {
	q := GetQuerier(ctx, r.db)

	updates := []string{"basic_salary = $1"}
	args := []interface{}{req.BasicSalary}
	argIdx := 2

	optional := []struct {
		column string
		value  interface{}
		set    bool
	}{
		{"hra", req.HRA, req.HRA != nil},
		{"transport_allowance", req.TransportAllowance, req.TransportAllowance != nil},
		{"medical_allowance", req.MedicalAllowance, req.MedicalAllowance != nil},
		{"other_allowances", req.OtherAllowances, req.OtherAllowances != nil},
		{"pf_deduction", req.PFDeduction, req.PFDeduction != nil},
		{"tax_deduction", req.TaxDeduction, req.TaxDeduction != nil},
		{"other_deductions", req.OtherDeductions, req.OtherDeductions != nil},
	}
	for _, f := range optional {
		if !f.set {
			continue
		}
		updates = append(updates, fmt.Sprintf("%s = $%d", f.column, argIdx))
		args = append(args, f.value)
		argIdx++
	}

	args = append(args, id)
	sql := "UPDATE payroll SET " + strings.Join(updates, ", ") + fmt.Sprintf(" WHERE id = $%d", argIdx)

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrProfileNotFound
	}
	return nil
}

func (r *payrollRepositoryImpl) ListProfiles(ctx context.Context, employeeID *int64) ([]payroll.Profile, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + profileJoinedColumns + `
		FROM payroll p
		JOIN employees e ON p.employee_id = e.id
	`
	args := make([]interface{}, 0)
	if employeeID != nil {
		query += " WHERE p.employee_id = $1"
		args = append(args, *employeeID)
	}
	query += " ORDER BY p.effective_from DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	profiles := make([]payroll.Profile, 0)
	for rows.Next() {
		var p payroll.Profile
		err := rows.Scan(
			&p.ID, &p.EmployeeID, &p.BasicSalary, &p.HRA, &p.TransportAllowance,
			&p.MedicalAllowance, &p.OtherAllowances, &p.PFDeduction, &p.TaxDeduction,
			&p.OtherDeductions, &p.EffectiveFrom, &p.CreatedAt,
			&p.EmployeeName, &p.EmployeeCode, &p.Department, &p.Designation,
		)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}

	return profiles, rows.Err()
}

func (r *payrollRepositoryImpl) GetLatestProfile(ctx context.Context, employeeID int64) (payroll.Profile, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + profileColumns + `
		FROM payroll p
		WHERE p.employee_id = $1
		ORDER BY p.effective_from DESC
		LIMIT 1
	`

	var p payroll.Profile
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&p.ID, &p.EmployeeID, &p.BasicSalary, &p.HRA, &p.TransportAllowance,
		&p.MedicalAllowance, &p.OtherAllowances, &p.PFDeduction, &p.TaxDeduction,
		&p.OtherDeductions, &p.EffectiveFrom, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Profile{}, payroll.ErrNoProfile
		}
		return payroll.Profile{}, err
	}

	return p, nil
}

func (r *payrollRepositoryImpl) SlipExists(ctx context.Context, employeeID int64, month, year int) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM salary_slips WHERE employee_id = $1 AND month = $2 AND year = $3)`,
		employeeID, month, year,
	).Scan(&exists)
	return exists, err
}

func (r *payrollRepositoryImpl) CreateSlip(ctx context.Context, s payroll.Slip) (payroll.Slip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO salary_slips (
			employee_id, payroll_id, month, year,
			working_days, present_days, leaves_taken,
			basic_salary, hra, transport_allowance, medical_allowance,
			other_allowances, pf_deduction, tax_deduction, other_deductions,
			gross_salary, net_salary, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, NOW())
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		s.EmployeeID, s.PayrollID, s.Month, s.Year,
		s.WorkingDays, s.PresentDays, s.LeavesTaken,
		s.BasicSalary, s.HRA, s.TransportAllowance, s.MedicalAllowance,
		s.OtherAllowances, s.PFDeduction, s.TaxDeduction, s.OtherDeductions,
		s.GrossSalary, s.NetSalary,
	).Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		return payroll.Slip{}, err
	}

	return s, nil
}

func (r *payrollRepositoryImpl) ListSlips(ctx context.Context, filter payroll.SlipFilter) ([]payroll.Slip, error) {
	q := GetQuerier(ctx, r.db)

	conditions := make([]string, 0)
	args := make([]interface{}, 0)
	argIdx := 1

	if filter.EmployeeID != nil {
		conditions = append(conditions, fmt.Sprintf("s.employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Month != nil {
		conditions = append(conditions, fmt.Sprintf("s.month = $%d", argIdx))
		args = append(args, *filter.Month)
		argIdx++
	}
	if filter.Year != nil {
		conditions = append(conditions, fmt.Sprintf("s.year = $%d", argIdx))
		args = append(args, *filter.Year)
		argIdx++
	}

	query := `
		SELECT s.id, s.employee_id, s.payroll_id, s.month, s.year,
			s.working_days, s.present_days, s.leaves_taken,
			s.basic_salary, s.hra, s.transport_allowance, s.medical_allowance,
			s.other_allowances, s.pf_deduction, s.tax_deduction, s.other_deductions,
			s.gross_salary, s.net_salary, s.created_at,
			e.first_name || ' ' || e.last_name AS employee_name,
			e.employee_code, e.department, e.designation
		FROM salary_slips s
		JOIN employees e ON s.employee_id = e.id
	`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY s.year DESC, s.month DESC LIMIT 50"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	slips := make([]payroll.Slip, 0)
	for rows.Next() {
		var s payroll.Slip
		err := rows.Scan(
			&s.ID, &s.EmployeeID, &s.PayrollID, &s.Month, &s.Year,
			&s.WorkingDays, &s.PresentDays, &s.LeavesTaken,
			&s.BasicSalary, &s.HRA, &s.TransportAllowance, &s.MedicalAllowance,
			&s.OtherAllowances, &s.PFDeduction, &s.TaxDeduction, &s.OtherDeductions,
			&s.GrossSalary, &s.NetSalary, &s.CreatedAt,
			&s.EmployeeName, &s.EmployeeCode, &s.Department, &s.Designation,
		)
		if err != nil {
			return nil, err
		}
		slips = append(slips, s)
	}

	return slips, rows.Err()
}

func (r *payrollRepositoryImpl) CountPresentDays(ctx context.Context, employeeID int64, from, to time.Time) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM attendance
		WHERE employee_id = $1
			AND attendance_date BETWEEN $2 AND $3
			AND status IN ('present', 'half_day')
	`, employeeID, from, to).Scan(&count)
	return count, err
}

func (r *payrollRepositoryImpl) SumApprovedLeaveDays(ctx context.Context, employeeID int64, from, to time.Time) (int, error) {
	q := GetQuerier(ctx, r.db)

	var total int
	err := q.QueryRow(ctx, `
		SELECT COALESCE(SUM(total_days), 0)
		FROM leave_requests
		WHERE employee_id = $1
			AND status = 'approved'
			AND (start_date BETWEEN $2 AND $3 OR end_date BETWEEN $2 AND $3)
	`, employeeID, from, to).Scan(&total)
	return total, err
}
