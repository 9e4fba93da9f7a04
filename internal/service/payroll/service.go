package payroll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hrmstack/hrms-backend-go/internal/domain/auth"
	"github.com/hrmstack/hrms-backend-go/internal/domain/payroll"
	"github.com/hrmstack/hrms-backend-go/internal/pkg/clock"
	"github.com/hrmstack/hrms-backend-go/internal/pkg/database"
	"github.com/hrmstack/hrms-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type PayrollServiceImpl struct {
	payroll.PayrollRepository
	tx    database.TxRunner
	clock clock.Clock
}

func NewPayrollService(payrollRepository payroll.PayrollRepository, tx database.TxRunner, clk clock.Clock) payroll.PayrollService {
	return &PayrollServiceImpl{
		PayrollRepository: payrollRepository,
		tx:                tx,
		clock:             clk,
	}
}

func orZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

// monthBounds returns the first and last calendar day of the month.
func monthBounds(month, year int) (time.Time, time.Time) {
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)
	return from, to
}

// CreateProfile implements payroll.PayrollService.
func (s *PayrollServiceImpl) CreateProfile(ctx context.Context, req payroll.CreateProfileRequest) (payroll.Profile, error) {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return payroll.Profile{}, err
	}
	if !actor.Elevated() {
		return payroll.Profile{}, auth.ErrForbidden
	}

	effectiveFrom, _ := validator.IsValidDate(req.EffectiveFrom)

	created, err := s.PayrollRepository.CreateProfile(ctx, payroll.Profile{
		EmployeeID:         req.EmployeeID,
		BasicSalary:        req.BasicSalary,
		HRA:                orZero(req.HRA),
		TransportAllowance: orZero(req.TransportAllowance),
		MedicalAllowance:   orZero(req.MedicalAllowance),
		OtherAllowances:    orZero(req.OtherAllowances),
		PFDeduction:        orZero(req.PFDeduction),
		TaxDeduction:       orZero(req.TaxDeduction),
		OtherDeductions:    orZero(req.OtherDeductions),
		EffectiveFrom:      effectiveFrom,
	})
	if err != nil {
		return payroll.Profile{}, fmt.Errorf("failed to create payroll profile: %w", err)
	}
	return created, nil
}

// UpdateProfile implements payroll.PayrollService.
func (s *PayrollServiceImpl) UpdateProfile(ctx context.Context, id int64, req payroll.UpdateProfileRequest) error {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return err
	}
	if !actor.Elevated() {
		return auth.ErrForbidden
	}

	return s.PayrollRepository.UpdateProfile(ctx, id, req)
}

// ListProfiles implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListProfiles(ctx context.Context, employeeID *int64) ([]payroll.Profile, error) {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !actor.Elevated() {
		id := actor.EmployeeID
		employeeID = &id
	}

	profiles, err := s.PayrollRepository.ListProfiles(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll profiles: %w", err)
	}
	return profiles, nil
}

// GenerateSlip implements payroll.PayrollService. The slip snapshots the
// latest profile with a flat per-day deduction for approved leave; the other
// allowance and deduction components are persisted as zero.
func (s *PayrollServiceImpl) GenerateSlip(ctx context.Context, req payroll.GenerateSlipRequest) (payroll.Slip, error) {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return payroll.Slip{}, err
	}
	if !actor.Elevated() {
		return payroll.Slip{}, auth.ErrForbidden
	}

	var slip payroll.Slip
	err = s.tx(ctx, func(txCtx context.Context) error {
		exists, err := s.PayrollRepository.SlipExists(txCtx, req.EmployeeID, req.Month, req.Year)
		if err != nil {
			return fmt.Errorf("failed to check slip existence: %w", err)
		}
		if exists {
			return payroll.ErrSlipAlreadyExists
		}

		profile, err := s.PayrollRepository.GetLatestProfile(txCtx, req.EmployeeID)
		if err != nil {
			return err
		}

		from, to := monthBounds(req.Month, req.Year)
		workingDays := to.Day()

		presentDays, err := s.PayrollRepository.CountPresentDays(txCtx, req.EmployeeID, from, to)
		if err != nil {
			return fmt.Errorf("failed to count present days: %w", err)
		}
		leavesTaken, err := s.PayrollRepository.SumApprovedLeaveDays(txCtx, req.EmployeeID, from, to)
		if err != nil {
			return fmt.Errorf("failed to sum leave days: %w", err)
		}

		leaveDeduction := payroll.LeaveDeductionPerDay.Mul(decimal.NewFromInt(int64(leavesTaken)))
		net := profile.BasicSalary.Sub(leaveDeduction)
		if net.IsNegative() {
			net = decimal.Zero
		}

		slip, err = s.PayrollRepository.CreateSlip(txCtx, payroll.Slip{
			EmployeeID:      req.EmployeeID,
			PayrollID:       profile.ID,
			Month:           req.Month,
			Year:            req.Year,
			WorkingDays:     workingDays,
			PresentDays:     presentDays,
			LeavesTaken:     leavesTaken,
			BasicSalary:     profile.BasicSalary,
			OtherDeductions: leaveDeduction,
			GrossSalary:     profile.BasicSalary,
			NetSalary:       net,
		})
		if err != nil {
			return fmt.Errorf("failed to create salary slip: %w", err)
		}
		return nil
	})
	if err != nil {
		return payroll.Slip{}, err
	}
	return slip, nil
}

// ListSlips implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListSlips(ctx context.Context, filter payroll.SlipFilter) ([]payroll.Slip, error) {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !actor.Elevated() {
		id := actor.EmployeeID
		filter.EmployeeID = &id
	}

	slips, err := s.PayrollRepository.ListSlips(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary slips: %w", err)
	}
	return slips, nil
}

// MonthlySummary implements payroll.PayrollService.
func (s *PayrollServiceImpl) MonthlySummary(ctx context.Context, employeeID *int64) (*payroll.MonthlySummary, error) {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	id := actor.EmployeeID
	if actor.Elevated() && employeeID != nil {
		id = *employeeID
	}

	profile, err := s.PayrollRepository.GetLatestProfile(ctx, id)
	if err != nil {
		if errors.Is(err, payroll.ErrNoProfile) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get payroll profile: %w", err)
	}

	now := s.clock.Now()
	from, to := monthBounds(int(now.Month()), now.Year())

	leavesTaken, err := s.PayrollRepository.SumApprovedLeaveDays(ctx, id, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to sum leave days: %w", err)
	}

	leaveDeduction := payroll.LeaveDeductionPerDay.Mul(decimal.NewFromInt(int64(leavesTaken)))
	net := profile.BasicSalary.Sub(leaveDeduction)
	if net.IsNegative() {
		net = decimal.Zero
	}

	return &payroll.MonthlySummary{
		Profile:        profile,
		LeavesTaken:    leavesTaken,
		LeaveDeduction: leaveDeduction,
		NetPayroll:     net,
		CurrentMonth:   int(now.Month()),
		CurrentYear:    now.Year(),
	}, nil
}
