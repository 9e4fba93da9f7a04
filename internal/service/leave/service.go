package leave

import (
	"context"
	"fmt"

	"github.com/hrmstack/hrms-backend-go/internal/domain/attendance"
	"github.com/hrmstack/hrms-backend-go/internal/domain/auth"
	"github.com/hrmstack/hrms-backend-go/internal/domain/leave"
	"github.com/hrmstack/hrms-backend-go/internal/pkg/clock"
	"github.com/hrmstack/hrms-backend-go/internal/pkg/database"
	"github.com/hrmstack/hrms-backend-go/internal/pkg/validator"
)

type LeaveServiceImpl struct {
	leave.BalanceRepository
	leave.RequestRepository
	attendance.AttendanceRepository
	tx    database.TxRunner
	clock clock.Clock
}

func NewLeaveService(
	balanceRepository leave.BalanceRepository,
	requestRepository leave.RequestRepository,
	attendanceRepository attendance.AttendanceRepository,
	tx database.TxRunner,
	clk clock.Clock,
) leave.LeaveService {
	return &LeaveServiceImpl{
		BalanceRepository:    balanceRepository,
		RequestRepository:    requestRepository,
		AttendanceRepository: attendanceRepository,
		tx:                   tx,
		clock:                clk,
	}
}

// Apply implements leave.LeaveService.
func (s *LeaveServiceImpl) Apply(ctx context.Context, req leave.ApplyRequest) (leave.Request, error) {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return leave.Request{}, err
	}

	start, _ := validator.IsValidDate(req.StartDate)
	end, _ := validator.IsValidDate(req.EndDate)

	totalDays := leave.TotalDaysInclusive(start, end)
	if totalDays <= 0 {
		return leave.Request{}, validator.ValidationErrors{
			{Field: "endDate", Message: "endDate must not be before startDate"},
		}
	}

	created, err := s.RequestRepository.Create(ctx, leave.Request{
		EmployeeID: actor.EmployeeID,
		LeaveType:  leave.Type(req.LeaveType),
		StartDate:  start,
		EndDate:    end,
		TotalDays:  totalDays,
		Reason:     req.Reason,
		Status:     leave.StatusPending,
	})
	if err != nil {
		return leave.Request{}, fmt.Errorf("failed to create leave request: %w", err)
	}
	return created, nil
}

// Decide implements leave.LeaveService. Approval debits the ledger and marks
// every day of the range as leave in the attendance register, atomically
// with the status change.
func (s *LeaveServiceImpl) Decide(ctx context.Context, requestID int64, req leave.DecideRequest) error {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return err
	}
	if !actor.Elevated() {
		return auth.ErrForbidden
	}

	status := leave.RequestStatus(req.Status)

	return s.tx(ctx, func(txCtx context.Context) error {
		request, err := s.RequestRepository.GetByID(txCtx, requestID)
		if err != nil {
			return err
		}
		if request.Status != leave.StatusPending {
			return leave.ErrAlreadyDecided
		}

		if err := s.RequestRepository.RecordDecision(txCtx, requestID, status, actor.UserID, s.clock.Now(), req.AdminComments); err != nil {
			return fmt.Errorf("failed to record decision: %w", err)
		}

		if status != leave.StatusApproved {
			return nil
		}

		year := s.clock.Now().Year()
		if err := s.BalanceRepository.CreateDefaults(txCtx, request.EmployeeID, year); err != nil {
			return fmt.Errorf("failed to init leave balance: %w", err)
		}
		if err := s.BalanceRepository.ApplyUsage(txCtx, request.EmployeeID, request.LeaveType, year, request.TotalDays); err != nil {
			return fmt.Errorf("failed to apply leave usage: %w", err)
		}

		for d := request.StartDate; !d.After(request.EndDate); d = d.AddDate(0, 0, 1) {
			if err := s.AttendanceRepository.UpsertLeave(txCtx, request.EmployeeID, d); err != nil {
				return fmt.Errorf("failed to mark attendance as leave: %w", err)
			}
		}
		return nil
	})
}

// Cancel implements leave.LeaveService.
func (s *LeaveServiceImpl) Cancel(ctx context.Context, requestID int64) error {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return err
	}

	request, err := s.RequestRepository.GetByID(ctx, requestID)
	if err != nil {
		return err
	}
	if request.EmployeeID != actor.EmployeeID && !actor.Elevated() {
		return auth.ErrForbidden
	}
	if request.Status != leave.StatusPending {
		return leave.ErrNotPending
	}

	return s.RequestRepository.Delete(ctx, requestID)
}

// List implements leave.LeaveService.
func (s *LeaveServiceImpl) List(ctx context.Context, filter leave.ListFilter) ([]leave.Request, error) {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !actor.Elevated() {
		id := actor.EmployeeID
		filter.EmployeeID = &id
	}

	requests, err := s.RequestRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return requests, nil
}

// GetBalance implements leave.LeaveService. Balance rows are created lazily
// with the default allotment the first time a year is consulted.
func (s *LeaveServiceImpl) GetBalance(ctx context.Context) ([]leave.Balance, error) {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	year := s.clock.Now().Year()

	balances, err := s.BalanceRepository.GetByEmployeeYear(ctx, actor.EmployeeID, year)
	if err != nil {
		return nil, fmt.Errorf("failed to get leave balance: %w", err)
	}
	if len(balances) > 0 {
		return balances, nil
	}

	err = s.tx(ctx, func(txCtx context.Context) error {
		if err := s.BalanceRepository.CreateDefaults(txCtx, actor.EmployeeID, year); err != nil {
			return fmt.Errorf("failed to init leave balance: %w", err)
		}
		balances, err = s.BalanceRepository.GetByEmployeeYear(txCtx, actor.EmployeeID, year)
		return err
	})
	if err != nil {
		return nil, err
	}
	return balances, nil
}
