package attendance

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/hrmstack/hrms-backend-go/internal/domain/attendance"
	"github.com/hrmstack/hrms-backend-go/internal/domain/auth"
	"github.com/hrmstack/hrms-backend-go/internal/pkg/clock"
	"github.com/hrmstack/hrms-backend-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	clock clock.Clock
}

func NewAttendanceService(attendanceRepository attendance.AttendanceRepository, clk clock.Clock) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepository,
		clock:                clk,
	}
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// CheckIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context) (attendance.CheckInResponse, error) {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return attendance.CheckInResponse{}, err
	}

	today := clock.Today(s.clock)
	now := s.clock.Now()

	rec, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, actor.EmployeeID, today)
	switch {
	case err == nil:
		if rec.CheckInTime != nil {
			return attendance.CheckInResponse{}, attendance.ErrAlreadyCheckedIn
		}
		rec.Status = attendance.StatusPresent
		rec.CheckInTime = &now
		if err := s.AttendanceRepository.Update(ctx, rec); err != nil {
			return attendance.CheckInResponse{}, fmt.Errorf("failed to update attendance: %w", err)
		}
	case errors.Is(err, attendance.ErrRecordNotFound):
		_, err := s.AttendanceRepository.Create(ctx, attendance.Record{
			EmployeeID:  actor.EmployeeID,
			Date:        today,
			Status:      attendance.StatusPresent,
			CheckInTime: &now,
		})
		if err != nil {
			return attendance.CheckInResponse{}, fmt.Errorf("failed to create attendance: %w", err)
		}
	default:
		return attendance.CheckInResponse{}, fmt.Errorf("failed to get attendance: %w", err)
	}

	return attendance.CheckInResponse{CheckInTime: now}, nil
}

// CheckOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context) (attendance.CheckOutResponse, error) {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return attendance.CheckOutResponse{}, err
	}

	today := clock.Today(s.clock)

	rec, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, actor.EmployeeID, today)
	if err != nil {
		if errors.Is(err, attendance.ErrRecordNotFound) {
			return attendance.CheckOutResponse{}, attendance.ErrNotCheckedIn
		}
		return attendance.CheckOutResponse{}, fmt.Errorf("failed to get attendance: %w", err)
	}
	if rec.CheckInTime == nil {
		return attendance.CheckOutResponse{}, attendance.ErrNotCheckedIn
	}
	if rec.CheckOutTime != nil {
		return attendance.CheckOutResponse{}, attendance.ErrAlreadyCheckedOut
	}

	now := s.clock.Now()
	hours := round2(now.Sub(*rec.CheckInTime).Hours())

	rec.CheckOutTime = &now
	rec.WorkingHours = &hours
	if err := s.AttendanceRepository.Update(ctx, rec); err != nil {
		return attendance.CheckOutResponse{}, fmt.Errorf("failed to update attendance: %w", err)
	}

	return attendance.CheckOutResponse{CheckOutTime: now, WorkingHours: hours}, nil
}

// Today implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Today(ctx context.Context) (*attendance.Record, error) {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	rec, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, actor.EmployeeID, clock.Today(s.clock))
	if err != nil {
		if errors.Is(err, attendance.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance: %w", err)
	}
	return &rec, nil
}

// Mark implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Mark(ctx context.Context, req attendance.MarkRequest) error {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return err
	}
	if !actor.Elevated() {
		return auth.ErrForbidden
	}

	date, _ := validator.IsValidDate(req.Date)

	rec := attendance.Record{
		EmployeeID: req.EmployeeID,
		Date:       date,
		Status:     attendance.Status(req.Status),
		Remarks:    req.Remarks,
	}
	if req.CheckInTime != nil && *req.CheckInTime != "" {
		t, _ := validator.IsValidDateTime(*req.CheckInTime)
		rec.CheckInTime = &t
	}
	if req.CheckOutTime != nil && *req.CheckOutTime != "" {
		t, _ := validator.IsValidDateTime(*req.CheckOutTime)
		rec.CheckOutTime = &t
	}
	if rec.CheckInTime != nil && rec.CheckOutTime != nil {
		hours := round2(rec.CheckOutTime.Sub(*rec.CheckInTime).Hours())
		rec.WorkingHours = &hours
	}

	if err := s.AttendanceRepository.Upsert(ctx, rec); err != nil {
		return fmt.Errorf("failed to upsert attendance: %w", err)
	}
	return nil
}

// List implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.Record, error) {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !actor.Elevated() {
		// Standard roles only ever see their own register.
		id := actor.EmployeeID
		filter.EmployeeID = &id
	}

	records, err := s.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	return records, nil
}
