package employee

import (
	"context"
	"fmt"

	"github.com/hrmstack/hrms-backend-go/internal/domain/auth"
	"github.com/hrmstack/hrms-backend-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
}

func NewEmployeeService(employeeRepository employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{EmployeeRepository: employeeRepository}
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.Employee, error) {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !actor.Elevated() {
		return nil, auth.ErrForbidden
	}

	employees, err := s.EmployeeRepository.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id int64) (employee.Employee, error) {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return employee.Employee{}, err
	}
	if !actor.Elevated() && actor.EmployeeID != id {
		return employee.Employee{}, auth.ErrForbidden
	}

	return s.EmployeeRepository.GetByID(ctx, id)
}

// Me implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Me(ctx context.Context) (employee.Employee, error) {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return employee.Employee{}, err
	}

	return s.EmployeeRepository.GetByUserID(ctx, actor.UserID)
}

// UpdateSelf implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateSelf(ctx context.Context, id int64, req employee.SelfUpdateRequest) error {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return err
	}
	if actor.EmployeeID != id {
		return auth.ErrForbidden
	}
	if req.Empty() {
		return nil
	}

	return s.EmployeeRepository.UpdateSelf(ctx, id, req)
}

// UpdateAdmin implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateAdmin(ctx context.Context, id int64, req employee.AdminUpdateRequest) error {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return err
	}
	if !actor.Elevated() {
		return auth.ErrForbidden
	}

	return s.EmployeeRepository.UpdateAdmin(ctx, id, req)
}

// Deactivate implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Deactivate(ctx context.Context, id int64) error {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return err
	}
	if !actor.Elevated() {
		return auth.ErrForbidden
	}

	return s.EmployeeRepository.Deactivate(ctx, id)
}
