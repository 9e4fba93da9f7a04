package employee

import (
	"context"
	"testing"
	"time"

	"github.com/hrmstack/hrms-backend-go/internal/domain/auth"
	"github.com/hrmstack/hrms-backend-go/internal/domain/employee"
	"github.com/hrmstack/hrms-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeRepo struct {
	employees map[int64]employee.Employee
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: make(map[int64]employee.Employee)}
}

func (f *fakeEmployeeRepo) seed(e employee.Employee) {
	f.employees[e.ID] = e
}

func (f *fakeEmployeeRepo) Create(_ context.Context, e employee.Employee) (employee.Employee, error) {
	f.employees[e.ID] = e
	return e, nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id int64) (employee.Employee, error) {
	e, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (f *fakeEmployeeRepo) GetByUserID(_ context.Context, userID int64) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.UserID == userID {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrProfileNotFound
}

func (f *fakeEmployeeRepo) ListActive(_ context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range f.employees {
		if e.EmploymentStatus == employee.StatusActive {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEmployeeRepo) UpdateSelf(_ context.Context, id int64, req employee.SelfUpdateRequest) error {
	e, ok := f.employees[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	if req.Phone != nil {
		e.Phone = req.Phone
	}
	if req.Address != nil {
		e.Address = req.Address
	}
	if req.ProfilePicture != nil {
		e.ProfilePicture = req.ProfilePicture
	}
	f.employees[id] = e
	return nil
}

func (f *fakeEmployeeRepo) UpdateAdmin(_ context.Context, id int64, req employee.AdminUpdateRequest) error {
	e, ok := f.employees[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	if req.Department != nil {
		e.Department = *req.Department
	}
	if req.Designation != nil {
		e.Designation = *req.Designation
	}
	f.employees[id] = e
	return nil
}

func (f *fakeEmployeeRepo) Deactivate(_ context.Context, id int64) error {
	e, ok := f.employees[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	e.EmploymentStatus = employee.StatusTerminated
	f.employees[id] = e
	return nil
}

func actorCtx(userID, employeeID int64, role user.Role) context.Context {
	return auth.WithActor(context.Background(), auth.Actor{
		UserID:     userID,
		EmployeeID: employeeID,
		Role:       role,
	})
}

func seeded() (*fakeEmployeeRepo, employee.EmployeeService) {
	repo := newFakeEmployeeRepo()
	repo.seed(employee.Employee{
		ID: 1, UserID: 10, Code: "EMP001", FirstName: "Jamie", LastName: "Doe",
		Department: "Engineering", EmploymentStatus: employee.StatusActive,
		DateOfJoining: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	repo.seed(employee.Employee{
		ID: 2, UserID: 20, Code: "EMP002", FirstName: "Alex", LastName: "Roe",
		Department: "Sales", EmploymentStatus: employee.StatusActive,
		DateOfJoining: time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC),
	})
	return repo, NewEmployeeService(repo)
}

func TestListRequiresElevatedRole(t *testing.T) {
	_, svc := seeded()

	_, err := svc.List(actorCtx(10, 1, user.RoleEmployee))
	assert.ErrorIs(t, err, auth.ErrForbidden)

	employees, err := svc.List(actorCtx(30, 3, user.RoleHR))
	require.NoError(t, err)
	assert.Len(t, employees, 2)
}

func TestGetScopesStandardRolesToSelf(t *testing.T) {
	_, svc := seeded()

	// Own record is fine.
	e, err := svc.Get(actorCtx(10, 1, user.RoleEmployee), 1)
	require.NoError(t, err)
	assert.Equal(t, "EMP001", e.Code)

	// Someone else's record is not.
	_, err = svc.Get(actorCtx(10, 1, user.RoleEmployee), 2)
	assert.ErrorIs(t, err, auth.ErrForbidden)

	// Elevated roles can read anyone.
	e, err = svc.Get(actorCtx(30, 3, user.RoleAdmin), 2)
	require.NoError(t, err)
	assert.Equal(t, "EMP002", e.Code)
}

func TestMe(t *testing.T) {
	_, svc := seeded()

	e, err := svc.Me(actorCtx(20, 2, user.RoleEmployee))
	require.NoError(t, err)
	assert.Equal(t, "EMP002", e.Code)
}

func TestUpdateSelfOnlyOwnRecord(t *testing.T) {
	repo, svc := seeded()

	phone := "+62811111111"
	err := svc.UpdateSelf(actorCtx(10, 1, user.RoleEmployee), 1, employee.SelfUpdateRequest{Phone: &phone})
	require.NoError(t, err)

	e, _ := repo.GetByID(context.Background(), 1)
	require.NotNil(t, e.Phone)
	assert.Equal(t, phone, *e.Phone)

	err = svc.UpdateSelf(actorCtx(10, 1, user.RoleEmployee), 2, employee.SelfUpdateRequest{Phone: &phone})
	assert.ErrorIs(t, err, auth.ErrForbidden)
}

func TestUpdateAdminRequiresElevatedRole(t *testing.T) {
	repo, svc := seeded()

	dept := "Platform"
	err := svc.UpdateAdmin(actorCtx(10, 1, user.RoleEmployee), 2, employee.AdminUpdateRequest{Department: &dept})
	assert.ErrorIs(t, err, auth.ErrForbidden)

	err = svc.UpdateAdmin(actorCtx(30, 3, user.RoleHR), 2, employee.AdminUpdateRequest{Department: &dept})
	require.NoError(t, err)

	e, _ := repo.GetByID(context.Background(), 2)
	assert.Equal(t, "Platform", e.Department)
}

func TestDeactivate(t *testing.T) {
	repo, svc := seeded()

	err := svc.Deactivate(actorCtx(10, 1, user.RoleEmployee), 2)
	assert.ErrorIs(t, err, auth.ErrForbidden)

	err = svc.Deactivate(actorCtx(30, 3, user.RoleAdmin), 2)
	require.NoError(t, err)

	e, _ := repo.GetByID(context.Background(), 2)
	assert.Equal(t, employee.StatusTerminated, e.EmploymentStatus)

	// Terminated employees drop out of the active listing.
	employees, err := svc.List(actorCtx(30, 3, user.RoleAdmin))
	require.NoError(t, err)
	assert.Len(t, employees, 1)
}
