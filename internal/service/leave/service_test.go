package leave

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/hrmstack/hrms-backend-go/internal/domain/attendance"
	"github.com/hrmstack/hrms-backend-go/internal/domain/auth"
	"github.com/hrmstack/hrms-backend-go/internal/domain/leave"
	"github.com/hrmstack/hrms-backend-go/internal/domain/user"
	"github.com/hrmstack/hrms-backend-go/internal/pkg/clock"
	"github.com/hrmstack/hrms-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBalanceRepo struct {
	balances map[string]*leave.Balance
	nextID   int64
}

func newFakeBalanceRepo() *fakeBalanceRepo {
	return &fakeBalanceRepo{balances: make(map[string]*leave.Balance), nextID: 1}
}

func balanceKey(employeeID int64, leaveType leave.Type, year int) string {
	return fmt.Sprintf("%d/%s/%d", employeeID, leaveType, year)
}

func (f *fakeBalanceRepo) GetByEmployeeYear(_ context.Context, employeeID int64, year int) ([]leave.Balance, error) {
	var out []leave.Balance
	for _, t := range leave.Types() {
		if b, ok := f.balances[balanceKey(employeeID, t, year)]; ok {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBalanceRepo) CreateDefaults(_ context.Context, employeeID int64, year int) error {
	for _, t := range leave.Types() {
		k := balanceKey(employeeID, t, year)
		if _, ok := f.balances[k]; ok {
			continue
		}
		f.balances[k] = &leave.Balance{
			ID:              f.nextID,
			EmployeeID:      employeeID,
			LeaveType:       t,
			Year:            year,
			TotalLeaves:     leave.DefaultAnnualAllotment,
			UsedLeaves:      0,
			RemainingLeaves: leave.DefaultAnnualAllotment,
		}
		f.nextID++
	}
	return nil
}

func (f *fakeBalanceRepo) ApplyUsage(_ context.Context, employeeID int64, leaveType leave.Type, year int, days int) error {
	if b, ok := f.balances[balanceKey(employeeID, leaveType, year)]; ok {
		b.UsedLeaves += days
		b.RemainingLeaves -= days
	}
	return nil
}

type fakeRequestRepo struct {
	requests map[int64]*leave.Request
	nextID   int64
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{requests: make(map[int64]*leave.Request), nextID: 1}
}

func (f *fakeRequestRepo) Create(_ context.Context, req leave.Request) (leave.Request, error) {
	req.ID = f.nextID
	f.nextID++
	f.requests[req.ID] = &req
	return req, nil
}

func (f *fakeRequestRepo) GetByID(_ context.Context, id int64) (leave.Request, error) {
	req, ok := f.requests[id]
	if !ok {
		return leave.Request{}, leave.ErrRequestNotFound
	}
	return *req, nil
}

func (f *fakeRequestRepo) List(_ context.Context, filter leave.ListFilter) ([]leave.Request, error) {
	var out []leave.Request
	for _, req := range f.requests {
		if filter.EmployeeID != nil && req.EmployeeID != *filter.EmployeeID {
			continue
		}
		if filter.Status != nil && req.Status != *filter.Status {
			continue
		}
		out = append(out, *req)
	}
	return out, nil
}

func (f *fakeRequestRepo) RecordDecision(_ context.Context, id int64, status leave.RequestStatus, approvedBy int64, approvedAt time.Time, comments *string) error {
	req, ok := f.requests[id]
	if !ok {
		return leave.ErrRequestNotFound
	}
	if req.Status != leave.StatusPending {
		return leave.ErrAlreadyDecided
	}
	req.Status = status
	req.ApprovedBy = &approvedBy
	req.ApprovedAt = &approvedAt
	req.AdminComments = comments
	return nil
}

func (f *fakeRequestRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.requests[id]; !ok {
		return leave.ErrRequestNotFound
	}
	delete(f.requests, id)
	return nil
}

type fakeAttendanceRepo struct {
	leaveDays map[string]int
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{leaveDays: make(map[string]int)}
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(context.Context, int64, time.Time) (attendance.Record, error) {
	return attendance.Record{}, attendance.ErrRecordNotFound
}

func (f *fakeAttendanceRepo) Create(_ context.Context, rec attendance.Record) (attendance.Record, error) {
	return rec, nil
}

func (f *fakeAttendanceRepo) Update(context.Context, attendance.Record) error { return nil }

func (f *fakeAttendanceRepo) Upsert(context.Context, attendance.Record) error { return nil }

func (f *fakeAttendanceRepo) UpsertLeave(_ context.Context, employeeID int64, date time.Time) error {
	f.leaveDays[fmt.Sprintf("%d/%s", employeeID, date.Format("2006-01-02"))]++
	return nil
}

func (f *fakeAttendanceRepo) List(context.Context, attendance.ListFilter) ([]attendance.Record, error) {
	return nil, nil
}

func passthroughTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	return fn(ctx)
}

func actorCtx(employeeID int64, role user.Role) context.Context {
	return auth.WithActor(context.Background(), auth.Actor{
		UserID:     employeeID + 100,
		EmployeeID: employeeID,
		Role:       role,
	})
}

var testNow = time.Date(2024, 3, 8, 12, 0, 0, 0, time.UTC)

type testEnv struct {
	balances   *fakeBalanceRepo
	requests   *fakeRequestRepo
	attendance *fakeAttendanceRepo
	svc        leave.LeaveService
}

func newTestEnv() testEnv {
	balances := newFakeBalanceRepo()
	requests := newFakeRequestRepo()
	att := newFakeAttendanceRepo()
	svc := NewLeaveService(balances, requests, att, passthroughTx, clock.Fixed(testNow))
	return testEnv{balances: balances, requests: requests, attendance: att, svc: svc}
}

func TestApplyRejectsEndBeforeStart(t *testing.T) {
	env := newTestEnv()

	_, err := env.svc.Apply(actorCtx(1, user.RoleEmployee), leave.ApplyRequest{
		LeaveType: "paid",
		StartDate: "2024-03-12",
		EndDate:   "2024-03-10",
	})
	require.Error(t, err)

	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestApplySingleDayCountsOne(t *testing.T) {
	env := newTestEnv()

	req, err := env.svc.Apply(actorCtx(1, user.RoleEmployee), leave.ApplyRequest{
		LeaveType: "sick",
		StartDate: "2024-03-10",
		EndDate:   "2024-03-10",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, req.TotalDays)
	assert.Equal(t, leave.StatusPending, req.Status)
}

func TestApproveThreeDayRequest(t *testing.T) {
	env := newTestEnv()

	req, err := env.svc.Apply(actorCtx(1, user.RoleEmployee), leave.ApplyRequest{
		LeaveType: "paid",
		StartDate: "2024-03-10",
		EndDate:   "2024-03-12",
	})
	require.NoError(t, err)
	assert.Equal(t, 3, req.TotalDays)

	err = env.svc.Decide(actorCtx(9, user.RoleAdmin), req.ID, leave.DecideRequest{Status: "approved"})
	require.NoError(t, err)

	decided, err := env.requests.GetByID(context.Background(), req.ID)
	require.NoError(t, err)
	assert.Equal(t, leave.StatusApproved, decided.Status)
	require.NotNil(t, decided.ApprovedBy)

	// Ledger debited for the current year.
	balances, err := env.balances.GetByEmployeeYear(context.Background(), 1, 2024)
	require.NoError(t, err)
	for _, b := range balances {
		if b.LeaveType == leave.TypePaid {
			assert.Equal(t, 3, b.UsedLeaves)
			assert.Equal(t, 12, b.RemainingLeaves)
			assert.Equal(t, b.TotalLeaves-b.UsedLeaves, b.RemainingLeaves)
		} else {
			assert.Equal(t, 0, b.UsedLeaves)
		}
	}

	// One attendance row per day of the range.
	assert.Len(t, env.attendance.leaveDays, 3)
	for _, day := range []string{"2024-03-10", "2024-03-11", "2024-03-12"} {
		assert.Equal(t, 1, env.attendance.leaveDays["1/"+day])
	}
}

func TestDecideTwiceFails(t *testing.T) {
	env := newTestEnv()

	req, err := env.svc.Apply(actorCtx(1, user.RoleEmployee), leave.ApplyRequest{
		LeaveType: "casual",
		StartDate: "2024-03-10",
		EndDate:   "2024-03-11",
	})
	require.NoError(t, err)

	admin := actorCtx(9, user.RoleAdmin)
	require.NoError(t, env.svc.Decide(admin, req.ID, leave.DecideRequest{Status: "approved"}))

	err = env.svc.Decide(admin, req.ID, leave.DecideRequest{Status: "rejected"})
	assert.ErrorIs(t, err, leave.ErrAlreadyDecided)

	// The ledger was only debited once.
	balances, _ := env.balances.GetByEmployeeYear(context.Background(), 1, 2024)
	for _, b := range balances {
		if b.LeaveType == leave.TypeCasual {
			assert.Equal(t, 2, b.UsedLeaves)
		}
	}
}

func TestRejectDoesNotTouchLedger(t *testing.T) {
	env := newTestEnv()

	req, err := env.svc.Apply(actorCtx(1, user.RoleEmployee), leave.ApplyRequest{
		LeaveType: "paid",
		StartDate: "2024-03-10",
		EndDate:   "2024-03-12",
	})
	require.NoError(t, err)

	comment := "insufficient coverage that week"
	err = env.svc.Decide(actorCtx(9, user.RoleHR), req.ID, leave.DecideRequest{
		Status:        "rejected",
		AdminComments: &comment,
	})
	require.NoError(t, err)

	balances, _ := env.balances.GetByEmployeeYear(context.Background(), 1, 2024)
	assert.Empty(t, balances)
	assert.Empty(t, env.attendance.leaveDays)
}

func TestDecideRequiresElevatedRole(t *testing.T) {
	env := newTestEnv()

	req, _ := env.svc.Apply(actorCtx(1, user.RoleEmployee), leave.ApplyRequest{
		LeaveType: "paid",
		StartDate: "2024-03-10",
		EndDate:   "2024-03-10",
	})

	err := env.svc.Decide(actorCtx(2, user.RoleEmployee), req.ID, leave.DecideRequest{Status: "approved"})
	assert.ErrorIs(t, err, auth.ErrForbidden)
}

func TestCancelOnlyPendingAndOwnerOrElevated(t *testing.T) {
	env := newTestEnv()

	req, err := env.svc.Apply(actorCtx(1, user.RoleEmployee), leave.ApplyRequest{
		LeaveType: "paid",
		StartDate: "2024-03-10",
		EndDate:   "2024-03-10",
	})
	require.NoError(t, err)

	// Another standard employee cannot cancel it.
	err = env.svc.Cancel(actorCtx(2, user.RoleEmployee), req.ID)
	assert.ErrorIs(t, err, auth.ErrForbidden)

	// The owner can.
	require.NoError(t, env.svc.Cancel(actorCtx(1, user.RoleEmployee), req.ID))
	_, err = env.requests.GetByID(context.Background(), req.ID)
	assert.ErrorIs(t, err, leave.ErrRequestNotFound)

	// An approved request cannot be cancelled, even by an admin.
	req2, _ := env.svc.Apply(actorCtx(1, user.RoleEmployee), leave.ApplyRequest{
		LeaveType: "sick",
		StartDate: "2024-03-11",
		EndDate:   "2024-03-11",
	})
	require.NoError(t, env.svc.Decide(actorCtx(9, user.RoleAdmin), req2.ID, leave.DecideRequest{Status: "approved"}))

	err = env.svc.Cancel(actorCtx(9, user.RoleAdmin), req2.ID)
	assert.ErrorIs(t, err, leave.ErrNotPending)
}

func TestListScopesStandardRolesToSelf(t *testing.T) {
	env := newTestEnv()

	_, err := env.svc.Apply(actorCtx(1, user.RoleEmployee), leave.ApplyRequest{
		LeaveType: "paid", StartDate: "2024-03-10", EndDate: "2024-03-10",
	})
	require.NoError(t, err)
	_, err = env.svc.Apply(actorCtx(2, user.RoleEmployee), leave.ApplyRequest{
		LeaveType: "paid", StartDate: "2024-03-10", EndDate: "2024-03-10",
	})
	require.NoError(t, err)

	other := int64(2)
	requests, err := env.svc.List(actorCtx(1, user.RoleEmployee), leave.ListFilter{EmployeeID: &other})
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, int64(1), requests[0].EmployeeID)

	requests, err = env.svc.List(actorCtx(9, user.RoleAdmin), leave.ListFilter{})
	require.NoError(t, err)
	assert.Len(t, requests, 2)
}

func TestGetBalanceCreatesDefaultsLazily(t *testing.T) {
	env := newTestEnv()

	balances, err := env.svc.GetBalance(actorCtx(1, user.RoleEmployee))
	require.NoError(t, err)
	require.Len(t, balances, 3)
	for _, b := range balances {
		assert.Equal(t, leave.DefaultAnnualAllotment, b.TotalLeaves)
		assert.Equal(t, 0, b.UsedLeaves)
		assert.Equal(t, leave.DefaultAnnualAllotment, b.RemainingLeaves)
		assert.Equal(t, 2024, b.Year)
	}

	// Second call reuses the same rows.
	again, err := env.svc.GetBalance(actorCtx(1, user.RoleEmployee))
	require.NoError(t, err)
	assert.Equal(t, balances, again)
}
