package attendance

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/hrmstack/hrms-backend-go/internal/domain/attendance"
	"github.com/hrmstack/hrms-backend-go/internal/domain/auth"
	"github.com/hrmstack/hrms-backend-go/internal/domain/user"
	"github.com/hrmstack/hrms-backend-go/internal/pkg/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAttendanceRepo struct {
	records map[string]attendance.Record
	nextID  int64
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]attendance.Record), nextID: 1}
}

func key(employeeID int64, date time.Time) string {
	return fmt.Sprintf("%d/%s", employeeID, date.Format("2006-01-02"))
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(_ context.Context, employeeID int64, date time.Time) (attendance.Record, error) {
	rec, ok := f.records[key(employeeID, date)]
	if !ok {
		return attendance.Record{}, attendance.ErrRecordNotFound
	}
	return rec, nil
}

func (f *fakeAttendanceRepo) Create(_ context.Context, rec attendance.Record) (attendance.Record, error) {
	rec.ID = f.nextID
	f.nextID++
	f.records[key(rec.EmployeeID, rec.Date)] = rec
	return rec, nil
}

func (f *fakeAttendanceRepo) Update(_ context.Context, rec attendance.Record) error {
	for k, existing := range f.records {
		if existing.ID == rec.ID {
			f.records[k] = rec
			return nil
		}
	}
	return attendance.ErrRecordNotFound
}

func (f *fakeAttendanceRepo) Upsert(_ context.Context, rec attendance.Record) error {
	k := key(rec.EmployeeID, rec.Date)
	if existing, ok := f.records[k]; ok {
		rec.ID = existing.ID
	} else {
		rec.ID = f.nextID
		f.nextID++
	}
	f.records[k] = rec
	return nil
}

func (f *fakeAttendanceRepo) UpsertLeave(_ context.Context, employeeID int64, date time.Time) error {
	k := key(employeeID, date)
	if existing, ok := f.records[k]; ok {
		existing.Status = attendance.StatusLeave
		f.records[k] = existing
		return nil
	}
	f.records[k] = attendance.Record{
		ID:         f.nextID,
		EmployeeID: employeeID,
		Date:       date,
		Status:     attendance.StatusLeave,
	}
	f.nextID++
	return nil
}

func (f *fakeAttendanceRepo) List(_ context.Context, filter attendance.ListFilter) ([]attendance.Record, error) {
	var out []attendance.Record
	for _, rec := range f.records {
		if filter.EmployeeID != nil && rec.EmployeeID != *filter.EmployeeID {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

func actorCtx(employeeID int64, role user.Role) context.Context {
	return auth.WithActor(context.Background(), auth.Actor{
		UserID:     employeeID,
		EmployeeID: employeeID,
		Role:       role,
	})
}

var testNow = time.Date(2024, 3, 11, 9, 0, 0, 0, time.UTC)

func newTestService(repo *fakeAttendanceRepo) attendance.AttendanceService {
	return NewAttendanceService(repo, clock.Fixed(testNow))
}

func TestCheckInCreatesRecord(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := newTestService(repo)
	ctx := actorCtx(1, user.RoleEmployee)

	resp, err := svc.CheckIn(ctx)
	require.NoError(t, err)
	assert.Equal(t, testNow, resp.CheckInTime)

	rec, err := repo.GetByEmployeeAndDate(ctx, 1, time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusPresent, rec.Status)
	require.NotNil(t, rec.CheckInTime)
	assert.Equal(t, testNow, *rec.CheckInTime)
}

func TestCheckInTwiceFails(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := newTestService(repo)
	ctx := actorCtx(1, user.RoleEmployee)

	_, err := svc.CheckIn(ctx)
	require.NoError(t, err)

	_, err = svc.CheckIn(ctx)
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

func TestCheckOutWithoutCheckInFails(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := newTestService(repo)
	ctx := actorCtx(1, user.RoleEmployee)

	_, err := svc.CheckOut(ctx)
	assert.ErrorIs(t, err, attendance.ErrNotCheckedIn)
}

func TestCheckOutComputesWorkingHours(t *testing.T) {
	repo := newFakeAttendanceRepo()
	ctx := actorCtx(1, user.RoleEmployee)

	checkIn := time.Date(2024, 3, 11, 9, 0, 0, 0, time.UTC)
	checkOut := time.Date(2024, 3, 11, 17, 30, 0, 0, time.UTC)

	inSvc := NewAttendanceService(repo, clock.Fixed(checkIn))
	_, err := inSvc.CheckIn(ctx)
	require.NoError(t, err)

	outSvc := NewAttendanceService(repo, clock.Fixed(checkOut))
	resp, err := outSvc.CheckOut(ctx)
	require.NoError(t, err)
	assert.Equal(t, 8.5, resp.WorkingHours)

	_, err = outSvc.CheckOut(ctx)
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedOut)
}

func TestTodayReturnsNilWhenAbsent(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := newTestService(repo)
	ctx := actorCtx(1, user.RoleEmployee)

	rec, err := svc.Today(ctx)
	require.NoError(t, err)
	assert.Nil(t, rec)

	_, err = svc.CheckIn(ctx)
	require.NoError(t, err)

	rec, err = svc.Today(ctx)
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, attendance.StatusPresent, rec.Status)
}

func TestMarkRequiresElevatedRole(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := newTestService(repo)

	err := svc.Mark(actorCtx(1, user.RoleEmployee), attendance.MarkRequest{
		EmployeeID: 2,
		Date:       "2024-03-11",
		Status:     "present",
	})
	assert.ErrorIs(t, err, auth.ErrForbidden)

	err = svc.Mark(actorCtx(1, user.RoleHR), attendance.MarkRequest{
		EmployeeID: 2,
		Date:       "2024-03-11",
		Status:     "absent",
	})
	require.NoError(t, err)

	rec, err := repo.GetByEmployeeAndDate(context.Background(), 2, time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusAbsent, rec.Status)
}

func TestMarkOverwritesExistingRecord(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := newTestService(repo)
	ctx := actorCtx(2, user.RoleEmployee)

	_, err := svc.CheckIn(ctx)
	require.NoError(t, err)

	err = svc.Mark(actorCtx(1, user.RoleAdmin), attendance.MarkRequest{
		EmployeeID: 2,
		Date:       "2024-03-11",
		Status:     "half_day",
	})
	require.NoError(t, err)

	rec, err := repo.GetByEmployeeAndDate(context.Background(), 2, time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusHalfDay, rec.Status)
}

func TestListScopesStandardRolesToSelf(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := newTestService(repo)

	_, err := svc.CheckIn(actorCtx(1, user.RoleEmployee))
	require.NoError(t, err)
	_, err = svc.CheckIn(actorCtx(2, user.RoleEmployee))
	require.NoError(t, err)

	// Standard role asking for someone else still only sees itself.
	other := int64(2)
	records, err := svc.List(actorCtx(1, user.RoleEmployee), attendance.ListFilter{EmployeeID: &other})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, int64(1), records[0].EmployeeID)

	// Elevated role can filter freely.
	records, err = svc.List(actorCtx(3, user.RoleAdmin), attendance.ListFilter{EmployeeID: &other})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, int64(2), records[0].EmployeeID)
}
