package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestTotalDaysInclusive(t *testing.T) {
	assert.Equal(t, 1, TotalDaysInclusive(day(2024, 3, 10), day(2024, 3, 10)))
	assert.Equal(t, 3, TotalDaysInclusive(day(2024, 3, 10), day(2024, 3, 12)))
	assert.Equal(t, 0, TotalDaysInclusive(day(2024, 3, 10), day(2024, 3, 9)))
	// Month boundary
	assert.Equal(t, 4, TotalDaysInclusive(day(2024, 3, 30), day(2024, 4, 2)))
}

func TestApplyRequestValidate(t *testing.T) {
	req := ApplyRequest{LeaveType: "paid", StartDate: "2024-03-10", EndDate: "2024-03-12"}
	assert.NoError(t, req.Validate())

	bad := ApplyRequest{LeaveType: "unpaid", StartDate: "10-03-2024", EndDate: ""}
	err := bad.Validate()
	assert.Error(t, err)
}

func TestDecideRequestValidate(t *testing.T) {
	ok := DecideRequest{Status: "approved"}
	assert.NoError(t, ok.Validate())

	bad := DecideRequest{Status: "pending"}
	assert.Error(t, bad.Validate())
}
