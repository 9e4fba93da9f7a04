package leave

import "time"

type Type string

const (
	TypePaid   Type = "paid"
	TypeSick   Type = "sick"
	TypeCasual Type = "casual"
)

// Types lists every known leave type, in ledger order.
func Types() []Type {
	return []Type{TypePaid, TypeSick, TypeCasual}
}

func (t Type) Valid() bool {
	return t == TypePaid || t == TypeSick || t == TypeCasual
}

// DefaultAnnualAllotment is granted per leave type when a balance row is
// lazily created for a year.
const DefaultAnnualAllotment = 15

// Balance tracks per-employee, per-type, per-year leave usage. The
// remaining = total - used invariant is maintained by the repository's
// atomic usage update; usage is not clamped, so remaining may go negative
// when a request is over-applied.
type Balance struct {
	ID              int64
	EmployeeID      int64
	LeaveType       Type
	Year            int
	TotalLeaves     int
	UsedLeaves      int
	RemainingLeaves int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type RequestStatus string

const (
	StatusPending  RequestStatus = "pending"
	StatusApproved RequestStatus = "approved"
	StatusRejected RequestStatus = "rejected"
)

// Request is a leave application. pending -> approved and pending ->
// rejected are the only transitions; both are terminal. Pending requests may
// instead be deleted (cancellation).
type Request struct {
	ID            int64
	EmployeeID    int64
	LeaveType     Type
	StartDate     time.Time
	EndDate       time.Time
	TotalDays     int
	Reason        string
	Status        RequestStatus
	ApprovedBy    *int64
	ApprovedAt    *time.Time
	AdminComments *string
	CreatedAt     time.Time

	// Joined for responses
	EmployeeName  *string
	EmployeeCode  *string
	ApproverEmail *string
}

// TotalDaysInclusive is the inclusive day count of [start, end]. A single-day
// request (end == start) counts as 1; end before start yields a non-positive
// count, which Apply rejects.
func TotalDaysInclusive(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}
