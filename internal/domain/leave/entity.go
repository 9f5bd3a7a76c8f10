package leave

type LeaveRequestStatus string

const (
	LeaveRequestStatusPending  LeaveRequestStatus = "PENDING"
	LeaveRequestStatusApproved LeaveRequestStatus = "APPROVED"
	LeaveRequestStatusRejected LeaveRequestStatus = "REJECTED"
)

// IsFinal reports whether s is a terminal state.
func (s LeaveRequestStatus) IsFinal() bool {
	return s == LeaveRequestStatusApproved || s == LeaveRequestStatusRejected
}

// CheckTransition enforces PENDING -> APPROVED | REJECTED. Writing the current
// status again is allowed and changes nothing.
func (s LeaveRequestStatus) CheckTransition(next LeaveRequestStatus) error {
	if s == next {
		return nil
	}
	if s.IsFinal() || next == LeaveRequestStatusPending {
		return ErrLeaveRequestAlreadyProcessed
	}
	return nil
}

// LeaveRequest entity
type LeaveRequest struct {
	ID          string             `json:"id"`
	EmployeeID  string             `json:"employeeId"`
	Type        string             `json:"type"`
	From        string             `json:"from"`
	To          string             `json:"to"`
	Days        int                `json:"days"`
	Reason      string             `json:"reason"`
	Status      LeaveRequestStatus `json:"status"`
	AppliedDate string             `json:"appliedDate"`
}

// Covers reports whether date (YYYY-MM-DD) falls inside the leave's range.
func (l LeaveRequest) Covers(date string) bool {
	return l.From <= date && date <= l.To
}
