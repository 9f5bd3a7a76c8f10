package leave

import (
	"time"

	"github.com/prakura/hrms-backend-go/internal/pkg/validator"
)

type ApplyLeaveRequest struct {
	EmployeeID string `json:"employeeId" validate:"required"`
	Type       string `json:"type" validate:"required"`
	From       string `json:"from" validate:"required,datetime=2006-01-02"`
	To         string `json:"to" validate:"required,datetime=2006-01-02"`
	Days       int    `json:"days" validate:"gte=0"`
	Reason     string `json:"reason"`
}

func (r *ApplyLeaveRequest) Validate() error {
	errs := validator.Struct(r)
	validator.DateRange(&errs, "from", r.From, "to", r.To)
	return errs.Err()
}

// ToLeaveRequest builds a PENDING request applied on the given day. Days falls
// back to the inclusive calendar length of the range.
func (r *ApplyLeaveRequest) ToLeaveRequest(today time.Time) LeaveRequest {
	days := r.Days
	if days == 0 {
		days = InclusiveDays(r.From, r.To)
	}
	return LeaveRequest{
		EmployeeID:  r.EmployeeID,
		Type:        r.Type,
		From:        r.From,
		To:          r.To,
		Days:        days,
		Reason:      r.Reason,
		Status:      LeaveRequestStatusPending,
		AppliedDate: today.Format(validator.DateLayout),
	}
}

// InclusiveDays counts calendar days from..to including both ends; 0 when unparsable.
func InclusiveDays(from, to string) int {
	start, okFrom := validator.IsValidDate(from)
	end, okTo := validator.IsValidDate(to)
	if !okFrom || !okTo || end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}

type UpdateLeaveRequestRequest struct {
	ID     string  `json:"-"`
	Type   *string `json:"type,omitempty"`
	From   *string `json:"from,omitempty" validate:"omitempty,datetime=2006-01-02"`
	To     *string `json:"to,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Days   *int    `json:"days,omitempty" validate:"omitempty,gte=0"`
	Reason *string `json:"reason,omitempty"`
	Status *string `json:"status,omitempty" validate:"omitempty,oneof=PENDING APPROVED REJECTED"`
}

func (r *UpdateLeaveRequestRequest) Validate() error {
	errs := validator.Struct(r)
	if validator.IsEmpty(r.ID) {
		errs.Add("id", "id is required")
	}
	if r.From != nil && r.To != nil {
		validator.DateRange(&errs, "from", *r.From, "to", *r.To)
	}
	return errs.Err()
}

// Apply overwrites the fields present in r, refusing status changes the
// lifecycle does not allow. A moved range is checked against the stored other
// end and recounts days unless days was sent.
func (r *UpdateLeaveRequestRequest) Apply(l *LeaveRequest) error {
	if r.Status != nil {
		next := LeaveRequestStatus(*r.Status)
		if err := l.Status.CheckTransition(next); err != nil {
			return err
		}
		l.Status = next
	}
	if r.Type != nil {
		l.Type = *r.Type
	}
	if r.From != nil {
		l.From = *r.From
	}
	if r.To != nil {
		l.To = *r.To
	}
	if r.Days != nil {
		l.Days = *r.Days
	}
	if r.Reason != nil {
		l.Reason = *r.Reason
	}
	if r.From != nil || r.To != nil {
		var errs validator.ValidationErrors
		validator.DateRange(&errs, "from", l.From, "to", l.To)
		if err := errs.Err(); err != nil {
			return err
		}
		if days := InclusiveDays(l.From, l.To); r.Days == nil && days > 0 {
			l.Days = days
		}
	}
	return nil
}

type LeaveRequestFilter struct {
	EmployeeID string `json:"employeeId,omitempty"`
	Status     string `json:"status,omitempty"`
}

func (f LeaveRequestFilter) Matches(l LeaveRequest) bool {
	if f.EmployeeID != "" && l.EmployeeID != f.EmployeeID {
		return false
	}
	if f.Status != "" && string(l.Status) != f.Status {
		return false
	}
	return true
}
