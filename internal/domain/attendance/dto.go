package attendance

import "github.com/prakura/hrms-backend-go/internal/pkg/validator"

type PunchRequest struct {
	EmployeeID string `json:"employeeId" validate:"required"`
}

func (r *PunchRequest) Validate() error {
	return validator.Struct(r).Err()
}

type UpdateAttendanceRequest struct {
	ID       string  `json:"-"`
	Date     *string `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	CheckIn  *string `json:"checkIn,omitempty" validate:"omitempty,datetime=15:04:05"`
	CheckOut *string `json:"checkOut,omitempty" validate:"omitempty,datetime=15:04:05"`
	Status   *string `json:"status,omitempty" validate:"omitempty,oneof=PRESENT LATE ABSENT AUTO_CLOSED"`
}

func (r *UpdateAttendanceRequest) Validate() error {
	errs := validator.Struct(r)
	if validator.IsEmpty(r.ID) {
		errs.Add("id", "id is required")
	}
	return errs.Err()
}

// Apply overwrites the fields present in r and recomputes working hours when
// either clock reading changed on a closed record.
func (r *UpdateAttendanceRequest) Apply(a *Attendance) {
	if r.Date != nil {
		a.Date = *r.Date
	}
	if r.CheckIn != nil {
		a.CheckIn = *r.CheckIn
	}
	if r.Status != nil {
		a.Status = Status(*r.Status)
	}
	if r.CheckOut != nil {
		a.Close(*r.CheckOut)
	} else if r.CheckIn != nil && a.CheckOut != nil {
		a.Close(*a.CheckOut)
	}
}

type AttendanceFilter struct {
	EmployeeID string `json:"employeeId,omitempty"`
	Date       string `json:"date,omitempty"`
}

func (f AttendanceFilter) Matches(a Attendance) bool {
	if f.EmployeeID != "" && a.EmployeeID != f.EmployeeID {
		return false
	}
	if f.Date != "" && a.Date != f.Date {
		return false
	}
	return true
}
