package attendance

import (
	"context"
	"log/slog"
	"time"

	"github.com/prakura/hrms-backend-go/internal/domain/attendance"
	"github.com/prakura/hrms-backend-go/internal/pkg/validator"
	"github.com/prakura/hrms-backend-go/internal/service/facade"
)

const entity = "attendance"

// Policy holds the working-day rules applied when punching.
type Policy struct {
	LateAfter string // check-ins after this clock reading are LATE
	ShiftEnd  string // check-out stamped on records closed automatically
	Location  *time.Location
}

func DefaultPolicy() Policy {
	return Policy{LateAfter: "09:30:00", ShiftEnd: "18:00:00", Location: time.Local}
}

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	rt             facade.Runtime
	policy         Policy
	now            func() time.Time
}

func NewAttendanceService(attendanceRepo attendance.AttendanceRepository, rt facade.Runtime, policy Policy) attendance.AttendanceService {
	if policy.Location == nil {
		policy.Location = time.Local
	}
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		rt:             rt,
		policy:         policy,
		now:            time.Now,
	}
}

func (s *AttendanceServiceImpl) today() (date, clock string) {
	now := s.now().In(s.policy.Location)
	return now.Format(validator.DateLayout), now.Format(attendance.ClockLayout)
}

// ListAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) (_ []attendance.Attendance, err error) {
	done, err := s.rt.Begin(ctx, entity, "list")
	if err != nil {
		return nil, err
	}
	defer func() { done(err) }()

	return s.attendanceRepo.List(ctx, filter)
}

// GetAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetAttendance(ctx context.Context, id string) (_ attendance.Attendance, err error) {
	done, err := s.rt.Begin(ctx, entity, "get")
	if err != nil {
		return attendance.Attendance{}, err
	}
	defer func() { done(err) }()

	return s.attendanceRepo.GetByID(ctx, id)
}

// PunchIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) PunchIn(ctx context.Context, req attendance.PunchRequest) (_ attendance.Attendance, err error) {
	done, err := s.rt.Begin(ctx, entity, "punch_in")
	if err != nil {
		return attendance.Attendance{}, err
	}
	defer func() { done(err) }()

	if err := req.Validate(); err != nil {
		return attendance.Attendance{}, err
	}

	date, clock := s.today()
	status := attendance.StatusPresent
	if s.policy.LateAfter != "" && clock > s.policy.LateAfter {
		status = attendance.StatusLate
	}

	rec, err := s.attendanceRepo.CheckIn(ctx, attendance.Attendance{
		EmployeeID: req.EmployeeID,
		Date:       date,
		CheckIn:    clock,
		Status:     status,
	})
	if err != nil {
		return attendance.Attendance{}, err
	}
	slog.Info("Punched in", "employee_id", rec.EmployeeID, "date", rec.Date, "check_in", rec.CheckIn, "status", rec.Status)
	return rec, nil
}

// PunchOut implements attendance.AttendanceService. The check-out time and
// worked hours are persisted on today's record.
func (s *AttendanceServiceImpl) PunchOut(ctx context.Context, req attendance.PunchRequest) (_ attendance.Attendance, err error) {
	done, err := s.rt.Begin(ctx, entity, "punch_out")
	if err != nil {
		return attendance.Attendance{}, err
	}
	defer func() { done(err) }()

	if err := req.Validate(); err != nil {
		return attendance.Attendance{}, err
	}

	date, clock := s.today()
	rec, err := s.attendanceRepo.CheckOut(ctx, req.EmployeeID, date, clock)
	if err != nil {
		return attendance.Attendance{}, err
	}
	slog.Info("Punched out", "employee_id", rec.EmployeeID, "date", rec.Date, "check_out", clock)
	return rec, nil
}

// UpdateAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) UpdateAttendance(ctx context.Context, req attendance.UpdateAttendanceRequest) (_ attendance.Attendance, err error) {
	done, err := s.rt.Begin(ctx, entity, "update")
	if err != nil {
		return attendance.Attendance{}, err
	}
	defer func() { done(err) }()

	if err := req.Validate(); err != nil {
		return attendance.Attendance{}, err
	}
	return s.attendanceRepo.Update(ctx, req.ID, req)
}

// DeleteAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) DeleteAttendance(ctx context.Context, id string) (err error) {
	done, err := s.rt.Begin(ctx, entity, "delete")
	if err != nil {
		return err
	}
	defer func() { done(err) }()

	if validator.IsEmpty(id) {
		return validator.ValidationErrors{{Field: "id", Message: "id is required"}}
	}
	return s.attendanceRepo.Delete(ctx, id)
}

// AutoCloseStale implements attendance.AttendanceService. It skips the
// simulated delay since it only runs from the scheduler.
func (s *AttendanceServiceImpl) AutoCloseStale(ctx context.Context) ([]attendance.Attendance, error) {
	done := s.rt.Metrics.Track(entity, "auto_close")
	date, _ := s.today()

	closed, err := s.attendanceRepo.CloseStale(ctx, date, s.policy.ShiftEnd)
	done(err)
	if err != nil {
		return nil, err
	}
	if len(closed) > 0 {
		slog.Info("Closed stale attendance records", "count", len(closed), "before", date)
	}
	return closed, nil
}
