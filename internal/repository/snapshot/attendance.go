package snapshot

import (
	"context"

	"github.com/prakura/hrms-backend-go/internal/domain/attendance"
)

type attendanceRepositoryImpl struct {
	db *DB
}

func NewAttendanceRepository(db *DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

func (r *attendanceRepositoryImpl) List(ctx context.Context, f attendance.AttendanceFilter) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	err := r.db.View(ctx, func(s Snapshot) error {
		out = filter(s.Attendance, f.Matches)
		return nil
	})
	return out, err
}

func (r *attendanceRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	var out attendance.Attendance
	err := r.db.View(ctx, func(s Snapshot) error {
		i := indexOf(s.Attendance, func(a attendance.Attendance) bool { return a.ID == id })
		if i < 0 {
			return attendance.ErrAttendanceNotFound
		}
		out = s.Attendance[i]
		return nil
	})
	return out, err
}

func (r *attendanceRepositoryImpl) CheckIn(ctx context.Context, rec attendance.Attendance) (attendance.Attendance, error) {
	err := r.db.WithTransaction(ctx, func(s *Snapshot) error {
		exists := indexOf(s.Attendance, func(a attendance.Attendance) bool {
			return a.EmployeeID == rec.EmployeeID && a.Date == rec.Date
		}) >= 0
		if exists {
			return attendance.ErrAlreadyCheckedIn
		}
		rec.ID = newID()
		s.Attendance = append(s.Attendance, rec)
		return nil
	})
	if err != nil {
		return attendance.Attendance{}, err
	}
	return rec, nil
}

func (r *attendanceRepositoryImpl) CheckOut(ctx context.Context, employeeID, date, clock string) (attendance.Attendance, error) {
	var out attendance.Attendance
	err := r.db.WithTransaction(ctx, func(s *Snapshot) error {
		i := indexOf(s.Attendance, func(a attendance.Attendance) bool {
			return a.EmployeeID == employeeID && a.Date == date && a.IsOpen()
		})
		if i < 0 {
			return attendance.ErrNotCheckedIn
		}
		s.Attendance[i].Close(clock)
		out = s.Attendance[i]
		return nil
	})
	return out, err
}

func (r *attendanceRepositoryImpl) Update(ctx context.Context, id string, req attendance.UpdateAttendanceRequest) (attendance.Attendance, error) {
	var out attendance.Attendance
	err := r.db.WithTransaction(ctx, func(s *Snapshot) error {
		i := indexOf(s.Attendance, func(a attendance.Attendance) bool { return a.ID == id })
		if i < 0 {
			return attendance.ErrAttendanceNotFound
		}
		req.Apply(&s.Attendance[i])
		a := s.Attendance[i]
		clash := indexOf(s.Attendance, func(o attendance.Attendance) bool {
			return o.ID != a.ID && o.EmployeeID == a.EmployeeID && o.Date == a.Date
		})
		if clash >= 0 {
			return attendance.ErrAttendanceExists
		}
		out = a
		return nil
	})
	return out, err
}

func (r *attendanceRepositoryImpl) Delete(ctx context.Context, id string) error {
	return r.db.WithTransaction(ctx, func(s *Snapshot) error {
		if !remove(&s.Attendance, func(a attendance.Attendance) bool { return a.ID == id }) {
			return errUnchanged
		}
		return nil
	})
}

func (r *attendanceRepositoryImpl) CloseStale(ctx context.Context, before, clock string) ([]attendance.Attendance, error) {
	closed := []attendance.Attendance{}
	err := r.db.WithTransaction(ctx, func(s *Snapshot) error {
		for i := range s.Attendance {
			a := &s.Attendance[i]
			if !a.IsOpen() || a.Date >= before {
				continue
			}
			checkOut := clock
			if a.CheckIn > checkOut {
				checkOut = a.CheckIn
			}
			a.Close(checkOut)
			a.Status = attendance.StatusAutoClosed
			closed = append(closed, *a)
		}
		if len(closed) == 0 {
			return errUnchanged
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return closed, nil
}
