package attendance

import "context"

type AttendanceRepository interface {
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, error)
	GetByID(ctx context.Context, id string) (Attendance, error)
	// CheckIn stores rec unless the employee already has a record for rec.Date.
	CheckIn(ctx context.Context, rec Attendance) (Attendance, error)
	// CheckOut closes the employee's open record for date.
	CheckOut(ctx context.Context, employeeID, date, clock string) (Attendance, error)
	Update(ctx context.Context, id string, req UpdateAttendanceRequest) (Attendance, error)
	Delete(ctx context.Context, id string) error
	// CloseStale closes every open record dated before the given day at clock
	// (or at check-in when that is later) and returns the closed records.
	CloseStale(ctx context.Context, before, clock string) ([]Attendance, error)
}
