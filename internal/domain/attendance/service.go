package attendance

import (
	"context"
)

type AttendanceService interface {
	ListAttendance(ctx context.Context, filter AttendanceFilter) ([]Attendance, error)
	GetAttendance(ctx context.Context, id string) (Attendance, error)
	PunchIn(ctx context.Context, req PunchRequest) (Attendance, error)
	PunchOut(ctx context.Context, req PunchRequest) (Attendance, error)
	UpdateAttendance(ctx context.Context, req UpdateAttendanceRequest) (Attendance, error)
	DeleteAttendance(ctx context.Context, id string) error
	AutoCloseStale(ctx context.Context) ([]Attendance, error)
}
