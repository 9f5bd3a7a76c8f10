package cron

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/prakura/hrms-backend-go/internal/domain/attendance"
)

const AutoCloseStaleAttendanceJob = "auto_close_stale_attendance"

type AttendanceJobs struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceJobs(attendanceService attendance.AttendanceService) *AttendanceJobs {
	return &AttendanceJobs{attendanceService: attendanceService}
}

// RegisterJobs schedules the attendance jobs; spec is a five-field cron expression.
func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler, spec string) error {
	return scheduler.AddJob(AutoCloseStaleAttendanceJob, spec, j.AutoCloseStaleAttendance)
}

// AutoCloseStaleAttendance closes records from earlier days that never got a
// check-out.
func (j *AttendanceJobs) AutoCloseStaleAttendance(ctx context.Context) error {
	slog.Info("Cron: Starting auto-close stale attendance job")

	closed, err := j.attendanceService.AutoCloseStale(ctx)
	if err != nil {
		return fmt.Errorf("failed to close stale attendance: %w", err)
	}
	if len(closed) == 0 {
		slog.Info("Cron: No stale attendance found")
		return nil
	}
	for _, rec := range closed {
		slog.Info("Cron: Attendance auto-closed", "attendance_id", rec.ID, "employee_id", rec.EmployeeID, "date", rec.Date)
	}
	return nil
}
