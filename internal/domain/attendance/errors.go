package attendance

import "errors"

// Attendance domain errors
var (
	ErrAlreadyCheckedIn = errors.New("you have already checked in today")
	ErrNotCheckedIn     = errors.New("you have not checked in yet")
	ErrAttendanceExists = errors.New("attendance already recorded for this employee on that date")

	ErrAttendanceNotFound = errors.New("attendance record not found")
)
