package response

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/prakura/hrms-backend-go/internal/domain/attendance"
	"github.com/prakura/hrms-backend-go/internal/domain/auth"
	"github.com/prakura/hrms-backend-go/internal/domain/batch"
	"github.com/prakura/hrms-backend-go/internal/domain/employee"
	"github.com/prakura/hrms-backend-go/internal/domain/faculty"
	"github.com/prakura/hrms-backend-go/internal/domain/intern"
	"github.com/prakura/hrms-backend-go/internal/domain/leave"
	"github.com/prakura/hrms-backend-go/internal/domain/user"
	"github.com/prakura/hrms-backend-go/internal/pkg/validator"
	"github.com/prakura/hrms-backend-go/internal/repository/snapshot"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, user.ErrAccessDenied):
		Forbidden(w, "Your role does not allow this action")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")

	// Employee
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")

	// Leave
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed):
		Conflict(w, "Leave request already processed")

	// Attendance
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "You have already checked in today")
	case errors.Is(err, attendance.ErrNotCheckedIn):
		Conflict(w, "You have not checked in yet")
	case errors.Is(err, attendance.ErrAttendanceExists):
		Conflict(w, "Attendance already recorded for this employee on that date")

	// Training
	case errors.Is(err, batch.ErrBatchNotFound):
		NotFound(w, "Batch not found")
	case errors.Is(err, batch.ErrTrainerNotFound):
		ValidationError(w, map[string]string{"trainerId": "trainer does not exist"})
	case errors.Is(err, intern.ErrInternNotFound):
		NotFound(w, "Intern not found")
	case errors.Is(err, faculty.ErrFacultyNotFound):
		NotFound(w, "Faculty not found")

	// Store
	case errors.Is(err, snapshot.ErrQuotaExceeded):
		slog.Error("Snapshot quota exceeded", "error", err)
		InsufficientStorage(w, "Storage quota exceeded")
	case errors.Is(err, snapshot.ErrStorage):
		slog.Error("Storage failure", "error", err)
		ServiceUnavailable(w, "Storage is unavailable")
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		ServiceUnavailable(w, "Request was cancelled")

	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
