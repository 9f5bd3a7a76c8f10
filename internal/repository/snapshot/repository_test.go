package snapshot

import (
	"context"
	"testing"
	"time"

	"github.com/prakura/hrms-backend-go/internal/domain/attendance"
	"github.com/prakura/hrms-backend-go/internal/domain/batch"
	"github.com/prakura/hrms-backend-go/internal/domain/employee"
	"github.com/prakura/hrms-backend-go/internal/domain/faculty"
	"github.com/prakura/hrms-backend-go/internal/domain/intern"
	"github.com/prakura/hrms-backend-go/internal/domain/leave"
	"github.com/prakura/hrms-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestEmployeeRepository_CreateAssignsUniqueID(t *testing.T) {
	ctx := context.Background()
	db, _ := newTestDB(t)
	repo := NewEmployeeRepository(db)

	before, err := repo.List(ctx, employee.EmployeeFilter{})
	require.NoError(t, err)

	created, err := repo.Create(ctx, employee.Employee{FirstName: "Anita", Email: "anita@prakura.in"})
	require.NoError(t, err)
	assert.True(t, validator.IsValidUUID(created.ID))
	for _, e := range before {
		assert.NotEqual(t, e.ID, created.ID)
	}
	assert.Equal(t, "PRK-1004", created.EmpCode)

	after, err := repo.List(ctx, employee.EmployeeFilter{})
	require.NoError(t, err)
	assert.Len(t, after, len(before)+1)
	assert.Contains(t, after, created)

	seen := map[string]bool{}
	for _, e := range after {
		assert.False(t, seen[e.ID], "duplicate id %s", e.ID)
		seen[e.ID] = true
	}
}

func TestEmployeeRepository_CodeConflicts(t *testing.T) {
	ctx := context.Background()
	db, _ := newTestDB(t)
	repo := NewEmployeeRepository(db)

	_, err := repo.Create(ctx, employee.Employee{EmpCode: "prk-1001", FirstName: "Dup"})
	assert.ErrorIs(t, err, employee.ErrEmployeeCodeExists)

	_, err = repo.Update(ctx, "2", employee.UpdateEmployeeRequest{ID: "2", EmpCode: ptr("PRK-1001")})
	assert.ErrorIs(t, err, employee.ErrEmployeeCodeExists)

	same, err := repo.Update(ctx, "1", employee.UpdateEmployeeRequest{ID: "1", EmpCode: ptr("PRK-1001")})
	require.NoError(t, err)
	assert.Equal(t, "PRK-1001", same.EmpCode)
}

func TestEmployeeRepository_UpdateAndNotFound(t *testing.T) {
	ctx := context.Background()
	db, _ := newTestDB(t)
	repo := NewEmployeeRepository(db)

	updated, err := repo.Update(ctx, "1", employee.UpdateEmployeeRequest{ID: "1", Designation: ptr("Staff Engineer")})
	require.NoError(t, err)
	assert.Equal(t, "Staff Engineer", updated.Designation)
	assert.Equal(t, "Rahul", updated.FirstName)

	got, err := repo.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, updated, got)

	_, err = repo.Update(ctx, "missing", employee.UpdateEmployeeRequest{ID: "missing"})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestEmployeeRepository_ListReturnsCopies(t *testing.T) {
	ctx := context.Background()
	db, _ := newTestDB(t)
	repo := NewEmployeeRepository(db)

	list, err := repo.List(ctx, employee.EmployeeFilter{})
	require.NoError(t, err)
	list[0].FirstName = "Mutated"

	again, err := repo.List(ctx, employee.EmployeeFilter{})
	require.NoError(t, err)
	assert.Len(t, again, 3)
	assert.Equal(t, "Rahul", again[0].FirstName)
}

func TestDelete_MissingIDIsNoop(t *testing.T) {
	ctx := context.Background()
	db, backend := newTestDB(t)
	repo := NewLeaveRequestRepository(db)

	before, err := repo.List(ctx, leave.LeaveRequestFilter{})
	require.NoError(t, err)
	puts := backend.Puts()

	require.NoError(t, repo.Delete(ctx, "does-not-exist"))
	after, err := repo.List(ctx, leave.LeaveRequestFilter{})
	require.NoError(t, err)
	assert.Len(t, after, len(before))
	assert.Equal(t, puts, backend.Puts())

	require.NoError(t, repo.Delete(ctx, "l1"))
	after, err = repo.List(ctx, leave.LeaveRequestFilter{})
	require.NoError(t, err)
	assert.Empty(t, after)
}

func TestLeaveRequestRepository_FilterByEmployee(t *testing.T) {
	ctx := context.Background()
	db, _ := newTestDB(t)
	require.NoError(t, db.Save(ctx, Snapshot{}))
	repo := NewLeaveRequestRepository(db)

	for _, emp := range []string{"E1", "E2", "E1"} {
		_, err := repo.Create(ctx, leave.LeaveRequest{EmployeeID: emp, Type: "Sick Leave", From: "2024-06-03", To: "2024-06-03", Days: 1, Status: leave.LeaveRequestStatusPending})
		require.NoError(t, err)
	}

	got, err := repo.List(ctx, leave.LeaveRequestFilter{EmployeeID: "E1"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, l := range got {
		assert.Equal(t, "E1", l.EmployeeID)
	}
}

func TestLeaveRequestRepository_NewestFirst(t *testing.T) {
	ctx := context.Background()
	db, _ := newTestDB(t)
	repo := NewLeaveRequestRepository(db)

	created, err := repo.Create(ctx, leave.LeaveRequest{EmployeeID: "2", Type: "Earned Leave", Status: leave.LeaveRequestStatusPending})
	require.NoError(t, err)

	all, err := repo.List(ctx, leave.LeaveRequestFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, created.ID, all[0].ID)
	assert.Equal(t, "l1", all[1].ID)
}

func TestLeaveRequestRepository_ApproveKeepsOtherFields(t *testing.T) {
	ctx := context.Background()
	db, _ := newTestDB(t)
	repo := NewLeaveRequestRepository(db)

	before, err := repo.GetByID(ctx, "l1")
	require.NoError(t, err)

	approved, err := repo.Update(ctx, "l1", leave.UpdateLeaveRequestRequest{ID: "l1", Status: ptr("APPROVED")})
	require.NoError(t, err)
	assert.Equal(t, leave.LeaveRequestStatusApproved, approved.Status)

	expected := before
	expected.Status = leave.LeaveRequestStatusApproved
	assert.Equal(t, expected, approved)

	again, err := repo.Update(ctx, "l1", leave.UpdateLeaveRequestRequest{ID: "l1", Status: ptr("APPROVED")})
	require.NoError(t, err, "approving twice is a no-op")
	assert.Equal(t, approved, again)

	for _, next := range []string{"PENDING", "REJECTED"} {
		_, err = repo.Update(ctx, "l1", leave.UpdateLeaveRequestRequest{ID: "l1", Status: ptr(next)})
		assert.ErrorIs(t, err, leave.ErrLeaveRequestAlreadyProcessed, next)
	}

	stored, err := repo.GetByID(ctx, "l1")
	require.NoError(t, err)
	assert.Equal(t, leave.LeaveRequestStatusApproved, stored.Status, "a final status never reverts")
}

func TestInternRepository_FilterByBatch(t *testing.T) {
	ctx := context.Background()
	db, _ := newTestDB(t)
	repo := NewInternRepository(db)

	_, err := repo.Create(ctx, intern.Intern{BatchID: "b2", FirstName: "Meera"})
	require.NoError(t, err)

	all, err := repo.List(ctx, intern.InternFilter{})
	require.NoError(t, err)

	for _, batchID := range []string{"b1", "b2", "nope"} {
		got, err := repo.List(ctx, intern.InternFilter{BatchID: batchID})
		require.NoError(t, err)

		want := 0
		for _, in := range all {
			if in.BatchID == batchID {
				want++
			}
		}
		assert.Len(t, got, want, batchID)
		for _, in := range got {
			assert.Equal(t, batchID, in.BatchID)
		}
	}
}

func TestAttendanceRepository_PunchCycle(t *testing.T) {
	ctx := context.Background()
	db, _ := newTestDB(t)
	repo := NewAttendanceRepository(db)

	in, err := repo.CheckIn(ctx, attendance.Attendance{EmployeeID: "1", Date: "2024-06-03", CheckIn: "09:05:00", Status: attendance.StatusPresent})
	require.NoError(t, err)
	assert.NotEmpty(t, in.ID)
	assert.Nil(t, in.CheckOut)

	_, err = repo.CheckIn(ctx, attendance.Attendance{EmployeeID: "1", Date: "2024-06-03", CheckIn: "10:00:00"})
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)

	_, err = repo.CheckOut(ctx, "2", "2024-06-03", "18:00:00")
	assert.ErrorIs(t, err, attendance.ErrNotCheckedIn)

	out, err := repo.CheckOut(ctx, "1", "2024-06-03", "18:12:00")
	require.NoError(t, err)
	require.NotNil(t, out.CheckOut)
	assert.Equal(t, "18:12:00", *out.CheckOut)
	require.NotNil(t, out.WorkingHours)
	assert.Equal(t, 9.12, *out.WorkingHours)

	stored, err := repo.GetByID(ctx, in.ID)
	require.NoError(t, err)
	assert.Equal(t, out, stored, "check-out must be persisted")

	_, err = repo.CheckOut(ctx, "1", "2024-06-03", "19:00:00")
	assert.ErrorIs(t, err, attendance.ErrNotCheckedIn)
}

func TestAttendanceRepository_CloseStale(t *testing.T) {
	ctx := context.Background()
	db, backend := newTestDB(t)
	repo := NewAttendanceRepository(db)

	old, err := repo.CheckIn(ctx, attendance.Attendance{EmployeeID: "1", Date: "2024-06-02", CheckIn: "09:00:00", Status: attendance.StatusPresent})
	require.NoError(t, err)
	night, err := repo.CheckIn(ctx, attendance.Attendance{EmployeeID: "2", Date: "2024-06-02", CheckIn: "19:00:00", Status: attendance.StatusLate})
	require.NoError(t, err)
	today, err := repo.CheckIn(ctx, attendance.Attendance{EmployeeID: "3", Date: "2024-06-03", CheckIn: "09:00:00", Status: attendance.StatusPresent})
	require.NoError(t, err)

	closed, err := repo.CloseStale(ctx, "2024-06-03", "18:00:00")
	require.NoError(t, err)
	require.Len(t, closed, 2)

	got, err := repo.GetByID(ctx, old.ID)
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusAutoClosed, got.Status)
	assert.Equal(t, "18:00:00", *got.CheckOut)
	assert.Equal(t, 9.0, *got.WorkingHours)

	got, err = repo.GetByID(ctx, night.ID)
	require.NoError(t, err)
	assert.Equal(t, "19:00:00", *got.CheckOut)
	assert.Equal(t, 0.0, *got.WorkingHours)

	got, err = repo.GetByID(ctx, today.ID)
	require.NoError(t, err)
	assert.True(t, got.IsOpen())

	puts := backend.Puts()
	closed, err = repo.CloseStale(ctx, "2024-06-03", "18:00:00")
	require.NoError(t, err)
	assert.Empty(t, closed)
	assert.Equal(t, puts, backend.Puts(), "nothing to close means nothing written")
}

func TestBatchRepository_CodeAndTrainer(t *testing.T) {
	ctx := context.Background()
	db, _ := newTestDB(t)
	repo := &batchRepositoryImpl{db: db, now: func() time.Time { return time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC) }}

	created, err := repo.Create(ctx, batch.Batch{Name: "Cloud Native Go", TrainerID: "f1", StartDate: "2024-10-01", Status: batch.StatusUpcoming})
	require.NoError(t, err)
	assert.Equal(t, "BATCH-2024-03", created.Code)
	assert.Equal(t, "Vikram Sahai", created.TrainerName)

	undated, err := repo.Create(ctx, batch.Batch{Name: "Undated"})
	require.NoError(t, err)
	assert.Equal(t, "BATCH-2025-01", undated.Code)
	assert.Empty(t, undated.TrainerName)

	_, err = repo.Create(ctx, batch.Batch{Name: "Ghost", TrainerID: "f404"})
	assert.ErrorIs(t, err, batch.ErrTrainerNotFound)

	moved, err := repo.Update(ctx, created.ID, batch.UpdateBatchRequest{ID: created.ID, TrainerID: ptr("f2")})
	require.NoError(t, err)
	assert.Equal(t, "Dr. Aruna Reddy", moved.TrainerName)

	mine, err := repo.List(ctx, batch.BatchFilter{TrainerID: "f2"})
	require.NoError(t, err)
	assert.Len(t, mine, 2)
}

func TestBatchRepository_TrainerNameIsNotResynced(t *testing.T) {
	ctx := context.Background()
	db, _ := newTestDB(t)
	faculties := NewFacultyRepository(db)
	batches := NewBatchRepository(db)

	_, err := faculties.Update(ctx, "f1", faculty.UpdateFacultyRequest{ID: "f1", Name: ptr("Vikram S.")})
	require.NoError(t, err)
	require.NoError(t, faculties.Delete(ctx, "f2"))

	b1, err := batches.GetByID(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, "Vikram Sahai", b1.TrainerName)

	b2, err := batches.GetByID(ctx, "b2")
	require.NoError(t, err)
	assert.Equal(t, "f2", b2.TrainerID, "deleting a faculty does not cascade")
}

func TestFacultyRepository_ToggleStatus(t *testing.T) {
	ctx := context.Background()
	db, _ := newTestDB(t)
	repo := NewFacultyRepository(db)

	off, err := repo.ToggleStatus(ctx, "f1")
	require.NoError(t, err)
	assert.Equal(t, faculty.StatusInactive, off.Status)

	on, err := repo.ToggleStatus(ctx, "f1")
	require.NoError(t, err)
	assert.Equal(t, faculty.StatusActive, on.Status)

	_, err = repo.ToggleStatus(ctx, "nope")
	assert.ErrorIs(t, err, faculty.ErrFacultyNotFound)

	inactive, err := repo.List(ctx, faculty.FacultyFilter{Status: "INACTIVE"})
	require.NoError(t, err)
	assert.Empty(t, inactive)
}

func TestDashboardRepository_GetStats(t *testing.T) {
	ctx := context.Background()
	db, _ := newTestDB(t)
	day := time.Date(2024, 5, 21, 10, 0, 0, 0, time.UTC)

	_, err := NewAttendanceRepository(db).CheckIn(ctx, attendance.Attendance{EmployeeID: "2", Date: "2024-05-21", CheckIn: "09:50:00", Status: attendance.StatusLate})
	require.NoError(t, err)
	_, err = NewLeaveRequestRepository(db).Update(ctx, "l1", leave.UpdateLeaveRequestRequest{ID: "l1", Status: ptr("APPROVED")})
	require.NoError(t, err)
	_, err = NewBatchRepository(db).Update(ctx, "b2", batch.UpdateBatchRequest{ID: "b2", Status: ptr("COMPLETED")})
	require.NoError(t, err)

	stats, err := NewDashboardRepository(db).GetStats(ctx, day)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalEmployees)
	assert.Equal(t, 1, stats.PresentToday)
	assert.Equal(t, 1, stats.LateToday)
	assert.Equal(t, 1, stats.OnLeaveToday)
	assert.Equal(t, 0, stats.PendingLeaves)
	assert.Equal(t, 1, stats.ActiveBatches)
	assert.Equal(t, 2, stats.ActiveInterns)
	assert.Equal(t, 2, stats.ActiveFaculties)
	assert.Equal(t, "2024-05-21", stats.Date)
}

func TestLeaveRequestRepository_UpdateChecksMergedRange(t *testing.T) {
	ctx := context.Background()
	db, _ := newTestDB(t)
	repo := NewLeaveRequestRepository(db)

	_, err := repo.Update(ctx, "l1", leave.UpdateLeaveRequestRequest{ID: "l1", From: ptr("2024-06-30")})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "to")

	stored, err := repo.GetByID(ctx, "l1")
	require.NoError(t, err)
	assert.Equal(t, "2024-05-20", stored.From)

	moved, err := repo.Update(ctx, "l1", leave.UpdateLeaveRequestRequest{ID: "l1", To: ptr("2024-05-24")})
	require.NoError(t, err)
	assert.Equal(t, 5, moved.Days)

	kept, err := repo.Update(ctx, "l1", leave.UpdateLeaveRequestRequest{ID: "l1", From: ptr("2024-05-21"), Days: ptr(2)})
	require.NoError(t, err)
	assert.Equal(t, 2, kept.Days)
}

func TestAttendanceRepository_UpdateKeepsOneRecordPerDay(t *testing.T) {
	ctx := context.Background()
	db, _ := newTestDB(t)
	repo := NewAttendanceRepository(db)

	first, err := repo.CheckIn(ctx, attendance.Attendance{EmployeeID: "1", Date: "2024-06-01", CheckIn: "09:00:00", Status: attendance.StatusPresent})
	require.NoError(t, err)
	_, err = repo.CheckIn(ctx, attendance.Attendance{EmployeeID: "1", Date: "2024-06-02", CheckIn: "09:10:00", Status: attendance.StatusPresent})
	require.NoError(t, err)

	_, err = repo.Update(ctx, first.ID, attendance.UpdateAttendanceRequest{ID: first.ID, Date: ptr("2024-06-02")})
	assert.ErrorIs(t, err, attendance.ErrAttendanceExists)

	sameDay, err := repo.List(ctx, attendance.AttendanceFilter{EmployeeID: "1", Date: "2024-06-02"})
	require.NoError(t, err)
	assert.Len(t, sameDay, 1)

	moved, err := repo.Update(ctx, first.ID, attendance.UpdateAttendanceRequest{ID: first.ID, Date: ptr("2024-06-03")})
	require.NoError(t, err)
	assert.Equal(t, "2024-06-03", moved.Date)
}

func TestBatchRepository_UpdateChecksMergedRange(t *testing.T) {
	ctx := context.Background()
	db, _ := newTestDB(t)
	repo := NewBatchRepository(db)

	_, err := repo.Update(ctx, "b1", batch.UpdateBatchRequest{ID: "b1", StartDate: ptr("2024-10-01")})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "endDate")

	b1, err := repo.GetByID(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, "2024-04-01", b1.StartDate)

	_, err = repo.Update(ctx, "b1", batch.UpdateBatchRequest{ID: "b1", EndDate: ptr("2024-04-15")})
	require.NoError(t, err)
}
