package snapshot

import (
	"github.com/prakura/hrms-backend-go/internal/domain/attendance"
	"github.com/prakura/hrms-backend-go/internal/domain/batch"
	"github.com/prakura/hrms-backend-go/internal/domain/employee"
	"github.com/prakura/hrms-backend-go/internal/domain/faculty"
	"github.com/prakura/hrms-backend-go/internal/domain/intern"
	"github.com/prakura/hrms-backend-go/internal/domain/leave"
)

// Snapshot is the whole persisted state. It is stored as one JSON document.
type Snapshot struct {
	Employees  []employee.Employee     `json:"employees"`
	Leaves     []leave.LeaveRequest    `json:"leaves"`
	Attendance []attendance.Attendance `json:"attendance"`
	Batches    []batch.Batch           `json:"batches"`
	Interns    []intern.Intern         `json:"interns"`
	Faculties  []faculty.Faculty       `json:"faculties"`
}

// normalize replaces collections missing from an older document with empty
// ones, so they encode as [] rather than null.
func (s *Snapshot) normalize() {
	if s.Employees == nil {
		s.Employees = []employee.Employee{}
	}
	if s.Leaves == nil {
		s.Leaves = []leave.LeaveRequest{}
	}
	if s.Attendance == nil {
		s.Attendance = []attendance.Attendance{}
	}
	if s.Batches == nil {
		s.Batches = []batch.Batch{}
	}
	if s.Interns == nil {
		s.Interns = []intern.Intern{}
	}
	if s.Faculties == nil {
		s.Faculties = []faculty.Faculty{}
	}
}
