package snapshot

import (
	"github.com/prakura/hrms-backend-go/internal/domain/attendance"
	"github.com/prakura/hrms-backend-go/internal/domain/batch"
	"github.com/prakura/hrms-backend-go/internal/domain/employee"
	"github.com/prakura/hrms-backend-go/internal/domain/faculty"
	"github.com/prakura/hrms-backend-go/internal/domain/intern"
	"github.com/prakura/hrms-backend-go/internal/domain/leave"
)

// Seed returns the demo data written on first load. Each call builds a new value.
func Seed() Snapshot {
	return Snapshot{
		Employees: []employee.Employee{
			{ID: "1", EmpCode: "PRK-1001", FirstName: "Rahul", LastName: "Verma", Email: "rahul.v@prakura.in", Department: "Engineering", Designation: "Sr. Developer", JoiningDate: "2023-01-15", EmploymentType: employee.EmploymentTypeFullTime, Status: employee.EmploymentStatusActive, Salary: 85000},
			{ID: "2", EmpCode: "PRK-1002", FirstName: "Sneha", LastName: "Rao", Email: "sneha.r@prakura.in", Department: "HR", Designation: "HR Lead", JoiningDate: "2022-06-10", EmploymentType: employee.EmploymentTypeFullTime, Status: employee.EmploymentStatusActive, Salary: 65000},
			{ID: "3", EmpCode: "PRK-1003", FirstName: "Vikram", LastName: "Sahai", Email: "vikram.s@prakura.in", Department: "Training", Designation: "Lead Trainer", JoiningDate: "2023-03-01", EmploymentType: employee.EmploymentTypeTrainer, Status: employee.EmploymentStatusActive, Salary: 55000},
		},
		Leaves: []leave.LeaveRequest{
			{ID: "l1", EmployeeID: "1", Type: "Casual Leave", From: "2024-05-20", To: "2024-05-22", Days: 3, Reason: "Personal work", Status: leave.LeaveRequestStatusPending, AppliedDate: "2024-05-15"},
		},
		Attendance: []attendance.Attendance{},
		Batches: []batch.Batch{
			{ID: "b1", Name: "MERN Stack Developer", Code: "BATCH-2024-01", TrainerID: "f1", TrainerName: "Vikram Sahai", StartDate: "2024-04-01", EndDate: "2024-09-30", Progress: 75, Status: batch.StatusActive, Curriculum: []string{"JavaScript Fundamentals", "React", "Node.js & Express", "MongoDB", "Capstone Project"}, Timings: "Mon-Fri, 10:00 - 13:00"},
			{ID: "b2", Name: "Data Science & AI", Code: "BATCH-2024-02", TrainerID: "f2", TrainerName: "Dr. Aruna Reddy", StartDate: "2024-05-06", EndDate: "2024-11-29", Progress: 40, Status: batch.StatusActive, Curriculum: []string{"Python for Data", "Statistics", "Machine Learning", "Deep Learning"}, Timings: "Mon-Fri, 14:00 - 17:00"},
		},
		Interns: []intern.Intern{
			{ID: "i1", BatchID: "b1", FirstName: "Aditya", LastName: "Kumar", Email: "aditya.k@prakura.in", College: "VIT Vellore", PerformanceScore: 88, JoinDate: "2024-04-01"},
			{ID: "i2", BatchID: "b1", FirstName: "Priya", LastName: "Nair", Email: "priya.n@prakura.in", College: "NIT Trichy", PerformanceScore: 92, JoinDate: "2024-04-01"},
			{ID: "i3", BatchID: "b2", FirstName: "Karan", LastName: "Mehta", Email: "karan.m@prakura.in", College: "IIIT Hyderabad", PerformanceScore: 79, JoinDate: "2024-05-06"},
		},
		Faculties: []faculty.Faculty{
			{ID: "f1", Name: "Vikram Sahai", Designation: "Lead Trainer", Specialty: []string{"MERN", "System Design"}, Experience: "8+ Years", Email: "vikram.s@prakura.in", Status: faculty.StatusActive, ActiveBatches: []string{"b1"}},
			{ID: "f2", Name: "Dr. Aruna Reddy", Designation: "Data Science Mentor", Specialty: []string{"Python", "Machine Learning"}, Experience: "12+ Years", Email: "aruna.r@prakura.in", Status: faculty.StatusActive, ActiveBatches: []string{"b2"}},
		},
	}
}
