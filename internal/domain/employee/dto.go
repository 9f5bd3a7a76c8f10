package employee

import (
	"github.com/prakura/hrms-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	EmpCode        string  `json:"empCode"`
	FirstName      string  `json:"firstName" validate:"required"`
	LastName       string  `json:"lastName"`
	Email          string  `json:"email" validate:"required,email"`
	Department     string  `json:"department" validate:"required"`
	Designation    string  `json:"designation" validate:"required"`
	JoiningDate    string  `json:"joiningDate" validate:"required,datetime=2006-01-02"`
	EmploymentType string  `json:"employmentType" validate:"required,oneof=FULL_TIME CONTRACT INTERN TRAINER"`
	Status         string  `json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE"`
	Salary         float64 `json:"salary" validate:"gte=0"`
}

func (r *CreateEmployeeRequest) Validate() error {
	errs := validator.Struct(r)
	if validator.IsEmpty(r.FirstName) && r.FirstName != "" {
		errs.Add("firstName", "firstName must not be blank")
	}
	return errs.Err()
}

// ToEmployee builds the entity to store; ID and a blank code are filled by the repository.
func (r *CreateEmployeeRequest) ToEmployee() Employee {
	status := EmploymentStatus(r.Status)
	if status == "" {
		status = EmploymentStatusActive
	}
	return Employee{
		EmpCode:        r.EmpCode,
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		Email:          r.Email,
		Department:     r.Department,
		Designation:    r.Designation,
		JoiningDate:    r.JoiningDate,
		EmploymentType: EmploymentType(r.EmploymentType),
		Status:         status,
		Salary:         r.Salary,
	}
}

type UpdateEmployeeRequest struct {
	ID             string   `json:"-"`
	EmpCode        *string  `json:"empCode,omitempty"`
	FirstName      *string  `json:"firstName,omitempty"`
	LastName       *string  `json:"lastName,omitempty"`
	Email          *string  `json:"email,omitempty" validate:"omitempty,email"`
	Department     *string  `json:"department,omitempty"`
	Designation    *string  `json:"designation,omitempty"`
	JoiningDate    *string  `json:"joiningDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EmploymentType *string  `json:"employmentType,omitempty" validate:"omitempty,oneof=FULL_TIME CONTRACT INTERN TRAINER"`
	Status         *string  `json:"status,omitempty" validate:"omitempty,oneof=ACTIVE INACTIVE"`
	Salary         *float64 `json:"salary,omitempty" validate:"omitempty,gte=0"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	errs := validator.Struct(r)
	if validator.IsEmpty(r.ID) {
		errs.Add("id", "id is required")
	}
	if r.EmpCode != nil && validator.IsEmpty(*r.EmpCode) {
		errs.Add("empCode", "empCode must not be empty")
	}
	if r.FirstName != nil && validator.IsEmpty(*r.FirstName) {
		errs.Add("firstName", "firstName must not be empty")
	}
	return errs.Err()
}

// Apply overwrites the fields present in r.
func (r *UpdateEmployeeRequest) Apply(e *Employee) {
	if r.EmpCode != nil {
		e.EmpCode = *r.EmpCode
	}
	if r.FirstName != nil {
		e.FirstName = *r.FirstName
	}
	if r.LastName != nil {
		e.LastName = *r.LastName
	}
	if r.Email != nil {
		e.Email = *r.Email
	}
	if r.Department != nil {
		e.Department = *r.Department
	}
	if r.Designation != nil {
		e.Designation = *r.Designation
	}
	if r.JoiningDate != nil {
		e.JoiningDate = *r.JoiningDate
	}
	if r.EmploymentType != nil {
		e.EmploymentType = EmploymentType(*r.EmploymentType)
	}
	if r.Status != nil {
		e.Status = EmploymentStatus(*r.Status)
	}
	if r.Salary != nil {
		e.Salary = *r.Salary
	}
}

type EmployeeFilter struct {
	Department string `json:"department,omitempty"`
	Status     string `json:"status,omitempty"`
}

// Matches reports whether e satisfies every non-empty filter field.
func (f EmployeeFilter) Matches(e Employee) bool {
	if f.Department != "" && e.Department != f.Department {
		return false
	}
	if f.Status != "" && string(e.Status) != f.Status {
		return false
	}
	return true
}
