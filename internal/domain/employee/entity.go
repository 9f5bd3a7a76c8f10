package employee

type Employee struct {
	ID             string           `json:"id"`
	EmpCode        string           `json:"empCode"`
	FirstName      string           `json:"firstName"`
	LastName       string           `json:"lastName"`
	Email          string           `json:"email"`
	Department     string           `json:"department"`
	Designation    string           `json:"designation"`
	JoiningDate    string           `json:"joiningDate"`
	EmploymentType EmploymentType   `json:"employmentType"`
	Status         EmploymentStatus `json:"status"`
	Salary         float64          `json:"salary"`
}

// FullName joins first and last name.
func (e Employee) FullName() string {
	if e.LastName == "" {
		return e.FirstName
	}
	return e.FirstName + " " + e.LastName
}

type EmploymentType string

const (
	EmploymentTypeFullTime EmploymentType = "FULL_TIME"
	EmploymentTypeContract EmploymentType = "CONTRACT"
	EmploymentTypeIntern   EmploymentType = "INTERN"
	EmploymentTypeTrainer  EmploymentType = "TRAINER"
)

type EmploymentStatus string

const (
	EmploymentStatusActive   EmploymentStatus = "ACTIVE"
	EmploymentStatusInactive EmploymentStatus = "INACTIVE"
)
