package employee

import (
	"context"
)

// EmployeeService defines business logic for employee operations
type EmployeeService interface {
	// ListEmployees lists employees, optionally narrowed by department/status
	ListEmployees(ctx context.Context, filter EmployeeFilter) ([]Employee, error)

	// GetEmployee retrieves a single employee by ID
	GetEmployee(ctx context.Context, id string) (Employee, error)

	// CreateEmployee stores a new employee with a generated ID
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (Employee, error)

	// UpdateEmployee overwrites the supplied fields of an existing employee
	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (Employee, error)

	// DeleteEmployee removes an employee; unknown IDs are not an error
	DeleteEmployee(ctx context.Context, id string) error
}
