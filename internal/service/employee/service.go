package employee

import (
	"context"
	"log/slog"

	"github.com/prakura/hrms-backend-go/internal/domain/employee"
	"github.com/prakura/hrms-backend-go/internal/pkg/validator"
	"github.com/prakura/hrms-backend-go/internal/service/facade"
)

const entity = "employee"

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	rt           facade.Runtime
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository, rt facade.Runtime) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
		rt:           rt,
	}
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, filter employee.EmployeeFilter) (_ []employee.Employee, err error) {
	done, err := s.rt.Begin(ctx, entity, "list")
	if err != nil {
		return nil, err
	}
	defer func() { done(err) }()

	return s.employeeRepo.List(ctx, filter)
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (_ employee.Employee, err error) {
	done, err := s.rt.Begin(ctx, entity, "get")
	if err != nil {
		return employee.Employee{}, err
	}
	defer func() { done(err) }()

	return s.employeeRepo.GetByID(ctx, id)
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (_ employee.Employee, err error) {
	done, err := s.rt.Begin(ctx, entity, "create")
	if err != nil {
		return employee.Employee{}, err
	}
	defer func() { done(err) }()

	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	created, err := s.employeeRepo.Create(ctx, req.ToEmployee())
	if err != nil {
		return employee.Employee{}, err
	}
	slog.Info("Employee created", "employee_id", created.ID, "emp_code", created.EmpCode)
	return created, nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (_ employee.Employee, err error) {
	done, err := s.rt.Begin(ctx, entity, "update")
	if err != nil {
		return employee.Employee{}, err
	}
	defer func() { done(err) }()

	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}
	return s.employeeRepo.Update(ctx, req.ID, req)
}

// DeleteEmployee implements employee.EmployeeService. Deleting an unknown id succeeds.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) (err error) {
	done, err := s.rt.Begin(ctx, entity, "delete")
	if err != nil {
		return err
	}
	defer func() { done(err) }()

	if validator.IsEmpty(id) {
		return validator.ValidationErrors{{Field: "id", Message: "id is required"}}
	}
	if err := s.employeeRepo.Delete(ctx, id); err != nil {
		return err
	}
	slog.Info("Employee deleted", "employee_id", id)
	return nil
}
