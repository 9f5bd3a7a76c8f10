package snapshot

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/prakura/hrms-backend-go/internal/domain/employee"
)

const empCodePrefix = "PRK-"

type employeeRepositoryImpl struct {
	db *DB
}

func NewEmployeeRepository(db *DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

func (r *employeeRepositoryImpl) List(ctx context.Context, f employee.EmployeeFilter) ([]employee.Employee, error) {
	var out []employee.Employee
	err := r.db.View(ctx, func(s Snapshot) error {
		out = filter(s.Employees, f.Matches)
		return nil
	})
	return out, err
}

func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	var out employee.Employee
	err := r.db.View(ctx, func(s Snapshot) error {
		i := indexOf(s.Employees, func(e employee.Employee) bool { return e.ID == id })
		if i < 0 {
			return employee.ErrEmployeeNotFound
		}
		out = s.Employees[i]
		return nil
	})
	return out, err
}

// Create assigns the ID and, when the code is blank, the next PRK- code.
func (r *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	err := r.db.WithTransaction(ctx, func(s *Snapshot) error {
		if newEmployee.EmpCode == "" {
			newEmployee.EmpCode = nextEmpCode(s.Employees)
		} else if empCodeTaken(s.Employees, newEmployee.EmpCode, "") {
			return employee.ErrEmployeeCodeExists
		}
		newEmployee.ID = newID()
		s.Employees = append(s.Employees, newEmployee)
		return nil
	})
	if err != nil {
		return employee.Employee{}, err
	}
	return newEmployee, nil
}

func (r *employeeRepositoryImpl) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	var out employee.Employee
	err := r.db.WithTransaction(ctx, func(s *Snapshot) error {
		i := indexOf(s.Employees, func(e employee.Employee) bool { return e.ID == id })
		if i < 0 {
			return employee.ErrEmployeeNotFound
		}
		if req.EmpCode != nil && empCodeTaken(s.Employees, *req.EmpCode, id) {
			return employee.ErrEmployeeCodeExists
		}
		req.Apply(&s.Employees[i])
		out = s.Employees[i]
		return nil
	})
	return out, err
}

func (r *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	return r.db.WithTransaction(ctx, func(s *Snapshot) error {
		if !remove(&s.Employees, func(e employee.Employee) bool { return e.ID == id }) {
			return errUnchanged
		}
		return nil
	})
}

func empCodeTaken(employees []employee.Employee, code, exceptID string) bool {
	return indexOf(employees, func(e employee.Employee) bool {
		return e.ID != exceptID && strings.EqualFold(e.EmpCode, code)
	}) >= 0
}

// nextEmpCode returns PRK-<n> with n one above the highest numeric PRK- code.
func nextEmpCode(employees []employee.Employee) string {
	highest := 1000
	for _, e := range employees {
		n, err := strconv.Atoi(strings.TrimPrefix(e.EmpCode, empCodePrefix))
		if err == nil && strings.HasPrefix(e.EmpCode, empCodePrefix) && n > highest {
			highest = n
		}
	}
	return fmt.Sprintf("%s%d", empCodePrefix, highest+1)
}
