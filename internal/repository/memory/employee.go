package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/trijoshh/attendance-backend-go/internal/domain/employee"
)

// EmployeeRepository is an in-memory employee store.
type EmployeeRepository struct {
	mu        sync.RWMutex
	employees map[string]employee.Employee
}

func NewEmployeeRepository() *EmployeeRepository {
	return &EmployeeRepository{employees: make(map[string]employee.Employee)}
}

func (r *EmployeeRepository) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.employees {
		if strings.EqualFold(existing.Code, emp.Code) {
			return employee.Employee{}, employee.ErrCodeAlreadyUsed
		}
		if strings.EqualFold(existing.Email, emp.Email) {
			return employee.Employee{}, employee.ErrEmailAlreadyUsed
		}
	}

	r.employees[emp.ID] = emp
	return emp, nil
}

func (r *EmployeeRepository) GetByID(_ context.Context, id string) (employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	emp, ok := r.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (r *EmployeeRepository) GetByCode(_ context.Context, code string) (employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, emp := range r.employees {
		if strings.EqualFold(emp.Code, code) {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *EmployeeRepository) GetByEmail(_ context.Context, email string) (employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, emp := range r.employees {
		if strings.EqualFold(emp.Email, email) {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *EmployeeRepository) Update(_ context.Context, emp employee.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.employees[emp.ID]; !ok {
		return employee.ErrEmployeeNotFound
	}
	r.employees[emp.ID] = emp
	return nil
}

func (r *EmployeeRepository) List(_ context.Context, department, status string) ([]employee.Employee, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []employee.Employee
	for _, emp := range r.employees {
		if department != "" && !strings.EqualFold(emp.Department, department) {
			continue
		}
		if status != "" && emp.Status != status {
			continue
		}
		matched = append(matched, emp)
	}

	sort.Slice(matched, func(i, j int) bool { return matched[i].Code < matched[j].Code })
	return matched, int64(len(matched)), nil
}
