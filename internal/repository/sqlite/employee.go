package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/trijoshh/attendance-backend-go/internal/domain/employee"
	"github.com/trijoshh/attendance-backend-go/internal/domain/location"
)

// EmployeeRepository persists employees in sqlite. Authorized locations are
// stored as a JSON column; they are always read and written whole.
type EmployeeRepository struct {
	db *sql.DB
}

func NewEmployeeRepository(db *sql.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

const employeeColumns = `id, code, name, email, password, phone, department, role, status,
	join_date, work_start, work_end, grace_period_minutes, authorized_locations,
	created_at, updated_at`

func (r *EmployeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	locations, err := marshalLocations(emp.AuthorizedLocations)
	if err != nil {
		return employee.Employee{}, err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO employees (`+employeeColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		emp.ID, emp.Code, emp.Name, emp.Email, emp.Password, emp.Phone,
		emp.Department, emp.Role, emp.Status, emp.JoinDate,
		emp.WorkingHours.Start, emp.WorkingHours.End, emp.GracePeriodMinutes,
		locations, emp.CreatedAt, emp.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err, "code") {
			return employee.Employee{}, employee.ErrCodeAlreadyUsed
		}
		if isUniqueViolation(err, "email") {
			return employee.Employee{}, employee.ErrEmailAlreadyUsed
		}
		return employee.Employee{}, fmt.Errorf("insert employee: %w", err)
	}
	return emp, nil
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+employeeColumns+` FROM employees WHERE id = ?`, id)
	return scanEmployee(row)
}

func (r *EmployeeRepository) GetByCode(ctx context.Context, code string) (employee.Employee, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+employeeColumns+` FROM employees WHERE code = ? COLLATE NOCASE`, code)
	return scanEmployee(row)
}

func (r *EmployeeRepository) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+employeeColumns+` FROM employees WHERE email = ? COLLATE NOCASE`, email)
	return scanEmployee(row)
}

func (r *EmployeeRepository) Update(ctx context.Context, emp employee.Employee) error {
	locations, err := marshalLocations(emp.AuthorizedLocations)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE employees
		SET name = ?, email = ?, password = ?, phone = ?, department = ?,
			role = ?, status = ?, join_date = ?, work_start = ?, work_end = ?,
			grace_period_minutes = ?, authorized_locations = ?, updated_at = ?
		WHERE id = ?`,
		emp.Name, emp.Email, emp.Password, emp.Phone, emp.Department,
		emp.Role, emp.Status, emp.JoinDate, emp.WorkingHours.Start,
		emp.WorkingHours.End, emp.GracePeriodMinutes, locations,
		emp.UpdatedAt, emp.ID,
	)
	if err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	if affected == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func (r *EmployeeRepository) List(ctx context.Context, department, status string) ([]employee.Employee, int64, error) {
	var conds []string
	var args []any
	if department != "" {
		conds = append(conds, "department = ? COLLATE NOCASE")
		args = append(args, department)
	}
	if status != "" {
		conds = append(conds, "status = ?")
		args = append(args, status)
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+employeeColumns+` FROM employees`+where+` ORDER BY code`, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, 0, err
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list employees: %w", err)
	}
	return employees, int64(len(employees)), nil
}

func scanEmployee(row rowScanner) (employee.Employee, error) {
	var emp employee.Employee
	var locations string

	err := row.Scan(
		&emp.ID, &emp.Code, &emp.Name, &emp.Email, &emp.Password, &emp.Phone,
		&emp.Department, &emp.Role, &emp.Status, &emp.JoinDate,
		&emp.WorkingHours.Start, &emp.WorkingHours.End, &emp.GracePeriodMinutes,
		&locations, &emp.CreatedAt, &emp.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	if err != nil {
		return employee.Employee{}, fmt.Errorf("scan employee: %w", err)
	}

	if err := json.Unmarshal([]byte(locations), &emp.AuthorizedLocations); err != nil {
		return employee.Employee{}, fmt.Errorf("decode authorized locations: %w", err)
	}
	return emp, nil
}

func marshalLocations(locations []location.AuthorizedLocation) (string, error) {
	if locations == nil {
		locations = []location.AuthorizedLocation{}
	}
	raw, err := json.Marshal(locations)
	if err != nil {
		return "", fmt.Errorf("encode authorized locations: %w", err)
	}
	return string(raw), nil
}

// isUniqueViolation matches the driver's constraint error text for a column.
func isUniqueViolation(err error, column string) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") &&
		strings.Contains(msg, "employees."+column)
}
