package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/trijoshh/attendance-backend-go/internal/domain/attendance"
	"github.com/trijoshh/attendance-backend-go/internal/domain/location"
)

// AttendanceRepository persists attendance records in sqlite.
type AttendanceRepository struct {
	db *sql.DB
}

func NewAttendanceRepository(db *sql.DB) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

const attendanceColumns = `id, employee_id, employee_name, date, clock_in_time, clock_out_time,
	clock_in_location, clock_out_location, status, working_hours, late_minutes, notes,
	created_at, updated_at`

func (r *AttendanceRepository) Create(ctx context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	clockIn, err := marshalFix(record.ClockInLocation)
	if err != nil {
		return attendance.Attendance{}, err
	}
	clockOut, err := marshalFix(record.ClockOutLocation)
	if err != nil {
		return attendance.Attendance{}, err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO attendance_records (`+attendanceColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		record.ID, record.EmployeeID, record.EmployeeName, record.Date,
		record.ClockInTime, record.ClockOutTime, clockIn, clockOut,
		record.Status, record.WorkingHours, record.LateMinutes, record.Notes,
		record.CreatedAt, record.UpdatedAt,
	)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("insert attendance record: %w", err)
	}
	return record, nil
}

func (r *AttendanceRepository) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+attendanceColumns+`
		FROM attendance_records WHERE id = ?`, id)
	return scanAttendance(row)
}

func (r *AttendanceRepository) GetOpenByEmployeeAndDate(ctx context.Context, employeeID, date string) (attendance.Attendance, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+attendanceColumns+`
		FROM attendance_records
		WHERE employee_id = ? AND date = ? AND clock_out_time IS NULL`,
		employeeID, date)
	return scanAttendance(row)
}

func (r *AttendanceRepository) Update(ctx context.Context, record attendance.Attendance) error {
	clockIn, err := marshalFix(record.ClockInLocation)
	if err != nil {
		return err
	}
	clockOut, err := marshalFix(record.ClockOutLocation)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE attendance_records
		SET employee_name = ?, date = ?, clock_in_time = ?, clock_out_time = ?,
			clock_in_location = ?, clock_out_location = ?, status = ?,
			working_hours = ?, late_minutes = ?, notes = ?, updated_at = ?
		WHERE id = ?`,
		record.EmployeeName, record.Date, record.ClockInTime, record.ClockOutTime,
		clockIn, clockOut, record.Status, record.WorkingHours, record.LateMinutes,
		record.Notes, record.UpdatedAt, record.ID,
	)
	if err != nil {
		return fmt.Errorf("update attendance record: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update attendance record: %w", err)
	}
	if affected == 0 {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}

func (r *AttendanceRepository) List(ctx context.Context, filter attendance.Filter) ([]attendance.Attendance, int64, error) {
	where, args := attendanceWhere(filter)

	var total int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM attendance_records`+where, args...,
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count attendance records: %w", err)
	}

	query := `SELECT ` + attendanceColumns + ` FROM attendance_records` + where +
		` ORDER BY date DESC, clock_in_time DESC`
	if filter.PageSize > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		query += ` LIMIT ? OFFSET ?`
		args = append(args, filter.PageSize, (page-1)*filter.PageSize)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		record, err := scanAttendance(rows)
		if err != nil {
			return nil, 0, err
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list attendance records: %w", err)
	}
	return records, total, nil
}

func (r *AttendanceRepository) ListOpenBefore(ctx context.Context, date string) ([]attendance.Attendance, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+attendanceColumns+`
		FROM attendance_records
		WHERE clock_out_time IS NULL AND date < ?
		ORDER BY date ASC`, date)
	if err != nil {
		return nil, fmt.Errorf("list open attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		record, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list open attendance records: %w", err)
	}
	return records, nil
}

func attendanceWhere(filter attendance.Filter) (string, []any) {
	var conds []string
	var args []any

	if filter.EmployeeID != "" {
		conds = append(conds, "employee_id = ?")
		args = append(args, filter.EmployeeID)
	}
	if filter.Date != "" {
		conds = append(conds, "date = ?")
		args = append(args, filter.Date)
	}
	if filter.DateFrom != "" {
		conds = append(conds, "date >= ?")
		args = append(args, filter.DateFrom)
	}
	if filter.DateTo != "" {
		conds = append(conds, "date <= ?")
		args = append(args, filter.DateTo)
	}
	if filter.Status != "" {
		conds = append(conds, "status = ?")
		args = append(args, filter.Status)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAttendance(row rowScanner) (attendance.Attendance, error) {
	var record attendance.Attendance
	var clockIn, clockOut sql.NullString

	err := row.Scan(
		&record.ID, &record.EmployeeID, &record.EmployeeName, &record.Date,
		&record.ClockInTime, &record.ClockOutTime, &clockIn, &clockOut,
		&record.Status, &record.WorkingHours, &record.LateMinutes, &record.Notes,
		&record.CreatedAt, &record.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("scan attendance record: %w", err)
	}

	if record.ClockInLocation, err = unmarshalFix(clockIn); err != nil {
		return attendance.Attendance{}, err
	}
	if record.ClockOutLocation, err = unmarshalFix(clockOut); err != nil {
		return attendance.Attendance{}, err
	}
	return record, nil
}

func marshalFix(fix *location.Fix) (any, error) {
	if fix == nil {
		return nil, nil
	}
	raw, err := json.Marshal(fix)
	if err != nil {
		return nil, fmt.Errorf("encode location fix: %w", err)
	}
	return string(raw), nil
}

func unmarshalFix(raw sql.NullString) (*location.Fix, error) {
	if !raw.Valid || raw.String == "" {
		return nil, nil
	}
	var fix location.Fix
	if err := json.Unmarshal([]byte(raw.String), &fix); err != nil {
		return nil, fmt.Errorf("decode location fix: %w", err)
	}
	return &fix, nil
}
