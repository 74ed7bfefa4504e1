package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/trijoshh/attendance-backend-go/internal/domain/worklog"
)

// WorklogRepository persists work log entries in sqlite.
type WorklogRepository struct {
	db *sql.DB
}

func NewWorklogRepository(db *sql.DB) *WorklogRepository {
	return &WorklogRepository{db: db}
}

const worklogColumns = `id, employee_id, date, task_description, hours_spent, project,
	priority, is_completed, created_at, updated_at`

func (r *WorklogRepository) Create(ctx context.Context, entry worklog.Entry) (worklog.Entry, error) {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO work_log_entries (`+worklogColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.EmployeeID, entry.Date, entry.TaskDescription,
		entry.HoursSpent, entry.Project, entry.Priority, entry.IsCompleted,
		entry.CreatedAt, entry.UpdatedAt,
	)
	if err != nil {
		return worklog.Entry{}, fmt.Errorf("insert work log entry: %w", err)
	}
	return entry, nil
}

func (r *WorklogRepository) GetByID(ctx context.Context, id string) (worklog.Entry, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+worklogColumns+` FROM work_log_entries WHERE id = ?`, id)
	return scanWorklog(row)
}

func (r *WorklogRepository) Update(ctx context.Context, entry worklog.Entry) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE work_log_entries
		SET date = ?, task_description = ?, hours_spent = ?, project = ?,
			priority = ?, is_completed = ?, updated_at = ?
		WHERE id = ?`,
		entry.Date, entry.TaskDescription, entry.HoursSpent, entry.Project,
		entry.Priority, entry.IsCompleted, entry.UpdatedAt, entry.ID,
	)
	if err != nil {
		return fmt.Errorf("update work log entry: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update work log entry: %w", err)
	}
	if affected == 0 {
		return worklog.ErrEntryNotFound
	}
	return nil
}

func (r *WorklogRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM work_log_entries WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete work log entry: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete work log entry: %w", err)
	}
	if affected == 0 {
		return worklog.ErrEntryNotFound
	}
	return nil
}

func (r *WorklogRepository) List(ctx context.Context, filter worklog.Filter) ([]worklog.Entry, error) {
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
	if filter.Project != "" {
		conds = append(conds, "project = ?")
		args = append(args, filter.Project)
	}
	if filter.Completed != nil {
		conds = append(conds, "is_completed = ?")
		args = append(args, *filter.Completed)
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+worklogColumns+` FROM work_log_entries`+where+
			` ORDER BY date DESC, created_at DESC`, args...)
	if err != nil {
		return nil, fmt.Errorf("list work log entries: %w", err)
	}
	defer rows.Close()

	var entries []worklog.Entry
	for rows.Next() {
		entry, err := scanWorklog(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list work log entries: %w", err)
	}
	return entries, nil
}

func scanWorklog(row rowScanner) (worklog.Entry, error) {
	var entry worklog.Entry

	err := row.Scan(
		&entry.ID, &entry.EmployeeID, &entry.Date, &entry.TaskDescription,
		&entry.HoursSpent, &entry.Project, &entry.Priority, &entry.IsCompleted,
		&entry.CreatedAt, &entry.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return worklog.Entry{}, worklog.ErrEntryNotFound
	}
	if err != nil {
		return worklog.Entry{}, fmt.Errorf("scan work log entry: %w", err)
	}
	return entry, nil
}
