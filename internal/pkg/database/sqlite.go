package database

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS employees (
	id                   TEXT PRIMARY KEY,
	code                 TEXT NOT NULL UNIQUE COLLATE NOCASE,
	name                 TEXT NOT NULL,
	email                TEXT NOT NULL UNIQUE COLLATE NOCASE,
	password             TEXT NOT NULL,
	phone                TEXT NOT NULL DEFAULT '',
	department           TEXT NOT NULL DEFAULT '',
	role                 TEXT NOT NULL,
	status               TEXT NOT NULL,
	join_date            TEXT NOT NULL DEFAULT '',
	work_start           TEXT NOT NULL,
	work_end             TEXT NOT NULL,
	grace_period_minutes INTEGER NOT NULL DEFAULT 0,
	authorized_locations TEXT NOT NULL DEFAULT '[]',
	created_at           TIMESTAMP NOT NULL,
	updated_at           TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS attendance_records (
	id                 TEXT PRIMARY KEY,
	employee_id        TEXT NOT NULL REFERENCES employees(id),
	employee_name      TEXT NOT NULL,
	date               TEXT NOT NULL,
	clock_in_time      TEXT NOT NULL,
	clock_out_time     TEXT,
	clock_in_location  TEXT,
	clock_out_location TEXT,
	status             TEXT NOT NULL,
	working_hours      REAL,
	late_minutes       INTEGER,
	notes              TEXT,
	created_at         TIMESTAMP NOT NULL,
	updated_at         TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_attendance_employee_date
	ON attendance_records(employee_id, date);

CREATE TABLE IF NOT EXISTS work_log_entries (
	id               TEXT PRIMARY KEY,
	employee_id      TEXT NOT NULL REFERENCES employees(id),
	date             TEXT NOT NULL,
	task_description TEXT NOT NULL,
	hours_spent      REAL NOT NULL,
	project          TEXT,
	priority         TEXT NOT NULL,
	is_completed     BOOLEAN NOT NULL DEFAULT 0,
	created_at       TIMESTAMP NOT NULL,
	updated_at       TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_worklog_employee_date
	ON work_log_entries(employee_id, date);

CREATE TABLE IF NOT EXISTS pending_registrations (
	id         TEXT PRIMARY KEY,
	email      TEXT NOT NULL UNIQUE COLLATE NOCASE,
	payload    TEXT NOT NULL,
	code       TEXT NOT NULL,
	expires_at TIMESTAMP NOT NULL,
	attempts   INTEGER NOT NULL DEFAULT 0,
	created_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS last_known_location (
	id        INTEGER PRIMARY KEY CHECK (id = 1),
	latitude  REAL NOT NULL,
	longitude REAL NOT NULL,
	accuracy  REAL NOT NULL,
	timestamp TIMESTAMP NOT NULL
);
`

// OpenSQLite opens (and creates, if needed) the embedded database at path
// and applies the schema. The pool is capped at one connection; the driver
// serializes writers anyway and a single connection keeps WAL happy.
func OpenSQLite(ctx context.Context, path string) (*sql.DB, error) {
	dsn := fmt.Sprintf(
		"file:%s?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)",
		path,
	)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite database: %w", err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return db, nil
}
