package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/trijoshh/attendance-backend-go/internal/domain/employee"
	"github.com/trijoshh/attendance-backend-go/internal/domain/registration"
)

// RegistrationRepository persists pending registrations in sqlite. The held
// employee data rides along as a JSON payload column.
type RegistrationRepository struct {
	db *sql.DB
}

func NewRegistrationRepository(db *sql.DB) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

func (r *RegistrationRepository) Create(ctx context.Context, p registration.Pending) (registration.Pending, error) {
	payload, err := json.Marshal(p.Employee)
	if err != nil {
		return registration.Pending{}, fmt.Errorf("encode registration payload: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO pending_registrations (id, email, payload, code, expires_at, attempts, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Employee.Email, string(payload), p.Code, p.ExpiresAt, p.Attempts, p.CreatedAt,
	)
	if err != nil {
		return registration.Pending{}, fmt.Errorf("insert pending registration: %w", err)
	}
	return p, nil
}

func (r *RegistrationRepository) GetByEmail(ctx context.Context, email string) (registration.Pending, error) {
	var p registration.Pending
	var payload string

	err := r.db.QueryRowContext(ctx, `
		SELECT id, payload, code, expires_at, attempts, created_at
		FROM pending_registrations WHERE email = ? COLLATE NOCASE`, email,
	).Scan(&p.ID, &payload, &p.Code, &p.ExpiresAt, &p.Attempts, &p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return registration.Pending{}, registration.ErrRegistrationNotFound
	}
	if err != nil {
		return registration.Pending{}, fmt.Errorf("scan pending registration: %w", err)
	}

	var req employee.CreateRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		return registration.Pending{}, fmt.Errorf("decode registration payload: %w", err)
	}
	p.Employee = req
	return p, nil
}

func (r *RegistrationRepository) Update(ctx context.Context, p registration.Pending) error {
	payload, err := json.Marshal(p.Employee)
	if err != nil {
		return fmt.Errorf("encode registration payload: %w", err)
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE pending_registrations
		SET email = ?, payload = ?, code = ?, expires_at = ?, attempts = ?
		WHERE id = ?`,
		p.Employee.Email, string(payload), p.Code, p.ExpiresAt, p.Attempts, p.ID,
	)
	if err != nil {
		return fmt.Errorf("update pending registration: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update pending registration: %w", err)
	}
	if affected == 0 {
		return registration.ErrRegistrationNotFound
	}
	return nil
}

func (r *RegistrationRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM pending_registrations WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete pending registration: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete pending registration: %w", err)
	}
	if affected == 0 {
		return registration.ErrRegistrationNotFound
	}
	return nil
}
