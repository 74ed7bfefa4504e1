package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/trijoshh/attendance-backend-go/internal/domain/location"
)

// LastKnownStore is the durable single-row mirror of the most recent
// accepted fix.
type LastKnownStore struct {
	db *sql.DB
}

func NewLastKnownStore(db *sql.DB) *LastKnownStore {
	return &LastKnownStore{db: db}
}

func (s *LastKnownStore) Save(ctx context.Context, fix location.Fix) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO last_known_location (id, latitude, longitude, accuracy, timestamp)
		VALUES (1, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			latitude = excluded.latitude,
			longitude = excluded.longitude,
			accuracy = excluded.accuracy,
			timestamp = excluded.timestamp`,
		fix.Latitude, fix.Longitude, fix.Accuracy, fix.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("save last-known location: %w", err)
	}
	return nil
}

func (s *LastKnownStore) Get(ctx context.Context) (location.Fix, error) {
	var fix location.Fix
	err := s.db.QueryRowContext(ctx, `
		SELECT latitude, longitude, accuracy, timestamp
		FROM last_known_location WHERE id = 1`,
	).Scan(&fix.Latitude, &fix.Longitude, &fix.Accuracy, &fix.Timestamp)
	if errors.Is(err, sql.ErrNoRows) {
		return location.Fix{}, location.ErrNoLastKnown
	}
	if err != nil {
		return location.Fix{}, fmt.Errorf("scan last-known location: %w", err)
	}
	return fix, nil
}
