// Package sqlite contains the SQLite implementation of the session
// repository. It stands in for the single browser-local storage slot of
// the original activity.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/scriptsplit/internal/ports/secondary"
)

// SessionRepository implements secondary.SessionRepository with SQLite.
type SessionRepository struct {
	db *sql.DB
}

// NewSessionRepository creates a new SQLite session repository.
func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

var _ secondary.SessionRepository = (*SessionRepository)(nil)

// Save stores a payload under a slot, replacing any prior value.
func (r *SessionRepository) Save(ctx context.Context, slot, payload string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO session_slots (slot, payload, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(slot) DO UPDATE SET payload = excluded.payload, updated_at = CURRENT_TIMESTAMP`,
		slot, payload,
	)
	if err != nil {
		return fmt.Errorf("failed to save session slot %s: %w", slot, err)
	}
	return nil
}

// Load retrieves a slot's payload. A missing slot is not an error.
func (r *SessionRepository) Load(ctx context.Context, slot string) (string, bool, error) {
	var payload string
	err := r.db.QueryRowContext(ctx,
		"SELECT payload FROM session_slots WHERE slot = ?", slot,
	).Scan(&payload)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to load session slot %s: %w", slot, err)
	}
	return payload, true, nil
}

// Clear removes every slot.
func (r *SessionRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM session_slots"); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
