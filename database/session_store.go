package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/SRSager/bucks-county-fence/models"
)

// DB is the slice of the pgx pool the session store needs; narrowed so
// tests can substitute a mock.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// SessionStore persists in-progress lead records as one JSONB row per
// session key. It backs form.Storage when a database is configured.
type SessionStore struct {
	db DB
}

func NewSessionStore(db DB) *SessionStore {
	return &SessionStore{db: db}
}

func (s *SessionStore) Load(ctx context.Context, key string) (*models.Lead, error) {
	var raw []byte
	err := s.db.QueryRow(ctx,
		`SELECT record FROM form_sessions WHERE session_key=$1`, key,
	).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load form session: %w", err)
	}
	var lead models.Lead
	if err := json.Unmarshal(raw, &lead); err != nil {
		return nil, fmt.Errorf("decode form session: %w", err)
	}
	return &lead, nil
}

func (s *SessionStore) Save(ctx context.Context, key string, lead models.Lead) error {
	raw, err := json.Marshal(lead)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(ctx, `INSERT INTO form_sessions(session_key, record, updated_at)
VALUES($1, $2::jsonb, now())
ON CONFLICT (session_key) DO UPDATE SET record=EXCLUDED.record, updated_at=now()`, key, string(raw))
	if err != nil {
		return fmt.Errorf("save form session: %w", err)
	}
	return nil
}

func (s *SessionStore) Delete(ctx context.Context, key string) error {
	_, err := s.db.Exec(ctx, `DELETE FROM form_sessions WHERE session_key=$1`, key)
	if err != nil {
		return fmt.Errorf("delete form session: %w", err)
	}
	return nil
}
