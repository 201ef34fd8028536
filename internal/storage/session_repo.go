package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_session_store.go -package=mocks clubnotes/internal/storage SessionStore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"clubnotes/internal/notes"
)

var (
	// ErrNotFound is returned when a record is not found.
	ErrNotFound = errors.New("record not found")
)

// SessionStore defines the interface for session storage operations.
type SessionStore interface {
	// Get returns the session with the given ID or ErrNotFound.
	// Trashed sessions are not found.
	Get(ctx context.Context, id string) (notes.Session, error)
	// List returns all sessions not in the trash, newest date first.
	List(ctx context.Context) ([]notes.Session, error)
	// Upsert inserts a session or replaces every field of an existing one.
	Upsert(ctx context.Context, session notes.Session) error
	// Delete moves a session to the trash. Returns ErrNotFound if there is no
	// such session outside the trash.
	Delete(ctx context.Context, id string) error
	// Restore takes a session out of the trash. Returns ErrNotFound if the
	// session is not in the trash.
	Restore(ctx context.Context, id string) error
	// PurgeDeleted permanently removes sessions trashed before the given time
	// and reports how many were removed.
	PurgeDeleted(ctx context.Context, before time.Time) (int64, error)
}

// SessionRepo stores sessions in SQLite with notes, exercises and links as
// JSON columns. It implements the SessionStore interface.
type SessionRepo struct {
	db *sql.DB
}

// NewSessionRepo creates a new SessionRepo.
func NewSessionRepo(db *sql.DB) *SessionRepo {
	return &SessionRepo{db: db}
}

// Get returns the session with the given ID.
func (r *SessionRepo) Get(ctx context.Context, id string) (notes.Session, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT id, date, notes, exercises, links FROM sessions WHERE id = ? AND deleted_at IS NULL",
		id,
	)

	session, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return notes.Session{}, ErrNotFound
	}
	if err != nil {
		return notes.Session{}, fmt.Errorf("failed to query session: %w", err)
	}
	return session, nil
}

// List returns all live sessions ordered by date, newest first.
func (r *SessionRepo) List(ctx context.Context) ([]notes.Session, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, date, notes, exercises, links FROM sessions WHERE deleted_at IS NULL ORDER BY date DESC, created_at DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	sessions := []notes.Session{}
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sessions: %w", err)
	}

	return sessions, nil
}

// Upsert inserts a session or replaces the stored one with the same ID.
// Notes are always replaced as a whole.
func (r *SessionRepo) Upsert(ctx context.Context, session notes.Session) error {
	if session.ID == "" {
		return errors.New("session id is required")
	}

	notesJSON, err := marshalColumn(session.Notes)
	if err != nil {
		return fmt.Errorf("failed to encode notes: %w", err)
	}
	exercisesJSON, err := marshalColumn(session.Exercises)
	if err != nil {
		return fmt.Errorf("failed to encode exercises: %w", err)
	}
	linksJSON, err := marshalColumn(session.Links)
	if err != nil {
		return fmt.Errorf("failed to encode links: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO sessions (id, date, notes, exercises, links, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		 ON CONFLICT (id) DO UPDATE SET
		 date = excluded.date, notes = excluded.notes, exercises = excluded.exercises,
		 links = excluded.links, updated_at = CURRENT_TIMESTAMP`,
		session.ID, session.Date, notesJSON, exercisesJSON, linksJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert session: %w", err)
	}

	return nil
}

// Delete marks a session as trashed. Its favorites and completions are kept
// until the session is purged.
func (r *SessionRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE sessions SET deleted_at = ? WHERE id = ? AND deleted_at IS NULL",
		time.Now().UnixMilli(), id,
	)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return requireAffected(result)
}

// Restore clears the trashed mark of a session.
func (r *SessionRepo) Restore(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE sessions SET deleted_at = NULL WHERE id = ? AND deleted_at IS NOT NULL",
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to restore session: %w", err)
	}
	return requireAffected(result)
}

// PurgeDeleted removes sessions trashed before the given time. Favorites and
// completions go with them through the foreign keys.
func (r *SessionRepo) PurgeDeleted(ctx context.Context, before time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM sessions WHERE deleted_at IS NOT NULL AND deleted_at < ?",
		before.UnixMilli(),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to purge sessions: %w", err)
	}
	purged, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check purged rows: %w", err)
	}
	return purged, nil
}

// requireAffected returns ErrNotFound when a statement changed no rows.
func requireAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (notes.Session, error) {
	var session notes.Session
	var notesJSON, exercisesJSON, linksJSON string

	if err := row.Scan(&session.ID, &session.Date, &notesJSON, &exercisesJSON, &linksJSON); err != nil {
		return notes.Session{}, err
	}

	if err := json.Unmarshal([]byte(notesJSON), &session.Notes); err != nil {
		return notes.Session{}, fmt.Errorf("failed to decode notes: %w", err)
	}
	if err := json.Unmarshal([]byte(exercisesJSON), &session.Exercises); err != nil {
		return notes.Session{}, fmt.Errorf("failed to decode exercises: %w", err)
	}
	if err := json.Unmarshal([]byte(linksJSON), &session.Links); err != nil {
		return notes.Session{}, fmt.Errorf("failed to decode links: %w", err)
	}

	// Decoded "null" columns become empty slices so callers never see nil.
	if session.Notes == nil {
		session.Notes = []notes.Note{}
	}
	for i := range session.Notes {
		if session.Notes[i].Examples == nil {
			session.Notes[i].Examples = []string{}
		}
	}
	if session.Exercises == nil {
		session.Exercises = []notes.Exercise{}
	}
	if session.Links == nil {
		session.Links = []notes.Link{}
	}

	return session, nil
}

// marshalColumn encodes v as JSON, storing nil slices as "[]".
func marshalColumn[T any](v []T) (string, error) {
	if v == nil {
		v = []T{}
	}
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
