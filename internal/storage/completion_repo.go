package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_completion_store.go -package=mocks clubnotes/internal/storage CompletionStore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// CompletionStore defines the interface for session completion storage.
type CompletionStore interface {
	// IsComplete reports whether the user marked the session complete.
	IsComplete(ctx context.Context, userID, sessionID string) (bool, error)
	// Set marks the session complete. Marking it again is a no-op.
	Set(ctx context.Context, userID, sessionID string, at time.Time) error
	// Unset clears the mark. Clearing an absent mark is a no-op.
	Unset(ctx context.Context, userID, sessionID string) error
	// ListByUser returns the user's completions of live sessions, oldest first.
	ListByUser(ctx context.Context, userID string) ([]CompletionRecord, error)
}

// CompletionRepo stores per-user session completions in SQLite.
// It implements the CompletionStore interface.
type CompletionRepo struct {
	db *sql.DB
}

// NewCompletionRepo creates a new CompletionRepo.
func NewCompletionRepo(db *sql.DB) *CompletionRepo {
	return &CompletionRepo{db: db}
}

// IsComplete reports whether a completion row exists.
func (r *CompletionRepo) IsComplete(ctx context.Context, userID, sessionID string) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx,
		"SELECT 1 FROM completions WHERE user_id = ? AND session_id = ?",
		userID, sessionID,
	).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to query completion: %w", err)
	}
	return true, nil
}

// Set inserts a completion, keeping the original time if one exists.
func (r *CompletionRepo) Set(ctx context.Context, userID, sessionID string, at time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO completions (user_id, session_id, completed_at)
		 VALUES (?, ?, ?)
		 ON CONFLICT (user_id, session_id) DO NOTHING`,
		userID, sessionID, at.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert completion: %w", err)
	}
	return nil
}

// Unset deletes a completion.
func (r *CompletionRepo) Unset(ctx context.Context, userID, sessionID string) error {
	_, err := r.db.ExecContext(ctx,
		"DELETE FROM completions WHERE user_id = ? AND session_id = ?",
		userID, sessionID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete completion: %w", err)
	}
	return nil
}

// ListByUser returns the user's completions, skipping trashed sessions.
func (r *CompletionRepo) ListByUser(ctx context.Context, userID string) ([]CompletionRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT user_id, session_id, completed_at FROM completions
		 WHERE user_id = ? AND session_id IN (SELECT id FROM sessions WHERE deleted_at IS NULL)
		 ORDER BY completed_at, rowid`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query completions: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	completions := []CompletionRecord{}
	for rows.Next() {
		var c CompletionRecord
		var completedAt int64
		if err := rows.Scan(&c.UserID, &c.SessionID, &completedAt); err != nil {
			return nil, fmt.Errorf("failed to scan completion: %w", err)
		}
		c.CompletedAt = time.UnixMilli(completedAt)
		completions = append(completions, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate completions: %w", err)
	}

	return completions, nil
}
