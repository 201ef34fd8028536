package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_favorite_store.go -package=mocks clubnotes/internal/storage FavoriteStore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"clubnotes/internal/notes"
)

// FavoriteStore defines the interface for favorite storage operations.
type FavoriteStore interface {
	// Get returns a user's favorite by ID or ErrNotFound.
	Get(ctx context.Context, userID, id string) (*FavoriteRecord, error)
	// ListByUser returns a user's favorites in the order they were added,
	// skipping those of trashed sessions.
	ListByUser(ctx context.Context, userID string) ([]FavoriteRecord, error)
	// Insert stores a new favorite. Inserting an existing favorite is a no-op.
	Insert(ctx context.Context, fav *FavoriteRecord) error
	// Delete removes a user's favorite. Returns ErrNotFound if it does not exist.
	Delete(ctx context.Context, userID, id string) error
}

// FavoriteRepo provides methods for favorite operations.
// It implements the FavoriteStore interface.
type FavoriteRepo struct {
	db *sql.DB
}

// NewFavoriteRepo creates a new FavoriteRepo.
func NewFavoriteRepo(db *sql.DB) *FavoriteRepo {
	return &FavoriteRepo{db: db}
}

// Get returns a user's favorite by ID.
func (r *FavoriteRepo) Get(ctx context.Context, userID, id string) (*FavoriteRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT id, user_id, session_id, session_date, note, added_at FROM favorites WHERE user_id = ? AND id = ?",
		userID, id,
	)

	fav, err := scanFavorite(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query favorite: %w", err)
	}
	return fav, nil
}

// ListByUser returns a user's favorites of live sessions, oldest first.
func (r *FavoriteRepo) ListByUser(ctx context.Context, userID string) ([]FavoriteRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, session_id, session_date, note, added_at FROM favorites
		 WHERE user_id = ? AND session_id IN (SELECT id FROM sessions WHERE deleted_at IS NULL)
		 ORDER BY added_at, rowid`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query favorites: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	favorites := []FavoriteRecord{}
	for rows.Next() {
		fav, err := scanFavorite(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan favorite: %w", err)
		}
		favorites = append(favorites, *fav)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate favorites: %w", err)
	}

	return favorites, nil
}

// Insert stores a new favorite. AddedAt defaults to now.
// An existing favorite keeps its original AddedAt.
func (r *FavoriteRepo) Insert(ctx context.Context, fav *FavoriteRecord) error {
	if fav.AddedAt.IsZero() {
		fav.AddedAt = time.Now()
	}
	if fav.ID == "" {
		fav.ID = FavoriteID(fav.SessionID, fav.Note.Title)
	}

	noteJSON, err := json.Marshal(fav.Note)
	if err != nil {
		return fmt.Errorf("failed to encode note: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO favorites (id, user_id, session_id, session_date, note, added_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT (user_id, id) DO NOTHING`,
		fav.ID, fav.UserID, fav.SessionID, fav.SessionDate, string(noteJSON), fav.AddedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert favorite: %w", err)
	}

	return nil
}

// Delete removes a user's favorite.
func (r *FavoriteRepo) Delete(ctx context.Context, userID, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM favorites WHERE user_id = ? AND id = ?", userID, id)
	if err != nil {
		return fmt.Errorf("failed to delete favorite: %w", err)
	}
	return requireAffected(result)
}

func scanFavorite(row rowScanner) (*FavoriteRecord, error) {
	var fav FavoriteRecord
	var noteJSON string
	var addedAt int64

	if err := row.Scan(&fav.ID, &fav.UserID, &fav.SessionID, &fav.SessionDate, &noteJSON, &addedAt); err != nil {
		return nil, err
	}

	var note notes.Note
	if err := json.Unmarshal([]byte(noteJSON), &note); err != nil {
		return nil, fmt.Errorf("failed to decode note: %w", err)
	}
	if note.Examples == nil {
		note.Examples = []string{}
	}
	fav.Note = note
	fav.AddedAt = time.UnixMilli(addedAt)

	return &fav, nil
}
