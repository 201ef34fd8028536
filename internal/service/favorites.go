package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_favorite_service.go -package=mocks clubnotes/internal/service FavoriteService

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"clubnotes/internal/contextutil"
	"clubnotes/internal/storage"
)

// FavoriteService manages the notes each user has bookmarked.
type FavoriteService interface {
	// Toggle adds the note to the user's favorites, or removes it if present.
	// It reports whether the note is a favorite afterwards.
	Toggle(ctx context.Context, userID, sessionID, noteTitle string) (bool, error)
	// List returns a user's favorites in the order they were added.
	List(ctx context.Context, userID string) ([]storage.FavoriteRecord, error)
	// IsFavorite reports whether the user bookmarked the note.
	IsFavorite(ctx context.Context, userID, sessionID, noteTitle string) (bool, error)
	// Remove deletes a favorite by ID.
	Remove(ctx context.Context, userID, favoriteID string) error
}

type favoriteService struct {
	favorites storage.FavoriteStore
	sessions  storage.SessionStore
}

// NewFavoriteService creates a new FavoriteService.
func NewFavoriteService(favorites storage.FavoriteStore, sessions storage.SessionStore) FavoriteService {
	return &favoriteService{
		favorites: favorites,
		sessions:  sessions,
	}
}

func (s *favoriteService) Toggle(ctx context.Context, userID, sessionID, noteTitle string) (bool, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if err := requireUser(userID); err != nil {
		return false, err
	}

	id := storage.FavoriteID(sessionID, noteTitle)
	_, err := s.favorites.Get(ctx, userID, id)
	switch {
	case err == nil:
		// A concurrent toggle may have removed it already.
		if err := s.favorites.Delete(ctx, userID, id); err != nil && !errors.Is(err, storage.ErrNotFound) {
			return false, WrapError(err, "failed to remove favorite")
		}
		logger.InfoContext(ctx, "favorite removed", "user_id", userID, "favorite_id", id)
		return false, nil
	case !errors.Is(err, storage.ErrNotFound):
		return false, WrapError(err, "failed to check favorite")
	}

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return false, mapStoreError(err, "failed to get session")
	}
	note, ok := session.FindNote(noteTitle)
	if !ok {
		return false, fmt.Errorf("note %q: %w", noteTitle, ErrNotFound)
	}

	fav := &storage.FavoriteRecord{
		ID:          id,
		UserID:      userID,
		SessionID:   session.ID,
		SessionDate: session.Date,
		Note:        note,
	}
	if err := s.favorites.Insert(ctx, fav); err != nil {
		return false, WrapError(err, "failed to add favorite")
	}

	logger.InfoContext(ctx, "favorite added", "user_id", userID, "favorite_id", id)
	return true, nil
}

func (s *favoriteService) List(ctx context.Context, userID string) ([]storage.FavoriteRecord, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	favs, err := s.favorites.ListByUser(ctx, userID)
	if err != nil {
		return nil, WrapError(err, "failed to list favorites")
	}
	return favs, nil
}

func (s *favoriteService) IsFavorite(ctx context.Context, userID, sessionID, noteTitle string) (bool, error) {
	if strings.TrimSpace(userID) == "" {
		return false, nil
	}
	_, err := s.favorites.Get(ctx, userID, storage.FavoriteID(sessionID, noteTitle))
	if errors.Is(err, storage.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, WrapError(err, "failed to check favorite")
	}
	return true, nil
}

func (s *favoriteService) Remove(ctx context.Context, userID, favoriteID string) error {
	if err := requireUser(userID); err != nil {
		return err
	}
	if err := s.favorites.Delete(ctx, userID, favoriteID); err != nil {
		return mapStoreError(err, "failed to remove favorite")
	}
	return nil
}

func requireUser(userID string) error {
	if strings.TrimSpace(userID) == "" {
		return &ValidationError{Field: "user_id", Message: "is required"}
	}
	return nil
}
