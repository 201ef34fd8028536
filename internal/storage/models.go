package storage

import (
	"time"

	"clubnotes/internal/notes"
)

// FavoriteRecord is a note a user bookmarked.
// The note is copied at bookmark time so it survives later session edits.
type FavoriteRecord struct {
	ID          string     // sessionID + "-" + note title
	UserID      string
	SessionID   string
	SessionDate string
	Note        notes.Note
	AddedAt     time.Time
}

// FavoriteID builds the identifier of a favorite for a note in a session.
func FavoriteID(sessionID, noteTitle string) string {
	return sessionID + "-" + noteTitle
}

// CompletionRecord marks a session a user has finished.
type CompletionRecord struct {
	UserID      string
	SessionID   string
	CompletedAt time.Time
}
