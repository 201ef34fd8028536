package importer

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"

	"clubnotes/internal/contextutil"
	"clubnotes/internal/notes"
	"clubnotes/internal/service"
)

// Outcome describes what importing one file did.
type Outcome string

const (
	OutcomeCreated   Outcome = "created"
	OutcomeUpdated   Outcome = "updated"
	OutcomeUnchanged Outcome = "unchanged"
)

// Stats summarises an ImportAll run.
type Stats struct {
	FilesScanned int `json:"files_scanned"`
	Created      int `json:"created"`
	Updated      int `json:"updated"`
	Unchanged    int `json:"unchanged"`
	Failed       int `json:"failed"`
}

// Importer loads a directory of dated notes files into sessions.
// A file named 2024-03-05.txt becomes the session for that date; when a
// session for the date already exists its notes are replaced and its
// exercises and links are kept.
type Importer struct {
	sessions service.SessionService
	root     string
}

// NewImporter creates an Importer reading files under root.
func NewImporter(sessions service.SessionService, root string) *Importer {
	return &Importer{
		sessions: sessions,
		root:     root,
	}
}

// ImportFile imports one scanned file. existing maps session dates to the
// stored session for that date and is updated in place.
func (im *Importer) ImportFile(ctx context.Context, file ScannedFile, existing map[string]notes.Session) (Outcome, error) {
	logger := contextutil.LoggerFromContext(ctx)

	content, err := os.ReadFile(file.AbsPath)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	text := string(content)

	current, ok := existing[file.Date]
	if !ok {
		session, err := im.sessions.CreateSession(ctx, service.SessionInput{Date: file.Date, NotesText: text})
		if err != nil {
			return "", err
		}
		existing[file.Date] = session
		logger.InfoContext(ctx, "imported session", "rel_path", file.RelPath, "session_id", session.ID, "notes", len(session.Notes))
		return OutcomeCreated, nil
	}

	// Skip files whose parsed notes match what is stored
	if notesHash(notes.Parse(text)) == notesHash(current.Notes) {
		logger.DebugContext(ctx, "skipping unchanged file", "rel_path", file.RelPath, "session_id", current.ID)
		return OutcomeUnchanged, nil
	}

	in := service.InputFromSession(current)
	in.NotesText = text
	session, err := im.sessions.UpdateSession(ctx, current.ID, in)
	if err != nil {
		return "", err
	}
	existing[file.Date] = session
	logger.InfoContext(ctx, "updated session notes", "rel_path", file.RelPath, "session_id", session.ID, "notes", len(session.Notes))
	return OutcomeUpdated, nil
}

// ImportAll scans the root and imports every file. Failures on single files
// are logged and counted; the returned error reports how many failed.
func (im *Importer) ImportAll(ctx context.Context) (Stats, error) {
	logger := contextutil.LoggerFromContext(ctx)

	scanned, err := Scan(ctx, im.root)
	if err != nil {
		return Stats{}, err
	}

	sessions, err := im.sessions.ListSessions(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to list sessions: %w", err)
	}
	existing := make(map[string]notes.Session, len(sessions))
	for _, s := range sessions {
		// Sessions are listed newest first; keep the first per date
		if _, ok := existing[s.Date]; !ok {
			existing[s.Date] = s
		}
	}

	logger.InfoContext(ctx, "starting import", "root", im.root, "total_files", len(scanned))

	stats := Stats{FilesScanned: len(scanned)}
	for _, file := range scanned {
		select {
		case <-ctx.Done():
			return stats, ctx.Err()
		default:
		}

		outcome, err := im.ImportFile(ctx, file, existing)
		if err != nil {
			stats.Failed++
			logger.ErrorContext(ctx, "failed to import file", "rel_path", file.RelPath, "error", err)
			continue
		}

		switch outcome {
		case OutcomeCreated:
			stats.Created++
		case OutcomeUpdated:
			stats.Updated++
		case OutcomeUnchanged:
			stats.Unchanged++
		}
	}

	logger.InfoContext(ctx, "import completed",
		"total_files", stats.FilesScanned,
		"created", stats.Created,
		"updated", stats.Updated,
		"unchanged", stats.Unchanged,
		"errors", stats.Failed,
	)

	if stats.Failed > 0 {
		return stats, fmt.Errorf("import completed with %d errors", stats.Failed)
	}
	return stats, nil
}

func notesHash(ns []notes.Note) string {
	sum := sha256.Sum256([]byte(notes.Format(ns)))
	return hex.EncodeToString(sum[:])
}
