package importer

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"clubnotes/internal/service"
)

// noteExtensions are the file extensions treated as session notes.
var noteExtensions = map[string]bool{
	".txt": true,
	".md":  true,
}

// ScannedFile is a session notes file found under the import root.
type ScannedFile struct {
	Date    string // Session date taken from the file name (e.g., "2024-03-05")
	RelPath string // Relative path from the root (e.g., "2024/2024-03-05.txt")
	AbsPath string // Absolute file path
}

// Scan walks root and returns every notes file named after a session date,
// in walk order. Hidden directories are skipped, as are files whose name is
// not a YYYY-MM-DD date.
func Scan(ctx context.Context, root string) ([]ScannedFile, error) {
	var scanned []ScannedFile

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("failed to access path %s: %w", path, err)
		}

		// Check for context cancellation
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if d.IsDir() {
			if path != root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}

		ext := filepath.Ext(path)
		if !noteExtensions[ext] {
			return nil
		}

		date := strings.TrimSuffix(d.Name(), ext)
		if _, err := time.Parse(service.DateLayout, date); err != nil {
			return nil
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return fmt.Errorf("failed to compute relative path for %s: %w", path, err)
		}

		absPath, err := filepath.Abs(path)
		if err != nil {
			return fmt.Errorf("failed to resolve %s: %w", path, err)
		}

		scanned = append(scanned, ScannedFile{
			Date:    date,
			RelPath: filepath.ToSlash(relPath),
			AbsPath: absPath,
		})
		return nil
	})
	if err != nil {
		return scanned, fmt.Errorf("failed to scan %s: %w", root, err)
	}

	return scanned, nil
}
