package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"clubnotes/internal/config"
	"clubnotes/internal/storage"
)

var (
	dbPath string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to the SQLite database (defaults to DB_PATH)")
}

// openDB opens and migrates the database named by --db or the environment.
func openDB(cmd *cobra.Command) (*sql.DB, error) {
	path := dbPath
	if path == "" {
		cfg, err := config.Load()
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
		path = cfg.DBPath
	}

	db, err := storage.New(path)
	if err != nil {
		return nil, err
	}
	if err := storage.Migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	slog.Debug("Database opened", "path", path, "command", cmd.Name())
	return db, nil
}
