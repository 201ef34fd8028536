package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	APIPort           string
	DBPath            string
	LogLevel          slog.Level
	LogFormat         string
	SnippetMaxLength  int
	CORSAllowedOrigin string
	ImportDir         string // optional; imported in the background at startup
	TrashRetention    time.Duration
}

// Load reads configuration from environment variables and returns a Config struct.
// It applies defaults for optional fields and validates the rest.
// If a .env file exists in the current directory or a parent, it is loaded first.
// Environment variables already set take precedence over .env file values.
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	// Walk up to find a project-level .env
	wd, err := os.Getwd()
	if err == nil {
		dir := wd
		for i := 0; i < 5; i++ { // Limit search depth
			envPath := filepath.Join(dir, ".env")
			if _, err := os.Stat(envPath); err == nil {
				_ = godotenv.Load(envPath)
				break
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break // Reached filesystem root
			}
			dir = parent
		}
	}

	cfg := &Config{
		APIPort:           getEnv("API_PORT", "9000"),
		DBPath:            getEnv("DB_PATH", "./data/clubnotes.db"),
		LogFormat:         strings.ToLower(getEnv("LOG_FORMAT", "text")),
		CORSAllowedOrigin: getEnv("CORS_ALLOWED_ORIGIN", ""),
		ImportDir:         getEnv("IMPORT_DIR", ""),
	}

	level, err := parseLogLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}
	cfg.LogLevel = level

	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("LOG_FORMAT must be \"text\" or \"json\", got %q", cfg.LogFormat)
	}

	snippetLength, err := strconv.Atoi(getEnv("SNIPPET_MAX_LENGTH", "150"))
	if err != nil {
		return nil, fmt.Errorf("SNIPPET_MAX_LENGTH must be a valid integer: %w", err)
	}
	if snippetLength <= 0 {
		return nil, fmt.Errorf("SNIPPET_MAX_LENGTH must be greater than 0")
	}
	cfg.SnippetMaxLength = snippetLength

	retention, err := time.ParseDuration(getEnv("TRASH_RETENTION", "24h"))
	if err != nil {
		return nil, fmt.Errorf("TRASH_RETENTION must be a valid duration: %w", err)
	}
	if retention <= 0 {
		return nil, fmt.Errorf("TRASH_RETENTION must be greater than 0")
	}
	cfg.TrashRetention = retention

	if cfg.ImportDir != "" {
		info, err := os.Stat(cfg.ImportDir)
		if err != nil {
			return nil, fmt.Errorf("IMPORT_DIR is not accessible: %w", err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("IMPORT_DIR must be a directory: %s", cfg.ImportDir)
		}
	}

	// Create the data directory for the database file
	dataDir := filepath.Dir(cfg.DBPath)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return cfg, nil
}

// parseLogLevel accepts debug, info, warn or error in any case.
func parseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("LOG_LEVEL is invalid: %w", err)
	}
	return level, nil
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
