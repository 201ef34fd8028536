package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clubnotes/internal/config"
	"clubnotes/internal/http"
	"clubnotes/internal/importer"
	"clubnotes/internal/service"
	"clubnotes/internal/storage"
)

//go:generate swagger generate spec -o swagger.json

// General API information
//
// This API serves the notes, exercises and student progress of English speaking club sessions.
//
// swagger:meta
//
// ---
// swagger: '2.0'
// info:
//   title: Club Notes API
//   description: |
//     Stores session notes parsed from the admin's bulk text, searches them, and tracks
//     each student's favorite notes and completed sessions.
//   version: 1.0.0
// schemes:
//   - http
//   - https
// consumes:
//   - application/json
// produces:
//   - application/json

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure structured logging with configurable level and format
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

	// Initialize database
	db, err := storage.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := storage.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	slog.Info("Database initialized", "path", cfg.DBPath)

	// Create repository instances
	sessionRepo := storage.NewSessionRepo(db)
	favoriteRepo := storage.NewFavoriteRepo(db)
	completionRepo := storage.NewCompletionRepo(db)

	// Create services
	sessionService := service.NewSessionService(sessionRepo)
	searchService := service.NewSearchService(sessionService, cfg.SnippetMaxLength)
	favoriteService := service.NewFavoriteService(favoriteRepo, sessionRepo)
	progressService := service.NewProgressService(completionRepo, sessionRepo)

	router := http.NewRouter(&http.Deps{
		SessionService:  sessionService,
		SearchService:   searchService,
		FavoriteService: favoriteService,
		ProgressService: progressService,
		DB:              db,
		AllowedOrigin:   cfg.CORSAllowedOrigin,
	})

	server := &nethttp.Server{
		Addr:              ":" + cfg.APIPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Import session notes in background after router is ready
	if cfg.ImportDir != "" {
		go func() {
			slog.Info("Starting background import of session notes", "dir", cfg.ImportDir)
			if _, err := importer.NewImporter(sessionService, cfg.ImportDir).ImportAll(ctx); err != nil {
				slog.Error("Import completed with errors", "error", err)
			} else {
				slog.Info("Import completed successfully")
			}
		}()
	}

	// Deleted sessions stay restorable for the retention period
	go service.RunTrashPurger(ctx, sessionService, cfg.TrashRetention, min(cfg.TrashRetention, time.Hour))

	go func() {
		slog.Info("Starting API server", "addr", server.Addr, "snippet_max_length", cfg.SnippetMaxLength)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			log.Fatalf("API server failed to start: %v", err)
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down API server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
	}
}
