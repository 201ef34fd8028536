package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"

	"clubnotes/internal/service"
	"clubnotes/internal/storage"
)

// ProgressHandler serves a user's session completion marks.
type ProgressHandler struct {
	progress service.ProgressService
}

// NewProgressHandler creates a new ProgressHandler.
func NewProgressHandler(progress service.ProgressService) *ProgressHandler {
	return &ProgressHandler{progress: progress}
}

// ToggleProgressResponse reports whether the session is complete after a toggle.
//
// swagger:model ToggleProgressResponse
type ToggleProgressResponse struct {
	SessionID string `json:"session_id"`
	Completed bool   `json:"completed"`
}

// CompletionResponse is one completed session.
//
// swagger:model CompletionResponse
type CompletionResponse struct {
	SessionID   string `json:"session_id"`
	CompletedAt string `json:"completed_at"`
}

// List returns the sessions the user completed.
//
// swagger:route GET /api/users/{userID}/progress progress listProgress
//
// # List completed sessions
//
// Completions of trashed sessions are left out.
//
// ---
// produces:
// - application/json
// parameters:
//   - in: path
//     name: userID
//     type: string
//     required: true
//
// responses:
//
//	'200':
//	  description: Completed sessions, oldest mark first
//	  schema:
//	    type: array
//	    items:
//	      "$ref": "#/definitions/CompletionResponse"
func (h *ProgressHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	completions, err := h.progress.List(ctx, chi.URLParam(r, "userID"))
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to list progress")
		return
	}

	writeJSON(ctx, w, http.StatusOK, lo.Map(completions, func(c storage.CompletionRecord, _ int) CompletionResponse {
		return CompletionResponse{
			SessionID:   c.SessionID,
			CompletedAt: c.CompletedAt.UTC().Format(time.RFC3339),
		}
	}))
}

// Toggle marks a session complete or clears the mark.
//
// swagger:route POST /api/users/{userID}/progress/{sessionID} progress toggleProgress
//
// # Toggle session completion
//
// ---
// produces:
// - application/json
// parameters:
//   - in: path
//     name: userID
//     type: string
//     required: true
//   - in: path
//     name: sessionID
//     type: string
//     required: true
//
// responses:
//
//	'200':
//	  description: Completion state after the toggle
//	  schema:
//	    "$ref": "#/definitions/ToggleProgressResponse"
//	'404':
//	  description: Unknown or trashed session
//	  schema:
//	    "$ref": "#/definitions/ErrorResponse"
func (h *ProgressHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sessionID := chi.URLParam(r, "sessionID")
	completed, err := h.progress.Toggle(ctx, chi.URLParam(r, "userID"), sessionID)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to toggle progress")
		return
	}

	writeJSON(ctx, w, http.StatusOK, ToggleProgressResponse{
		SessionID: sessionID,
		Completed: completed,
	})
}
