package handlers

import (
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"

	"clubnotes/internal/notes"
	"clubnotes/internal/search"
	"clubnotes/internal/service"
	"clubnotes/internal/storage"
)

// FavoriteHandler serves a user's bookmarked notes.
type FavoriteHandler struct {
	favorites service.FavoriteService
}

// NewFavoriteHandler creates a new FavoriteHandler.
func NewFavoriteHandler(favorites service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favorites: favorites}
}

// ToggleFavoriteRequest identifies the note to bookmark or unbookmark.
//
// swagger:model ToggleFavoriteRequest
type ToggleFavoriteRequest struct {
	SessionID string `json:"session_id"`
	NoteTitle string `json:"note_title"`
}

// ToggleFavoriteResponse reports whether the note is a favorite after the toggle.
//
// swagger:model ToggleFavoriteResponse
type ToggleFavoriteResponse struct {
	ID       string `json:"id"`
	Favorite bool   `json:"favorite"`
}

// FavoriteResponse is one bookmarked note.
//
// swagger:model FavoriteResponse
type FavoriteResponse struct {
	ID          string     `json:"id"`
	SessionID   string     `json:"session_id"`
	SessionDate string     `json:"session_date"`
	DisplayDate string     `json:"display_date"`
	Note        notes.Note `json:"note"`
	AddedAt     string     `json:"added_at"`
}

// List returns the user's favorites.
//
// swagger:route GET /api/users/{userID}/favorites favorites listFavorites
//
// # List favorites
//
// Favorites of trashed sessions are left out.
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
//	  description: Favorites in the order they were added
//	  schema:
//	    type: array
//	    items:
//	      "$ref": "#/definitions/FavoriteResponse"
func (h *FavoriteHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	favs, err := h.favorites.List(ctx, chi.URLParam(r, "userID"))
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to list favorites")
		return
	}

	writeJSON(ctx, w, http.StatusOK, lo.Map(favs, func(f storage.FavoriteRecord, _ int) FavoriteResponse {
		return FavoriteResponse{
			ID:          f.ID,
			SessionID:   f.SessionID,
			SessionDate: f.SessionDate,
			DisplayDate: search.FormatDate(f.SessionDate),
			Note:        f.Note,
			AddedAt:     f.AddedAt.UTC().Format(time.RFC3339),
		}
	}))
}

// Toggle adds or removes a favorite.
//
// swagger:route POST /api/users/{userID}/favorites favorites toggleFavorite
//
// # Toggle a favorite
//
// ---
// consumes:
// - application/json
// produces:
// - application/json
// parameters:
//   - in: path
//     name: userID
//     type: string
//     required: true
//   - in: body
//     name: body
//     required: true
//     schema:
//     "$ref": "#/definitions/ToggleFavoriteRequest"
//
// responses:
//
//	'200':
//	  description: Favorite state after the toggle
//	  schema:
//	    "$ref": "#/definitions/ToggleFavoriteResponse"
//	'400':
//	  description: Missing session_id or note_title
//	  schema:
//	    "$ref": "#/definitions/ErrorResponse"
//	'404':
//	  description: Unknown session or note
//	  schema:
//	    "$ref": "#/definitions/ErrorResponse"
func (h *FavoriteHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ToggleFavoriteRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.SessionID == "" || req.NoteTitle == "" {
		writeError(w, http.StatusBadRequest, "session_id and note_title are required")
		return
	}

	added, err := h.favorites.Toggle(ctx, chi.URLParam(r, "userID"), req.SessionID, req.NoteTitle)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to toggle favorite")
		return
	}

	writeJSON(ctx, w, http.StatusOK, ToggleFavoriteResponse{
		ID:       storage.FavoriteID(req.SessionID, req.NoteTitle),
		Favorite: added,
	})
}

// Status reports whether a note is one of the user's favorites.
//
// swagger:route GET /api/users/{userID}/favorites/status favorites favoriteStatus
//
// # Check a favorite
//
// ---
// produces:
// - application/json
// parameters:
//   - in: path
//     name: userID
//     type: string
//     required: true
//   - in: query
//     name: session_id
//     type: string
//     required: true
//   - in: query
//     name: note_title
//     type: string
//     required: true
//
// responses:
//
//	'200':
//	  description: Whether the note is a favorite
//	  schema:
//	    "$ref": "#/definitions/ToggleFavoriteResponse"
//	'400':
//	  description: Missing session_id or note_title
//	  schema:
//	    "$ref": "#/definitions/ErrorResponse"
func (h *FavoriteHandler) Status(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sessionID := r.URL.Query().Get("session_id")
	noteTitle := r.URL.Query().Get("note_title")
	if sessionID == "" || noteTitle == "" {
		writeError(w, http.StatusBadRequest, "session_id and note_title are required")
		return
	}

	favorite, err := h.favorites.IsFavorite(ctx, chi.URLParam(r, "userID"), sessionID, noteTitle)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to check favorite")
		return
	}

	writeJSON(ctx, w, http.StatusOK, ToggleFavoriteResponse{
		ID:       storage.FavoriteID(sessionID, noteTitle),
		Favorite: favorite,
	})
}

// Remove deletes a favorite by ID.
//
// swagger:route DELETE /api/users/{userID}/favorites/{favoriteID} favorites removeFavorite
//
// # Remove a favorite
//
// The favorite ID embeds the note title, so it must be path-escaped.
//
// ---
// parameters:
//   - in: path
//     name: userID
//     type: string
//     required: true
//   - in: path
//     name: favoriteID
//     type: string
//     required: true
//
// responses:
//
//	'204':
//	  description: Favorite removed
//	'400':
//	  description: Malformed escape in the favorite ID
//	  schema:
//	    "$ref": "#/definitions/ErrorResponse"
//	'404':
//	  description: Unknown favorite
//	  schema:
//	    "$ref": "#/definitions/ErrorResponse"
func (h *FavoriteHandler) Remove(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Favorite IDs embed note titles, so the segment may carry escapes like %2F.
	favoriteID, err := url.PathUnescape(chi.URLParam(r, "favoriteID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid favorite ID")
		return
	}

	if err := h.favorites.Remove(ctx, chi.URLParam(r, "userID"), favoriteID); err != nil {
		handleServiceError(w, ctx, err, "Failed to remove favorite")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
