package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"

	"clubnotes/internal/notes"
	"clubnotes/internal/search"
	"clubnotes/internal/service"
)

// SessionHandler serves the session CRUD and exercise endpoints.
type SessionHandler struct {
	sessions service.SessionService
	progress service.ProgressService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(sessions service.SessionService, progress service.ProgressService) *SessionHandler {
	return &SessionHandler{
		sessions: sessions,
		progress: progress,
	}
}

// ExerciseRequest is an exercise as entered in the admin form.
// Options holds one option per line, the correct one prefixed with "*".
//
// swagger:model ExerciseRequest
type ExerciseRequest struct {
	Type         string       `json:"type"`
	Question     string       `json:"question"`
	Answer       string       `json:"answer,omitempty"`
	Options      string       `json:"options,omitempty"`
	Instructions string       `json:"instructions,omitempty"`
	Links        []notes.Link `json:"links,omitempty"`
}

// SessionRequest is the payload for creating or replacing a session.
//
// swagger:model SessionRequest
type SessionRequest struct {
	Date      string            `json:"date"`
	NotesText string            `json:"notes_text"`
	Exercises []ExerciseRequest `json:"exercises"`
	Links     []notes.Link      `json:"links"`
}

// SessionSummary is one row of the session list.
//
// swagger:model SessionSummary
type SessionSummary struct {
	ID            string `json:"id"`
	Date          string `json:"date"`
	DisplayDate   string `json:"display_date"`
	NoteCount     int    `json:"note_count"`
	ExerciseCount int    `json:"exercise_count"`
	LinkCount     int    `json:"link_count"`

	// Whether the requesting user marked the session complete
	Completed bool `json:"completed"`
}

// SessionResponse is a full session with its display date.
//
// swagger:model SessionResponse
type SessionResponse struct {
	notes.Session
	DisplayDate string `json:"display_date"`
}

// NotesTextResponse carries the editable notes text of a session.
//
// swagger:model NotesTextResponse
type NotesTextResponse struct {
	NotesText string `json:"notes_text"`
}

// CheckRequest is a student's answer to an exercise.
//
// swagger:model CheckRequest
type CheckRequest struct {
	Answer   string `json:"answer"`
	Selected *int   `json:"selected"`
}

// CheckResponse is the outcome of an answer check.
//
// swagger:model CheckResponse
type CheckResponse struct {
	Correct      bool   `json:"correct"`
	Feedback     string `json:"feedback"`
	CorrectIndex int    `json:"correct_index"`
}

// List returns the sessions, optionally filtered by a user's progress.
//
// swagger:route GET /api/sessions sessions listSessions
//
// # List sessions
//
// Returns session summaries, newest first unless sort=date-asc.
// With user_id each row carries the user's completion state, and
// filter=completed or filter=incomplete narrows the list.
//
// ---
// produces:
// - application/json
// parameters:
//   - in: query
//     name: user_id
//     type: string
//     required: false
//   - in: query
//     name: filter
//     type: string
//     enum: [all, completed, incomplete]
//     required: false
//   - in: query
//     name: sort
//     type: string
//     enum: [date-desc, date-asc]
//     required: false
//
// responses:
//
//	'200':
//	  description: Session summaries
//	  schema:
//	    type: array
//	    items:
//	      "$ref": "#/definitions/SessionSummary"
//	'400':
//	  description: Unknown filter or sort, or a filter without user_id
//	  schema:
//	    "$ref": "#/definitions/ErrorResponse"
func (h *SessionHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()

	listings, err := h.progress.Browse(ctx, service.ListOptions{
		UserID: query.Get("user_id"),
		Filter: query.Get("filter"),
		Sort:   query.Get("sort"),
	})
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to list sessions")
		return
	}

	summaries := lo.Map(listings, func(l service.SessionListing, _ int) SessionSummary {
		s := l.Session
		return SessionSummary{
			ID:            s.ID,
			Date:          s.Date,
			DisplayDate:   search.FormatDate(s.Date),
			NoteCount:     len(s.Notes),
			ExerciseCount: len(s.Exercises),
			LinkCount:     len(s.Links),
			Completed:     l.Completed,
		}
	})
	writeJSON(ctx, w, http.StatusOK, summaries)
}

// Get returns one session.
//
// swagger:route GET /api/sessions/{id} sessions getSession
//
// # Get a session
//
// ---
// produces:
// - application/json
// parameters:
//   - in: path
//     name: id
//     type: string
//     required: true
//
// responses:
//
//	'200':
//	  description: The session
//	  schema:
//	    "$ref": "#/definitions/SessionResponse"
//	'404':
//	  description: Unknown or trashed session
//	  schema:
//	    "$ref": "#/definitions/ErrorResponse"
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	session, err := h.sessions.GetSession(ctx, chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to get session")
		return
	}
	writeJSON(ctx, w, http.StatusOK, toSessionResponse(session))
}

// Create parses the submitted notes text and stores a new session.
//
// swagger:route POST /api/sessions sessions createSession
//
// # Create a session
//
// Parses notes_text into notes and stores the session under a new ID.
//
// ---
// consumes:
// - application/json
// produces:
// - application/json
// parameters:
//   - in: body
//     name: body
//     required: true
//     schema:
//     "$ref": "#/definitions/SessionRequest"
//
// responses:
//
//	'201':
//	  description: The stored session
//	  schema:
//	    "$ref": "#/definitions/SessionResponse"
//	'400':
//	  description: Missing or malformed date, or an unknown exercise type
//	  schema:
//	    "$ref": "#/definitions/ErrorResponse"
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req SessionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	session, err := h.sessions.CreateSession(ctx, req.toInput())
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to create session")
		return
	}
	writeJSON(ctx, w, http.StatusCreated, toSessionResponse(session))
}

// Update replaces a session.
//
// swagger:route PUT /api/sessions/{id} sessions updateSession
//
// # Replace a session
//
// ---
// consumes:
// - application/json
// produces:
// - application/json
// parameters:
//   - in: path
//     name: id
//     type: string
//     required: true
//   - in: body
//     name: body
//     required: true
//     schema:
//     "$ref": "#/definitions/SessionRequest"
//
// responses:
//
//	'200':
//	  description: The updated session
//	  schema:
//	    "$ref": "#/definitions/SessionResponse"
//	'400':
//	  description: Invalid session input
//	  schema:
//	    "$ref": "#/definitions/ErrorResponse"
//	'404':
//	  description: Unknown session
//	  schema:
//	    "$ref": "#/definitions/ErrorResponse"
func (h *SessionHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req SessionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	session, err := h.sessions.UpdateSession(ctx, chi.URLParam(r, "id"), req.toInput())
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to update session")
		return
	}
	writeJSON(ctx, w, http.StatusOK, toSessionResponse(session))
}

// Delete moves a session to the trash.
//
// swagger:route DELETE /api/sessions/{id} sessions deleteSession
//
// # Delete a session
//
// The session is hidden at once and can be restored until the trash is purged.
//
// ---
// parameters:
//   - in: path
//     name: id
//     type: string
//     required: true
//
// responses:
//
//	'204':
//	  description: Session moved to the trash
//	'404':
//	  description: Unknown or already trashed session
//	  schema:
//	    "$ref": "#/definitions/ErrorResponse"
func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.sessions.DeleteSession(ctx, chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, ctx, err, "Failed to delete session")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Restore undoes a delete.
//
// swagger:route POST /api/sessions/{id}/restore sessions restoreSession
//
// # Restore a deleted session
//
// ---
// produces:
// - application/json
// parameters:
//   - in: path
//     name: id
//     type: string
//     required: true
//
// responses:
//
//	'200':
//	  description: The restored session
//	  schema:
//	    "$ref": "#/definitions/SessionResponse"
//	'404':
//	  description: The session is not in the trash
//	  schema:
//	    "$ref": "#/definitions/ErrorResponse"
func (h *SessionHandler) Restore(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	session, err := h.sessions.RestoreSession(ctx, chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to restore session")
		return
	}
	writeJSON(ctx, w, http.StatusOK, toSessionResponse(session))
}

// Duplicate copies a session under a new ID.
//
// swagger:route POST /api/sessions/{id}/duplicate sessions duplicateSession
//
// # Duplicate a session
//
// ---
// produces:
// - application/json
// parameters:
//   - in: path
//     name: id
//     type: string
//     required: true
//
// responses:
//
//	'201':
//	  description: The new copy
//	  schema:
//	    "$ref": "#/definitions/SessionResponse"
//	'404':
//	  description: Unknown session
//	  schema:
//	    "$ref": "#/definitions/ErrorResponse"
func (h *SessionHandler) Duplicate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	session, err := h.sessions.DuplicateSession(ctx, chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to duplicate session")
		return
	}
	writeJSON(ctx, w, http.StatusCreated, toSessionResponse(session))
}

// NotesText returns the session's notes as editable text.
//
// swagger:route GET /api/sessions/{id}/notes-text sessions getNotesText
//
// # Get editable notes text
//
// Renders the session's notes back into the bulk text the admin form accepts.
//
// ---
// produces:
// - application/json
// parameters:
//   - in: path
//     name: id
//     type: string
//     required: true
//
// responses:
//
//	'200':
//	  description: The notes text
//	  schema:
//	    "$ref": "#/definitions/NotesTextResponse"
//	'404':
//	  description: Unknown session
//	  schema:
//	    "$ref": "#/definitions/ErrorResponse"
func (h *SessionHandler) NotesText(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	text, err := h.sessions.NotesText(ctx, chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to format notes")
		return
	}
	writeJSON(ctx, w, http.StatusOK, NotesTextResponse{NotesText: text})
}

// CheckExercise checks a student's answer.
//
// swagger:route POST /api/sessions/{id}/exercises/{index}/check sessions checkExercise
//
// # Check an exercise answer
//
// Fill-blank answers are compared ignoring case and surrounding whitespace.
// Multiple-choice answers send the selected option index.
//
// ---
// consumes:
// - application/json
// produces:
// - application/json
// parameters:
//   - in: path
//     name: id
//     type: string
//     required: true
//   - in: path
//     name: index
//     type: integer
//     required: true
//   - in: body
//     name: body
//     required: true
//     schema:
//     "$ref": "#/definitions/CheckRequest"
//
// responses:
//
//	'200':
//	  description: The check outcome
//	  schema:
//	    "$ref": "#/definitions/CheckResponse"
//	'400':
//	  description: Bad index, nothing selected, or an exercise without an answer
//	  schema:
//	    "$ref": "#/definitions/ErrorResponse"
//	'404':
//	  description: Unknown session or exercise
//	  schema:
//	    "$ref": "#/definitions/ErrorResponse"
func (h *SessionHandler) CheckExercise(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid exercise index")
		return
	}

	var req CheckRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	check, err := h.sessions.CheckExercise(ctx, chi.URLParam(r, "id"), index, service.ExerciseAnswer{
		Answer:   req.Answer,
		Selected: req.Selected,
	})
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to check answer")
		return
	}

	writeJSON(ctx, w, http.StatusOK, CheckResponse{
		Correct:      check.Correct,
		Feedback:     check.Feedback,
		CorrectIndex: check.CorrectIndex,
	})
}

func (req SessionRequest) toInput() service.SessionInput {
	return service.SessionInput{
		Date:      req.Date,
		NotesText: req.NotesText,
		Exercises: lo.Map(req.Exercises, func(e ExerciseRequest, _ int) service.ExerciseInput {
			return service.ExerciseInput{
				Type:         e.Type,
				Question:     e.Question,
				Answer:       e.Answer,
				OptionsText:  e.Options,
				Instructions: e.Instructions,
				Links:        e.Links,
			}
		}),
		Links: req.Links,
	}
}

func toSessionResponse(s notes.Session) SessionResponse {
	return SessionResponse{
		Session:     s,
		DisplayDate: search.FormatDate(s.Date),
	}
}
