package handlers

import (
	"net/http"

	"clubnotes/internal/notes"
)

// ParseHandler previews how notes text will be split into notes.
type ParseHandler struct{}

// NewParseHandler creates a new ParseHandler.
func NewParseHandler() *ParseHandler {
	return &ParseHandler{}
}

// ParseRequest is the body of a parse preview request.
//
// swagger:model ParseRequest
type ParseRequest struct {
	Text string `json:"text"`
}

// ParseResponse lists the parsed notes.
//
// swagger:model ParseResponse
type ParseResponse struct {
	Count int          `json:"count"`
	Notes []notes.Note `json:"notes"`
}

// ServeHTTP handles POST /api/notes/parse.
//
// swagger:route POST /api/notes/parse notes parseNotes
//
// # Preview parsed notes
//
// Splits bulk notes text into notes without storing anything, so the admin
// form can show what a session will contain before it is saved.
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
//     "$ref": "#/definitions/ParseRequest"
//
// responses:
//
//	'200':
//	  description: The parsed notes
//	  schema:
//	    "$ref": "#/definitions/ParseResponse"
//	'400':
//	  description: Malformed request body
//	  schema:
//	    "$ref": "#/definitions/ErrorResponse"
func (h *ParseHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ParseRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	parsed := notes.Parse(req.Text)
	writeJSON(ctx, w, http.StatusOK, ParseResponse{
		Count: len(parsed),
		Notes: parsed,
	})
}
