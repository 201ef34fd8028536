package handlers

import (
	"net/http"
	"strconv"

	"clubnotes/internal/search"
	"clubnotes/internal/service"
)

// SearchHandler handles HTTP requests for note search.
type SearchHandler struct {
	searchService service.SearchService
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(searchService service.SearchService) *SearchHandler {
	return &SearchHandler{searchService: searchService}
}

// SearchResponse is the body of a search response.
//
// swagger:model SearchResponse
type SearchResponse struct {
	Query   string                  `json:"query"`
	Count   int                     `json:"count"`
	Results []search.RenderedResult `json:"results"`
}

// ServeHTTP handles GET /api/search?q=...&max_length=...
//
// Queries shorter than two characters return an empty result list.
//
// swagger:route GET /api/search search searchNotes
//
// # Search notes
//
// Case-insensitive substring search over the titles, definitions and examples
// of every session. Results come newest session first, and each carries an
// HTML snippet with the match wrapped in <mark>.
//
// ---
// produces:
// - application/json
// parameters:
//   - in: query
//     name: q
//     type: string
//     required: true
//   - in: query
//     name: max_length
//     type: integer
//     description: Snippet length in characters, defaults to the server setting
//     required: false
//
// responses:
//
//	'200':
//	  description: Matching notes
//	  schema:
//	    "$ref": "#/definitions/SearchResponse"
//	'400':
//	  description: max_length is not a positive integer
//	  schema:
//	    "$ref": "#/definitions/ErrorResponse"
func (h *SearchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	query := r.URL.Query().Get("q")

	maxLength := 0
	if raw := r.URL.Query().Get("max_length"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "max_length must be a positive integer")
			return
		}
		maxLength = n
	}

	results, err := h.searchService.Search(ctx, query, maxLength)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to search notes")
		return
	}

	writeJSON(ctx, w, http.StatusOK, SearchResponse{
		Query:   query,
		Count:   len(results),
		Results: results,
	})
}
