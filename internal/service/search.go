package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_search_service.go -package=mocks clubnotes/internal/service SearchService

import (
	"context"
	"strings"
	"unicode/utf8"

	"clubnotes/internal/contextutil"
	"clubnotes/internal/search"
)

// SearchService searches the notes of all sessions.
type SearchService interface {
	// Search returns rendered matches for query with snippets cut to maxLength.
	Search(ctx context.Context, query string, maxLength int) ([]search.RenderedResult, error)
}

// searchService implements SearchService over a session snapshot.
type searchService struct {
	source        SessionSource
	defaultLength int
}

// NewSearchService creates a SearchService reading sessions from source.
// defaultLength is used when a caller passes a non-positive maxLength.
func NewSearchService(source SessionSource, defaultLength int) SearchService {
	if defaultLength <= 0 {
		defaultLength = search.DefaultSnippetLength
	}
	return &searchService{
		source:        source,
		defaultLength: defaultLength,
	}
}

func (s *searchService) Search(ctx context.Context, query string, maxLength int) ([]search.RenderedResult, error) {
	logger := contextutil.LoggerFromContext(ctx)

	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < search.MinQueryLength {
		return []search.RenderedResult{}, nil
	}
	if maxLength <= 0 {
		maxLength = s.defaultLength
	}

	sessions, err := s.source.Sessions(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "failed to load sessions for search", "error", err)
		return nil, WrapError(err, "failed to load sessions")
	}

	results := search.Search(sessions, query)
	logger.DebugContext(ctx, "search completed", "query", query, "sessions", len(sessions), "results", len(results))

	return search.Render(results, maxLength), nil
}
