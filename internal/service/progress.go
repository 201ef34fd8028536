package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_progress_service.go -package=mocks clubnotes/internal/service ProgressService

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/samber/lo"

	"clubnotes/internal/contextutil"
	"clubnotes/internal/notes"
	"clubnotes/internal/storage"
)

// Session list filters.
const (
	FilterAll        = "all"
	FilterCompleted  = "completed"
	FilterIncomplete = "incomplete"
)

// Session list orders.
const (
	SortDateDesc = "date-desc"
	SortDateAsc  = "date-asc"
)

// ListOptions selects and orders the sessions shown to a user.
// Empty fields mean FilterAll and SortDateDesc.
type ListOptions struct {
	UserID string
	Filter string
	Sort   string
}

// SessionListing is a session with the user's completion state.
type SessionListing struct {
	Session   notes.Session
	Completed bool
}

// ProgressService tracks which sessions each user has completed.
type ProgressService interface {
	// Toggle marks the session complete for the user, or clears the mark if
	// already set. It reports whether the session is complete afterwards.
	Toggle(ctx context.Context, userID, sessionID string) (bool, error)
	// List returns the user's completions, oldest first.
	List(ctx context.Context, userID string) ([]storage.CompletionRecord, error)
	// Browse lists sessions filtered by the user's progress and sorted by date.
	Browse(ctx context.Context, opts ListOptions) ([]SessionListing, error)
}

type progressService struct {
	completions storage.CompletionStore
	sessions    storage.SessionStore
	now         func() time.Time
}

// NewProgressService creates a new ProgressService.
func NewProgressService(completions storage.CompletionStore, sessions storage.SessionStore) ProgressService {
	return &progressService{
		completions: completions,
		sessions:    sessions,
		now:         time.Now,
	}
}

func (s *progressService) Toggle(ctx context.Context, userID, sessionID string) (bool, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if err := requireUser(userID); err != nil {
		return false, err
	}
	if _, err := s.sessions.Get(ctx, sessionID); err != nil {
		return false, mapStoreError(err, "failed to get session")
	}

	done, err := s.completions.IsComplete(ctx, userID, sessionID)
	if err != nil {
		return false, WrapError(err, "failed to check completion")
	}

	if done {
		if err := s.completions.Unset(ctx, userID, sessionID); err != nil {
			return false, WrapError(err, "failed to clear completion")
		}
		logger.InfoContext(ctx, "session marked incomplete", "user_id", userID, "session_id", sessionID)
		return false, nil
	}

	if err := s.completions.Set(ctx, userID, sessionID, s.now()); err != nil {
		return false, WrapError(err, "failed to mark completion")
	}
	logger.InfoContext(ctx, "session marked complete", "user_id", userID, "session_id", sessionID)
	return true, nil
}

func (s *progressService) List(ctx context.Context, userID string) ([]storage.CompletionRecord, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	completions, err := s.completions.ListByUser(ctx, userID)
	if err != nil {
		return nil, WrapError(err, "failed to list completions")
	}
	return completions, nil
}

func (s *progressService) Browse(ctx context.Context, opts ListOptions) ([]SessionListing, error) {
	opts, err := normalizeListOptions(opts)
	if err != nil {
		return nil, err
	}

	sessions, err := s.sessions.List(ctx)
	if err != nil {
		return nil, WrapError(err, "failed to list sessions")
	}

	completed := map[string]bool{}
	if opts.UserID != "" {
		records, err := s.completions.ListByUser(ctx, opts.UserID)
		if err != nil {
			return nil, WrapError(err, "failed to list completions")
		}
		for _, r := range records {
			completed[r.SessionID] = true
		}
	}

	listings := lo.FilterMap(sessions, func(session notes.Session, _ int) (SessionListing, bool) {
		listing := SessionListing{Session: session, Completed: completed[session.ID]}
		switch opts.Filter {
		case FilterCompleted:
			return listing, listing.Completed
		case FilterIncomplete:
			return listing, !listing.Completed
		default:
			return listing, true
		}
	})

	// The store returns newest first; ties keep their stored order.
	if opts.Sort == SortDateAsc {
		slices.SortStableFunc(listings, func(a, b SessionListing) int {
			return strings.Compare(a.Session.Date, b.Session.Date)
		})
	}

	return listings, nil
}

func normalizeListOptions(opts ListOptions) (ListOptions, error) {
	opts.UserID = strings.TrimSpace(opts.UserID)

	switch opts.Filter {
	case "":
		opts.Filter = FilterAll
	case FilterAll, FilterCompleted, FilterIncomplete:
	default:
		return opts, &ValidationError{Field: "filter", Message: "must be all, completed or incomplete"}
	}
	if opts.Filter != FilterAll && opts.UserID == "" {
		return opts, &ValidationError{Field: "user_id", Message: "is required to filter by progress"}
	}

	switch opts.Sort {
	case "":
		opts.Sort = SortDateDesc
	case SortDateDesc, SortDateAsc:
	default:
		return opts, &ValidationError{Field: "sort", Message: "must be date-desc or date-asc"}
	}

	return opts, nil
}
