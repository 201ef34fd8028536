package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_session_service.go -package=mocks clubnotes/internal/service SessionService

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"clubnotes/internal/contextutil"
	"clubnotes/internal/notes"
	"clubnotes/internal/storage"
)

// DateLayout is the ISO date format of session dates.
const DateLayout = "2006-01-02"

// SessionSource returns the current snapshot of sessions.
// Search reads through it and never holds on to the result.
type SessionSource interface {
	Sessions(ctx context.Context) ([]notes.Session, error)
}

// ExerciseInput is an exercise as entered in the admin form.
// Multiple-choice options are one per line with "*" marking the correct one.
type ExerciseInput struct {
	Type         string
	Question     string
	Answer       string
	OptionsText  string
	Instructions string
	Links        []notes.Link
}

// SessionInput is the admin form for creating or replacing a session.
type SessionInput struct {
	Date      string
	NotesText string
	Exercises []ExerciseInput
	Links     []notes.Link
}

// ExerciseAnswer is a student's attempt. Selected is the chosen option for
// multiple-choice exercises, nil when nothing was picked.
type ExerciseAnswer struct {
	Answer   string
	Selected *int
}

// ExerciseCheck is the outcome of checking an answer.
type ExerciseCheck struct {
	Correct      bool
	Feedback     string
	CorrectIndex int // multiple-choice only, -1 otherwise
}

// SessionService manages club sessions.
type SessionService interface {
	SessionSource
	// ListSessions returns all sessions, newest first.
	ListSessions(ctx context.Context) ([]notes.Session, error)
	// GetSession returns a session by ID.
	GetSession(ctx context.Context, id string) (notes.Session, error)
	// CreateSession parses the notes text and stores a new session.
	CreateSession(ctx context.Context, in SessionInput) (notes.Session, error)
	// UpdateSession replaces every field of an existing session.
	UpdateSession(ctx context.Context, id string, in SessionInput) (notes.Session, error)
	// DeleteSession moves a session to the trash. It can be restored until
	// the trash is purged.
	DeleteSession(ctx context.Context, id string) error
	// RestoreSession takes a trashed session out of the trash.
	RestoreSession(ctx context.Context, id string) (notes.Session, error)
	// DuplicateSession stores a copy of a session under a new ID.
	DuplicateSession(ctx context.Context, id string) (notes.Session, error)
	// PurgeDeleted permanently removes sessions trashed longer than olderThan.
	PurgeDeleted(ctx context.Context, olderThan time.Duration) (int64, error)
	// NotesText renders a session's notes back into editable text.
	NotesText(ctx context.Context, id string) (string, error)
	// CheckExercise checks an answer against the exercise at index.
	CheckExercise(ctx context.Context, id string, index int, answer ExerciseAnswer) (ExerciseCheck, error)
}

// sessionService implements SessionService.
type sessionService struct {
	store storage.SessionStore
	newID func() string
	now   func() time.Time
}

// NewSessionService creates a new SessionService.
func NewSessionService(store storage.SessionStore) SessionService {
	return &sessionService{
		store: store,
		newID: uuid.NewString,
		now:   time.Now,
	}
}

// Sessions implements SessionSource.
func (s *sessionService) Sessions(ctx context.Context) ([]notes.Session, error) {
	return s.ListSessions(ctx)
}

func (s *sessionService) ListSessions(ctx context.Context) ([]notes.Session, error) {
	sessions, err := s.store.List(ctx)
	if err != nil {
		return nil, WrapError(err, "failed to list sessions")
	}
	return sessions, nil
}

func (s *sessionService) GetSession(ctx context.Context, id string) (notes.Session, error) {
	session, err := s.store.Get(ctx, id)
	if err != nil {
		return notes.Session{}, mapStoreError(err, "failed to get session")
	}
	return session, nil
}

func (s *sessionService) CreateSession(ctx context.Context, in SessionInput) (notes.Session, error) {
	logger := contextutil.LoggerFromContext(ctx)

	session, err := buildSession(s.newID(), in)
	if err != nil {
		logger.WarnContext(ctx, "invalid session input", "error", err)
		return notes.Session{}, err
	}

	if err := s.store.Upsert(ctx, session); err != nil {
		logger.ErrorContext(ctx, "failed to store session", "error", err)
		return notes.Session{}, WrapError(err, "failed to create session")
	}

	logger.InfoContext(ctx, "session created",
		"session_id", session.ID,
		"date", session.Date,
		"notes", len(session.Notes),
		"exercises", len(session.Exercises),
		"links", len(session.Links),
	)
	return session, nil
}

func (s *sessionService) UpdateSession(ctx context.Context, id string, in SessionInput) (notes.Session, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if _, err := s.store.Get(ctx, id); err != nil {
		return notes.Session{}, mapStoreError(err, "failed to get session")
	}

	session, err := buildSession(id, in)
	if err != nil {
		logger.WarnContext(ctx, "invalid session input", "session_id", id, "error", err)
		return notes.Session{}, err
	}

	if err := s.store.Upsert(ctx, session); err != nil {
		logger.ErrorContext(ctx, "failed to store session", "session_id", id, "error", err)
		return notes.Session{}, WrapError(err, "failed to update session")
	}

	logger.InfoContext(ctx, "session updated", "session_id", id, "notes", len(session.Notes))
	return session, nil
}

func (s *sessionService) DeleteSession(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return mapStoreError(err, "failed to delete session")
	}
	contextutil.LoggerFromContext(ctx).InfoContext(ctx, "session deleted", "session_id", id)
	return nil
}

func (s *sessionService) RestoreSession(ctx context.Context, id string) (notes.Session, error) {
	if err := s.store.Restore(ctx, id); err != nil {
		return notes.Session{}, mapStoreError(err, "failed to restore session")
	}
	contextutil.LoggerFromContext(ctx).InfoContext(ctx, "session restored", "session_id", id)
	return s.GetSession(ctx, id)
}

func (s *sessionService) DuplicateSession(ctx context.Context, id string) (notes.Session, error) {
	logger := contextutil.LoggerFromContext(ctx)

	src, err := s.GetSession(ctx, id)
	if err != nil {
		return notes.Session{}, err
	}

	session, err := buildSession(s.newID(), InputFromSession(src))
	if err != nil {
		return notes.Session{}, err
	}
	if err := s.store.Upsert(ctx, session); err != nil {
		logger.ErrorContext(ctx, "failed to store session copy", "source_id", id, "error", err)
		return notes.Session{}, WrapError(err, "failed to duplicate session")
	}

	logger.InfoContext(ctx, "session duplicated", "source_id", id, "session_id", session.ID)
	return session, nil
}

func (s *sessionService) PurgeDeleted(ctx context.Context, olderThan time.Duration) (int64, error) {
	if olderThan < 0 {
		return 0, &ValidationError{Field: "older_than", Message: "must not be negative"}
	}
	purged, err := s.store.PurgeDeleted(ctx, s.now().Add(-olderThan))
	if err != nil {
		return 0, WrapError(err, "failed to purge trash")
	}
	if purged > 0 {
		contextutil.LoggerFromContext(ctx).InfoContext(ctx, "trash purged", "sessions", purged)
	}
	return purged, nil
}

func (s *sessionService) NotesText(ctx context.Context, id string) (string, error) {
	session, err := s.GetSession(ctx, id)
	if err != nil {
		return "", err
	}
	return notes.Format(session.Notes), nil
}

func (s *sessionService) CheckExercise(ctx context.Context, id string, index int, answer ExerciseAnswer) (ExerciseCheck, error) {
	session, err := s.GetSession(ctx, id)
	if err != nil {
		return ExerciseCheck{}, err
	}
	if index < 0 || index >= len(session.Exercises) {
		return ExerciseCheck{}, fmt.Errorf("exercise %d: %w", index, ErrNotFound)
	}

	exercise := session.Exercises[index]
	switch exercise.Type {
	case notes.ExerciseFillBlank:
		return CheckFillBlank(exercise, answer.Answer)
	case notes.ExerciseMultipleChoice:
		selected := -1
		if answer.Selected != nil {
			selected = *answer.Selected
		}
		return CheckMultipleChoice(exercise, selected)
	default:
		return ExerciseCheck{}, &ValidationError{
			Field:   "type",
			Message: fmt.Sprintf("%s exercises have no answer to check", exercise.Type),
		}
	}
}

// CheckFillBlank compares an answer with the expected one, ignoring case and
// surrounding whitespace.
func CheckFillBlank(exercise notes.Exercise, answer string) (ExerciseCheck, error) {
	if exercise.Type != notes.ExerciseFillBlank {
		return ExerciseCheck{}, &ValidationError{Field: "type", Message: "not a fill-blank exercise"}
	}

	check := ExerciseCheck{CorrectIndex: -1}
	if strings.EqualFold(strings.TrimSpace(answer), strings.TrimSpace(exercise.Answer)) {
		check.Correct = true
		check.Feedback = "Correct!"
	} else {
		check.Feedback = "Incorrect. The answer is: " + exercise.Answer
	}
	return check, nil
}

// CheckMultipleChoice checks the selected option index. A selection of -1
// means nothing was picked and is rejected.
func CheckMultipleChoice(exercise notes.Exercise, selected int) (ExerciseCheck, error) {
	if exercise.Type != notes.ExerciseMultipleChoice {
		return ExerciseCheck{}, &ValidationError{Field: "type", Message: "not a multiple-choice exercise"}
	}
	if selected == -1 {
		return ExerciseCheck{}, &ValidationError{Field: "selected", Message: "select an answer first"}
	}
	if selected < 0 || selected >= len(exercise.Options) {
		return ExerciseCheck{}, &ValidationError{Field: "selected", Message: "option out of range"}
	}

	check := ExerciseCheck{CorrectIndex: exercise.CorrectIndex}
	if selected == exercise.CorrectIndex {
		check.Correct = true
		check.Feedback = "Correct!"
	} else {
		check.Feedback = "Incorrect. Try again!"
	}
	return check, nil
}

// buildSession validates the input and assembles a session with the given ID.
func buildSession(id string, in SessionInput) (notes.Session, error) {
	date := strings.TrimSpace(in.Date)
	if date == "" {
		return notes.Session{}, &ValidationError{Field: "date", Message: "is required"}
	}
	if _, err := time.Parse(DateLayout, date); err != nil {
		return notes.Session{}, &ValidationError{Field: "date", Message: "must be YYYY-MM-DD"}
	}

	exercises := make([]notes.Exercise, 0, len(in.Exercises))
	for i, ei := range in.Exercises {
		exercise, ok, err := buildExercise(ei)
		if err != nil {
			var vErr *ValidationError
			if errors.As(err, &vErr) {
				vErr.Field = fmt.Sprintf("exercises[%d].%s", i, vErr.Field)
			}
			return notes.Session{}, err
		}
		if ok {
			exercises = append(exercises, exercise)
		}
	}

	return notes.Session{
		ID:        id,
		Date:      date,
		Notes:     notes.Parse(in.NotesText),
		Exercises: exercises,
		Links:     cleanLinks(in.Links),
	}, nil
}

// buildExercise normalises one form exercise. Exercises without a type or a
// question are dropped.
func buildExercise(in ExerciseInput) (notes.Exercise, bool, error) {
	kind := strings.TrimSpace(in.Type)
	question := strings.TrimSpace(in.Question)
	if kind == "" || question == "" {
		return notes.Exercise{}, false, nil
	}

	exercise := notes.Exercise{
		Type:         kind,
		Question:     question,
		CorrectIndex: -1,
		Links:        cleanLinks(in.Links),
	}
	if len(exercise.Links) == 0 {
		exercise.Links = nil
	}

	switch kind {
	case notes.ExerciseFillBlank:
		exercise.Answer = strings.TrimSpace(in.Answer)
	case notes.ExerciseMultipleChoice:
		exercise.Options, exercise.CorrectIndex = notes.ParseOptions(in.OptionsText)
	case notes.ExerciseText:
		exercise.Instructions = strings.TrimSpace(in.Instructions)
	default:
		return notes.Exercise{}, false, &ValidationError{Field: "type", Message: "unknown exercise type " + kind}
	}

	return exercise, true, nil
}

// cleanLinks trims links and keeps only those with both a title and a URL.
func cleanLinks(links []notes.Link) []notes.Link {
	trimmed := lo.Map(links, func(l notes.Link, _ int) notes.Link {
		return notes.Link{
			Title:       strings.TrimSpace(l.Title),
			URL:         strings.TrimSpace(l.URL),
			Description: strings.TrimSpace(l.Description),
		}
	})
	return lo.Filter(trimmed, func(l notes.Link, _ int) bool {
		return l.Title != "" && l.URL != ""
	})
}

// mapStoreError translates storage.ErrNotFound into ErrNotFound.
func mapStoreError(err error, msg string) error {
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("%s: %w", msg, ErrNotFound)
	}
	return WrapError(err, msg)
}

// InputFromSession turns a stored session back into form input, so it can be
// resubmitted with some fields changed.
func InputFromSession(s notes.Session) SessionInput {
	return SessionInput{
		Date:      s.Date,
		NotesText: notes.Format(s.Notes),
		Exercises: lo.Map(s.Exercises, func(e notes.Exercise, _ int) ExerciseInput {
			return ExerciseInput{
				Type:         e.Type,
				Question:     e.Question,
				Answer:       e.Answer,
				OptionsText:  notes.FormatOptions(e.Options, e.CorrectIndex),
				Instructions: e.Instructions,
				Links:        e.Links,
			}
		}),
		Links: s.Links,
	}
}
