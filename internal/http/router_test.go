package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"clubnotes/internal/notes"
	"clubnotes/internal/search"
	"clubnotes/internal/service"
	"clubnotes/internal/service/mocks"
	"clubnotes/internal/storage"
)

type okPinger struct{}

func (okPinger) PingContext(context.Context) error { return nil }

type testMocks struct {
	sessions  *mocks.MockSessionService
	searches  *mocks.MockSearchService
	favorites *mocks.MockFavoriteService
	progress  *mocks.MockProgressService
}

func newTestDeps(ctrl *gomock.Controller) (*Deps, testMocks) {
	m := testMocks{
		sessions:  mocks.NewMockSessionService(ctrl),
		searches:  mocks.NewMockSearchService(ctrl),
		favorites: mocks.NewMockFavoriteService(ctrl),
		progress:  mocks.NewMockProgressService(ctrl),
	}
	return &Deps{
		SessionService:  m.sessions,
		SearchService:   m.searches,
		FavoriteService: m.favorites,
		ProgressService: m.progress,
		DB:              okPinger{},
	}, m
}

func TestNewRouter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deps, _ := newTestDeps(ctrl)
	router := NewRouter(deps)

	if router == nil {
		t.Fatal("NewRouter() returned nil")
	}
}

func TestRouter_Routes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deps, m := newTestDeps(ctrl)

	m.progress.EXPECT().Browse(gomock.Any(), service.ListOptions{}).Return([]service.SessionListing{}, nil)
	m.progress.EXPECT().
		Browse(gomock.Any(), service.ListOptions{UserID: "u1", Filter: "completed", Sort: "date-asc"}).
		Return([]service.SessionListing{}, nil)
	m.progress.EXPECT().Toggle(gomock.Any(), "u1", "s1").Return(true, nil)
	m.progress.EXPECT().List(gomock.Any(), "u1").Return([]storage.CompletionRecord{}, nil)
	m.sessions.EXPECT().GetSession(gomock.Any(), "s1").Return(notes.Session{ID: "s1"}, nil)
	m.sessions.EXPECT().DeleteSession(gomock.Any(), "s1").Return(nil)
	m.sessions.EXPECT().RestoreSession(gomock.Any(), "s1").Return(notes.Session{ID: "s1"}, nil)
	m.sessions.EXPECT().DuplicateSession(gomock.Any(), "s1").Return(notes.Session{ID: "s2"}, nil)
	m.sessions.EXPECT().NotesText(gomock.Any(), "s1").Return("", nil)
	m.sessions.EXPECT().
		CheckExercise(gomock.Any(), "s1", 2, gomock.Any()).
		Return(service.ExerciseCheck{Correct: true, Feedback: "Correct!", CorrectIndex: -1}, nil)
	m.searches.EXPECT().Search(gomock.Any(), "run", 0).Return([]search.RenderedResult{}, nil)
	m.favorites.EXPECT().List(gomock.Any(), "u1").Return([]storage.FavoriteRecord{}, nil)
	m.favorites.EXPECT().IsFavorite(gomock.Any(), "u1", "s1", "Run").Return(false, nil)
	m.favorites.EXPECT().Remove(gomock.Any(), "u1", "s1-Run").Return(nil)
	m.favorites.EXPECT().Remove(gomock.Any(), "u1", "s1-either/or").Return(nil)

	router := NewRouter(deps)

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
	}{
		{name: "health", method: http.MethodGet, path: "/api/health", wantStatus: http.StatusOK},
		{name: "list sessions", method: http.MethodGet, path: "/api/sessions", wantStatus: http.StatusOK},
		{name: "create session bad body", method: http.MethodPost, path: "/api/sessions", wantStatus: http.StatusBadRequest},
		{name: "get session", method: http.MethodGet, path: "/api/sessions/s1", wantStatus: http.StatusOK},
		{name: "list sessions filtered", method: http.MethodGet, path: "/api/sessions?user_id=u1&filter=completed&sort=date-asc", wantStatus: http.StatusOK},
		{name: "delete session", method: http.MethodDelete, path: "/api/sessions/s1", wantStatus: http.StatusNoContent},
		{name: "restore session", method: http.MethodPost, path: "/api/sessions/s1/restore", wantStatus: http.StatusOK},
		{name: "duplicate session", method: http.MethodPost, path: "/api/sessions/s1/duplicate", wantStatus: http.StatusCreated},
		{name: "notes text", method: http.MethodGet, path: "/api/sessions/s1/notes-text", wantStatus: http.StatusOK},
		{name: "check exercise", method: http.MethodPost, path: "/api/sessions/s1/exercises/2/check", body: `{"answer":"run"}`, wantStatus: http.StatusOK},
		{name: "parse notes", method: http.MethodPost, path: "/api/notes/parse", body: `{"text":"Run\nto move"}`, wantStatus: http.StatusOK},
		{name: "search", method: http.MethodGet, path: "/api/search?q=run", wantStatus: http.StatusOK},
		{name: "list favorites", method: http.MethodGet, path: "/api/users/u1/favorites", wantStatus: http.StatusOK},
		{name: "favorite status", method: http.MethodGet, path: "/api/users/u1/favorites/status?session_id=s1&note_title=Run", wantStatus: http.StatusOK},
		{name: "remove favorite", method: http.MethodDelete, path: "/api/users/u1/favorites/s1-Run", wantStatus: http.StatusNoContent},
		{name: "remove favorite with slash in title", method: http.MethodDelete, path: "/api/users/u1/favorites/s1-either%2For", wantStatus: http.StatusNoContent},
		{name: "toggle progress", method: http.MethodPost, path: "/api/users/u1/progress/s1", wantStatus: http.StatusOK},
		{name: "list progress", method: http.MethodGet, path: "/api/users/u1/progress", wantStatus: http.StatusOK},
		{name: "search method not allowed", method: http.MethodPost, path: "/api/search", wantStatus: http.StatusMethodNotAllowed},
		{name: "unknown route", method: http.MethodGet, path: "/api/unknown", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("Router %s %s status = %v, want %v", tt.method, tt.path, w.Code, tt.wantStatus)
			}
		})
	}
}

func TestRouter_MiddlewareApplied(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deps, _ := newTestDeps(ctrl)
	deps.AllowedOrigin = "https://club.example.com"
	router := NewRouter(deps)

	req := httptest.NewRequest(http.MethodOptions, "/api/sessions", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://club.example.com" {
		t.Errorf("Router CORS origin = %q, want configured origin", got)
	}
	if w.Code != http.StatusNoContent {
		t.Errorf("Router preflight status = %v, want %v", w.Code, http.StatusNoContent)
	}
}
