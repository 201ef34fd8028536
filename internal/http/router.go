package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"clubnotes/internal/handlers"
	"clubnotes/internal/service"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	SessionService  service.SessionService
	SearchService   service.SearchService
	FavoriteService service.FavoriteService
	ProgressService service.ProgressService
	DB              handlers.Pinger
	AllowedOrigin   string
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(LoggerMiddleware)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(CORS(deps.AllowedOrigin))

	sessionHandler := handlers.NewSessionHandler(deps.SessionService, deps.ProgressService)
	favoriteHandler := handlers.NewFavoriteHandler(deps.FavoriteService)
	progressHandler := handlers.NewProgressHandler(deps.ProgressService)

	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodGet, "/health", handlers.NewHealthHandler(deps.DB))
		r.Method(http.MethodGet, "/search", handlers.NewSearchHandler(deps.SearchService))
		r.Method(http.MethodPost, "/notes/parse", handlers.NewParseHandler())

		r.Route("/sessions", func(r chi.Router) {
			r.Get("/", sessionHandler.List)
			r.Post("/", sessionHandler.Create)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", sessionHandler.Get)
				r.Put("/", sessionHandler.Update)
				r.Delete("/", sessionHandler.Delete)
				r.Get("/notes-text", sessionHandler.NotesText)
				r.Post("/duplicate", sessionHandler.Duplicate)
				r.Post("/restore", sessionHandler.Restore)
				r.Post("/exercises/{index}/check", sessionHandler.CheckExercise)
			})
		})

		r.Route("/users/{userID}", func(r chi.Router) {
			r.Route("/favorites", func(r chi.Router) {
				r.Get("/", favoriteHandler.List)
				r.Post("/", favoriteHandler.Toggle)
				r.Get("/status", favoriteHandler.Status)
				r.Delete("/{favoriteID}", favoriteHandler.Remove)
			})
			r.Route("/progress", func(r chi.Router) {
				r.Get("/", progressHandler.List)
				r.Post("/{sessionID}", progressHandler.Toggle)
			})
		})
	})

	return r
}
