package router

import (
	"log/slog"
	"net/http"

	"activitySignup/internal/http-server/handlers/activity/listActivities"
	"activitySignup/internal/http-server/handlers/activity/signup"
	"activitySignup/internal/http-server/handlers/activity/unregister"
	"activitySignup/internal/http-server/middleware/mwlogger"
	"activitySignup/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Storage is everything the HTTP surface needs from the activity directory.
type Storage interface {
	GetAllActivities() (map[string]models.Activity, error)
	SignUpStudent(activityName, email string) error
	UnregisterStudent(activityName, email string) error
}

func New(log *slog.Logger, storage Storage, staticDir string) chi.Router {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	fs := http.FileServer(http.Dir(staticDir))
	router.Handle("/static/*", http.StripPrefix("/static/", fs))

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/static/index.html", http.StatusTemporaryRedirect)
	})

	router.Get("/activities", listActivities.New(log, storage))
	router.Route("/activities/{activity}", func(r chi.Router) {
		r.Post("/signup", signup.New(log, storage))
		r.Delete("/unregister", unregister.New(log, storage))
	})

	return router
}
