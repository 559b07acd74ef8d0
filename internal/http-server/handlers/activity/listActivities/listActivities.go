package listActivities

import (
	"log/slog"
	"net/http"

	"activitySignup/internal/lib/api/response"
	"activitySignup/internal/lib/logger/sl"
	"activitySignup/internal/models"

	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ActivitiesGetter
type ActivitiesGetter interface {
	GetAllActivities() (map[string]models.Activity, error)
}

// New returns the GET /activities handler. The response body is the raw
// name-to-activity mapping, not an envelope.
func New(log *slog.Logger, activitiesGetter ActivitiesGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.activity.listActivities.New"

		log = log.With(slog.String("op", op))

		activities, err := activitiesGetter.GetAllActivities()
		if err != nil {
			log.Error("failed to get activities", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get activities"))
			return
		}

		log.Info("activities retrieved successfully", slog.Int("count", len(activities)))

		render.JSON(w, r, activities)
	}
}
