package signup

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"activitySignup/internal/lib/api/response"
	"activitySignup/internal/lib/logger/sl"
	"activitySignup/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type SignupRequest struct {
	Email string `validate:"required"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=StudentRegistrar
type StudentRegistrar interface {
	SignUpStudent(activityName, email string) error
}

func New(log *slog.Logger, registrar StudentRegistrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.activity.signup.New"

		log = log.With(slog.String("op", op))

		activityName := chi.URLParam(r, "activity")
		if activityName == "" {
			log.Error("activity name is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("activity name is required"))
			return
		}

		log = log.With(slog.String("activity", activityName))

		req := SignupRequest{Email: r.URL.Query().Get("email")}

		if err := validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		err := registrar.SignUpStudent(activityName, req.Email)
		if err != nil {
			log.Error("failed to sign up student", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrActivityNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("Activity not found"))
			case errors.Is(err, storage.ErrAlreadyRegistered):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("Student already signed up for this activity"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to sign up for activity"))
			}
			return
		}

		log.Info("student signed up successfully", slog.String("email", req.Email))

		responseOK(w, r, req.Email, activityName)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, email, activityName string) {
	render.JSON(w, r, response.Message(fmt.Sprintf("Signed up %s for %s", email, activityName)))
}
