package web

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(h.requestID)
	r.Use(h.requestLogger)

	r.Route("/api/v1", func(r chi.Router) {
		r.Put("/login", h.Login)
		r.Put("/password", h.ChangePassword)

		r.Route("/trainees", func(r chi.Router) {
			r.Post("/", h.RegisterTrainee)
			r.Get("/me", h.GetTraineeProfile)
			r.Put("/", h.UpdateTraineeProfile)
			r.Delete("/", h.DeleteTrainee)
			r.Patch("/activation", h.SetTraineeActiveStatus)
			r.Get("/trainings", h.GetTraineeTrainings)
			r.Get("/unassigned-trainers", h.GetUnassignedTrainers)
			r.Put("/trainers", h.UpdateTraineeTrainers)
		})

		r.Route("/trainers", func(r chi.Router) {
			r.Post("/", h.RegisterTrainer)
			r.Get("/me", h.GetTrainerProfile)
			r.Put("/", h.UpdateTrainerProfile)
			r.Patch("/activation", h.SetTrainerActiveStatus)
			r.Get("/trainings", h.GetTrainerTrainings)
		})

		r.Route("/trainings", func(r chi.Router) {
			r.Post("/", h.AddTraining)
			r.Delete("/{id}", h.DeleteTraining)
		})

		r.Get("/training-types", h.GetTrainingTypes)
	})

	return r
}
