package routes

import (
	"studyup/ai-gateway/handlers"

	"github.com/go-chi/chi/v5"
)

// RegisterStudyPlanRoutes registers plan generation and the saved-session endpoints
func RegisterStudyPlanRoutes(r chi.Router, h *handlers.Handler) {
	r.Route("/study-plan", func(r chi.Router) {
		r.Post("/", h.StudyPlan)
		r.Post("/sessions", h.SaveStudySessions)
		r.Get("/sessions", h.GetStudySessions)
	})
}
