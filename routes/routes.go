package routes

import (
	"net/http"

	"studyup/ai-gateway/handlers"
	"studyup/ai-gateway/middleware"

	"github.com/go-chi/chi/v5"
)

// RegisterAllRoutes registers all application routes
func RegisterAllRoutes(r chi.Router, h *handlers.Handler) {
	r.Get("/health", handlers.Health)
	RegisterChatRoutes(r, h)
	RegisterStudyPlanRoutes(r, h)
}

// NewRouter builds the router with the global middleware stack applied.
func NewRouter(h *handlers.Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Chain(
		middleware.CORSMiddleware,
		middleware.RequestIDMiddleware,
		middleware.RecoverMiddleware,
		middleware.LoggingMiddleware,
	))

	RegisterAllRoutes(r, h)
	return r
}
