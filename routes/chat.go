package routes

import (
	"studyup/ai-gateway/handlers"

	"github.com/go-chi/chi/v5"
)

// RegisterChatRoutes registers the chat relay
func RegisterChatRoutes(r chi.Router, h *handlers.Handler) {
	r.Post("/chat", h.Chat)
}
