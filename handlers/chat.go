package handlers

import (
	"net/http"

	"studyup/ai-gateway/llm"
	"studyup/ai-gateway/types"
)

// Chat relays a user message, optional context and optional images to the model.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	// Parse and validate the request body
	var req types.ChatRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if req.Message == "" {
		writeError(w, r, types.NewInvalidRequest("Message is required"))
		return
	}

	// Fail before touching any URL when the model API cannot be called anyway
	if err := h.requireGenerator(); err != nil {
		writeError(w, r, err)
		return
	}

	text := llm.BuildChatText(req.Message, req.Context)
	images := h.images.FetchImages(r.Context(), req.ImageURLs)

	resp, err := h.generator.GenerateContent(r.Context(), llm.NewChatRequest(text, images))
	if err != nil {
		writeError(w, r, err)
		return
	}

	answer, err := llm.ChatAnswer(resp)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, types.ChatResponse{
		Response: answer,
		Model:    h.generator.Model(),
	})
}
