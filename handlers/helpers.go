package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"studyup/ai-gateway/config"
	"studyup/ai-gateway/llm"
	"studyup/ai-gateway/middleware"
	"studyup/ai-gateway/types"

	"github.com/sirupsen/logrus"
)

const maxBodyBytes = 5 << 20

// Store is the persistent-store surface the handlers use.
type Store interface {
	GetAssignment(assignmentID string) (types.AssignmentSnapshot, error)
	GetMaterials(assignmentID string, limit int) ([]types.MaterialSnapshot, error)
	SaveStudySessions(userID string, items []types.StudySession) ([]types.StudySession, error)
	GetStudySessions(userID, assignmentID string) ([]types.StudySession, error)
}

// StoreResolver picks the store for a request and reports the caller's user id.
type StoreResolver func(r *http.Request) (Store, string, error)

type ImageFetcher interface {
	FetchImages(ctx context.Context, urls []string) []llm.Part
}

// Handler holds the dependencies shared by every endpoint. It keeps no
// per-request state, so one instance serves concurrent requests.
type Handler struct {
	generator llm.Generator
	images    ImageFetcher
	stores    StoreResolver
	now       func() time.Time
}

func NewHandler(generator llm.Generator, images ImageFetcher, stores StoreResolver) *Handler {
	return &Handler{
		generator: generator,
		images:    images,
		stores:    stores,
		now:       time.Now,
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		config.Logger.Warn("Failed to encode response: ", err)
	}
}

// writeError logs the full error server-side and returns only the caller-safe
// message plus the request id.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	relayErr := types.AsRelayError(err)
	requestID := middleware.RequestIDFromContext(r.Context())

	entry := config.Logger.WithFields(logrus.Fields{
		"request_id": requestID,
		"kind":       relayErr.Kind,
		"status":     relayErr.Status,
		"path":       r.URL.Path,
	})
	if relayErr.Err != nil {
		entry = entry.WithError(relayErr.Err)
	}
	if relayErr.Status >= http.StatusInternalServerError {
		entry.Error(relayErr.Message)
	} else {
		entry.Warn(relayErr.Message)
	}

	writeJSON(w, relayErr.Status, types.ErrorResponse{
		ErrorMessage: relayErr.Message,
		RequestID:    requestID,
	})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return types.NewInvalidRequest("Request body is required")
		}
		return types.NewInvalidRequest("Invalid JSON body")
	}
	return nil
}

func (h *Handler) requireGenerator() error {
	if h.generator == nil || !h.generator.IsConfigured() {
		return types.NewConfigurationError("AI service is not configured")
	}
	return nil
}

func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
