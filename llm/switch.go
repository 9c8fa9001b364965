package llm

import (
	"context"
	"fmt"
	"net/http"

	"studyup/ai-gateway/config"
)

// Generator sends one generation request to the external model API.
type Generator interface {
	GenerateContent(ctx context.Context, req *GenerateRequest) (*GenerateResponse, error)
	IsConfigured() bool
	Model() string
}

// NewGenerator returns the generator for the configured transport
func NewGenerator(ctx context.Context, cfg *config.Config) (Generator, error) {
	switch cfg.GeminiTransport {
	case config.TransportREST, "":
		return NewGeminiClient(GeminiConfig{
			APIKey:  cfg.GeminiAPIKey,
			Model:   cfg.GeminiModel,
			BaseURL: cfg.GeminiBaseURL,
			Timeout: cfg.GeminiTimeout,
		}), nil
	case config.TransportSDK:
		return NewGenAIClient(ctx, GenAIConfig{
			APIKey:     cfg.GeminiAPIKey,
			Model:      cfg.GeminiModel,
			HTTPClient: &http.Client{Timeout: cfg.GeminiTimeout},
		})
	default:
		return nil, fmt.Errorf("unsupported transport: %s (supported: %s, %s)", cfg.GeminiTransport, config.TransportREST, config.TransportSDK)
	}
}
