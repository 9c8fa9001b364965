package llm

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"

	"studyup/ai-gateway/config"
	"studyup/ai-gateway/types"

	"github.com/sirupsen/logrus"
	"google.golang.org/genai"
)

type GenAIConfig struct {
	APIKey     string
	Model      string
	HTTPClient *http.Client
	// BaseURL overrides the SDK endpoint, e.g. for a proxy. Empty keeps the default.
	BaseURL string
}

// GenAIClient implements Generator on top of the google.golang.org/genai SDK.
// The wire types stay the same as the REST client so handlers do not care
// which transport is configured.
type GenAIClient struct {
	apiKey string
	model  string
	client *genai.Client
}

// NewGenAIClient creates the SDK client up front. With an empty key no SDK client
// is created and IsConfigured reports false.
func NewGenAIClient(ctx context.Context, cfg GenAIConfig) (*GenAIClient, error) {
	model := cfg.Model
	if model == "" {
		model = config.DefaultGeminiModel
	}

	c := &GenAIClient{apiKey: cfg.APIKey, model: model}
	if cfg.APIKey == "" {
		return c, nil
	}

	clientConfig := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: cfg.HTTPClient,
	}
	if cfg.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL, APIVersion: "v1beta"}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	c.client = client
	return c, nil
}

func (c *GenAIClient) IsConfigured() bool {
	return c.apiKey != "" && c.client != nil
}

func (c *GenAIClient) Model() string {
	return c.model
}

func (c *GenAIClient) GenerateContent(ctx context.Context, genReq *GenerateRequest) (*GenerateResponse, error) {
	if !c.IsConfigured() {
		return nil, types.NewConfigurationError("GEMINI_API_KEY not set")
	}

	contents, err := toGenAIContents(genReq.Contents)
	if err != nil {
		return nil, err
	}

	gc := genReq.GenerationConfig
	temperature := float32(gc.Temperature)
	topK := float32(gc.TopK)
	topP := float32(gc.TopP)
	genConfig := &genai.GenerateContentConfig{
		Temperature:      &temperature,
		TopK:             &topK,
		TopP:             &topP,
		MaxOutputTokens:  int32(gc.MaxOutputTokens),
		ResponseMIMEType: gc.ResponseMimeType,
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model, contents, genConfig)
	if err != nil {
		if status, body, ok := apiErrorDetails(err); ok {
			config.Logger.WithFields(logrus.Fields{
				"status": status,
				"model":  c.model,
				"body":   body,
			}).Error("Gemini API returned an error")
			return nil, types.NewUpstreamError(status, body)
		}
		return nil, fmt.Errorf("gemini request failed: %w", err)
	}

	return fromGenAIResponse(result), nil
}

func apiErrorDetails(err error) (int, string, bool) {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code, apiErr.Message, true
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return apiErrPtr.Code, apiErrPtr.Message, true
	}
	return 0, "", false
}

func toGenAIContents(contents []Content) ([]*genai.Content, error) {
	out := make([]*genai.Content, 0, len(contents))
	for _, content := range contents {
		role := content.Role
		if role == "" {
			role = "user"
		}
		parts := make([]*genai.Part, 0, len(content.Parts))
		for _, part := range content.Parts {
			if part.IsImage() {
				data, err := base64.StdEncoding.DecodeString(part.InlineData.Data)
				if err != nil {
					return nil, fmt.Errorf("invalid inline image data: %w", err)
				}
				parts = append(parts, genai.NewPartFromBytes(data, part.InlineData.MimeType))
				continue
			}
			parts = append(parts, genai.NewPartFromText(part.Text))
		}
		out = append(out, &genai.Content{Role: role, Parts: parts})
	}
	return out, nil
}

func fromGenAIResponse(result *genai.GenerateContentResponse) *GenerateResponse {
	resp := &GenerateResponse{}
	if result == nil {
		return resp
	}

	if result.PromptFeedback != nil && result.PromptFeedback.BlockReason != "" {
		resp.PromptFeedback = &PromptFeedback{BlockReason: string(result.PromptFeedback.BlockReason)}
	}

	for _, candidate := range result.Candidates {
		if candidate == nil {
			continue
		}
		converted := Candidate{FinishReason: string(candidate.FinishReason)}
		if candidate.Content != nil {
			converted.Content.Role = candidate.Content.Role
			for _, part := range candidate.Content.Parts {
				if part == nil {
					continue
				}
				if part.InlineData != nil {
					converted.Content.Parts = append(converted.Content.Parts,
						InlineImagePart(part.InlineData.MIMEType, base64.StdEncoding.EncodeToString(part.InlineData.Data)))
					continue
				}
				converted.Content.Parts = append(converted.Content.Parts, TextPart(part.Text))
			}
		}
		resp.Candidates = append(resp.Candidates, converted)
	}

	return resp
}
