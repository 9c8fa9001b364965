package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"studyup/ai-gateway/config"
	"studyup/ai-gateway/types"

	"github.com/sirupsen/logrus"
)

// maxErrorBody bounds how much of an upstream error body is kept for logging.
const maxErrorBody = 64 << 10

// Part is one element of a content block. Exactly one of Text or InlineData is set;
// use TextPart and InlineImagePart to build them.
type Part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *InlineData `json:"inlineData,omitempty"`
}

type InlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"` // base64
}

func TextPart(text string) Part {
	return Part{Text: text}
}

func InlineImagePart(mimeType, base64Data string) Part {
	return Part{InlineData: &InlineData{MimeType: mimeType, Data: base64Data}}
}

// IsImage reports whether the part carries an inline image.
func (p Part) IsImage() bool {
	return p.InlineData != nil
}

type Content struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

type GenerationConfig struct {
	Temperature      float64 `json:"temperature"`
	TopK             int     `json:"topK"`
	TopP             float64 `json:"topP"`
	MaxOutputTokens  int     `json:"maxOutputTokens"`
	ResponseMimeType string  `json:"response_mime_type,omitempty"`
}

type GenerateRequest struct {
	Contents         []Content        `json:"contents"`
	GenerationConfig GenerationConfig `json:"generationConfig"`
}

type GenerateResponse struct {
	Candidates     []Candidate     `json:"candidates"`
	PromptFeedback *PromptFeedback `json:"promptFeedback,omitempty"`
}

type Candidate struct {
	Content      Content `json:"content"`
	FinishReason string  `json:"finishReason,omitempty"`
}

type PromptFeedback struct {
	BlockReason string `json:"blockReason,omitempty"`
}

// DefaultGenerationConfig returns the fixed sampling parameters used by both relays.
func DefaultGenerationConfig() GenerationConfig {
	return GenerationConfig{
		Temperature:     config.Temperature,
		TopK:            config.TopK,
		TopP:            config.TopP,
		MaxOutputTokens: config.MaxOutputTokens,
	}
}

// NewChatRequest builds a single content block with the text part first and
// the images after it, in the order given.
func NewChatRequest(text string, images []Part) *GenerateRequest {
	parts := make([]Part, 0, len(images)+1)
	parts = append(parts, TextPart(text))
	parts = append(parts, images...)

	return &GenerateRequest{
		Contents:         []Content{{Parts: parts}},
		GenerationConfig: DefaultGenerationConfig(),
	}
}

// NewStudyPlanRequest asks for a JSON-formatted generation.
func NewStudyPlanRequest(prompt string) *GenerateRequest {
	cfg := DefaultGenerationConfig()
	cfg.ResponseMimeType = "application/json"

	return &GenerateRequest{
		Contents:         []Content{{Parts: []Part{TextPart(prompt)}}},
		GenerationConfig: cfg,
	}
}

type GeminiConfig struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
}

// GeminiClient talks to the generateContent REST endpoint directly.
type GeminiClient struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

func NewGeminiClient(cfg GeminiConfig) *GeminiClient {
	model := cfg.Model
	if model == "" {
		model = config.DefaultGeminiModel
	}
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = config.DefaultGeminiBaseURL
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		// Add timeout to prevent hanging
		httpClient = &http.Client{Timeout: timeout}
	}

	return &GeminiClient{
		apiKey:     cfg.APIKey,
		model:      model,
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

func (c *GeminiClient) IsConfigured() bool {
	return c.apiKey != ""
}

func (c *GeminiClient) Model() string {
	return c.model
}

func (c *GeminiClient) endpoint() string {
	return fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, url.QueryEscape(c.apiKey))
}

// GenerateContent issues exactly one generateContent call.
func (c *GeminiClient) GenerateContent(ctx context.Context, genReq *GenerateRequest) (*GenerateResponse, error) {
	if !c.IsConfigured() {
		return nil, types.NewConfigurationError("GEMINI_API_KEY not set")
	}

	jsonData, err := json.Marshal(genReq)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(), bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// The request URL carries the key; never let it reach the logs.
		return nil, fmt.Errorf("gemini request failed: %w", redactKey(err, c.apiKey))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		config.Logger.WithFields(logrus.Fields{
			"status": resp.StatusCode,
			"model":  c.model,
			"body":   string(body),
		}).Error("Gemini API returned an error")
		return nil, types.NewUpstreamError(resp.StatusCode, string(body))
	}

	var result GenerateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, types.NewSchemaError("AI service returned an unreadable response", err)
	}

	return &result, nil
}

func redactKey(err error, key string) error {
	if key == "" {
		return err
	}
	msg := strings.ReplaceAll(err.Error(), url.QueryEscape(key), "REDACTED")
	return fmt.Errorf("%s", strings.ReplaceAll(msg, key, "REDACTED"))
}
