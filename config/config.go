// Package config loads process-wide settings once at startup.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"studyup/ai-gateway/types"
)

// Transport names accepted by GEMINI_TRANSPORT.
const (
	TransportREST = "rest"
	TransportSDK  = "sdk"
)

type Config struct {
	Port string

	SupabaseURL string
	SupabaseKey string

	GeminiAPIKey    string
	GeminiModel     string
	GeminiBaseURL   string
	GeminiTransport string
	GeminiTimeout   time.Duration

	ImageFetchTimeout     time.Duration
	ImageFetchConcurrency int
	MaxImageBytes         int64

	LogLevel  string
	LogFormat string
}

// Load reads configuration from environment variables and validates it.
func Load() (*Config, error) {
	cfg := &Config{
		Port:                  getEnv("PORT", "8080"),
		SupabaseURL:           strings.TrimRight(getEnv("SUPABASE_URL", ""), "/"),
		SupabaseKey:           getEnv("SUPABASE_KEY", ""),
		GeminiAPIKey:          getEnv("GEMINI_API_KEY", ""),
		GeminiModel:           getEnv("GEMINI_MODEL", DefaultGeminiModel),
		GeminiBaseURL:         strings.TrimRight(getEnv("GEMINI_BASE_URL", DefaultGeminiBaseURL), "/"),
		GeminiTransport:       strings.ToLower(getEnv("GEMINI_TRANSPORT", TransportREST)),
		GeminiTimeout:         getEnvDuration("GEMINI_TIMEOUT", 30*time.Second),
		ImageFetchTimeout:     getEnvDuration("IMAGE_FETCH_TIMEOUT", 15*time.Second),
		ImageFetchConcurrency: getEnvInt("IMAGE_FETCH_CONCURRENCY", 4),
		MaxImageBytes:         int64(getEnvInt("MAX_IMAGE_BYTES", 20<<20)),
		LogLevel:              getEnv("LOG_LEVEL", "info"),
		LogFormat:             getEnv("LOG_FORMAT", "text"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every missing secret at once as a configuration error.
func (c *Config) Validate() error {
	var missing []string
	if c.SupabaseURL == "" {
		missing = append(missing, "SUPABASE_URL")
	}
	if c.SupabaseKey == "" {
		missing = append(missing, "SUPABASE_KEY")
	}
	if c.GeminiAPIKey == "" {
		missing = append(missing, "GEMINI_API_KEY")
	}
	if len(missing) > 0 {
		return types.NewConfigurationError("missing required configuration: " + strings.Join(missing, ", "))
	}

	if c.GeminiTransport != TransportREST && c.GeminiTransport != TransportSDK {
		return types.NewConfigurationError("GEMINI_TRANSPORT must be \"rest\" or \"sdk\", got " + strconv.Quote(c.GeminiTransport))
	}
	if c.ImageFetchConcurrency <= 0 {
		return types.NewConfigurationError("IMAGE_FETCH_CONCURRENCY must be > 0")
	}
	if c.MaxImageBytes <= 0 {
		return types.NewConfigurationError("MAX_IMAGE_BYTES must be > 0")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
