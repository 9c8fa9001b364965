package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studyup/ai-gateway/types"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("SUPABASE_URL", "https://project.supabase.co/")
	t.Setenv("SUPABASE_KEY", "service-key")
	t.Setenv("GEMINI_API_KEY", "gemini-key")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "https://project.supabase.co", cfg.SupabaseURL)
	assert.Equal(t, DefaultGeminiModel, cfg.GeminiModel)
	assert.Equal(t, DefaultGeminiBaseURL, cfg.GeminiBaseURL)
	assert.Equal(t, TransportREST, cfg.GeminiTransport)
	assert.Equal(t, 30*time.Second, cfg.GeminiTimeout)
	assert.Equal(t, 4, cfg.ImageFetchConcurrency)
	assert.Equal(t, int64(20<<20), cfg.MaxImageBytes)
}

func TestLoadOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("GEMINI_TRANSPORT", "SDK")
	t.Setenv("GEMINI_TIMEOUT", "5s")
	t.Setenv("IMAGE_FETCH_CONCURRENCY", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, TransportSDK, cfg.GeminiTransport)
	assert.Equal(t, 5*time.Second, cfg.GeminiTimeout)
	assert.Equal(t, 4, cfg.ImageFetchConcurrency)
}

func TestLoadMissingSecrets(t *testing.T) {
	t.Setenv("SUPABASE_URL", "")
	t.Setenv("SUPABASE_KEY", "service-key")
	t.Setenv("GEMINI_API_KEY", "")

	cfg, err := Load()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.True(t, types.IsKind(err, types.KindConfiguration))
	assert.Contains(t, err.Error(), "SUPABASE_URL")
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
	assert.NotContains(t, err.Error(), "SUPABASE_KEY")
}

func TestValidateRejectsUnknownTransport(t *testing.T) {
	cfg := &Config{
		SupabaseURL:           "https://project.supabase.co",
		SupabaseKey:           "key",
		GeminiAPIKey:          "key",
		GeminiTransport:       "grpc",
		ImageFetchConcurrency: 1,
		MaxImageBytes:         1,
	}

	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, types.IsKind(err, types.KindConfiguration))
}
