package config

// Relay limits
const (
	MaxMaterials          = 5
	MaterialExcerptLength = 2000
)

// Generation parameters shared by the chat and study plan relays
const (
	Temperature     = 0.7
	TopK            = 40
	TopP            = 0.95
	MaxOutputTokens = 2048
)

const (
	DefaultGeminiModel   = "gemini-1.5-flash-latest"
	DefaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"
)

// SessionStatusPlanned is the status given to sessions saved from an accepted plan.
const SessionStatusPlanned = "planned"
