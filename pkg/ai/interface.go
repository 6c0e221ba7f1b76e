package ai

import (
	"context"
)

// SummaryOracle is an external model that turns a formatted transcript into
// a JSON summary document. Implementations return the model's raw text; the
// caller owns parsing and validation.
// Implement this interface to add new AI providers.
type SummaryOracle interface {
	GenerateSummaryJSON(ctx context.Context, transcript string) (string, error)
	Provider() string
}

// ProviderType represents the AI provider type
type ProviderType string

const (
	ProviderOpenAI ProviderType = "openai"
	ProviderGemini ProviderType = "gemini"
	ProviderOllama ProviderType = "ollama"
	ProviderAuto   ProviderType = "auto"
)
