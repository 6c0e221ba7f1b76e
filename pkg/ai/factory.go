package ai

import (
	"fmt"
	"net/http"
	"time"
)

// Config holds AI provider configuration
type Config struct {
	Provider ProviderType

	OpenAIApiKey  string
	OpenAIModel   string
	OpenAIBaseURL string

	GeminiApiKey string
	GeminiModel  string

	OllamaBaseURL string
	OllamaModel   string

	// Runtime overrides; nil means static config only.
	Runtime *RuntimeSettings
}

// NewSummaryOracle creates a SummaryOracle based on the config.
// Switch AI provider by changing config.Provider.
func NewSummaryOracle(cfg Config) (SummaryOracle, error) {
	switch cfg.Provider {
	case ProviderOpenAI:
		if cfg.OpenAIApiKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required for OpenAI provider")
		}
		return NewOpenAIService(cfg.OpenAIApiKey, cfg.OpenAIBaseURL, modelGetter(cfg.Runtime, cfg.OpenAIModel)), nil

	case ProviderGemini:
		if cfg.GeminiApiKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY is required for Gemini provider")
		}
		return NewGeminiService(cfg.GeminiApiKey, modelGetter(cfg.Runtime, cfg.GeminiModel))

	case ProviderOllama:
		return newOllama(cfg), nil

	case ProviderAuto, "":
		// First configured provider wins; no runtime fallback between them.
		if cfg.OpenAIApiKey != "" {
			return NewOpenAIService(cfg.OpenAIApiKey, cfg.OpenAIBaseURL, modelGetter(cfg.Runtime, cfg.OpenAIModel)), nil
		}
		if cfg.GeminiApiKey != "" {
			return NewGeminiService(cfg.GeminiApiKey, modelGetter(cfg.Runtime, cfg.GeminiModel))
		}
		return newOllama(cfg), nil

	default:
		return nil, fmt.Errorf("unknown AI provider %q", cfg.Provider)
	}
}

func newOllama(cfg Config) *OllamaService {
	if cfg.Runtime == nil {
		return NewOllamaService(cfg.OllamaBaseURL, cfg.OllamaModel)
	}
	return NewOllamaServiceWithGetters(
		stringGetter(cfg.Runtime.OllamaBaseURL, cfg.OllamaBaseURL),
		modelGetter(cfg.Runtime, cfg.OllamaModel),
	)
}

func modelGetter(rt *RuntimeSettings, static string) func() string {
	if rt == nil {
		return func() string { return static }
	}
	return stringGetter(rt.Model, static)
}

func stringGetter(get func() string, static string) func() string {
	return func() string {
		if v := get(); v != "" {
			return v
		}
		return static
	}
}

func newHTTPClient() *http.Client {
	return &http.Client{
		Transport: &http.Transport{
			MaxIdleConns:        10,
			IdleConnTimeout:     90 * time.Second,
			TLSHandshakeTimeout: 10 * time.Second,
		},
	}
}
