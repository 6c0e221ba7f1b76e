package ai

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// GeminiService implements SummaryOracle on the Gemini API with a JSON
// response MIME type.
type GeminiService struct {
	client   *genai.Client
	getModel func() string
}

func NewGeminiService(apiKey string, getModel func() string) (*GeminiService, error) {
	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: newHTTPClient(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &GeminiService{client: client, getModel: getModel}, nil
}

func (g *GeminiService) Provider() string { return string(ProviderGemini) }

// GenerateSummaryJSON implements SummaryOracle
func (g *GeminiService) GenerateSummaryJSON(ctx context.Context, transcript string) (string, error) {
	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(SummarySystemPrompt, genai.RoleUser),
		Temperature:       genai.Ptr(SummaryTemperature),
		ResponseMIMEType:  "application/json",
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.getModel(), genai.Text(SummaryUserPrompt(transcript)), config)
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("gemini returned no content")
	}
	return text, nil
}
