package ai

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

// OpenAIService implements SummaryOracle with the chat completions API in
// JSON-object mode. Any OpenAI-compatible endpoint works via baseURL.
type OpenAIService struct {
	client   *openai.Client
	getModel func() string
}

func NewOpenAIService(apiKey, baseURL string, getModel func() string) *OpenAIService {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	config.HTTPClient = newHTTPClient()

	return &OpenAIService{
		client:   openai.NewClientWithConfig(config),
		getModel: getModel,
	}
}

func (o *OpenAIService) Provider() string { return string(ProviderOpenAI) }

// GenerateSummaryJSON implements SummaryOracle
func (o *OpenAIService) GenerateSummaryJSON(ctx context.Context, transcript string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:       o.getModel(),
		Temperature: SummaryTemperature,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: SummarySystemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: SummaryUserPrompt(transcript),
			},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	}

	resp, err := o.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("openai request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}
