package translate

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// OpenAIProvider generates translations through the OpenAI chat API.
type OpenAIProvider struct {
	config *Config
	client *openai.Client
}

// NewOpenAIProvider creates a new OpenAI-backed provider.
func NewOpenAIProvider(config *Config) *OpenAIProvider {
	return &OpenAIProvider{
		config: config,
		client: openai.NewClient(config.OpenAIKey),
	}
}

// Translate implements Provider.
func (p *OpenAIProvider) Translate(ctx context.Context, req Request) (string, error) {
	if err := p.IsAvailable(); err != nil {
		return "", err
	}

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.config.OpenAIModel,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: buildPrompt(req),
			},
		},
		MaxTokens:   256,
		Temperature: 0.2,
	})
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no completion returned")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// Name returns the provider name.
func (p *OpenAIProvider) Name() string { return "openai" }

// IsAvailable checks if the provider is properly configured.
func (p *OpenAIProvider) IsAvailable() error {
	if p.config.OpenAIKey == "" {
		return fmt.Errorf("OpenAI API key not found")
	}
	return nil
}
