package translate

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// GeminiProvider generates translations through the Gemini API.
type GeminiProvider struct {
	config *Config
	client *genai.Client
}

// NewGeminiProvider creates a new Gemini-backed provider.
func NewGeminiProvider(ctx context.Context, config *Config) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  config.GeminiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiProvider{config: config, client: client}, nil
}

// Translate implements Provider.
func (p *GeminiProvider) Translate(ctx context.Context, req Request) (string, error) {
	if err := p.IsAvailable(); err != nil {
		return "", err
	}

	resp, err := p.client.Models.GenerateContent(ctx, p.config.GeminiModel,
		genai.Text(buildPrompt(req)), nil)
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("no completion returned")
	}
	return text, nil
}

// Name returns the provider name.
func (p *GeminiProvider) Name() string { return "gemini" }

// IsAvailable checks if the provider is properly configured.
func (p *GeminiProvider) IsAvailable() error {
	if p.config.GeminiKey == "" {
		return fmt.Errorf("Gemini API key not found")
	}
	return nil
}
