package translate

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"codeberg.org/kmateva/hieroconv/internal/corpus"
)

// Request is one generation request: source text plus the field codes
// describing its language pair.
type Request struct {
	Text       string
	SourceCode corpus.Code
	TargetCode corpus.Code
}

// Provider generates the target-side text for held-out corpus entries.
type Provider interface {
	// Translate generates the target-side text for req.
	Translate(ctx context.Context, req Request) (string, error)

	// Name returns the provider name.
	Name() string

	// IsAvailable checks if the provider is properly configured.
	IsAvailable() error
}

// Config holds common configuration for model providers.
type Config struct {
	Provider string // Provider name: "openai" or "gemini"

	OpenAIKey   string
	OpenAIModel string

	GeminiKey   string
	GeminiModel string
}

// DefaultConfig returns default configuration.
func DefaultConfig() *Config {
	return &Config{
		Provider:    "openai",
		OpenAIModel: openai.GPT4oMini,
		GeminiModel: "gemini-2.0-flash",
	}
}

// NewProvider creates the appropriate model provider based on
// configuration.
func NewProvider(ctx context.Context, config *Config) (Provider, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Provider {
	case "openai":
		if config.OpenAIKey == "" {
			return nil, fmt.Errorf("OpenAI API key is required")
		}
		return NewOpenAIProvider(config), nil

	case "gemini":
		if config.GeminiKey == "" {
			return nil, fmt.Errorf("Gemini API key is required")
		}
		return NewGeminiProvider(ctx, config)

	default:
		return nil, fmt.Errorf("unknown model provider: %s", config.Provider)
	}
}

// codeDescription names each field code for prompt building.
var codeDescription = map[corpus.Code]string{
	corpus.CodeEgy: "Ancient Egyptian hieroglyphs given as Gardiner sign codes",
	corpus.CodeTnt: "Egyptological transliteration",
	corpus.CodeEn:  "English translation",
	corpus.CodeDe:  "German translation",
}

// buildPrompt renders the generation instruction for one request.
func buildPrompt(req Request) string {
	src, ok := codeDescription[req.SourceCode]
	if !ok {
		src = string(req.SourceCode)
	}
	tgt, ok := codeDescription[req.TargetCode]
	if !ok {
		tgt = string(req.TargetCode)
	}
	return fmt.Sprintf("Convert the following %s into its %s. Respond with only the converted text, nothing else.\n\n%s",
		src, tgt, req.Text)
}
