package models

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// Lister handles listing available OpenAI models
type Lister struct {
	apiKey string
	client *openai.Client
}

// NewLister creates a new model lister
func NewLister(apiKey string) *Lister {
	return &Lister{
		apiKey: apiKey,
		client: openai.NewClient(apiKey),
	}
}

// ListAvailableModels lists the OpenAI models usable for corpus
// generation, chat models first.
func (l *Lister) ListAvailableModels() error {
	if l.apiKey == "" {
		return fmt.Errorf("OpenAI API key not found. Set OPENAI_API_KEY environment variable or configure in .hieroconv.yaml")
	}

	ctx := context.Background()
	models, err := l.client.ListModels(ctx)
	if err != nil {
		return fmt.Errorf("failed to list models: %w", err)
	}

	chatModels := []string{}
	otherModels := []string{}

	for _, model := range models.Models {
		modelID := model.ID
		if strings.Contains(modelID, "gpt") || strings.Contains(modelID, "chat") {
			chatModels = append(chatModels, modelID)
		} else {
			otherModels = append(otherModels, modelID)
		}
	}

	sort.Strings(chatModels)
	sort.Strings(otherModels)

	fmt.Println("Available OpenAI Models:")
	fmt.Println("\nGeneration Models (usable with 'hieroconv evaluate'):")
	if len(chatModels) == 0 {
		fmt.Println("  No generation models found")
	} else {
		for _, model := range chatModels {
			fmt.Printf("  %s\n", model)
		}
	}

	fmt.Println("\nOther Models:")
	if len(otherModels) == 0 {
		fmt.Println("  No other models found")
	} else if len(otherModels) > 10 {
		for _, model := range otherModels[:10] {
			fmt.Printf("  %s\n", model)
		}
		fmt.Printf("  ... and %d more models\n", len(otherModels)-10)
	} else {
		for _, model := range otherModels {
			fmt.Printf("  %s\n", model)
		}
	}

	return nil
}
