package factory

import (
	"context"
	"fmt"

	"ai-topiclist-be/pkg/llm"
	"ai-topiclist-be/pkg/llm/gemini"
	"ai-topiclist-be/pkg/llm/ollama"
)

const (
	ProviderGemini = "gemini"
	ProviderOllama = "ollama"
)

type Settings struct {
	Provider string
	Model    string
	APIKey   string
	BaseURL  string
}

func NewLLMProvider(ctx context.Context, s Settings) (llm.LLMProvider, error) {
	switch s.Provider {
	case ProviderGemini, "":
		return gemini.NewGeminiProvider(ctx, s.APIKey, s.Model)
	case ProviderOllama:
		return ollama.NewOllamaProvider(s.BaseURL, s.Model), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", s.Provider)
	}
}
