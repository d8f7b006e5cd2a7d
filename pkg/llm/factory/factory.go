package factory

import (
	"fmt"

	"ai-tutor-be/internal/pkg/apperr"
	"ai-tutor-be/pkg/llm"
	"ai-tutor-be/pkg/llm/anthropic"
	"ai-tutor-be/pkg/llm/ollama"
)

func NewLLMProvider(providerType, modelName, apiKey, baseURL string) (llm.LLMProvider, error) {
	switch providerType {
	case "anthropic":
		if apiKey == "" {
			return nil, apperr.Configuration("anthropic provider requires ANTHROPIC_API_KEY")
		}
		return anthropic.NewAnthropicProvider(apiKey, modelName), nil
	case "ollama":
		if baseURL == "" {
			baseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(baseURL, modelName), nil
	default:
		return nil, apperr.Configuration(fmt.Sprintf("unsupported LLM provider: %s", providerType))
	}
}
