package factory

import (
	"fmt"

	"github.com/Shravansapate/legislate-voice-aid/pkg/llm"
	"github.com/Shravansapate/legislate-voice-aid/pkg/llm/ollama"
	"github.com/Shravansapate/legislate-voice-aid/pkg/llm/openrouter"
)

// Config carries everything any provider might need; each provider picks
// the fields it cares about.
type Config struct {
	Provider          string // "openrouter" or "ollama"
	Model             string
	OpenRouterAPIKey  string
	OpenRouterBaseURL string
	OpenRouterReferer string
	OllamaBaseURL     string
}

func NewLLMProvider(cfg Config) (llm.LLMProvider, error) {
	switch cfg.Provider {
	case "openrouter":
		return openrouter.NewOpenRouterProvider(
			cfg.OpenRouterAPIKey,
			cfg.OpenRouterBaseURL,
			cfg.Model,
			cfg.OpenRouterReferer,
		), nil
	case "ollama":
		baseURL := cfg.OllamaBaseURL
		if baseURL == "" {
			baseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(baseURL, cfg.Model), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}
}
