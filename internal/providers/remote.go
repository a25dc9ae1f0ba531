package providers

import (
	"context"

	"github.com/Tomas-vilte/predicte-commit/internal/config"
	"github.com/Tomas-vilte/predicte-commit/internal/domain/ports"
	"github.com/Tomas-vilte/predicte-commit/internal/infrastructure/ai"
	"github.com/Tomas-vilte/predicte-commit/internal/infrastructure/ai/gemini"
	"github.com/Tomas-vilte/predicte-commit/internal/infrastructure/ai/registry"
)

const (
	MistralURL = "https://api.mistral.ai/v1/chat/completions"
	OpenAIURL  = "https://api.openai.com/v1/chat/completions"
)

var (
	MistralModels = []string{"devstral-latest", "devstral-small-latest"}
	OpenAIModels  = []string{"gpt-4o-mini", "gpt-4o"}
)

func Mistral() registry.Definition {
	return remoteDefinition(remoteSpec{
		id:        "mistral",
		label:     "Mistral",
		url:       MistralURL,
		configKey: "mistral_api_key",
		models:    MistralModels,
	})
}

func OpenAI() registry.Definition {
	return remoteDefinition(remoteSpec{
		id:        "openai",
		label:     "OpenAI",
		url:       OpenAIURL,
		configKey: "openai_api_key",
		models:    OpenAIModels,
	})
}

// Gemini goes through the SDK instead of the chat-completion transport.
func Gemini() registry.Definition {
	const id, key = "gemini", "gemini_api_key"
	return registry.Definition{
		ID:        id,
		Label:     "Google Gemini",
		ConfigKey: key,
		Create: func(ctx context.Context, rt registry.RuntimeContext, cfg *config.Config) (ports.Provider, error) {
			apiKey, err := lookupAPIKey(ctx, rt, id, key)
			if err != nil {
				return nil, err
			}
			return gemini.NewProvider(id, ai.RemoteConfig{
				APIKey:        apiKey,
				ModelPriority: modelPriority(cfg, gemini.DefaultModels),
			}, rt.Gemini), nil
		},
	}
}
