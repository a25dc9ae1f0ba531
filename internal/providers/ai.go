// Package providers holds the built-in AI provider definitions.
package providers

import (
	"context"
	"fmt"

	"github.com/Tomas-vilte/predicte-commit/internal/config"
	"github.com/Tomas-vilte/predicte-commit/internal/domain/ports"
	domainErrors "github.com/Tomas-vilte/predicte-commit/internal/errors"
	"github.com/Tomas-vilte/predicte-commit/internal/infrastructure/ai"
	"github.com/Tomas-vilte/predicte-commit/internal/infrastructure/ai/registry"
)

// Builtin returns every provider shipped with the tool, in display order.
func Builtin() []registry.Definition {
	return []registry.Definition{
		Mistral(),
		OpenAI(),
		Gemini(),
		Ollama(),
		LMStudio(),
		VLLM(),
		LegacyLocal(),
	}
}

// NewRegistry returns a registry holding Builtin.
func NewRegistry() *registry.AIProviderRegistry {
	return registry.NewAIProviderRegistry(Builtin()...)
}

// modelPriority prefers the user's model list over the provider defaults.
func modelPriority(cfg *config.Config, defaults []string) []string {
	if len(cfg.Models) > 0 {
		return append([]string(nil), cfg.Models...)
	}
	return append([]string(nil), defaults...)
}

// lookupAPIKey reads the provider key, failing when it is not set.
func lookupAPIKey(ctx context.Context, rt registry.RuntimeContext, id, key string) (string, error) {
	if rt.Secrets == nil {
		return "", domainErrors.ErrAPIKeyMissing.WithContext("provider", id)
	}
	apiKey, err := rt.Secrets.Get(ctx, key)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domainErrors.ErrAPIKeyMissing, err)
	}
	if apiKey == "" {
		return "", domainErrors.ErrAPIKeyMissing.
			WithContext("provider", id).
			WithSuggestion(fmt.Sprintf("Run: predicte-commit config set-api-key --provider %s --key <key>", id))
	}
	return apiKey, nil
}

type remoteSpec struct {
	id, label, url, configKey string
	models                    []string
}

func remoteDefinition(spec remoteSpec) registry.Definition {
	return registry.Definition{
		ID:        spec.id,
		Label:     spec.label,
		ConfigKey: spec.configKey,
		Create: func(ctx context.Context, rt registry.RuntimeContext, cfg *config.Config) (ports.Provider, error) {
			apiKey, err := lookupAPIKey(ctx, rt, spec.id, spec.configKey)
			if err != nil {
				return nil, err
			}
			return ai.NewProvider(spec.id, ai.RemoteConfig{
				URL:           spec.url,
				APIKey:        apiKey,
				ModelPriority: modelPriority(cfg, spec.models),
			}, rt.HTTP)
		},
	}
}

type localSpec struct {
	id, label, baseURL string
}

func localDefinition(spec localSpec) registry.Definition {
	return registry.Definition{
		ID:    spec.id,
		Label: spec.label,
		Create: func(_ context.Context, rt registry.RuntimeContext, cfg *config.Config) (ports.Provider, error) {
			baseURL := cfg.LocalBaseURL
			if baseURL == "" {
				baseURL = spec.baseURL
			}
			model := cfg.LocalModel
			if model == "" {
				model = config.DefaultLocalModel
			}
			return ai.NewProvider(spec.id, ai.LocalConfig{BaseURL: baseURL, Model: model}, rt.HTTP)
		},
	}
}
