package registry

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/Tomas-vilte/predicte-commit/internal/config"
	"github.com/Tomas-vilte/predicte-commit/internal/domain/ports"
	domainErrors "github.com/Tomas-vilte/predicte-commit/internal/errors"
	"github.com/Tomas-vilte/predicte-commit/internal/infrastructure/ai"
	"github.com/Tomas-vilte/predicte-commit/internal/infrastructure/ai/gemini"
)

// RuntimeContext carries the capabilities a factory may use.
type RuntimeContext struct {
	Secrets ports.SecretStore
	HTTP    ai.ChatPoster
	Gemini  gemini.ClientFactory
}

// Factory builds a live provider from the current configuration.
type Factory func(ctx context.Context, rt RuntimeContext, cfg *config.Config) (ports.Provider, error)

// Definition describes one provider the tool knows about.
type Definition struct {
	ID    string
	Label string
	// ConfigKey is the secret key holding the provider's API key, empty for
	// providers that need none.
	ConfigKey string
	Create    Factory
}

// AIProviderRegistry is an ordered set of provider definitions.
type AIProviderRegistry struct {
	mu          sync.RWMutex
	definitions []Definition
	index       map[string]int
}

// NewAIProviderRegistry registers defs in order. When two definitions share
// an id the first one is kept.
func NewAIProviderRegistry(defs ...Definition) *AIProviderRegistry {
	r := &AIProviderRegistry{index: make(map[string]int)}
	for _, def := range defs {
		_ = r.Register(def)
	}
	return r
}

// Register adds def. A duplicate id is rejected and the original kept.
func (r *AIProviderRegistry) Register(def Definition) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if def.ID == "" {
		return fmt.Errorf("provider definition has no id")
	}
	if def.Create == nil {
		return fmt.Errorf("provider '%s' has no factory", def.ID)
	}
	if _, exists := r.index[def.ID]; exists {
		return fmt.Errorf("provider '%s' is already registered", def.ID)
	}

	r.index[def.ID] = len(r.definitions)
	r.definitions = append(r.definitions, def)
	return nil
}

// Get looks up a definition by exact id.
func (r *AIProviderRegistry) Get(id string) (Definition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, exists := r.index[id]
	if !exists {
		return Definition{}, domainErrors.NewProviderNotRegisteredError(id)
	}
	return r.definitions[i], nil
}

// List returns the registered ids in registration order.
func (r *AIProviderRegistry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.definitions))
	for _, def := range r.definitions {
		ids = append(ids, def.ID)
	}
	return ids
}

// Definitions returns a copy of the registered definitions.
func (r *AIProviderRegistry) Definitions() []Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]Definition(nil), r.definitions...)
}

func (r *AIProviderRegistry) IsRegistered(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.index[id]
	return exists
}

// EffectiveProviderID applies the legacy local flag: with UseLocal set the
// trimmed LocalProvider wins, defaulting to ollama when blank.
func EffectiveProviderID(cfg *config.Config) string {
	if cfg.UseLocal {
		if id := strings.TrimSpace(cfg.LocalProvider); id != "" {
			return id
		}
		return config.DefaultLocalProvider
	}
	return cfg.Provider
}

// Select resolves the effective provider and builds it.
func (r *AIProviderRegistry) Select(ctx context.Context, rt RuntimeContext, cfg *config.Config) (ports.Provider, error) {
	def, err := r.Get(EffectiveProviderID(cfg))
	if err != nil {
		return nil, err
	}
	return def.Create(ctx, rt, cfg)
}
