package ai

import (
	"fmt"

	"github.com/Tomas-vilte/predicte-commit/internal/domain/ports"
)

// NewProvider builds the provider matching the configuration variant.
func NewProvider(id string, cfg ProviderConfig, client ChatPoster) (ports.Provider, error) {
	switch c := cfg.(type) {
	case RemoteConfig:
		if len(c.ModelPriority) == 0 {
			return nil, fmt.Errorf("provider '%s' has no models configured", id)
		}
		return NewRemoteProvider(id, c, client), nil
	case LocalConfig:
		if c.BaseURL == "" {
			return nil, fmt.Errorf("provider '%s' has no base URL", id)
		}
		return NewLocalProvider(id, c, client), nil
	default:
		return nil, fmt.Errorf("unsupported provider configuration %T", cfg)
	}
}
