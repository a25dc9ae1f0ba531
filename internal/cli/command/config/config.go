package config

import (
	"fmt"
	"strings"

	"github.com/Tomas-vilte/predicte-commit/internal/config"
	"github.com/Tomas-vilte/predicte-commit/internal/domain/ports"
	"github.com/Tomas-vilte/predicte-commit/internal/i18n"
	"github.com/Tomas-vilte/predicte-commit/internal/infrastructure/ai/registry"
	"github.com/urfave/cli/v3"
)

type ConfigCommandFactory struct {
	secrets   ports.SecretStore
	providers *registry.AIProviderRegistry
}

func NewConfigCommandFactory(secrets ports.SecretStore, providers *registry.AIProviderRegistry) *ConfigCommandFactory {
	return &ConfigCommandFactory{
		secrets:   secrets,
		providers: providers,
	}
}

func (c *ConfigCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   t.GetMessage("config.usage", 0, nil),
		Commands: []*cli.Command{
			c.newShowCommand(t, cfg),
			c.newInitCommand(t, cfg),
			c.newSetProviderCommand(t, cfg),
			c.newSetAPIKeyCommand(t, cfg),
			c.newSetLocalCommand(t, cfg),
			c.newSetModelsCommand(t, cfg),
			c.newSetLangCommand(t, cfg),
		},
	}
}

// update applies change to a copy of cfg and only keeps it once the copy
// was validated and written.
func update(cfg *config.Config, t *i18n.Translations, change func(*config.Config)) error {
	updated := *cfg
	change(&updated)

	if err := config.SaveConfig(&updated); err != nil {
		return fmt.Errorf("%s: %w", t.GetMessage("config.save_error", 0, nil), err)
	}

	*cfg = updated
	return nil
}

// lookupProvider fails with a localized message for unknown ids.
func (c *ConfigCommandFactory) lookupProvider(t *i18n.Translations, id string) (registry.Definition, error) {
	def, err := c.providers.Get(id)
	if err != nil {
		return registry.Definition{}, fmt.Errorf("%s", t.GetMessage("config.unknown_provider", 0, map[string]interface{}{
			"Provider":  id,
			"Available": strings.Join(c.providers.List(), ", "),
		}))
	}
	return def, nil
}
