package providers

import (
	"context"
	"fmt"

	"github.com/Tomas-vilte/predicte-commit/internal/config"
	"github.com/Tomas-vilte/predicte-commit/internal/i18n"
	"github.com/Tomas-vilte/predicte-commit/internal/infrastructure/ai/registry"
	"github.com/Tomas-vilte/predicte-commit/internal/secrets"
	"github.com/Tomas-vilte/predicte-commit/internal/ui"
	"github.com/urfave/cli/v3"
)

type ProvidersCommandFactory struct {
	providers *registry.AIProviderRegistry
}

func NewProvidersCommandFactory(providers *registry.AIProviderRegistry) *ProvidersCommandFactory {
	return &ProvidersCommandFactory{providers: providers}
}

// CreateCommand lists every registered provider and marks the active one.
func (f *ProvidersCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "providers",
		Usage: t.GetMessage("providers.usage", 0, nil),
		Action: func(ctx context.Context, command *cli.Command) error {
			w := command.Root().Writer
			active := registry.EffectiveProviderID(cfg)

			ui.PrintSectionBanner(w, t.GetMessage("providers.title", 0, nil))
			for _, def := range f.providers.Definitions() {
				marker := " "
				if def.ID == active {
					marker = ui.Success.Sprint("*")
				}

				key := t.GetMessage("providers.no_key", 0, nil)
				if def.ConfigKey != "" {
					key = t.GetMessage("providers.key_env", 0, map[string]interface{}{
						"Env": secrets.EnvVarName(def.ConfigKey),
					})
				}

				_, _ = fmt.Fprintf(w, "%s %-10s %-34s %s\n", marker, def.ID, def.Label, key)
			}
			return nil
		},
	}
}
