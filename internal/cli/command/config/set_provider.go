package config

import (
	"context"
	"strings"

	"github.com/Tomas-vilte/predicte-commit/internal/config"
	"github.com/Tomas-vilte/predicte-commit/internal/i18n"
	"github.com/Tomas-vilte/predicte-commit/internal/ui"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newSetProviderCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "set-provider",
		Usage: t.GetMessage("config.set_provider_usage", 0, nil),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "id",
				Usage:    t.GetMessage("config.provider_id_flag", 0, nil),
				Required: true,
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			id := strings.TrimSpace(command.String("id"))
			def, err := c.lookupProvider(t, id)
			if err != nil {
				return err
			}

			// A remote choice turns the legacy local switch off so it takes effect.
			err = update(cfg, t, func(updated *config.Config) {
				updated.Provider = def.ID
				if def.ConfigKey != "" {
					updated.UseLocal = false
				}
			})
			if err != nil {
				return err
			}

			w := command.Root().Writer
			ui.PrintSuccess(w, t.GetMessage("config.provider_set", 0, map[string]interface{}{"Provider": def.ID}))
			if def.ConfigKey != "" && !c.hasSecret(ctx, def.ConfigKey) {
				ui.PrintWarning(w, t.GetMessage("config.key_not_set", 0, map[string]interface{}{"Provider": def.ID}))
			}
			return nil
		},
	}
}
