package config

import (
	"context"
	"strings"

	"github.com/Tomas-vilte/predicte-commit/internal/config"
	"github.com/Tomas-vilte/predicte-commit/internal/i18n"
	"github.com/Tomas-vilte/predicte-commit/internal/ui"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newSetModelsCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "set-models",
		Usage: t.GetMessage("config.set_models_usage", 0, nil),
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "model",
				Aliases: []string{"m"},
				Usage:   t.GetMessage("config.models_flag", 0, nil),
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			var models []string
			for _, m := range command.StringSlice("model") {
				if m = strings.TrimSpace(m); m != "" {
					models = append(models, m)
				}
			}

			if err := update(cfg, t, func(updated *config.Config) { updated.Models = models }); err != nil {
				return err
			}

			w := command.Root().Writer
			if len(models) == 0 {
				ui.PrintSuccess(w, t.GetMessage("config.models_cleared", 0, nil))
				return nil
			}
			ui.PrintSuccess(w, t.GetMessage("config.models_saved", 0, map[string]interface{}{
				"Models": strings.Join(models, ", "),
			}))
			return nil
		},
	}
}
