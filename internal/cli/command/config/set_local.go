package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/Tomas-vilte/predicte-commit/internal/config"
	"github.com/Tomas-vilte/predicte-commit/internal/i18n"
	"github.com/Tomas-vilte/predicte-commit/internal/ui"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newSetLocalCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "set-local",
		Usage: t.GetMessage("config.set_local_usage", 0, nil),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "provider",
				Usage: t.GetMessage("config.local_provider_flag", 0, nil),
			},
			&cli.StringFlag{
				Name:  "base-url",
				Usage: t.GetMessage("config.local_base_url_flag", 0, nil),
			},
			&cli.StringFlag{
				Name:  "model",
				Usage: t.GetMessage("config.local_model_flag", 0, nil),
			},
			&cli.BoolFlag{
				Name:  "enable",
				Usage: t.GetMessage("config.local_enable_flag", 0, nil),
			},
			&cli.BoolFlag{
				Name:  "disable",
				Usage: t.GetMessage("config.local_disable_flag", 0, nil),
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			enable, disable := command.Bool("enable"), command.Bool("disable")
			if enable && disable {
				return fmt.Errorf("%s", t.GetMessage("config.local_enable_conflict", 0, nil))
			}

			provider := strings.TrimSpace(command.String("provider"))
			if provider != "" {
				def, err := c.lookupProvider(t, provider)
				if err != nil {
					return err
				}
				if def.ConfigKey != "" {
					return fmt.Errorf("%s", t.GetMessage("config.not_local_provider", 0, map[string]interface{}{"Provider": def.ID}))
				}
			}

			err := update(cfg, t, func(updated *config.Config) {
				if provider != "" {
					updated.LocalProvider = provider
				}
				if command.IsSet("base-url") {
					updated.LocalBaseURL = strings.TrimSpace(command.String("base-url"))
				}
				if command.IsSet("model") {
					updated.LocalModel = strings.TrimSpace(command.String("model"))
				}
				switch {
				case enable:
					updated.UseLocal = true
				case disable:
					updated.UseLocal = false
				}
			})
			if err != nil {
				return err
			}

			ui.PrintSuccess(command.Root().Writer, t.GetMessage("config.local_saved", 0, map[string]interface{}{
				"Provider": cfg.LocalProvider,
				"Enabled":  cfg.UseLocal,
			}))
			return nil
		},
	}
}
