package config

import (
	"context"
	"fmt"

	"github.com/Tomas-vilte/predicte-commit/internal/config"
	"github.com/Tomas-vilte/predicte-commit/internal/i18n"
	"github.com/Tomas-vilte/predicte-commit/internal/ui"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newInitCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: t.GetMessage("config.init_usage", 0, nil),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "keep-lang",
				Aliases: []string{"k"},
				Usage:   t.GetMessage("config.init_keep_lang_flag", 0, nil),
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			defaults := config.Default(cfg.PathFile)
			if command.Bool("keep-lang") {
				defaults.Language = cfg.Language
			}

			if err := config.SaveConfig(defaults); err != nil {
				return fmt.Errorf("%s: %w", t.GetMessage("config.save_error", 0, nil), err)
			}
			*cfg = *defaults

			ui.PrintSuccess(command.Root().Writer, t.GetMessage("config.init_done", 0, map[string]interface{}{
				"Path": cfg.PathFile,
			}))
			return nil
		},
	}
}
