package config

import (
	"context"
	"fmt"

	"github.com/Tomas-vilte/predicte-commit/internal/config"
	"github.com/Tomas-vilte/predicte-commit/internal/i18n"
	"github.com/Tomas-vilte/predicte-commit/internal/ui"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newSetLangCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "set-lang",
		Usage: t.GetMessage("config.set_lang_usage", 0, nil),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "lang",
				Aliases:  []string{"l"},
				Usage:    t.GetMessage("config.lang_flag", 0, nil),
				Required: true,
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			lang := command.String("lang")
			if lang != config.LangEN && lang != config.LangES {
				return fmt.Errorf("%s", t.GetMessage("config.unsupported_language", 0, map[string]interface{}{"Lang": lang}))
			}

			if err := update(cfg, t, func(updated *config.Config) { updated.Language = lang }); err != nil {
				return err
			}
			if err := t.SetLanguage(lang); err != nil {
				return err
			}

			ui.PrintSuccess(command.Root().Writer, t.GetMessage("config.language_set", 0, map[string]interface{}{"Lang": lang}))
			return nil
		},
	}
}
