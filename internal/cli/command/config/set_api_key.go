package config

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Tomas-vilte/predicte-commit/internal/config"
	"github.com/Tomas-vilte/predicte-commit/internal/i18n"
	"github.com/Tomas-vilte/predicte-commit/internal/secrets"
	"github.com/Tomas-vilte/predicte-commit/internal/ui"
	"github.com/urfave/cli/v3"
)

const minAPIKeyLength = 8

func (c *ConfigCommandFactory) newSetAPIKeyCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "set-api-key",
		Usage: t.GetMessage("config.set_api_key_usage", 0, nil),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "provider",
				Aliases: []string{"p"},
				Usage:   t.GetMessage("config.api_key_provider_flag", 0, nil),
			},
			&cli.StringFlag{
				Name:     "key",
				Aliases:  []string{"k"},
				Usage:    t.GetMessage("config.api_key_flag", 0, nil),
				Required: true,
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			id := strings.TrimSpace(command.String("provider"))
			if id == "" {
				id = cfg.Provider
			}

			def, err := c.lookupProvider(t, id)
			if err != nil {
				return err
			}
			if def.ConfigKey == "" {
				return fmt.Errorf("%s", t.GetMessage("config.no_key_needed", 0, map[string]interface{}{"Provider": def.ID}))
			}

			apiKey := strings.TrimSpace(command.String("key"))
			if utf8.RuneCountInString(apiKey) < minAPIKeyLength {
				return fmt.Errorf("%s", t.GetMessage("config.invalid_key", 0, map[string]interface{}{"Min": minAPIKeyLength}))
			}

			if err := c.secrets.Set(ctx, def.ConfigKey, apiKey); err != nil {
				return fmt.Errorf("%s: %w", t.GetMessage("config.key_save_error", 0, nil), err)
			}

			w := command.Root().Writer
			ui.PrintSuccess(w, t.GetMessage("config.key_saved", 0, map[string]interface{}{"Provider": def.ID}))
			ui.PrintInfo(w, t.GetMessage("config.key_env_hint", 0, map[string]interface{}{
				"Env": secrets.EnvVarName(def.ConfigKey),
			}))
			return nil
		},
	}
}
