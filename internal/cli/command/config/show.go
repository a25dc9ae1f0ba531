package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/Tomas-vilte/predicte-commit/internal/config"
	"github.com/Tomas-vilte/predicte-commit/internal/i18n"
	"github.com/Tomas-vilte/predicte-commit/internal/infrastructure/ai/registry"
	"github.com/Tomas-vilte/predicte-commit/internal/ui"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newShowCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: t.GetMessage("config.show_usage", 0, nil),
		Action: func(ctx context.Context, command *cli.Command) error {
			w := command.Root().Writer
			none := t.GetMessage("config.none", 0, nil)

			ui.PrintSectionBanner(w, t.GetMessage("config.current", 0, nil))

			effective := registry.EffectiveProviderID(cfg)
			ui.PrintKeyValue(w, t.GetMessage("config.label_provider", 0, nil), effective)
			ui.PrintKeyValue(w, t.GetMessage("config.label_models", 0, nil), joinOr(cfg.Models, none))
			ui.PrintKeyValue(w, t.GetMessage("config.label_use_local", 0, nil), fmt.Sprint(cfg.UseLocal))
			ui.PrintKeyValue(w, t.GetMessage("config.label_local_provider", 0, nil), cfg.LocalProvider)
			ui.PrintKeyValue(w, t.GetMessage("config.label_local_base_url", 0, nil), orDefault(cfg.LocalBaseURL, none))
			ui.PrintKeyValue(w, t.GetMessage("config.label_local_model", 0, nil), orDefault(cfg.LocalModel, none))
			ui.PrintKeyValue(w, t.GetMessage("config.label_ignored", 0, nil), joinOr(cfg.IgnoredFiles, none))
			ui.PrintKeyValue(w, t.GetMessage("config.label_language", 0, nil), cfg.Language)
			ui.PrintKeyValue(w, t.GetMessage("config.label_debug", 0, nil), fmt.Sprint(cfg.DebugLogging))
			ui.PrintKeyValue(w, t.GetMessage("config.label_path", 0, nil), cfg.PathFile)

			def, err := c.providers.Get(effective)
			if err != nil {
				ui.PrintWarning(w, t.GetMessage("config.unknown_provider", 0, map[string]interface{}{
					"Provider":  effective,
					"Available": strings.Join(c.providers.List(), ", "),
				}))
				return nil
			}
			if def.ConfigKey == "" {
				return nil
			}

			if c.hasSecret(ctx, def.ConfigKey) {
				ui.PrintSuccess(w, t.GetMessage("config.key_set", 0, map[string]interface{}{"Provider": def.ID}))
			} else {
				ui.PrintWarning(w, t.GetMessage("config.key_not_set", 0, map[string]interface{}{"Provider": def.ID}))
			}
			return nil
		},
	}
}

func (c *ConfigCommandFactory) hasSecret(ctx context.Context, key string) bool {
	if c.secrets == nil {
		return false
	}
	value, err := c.secrets.Get(ctx, key)
	return err == nil && value != ""
}

func joinOr(values []string, fallback string) string {
	if len(values) == 0 {
		return fallback
	}
	return strings.Join(values, ", ")
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
