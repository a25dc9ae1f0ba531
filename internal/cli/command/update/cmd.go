package update

import (
	"context"
	"fmt"

	"github.com/Tomas-vilte/predicte-commit/internal/config"
	"github.com/Tomas-vilte/predicte-commit/internal/i18n"
	"github.com/Tomas-vilte/predicte-commit/internal/ui"
	"github.com/urfave/cli/v3"
)

// InstallCommand reinstalls the latest release.
const InstallCommand = "go install github.com/Tomas-vilte/predicte-commit/cmd/predicte-commit@latest"

type UpdateChecker interface {
	CheckForUpdates(ctx context.Context, force bool) (string, error)
	CurrentVersion() string
}

type UpdateCommandFactory struct {
	checker UpdateChecker
}

func NewUpdateCommandFactory(checker UpdateChecker) *UpdateCommandFactory {
	return &UpdateCommandFactory{checker: checker}
}

func (f *UpdateCommandFactory) CreateCommand(t *i18n.Translations, _ *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "update",
		Usage: t.GetMessage("update.usage", 0, nil),
		Action: func(ctx context.Context, command *cli.Command) error {
			w := command.Root().Writer
			ui.PrintInfo(w, t.GetMessage("update.checking", 0, nil))

			latest, err := f.checker.CheckForUpdates(ctx, true)
			if err != nil {
				return fmt.Errorf("%s: %w", t.GetMessage("update.check_error", 0, nil), err)
			}

			current := f.checker.CurrentVersion()
			if latest == "" {
				ui.PrintSuccess(w, t.GetMessage("update.up_to_date", 0, map[string]interface{}{"Version": current}))
				return nil
			}

			ui.PrintUpdateNotification(w, t, current, latest, InstallCommand)
			return nil
		},
	}
}
