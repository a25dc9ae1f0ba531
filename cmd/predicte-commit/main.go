package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/Tomas-vilte/predicte-commit/internal/cli/command/completion"
	configcmd "github.com/Tomas-vilte/predicte-commit/internal/cli/command/config"
	"github.com/Tomas-vilte/predicte-commit/internal/cli/command/generate"
	providerscmd "github.com/Tomas-vilte/predicte-commit/internal/cli/command/providers"
	"github.com/Tomas-vilte/predicte-commit/internal/cli/command/update"
	"github.com/Tomas-vilte/predicte-commit/internal/cli/registry"
	cfg "github.com/Tomas-vilte/predicte-commit/internal/config"
	domainErrors "github.com/Tomas-vilte/predicte-commit/internal/errors"
	"github.com/Tomas-vilte/predicte-commit/internal/infrastructure/git"
	"github.com/Tomas-vilte/predicte-commit/internal/i18n"
	"github.com/Tomas-vilte/predicte-commit/internal/infrastructure/di"
	"github.com/Tomas-vilte/predicte-commit/internal/logger"
	"github.com/Tomas-vilte/predicte-commit/internal/ui"
	"github.com/Tomas-vilte/predicte-commit/internal/version"
	"github.com/urfave/cli/v3"
)

// updateNoticeWait bounds how long a finished command waits for the
// passive update check.
const updateNoticeWait = 300 * time.Millisecond

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app, container, err := initializeApp()
	if err != nil {
		ui.PrintError(os.Stderr, err.Error())
		os.Exit(1)
	}
	trans := container.GetTranslations()

	var updates <-chan string
	if wantsUpdateNotice(os.Args[1:]) {
		updates = startUpdateCheck(ctx, container)
	}

	if err := app.Run(ctx, os.Args); err != nil {
		ui.HandleAppError(os.Stderr, err, trans)
		os.Exit(1)
	}

	if updates == nil {
		return
	}
	select {
	case latest := <-updates:
		if latest != "" {
			ui.PrintUpdateNotification(os.Stderr, trans, version.FullVersion(), latest, update.InstallCommand)
		}
	case <-time.After(updateNoticeWait):
	}
}

func initializeApp() (*cli.Command, *di.Container, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, nil, fmt.Errorf("could not determine the home directory: %w", err)
	}

	cfgApp, err := loadConfig(homeDir, os.Stderr)
	if err != nil {
		return nil, nil, err
	}

	translations, err := i18n.NewTranslations(cfgApp.Language, "")
	if err != nil {
		return nil, nil, fmt.Errorf("error loading translations: %w", err)
	}

	container := di.NewContainer(cfgApp, translations, cfg.Dir(homeDir))
	container.SetGitService(git.NewGitService(""))

	commitService, err := container.GetCommitService()
	if err != nil {
		return nil, nil, err
	}

	commands := registry.NewRegistry(cfgApp, translations)
	err = commands.Register(
		registry.Entry{Name: "generate", Factory: generate.NewGenerateCommandFactory(commitService, container.GetGitService(), container.GetSecretStore())},
		registry.Entry{Name: "config", Factory: configcmd.NewConfigCommandFactory(container.GetSecretStore(), container.GetAIRegistry())},
		registry.Entry{Name: "providers", Factory: providerscmd.NewProvidersCommandFactory(container.GetAIRegistry())},
		registry.Entry{Name: "update", Factory: update.NewUpdateCommandFactory(container.GetVersionChecker(version.FullVersion()))},
	)
	if err != nil {
		return nil, nil, err
	}

	app := &cli.Command{
		Name:        "predicte-commit",
		Usage:       translations.GetMessage("app_usage", 0, nil),
		Version:     version.Version,
		Description: translations.GetMessage("app_description", 0, nil),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "debug",
				Usage: translations.GetMessage("flag_debug", 0, nil),
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: translations.GetMessage("flag_verbose", 0, nil),
			},
		},
		Before: func(ctx context.Context, command *cli.Command) (context.Context, error) {
			logger.Initialize(command.Bool("debug") || cfgApp.DebugLogging, command.Bool("verbose"))
			return ctx, nil
		},
		Commands:              append(commands.CreateCommands(), completion.NewCompletionCommand(translations)),
		EnableShellCompletion: true,
	}

	return app, container, nil
}

// loadConfig reads the user configuration. An unusable file is reported on w
// and replaced by the defaults in memory, so "config init" stays reachable.
func loadConfig(homeDir string, w io.Writer) (*cfg.Config, error) {
	loaded, err := cfg.LoadConfig(homeDir)
	if err != nil && loaded != nil && errors.Is(err, domainErrors.ErrInvalidConfig) {
		ui.HandleAppError(w, err, nil)
		return loaded, nil
	}
	return loaded, err
}

// wantsUpdateNotice skips the passive check for commands that already talk
// about releases or whose output is sourced by a shell.
func wantsUpdateNotice(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "update", "completion", "--generate-shell-completion", "--version", "-v":
			return false
		}
	}
	return true
}

// startUpdateCheck runs the daily release check in the background. The
// channel yields the newer tag, or an empty string when there is none.
func startUpdateCheck(ctx context.Context, container *di.Container) <-chan string {
	result := make(chan string, 1)
	checker := container.GetVersionChecker(version.FullVersion())

	go func() {
		latest, err := checker.CheckForUpdates(ctx, false)
		if err != nil {
			logger.Debug(ctx, "update check failed", "error", err)
		}
		result <- latest
	}()

	return result
}
