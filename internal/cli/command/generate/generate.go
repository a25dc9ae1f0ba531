package generate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Tomas-vilte/predicte-commit/internal/config"
	"github.com/Tomas-vilte/predicte-commit/internal/domain/ports"
	domainErrors "github.com/Tomas-vilte/predicte-commit/internal/errors"
	"github.com/Tomas-vilte/predicte-commit/internal/i18n"
	"github.com/Tomas-vilte/predicte-commit/internal/infrastructure/ai/registry"
	"github.com/Tomas-vilte/predicte-commit/internal/logger"
	"github.com/Tomas-vilte/predicte-commit/internal/services"
	"github.com/Tomas-vilte/predicte-commit/internal/ui"
	"github.com/urfave/cli/v3"
)

// Editor lets the user adjust a message before it is used.
type Editor func(initialMessage, errorMessage string) (string, error)

type GenerateCommandFactory struct {
	commitService ports.CommitService
	git           ports.GitService
	secrets       ports.SecretStore
	edit          Editor
}

func NewGenerateCommandFactory(commitService ports.CommitService, git ports.GitService, secrets ports.SecretStore) *GenerateCommandFactory {
	return &GenerateCommandFactory{
		commitService: commitService,
		git:           git,
		secrets:       secrets,
		edit:          ui.EditCommitMessage,
	}
}

// WithEditor replaces the $EDITOR based editor.
func (f *GenerateCommandFactory) WithEditor(edit Editor) *GenerateCommandFactory {
	f.edit = edit
	return f
}

func (f *GenerateCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:        "generate",
		Aliases:     []string{"g"},
		Usage:       t.GetMessage("generate.usage", 0, nil),
		Description: t.GetMessage("generate.description", 0, nil),
		Flags:       f.createFlags(t),
		Action:      f.createAction(t, cfg),
	}
}

func (f *GenerateCommandFactory) createFlags(t *i18n.Translations) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   t.GetMessage("generate.flag_output", 0, nil),
		},
		&cli.BoolFlag{
			Name:    "commit",
			Aliases: []string{"c"},
			Usage:   t.GetMessage("generate.flag_commit", 0, nil),
		},
		&cli.StringFlag{
			Name:    "provider",
			Aliases: []string{"p"},
			Usage:   t.GetMessage("generate.flag_provider", 0, nil),
		},
		&cli.BoolFlag{
			Name:    "edit",
			Aliases: []string{"e"},
			Usage:   t.GetMessage("generate.flag_edit", 0, nil),
		},
	}
}

func (f *GenerateCommandFactory) createAction(t *i18n.Translations, cfg *config.Config) cli.ActionFunc {
	return func(ctx context.Context, command *cli.Command) error {
		stdout, stderr := command.Root().Writer, command.Root().ErrWriter

		runCfg := *cfg
		if provider := strings.TrimSpace(command.String("provider")); provider != "" {
			runCfg.Provider = provider
			runCfg.UseLocal = false
		}

		spinner := ui.NewSmartSpinner(t.GetMessage("generate.collecting", 0, nil))
		spinner.Start()

		staged, err := f.commitService.CollectStagedEntries(ctx, runCfg.IgnoredFiles)
		if err != nil {
			spinner.Stop()
			return f.handleCollectError(stderr, t, err)
		}
		if len(staged.Ignored) > 0 {
			logger.Info(ctx, "staged files ignored", "ignored", len(staged.Ignored), "files", strings.Join(staged.Ignored, ","))
		}

		spinner.UpdateMessage(t.GetMessage("generate.generating", len(staged.Entries), map[string]interface{}{
			"Provider": registry.EffectiveProviderID(&runCfg),
			"Count":    len(staged.Entries),
		}))

		message, err := f.commitService.GenerateCommitMessage(ctx, staged.Entries, &runCfg, f.secrets)
		spinner.Stop()
		if err != nil {
			return err
		}

		if !services.IsConventionalSubject(message) {
			ui.PrintWarning(stderr, t.GetMessage("generate.not_conventional", 0, nil))
		}

		if command.Bool("edit") {
			message, err = f.edit(message, t.GetMessage("generate.editor_error", 0, nil))
			if err != nil {
				return err
			}
		}

		if output := command.String("output"); output != "" {
			if err := os.WriteFile(output, []byte(message+"\n"), 0644); err != nil {
				return domainErrors.ErrWriteMessage.WithError(err).WithContext("path", output)
			}
			ui.PrintSuccess(stderr, t.GetMessage("generate.written", 0, map[string]interface{}{"Path": output}))
		} else {
			_, _ = fmt.Fprintln(stdout, message)
		}

		if command.Bool("commit") {
			if err := f.git.CreateCommit(ctx, message); err != nil {
				return err
			}
			ui.PrintSuccess(stderr, t.GetMessage("generate.commit_created", 0, nil))
		}

		return nil
	}
}

// handleCollectError reports an empty or fully ignored index as a notice
// rather than a failure.
func (f *GenerateCommandFactory) handleCollectError(w io.Writer, t *i18n.Translations, err error) error {
	var appErr *domainErrors.AppError
	switch {
	case errors.Is(err, domainErrors.ErrNoStagedChanges):
		root := ""
		if errors.As(err, &appErr) {
			root, _ = appErr.Context["root"].(string)
		}
		ui.PrintWarning(w, t.GetMessage("generate.no_staged", 0, map[string]interface{}{"Root": root}))
		return nil
	case errors.Is(err, domainErrors.ErrAllChangesIgnored):
		ui.PrintWarning(w, t.GetMessage("generate.all_ignored", 0, nil))
		return nil
	default:
		return err
	}
}
