package completion

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Tomas-vilte/predicte-commit/internal/i18n"
	"github.com/Tomas-vilte/predicte-commit/internal/ui"
	"github.com/urfave/cli/v3"
)

const bashCompletionScript = `#! /bin/bash

_predicte_commit_bash_autocomplete() {
  if [[ "${COMP_WORDS[0]}" != "source" ]]; then
    local cur opts
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    local cmd_context=("${COMP_WORDS[@]:0:$COMP_CWORD}")
    opts=$( "${cmd_context[@]}" --generate-shell-completion )
    COMPREPLY=( $(compgen -W "${opts}" -- ${cur}) )
    return 0
  fi
}

complete -o bashdefault -o default -o nospace -F _predicte_commit_bash_autocomplete predicte-commit
`

const zshCompletionScript = `#compdef predicte-commit

_predicte_commit() {
  local -a opts
  local cmd_context=("${(@)words[1,$CURRENT-1]}")
  opts=("${(@f)$("${cmd_context[@]}" --generate-shell-completion)}")
  _describe 'values' opts
}

compdef _predicte_commit predicte-commit
`

const installMarker = "# predicte-commit shell completion"

const installSnippet = `
` + installMarker + `
if command -v predicte-commit >/dev/null 2>&1; then
	source <(predicte-commit completion %s)
fi
`

func NewCompletionCommand(t *i18n.Translations) *cli.Command {
	return &cli.Command{
		Name:        "completion",
		Usage:       t.GetMessage("completion.command_usage", 0, nil),
		Description: t.GetMessage("completion.command_description", 0, nil),
		Commands: []*cli.Command{
			{
				Name:  "bash",
				Usage: t.GetMessage("completion.bash_usage", 0, nil),
				Action: func(ctx context.Context, cmd *cli.Command) error {
					_, err := io.WriteString(cmd.Root().Writer, bashCompletionScript)
					return err
				},
			},
			{
				Name:  "zsh",
				Usage: t.GetMessage("completion.zsh_usage", 0, nil),
				Action: func(ctx context.Context, cmd *cli.Command) error {
					_, err := io.WriteString(cmd.Root().Writer, zshCompletionScript)
					return err
				},
			},
			{
				Name:  "install",
				Usage: t.GetMessage("completion.install_usage", 0, nil),
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return install(cmd.Root().Writer, t, os.Getenv("SHELL"))
				},
			},
		},
	}
}

func install(w io.Writer, t *i18n.Translations, shell string) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("%s", t.GetMessage("completion.error_home_dir", 0, map[string]interface{}{"Error": err.Error()}))
	}

	var shellName, rcFile string
	switch {
	case strings.Contains(shell, "zsh"):
		shellName, rcFile = "zsh", filepath.Join(home, ".zshrc")
	case strings.Contains(shell, "bash"):
		shellName, rcFile = "bash", filepath.Join(home, ".bashrc")
	default:
		return fmt.Errorf("%s", t.GetMessage("completion.error_unsupported_shell", 0, map[string]interface{}{"Shell": shell}))
	}

	if existing, err := os.ReadFile(rcFile); err == nil && strings.Contains(string(existing), installMarker) {
		ui.PrintInfo(w, t.GetMessage("completion.already_installed", 0, map[string]interface{}{"File": rcFile}))
		return nil
	}

	f, err := os.OpenFile(rcFile, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("%s", t.GetMessage("completion.error_open_config", 0, map[string]interface{}{"Error": err.Error()}))
	}
	defer func() { _ = f.Close() }()

	if _, err := fmt.Fprintf(f, installSnippet, shellName); err != nil {
		return fmt.Errorf("%s", t.GetMessage("completion.error_write_config", 0, map[string]interface{}{"Error": err.Error()}))
	}

	ui.PrintSuccess(w, t.GetMessage("completion.installed_success", 0, map[string]interface{}{"File": rcFile}))
	ui.PrintInfo(w, t.GetMessage("completion.restart_shell", 0, map[string]interface{}{"File": rcFile}))
	return nil
}
