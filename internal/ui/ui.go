package ui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	domainErrors "github.com/Tomas-vilte/predicte-commit/internal/errors"
	"github.com/Tomas-vilte/predicte-commit/internal/i18n"
	"github.com/briandowns/spinner"
	"github.com/fatih/color"
)

var (
	Success = color.New(color.FgGreen, color.Bold)
	Error   = color.New(color.FgRed, color.Bold)
	Warning = color.New(color.FgYellow, color.Bold)
	Info    = color.New(color.FgCyan, color.Bold)
	Accent  = color.New(color.FgMagenta, color.Bold)
	Dim     = color.New(color.FgHiBlack)

	SuccessEmoji = Success.Sprint("✅")
	WarningEmoji = Warning.Sprint("⚠️")
	InfoEmoji    = Info.Sprint("ℹ️")
	SparkEmoji   = "✨"
)

// SmartSpinner draws on stderr so stdout only carries command output.
type SmartSpinner struct {
	spinner *spinner.Spinner
}

func NewSmartSpinner(initialMessage string) *SmartSpinner {
	s := spinner.New(
		spinner.CharSets[14],
		100*time.Millisecond,
		spinner.WithColor("cyan"),
		spinner.WithWriter(os.Stderr),
		spinner.WithSuffix(" "+SparkEmoji+" "+initialMessage),
	)
	return &SmartSpinner{spinner: s}
}

func (s *SmartSpinner) Start() {
	s.spinner.Start()
}

func (s *SmartSpinner) Stop() {
	s.spinner.Stop()
}

func (s *SmartSpinner) UpdateMessage(msg string) {
	s.spinner.Suffix = " " + SparkEmoji + " " + msg
}

func (s *SmartSpinner) Success(msg string) {
	s.Stop()
	PrintSuccess(os.Stderr, msg)
}

func (s *SmartSpinner) Error(msg string) {
	s.Stop()
	PrintError(os.Stderr, msg)
}

func PrintSuccess(w io.Writer, msg string) {
	_, _ = fmt.Fprintf(w, "%s %s\n", SuccessEmoji, Success.Sprint(msg))
}

func PrintError(w io.Writer, msg string) {
	_, _ = fmt.Fprintf(w, "%s %s\n", Error.Sprint("❌"), Error.Sprint(msg))
}

func PrintWarning(w io.Writer, msg string) {
	_, _ = fmt.Fprintf(w, "%s %s\n", WarningEmoji, Warning.Sprint(msg))
}

func PrintInfo(w io.Writer, msg string) {
	_, _ = fmt.Fprintf(w, "%s %s\n", InfoEmoji, Info.Sprint(msg))
}

func PrintSectionBanner(w io.Writer, title string) {
	separator := color.New(color.FgCyan).Sprint("━━━━━━━━━━━━━━━━━━━━━━━")
	_, _ = fmt.Fprintf(w, "%s\n%s\n%s\n", separator, Accent.Sprint(title), separator)
}

func PrintKeyValue(w io.Writer, key, value string) {
	keyColored := Dim.Sprint(key + ":")
	valueColored := color.New(color.FgWhite, color.Bold).Sprint(value)
	_, _ = fmt.Fprintf(w, "   %s %s\n", keyColored, valueColored)
}

// PrintUpdateNotification tells the user a newer release exists and how to
// install it.
func PrintUpdateNotification(w io.Writer, t *i18n.Translations, current, latest, installCmd string) {
	_, _ = fmt.Fprintf(w, "\n%s %s\n", Warning.Sprint("⬆"), t.GetMessage("update.available", 0, map[string]interface{}{
		"Current": current,
		"Latest":  Success.Sprint(latest),
	}))
	_, _ = fmt.Fprintf(w, "   %s\n\n", t.GetMessage("update.command", 0, map[string]interface{}{
		"Command": Success.Sprint(installCmd),
	}))
}

// HandleAppError prints err in a friendly way. Translations are optional;
// without them English defaults are used.
func HandleAppError(w io.Writer, err error, t *i18n.Translations) {
	if err == nil {
		return
	}

	tryPrefix := "💡 Try: "
	if t != nil {
		tryPrefix = t.GetMessage("ui_error.try_suggestion", 0, nil)
	}

	var providerErr *domainErrors.ProviderError
	if errors.As(err, &providerErr) {
		_, _ = Error.Fprintf(w, "\n❌ %s\n", providerErr.Error())
		if providerErr.IsAuth() && t != nil {
			_, _ = Info.Fprintf(w, "\n%s", tryPrefix)
			_, _ = fmt.Fprintln(w, t.GetMessage("ui_error.auth_hint", 0, map[string]interface{}{
				"Provider": providerErr.ProviderID,
			}))
		}
		_, _ = fmt.Fprintln(w)
		return
	}

	var appErr *domainErrors.AppError
	if errors.As(err, &appErr) {
		_, _ = fmt.Fprintln(w)
		_, _ = Error.Fprintf(w, "❌ %s: %s\n", appErr.Type, appErr.Message)

		if appErr.Err != nil {
			_, _ = Dim.Fprintf(w, "   Details: %v\n", appErr.Err)
		}

		if appErr.Suggestion != "" {
			_, _ = fmt.Fprintln(w)
			_, _ = Info.Fprintf(w, "%s", tryPrefix)
			for i, line := range strings.Split(appErr.Suggestion, "\n") {
				if i == 0 {
					_, _ = fmt.Fprintln(w, line)
				} else {
					_, _ = fmt.Fprintf(w, "       %s\n", line)
				}
			}
		}
		_, _ = fmt.Fprintln(w)
		return
	}

	PrintError(w, err.Error())
}

// EditCommitMessage opens $EDITOR on the message and returns the edited text.
func EditCommitMessage(initialMessage string, editorErrorMsg string) (string, error) {
	tmpFile, err := os.CreateTemp("", "commit-msg-*.txt")
	if err != nil {
		return "", fmt.Errorf("%s: %w", editorErrorMsg, err)
	}
	defer func() {
		_ = os.Remove(tmpFile.Name())
	}()

	if _, err := tmpFile.WriteString(initialMessage); err != nil {
		_ = tmpFile.Close()
		return "", fmt.Errorf("%s: %w", editorErrorMsg, err)
	}
	_ = tmpFile.Close()

	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "nano"
		if _, err := exec.LookPath("nano"); err != nil {
			editor = "vi"
		}
	}

	cmd := exec.Command(editor, tmpFile.Name())
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("%s: %w", editorErrorMsg, err)
	}

	content, err := os.ReadFile(tmpFile.Name())
	if err != nil {
		return "", fmt.Errorf("%s: %w", editorErrorMsg, err)
	}

	edited := strings.TrimSpace(string(content))
	if edited == "" {
		return "", fmt.Errorf("%s", editorErrorMsg)
	}
	return edited, nil
}
