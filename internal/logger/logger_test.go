package logger

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestNew_Levels(t *testing.T) {
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = false })

	tests := []struct {
		name      string
		debug     bool
		verbose   bool
		wantDebug bool
		wantInfo  bool
	}{
		{name: "default shows warnings only"},
		{name: "verbose adds info", verbose: true, wantInfo: true},
		{name: "debug shows everything", debug: true, wantDebug: true, wantInfo: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := New(&buf, tt.debug, tt.verbose)

			l.Debug("debug line")
			l.Info("info line")
			l.Warn("warn line")

			out := buf.String()
			assert.Equal(t, tt.wantDebug, strings.Contains(out, "debug line"))
			assert.Equal(t, tt.wantInfo, strings.Contains(out, "info line"))
			assert.Contains(t, out, "[WARN]  warn line")
		})
	}
}

func TestPrettyHandler_Attributes(t *testing.T) {
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = false })

	var buf bytes.Buffer
	l := slog.New(NewPrettyHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	l.With("provider", "mistral").WithGroup("req").Info("sent", "model", "m1", slog.Group("usage", "files", 2))

	assert.Equal(t, "[INFO]  sent provider=mistral req.model=m1 req.usage.files=2\n", buf.String())
}

func TestContextHelpers(t *testing.T) {
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = false })

	var buf bytes.Buffer
	ctx := WithLogger(context.Background(), New(&buf, false, false))
	ctx = With(ctx, "provider", "ollama")

	Info(ctx, "hidden")
	Error(ctx, "generation failed", errors.New("boom"), "model", "llama3")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "[ERROR] generation failed provider=ollama model=llama3 error=boom")
}

func TestFromContext_DefaultsToSlogDefault(t *testing.T) {
	assert.Equal(t, slog.Default(), FromContext(context.Background()))
}
