package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWantsUpdateNotice(t *testing.T) {
	tests := []struct {
		args []string
		want bool
	}{
		{[]string{"generate"}, true},
		{[]string{"--debug", "config", "show"}, true},
		{[]string{"update"}, false},
		{[]string{"completion", "zsh"}, false},
		{[]string{"--version"}, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, wantsUpdateNotice(tt.args), tt.args)
	}
}

func TestLoadConfig_InvalidFileFallsBackToDefaults(t *testing.T) {
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = false })

	home := t.TempDir()
	dir := filepath.Join(home, ".predicte-commit")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte(`{"language":"fr"}`), 0644))

	var stderr bytes.Buffer
	loaded, err := loadConfig(home, &stderr)

	require.NoError(t, err)
	assert.Equal(t, "en", loaded.Language)
	assert.Equal(t, filepath.Join(dir, "config.json"), loaded.PathFile)
	assert.Contains(t, stderr.String(), "Configuration is invalid")
	assert.Contains(t, stderr.String(), "predicte-commit config init")
}

func TestLoadConfig_UnreadableHomeFails(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(home, ".predicte-commit"), []byte("file, not dir"), 0644))

	_, err := loadConfig(home, &bytes.Buffer{})

	assert.Error(t, err)
}
