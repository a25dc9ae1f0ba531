package config

import (
	"os"
	"path/filepath"
	"testing"

	domainErrors "github.com/Tomas-vilte/predicte-commit/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("creates defaults when the file is missing", func(t *testing.T) {
		tmpDir := t.TempDir()

		cfg, err := LoadConfig(tmpDir)

		require.NoError(t, err)
		assert.Equal(t, DefaultProvider, cfg.Provider)
		assert.Equal(t, []string{"*-lock.json", "*.svg", "dist/**"}, cfg.IgnoredFiles)
		assert.Equal(t, "ollama", cfg.LocalProvider)
		assert.Equal(t, "mistral", cfg.LocalModel)
		assert.Empty(t, cfg.LocalBaseURL)
		assert.False(t, cfg.UseLocal)
		assert.Equal(t, "en", cfg.Language)
		assert.Equal(t, filepath.Join(tmpDir, ".predicte-commit", "config.json"), cfg.PathFile)
		assert.FileExists(t, cfg.PathFile)
	})

	t.Run("reads an explicit json path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "custom.json")
		require.NoError(t, os.WriteFile(path, []byte(`{
			"provider": "openai",
			"models": ["gpt-4o"],
			"use_local": true,
			"local_provider": "vllm",
			"local_base_url": "http://localhost:8000/v1",
			"language": "es"
		}`), 0644))

		cfg, err := LoadConfig(path)

		require.NoError(t, err)
		assert.Equal(t, "openai", cfg.Provider)
		assert.Equal(t, []string{"gpt-4o"}, cfg.Models)
		assert.True(t, cfg.UseLocal)
		assert.Equal(t, "vllm", cfg.LocalProvider)
		assert.Equal(t, "http://localhost:8000/v1", cfg.LocalBaseURL)
		assert.Equal(t, "es", cfg.Language)
		assert.Equal(t, DefaultIgnoredFiles, cfg.IgnoredFiles, "absent fields keep defaults")
		assert.Equal(t, "mistral", cfg.LocalModel)
		assert.Equal(t, path, cfg.PathFile)
	})

	t.Run("explicit empty ignore list is kept", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"ignored_files": []}`), 0644))

		cfg, err := LoadConfig(path)

		require.NoError(t, err)
		assert.Empty(t, cfg.IgnoredFiles)
	})

	invalid := []struct {
		name    string
		content string
		wantErr string
	}{
		{name: "invalid json", content: `{not json`, wantErr: "error decoding config file"},
		{name: "invalid language", content: `{"language": "fr"}`, wantErr: "loaded config is invalid"},
		{name: "bad glob", content: `{"ignored_files": ["[a"]}`, wantErr: "loaded config is invalid"},
	}
	for _, tt := range invalid {
		t.Run(tt.name+" falls back to defaults", func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			cfg, err := LoadConfig(path)

			require.Error(t, err)
			assert.ErrorIs(t, err, domainErrors.ErrInvalidConfig)
			assert.ErrorContains(t, err, tt.wantErr)
			require.NotNil(t, cfg)
			assert.Equal(t, LangEN, cfg.Language)
			assert.Equal(t, DefaultProvider, cfg.Provider)
			assert.Equal(t, path, cfg.PathFile)

			data, readErr := os.ReadFile(path)
			require.NoError(t, readErr)
			assert.Equal(t, tt.content, string(data))
		})
	}
}

func TestSaveConfig(t *testing.T) {
	t.Run("round trips through disk", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "config.json")
		cfg := Default(path)
		cfg.Provider = "gemini"
		cfg.DebugLogging = true

		require.NoError(t, SaveConfig(cfg))
		loaded, err := LoadConfig(path)

		require.NoError(t, err)
		assert.Equal(t, cfg, loaded)
	})

	t.Run("missing path", func(t *testing.T) {
		cfg := Default("")

		assert.EqualError(t, SaveConfig(cfg), "config file path is not set")
	})

	t.Run("write error", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "config.json")
		require.NoError(t, os.Mkdir(path, 0755))

		assert.Error(t, SaveConfig(Default(path)))
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults are valid", mutate: func(*Config) {}},
		{name: "blank provider", mutate: func(c *Config) { c.Provider = "   " }, wantErr: "provider cannot be blank"},
		{name: "empty provider", mutate: func(c *Config) { c.Provider = "" }, wantErr: "Provider"},
		{name: "bad language", mutate: func(c *Config) { c.Language = "de" }, wantErr: "Language"},
		{name: "bad base url", mutate: func(c *Config) { c.LocalBaseURL = "not a url" }, wantErr: "LocalBaseURL"},
		{name: "empty model name", mutate: func(c *Config) { c.Models = []string{"m1", ""} }, wantErr: "Models[1]"},
		{name: "bad glob", mutate: func(c *Config) { c.IgnoredFiles = []string{"[a"} }, wantErr: "invalid ignore pattern"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default("/tmp/config.json")
			tt.mutate(cfg)

			err := Validate(cfg)

			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
