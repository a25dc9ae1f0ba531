package di

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Tomas-vilte/predicte-commit/internal/config"
	"github.com/Tomas-vilte/predicte-commit/internal/domain/models"
	"github.com/Tomas-vilte/predicte-commit/internal/domain/ports"
	"github.com/Tomas-vilte/predicte-commit/internal/i18n"
	"github.com/Tomas-vilte/predicte-commit/internal/infrastructure/ai/registry"
	"github.com/Tomas-vilte/predicte-commit/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPoster struct {
	apiKey string
}

func (r *recordingPoster) PostChatCompletion(_ context.Context, _, apiKey string, _ models.ChatCompletionRequest) (string, error) {
	r.apiKey = apiKey
	return "feat: wired", nil
}

func newTestContainer(t *testing.T) *Container {
	t.Helper()
	trans, err := i18n.NewTranslations("en", "")
	require.NoError(t, err)
	dir := t.TempDir()
	return NewContainer(config.Default(filepath.Join(dir, "config.json")), trans, dir)
}

func TestNewContainer(t *testing.T) {
	c := newTestContainer(t)

	assert.NotNil(t, c.GetConfig())
	assert.NotNil(t, c.GetTranslations())
	assert.NotNil(t, c.GetSecretStore())
	assert.Contains(t, c.GetAIRegistry().List(), "mistral")
	assert.Nil(t, c.GetGitService())
}

func TestRegisterAIProvider(t *testing.T) {
	c := newTestContainer(t)
	def := registry.Definition{
		ID: "custom",
		Create: func(context.Context, registry.RuntimeContext, *config.Config) (ports.Provider, error) {
			return nil, nil
		},
	}

	require.NoError(t, c.RegisterAIProvider(def))
	assert.Error(t, c.RegisterAIProvider(def))
	assert.True(t, c.GetAIRegistry().IsRegistered("custom"))
}

func TestGetCommitService(t *testing.T) {
	t.Run("requires git", func(t *testing.T) {
		c := newTestContainer(t)

		_, err := c.GetCommitService()

		assert.Error(t, err)
	})

	t.Run("lazily builds once", func(t *testing.T) {
		c := newTestContainer(t)
		c.SetGitService(new(services.MockGitService))

		first, err := c.GetCommitService()
		require.NoError(t, err)
		second, err := c.GetCommitService()
		require.NoError(t, err)

		assert.Same(t, first, second)
	})

	t.Run("uses the runtime and secret store", func(t *testing.T) {
		c := newTestContainer(t)
		t.Setenv("OPENAI_API_KEY", "sk-from-env")
		poster := &recordingPoster{}
		c.SetRuntime(registry.RuntimeContext{HTTP: poster})
		c.SetGitService(new(services.MockGitService))

		svc, err := c.GetCommitService()
		require.NoError(t, err)

		cfg := config.Default("")
		cfg.Provider = "openai"
		msg, err := svc.GenerateCommitMessage(context.Background(),
			[]models.DiffEntry{{Header: "# File: a.go", Diff: "+a"}}, cfg, c.GetSecretStore())

		require.NoError(t, err)
		assert.Equal(t, "feat: wired", msg)
		assert.Equal(t, "sk-from-env", poster.apiKey)
	})
}

func TestGetVersionChecker(t *testing.T) {
	c := newTestContainer(t)

	checker := c.GetVersionChecker("1.0.0")

	assert.Equal(t, "1.0.0", checker.CurrentVersion())
	assert.Same(t, checker, c.GetVersionChecker("1.0.0"))
	assert.NotSame(t, checker, c.GetVersionChecker("2.0.0"))
}
