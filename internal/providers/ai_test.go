package providers

import (
	"context"
	"errors"
	"testing"

	"github.com/Tomas-vilte/predicte-commit/internal/config"
	"github.com/Tomas-vilte/predicte-commit/internal/domain/models"
	domainErrors "github.com/Tomas-vilte/predicte-commit/internal/errors"
	"github.com/Tomas-vilte/predicte-commit/internal/infrastructure/ai/gemini"
	"github.com/Tomas-vilte/predicte-commit/internal/infrastructure/ai/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	url, apiKey, model string
}

type recordingPoster struct {
	calls []call
}

func (r *recordingPoster) PostChatCompletion(_ context.Context, url, apiKey string, body models.ChatCompletionRequest) (string, error) {
	r.calls = append(r.calls, call{url: url, apiKey: apiKey, model: body.Model})
	return "feat: recorded", nil
}

type mapSecrets map[string]string

func (m mapSecrets) Get(_ context.Context, key string) (string, error) { return m[key], nil }
func (m mapSecrets) Set(_ context.Context, key, value string) error {
	m[key] = value
	return nil
}

type failingSecrets struct{}

func (failingSecrets) Get(context.Context, string) (string, error) { return "", errors.New("keyring locked") }
func (failingSecrets) Set(context.Context, string, string) error    { return nil }

func generate(t *testing.T, id string, cfg *config.Config, rt registry.RuntimeContext) *models.GenerateResult {
	t.Helper()
	cfg.Provider = id
	p, err := NewRegistry().Select(context.Background(), rt, cfg)
	require.NoError(t, err)
	result, err := p.Generate(context.Background(), models.GenerateRequest{SystemPrompt: "s", UserPrompt: "u"})
	require.NoError(t, err)
	return result
}

func TestBuiltin(t *testing.T) {
	r := NewRegistry()

	assert.Equal(t, []string{"mistral", "openai", "gemini", "ollama", "lmstudio", "vllm", "local"}, r.List())

	def, err := r.Get("mistral")
	require.NoError(t, err)
	assert.Equal(t, "mistral_api_key", def.ConfigKey)

	def, err = r.Get("ollama")
	require.NoError(t, err)
	assert.Empty(t, def.ConfigKey)
}

func TestRemoteProviders(t *testing.T) {
	t.Run("mistral uses its endpoint, key and default models", func(t *testing.T) {
		poster := &recordingPoster{}
		rt := registry.RuntimeContext{HTTP: poster, Secrets: mapSecrets{"mistral_api_key": "m-key"}}

		result := generate(t, "mistral", config.Default(""), rt)

		assert.Equal(t, "mistral", result.ProviderID)
		assert.Equal(t, "devstral-latest", result.Model)
		assert.Equal(t, []call{{url: MistralURL, apiKey: "m-key", model: "devstral-latest"}}, poster.calls)
	})

	t.Run("configured models override defaults", func(t *testing.T) {
		poster := &recordingPoster{}
		rt := registry.RuntimeContext{HTTP: poster, Secrets: mapSecrets{"openai_api_key": "o-key"}}
		cfg := config.Default("")
		cfg.Models = []string{"gpt-4.1"}

		result := generate(t, "openai", cfg, rt)

		assert.Equal(t, "gpt-4.1", result.Model)
		assert.Equal(t, OpenAIURL, poster.calls[0].url)
	})

	t.Run("missing key is a configuration error", func(t *testing.T) {
		cfg := config.Default("")
		cfg.Provider = "mistral"

		_, err := NewRegistry().Select(context.Background(), registry.RuntimeContext{Secrets: mapSecrets{}}, cfg)

		require.Error(t, err)
		assert.True(t, errors.Is(err, domainErrors.ErrAPIKeyMissing))
		var appErr *domainErrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Contains(t, appErr.Suggestion, "--provider mistral")
	})

	t.Run("secret store failure", func(t *testing.T) {
		cfg := config.Default("")
		cfg.Provider = "openai"

		_, err := NewRegistry().Select(context.Background(), registry.RuntimeContext{Secrets: failingSecrets{}}, cfg)

		assert.ErrorContains(t, err, "keyring locked")
	})

	t.Run("gemini goes through the sdk client factory", func(t *testing.T) {
		var gotKey string
		factory := func(_ context.Context, apiKey string) (gemini.ContentGenerator, error) {
			gotKey = apiKey
			return &fakeGemini{}, nil
		}
		rt := registry.RuntimeContext{Secrets: mapSecrets{"gemini_api_key": "g-key"}, Gemini: factory}

		result := generate(t, "gemini", config.Default(""), rt)

		assert.Equal(t, "g-key", gotKey)
		assert.Equal(t, "gemini-2.5-flash", result.Model)
		assert.Equal(t, "feat: gemini", result.Text)
	})
}

type fakeGemini struct{}

func (fakeGemini) GenerateContent(context.Context, string, string, string) (string, error) {
	return "feat: gemini", nil
}

func (fakeGemini) Close() error { return nil }

func TestLocalProviders(t *testing.T) {
	tests := []struct {
		id      string
		baseURL string
		wantURL string
	}{
		{id: "ollama", wantURL: "http://localhost:11434/v1/chat/completions"},
		{id: "lmstudio", wantURL: "http://localhost:1234/v1/chat/completions"},
		{id: "vllm", wantURL: "http://localhost:8000/v1/chat/completions"},
		{id: "local", wantURL: "http://localhost:11434/v1/chat/completions"},
		{id: "ollama", baseURL: "http://gpu-box:11434/v1/", wantURL: "http://gpu-box:11434/v1/chat/completions"},
	}

	for _, tt := range tests {
		t.Run(tt.id+" "+tt.baseURL, func(t *testing.T) {
			poster := &recordingPoster{}
			cfg := config.Default("")
			cfg.UseLocal = true
			cfg.LocalProvider = tt.id
			cfg.LocalBaseURL = tt.baseURL

			result := generate(t, "mistral", cfg, registry.RuntimeContext{HTTP: poster})

			assert.Equal(t, tt.id, result.ProviderID)
			assert.Equal(t, "mistral", result.Model)
			assert.Equal(t, []call{{url: tt.wantURL, apiKey: "", model: "mistral"}}, poster.calls)
		})
	}
}
