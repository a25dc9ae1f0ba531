package ai

import (
	"context"
	"strings"

	"github.com/Tomas-vilte/predicte-commit/internal/domain/models"
	domainErrors "github.com/Tomas-vilte/predicte-commit/internal/errors"
)

const chatCompletionsPath = "/chat/completions"

// LocalProvider makes a single unauthenticated attempt against a
// self-hosted OpenAI-compatible server.
type LocalProvider struct {
	id     string
	cfg    LocalConfig
	client ChatPoster
}

func NewLocalProvider(id string, cfg LocalConfig, client ChatPoster) *LocalProvider {
	return &LocalProvider{id: id, cfg: cfg, client: client}
}

func (p *LocalProvider) ID() string {
	return p.id
}

// URL returns the chat-completion endpoint derived from the base URL.
func (p *LocalProvider) URL() string {
	return ChatCompletionsURL(p.cfg.BaseURL)
}

func (p *LocalProvider) Generate(ctx context.Context, req models.GenerateRequest) (*models.GenerateResult, error) {
	text, err := p.client.PostChatCompletion(ctx, p.URL(), "", models.NewChatCompletionRequest(p.cfg.Model, req))
	if err != nil {
		if pe, ok := domainErrors.AsProviderError(err); ok {
			return nil, pe.WithProvider(p.id, p.cfg.Model)
		}
		return nil, err
	}

	return &models.GenerateResult{
		Text:       text,
		ProviderID: p.id,
		Model:      p.cfg.Model,
	}, nil
}

// ChatCompletionsURL appends the chat-completion path to base, dropping any
// trailing slashes.
func ChatCompletionsURL(base string) string {
	return strings.TrimRight(base, "/") + chatCompletionsPath
}
