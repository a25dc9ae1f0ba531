package ai

import (
	"context"

	"github.com/Tomas-vilte/predicte-commit/internal/domain/models"
)

// ChatPoster sends one chat-completion request.
type ChatPoster interface {
	PostChatCompletion(ctx context.Context, url, apiKey string, body models.ChatCompletionRequest) (string, error)
}

// RemoteProvider calls a hosted chat-completion endpoint, falling back
// across its model priority list.
type RemoteProvider struct {
	id     string
	cfg    RemoteConfig
	client ChatPoster
}

func NewRemoteProvider(id string, cfg RemoteConfig, client ChatPoster) *RemoteProvider {
	return &RemoteProvider{id: id, cfg: cfg, client: client}
}

func (p *RemoteProvider) ID() string {
	return p.id
}

// Models returns the model priority list.
func (p *RemoteProvider) Models() []string {
	return append([]string(nil), p.cfg.ModelPriority...)
}

func (p *RemoteProvider) Generate(ctx context.Context, req models.GenerateRequest) (*models.GenerateResult, error) {
	text, model, err := GenerateWithFallback(ctx, p.id, p.cfg.ModelPriority, func(ctx context.Context, model string) (string, error) {
		return p.client.PostChatCompletion(ctx, p.cfg.URL, p.cfg.APIKey, models.NewChatCompletionRequest(model, req))
	})
	if err != nil {
		return nil, err
	}

	return &models.GenerateResult{
		Text:       text,
		ProviderID: p.id,
		Model:      model,
	}, nil
}
