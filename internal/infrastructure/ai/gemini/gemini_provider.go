package gemini

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Tomas-vilte/predicte-commit/internal/domain/models"
	domainErrors "github.com/Tomas-vilte/predicte-commit/internal/errors"
	"github.com/Tomas-vilte/predicte-commit/internal/infrastructure/ai"
	"github.com/Tomas-vilte/predicte-commit/internal/infrastructure/httpclient"
	"google.golang.org/api/googleapi"
)

const endpoint = "generativelanguage.googleapis.com"

var DefaultModels = []string{"gemini-2.5-flash", "gemini-2.5-flash-lite"}

// Provider generates through the Gemini SDK with the shared model fallback.
type Provider struct {
	id      string
	cfg     ai.RemoteConfig
	factory ClientFactory
	timeout time.Duration
}

func NewProvider(id string, cfg ai.RemoteConfig, factory ClientFactory) *Provider {
	if factory == nil {
		factory = NewSDKClient
	}
	return &Provider{id: id, cfg: cfg, factory: factory, timeout: httpclient.DefaultTimeout}
}

func (p *Provider) ID() string {
	return p.id
}

func (p *Provider) Generate(ctx context.Context, req models.GenerateRequest) (*models.GenerateResult, error) {
	client, err := p.factory(ctx, p.cfg.APIKey)
	if err != nil {
		return nil, (&domainErrors.ProviderError{
			Kind:    domainErrors.KindNetworkError,
			Message: fmt.Sprintf("Network error: %v", err),
			URL:     endpoint,
			Err:     err,
		}).WithProvider(p.id, "")
	}
	defer client.Close()

	text, model, err := ai.GenerateWithFallback(ctx, p.id, p.cfg.ModelPriority, func(ctx context.Context, model string) (string, error) {
		ctx, cancel := context.WithTimeout(ctx, p.timeout)
		defer cancel()

		out, err := client.GenerateContent(ctx, model, req.SystemPrompt, req.UserPrompt)
		if err != nil {
			return "", p.mapError(err, model)
		}
		if out == "" {
			return "", &domainErrors.ProviderError{
				Kind:    domainErrors.KindAPIError,
				Message: "API Error: Empty response content",
				URL:     endpoint,
				Model:   model,
			}
		}
		return out, nil
	})
	if err != nil {
		return nil, err
	}

	return &models.GenerateResult{Text: text, ProviderID: p.id, Model: model}, nil
}

// mapError turns SDK failures into provider errors so that the HTTP status
// reaches the fallback policy.
func (p *Provider) mapError(err error, model string) *domainErrors.ProviderError {
	pe := &domainErrors.ProviderError{URL: endpoint, Model: model, Err: err}

	var gerr *googleapi.Error
	switch {
	case errors.As(err, &gerr):
		pe.Kind = domainErrors.KindAPIError
		pe.Status = gerr.Code
		pe.Message = httpclient.StatusMessage(gerr.Code, gerr.Message)
	case errors.Is(err, context.DeadlineExceeded):
		pe.Kind = domainErrors.KindTimeout
		pe.Message = fmt.Sprintf("Request timed out after %s connecting to %s", p.timeout, endpoint)
	default:
		pe.Kind = domainErrors.KindNetworkError
		pe.Message = fmt.Sprintf("Network error: %v", err)
	}
	return pe
}
