package gemini

import (
	"context"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// ContentGenerator produces text for one model.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, model, systemPrompt, userPrompt string) (string, error)
	Close() error
}

// ClientFactory opens a ContentGenerator authenticated with apiKey.
type ClientFactory func(ctx context.Context, apiKey string) (ContentGenerator, error)

type sdkClient struct {
	client *genai.Client
}

// NewSDKClient is the ClientFactory backed by the Gemini SDK.
func NewSDKClient(ctx context.Context, apiKey string) (ContentGenerator, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	return &sdkClient{client: client}, nil
}

func (c *sdkClient) GenerateContent(ctx context.Context, model, systemPrompt, userPrompt string) (string, error) {
	m := c.client.GenerativeModel(model)
	m.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(systemPrompt)}}

	resp, err := m.GenerateContent(ctx, genai.Text(userPrompt))
	if err != nil {
		return "", err
	}
	return formatResponse(resp), nil
}

func (c *sdkClient) Close() error {
	return c.client.Close()
}

func formatResponse(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				sb.WriteString(string(text))
			}
		}
		break
	}
	return strings.TrimSpace(sb.String())
}
