package ai

import (
	"context"

	"github.com/Tomas-vilte/predicte-commit/internal/domain/models"
	"github.com/stretchr/testify/mock"
)

type MockChatPoster struct {
	mock.Mock
}

func (m *MockChatPoster) PostChatCompletion(ctx context.Context, url, apiKey string, body models.ChatCompletionRequest) (string, error) {
	args := m.Called(ctx, url, apiKey, body)
	return args.String(0), args.Error(1)
}

func modelIs(name string) interface{} {
	return mock.MatchedBy(func(body models.ChatCompletionRequest) bool {
		return body.Model == name
	})
}
