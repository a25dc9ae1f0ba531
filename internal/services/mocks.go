package services

import (
	"context"

	"github.com/Tomas-vilte/predicte-commit/internal/config"
	"github.com/Tomas-vilte/predicte-commit/internal/domain/models"
	"github.com/Tomas-vilte/predicte-commit/internal/domain/ports"
	"github.com/Tomas-vilte/predicte-commit/internal/infrastructure/ai/registry"
	"github.com/stretchr/testify/mock"
)

type (
	MockGitService struct {
		mock.Mock
	}

	MockProviderSelector struct {
		mock.Mock
	}

	MockProvider struct {
		mock.Mock
	}

	MockSecretStore struct {
		mock.Mock
	}
)

func (m *MockGitService) GetRepoRoot(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockGitService) GetStagedFiles(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	files, _ := args.Get(0).([]string)
	return files, args.Error(1)
}

func (m *MockGitService) GetStagedDiff(ctx context.Context, path string) (string, error) {
	args := m.Called(ctx, path)
	return args.String(0), args.Error(1)
}

func (m *MockGitService) CreateCommit(ctx context.Context, message string) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func (m *MockProviderSelector) Select(ctx context.Context, rt registry.RuntimeContext, cfg *config.Config) (ports.Provider, error) {
	args := m.Called(ctx, rt, cfg)
	provider, _ := args.Get(0).(ports.Provider)
	return provider, args.Error(1)
}

func (m *MockProvider) ID() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockProvider) Generate(ctx context.Context, req models.GenerateRequest) (*models.GenerateResult, error) {
	args := m.Called(ctx, req)
	result, _ := args.Get(0).(*models.GenerateResult)
	return result, args.Error(1)
}

func (m *MockSecretStore) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockSecretStore) Set(ctx context.Context, key, value string) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}
