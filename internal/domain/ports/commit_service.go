package ports

import (
	"context"

	"github.com/Tomas-vilte/predicte-commit/internal/config"
	"github.com/Tomas-vilte/predicte-commit/internal/domain/models"
)

type CommitService interface {
	CollectStagedEntries(ctx context.Context, patterns []string) (*models.StagedEntries, error)
	GenerateCommitMessage(ctx context.Context, entries []models.DiffEntry, cfg *config.Config, secrets SecretStore) (string, error)
}
