package ports

import "context"

type GitService interface {
	GetRepoRoot(ctx context.Context) (string, error)
	GetStagedFiles(ctx context.Context) ([]string, error)
	GetStagedDiff(ctx context.Context, path string) (string, error)
	CreateCommit(ctx context.Context, message string) error
}
