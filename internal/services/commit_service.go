package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/Tomas-vilte/predicte-commit/internal/config"
	"github.com/Tomas-vilte/predicte-commit/internal/diffcap"
	"github.com/Tomas-vilte/predicte-commit/internal/domain/models"
	"github.com/Tomas-vilte/predicte-commit/internal/domain/ports"
	"github.com/Tomas-vilte/predicte-commit/internal/errors"
	"github.com/Tomas-vilte/predicte-commit/internal/ignore"
	"github.com/Tomas-vilte/predicte-commit/internal/infrastructure/ai"
	"github.com/Tomas-vilte/predicte-commit/internal/infrastructure/ai/registry"
	"github.com/Tomas-vilte/predicte-commit/internal/logger"
	"golang.org/x/sync/errgroup"
)

// FileHeaderPrefix labels every staged file inside the prompt.
const FileHeaderPrefix = "# File: "

const defaultReadConcurrency = 8

var _ ports.CommitService = (*CommitService)(nil)

// ProviderSelector builds the provider configured in cfg.
type ProviderSelector interface {
	Select(ctx context.Context, rt registry.RuntimeContext, cfg *config.Config) (ports.Provider, error)
}

type CommitService struct {
	git      ports.GitService
	selector ProviderSelector
	runtime  registry.RuntimeContext
	budgets  diffcap.Budgets
	workers  int
}

type Option func(*CommitService)

func WithBudgets(budgets diffcap.Budgets) Option {
	return func(s *CommitService) {
		s.budgets = budgets
	}
}

// WithReadConcurrency bounds how many staged diffs are read at once.
func WithReadConcurrency(n int) Option {
	return func(s *CommitService) {
		if n > 0 {
			s.workers = n
		}
	}
}

// NewCommitService wires the git port and the provider selector. The
// runtime's Secrets field is replaced per call by GenerateCommitMessage.
func NewCommitService(git ports.GitService, selector ProviderSelector, rt registry.RuntimeContext, opts ...Option) *CommitService {
	s := &CommitService{
		git:      git,
		selector: selector,
		runtime:  rt,
		budgets:  diffcap.DefaultBudgets,
		workers:  defaultReadConcurrency,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CollectStagedEntries reads the staged diff of every path not matched by
// patterns. Entries keep the order git reports the paths in.
func (s *CommitService) CollectStagedEntries(ctx context.Context, patterns []string) (*models.StagedEntries, error) {
	root, err := s.git.GetRepoRoot(ctx)
	if err != nil {
		return nil, err
	}

	files, err := s.git.GetStagedFiles(ctx)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, errors.ErrNoStagedChanges.WithContext("root", root)
	}

	matcher := ignore.NewMatcher(patterns)
	staged := &models.StagedEntries{Root: root}
	kept := make([]string, 0, len(files))
	for _, file := range files {
		if matcher.Match(file) {
			staged.Ignored = append(staged.Ignored, file)
			continue
		}
		kept = append(kept, file)
	}
	if len(kept) == 0 {
		return nil, errors.ErrAllChangesIgnored.WithContext("ignored", len(staged.Ignored))
	}

	diffs := make([]string, len(kept))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, path := range kept {
		i, path := i, path
		g.Go(func() error {
			diff, err := s.git.GetStagedDiff(gctx, path)
			if err != nil {
				return err
			}
			diffs[i] = diff
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i, path := range kept {
		if strings.TrimSpace(diffs[i]) == "" {
			continue
		}
		staged.Entries = append(staged.Entries, models.DiffEntry{
			Header: FileHeaderPrefix + path,
			Diff:   diffs[i],
		})
	}
	if len(staged.Entries) == 0 {
		return nil, errors.ErrNoStagedChanges.WithContext("root", root)
	}

	logger.Debug(ctx, "staged entries collected",
		"root", root,
		"files", len(staged.Entries),
		"ignored", len(staged.Ignored))

	return staged, nil
}

// GenerateCommitMessage caps the diffs, asks the configured provider for a
// message and normalizes the answer.
func (s *CommitService) GenerateCommitMessage(ctx context.Context, entries []models.DiffEntry, cfg *config.Config, secrets ports.SecretStore) (string, error) {
	if len(entries) == 0 {
		return "", errors.ErrNoStagedChanges
	}
	if cfg == nil {
		return "", errors.ErrInvalidConfig.WithContext("reason", "missing configuration")
	}

	bounded := diffcap.CapDiffs(entries, s.budgets)

	rt := s.runtime
	rt.Secrets = secrets
	provider, err := s.selector.Select(ctx, rt, cfg)
	if err != nil {
		return "", err
	}

	ctx = logger.With(ctx, "provider", provider.ID())
	logger.Debug(ctx, "requesting commit message",
		"files", len(entries),
		"prompt_chars", len([]rune(bounded)))

	start := time.Now()
	result, err := provider.Generate(ctx, models.GenerateRequest{
		SystemPrompt: ai.SystemPrompt,
		UserPrompt:   ai.BuildUserPrompt(bounded),
	})
	if err != nil {
		logAttempts(ctx, err)
		return "", err
	}

	message := NormalizeCommitMessage(result.Text)
	if message == "" {
		return "", errors.ErrEmptyMessage.WithContext("model", result.Model)
	}

	logger.Info(ctx, "commit message generated",
		"model", result.Model,
		"duration_ms", time.Since(start).Milliseconds())

	return message, nil
}

func logAttempts(ctx context.Context, err error) {
	pe, ok := errors.AsProviderError(err)
	if !ok {
		return
	}
	for i, attempt := range pe.Attempts {
		logger.Debug(ctx, "model attempt failed",
			slog.Int("attempt", i+1),
			slog.String("model", attempt.Model),
			slog.Any("error", attempt.Err))
	}
}
