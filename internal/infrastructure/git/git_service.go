package git

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/Tomas-vilte/predicte-commit/internal/errors"
)

type GitService struct {
	dir string
}

// NewGitService runs git in dir, or in the working directory when dir is empty.
func NewGitService(dir string) *GitService {
	return &GitService{dir: dir}
}

func (s *GitService) command(ctx context.Context, args ...string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = s.dir
	return cmd
}

// run executes git and returns stdout, attaching stderr to failures.
func (s *GitService) run(ctx context.Context, base *errors.AppError, args ...string) ([]byte, error) {
	cmd := s.command(ctx, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		return nil, base.WithError(err).WithContext("stderr", strings.TrimSpace(stderr.String()))
	}
	return out, nil
}

// HasStagedChanges checks if there are changes in the staging area
func (s *GitService) HasStagedChanges(ctx context.Context) bool {
	cmd := s.command(ctx, "diff", "--cached", "--quiet")
	err := cmd.Run()

	// Exit status 1 means the index differs from HEAD.
	return err != nil && cmd.ProcessState != nil && cmd.ProcessState.ExitCode() == 1
}

func (s *GitService) GetRepoRoot(ctx context.Context) (string, error) {
	out, err := s.run(ctx, errors.ErrGetRepoRoot, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// GetStagedFiles lists staged paths relative to the repository root, in the
// order git reports them.
func (s *GitService) GetStagedFiles(ctx context.Context) ([]string, error) {
	out, err := s.run(ctx, errors.ErrGetStagedFiles, "diff", "--cached", "--name-only", "-z")
	if err != nil {
		return nil, err
	}

	files := make([]string, 0)
	for _, name := range strings.Split(string(out), "\x00") {
		if name != "" {
			files = append(files, name)
		}
	}
	return files, nil
}

// GetStagedDiff returns the staged diff of one path relative to the
// repository root, whatever the working directory.
func (s *GitService) GetStagedDiff(ctx context.Context, path string) (string, error) {
	out, err := s.run(ctx, errors.ErrGetDiff, "diff", "--cached", "--no-color", "--", ":(top,literal)"+path)
	if err != nil {
		if appErr, ok := err.(*errors.AppError); ok {
			return "", appErr.WithContext("file", path)
		}
		return "", err
	}
	return string(out), nil
}

func (s *GitService) CreateCommit(ctx context.Context, message string) error {
	if !s.HasStagedChanges(ctx) {
		return errors.ErrNoStagedChanges
	}

	if _, err := s.run(ctx, errors.ErrCreateCommit, "commit", "-m", message); err != nil {
		return err
	}
	return nil
}
