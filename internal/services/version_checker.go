package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Tomas-vilte/predicte-commit/internal/logger"
	"github.com/google/go-github/v68/github"
	"golang.org/x/mod/semver"
)

const (
	releaseOwner = "Tomas-vilte"
	releaseRepo  = "predicte-commit"

	// DisableUpdateCheckEnv turns the passive update check off when set.
	DisableUpdateCheckEnv = "PREDICTE_COMMIT_DISABLE_UPDATE_CHECK"

	updateCacheFile     = "last_update_check.json"
	updateCheckInterval = 24 * time.Hour
	updateCheckTimeout  = 2 * time.Second
)

// ReleaseFetcher returns the tag of the newest published release.
type ReleaseFetcher interface {
	LatestTag(ctx context.Context) (string, error)
}

type GitHubReleases struct {
	client *github.Client
	owner  string
	repo   string
}

func NewGitHubReleases(client *github.Client) *GitHubReleases {
	if client == nil {
		client = github.NewClient(nil)
	}
	return &GitHubReleases{client: client, owner: releaseOwner, repo: releaseRepo}
}

func (g *GitHubReleases) LatestTag(ctx context.Context) (string, error) {
	release, _, err := g.client.Repositories.GetLatestRelease(ctx, g.owner, g.repo)
	if err != nil {
		return "", fmt.Errorf("error fetching latest release: %w", err)
	}
	return release.GetTagName(), nil
}

type UpdateCache struct {
	LastCheck   time.Time `json:"last_check"`
	LatestKnown string    `json:"latest_known"`
}

type VersionChecker struct {
	currentVersion string
	releases       ReleaseFetcher
	cacheDir       string
	now            func() time.Time
}

// NewVersionChecker remembers the last answer in cacheDir so the network is
// queried at most once a day. An empty cacheDir disables the cache.
func NewVersionChecker(currentVersion string, releases ReleaseFetcher, cacheDir string) *VersionChecker {
	return &VersionChecker{
		currentVersion: currentVersion,
		releases:       releases,
		cacheDir:       cacheDir,
		now:            time.Now,
	}
}

func (v *VersionChecker) CurrentVersion() string {
	return v.currentVersion
}

// CheckForUpdates returns the latest release tag when it is newer than the
// running version and an empty string otherwise. Unless force is set, a
// fresh cached answer is reused and the check is skipped entirely when
// DisableUpdateCheckEnv is set.
func (v *VersionChecker) CheckForUpdates(ctx context.Context, force bool) (string, error) {
	if !force {
		if os.Getenv(DisableUpdateCheckEnv) != "" {
			return "", nil
		}
		if cache, err := v.loadCache(); err == nil && v.now().Sub(cache.LastCheck) < updateCheckInterval {
			return v.newer(cache.LatestKnown), nil
		}
	}

	ctx, cancel := context.WithTimeout(ctx, updateCheckTimeout)
	defer cancel()

	latest, err := v.releases.LatestTag(ctx)
	if err != nil {
		return "", err
	}

	if err := v.saveCache(UpdateCache{LastCheck: v.now(), LatestKnown: latest}); err != nil {
		logger.Debug(ctx, "could not save update cache", "error", err)
	}

	return v.newer(latest), nil
}

func (v *VersionChecker) newer(latest string) string {
	if latest != "" && IsUpdateAvailable(v.currentVersion, latest) {
		return latest
	}
	return ""
}

// IsUpdateAvailable compares two release versions, tolerating a missing "v"
// prefix. Development builds never report an update.
func IsUpdateAvailable(current, latest string) bool {
	if current == "" || current == "dev" {
		return false
	}
	if !strings.HasPrefix(current, "v") {
		current = "v" + current
	}
	if !strings.HasPrefix(latest, "v") {
		latest = "v" + latest
	}

	if !semver.IsValid(current) || !semver.IsValid(latest) {
		return current != latest
	}

	return semver.Compare(latest, current) > 0
}

func (v *VersionChecker) cachePath() string {
	return filepath.Join(v.cacheDir, updateCacheFile)
}

func (v *VersionChecker) loadCache() (UpdateCache, error) {
	if v.cacheDir == "" {
		return UpdateCache{}, os.ErrNotExist
	}

	data, err := os.ReadFile(v.cachePath())
	if err != nil {
		return UpdateCache{}, err
	}

	var cache UpdateCache
	if err := json.Unmarshal(data, &cache); err != nil {
		return UpdateCache{}, err
	}
	return cache, nil
}

func (v *VersionChecker) saveCache(cache UpdateCache) error {
	if v.cacheDir == "" {
		return nil
	}
	if err := os.MkdirAll(v.cacheDir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cache, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(v.cachePath(), data, 0644)
}
