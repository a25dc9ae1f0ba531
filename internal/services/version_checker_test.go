package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-github/v68/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsUpdateAvailable(t *testing.T) {
	tests := []struct {
		name     string
		current  string
		latest   string
		expected bool
	}{
		{name: "patch update available", current: "v1.0.0", latest: "v1.0.1", expected: true},
		{name: "minor update available", current: "v1.0.0", latest: "v1.1.0", expected: true},
		{name: "major update available", current: "v1.0.0", latest: "v2.0.0", expected: true},
		{name: "same version", current: "v1.0.0", latest: "v1.0.0", expected: false},
		{name: "current is newer", current: "v1.5.0", latest: "v1.4.9", expected: false},
		{name: "without v prefix in current", current: "1.0.0", latest: "v1.0.1", expected: true},
		{name: "without v prefix in latest", current: "v1.0.0", latest: "1.0.1", expected: true},
		{name: "prerelease to release", current: "v1.0.0-beta.1", latest: "v1.0.0", expected: true},
		{name: "development build", current: "dev", latest: "v9.9.9", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsUpdateAvailable(tt.current, tt.latest))
		})
	}
}

func newReleaseServer(t *testing.T, tag string) (*GitHubReleases, *int32) {
	t.Helper()
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		assert.Equal(t, "/repos/Tomas-vilte/predicte-commit/releases/latest", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"tag_name": tag})
	}))
	t.Cleanup(server.Close)

	client := github.NewClient(nil)
	baseURL, err := url.Parse(server.URL + "/")
	require.NoError(t, err)
	client.BaseURL = baseURL

	return NewGitHubReleases(client), &calls
}

func TestVersionChecker_CheckForUpdates(t *testing.T) {
	ctx := context.Background()

	t.Run("reports a newer release and caches it", func(t *testing.T) {
		t.Setenv(DisableUpdateCheckEnv, "")
		releases, calls := newReleaseServer(t, "v1.2.0")
		dir := t.TempDir()
		checker := NewVersionChecker("v1.1.0", releases, dir)

		latest, err := checker.CheckForUpdates(ctx, false)
		require.NoError(t, err)
		assert.Equal(t, "v1.2.0", latest)

		latest, err = checker.CheckForUpdates(ctx, false)
		require.NoError(t, err)
		assert.Equal(t, "v1.2.0", latest)
		assert.Equal(t, int32(1), atomic.LoadInt32(calls))

		data, err := os.ReadFile(filepath.Join(dir, "last_update_check.json"))
		require.NoError(t, err)
		assert.Contains(t, string(data), `"latest_known": "v1.2.0"`)
	})

	t.Run("stale cache is refreshed", func(t *testing.T) {
		t.Setenv(DisableUpdateCheckEnv, "")
		releases, calls := newReleaseServer(t, "v1.0.0")
		checker := NewVersionChecker("v1.0.0", releases, t.TempDir())
		require.NoError(t, checker.saveCache(UpdateCache{
			LastCheck:   time.Now().Add(-48 * time.Hour),
			LatestKnown: "v0.9.0",
		}))

		latest, err := checker.CheckForUpdates(ctx, false)

		require.NoError(t, err)
		assert.Empty(t, latest)
		assert.Equal(t, int32(1), atomic.LoadInt32(calls))
	})

	t.Run("disabled by environment", func(t *testing.T) {
		t.Setenv(DisableUpdateCheckEnv, "1")
		releases, calls := newReleaseServer(t, "v2.0.0")
		checker := NewVersionChecker("v1.0.0", releases, t.TempDir())

		latest, err := checker.CheckForUpdates(ctx, false)

		require.NoError(t, err)
		assert.Empty(t, latest)
		assert.Equal(t, int32(0), atomic.LoadInt32(calls))
	})

	t.Run("force ignores the environment and the cache", func(t *testing.T) {
		t.Setenv(DisableUpdateCheckEnv, "1")
		releases, calls := newReleaseServer(t, "v2.0.0")
		checker := NewVersionChecker("v1.0.0", releases, t.TempDir())
		require.NoError(t, checker.saveCache(UpdateCache{LastCheck: time.Now(), LatestKnown: "v1.0.0"}))

		latest, err := checker.CheckForUpdates(ctx, true)

		require.NoError(t, err)
		assert.Equal(t, "v2.0.0", latest)
		assert.Equal(t, int32(1), atomic.LoadInt32(calls))
	})

	t.Run("fetch error", func(t *testing.T) {
		t.Setenv(DisableUpdateCheckEnv, "")
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message":"Not Found"}`))
		}))
		defer server.Close()
		client := github.NewClient(nil)
		baseURL, err := url.Parse(server.URL + "/")
		require.NoError(t, err)
		client.BaseURL = baseURL

		checker := NewVersionChecker("v1.0.0", NewGitHubReleases(client), "")
		_, err = checker.CheckForUpdates(ctx, false)

		assert.ErrorContains(t, err, "error fetching latest release")
	})
}
