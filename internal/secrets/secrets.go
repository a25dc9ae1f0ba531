// Package secrets stores provider API keys outside the main config file.
package secrets

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/Tomas-vilte/predicte-commit/internal/domain/ports"
)

const credentialsFileName = "credentials.json"

// FileStore keeps credentials in a JSON file readable only by the owner.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore stores credentials in dir/credentials.json.
func NewFileStore(dir string) *FileStore {
	return &FileStore{path: filepath.Join(dir, credentialsFileName)}
}

// Path returns the credentials file location.
func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) Get(_ context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.read()
	if err != nil {
		return "", err
	}
	return values[key], nil
}

func (s *FileStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.read()
	if err != nil {
		return err
	}
	if value == "" {
		delete(values, key)
	} else {
		values[key] = value
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("error creating credentials directory: %w", err)
	}
	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding credentials: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("error writing credentials: %w", err)
	}
	return os.Chmod(s.path, 0600)
}

func (s *FileStore) read() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading credentials: %w", err)
	}

	values := map[string]string{}
	if len(strings.TrimSpace(string(data))) == 0 {
		return values, nil
	}
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("error decoding credentials: %w", err)
	}
	// A literal null decodes into a nil map.
	if values == nil {
		values = map[string]string{}
	}
	return values, nil
}

// EnvStore checks the environment before falling back to another store.
// The variable name is the key upper-cased, so "mistral_api_key" reads
// MISTRAL_API_KEY.
type EnvStore struct {
	next   ports.SecretStore
	lookup func(string) (string, bool)
}

func NewEnvStore(next ports.SecretStore) *EnvStore {
	return &EnvStore{next: next, lookup: os.LookupEnv}
}

func (s *EnvStore) Get(ctx context.Context, key string) (string, error) {
	if v, ok := s.lookup(EnvVarName(key)); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v), nil
	}
	return s.next.Get(ctx, key)
}

func (s *EnvStore) Set(ctx context.Context, key, value string) error {
	return s.next.Set(ctx, key, value)
}

// EnvVarName returns the environment variable consulted for key.
func EnvVarName(key string) string {
	return strings.ToUpper(key)
}
