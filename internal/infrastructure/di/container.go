package di

import (
	"fmt"

	"github.com/Tomas-vilte/predicte-commit/internal/config"
	"github.com/Tomas-vilte/predicte-commit/internal/domain/ports"
	"github.com/Tomas-vilte/predicte-commit/internal/i18n"
	"github.com/Tomas-vilte/predicte-commit/internal/infrastructure/ai/gemini"
	"github.com/Tomas-vilte/predicte-commit/internal/infrastructure/ai/registry"
	"github.com/Tomas-vilte/predicte-commit/internal/infrastructure/httpclient"
	"github.com/Tomas-vilte/predicte-commit/internal/providers"
	"github.com/Tomas-vilte/predicte-commit/internal/secrets"
	"github.com/Tomas-vilte/predicte-commit/internal/services"
)

// Container wires the application's dependencies.
type Container struct {
	config       *config.Config
	translations *i18n.Translations
	configDir    string

	aiRegistry *registry.AIProviderRegistry
	secrets    ports.SecretStore
	runtime    registry.RuntimeContext

	// lazily initialized
	gitService     ports.GitService
	commitService  *services.CommitService
	versionChecker *services.VersionChecker
}

// NewContainer keeps credentials and caches in configDir. API keys found in
// the environment take precedence over the stored ones.
func NewContainer(cfg *config.Config, trans *i18n.Translations, configDir string) *Container {
	store := secrets.NewEnvStore(secrets.NewFileStore(configDir))
	return &Container{
		config:       cfg,
		translations: trans,
		configDir:    configDir,
		aiRegistry:   providers.NewRegistry(),
		secrets:      store,
		runtime: registry.RuntimeContext{
			Secrets: store,
			HTTP:    httpclient.NewChatClient(httpclient.Options{}),
			Gemini:  gemini.NewSDKClient,
		},
	}
}

// RegisterAIProvider adds a provider next to the built-in ones.
func (c *Container) RegisterAIProvider(def registry.Definition) error {
	return c.aiRegistry.Register(def)
}

// SetRuntime replaces the transports handed to provider factories.
func (c *Container) SetRuntime(rt registry.RuntimeContext) {
	if rt.Secrets == nil {
		rt.Secrets = c.secrets
	}
	c.runtime = rt
	c.commitService = nil
}

func (c *Container) SetGitService(gitService ports.GitService) {
	c.gitService = gitService
	c.commitService = nil
}

func (c *Container) GetGitService() ports.GitService {
	return c.gitService
}

func (c *Container) GetAIRegistry() *registry.AIProviderRegistry {
	return c.aiRegistry
}

func (c *Container) GetSecretStore() ports.SecretStore {
	return c.secrets
}

func (c *Container) GetConfig() *config.Config {
	return c.config
}

func (c *Container) GetTranslations() *i18n.Translations {
	return c.translations
}

// GetCommitService builds the commit service on first use.
func (c *Container) GetCommitService() (*services.CommitService, error) {
	if c.commitService != nil {
		return c.commitService, nil
	}
	if c.gitService == nil {
		return nil, fmt.Errorf("git service not set")
	}

	c.commitService = services.NewCommitService(c.gitService, c.aiRegistry, c.runtime)
	return c.commitService, nil
}

// GetVersionChecker returns a checker for currentVersion backed by the
// GitHub releases API and cached in the config directory.
func (c *Container) GetVersionChecker(currentVersion string) *services.VersionChecker {
	if c.versionChecker == nil || c.versionChecker.CurrentVersion() != currentVersion {
		c.versionChecker = services.NewVersionChecker(currentVersion, services.NewGitHubReleases(nil), c.configDir)
	}
	return c.versionChecker
}
