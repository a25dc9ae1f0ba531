package ai

// ProviderConfig is the per-request configuration of a provider. The only
// implementations are RemoteConfig and LocalConfig.
type ProviderConfig interface {
	providerConfig()
}

// RemoteConfig describes a hosted backend tried model by model.
type RemoteConfig struct {
	// URL is the full chat-completion endpoint.
	URL           string
	APIKey        string
	ModelPriority []string
}

// LocalConfig describes a self-hosted OpenAI-compatible server.
type LocalConfig struct {
	BaseURL string
	Model   string
}

func (RemoteConfig) providerConfig() {}
func (LocalConfig) providerConfig()  {}
