package models

type (
	GenerateRequest struct {
		SystemPrompt string
		UserPrompt   string
	}

	// GenerateResult is tagged with the provider that answered and, for
	// multi-model providers, the model that won.
	GenerateResult struct {
		Text       string
		ProviderID string
		Model      string
	}

	ChatMessage struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	}

	ChatCompletionRequest struct {
		Model    string        `json:"model"`
		Messages []ChatMessage `json:"messages"`
	}
)

const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// NewChatCompletionRequest builds the two-message request every chat backend receives.
func NewChatCompletionRequest(model string, req GenerateRequest) ChatCompletionRequest {
	return ChatCompletionRequest{
		Model: model,
		Messages: []ChatMessage{
			{Role: RoleSystem, Content: req.SystemPrompt},
			{Role: RoleUser, Content: req.UserPrompt},
		},
	}
}
