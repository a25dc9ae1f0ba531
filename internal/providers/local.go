package providers

import "github.com/Tomas-vilte/predicte-commit/internal/infrastructure/ai/registry"

const (
	OllamaBaseURL   = "http://localhost:11434/v1"
	LMStudioBaseURL = "http://localhost:1234/v1"
	VLLMBaseURL     = "http://localhost:8000/v1"
)

func Ollama() registry.Definition {
	return localDefinition(localSpec{id: "ollama", label: "Ollama (local)", baseURL: OllamaBaseURL})
}

func LMStudio() registry.Definition {
	return localDefinition(localSpec{id: "lmstudio", label: "LM Studio (local)", baseURL: LMStudioBaseURL})
}

func VLLM() registry.Definition {
	return localDefinition(localSpec{id: "vllm", label: "vLLM (local)", baseURL: VLLMBaseURL})
}

// LegacyLocal keeps configurations that predate named local providers working.
func LegacyLocal() registry.Definition {
	return localDefinition(localSpec{id: "local", label: "OpenAI-compatible server (legacy)", baseURL: OllamaBaseURL})
}
