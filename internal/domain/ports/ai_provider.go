package ports

import (
	"context"

	"github.com/Tomas-vilte/predicte-commit/internal/domain/models"
)

// Provider generates text from a chat-completion backend.
type Provider interface {
	// ID returns the stable provider identifier used in results and errors.
	ID() string
	Generate(ctx context.Context, req models.GenerateRequest) (*models.GenerateResult, error)
}
