package ai

import (
	"context"
	"net/http"

	domainErrors "github.com/Tomas-vilte/predicte-commit/internal/errors"
)

// AttemptFunc performs one generation attempt against a single model.
type AttemptFunc func(ctx context.Context, model string) (string, error)

// IsTransientStatus reports statuses worth retrying with the next model.
func IsTransientStatus(status int) bool {
	switch status {
	case http.StatusTooManyRequests,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}

// IsAuthOrConfigStatus reports statuses that no other model can fix.
func IsAuthOrConfigStatus(status int) bool {
	switch status {
	case http.StatusBadRequest,
		http.StatusUnauthorized,
		http.StatusForbidden:
		return true
	}
	return false
}

// shouldContinue decides whether a failed attempt moves on to the next model.
func shouldContinue(pe *domainErrors.ProviderError) bool {
	if !pe.HasStatus() {
		return true
	}
	if IsAuthOrConfigStatus(pe.Status) {
		return false
	}
	return IsTransientStatus(pe.Status)
}

// GenerateWithFallback tries models in order until one answers. Attempts are
// sequential and the first success wins. Auth/config and non-transient HTTP
// statuses are returned at once; transient statuses and failures without a
// status move on to the next model. When every model fails, the last error
// is returned carrying the full attempt history.
func GenerateWithFallback(ctx context.Context, providerID string, models []string, attempt AttemptFunc) (string, string, error) {
	var lastErr *domainErrors.ProviderError
	attempts := make([]domainErrors.AttemptFailure, 0, len(models))

	for _, m := range models {
		text, err := attempt(ctx, m)
		if err == nil {
			return text, m, nil
		}

		pe, ok := domainErrors.AsProviderError(err)
		if !ok {
			pe = &domainErrors.ProviderError{
				Kind:    domainErrors.KindNetworkError,
				Message: "Network error: " + err.Error(),
				Err:     err,
			}
		}
		pe = pe.WithProvider(providerID, m)

		if !shouldContinue(pe) {
			return "", "", pe
		}

		attempts = append(attempts, domainErrors.AttemptFailure{Model: m, Err: pe})
		lastErr = pe

		if ctx.Err() != nil {
			break
		}
	}

	if lastErr == nil {
		return "", "", domainErrors.NewAllModelsFailedError(providerID)
	}
	return "", "", lastErr.WithAttempts(attempts)
}
