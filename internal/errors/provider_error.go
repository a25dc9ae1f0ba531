package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
)

// ProviderErrorKind classifies a failed generation attempt.
type ProviderErrorKind string

const (
	KindTimeout               ProviderErrorKind = "Timeout"
	KindConnectionRefused     ProviderErrorKind = "ConnectionRefused"
	KindAddressNotFound       ProviderErrorKind = "AddressNotFound"
	KindNetworkError          ProviderErrorKind = "NetworkError"
	KindAPIError              ProviderErrorKind = "ApiError"
	KindProviderNotRegistered ProviderErrorKind = "ProviderNotRegistered"
	KindAllModelsFailed       ProviderErrorKind = "AllModelsFailed"
)

// AttemptFailure records one model that failed during a fallback run.
type AttemptFailure struct {
	Model string
	Err   error
}

// ProviderError is returned by the transport and by every provider.
// Status is 0 when no HTTP response was received.
type ProviderError struct {
	Kind       ProviderErrorKind
	Message    string
	Status     int
	ProviderID string
	Model      string
	URL        string
	Err        error

	// Attempts lists every failed model of a fallback run, in order, when the
	// error is the one surfaced after all models were exhausted.
	Attempts []AttemptFailure
}

func (e *ProviderError) Error() string {
	if e.ProviderID == "" {
		return e.Message
	}
	return fmt.Sprintf("[%s] %s", e.ProviderID, e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// HasStatus reports whether an HTTP status code was received.
func (e *ProviderError) HasStatus() bool {
	return e.Status != 0
}

// IsAuth reports a 401 or 403 response.
func (e *ProviderError) IsAuth() bool {
	return e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden
}

// WithProvider returns a copy tagged with the provider id and model.
func (e *ProviderError) WithProvider(providerID, model string) *ProviderError {
	cp := *e
	cp.ProviderID = providerID
	if model != "" {
		cp.Model = model
	}
	return &cp
}

// WithAttempts returns a copy carrying the fallback history.
func (e *ProviderError) WithAttempts(attempts []AttemptFailure) *ProviderError {
	cp := *e
	cp.Attempts = append([]AttemptFailure(nil), attempts...)
	return &cp
}

func NewProviderError(kind ProviderErrorKind, message string) *ProviderError {
	return &ProviderError{Kind: kind, Message: message}
}

func NewAPIError(status int, message string) *ProviderError {
	return &ProviderError{Kind: KindAPIError, Status: status, Message: message}
}

func NewProviderNotRegisteredError(id string) *ProviderError {
	return &ProviderError{
		Kind:    KindProviderNotRegistered,
		Message: fmt.Sprintf("Provider '%s' is not registered.", id),
	}
}

func NewAllModelsFailedError(providerID string) *ProviderError {
	return &ProviderError{
		Kind:       KindAllModelsFailed,
		Message:    "All AI models failed.",
		ProviderID: providerID,
	}
}

// AsProviderError unwraps err to a *ProviderError.
func AsProviderError(err error) (*ProviderError, bool) {
	var pe *ProviderError
	if stdErrors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// IsAuthError reports whether err carries a 401 or 403 status.
func IsAuthError(err error) bool {
	pe, ok := AsProviderError(err)
	return ok && pe.IsAuth()
}
