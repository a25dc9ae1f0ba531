package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"syscall"
	"time"
	"unicode/utf8"

	"github.com/Tomas-vilte/predicte-commit/internal/domain/models"
	domainErrors "github.com/Tomas-vilte/predicte-commit/internal/errors"
)

const (
	DefaultTimeout = 30 * time.Second

	maxErrorBodyChars = 500
	maxResponseBytes  = 8 << 20
)

// ChatClient performs OpenAI-compatible chat-completion calls.
type ChatClient struct {
	opts Options
}

func NewChatClient(opts Options) *ChatClient {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	return &ChatClient{opts: opts}
}

// Timeout returns the per-request timeout.
func (c *ChatClient) Timeout() time.Duration {
	return c.opts.Timeout
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content json.RawMessage `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// PostChatCompletion sends body to url and returns the trimmed content of the
// first choice. Every failure is a *errors.ProviderError.
func (c *ChatClient) PostChatCompletion(ctx context.Context, url, apiKey string, body models.ChatCompletionRequest) (string, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return "", &domainErrors.ProviderError{
			Kind:    domainErrors.KindNetworkError,
			Message: fmt.Sprintf("Network error: encoding request: %v", err),
			URL:     url,
			Model:   body.Model,
			Err:     err,
		}
	}

	ctx, cancel := context.WithTimeout(ctx, c.opts.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", c.classify(err, url, body.Model)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := NewHTTPClient(apiKey, c.opts).Do(req)
	if err != nil {
		return "", c.classify(err, url, body.Model)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
		apiErr := domainErrors.NewAPIError(resp.StatusCode, StatusMessage(resp.StatusCode, string(raw)))
		apiErr.URL = url
		apiErr.Model = body.Model
		return "", apiErr
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", c.classify(err, url, body.Model)
	}

	content := extractContent(raw)
	if content == "" {
		return "", &domainErrors.ProviderError{
			Kind:    domainErrors.KindAPIError,
			Message: "API Error: Empty response content",
			URL:     url,
			Model:   body.Model,
		}
	}
	return content, nil
}

// extractContent returns choices[0].message.content trimmed, or "" when the
// body does not hold a string there.
func extractContent(raw []byte) string {
	var parsed chatCompletionResponse
	if err := json.Unmarshal(raw, &parsed); err != nil || len(parsed.Choices) == 0 {
		return ""
	}
	var content string
	if err := json.Unmarshal(parsed.Choices[0].Message.Content, &content); err != nil {
		return ""
	}
	return strings.TrimSpace(content)
}

func (c *ChatClient) classify(err error, url, model string) *domainErrors.ProviderError {
	pe := &domainErrors.ProviderError{URL: url, Model: model, Err: err}

	var dnsErr *net.DNSError
	var netErr net.Error
	msg := err.Error()

	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.As(err, &netErr) && netErr.Timeout():
		pe.Kind = domainErrors.KindTimeout
		pe.Message = fmt.Sprintf("Request timed out after %s connecting to %s", c.opts.Timeout, url)
	case errors.Is(err, syscall.ECONNREFUSED), strings.Contains(msg, "connection refused"):
		pe.Kind = domainErrors.KindConnectionRefused
		pe.Message = fmt.Sprintf("Connection refused to %s. Is the server running?", url)
	case errors.As(err, &dnsErr), strings.Contains(msg, "no such host"):
		pe.Kind = domainErrors.KindAddressNotFound
		pe.Message = fmt.Sprintf("Address not found: %s. Check your settings.", url)
	default:
		pe.Kind = domainErrors.KindNetworkError
		pe.Message = fmt.Sprintf("Network error: %v", err)
	}
	return pe
}

// StatusMessage formats a non-2xx reply. The body is truncated and left out
// entirely when blank.
func StatusMessage(status int, body string) string {
	msg := fmt.Sprintf("API Error: %d %s", status, http.StatusText(status))
	if body = strings.TrimSpace(body); body != "" {
		msg += " - " + firstChars(body, maxErrorBodyChars)
	}
	return msg
}

func firstChars(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
