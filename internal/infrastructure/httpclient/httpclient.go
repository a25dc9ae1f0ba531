package httpclient

import (
	"net/http"
	"time"

	"golang.org/x/oauth2"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Options configures the HTTP clients built by ChatClient.
type Options struct {
	// Timeout bounds a single request, connection included.
	Timeout time.Duration
	// Transport is the base round tripper; http.DefaultTransport when nil.
	Transport http.RoundTripper
}

// NewHTTPClient returns a client whose requests carry a bearer token when
// apiKey is not empty.
func NewHTTPClient(apiKey string, opts Options) HTTPClient {
	base := opts.Transport
	if base == nil {
		base = http.DefaultTransport
	}

	var rt http.RoundTripper = base
	if apiKey != "" {
		rt = &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: apiKey}),
			Base:   base,
		}
	}

	return &http.Client{Transport: rt}
}
