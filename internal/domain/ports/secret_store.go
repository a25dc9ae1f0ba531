package ports

import "context"

// SecretStore looks up provider credentials. A missing key yields "" and no error.
type SecretStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}
