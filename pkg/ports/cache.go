package ports

import (
	"context"
	"errors"
)

// ErrNotFound is returned by RenderCache.Get for keys that are not cached.
var ErrNotFound = errors.New("render not cached")

// RenderCache stores generated JavaScript by chain fingerprint.
type RenderCache interface {
	// Get returns the code cached for key, or ErrNotFound.
	Get(ctx context.Context, key string) (string, error)

	// Set caches code for key, replacing any previous value.
	Set(ctx context.Context, key, code string) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
