package cache

import "context"

// Cache defines the key-value store fronting upstream marketplace lookups and
// locally computed aggregates. Entries have no implicit expiry; they persist
// until explicitly invalidated.
//
//go:generate mockgen -source=cache.go -destination=../mocks/cache.go -package=mocks -mock_names=Cache=MockCache
type Cache interface {
	// Get retrieves the value for key. The second return is false on a miss.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores the value for key, replacing any previous value
	Set(ctx context.Context, key string, value string) error

	// Delete removes the given keys. Missing keys are not an error.
	Delete(ctx context.Context, keys ...string) error
}
