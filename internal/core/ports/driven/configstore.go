package driven

// ConfigStore persists key-value configuration (tokens, timeouts,
// upload limits). Keys are dotted paths, e.g. "github.token".
type ConfigStore interface {
	// Get retrieves a raw value by key.
	Get(key string) (any, bool)

	// GetString retrieves a string value, "" if unset.
	GetString(key string) string

	// GetInt retrieves an integer value, 0 if unset.
	GetInt(key string) int

	// Set stores a value and persists immediately.
	Set(key string, value any) error

	// Load reloads configuration from the backing store.
	Load() error
}
