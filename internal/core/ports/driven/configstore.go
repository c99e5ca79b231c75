package driven

// ConfigStore provides persistent key-value configuration storage.
// Keys use dot notation (e.g. "masscode.base_url").
type ConfigStore interface {
	// Get retrieves a raw configuration value by key.
	Get(key string) (any, bool)

	// GetString retrieves a string configuration value.
	GetString(key string) string

	// GetBool retrieves a boolean configuration value.
	GetBool(key string) bool

	// Set stores a configuration value and persists immediately.
	Set(key string, value any) error
}

// ConfigWatcher is implemented by config stores that can report external
// changes to their backing file. Optional; stores without a backing file
// simply do not implement it.
type ConfigWatcher interface {
	// Watch invokes onChange after the backing file is modified by
	// another process. It returns a stop function.
	Watch(onChange func()) (stop func(), err error)
}
