package driving

import "github.com/massbar-labs/massbar-cli/internal/core/domain"

// SettingsService manages the launcher's persisted settings.
type SettingsService interface {
	// Get returns the current settings snapshot, normalised so every
	// field holds a usable value.
	Get() domain.PluginSettings

	// Update validates, persists, and publishes new settings. Base-URL
	// and favourite-exclusion changes invalidate the snippet cache.
	Update(settings domain.PluginSettings) error

	// Subscribe registers a callback invoked after every published
	// settings change with the new snapshot.
	Subscribe(fn func(domain.PluginSettings))
}
