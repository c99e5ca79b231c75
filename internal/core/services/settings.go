package services

import (
	"fmt"
	"sync"

	"github.com/massbar-labs/massbar-cli/internal/core/domain"
	"github.com/massbar-labs/massbar-cli/internal/core/ports/driven"
	"github.com/massbar-labs/massbar-cli/internal/core/ports/driving"
	"github.com/massbar-labs/massbar-cli/internal/logger"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyBaseURL          = "masscode.base_url"
	keyExcludeFavorites = "masscode.exclude_favorites"
	keyActionMode       = "action.mode"
	keyTitlePrefix      = "search.title_prefix"
	keyTextPrefix       = "search.text_prefix"
	keyFolderPrefix     = "search.folder_prefix"
	keyTagPrefix        = "search.tag_prefix"
)

// SettingsService manages the launcher settings. It keeps a normalised
// in-memory snapshot, persists changes through the config store, and
// notifies subscribers so the client and cache can react.
type SettingsService struct {
	configStore driven.ConfigStore

	mu          sync.RWMutex
	current     domain.PluginSettings
	subscribers []func(domain.PluginSettings)
}

// NewSettingsService creates a settings service and loads the persisted
// settings. Missing or invalid values fall back to defaults.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	s := &SettingsService{configStore: configStore}
	s.current = s.load()
	return s
}

// Get returns the current settings snapshot.
func (s *SettingsService) Get() domain.PluginSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Update validates, persists, and publishes new settings.
func (s *SettingsService) Update(settings domain.PluginSettings) error {
	settings = settings.Normalise()

	if err := s.persist(settings); err != nil {
		return err
	}

	s.publish(settings)
	return nil
}

// Subscribe registers a callback invoked after every published change.
func (s *SettingsService) Subscribe(fn func(domain.PluginSettings)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// Reload re-reads the backing store and publishes the result when it
// differs from the current snapshot. Called when the config file changes
// on disk.
func (s *SettingsService) Reload() {
	loaded := s.load()

	s.mu.RLock()
	same := loaded == s.current
	s.mu.RUnlock()
	if same {
		return
	}

	logger.Info("settings changed on disk, reloading")
	s.publish(loaded)
}

// publish swaps the snapshot and notifies subscribers outside the lock.
func (s *SettingsService) publish(settings domain.PluginSettings) {
	s.mu.Lock()
	s.current = settings
	subs := make([]func(domain.PluginSettings), len(s.subscribers))
	copy(subs, s.subscribers)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(settings)
	}
}

// load reads settings from the config store, normalised.
func (s *SettingsService) load() domain.PluginSettings {
	settings := domain.PluginSettings{
		BaseURL:          s.configStore.GetString(keyBaseURL),
		Action:           domain.ActionMode(s.configStore.GetString(keyActionMode)),
		ExcludeFavorites: s.configStore.GetBool(keyExcludeFavorites),
		Prefixes: domain.Prefixes{
			Title:  domain.PrefixFromString(s.configStore.GetString(keyTitlePrefix)),
			Text:   domain.PrefixFromString(s.configStore.GetString(keyTextPrefix)),
			Folder: domain.PrefixFromString(s.configStore.GetString(keyFolderPrefix)),
			Tag:    domain.PrefixFromString(s.configStore.GetString(keyTagPrefix)),
		},
	}
	return settings.Normalise()
}

// persist writes every setting to the config store.
func (s *SettingsService) persist(settings domain.PluginSettings) error {
	entries := []struct {
		key   string
		value any
	}{
		{keyBaseURL, settings.BaseURL},
		{keyExcludeFavorites, settings.ExcludeFavorites},
		{keyActionMode, settings.Action.String()},
		{keyTitlePrefix, string(settings.Prefixes.Title)},
		{keyTextPrefix, string(settings.Prefixes.Text)},
		{keyFolderPrefix, string(settings.Prefixes.Folder)},
		{keyTagPrefix, string(settings.Prefixes.Tag)},
	}
	for _, e := range entries {
		if err := s.configStore.Set(e.key, e.value); err != nil {
			return fmt.Errorf("save %s: %w", e.key, err)
		}
	}
	return nil
}
