package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/massbar-labs/massbar-cli/internal/core/domain"
)

func TestSettingsService_DefaultsWhenStoreEmpty(t *testing.T) {
	svc := NewSettingsService(newMockConfigStore())

	settings := svc.Get()

	assert.Equal(t, domain.DefaultPluginSettings(), settings)
}

func TestSettingsService_LoadsPersistedValues(t *testing.T) {
	store := newMockConfigStore()
	store.values[keyBaseURL] = "http://localhost:9000"
	store.values[keyActionMode] = "paste"
	store.values[keyExcludeFavorites] = true
	store.values[keyTitlePrefix] = "@"

	svc := NewSettingsService(store)
	settings := svc.Get()

	assert.Equal(t, "http://localhost:9000", settings.BaseURL)
	assert.Equal(t, domain.ActionModePaste, settings.Action)
	assert.True(t, settings.ExcludeFavorites)
	assert.Equal(t, '@', settings.Prefixes.Title)
	// Unset prefixes keep their defaults.
	assert.Equal(t, '#', settings.Prefixes.Text)
}

func TestSettingsService_InvalidStoredValuesNormalised(t *testing.T) {
	store := newMockConfigStore()
	store.values[keyBaseURL] = "not a url"
	store.values[keyActionMode] = "shout"

	svc := NewSettingsService(store)
	settings := svc.Get()

	assert.Equal(t, domain.DefaultBaseURL, settings.BaseURL)
	assert.Equal(t, domain.ActionModeCopy, settings.Action)
}

func TestSettingsService_Update_PersistsAndPublishes(t *testing.T) {
	store := newMockConfigStore()
	svc := NewSettingsService(store)

	var published []domain.PluginSettings
	svc.Subscribe(func(s domain.PluginSettings) {
		published = append(published, s)
	})

	next := svc.Get()
	next.BaseURL = "http://localhost:9000"
	next.ExcludeFavorites = true

	require.NoError(t, svc.Update(next))

	assert.Equal(t, "http://localhost:9000", store.GetString(keyBaseURL))
	assert.True(t, store.GetBool(keyExcludeFavorites))
	require.Len(t, published, 1)
	assert.Equal(t, "http://localhost:9000", published[0].BaseURL)
	assert.Equal(t, "http://localhost:9000", svc.Get().BaseURL)
}

func TestSettingsService_Update_NormalisesBeforePersisting(t *testing.T) {
	store := newMockConfigStore()
	svc := NewSettingsService(store)

	next := svc.Get()
	next.BaseURL = "garbage"
	require.NoError(t, svc.Update(next))

	assert.Equal(t, domain.DefaultBaseURL, svc.Get().BaseURL)
	assert.Equal(t, domain.DefaultBaseURL, store.GetString(keyBaseURL))
}

func TestSettingsService_Update_PersistFailureKeepsCurrent(t *testing.T) {
	store := newMockConfigStore()
	svc := NewSettingsService(store)
	before := svc.Get()

	store.setErr = errors.New("disk full")

	next := before
	next.BaseURL = "http://localhost:9000"
	err := svc.Update(next)

	require.Error(t, err)
	assert.Equal(t, before, svc.Get())
}

func TestSettingsService_Reload_PublishesOnChange(t *testing.T) {
	store := newMockConfigStore()
	svc := NewSettingsService(store)

	calls := 0
	svc.Subscribe(func(_ domain.PluginSettings) { calls++ })

	// No change on disk, no publish.
	svc.Reload()
	assert.Zero(t, calls)

	// External edit of the backing store.
	store.values[keyActionMode] = "paste"
	svc.Reload()

	assert.Equal(t, 1, calls)
	assert.Equal(t, domain.ActionModePaste, svc.Get().Action)
}

func TestSettingsService_MultipleSubscribers(t *testing.T) {
	svc := NewSettingsService(newMockConfigStore())

	first, second := 0, 0
	svc.Subscribe(func(_ domain.PluginSettings) { first++ })
	svc.Subscribe(func(_ domain.PluginSettings) { second++ })

	next := svc.Get()
	next.ExcludeFavorites = true
	require.NoError(t, svc.Update(next))

	assert.Equal(t, 1, first)
	assert.Equal(t, 1, second)
}
