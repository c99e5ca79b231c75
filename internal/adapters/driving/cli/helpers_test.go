package cli

import (
	"context"

	"github.com/massbar-labs/massbar-cli/internal/core/domain"
)

// fakeQueryService returns canned result items.
type fakeQueryService struct {
	items      []domain.ResultItem
	lastSearch string
}

func (f *fakeQueryService) Query(_ context.Context, search string) []domain.ResultItem {
	f.lastSearch = search
	return f.items
}

// fakeSettingsService stores settings in memory.
type fakeSettingsService struct {
	settings  domain.PluginSettings
	updateErr error
}

func (f *fakeSettingsService) Get() domain.PluginSettings {
	return f.settings
}

func (f *fakeSettingsService) Update(settings domain.PluginSettings) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.settings = settings.Normalise()
	return nil
}

func (f *fakeSettingsService) Subscribe(_ func(domain.PluginSettings)) {}

func defaultTestItems() []domain.ResultItem {
	return []domain.ResultItem{
		{
			Title:    "Greeting",
			Subtitle: "Hello • plain_text — Inbox",
			Kind:     domain.ResultKindSnippet,
			Action:   func(_ context.Context) error { return nil },
		},
	}
}

// setupTestServices swaps the package services for fakes and returns a
// cleanup function restoring the originals.
func setupTestServices() func() {
	oldQuery := queryService
	oldSettings := settingsService

	queryService = &fakeQueryService{items: defaultTestItems()}
	settingsService = &fakeSettingsService{settings: domain.DefaultPluginSettings()}

	return func() {
		queryService = oldQuery
		settingsService = oldSettings
	}
}
