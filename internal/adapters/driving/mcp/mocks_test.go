package mcp

import (
	"context"

	"github.com/massbar-labs/massbar-cli/internal/core/domain"
)

// mockQueryService is a mock implementation of driving.QueryService.
type mockQueryService struct {
	items      []domain.ResultItem
	lastSearch string
}

func (m *mockQueryService) Query(_ context.Context, search string) []domain.ResultItem {
	m.lastSearch = search
	return m.items
}

// mockSnippetAPI is a mock implementation of driven.SnippetAPI.
type mockSnippetAPI struct {
	snippets  []domain.Snippet
	snippetID int
	contentID int
	createErr error

	createdName     string
	createdLabel    string
	createdLanguage string
	createdValue    string
}

func (m *mockSnippetAPI) ListSnippets(_ context.Context, _ bool) ([]domain.Snippet, error) {
	return m.snippets, nil
}

func (m *mockSnippetAPI) CreateSnippet(_ context.Context, name string, _ *int) (int, error) {
	m.createdName = name
	return m.snippetID, m.createErr
}

func (m *mockSnippetAPI) CreateContent(_ context.Context, _ int, label, language, value string) (int, error) {
	m.createdLabel = label
	m.createdLanguage = language
	m.createdValue = value
	return m.contentID, m.createErr
}

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	settings domain.PluginSettings
}

func (m *mockSettingsService) Get() domain.PluginSettings {
	return m.settings
}

func (m *mockSettingsService) Update(settings domain.PluginSettings) error {
	m.settings = settings
	return nil
}

func (m *mockSettingsService) Subscribe(_ func(domain.PluginSettings)) {}
