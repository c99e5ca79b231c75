package services

import (
	"context"
	"sync"

	"github.com/massbar-labs/massbar-cli/internal/core/domain"
)

// mockSnippetAPI is a handwritten mock of driven.SnippetAPI.
type mockSnippetAPI struct {
	mu sync.Mutex

	snippets []domain.Snippet
	listErr  error

	snippetID int
	contentID int
	createErr error

	listCalls   int
	lastExclude bool

	createdName     string
	createdFolderID *int
	createdLabel    string
	createdLanguage string
	createdValue    string
	contentCalls    int
}

func (m *mockSnippetAPI) ListSnippets(_ context.Context, excludeFavorites bool) ([]domain.Snippet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listCalls++
	m.lastExclude = excludeFavorites
	return m.snippets, m.listErr
}

func (m *mockSnippetAPI) CreateSnippet(_ context.Context, name string, folderID *int) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.createdName = name
	m.createdFolderID = folderID
	return m.snippetID, m.createErr
}

func (m *mockSnippetAPI) CreateContent(_ context.Context, _ int, label, language, value string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.contentCalls++
	m.createdLabel = label
	m.createdLanguage = language
	m.createdValue = value
	return m.contentID, m.createErr
}

func (m *mockSnippetAPI) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.listCalls
}

// mockClipboard is a handwritten mock of driven.Clipboard.
type mockClipboard struct {
	text     string
	readErr  error
	writeErr error
	written  []string
}

func (m *mockClipboard) ReadText() (string, error) {
	return m.text, m.readErr
}

func (m *mockClipboard) WriteText(text string) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	m.written = append(m.written, text)
	return nil
}

// mockInjector is a handwritten mock of driven.KeyInjector. failures
// sets how many leading attempts fail before one succeeds.
type mockInjector struct {
	mu       sync.Mutex
	failures int
	err      error
	attempts int
}

func (m *mockInjector) Paste(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.attempts++
	if m.attempts <= m.failures {
		return m.err
	}
	return nil
}

func (m *mockInjector) pasteAttempts() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.attempts
}

// mockConfigStore is an in-memory driven.ConfigStore.
type mockConfigStore struct {
	values map[string]any
	setErr error
}

func newMockConfigStore() *mockConfigStore {
	return &mockConfigStore{values: make(map[string]any)}
}

func (m *mockConfigStore) Get(key string) (any, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *mockConfigStore) GetString(key string) string {
	if v, ok := m.values[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func (m *mockConfigStore) GetBool(key string) bool {
	if v, ok := m.values[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return false
}

func (m *mockConfigStore) Set(key string, value any) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.values[key] = value
	return nil
}
