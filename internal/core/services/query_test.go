package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/massbar-labs/massbar-cli/internal/core/domain"
	"github.com/massbar-labs/massbar-cli/internal/core/ports/driven"
)

// queryFixture wires a query service over mocks so tests can tweak the
// API, clipboard, and settings independently.
type queryFixture struct {
	api       *mockSnippetAPI
	clipboard *mockClipboard
	injector  *mockInjector
	settings  *SettingsService
	cache     *SnippetCache
	executor  *ActionExecutor
	service   *QueryService
}

func newQueryFixture(snippets []domain.Snippet) *queryFixture {
	f := &queryFixture{
		api:       &mockSnippetAPI{snippets: snippets, snippetID: 1, contentID: 1},
		clipboard: &mockClipboard{},
		injector:  &mockInjector{},
		settings:  NewSettingsService(newMockConfigStore()),
	}
	f.cache = NewSnippetCache(f.api)
	f.executor = newTestExecutor(f.clipboard, f.injector)
	f.service = NewQueryService(
		f.cache,
		func() driven.SnippetAPI { return f.api },
		f.clipboard,
		f.executor,
		f.settings,
	)
	return f
}

func greetingSnippet() domain.Snippet {
	return domain.Snippet{
		ID:   1,
		Name: "Greeting",
		Contents: []domain.Content{
			{ID: 1, Label: "Hello", Language: "plain_text", Value: "hello world"},
		},
	}
}

func TestQueryService_EmptySearchShowsAppInfo(t *testing.T) {
	f := newQueryFixture(nil)

	items := f.service.Query(context.Background(), "")

	require.Len(t, items, 1)
	assert.Equal(t, AppName, items[0].Title)
	assert.Equal(t, AppDescription, items[0].Subtitle)
	assert.Equal(t, domain.ResultKindInfo, items[0].Kind)
	// The empty search must not hit the API.
	assert.Zero(t, f.api.calls())
}

func TestQueryService_MatchingSnippet(t *testing.T) {
	f := newQueryFixture([]domain.Snippet{greetingSnippet()})

	items := f.service.Query(context.Background(), "greet")

	require.Len(t, items, 1)
	assert.Equal(t, "Greeting", items[0].Title)
	assert.Equal(t, "Hello • plain_text — Inbox", items[0].Subtitle)
	assert.Equal(t, domain.ResultKindSnippet, items[0].Kind)
	require.NotNil(t, items[0].Action)
}

func TestQueryService_FolderScopedSearch(t *testing.T) {
	snippet := greetingSnippet()
	snippet.Folder = &domain.Folder{ID: 3, Name: "Inbox"}
	f := newQueryFixture([]domain.Snippet{snippet})

	items := f.service.Query(context.Background(), "%inbox")

	require.Len(t, items, 1)
	assert.Equal(t, "Greeting", items[0].Title)
}

func TestQueryService_NoMatchDiagnostic(t *testing.T) {
	f := newQueryFixture([]domain.Snippet{greetingSnippet()})

	items := f.service.Query(context.Background(), "%nope")

	require.Len(t, items, 1)
	assert.Equal(t, "No matching snippets", items[0].Title)
	assert.Contains(t, items[0].Subtitle, "Snippets loaded: 1.")
	assert.Equal(t, domain.ResultKindDiagnostic, items[0].Kind)
}

func TestQueryService_ConnectionFailureDiagnostic(t *testing.T) {
	f := newQueryFixture(nil)
	f.api.listErr = errors.New("connection refused")

	items := f.service.Query(context.Background(), "hello")

	require.Len(t, items, 1)
	assert.Equal(t, "massCode connection issue", items[0].Title)
	assert.Contains(t, items[0].Subtitle, "Ensure massCode is running (default port 4321).")
	assert.Contains(t, items[0].Subtitle, "Error: connection refused")
	assert.Equal(t, domain.ResultKindDiagnostic, items[0].Kind)
}

func TestQueryService_InvokeCopiesSnippetText(t *testing.T) {
	f := newQueryFixture([]domain.Snippet{greetingSnippet()})

	items := f.service.Query(context.Background(), "greet")
	require.Len(t, items, 1)

	require.NoError(t, items[0].Invoke(context.Background()))
	require.Len(t, f.clipboard.written, 1)
	assert.Equal(t, "hello world", f.clipboard.written[0])
}

func TestQueryService_PasteModeUsesInjector(t *testing.T) {
	f := newQueryFixture([]domain.Snippet{greetingSnippet()})
	settings := f.settings.Get()
	settings.Action = domain.ActionModePaste
	require.NoError(t, f.settings.Update(settings))

	items := f.service.Query(context.Background(), "greet")
	require.Len(t, items, 1)

	require.NoError(t, items[0].Invoke(context.Background()))
	waitForPaste(t, f.executor)

	require.Len(t, f.clipboard.written, 1)
	assert.Equal(t, 1, f.injector.pasteAttempts())
}

func TestQueryService_CreateItemFromClipboard(t *testing.T) {
	f := newQueryFixture(nil)
	f.clipboard.text = "foo"

	items := f.service.Query(context.Background(), "new mysnippet")

	require.NotEmpty(t, items)
	create := items[0]
	assert.Equal(t, "Create massCode snippet: mysnippet", create.Title)
	assert.Equal(t, "From clipboard (Fragment1 • plain_text)", create.Subtitle)
	assert.Equal(t, domain.ResultKindCreate, create.Kind)

	require.NoError(t, create.Invoke(context.Background()))
	assert.Equal(t, "mysnippet", f.api.createdName)
	assert.Nil(t, f.api.createdFolderID)
	assert.Equal(t, "Fragment1", f.api.createdLabel)
	assert.Equal(t, "plain_text", f.api.createdLanguage)
	assert.Equal(t, "foo", f.api.createdValue)
}

func TestQueryService_CreateKeywordVariants(t *testing.T) {
	f := newQueryFixture(nil)
	f.clipboard.text = "foo"

	items := f.service.Query(context.Background(), "create deploy notes")

	require.NotEmpty(t, items)
	assert.Equal(t, "Create massCode snippet: deploy notes", items[0].Title)
}

func TestQueryService_CreateAlongsideDiagnostic(t *testing.T) {
	f := newQueryFixture([]domain.Snippet{greetingSnippet()})
	f.clipboard.text = "foo"

	items := f.service.Query(context.Background(), "new thing")

	// The create affordance comes first, the no-match hint after it.
	require.Len(t, items, 2)
	assert.Equal(t, domain.ResultKindCreate, items[0].Kind)
	assert.Equal(t, domain.ResultKindDiagnostic, items[1].Kind)
}

func TestQueryService_NoCreateItemWithoutName(t *testing.T) {
	f := newQueryFixture(nil)
	f.clipboard.text = "foo"

	items := f.service.Query(context.Background(), "new ")

	for _, item := range items {
		assert.NotEqual(t, domain.ResultKindCreate, item.Kind)
	}
}

func TestQueryService_NoCreateItemWhenClipboardBlank(t *testing.T) {
	f := newQueryFixture(nil)
	f.clipboard.text = "   \n"

	items := f.service.Query(context.Background(), "new thing")

	for _, item := range items {
		assert.NotEqual(t, domain.ResultKindCreate, item.Kind)
	}
}

func TestQueryService_NoCreateItemWhenClipboardUnreadable(t *testing.T) {
	f := newQueryFixture(nil)
	f.clipboard.text = "foo"
	f.clipboard.readErr = errors.New("no display")

	items := f.service.Query(context.Background(), "new thing")

	for _, item := range items {
		assert.NotEqual(t, domain.ResultKindCreate, item.Kind)
	}
}

func TestQueryService_CreateStopsWithoutSnippetID(t *testing.T) {
	f := newQueryFixture(nil)
	f.clipboard.text = "foo"
	f.api.snippetID = 0

	items := f.service.Query(context.Background(), "new thing")
	require.NotEmpty(t, items)
	require.Equal(t, domain.ResultKindCreate, items[0].Kind)

	err := items[0].Invoke(context.Background())

	assert.ErrorIs(t, err, domain.ErrNoSnippetID)
	assert.Zero(t, f.api.contentCalls)
}

func TestQueryService_CreateSnippetErrorPropagates(t *testing.T) {
	f := newQueryFixture(nil)
	f.clipboard.text = "foo"
	f.api.createErr = errors.New("boom")

	items := f.service.Query(context.Background(), "new thing")
	require.NotEmpty(t, items)

	err := items[0].Invoke(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "create snippet")
}

func TestQueryService_ResultsCappedAtMaxResults(t *testing.T) {
	snippets := make([]domain.Snippet, 0, MaxResults+20)
	for i := 0; i < MaxResults+20; i++ {
		snippets = append(snippets, domain.Snippet{
			ID:   i + 1,
			Name: fmt.Sprintf("alpha %d", i+1),
			Contents: []domain.Content{
				{ID: i + 1, Label: "Fragment1", Language: "plain_text", Value: "x"},
			},
		})
	}
	f := newQueryFixture(snippets)

	items := f.service.Query(context.Background(), "alpha")

	assert.Len(t, items, MaxResults)
}

func TestQueryService_DeletedSnippetsNotShown(t *testing.T) {
	snippet := greetingSnippet()
	snippet.IsDeleted = true
	f := newQueryFixture([]domain.Snippet{snippet})

	items := f.service.Query(context.Background(), "greet")

	require.Len(t, items, 1)
	assert.Equal(t, domain.ResultKindDiagnostic, items[0].Kind)
}
