package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/massbar-labs/massbar-cli/internal/core/domain"
	"github.com/massbar-labs/massbar-cli/internal/core/ports/driven"
	"github.com/massbar-labs/massbar-cli/internal/core/ports/driving"
	"github.com/massbar-labs/massbar-cli/internal/logger"
)

// App identity shown for an empty search.
const (
	AppName        = "Massbar"
	AppDescription = "Search, copy and paste massCode snippets"
)

// MaxResults caps the number of snippet rows returned per query.
const MaxResults = 100

// Defaults for the fragment created by the create-snippet affordance.
const (
	createFragmentLabel    = "Fragment1"
	createFragmentLanguage = "plain_text"
)

// APIProvider returns the current snippet API client. The client is
// rebuilt when the base URL changes, so consumers resolve it per call.
type APIProvider func() driven.SnippetAPI

// Ensure QueryService implements the interface.
var _ driving.QueryService = (*QueryService)(nil)

// QueryService turns a raw search string into displayable result items:
// it parses the query, keeps the snippet cache fresh, matches flattened
// rows, and binds each surviving row's action to the action executor.
type QueryService struct {
	cache     *SnippetCache
	api       APIProvider
	clipboard driven.Clipboard
	actions   driving.ActionService
	settings  driving.SettingsService
}

// NewQueryService creates a query service. The clipboard may be nil, which
// disables the create-snippet affordance.
func NewQueryService(
	cache *SnippetCache,
	api APIProvider,
	clipboard driven.Clipboard,
	actions driving.ActionService,
	settings driving.SettingsService,
) *QueryService {
	return &QueryService{
		cache:     cache,
		api:       api,
		clipboard: clipboard,
		actions:   actions,
		settings:  settings,
	}
}

// Query implements the host-facing search entry point. It never fails;
// fetch problems degrade to diagnostic items.
func (s *QueryService) Query(ctx context.Context, search string) []domain.ResultItem {
	// An empty search skips fetching and building entirely.
	if search == "" {
		return []domain.ResultItem{{
			Title:    AppName,
			Subtitle: AppDescription,
			Kind:     domain.ResultKindInfo,
		}}
	}

	settings := s.settings.Get()

	var results []domain.ResultItem
	if item, ok := s.buildCreateItem(search); ok {
		results = append(results, item)
	}

	s.cache.EnsureFresh(ctx)

	items := s.buildSnippetItems(search, settings)
	if len(items) == 0 {
		results = append(results, s.buildDiagnosticItem())
	} else {
		results = append(results, items...)
	}

	return results
}

// buildSnippetItems flattens the cache, applies the matcher, and renders
// the surviving rows in stable original order, capped at MaxResults.
func (s *QueryService) buildSnippetItems(search string, settings domain.PluginSettings) []domain.ResultItem {
	query := domain.ParseQuery(search, settings.Prefixes)
	logger.Debug("parsed query: generic=%d title=%d text=%d folder=%d tag=%d",
		len(query.Generic), len(query.Title), len(query.Text), len(query.Folder), len(query.Tag))

	var items []domain.ResultItem
	for _, row := range domain.Flatten(s.cache.Snapshot()) {
		if !query.Matches(row) {
			continue
		}
		items = append(items, s.buildRowItem(row, settings.Action))
		if len(items) >= MaxResults {
			break
		}
	}
	return items
}

// buildRowItem renders one matched row as a result item with its action.
func (s *QueryService) buildRowItem(row domain.Row, mode domain.ActionMode) domain.ResultItem {
	folder := row.Snippet.FolderName()
	if folder == "" {
		folder = "Inbox"
	}
	text := row.Content.Value

	return domain.ResultItem{
		Title:    row.Snippet.Name,
		Subtitle: fmt.Sprintf("%s • %s — %s", row.Content.Label, row.Content.Language, folder),
		Kind:     domain.ResultKindSnippet,
		Action: func(ctx context.Context) error {
			if mode == domain.ActionModePaste {
				return s.actions.CopyAndPaste(ctx, text)
			}
			return s.actions.Copy(ctx, text)
		},
	}
}

// buildCreateItem produces the create-snippet affordance when the search
// starts with "new " or "create ", a name follows, and the clipboard holds
// non-blank text.
func (s *QueryService) buildCreateItem(search string) (domain.ResultItem, bool) {
	trimmed := strings.TrimSpace(search)
	lower := strings.ToLower(trimmed)
	if !strings.HasPrefix(lower, "new ") && !strings.HasPrefix(lower, "create ") {
		return domain.ResultItem{}, false
	}

	name := strings.TrimSpace(trimmed[strings.IndexByte(trimmed, ' ')+1:])
	if name == "" {
		return domain.ResultItem{}, false
	}

	if s.clipboard == nil {
		return domain.ResultItem{}, false
	}
	text, err := s.clipboard.ReadText()
	if err != nil {
		logger.Error("clipboard read failed: %v", err)
		return domain.ResultItem{}, false
	}
	if strings.TrimSpace(text) == "" {
		return domain.ResultItem{}, false
	}

	return domain.ResultItem{
		Title:    "Create massCode snippet: " + name,
		Subtitle: fmt.Sprintf("From clipboard (%s • %s)", createFragmentLabel, createFragmentLanguage),
		Kind:     domain.ResultKindCreate,
		Action: func(ctx context.Context) error {
			return s.createSnippet(ctx, name, text)
		},
	}, true
}

// createSnippet performs the two sequential API calls behind the create
// affordance: create the snippet, then attach the clipboard text as its
// first fragment.
func (s *QueryService) createSnippet(ctx context.Context, name, text string) error {
	api := s.api()
	if api == nil {
		return fmt.Errorf("create snippet: no API client configured")
	}

	id, err := api.CreateSnippet(ctx, name, nil)
	if err != nil {
		logger.Error("create snippet failed: %v", err)
		return fmt.Errorf("create snippet: %w", err)
	}
	if id <= 0 {
		logger.Warn("create snippet returned id %d, skipping content", id)
		return domain.ErrNoSnippetID
	}

	if _, err := api.CreateContent(ctx, id, createFragmentLabel, createFragmentLanguage, text); err != nil {
		logger.Error("create content failed: %v", err)
		return fmt.Errorf("create content: %w", err)
	}

	logger.Info("created snippet %q (id %d) from clipboard", name, id)
	return nil
}

// buildDiagnosticItem explains why no snippet rows are shown: a connection
// problem when the cache is empty, otherwise a no-match hint.
func (s *QueryService) buildDiagnosticItem() domain.ResultItem {
	if s.cache.Count() == 0 {
		subtitle := "Could not fetch snippets. Ensure massCode is running (default port 4321)."
		if lastErr := s.cache.LastError(); lastErr != "" {
			subtitle += " Error: " + lastErr
		}
		return domain.ResultItem{
			Title:    "massCode connection issue",
			Subtitle: subtitle,
			Kind:     domain.ResultKindDiagnostic,
		}
	}
	return domain.ResultItem{
		Title:    "No matching snippets",
		Subtitle: fmt.Sprintf("Try a broader term. Snippets loaded: %d.", s.cache.Count()),
		Kind:     domain.ResultKindDiagnostic,
	}
}
