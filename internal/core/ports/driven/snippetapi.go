package driven

import (
	"context"

	"github.com/massbar-labs/massbar-cli/internal/core/domain"
)

// SnippetAPI is the outbound protocol against the local massCode service.
// Implementations are stateless wrappers over one HTTP connection pool; a
// base-URL change means constructing a fresh client.
type SnippetAPI interface {
	// ListSnippets fetches the server's undeleted snippets. Favourite
	// exclusion is applied client-side after decoding; the remote filter
	// is not trusted.
	ListSnippets(ctx context.Context, excludeFavorites bool) ([]domain.Snippet, error)

	// CreateSnippet creates an empty snippet and returns its id, or 0
	// when the response carries no usable id.
	CreateSnippet(ctx context.Context, name string, folderID *int) (int, error)

	// CreateContent adds a content fragment to the snippet with the
	// given id and returns the fragment id.
	CreateContent(ctx context.Context, snippetID int, label, language, value string) (int, error)
}
