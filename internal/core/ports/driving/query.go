package driving

import (
	"context"

	"github.com/massbar-labs/massbar-cli/internal/core/domain"
)

// QueryService is the host-facing search entry point.
type QueryService interface {
	// Query parses the search string, refreshes the snippet cache if
	// stale, and returns the items to display. It never fails: fetch and
	// clipboard problems surface as diagnostic items, not errors.
	Query(ctx context.Context, search string) []domain.ResultItem
}
