package domain

import "context"

// ResultKind classifies a result item so hosts can choose presentation.
type ResultKind string

// Available result kinds.
const (
	// ResultKindSnippet is a matched (snippet, fragment) row.
	ResultKindSnippet ResultKind = "snippet"

	// ResultKindCreate offers to create a new snippet from the clipboard.
	ResultKindCreate ResultKind = "create"

	// ResultKindInfo is the static item shown for an empty search.
	ResultKindInfo ResultKind = "info"

	// ResultKindDiagnostic explains why no snippet rows are shown.
	ResultKindDiagnostic ResultKind = "diagnostic"
)

// ResultItem is one selectable entry returned to the host: a title, a
// subtitle, and the action to run when the user picks it. Items are
// transient; they are rebuilt on every query.
type ResultItem struct {
	// Title is the primary display line.
	Title string

	// Subtitle is the secondary display line.
	Subtitle string

	// Kind classifies the item.
	Kind ResultKind

	// Action runs when the item is invoked. Nil-safe via Invoke.
	Action func(ctx context.Context) error
}

// Invoke runs the bound action. Items without an action succeed trivially.
func (r ResultItem) Invoke(ctx context.Context) error {
	if r.Action == nil {
		return nil
	}
	return r.Action(ctx)
}
