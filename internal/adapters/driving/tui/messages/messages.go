// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/massbar-labs/massbar-cli/internal/core/domain"
)

// QueryCompleted carries result items back to the model.
type QueryCompleted struct {
	Search string
	Items  []domain.ResultItem
}

// ItemInvoked signals the outcome of invoking a result item.
type ItemInvoked struct {
	Item domain.ResultItem
	Err  error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
