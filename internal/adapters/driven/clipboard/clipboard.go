// Package clipboard implements the Clipboard driven port over the system
// clipboard via github.com/atotto/clipboard.
package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/massbar-labs/massbar-cli/internal/core/domain"
	"github.com/massbar-labs/massbar-cli/internal/core/ports/driven"
)

// Ensure System implements the interface.
var _ driven.Clipboard = (*System)(nil)

// System is the real system clipboard.
type System struct{}

// New creates a system clipboard adapter.
func New() *System {
	return &System{}
}

// ReadText returns the current clipboard text.
func (*System) ReadText() (string, error) {
	if clipboard.Unsupported {
		return "", domain.ErrClipboardUnavailable
	}
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrClipboardUnavailable, err)
	}
	return text, nil
}

// WriteText replaces the clipboard contents with text.
func (*System) WriteText(text string) error {
	if clipboard.Unsupported {
		return domain.ErrClipboardUnavailable
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrClipboardUnavailable, err)
	}
	return nil
}
