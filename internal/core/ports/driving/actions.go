package driving

import "context"

// ActionService executes the action bound to a snippet result.
type ActionService interface {
	// Copy writes text to the system clipboard.
	Copy(ctx context.Context, text string) error

	// CopyAndPaste writes text to the clipboard, then schedules a
	// fire-and-forget paste keystroke into the foreground application.
	// The returned error reflects only the clipboard write; paste
	// failures are logged, never propagated.
	CopyAndPaste(ctx context.Context, text string) error
}
