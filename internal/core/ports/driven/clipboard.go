package driven

// Clipboard reads and writes the system clipboard.
// The host process owns the real clipboard; this port keeps the core
// testable and platform-agnostic.
type Clipboard interface {
	// ReadText returns the current clipboard text. Empty string with a
	// nil error means the clipboard holds no text.
	ReadText() (string, error)

	// WriteText replaces the clipboard contents with text.
	WriteText(text string) error
}
