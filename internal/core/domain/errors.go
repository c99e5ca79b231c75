package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrClipboardEmpty indicates the clipboard holds no usable text.
	ErrClipboardEmpty = errors.New("clipboard is empty")

	// ErrClipboardUnavailable indicates the system clipboard could not be
	// reached. Copy actions fail with this; the query path only logs it.
	ErrClipboardUnavailable = errors.New("clipboard unavailable")

	// ErrInjectionUnavailable indicates no keystroke-injection mechanism
	// exists on this platform. Paste mode degrades to copy.
	ErrInjectionUnavailable = errors.New("keystroke injection unavailable")

	// ErrNoSnippetID indicates the create-snippet call returned no usable
	// identifier, so the content fragment was not created.
	ErrNoSnippetID = errors.New("create snippet returned no id")
)
