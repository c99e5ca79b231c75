package driven

import "context"

// KeyInjector synthesizes a paste key combination in the foreground
// application. Implementations talk to the OS input layer; the core only
// schedules and retries.
type KeyInjector interface {
	// Paste sends the platform's paste chord (ctrl+v / cmd+v) to the
	// currently focused window. An error means the OS input layer did
	// not fully accept the synthesized input.
	Paste(ctx context.Context) error
}
