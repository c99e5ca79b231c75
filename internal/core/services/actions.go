package services

import (
	"context"
	"fmt"
	"time"

	"github.com/massbar-labs/massbar-cli/internal/core/ports/driven"
	"github.com/massbar-labs/massbar-cli/internal/core/ports/driving"
	"github.com/massbar-labs/massbar-cli/internal/logger"
)

// Paste retry policy. Synthesized input is flaky right after a launcher
// window closes, so the first attempt waits for focus to return to the
// previous application and failed attempts are retried.
const (
	// PasteInitialDelay is the wait before the first paste attempt.
	PasteInitialDelay = 200 * time.Millisecond

	// PasteRetryDelay is the wait between paste attempts.
	PasteRetryDelay = 150 * time.Millisecond

	// PasteMaxAttempts is the total number of paste attempts.
	PasteMaxAttempts = 3
)

// Ensure ActionExecutor implements the interface.
var _ driving.ActionService = (*ActionExecutor)(nil)

// ActionExecutor copies snippet text to the clipboard and optionally
// synthesizes a paste keystroke into the previously focused window.
type ActionExecutor struct {
	clipboard driven.Clipboard
	injector  driven.KeyInjector

	initialDelay time.Duration
	retryDelay   time.Duration
	maxAttempts  int

	// dispatched signals test code that a background paste finished.
	// Nil outside tests.
	dispatched chan struct{}
}

// NewActionExecutor creates an action executor. The injector may be nil,
// in which case CopyAndPaste degrades to a plain copy.
func NewActionExecutor(clipboard driven.Clipboard, injector driven.KeyInjector) *ActionExecutor {
	return &ActionExecutor{
		clipboard:    clipboard,
		injector:     injector,
		initialDelay: PasteInitialDelay,
		retryDelay:   PasteRetryDelay,
		maxAttempts:  PasteMaxAttempts,
	}
}

// Copy writes text to the system clipboard.
func (e *ActionExecutor) Copy(_ context.Context, text string) error {
	if e.clipboard == nil {
		return fmt.Errorf("copy snippet: no clipboard available")
	}
	if err := e.clipboard.WriteText(text); err != nil {
		logger.Error("clipboard write failed: %v", err)
		return fmt.Errorf("copy snippet: %w", err)
	}
	return nil
}

// CopyAndPaste writes text to the clipboard and schedules a paste keystroke.
// The clipboard write fails fast; the paste runs on a background goroutine
// with retries and never reports back, as the copy already succeeded.
func (e *ActionExecutor) CopyAndPaste(ctx context.Context, text string) error {
	if err := e.Copy(ctx, text); err != nil {
		return err
	}

	if e.injector == nil {
		logger.Warn("paste requested but no key injector available; copied only")
		return nil
	}

	// Fire and forget: once scheduled, retries run to completion or
	// exhaustion regardless of subsequent queries. The background task
	// deliberately ignores the caller's context.
	go e.pasteWithRetry(context.Background())

	return nil
}

// pasteWithRetry attempts the paste keystroke up to maxAttempts times.
func (e *ActionExecutor) pasteWithRetry(ctx context.Context) {
	defer func() {
		if e.dispatched != nil {
			e.dispatched <- struct{}{}
		}
	}()

	time.Sleep(e.initialDelay)

	for attempt := 1; attempt <= e.maxAttempts; attempt++ {
		err := e.injector.Paste(ctx)
		if err == nil {
			logger.Debug("paste keystroke delivered (attempt %d)", attempt)
			return
		}
		logger.Error("paste keystroke attempt %d/%d failed: %v", attempt, e.maxAttempts, err)
		if attempt < e.maxAttempts {
			time.Sleep(e.retryDelay)
		}
	}
}
