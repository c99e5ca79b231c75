// Package input implements the KeyInjector driven port by shelling out to
// the platform's input-synthesis tool. There is no portable Go API for
// synthetic keystrokes, so the adapter follows the same per-OS command
// dispatch used for clipboard fallbacks.
package input

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"

	"github.com/massbar-labs/massbar-cli/internal/core/domain"
	"github.com/massbar-labs/massbar-cli/internal/core/ports/driven"
)

// Operating system identifiers.
const (
	osDarwin  = "darwin"
	osLinux   = "linux"
	osWindows = "windows"
)

// Ensure Injector implements the interface.
var _ driven.KeyInjector = (*Injector)(nil)

// Injector synthesizes the paste key chord via an external tool:
// osascript on macOS, wtype or xdotool on Linux, SendKeys on Windows.
type Injector struct {
	// lookPath is swappable for tests.
	lookPath func(file string) (string, error)
}

// New creates a key injector for the current platform.
func New() *Injector {
	return &Injector{lookPath: exec.LookPath}
}

// Paste sends the platform's paste chord to the focused window.
func (i *Injector) Paste(ctx context.Context) error {
	cmd, err := i.pasteCommand(ctx)
	if err != nil {
		return err
	}
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%w: %v (%s)", domain.ErrInjectionUnavailable, err, out)
	}
	return nil
}

// pasteCommand builds the per-OS command that synthesizes the keystroke.
func (i *Injector) pasteCommand(ctx context.Context) (*exec.Cmd, error) {
	switch runtime.GOOS {
	case osDarwin:
		script := `tell application "System Events" to keystroke "v" using command down`
		return exec.CommandContext(ctx, "osascript", "-e", script), nil

	case osLinux:
		// Prefer wtype (Wayland), fall back to xdotool (X11).
		if _, err := i.lookPath("wtype"); err == nil {
			return exec.CommandContext(ctx, "wtype", "-M", "ctrl", "v", "-m", "ctrl"), nil
		}
		if _, err := i.lookPath("xdotool"); err == nil {
			return exec.CommandContext(ctx, "xdotool", "key", "--clearmodifiers", "ctrl+v"), nil
		}
		return nil, fmt.Errorf("%w: install wtype or xdotool", domain.ErrInjectionUnavailable)

	case osWindows:
		script := `$w = New-Object -ComObject WScript.Shell; $w.SendKeys('^v')`
		return exec.CommandContext(ctx, "powershell", "-NoProfile", "-Command", script), nil

	default:
		return nil, fmt.Errorf("%w: unsupported platform %s", domain.ErrInjectionUnavailable, runtime.GOOS)
	}
}
