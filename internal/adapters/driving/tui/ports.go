// Package tui provides the interactive terminal launcher for Massbar.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/massbar-labs/massbar-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Query searches the snippet library and builds result items.
	Query driving.QueryService

	// Settings provides the current launcher settings. Optional; the
	// status bar falls back to generic wording without it.
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(query driving.QueryService, settings driving.SettingsService) *Ports {
	return &Ports{
		Query:    query,
		Settings: settings,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Query == nil {
		return ErrMissingQueryService
	}
	return nil
}
