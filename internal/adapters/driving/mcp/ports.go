package mcp

import (
	"github.com/massbar-labs/massbar-cli/internal/core/ports/driven"
	"github.com/massbar-labs/massbar-cli/internal/core/ports/driving"
)

// Ports aggregates the interfaces the MCP server needs.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Query searches the snippet library.
	Query driving.QueryService

	// Snippets accesses the massCode API for snippet creation.
	Snippets driven.SnippetAPI

	// Settings provides the current launcher settings.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Query == nil {
		return ErrMissingQueryService
	}
	// Snippets and Settings are optional; without them the create tool
	// and settings resource report unavailability per call.
	return nil
}
