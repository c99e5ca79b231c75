// Package mcp provides an MCP (Model Context Protocol) server adapter for
// Massbar. It lets AI assistants like Claude search and create massCode
// snippets.
package mcp

import "errors"

// ErrMissingQueryService is returned when the query service is not provided.
var ErrMissingQueryService = errors.New("mcp: query service is required")
