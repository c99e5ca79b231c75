// Package domain defines the core business entities for Massbar.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Snippet, Content, Tag, Folder: the massCode data model
//   - Row: one (snippet, fragment) pair, the unit of search and display
//   - Query, Prefixes: the parsed mini query language and its matcher
//   - PluginSettings: user-configurable behaviour
//   - ResultItem: a selectable entry with a bound action
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
