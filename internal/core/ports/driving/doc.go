// Package driving defines the interfaces external actors use to call INTO
// the core.
//
// These are the "driving" or "primary" ports in hexagonal architecture.
// The TUI, CLI, and MCP adapters depend on these interfaces; core services
// implement them. A launcher host embedding Massbar consumes exactly this
// surface: QueryService for results, ActionService for invocation, and
// SettingsService for configuration.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or service package
package driving
