// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - SnippetAPI: the massCode HTTP protocol
//   - ConfigStore: persisted per-install settings
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - Clipboard: without it, copy actions and the create affordance are disabled
//   - KeyInjector: without it, paste mode degrades to copy
//   - ConfigWatcher: without it, external config edits need a restart
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
