// Package services implements the driving port interfaces.
// Services contain the core business logic: the snippet cache with its
// refresh-on-stale discipline, the result builder, the action executor,
// and the settings service. They orchestrate calls to driven ports
// (adapters) and never touch HTTP, the clipboard, or the OS input layer
// directly.
package services
