// Package file provides the TOML-backed config store for Massbar.
// Settings live in ~/.massbar/config.toml; the store flattens TOML tables
// into dot-notation keys and can watch the file for external edits.
package file
