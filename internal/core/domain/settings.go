package domain

import (
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultBaseURL is the massCode API endpoint used when none is configured.
const DefaultBaseURL = "http://localhost:4321"

// ActionMode selects what invoking a snippet result does.
type ActionMode string

// Available action modes.
const (
	// ActionModeCopy writes the snippet text to the clipboard.
	ActionModeCopy ActionMode = "copy"

	// ActionModePaste copies and then pastes into the foreground
	// application via a synthesized keystroke.
	ActionModePaste ActionMode = "paste"
)

// IsValid returns true if the action mode is recognised.
func (m ActionMode) IsValid() bool {
	switch m {
	case ActionModeCopy, ActionModePaste:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (m ActionMode) String() string {
	return string(m)
}

// Description returns a human-readable description of the mode.
func (m ActionMode) Description() string {
	switch m {
	case ActionModeCopy:
		return "Copy (clipboard only)"
	case ActionModePaste:
		return "Paste (copy + paste keystroke)"
	default:
		return "Unknown"
	}
}

// PluginSettings holds the user-configurable behaviour of the launcher.
// Values are published as immutable snapshots: consumers receive a copy and
// changes go through the settings service.
type PluginSettings struct {
	// BaseURL is the massCode API endpoint.
	BaseURL string

	// Action selects copy vs paste behaviour for snippet results.
	Action ActionMode

	// ExcludeFavorites drops favourite snippets from search results.
	ExcludeFavorites bool

	// Prefixes are the query-language bucket prefixes.
	Prefixes Prefixes
}

// DefaultPluginSettings returns settings with the documented defaults.
func DefaultPluginSettings() PluginSettings {
	return PluginSettings{
		BaseURL:  DefaultBaseURL,
		Action:   ActionModeCopy,
		Prefixes: DefaultPrefixes(),
	}
}

// Normalise replaces invalid fields with their defaults and returns the
// result: a blank or unparseable base URL falls back to DefaultBaseURL, an
// unknown action mode to copy, and each prefix that is not a single
// non-whitespace character to its default.
func (s PluginSettings) Normalise() PluginSettings {
	defaults := DefaultPluginSettings()

	if !validBaseURL(s.BaseURL) {
		s.BaseURL = defaults.BaseURL
	}
	if !s.Action.IsValid() {
		s.Action = defaults.Action
	}
	s.Prefixes.Title = normalisePrefix(s.Prefixes.Title, defaults.Prefixes.Title)
	s.Prefixes.Text = normalisePrefix(s.Prefixes.Text, defaults.Prefixes.Text)
	s.Prefixes.Folder = normalisePrefix(s.Prefixes.Folder, defaults.Prefixes.Folder)
	s.Prefixes.Tag = normalisePrefix(s.Prefixes.Tag, defaults.Prefixes.Tag)

	return s
}

func validBaseURL(raw string) bool {
	if strings.TrimSpace(raw) == "" {
		return false
	}
	u, err := url.Parse(raw)
	return err == nil && u.Scheme != "" && u.Host != ""
}

func normalisePrefix(r, fallback rune) rune {
	if r == 0 || r == utf8.RuneError || unicode.IsSpace(r) {
		return fallback
	}
	return r
}

// PrefixFromString extracts a prefix character from a stored setting value.
// Only the first character counts; blank input yields 0 so Normalise can
// apply the default.
func PrefixFromString(s string) rune {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r
}
