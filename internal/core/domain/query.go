package domain

import (
	"strings"
	"unicode/utf8"
)

// Prefixes holds the four single-character bucket prefixes used by the
// query language. Each is independently configurable.
type Prefixes struct {
	// Title scopes a term to the snippet name.
	Title rune

	// Text scopes a term to the fragment value.
	Text rune

	// Folder scopes a term to the folder name.
	Folder rune

	// Tag scopes a term to tag names.
	Tag rune
}

// DefaultPrefixes returns the default prefix characters.
func DefaultPrefixes() Prefixes {
	return Prefixes{Title: '!', Text: '#', Folder: '%', Tag: '|'}
}

// Query is the parsed representation of a search string: five unordered
// term buckets. Empty buckets impose no constraint.
type Query struct {
	// Generic terms must each match at least one searchable field.
	Generic []string

	// Title terms must all be contained in the snippet name.
	Title []string

	// Text terms must all be contained in the fragment value.
	Text []string

	// Folder terms must all be contained in the folder name.
	Folder []string

	// Tag terms must each match at least one tag name.
	Tag []string
}

// IsEmpty reports whether no bucket holds any term.
func (q Query) IsEmpty() bool {
	return len(q.Generic) == 0 && len(q.Title) == 0 && len(q.Text) == 0 &&
		len(q.Folder) == 0 && len(q.Tag) == 0
}

// ParseQuery tokenises a raw search string into prefix-scoped term buckets.
//
// The raw string is split on whitespace runs. A token whose first character
// matches a configured prefix contributes its remainder to that bucket; a
// token that is only a prefix character is dropped entirely. All other
// tokens land in the generic bucket.
//
// When two buckets are configured with the same prefix character, the first
// bucket in the fixed order title, text, folder, tag claims the token.
func ParseQuery(raw string, p Prefixes) Query {
	var q Query
	for _, token := range strings.Fields(raw) {
		first, _ := utf8.DecodeRuneInString(token)
		switch first {
		case p.Title:
			if rest := stripPrefix(token); rest != "" {
				q.Title = append(q.Title, rest)
			}
		case p.Text:
			if rest := stripPrefix(token); rest != "" {
				q.Text = append(q.Text, rest)
			}
		case p.Folder:
			if rest := stripPrefix(token); rest != "" {
				q.Folder = append(q.Folder, rest)
			}
		case p.Tag:
			if rest := stripPrefix(token); rest != "" {
				q.Tag = append(q.Tag, rest)
			}
		default:
			q.Generic = append(q.Generic, token)
		}
	}
	return q
}

// stripPrefix removes the single leading prefix character and trims the
// remainder. Returns "" when nothing usable is left.
func stripPrefix(token string) string {
	_, size := utf8.DecodeRuneInString(token)
	return strings.TrimSpace(token[size:])
}

// Matches evaluates the query against a row. All comparisons are
// case-insensitive substring containment. Buckets are independent required
// filters: a row passes only when every non-empty bucket is satisfied.
func (q Query) Matches(row Row) bool {
	name := row.Snippet.Name
	folder := row.Snippet.FolderName()

	for _, term := range q.Title {
		if !containsFold(name, term) {
			return false
		}
	}

	for _, term := range q.Folder {
		// An unfiled snippet cannot satisfy a folder term.
		if row.Snippet.Folder == nil || !containsFold(folder, term) {
			return false
		}
	}

	if len(q.Tag) > 0 {
		if len(row.Snippet.Tags) == 0 {
			return false
		}
		for _, term := range q.Tag {
			if !anyTagContains(row.Snippet.Tags, term) {
				return false
			}
		}
	}

	for _, term := range q.Text {
		if !containsFold(row.Content.Value, term) {
			return false
		}
	}

	for _, term := range q.Generic {
		if !q.genericMatch(row, term) {
			return false
		}
	}

	return true
}

// genericMatch checks one unscoped term against every searchable field
// (OR across fields).
func (q Query) genericMatch(row Row, term string) bool {
	return containsFold(row.Snippet.Name, term) ||
		containsFold(row.Content.Label, term) ||
		containsFold(row.Content.Language, term) ||
		containsFold(row.Snippet.FolderName(), term) ||
		containsFold(row.Content.Value, term) ||
		anyTagContains(row.Snippet.Tags, term)
}

func anyTagContains(tags []Tag, term string) bool {
	for _, tag := range tags {
		if containsFold(tag.Name, term) {
			return true
		}
	}
	return false
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
