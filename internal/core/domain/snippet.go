package domain

// Snippet is a named unit of reusable text fetched from the massCode API.
// A snippet owns its content fragments for the lifetime of one cache
// generation; tags and the folder are weak references shared across snippets.
type Snippet struct {
	// ID is the identifier assigned by the massCode API.
	ID int

	// Name is the display name. May be empty.
	Name string

	// Description is an optional free-text description.
	Description string

	// Tags are the tag references attached to the snippet, in API order.
	Tags []Tag

	// Folder is the owning folder, or nil when the snippet is unfiled.
	Folder *Folder

	// Contents are the snippet's fragments, in API order. Never shared.
	Contents []Content

	// IsFavorite marks the snippet as a favourite in massCode.
	IsFavorite bool

	// IsDeleted marks the snippet as soft-deleted. Deleted snippets are
	// never shown.
	IsDeleted bool

	// CreatedAt is the creation instant in epoch milliseconds.
	CreatedAt int64

	// UpdatedAt is the last-modified instant in epoch milliseconds.
	UpdatedAt int64
}

// Content is one labelled, language-tagged block of text belonging to
// exactly one snippet.
type Content struct {
	// ID is the identifier assigned by the massCode API.
	ID int

	// Label names the fragment within its snippet.
	Label string

	// Language is the massCode language identifier (e.g. "plain_text").
	Language string

	// Value is the fragment text.
	Value string
}

// Tag is a display label referenced by snippets.
type Tag struct {
	ID   int
	Name string
}

// Folder groups snippets. A folder may be referenced by many snippets.
type Folder struct {
	ID   int
	Name string
}

// Row is one (snippet, fragment) pair: the unit of search and display.
// Rows are recomputed on every query and never persisted.
type Row struct {
	Snippet *Snippet
	Content *Content
}

// FolderName returns the snippet's folder name, or empty when unfiled.
func (s *Snippet) FolderName() string {
	if s.Folder == nil {
		return ""
	}
	return s.Folder.Name
}

// Flatten expands every non-deleted snippet's content list into rows,
// preserving snippet order then content order.
func Flatten(snippets []Snippet) []Row {
	var rows []Row
	for i := range snippets {
		s := &snippets[i]
		if s.IsDeleted {
			continue
		}
		for j := range s.Contents {
			rows = append(rows, Row{Snippet: s, Content: &s.Contents[j]})
		}
	}
	return rows
}
