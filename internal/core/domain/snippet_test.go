package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnippet_FolderName(t *testing.T) {
	s := &Snippet{Folder: &Folder{ID: 1, Name: "Work"}}
	assert.Equal(t, "Work", s.FolderName())

	unfiled := &Snippet{}
	assert.Empty(t, unfiled.FolderName())
}

func TestFlatten(t *testing.T) {
	snippets := []Snippet{
		{
			ID:   1,
			Name: "first",
			Contents: []Content{
				{ID: 10, Label: "a"},
				{ID: 11, Label: "b"},
			},
		},
		{
			ID:       2,
			Name:     "second",
			Contents: []Content{{ID: 20, Label: "c"}},
		},
	}

	rows := Flatten(snippets)

	require.Len(t, rows, 3)
	// Snippet order then content order is preserved.
	assert.Equal(t, "a", rows[0].Content.Label)
	assert.Equal(t, "b", rows[1].Content.Label)
	assert.Equal(t, "c", rows[2].Content.Label)
	assert.Equal(t, "first", rows[0].Snippet.Name)
	assert.Equal(t, "second", rows[2].Snippet.Name)
}

func TestFlatten_SkipsDeleted(t *testing.T) {
	snippets := []Snippet{
		{ID: 1, Name: "kept", Contents: []Content{{ID: 10}}},
		{ID: 2, Name: "gone", IsDeleted: true, Contents: []Content{{ID: 20}}},
	}

	rows := Flatten(snippets)

	require.Len(t, rows, 1)
	assert.Equal(t, "kept", rows[0].Snippet.Name)
}

func TestFlatten_EmptyContents(t *testing.T) {
	snippets := []Snippet{{ID: 1, Name: "no fragments"}}

	assert.Empty(t, Flatten(snippets))
}

func TestFlatten_Empty(t *testing.T) {
	assert.Empty(t, Flatten(nil))
	assert.Empty(t, Flatten([]Snippet{}))
}
