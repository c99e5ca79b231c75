package list

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/massbar-labs/massbar-cli/internal/core/domain"
)

func testItems() []domain.ResultItem {
	return []domain.ResultItem{
		{Title: "Greeting", Subtitle: "Hello • plain_text — Inbox", Kind: domain.ResultKindSnippet},
		{Title: "Deploy script", Subtitle: "Main • shell — Ops", Kind: domain.ResultKindSnippet},
		{Title: "No matching snippets", Subtitle: "Try a broader term.", Kind: domain.ResultKindDiagnostic},
	}
}

func TestNewResultList(t *testing.T) {
	l := NewResultList(nil)

	assert.NotNil(t, l)
	assert.True(t, l.IsEmpty())
	assert.Equal(t, 0, l.Selected())
}

func TestResultList_SetItems(t *testing.T) {
	l := NewResultList(nil)
	l.SetSelected(0)

	l.SetItems(testItems())

	assert.Equal(t, 3, l.Count())
	assert.Equal(t, 0, l.Selected())
}

func TestResultList_SetItems_ResetsSelection(t *testing.T) {
	l := NewResultList(nil)
	l.SetItems(testItems())
	l.MoveDown()
	require.Equal(t, 1, l.Selected())

	l.SetItems(testItems()[:1])

	assert.Equal(t, 0, l.Selected())
}

func TestResultList_Navigation(t *testing.T) {
	l := NewResultList(nil)
	l.SetItems(testItems())

	l.MoveDown()
	assert.Equal(t, 1, l.Selected())

	l.MoveDown()
	l.MoveDown() // Clamped at the last item
	assert.Equal(t, 2, l.Selected())

	l.MoveUp()
	assert.Equal(t, 1, l.Selected())

	l.MoveUp()
	l.MoveUp() // Clamped at the first item
	assert.Equal(t, 0, l.Selected())
}

func TestResultList_Update_Keys(t *testing.T) {
	l := NewResultList(nil)
	l.SetItems(testItems())

	l, _ = l.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, l.Selected())

	l, _ = l.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, l.Selected())
}

func TestResultList_SelectedItem(t *testing.T) {
	l := NewResultList(nil)

	assert.Nil(t, l.SelectedItem())

	l.SetItems(testItems())
	l.MoveDown()

	item := l.SelectedItem()
	require.NotNil(t, item)
	assert.Equal(t, "Deploy script", item.Title)
}

func TestResultList_View_Empty(t *testing.T) {
	l := NewResultList(nil)

	assert.Contains(t, l.View(), "No results")
}

func TestResultList_View_ShowsTitlesAndSubtitles(t *testing.T) {
	l := NewResultList(nil)
	l.SetDimensions(80, 20)
	l.SetItems(testItems())

	view := l.View()

	assert.Contains(t, view, "Greeting")
	assert.Contains(t, view, "Hello • plain_text — Inbox")
	assert.Contains(t, view, "> ")
}

func TestResultList_View_TruncatesLongTitles(t *testing.T) {
	l := NewResultList(nil)
	l.SetDimensions(20, 20)
	l.SetItems([]domain.ResultItem{{
		Title: "a very long snippet title that cannot possibly fit",
		Kind:  domain.ResultKindSnippet,
	}})

	assert.Contains(t, l.View(), "...")
}

func TestResultList_SetSelected_OutOfRange(t *testing.T) {
	l := NewResultList(nil)
	l.SetItems(testItems())

	l.SetSelected(99)
	assert.Equal(t, 0, l.Selected())

	l.SetSelected(-1)
	assert.Equal(t, 0, l.Selected())
}
