package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestNewSearchInput(t *testing.T) {
	s := NewSearchInput(nil)

	assert.NotNil(t, s)
	assert.Empty(t, s.Value())
}

func TestSearchInput_Update_Typing(t *testing.T) {
	s := NewSearchInput(nil)

	s, _ = s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'h', 'i'}})

	assert.Equal(t, "hi", s.Value())
}

func TestSearchInput_SetValue(t *testing.T) {
	s := NewSearchInput(nil)

	s.SetValue("%ops |go")

	assert.Equal(t, "%ops |go", s.Value())
}

func TestSearchInput_Reset(t *testing.T) {
	s := NewSearchInput(nil)
	s.SetValue("hello")

	s.Reset()

	assert.Empty(t, s.Value())
}

func TestSearchInput_SetWidth(t *testing.T) {
	s := NewSearchInput(nil)

	s.SetWidth(100)
	assert.Equal(t, 100, s.Width())

	// Narrow terminals clamp to a usable minimum.
	s.SetWidth(10)
	assert.Equal(t, 10, s.Width())
}

func TestSearchInput_Init(t *testing.T) {
	s := NewSearchInput(nil)

	assert.NotNil(t, s.Init())
}
