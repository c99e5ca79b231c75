// Package list provides the result list component for the TUI.
package list

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/massbar-labs/massbar-cli/internal/adapters/driving/tui/styles"
	"github.com/massbar-labs/massbar-cli/internal/core/domain"
)

// ResultList displays result items in a navigable list.
type ResultList struct {
	items    []domain.ResultItem
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewResultList creates a new result list component.
func NewResultList(s *styles.Styles) *ResultList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &ResultList{
		items:    nil,
		selected: 0,
		styles:   s,
		width:    80,
		height:   20,
	}
}

// Init initialises the result list.
func (r *ResultList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (r *ResultList) Update(msg tea.Msg) (*ResultList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		//nolint:exhaustive // handling only relevant key types
		switch msg.Type {
		case tea.KeyUp:
			r.MoveUp()
		case tea.KeyDown:
			r.MoveDown()
		default:
		}
		switch msg.String() {
		case "ctrl+k":
			r.MoveUp()
		case "ctrl+j":
			r.MoveDown()
		}
	}
	return r, nil
}

// View renders the result list.
func (r *ResultList) View() string {
	if len(r.items) == 0 {
		return r.styles.Muted.Render("No results")
	}

	// Each item takes two lines (title + subtitle).
	visibleCount := (r.height - 2) / 2
	if visibleCount < 1 {
		visibleCount = 1
	}

	start := 0
	if r.selected >= visibleCount {
		start = r.selected - visibleCount + 1
	}
	end := start + visibleCount
	if end > len(r.items) {
		end = len(r.items)
	}

	lines := make([]string, 0, (end-start)*2)
	for i := start; i < end; i++ {
		lines = append(lines, r.renderItem(i, &r.items[i]))
	}

	return strings.Join(lines, "\n")
}

// renderItem formats a single result item as a title line and a subtitle
// line, styled by kind.
func (r *ResultList) renderItem(index int, item *domain.ResultItem) string {
	indicator := "  "
	if index == r.selected {
		indicator = "> "
	}

	title := item.Title
	maxLen := r.width - 4
	if maxLen < 10 {
		maxLen = 10
	}
	if len(title) > maxLen {
		title = title[:maxLen-3] + "..."
	}

	var titleLine string
	switch {
	case index == r.selected:
		titleLine = r.styles.Selected.Render(indicator + title)
	case item.Kind == domain.ResultKindDiagnostic:
		titleLine = r.styles.Error.Render(indicator + title)
	case item.Kind == domain.ResultKindCreate:
		titleLine = r.styles.Success.Render(indicator + title)
	default:
		titleLine = r.styles.Title.Render(indicator + title)
	}

	subtitle := item.Subtitle
	if len(subtitle) > maxLen {
		subtitle = subtitle[:maxLen-3] + "..."
	}
	subtitleLine := r.styles.Muted.Render("    " + subtitle)

	return titleLine + "\n" + subtitleLine
}

// SetItems replaces the list contents and resets the selection.
func (r *ResultList) SetItems(items []domain.ResultItem) {
	r.items = items
	r.selected = 0
}

// Items returns the current items.
func (r *ResultList) Items() []domain.ResultItem {
	return r.items
}

// Selected returns the index of the selected item.
func (r *ResultList) Selected() int {
	return r.selected
}

// SetSelected sets the selected index.
func (r *ResultList) SetSelected(index int) {
	if index >= 0 && index < len(r.items) {
		r.selected = index
	}
}

// SelectedItem returns the currently selected item, or nil if none.
func (r *ResultList) SelectedItem() *domain.ResultItem {
	if len(r.items) == 0 || r.selected < 0 || r.selected >= len(r.items) {
		return nil
	}
	return &r.items[r.selected]
}

// MoveUp moves selection up.
func (r *ResultList) MoveUp() {
	if r.selected > 0 {
		r.selected--
	}
}

// MoveDown moves selection down.
func (r *ResultList) MoveDown() {
	if r.selected < len(r.items)-1 {
		r.selected++
	}
}

// SetDimensions sets the component dimensions.
func (r *ResultList) SetDimensions(width, height int) {
	r.width = width
	r.height = height
}

// Count returns the number of items.
func (r *ResultList) Count() int {
	return len(r.items)
}

// IsEmpty returns whether the list is empty.
func (r *ResultList) IsEmpty() bool {
	return len(r.items) == 0
}
