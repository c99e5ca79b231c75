package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/massbar-labs/massbar-cli/internal/adapters/driving/tui/components/input"
	"github.com/massbar-labs/massbar-cli/internal/adapters/driving/tui/components/list"
	"github.com/massbar-labs/massbar-cli/internal/adapters/driving/tui/components/status"
	"github.com/massbar-labs/massbar-cli/internal/adapters/driving/tui/keymap"
	"github.com/massbar-labs/massbar-cli/internal/adapters/driving/tui/messages"
	"github.com/massbar-labs/massbar-cli/internal/adapters/driving/tui/styles"
	"github.com/massbar-labs/massbar-cli/internal/core/domain"
)

// App is the launcher TUI following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// keymap holds the keybindings.
	keymap *keymap.KeyMap

	// searchInput is the search box component.
	searchInput *input.SearchInput

	// resultList is the result list component.
	resultList *list.ResultList

	// statusBar is the bottom status bar component.
	statusBar *status.Bar

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new launcher TUI with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		keymap:      km,
		searchInput: input.NewSearchInput(s),
		resultList:  list.NewResultList(s),
		statusBar:   status.NewBar(s, km),
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("Massbar"),
		a.searchInput.Init(),
		a.queryCmd(""),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.searchInput.SetWidth(msg.Width)
		a.resultList.SetDimensions(msg.Width, msg.Height-6)
		a.statusBar.SetWidth(msg.Width)
		return a, nil

	case tea.KeyMsg:
		return a.updateKey(msg)

	case messages.QueryCompleted:
		// Stale results from a superseded keystroke are dropped.
		if msg.Search != a.searchInput.Value() {
			return a, nil
		}
		a.resultList.SetItems(msg.Items)
		a.statusBar.SetState(status.StateReady)
		a.statusBar.SetResultCount(len(msg.Items))
		return a, nil

	case messages.ItemInvoked:
		if msg.Err != nil {
			a.err = msg.Err
			a.statusBar.SetState(status.StateError)
			a.statusBar.SetMessage(msg.Err.Error())
			return a, nil
		}
		a.statusBar.SetState(status.StateInvoked)
		a.statusBar.SetMessage(a.invokedMessage(msg.Item))
		return a, nil

	case messages.ErrorOccurred:
		a.err = msg.Err
		a.statusBar.SetState(status.StateError)
		a.statusBar.SetMessage(msg.Err.Error())
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	return a, nil
}

// updateKey routes keystrokes: navigation and invocation go to the list,
// everything else edits the search box and reruns the query.
func (a *App) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keyStr := msg.String()

	switch {
	case keymap.Matches(keyStr, a.keymap.Quit):
		return a, tea.Quit

	case keymap.Matches(keyStr, a.keymap.Clear):
		if a.searchInput.Value() == "" {
			return a, tea.Quit
		}
		a.searchInput.Reset()
		return a, a.queryCmd("")

	case keymap.Matches(keyStr, a.keymap.Up), keymap.Matches(keyStr, a.keymap.Down):
		a.resultList, _ = a.resultList.Update(msg)
		return a, nil

	case keymap.Matches(keyStr, a.keymap.Invoke):
		return a, a.invokeCmd()
	}

	before := a.searchInput.Value()
	var cmd tea.Cmd
	a.searchInput, cmd = a.searchInput.Update(msg)
	after := a.searchInput.Value()

	if after != before {
		return a, tea.Batch(cmd, a.queryCmd(after))
	}
	return a, cmd
}

// queryCmd runs the query off the update loop and reports back.
func (a *App) queryCmd(search string) tea.Cmd {
	return func() tea.Msg {
		return messages.QueryCompleted{
			Search: search,
			Items:  a.ports.Query.Query(a.ctx, search),
		}
	}
}

// invokeCmd invokes the selected item's action. Informational items have
// no action and are skipped.
func (a *App) invokeCmd() tea.Cmd {
	item := a.resultList.SelectedItem()
	if item == nil {
		return nil
	}
	if item.Kind == domain.ResultKindInfo || item.Kind == domain.ResultKindDiagnostic {
		return nil
	}

	invoked := *item
	return func() tea.Msg {
		return messages.ItemInvoked{
			Item: invoked,
			Err:  invoked.Invoke(a.ctx),
		}
	}
}

// invokedMessage describes a successful invocation for the status bar.
func (a *App) invokedMessage(item domain.ResultItem) string {
	if item.Kind == domain.ResultKindCreate {
		return "Snippet created"
	}

	if a.ports.Settings != nil && a.ports.Settings.Get().Action == domain.ActionModePaste {
		return "Pasted: " + item.Title
	}
	return "Copied: " + item.Title
}

// View implements tea.Model.
// It renders the launcher as a single vertical layout.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	header := a.styles.Title.Render("Massbar") +
		a.styles.Muted.Render("  massCode snippet launcher")

	return header + "\n" +
		a.searchInput.View() + "\n" +
		a.resultList.View() + "\n" +
		a.statusBar.View()
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Search returns the current search string.
func (a *App) Search() string {
	return a.searchInput.Value()
}

// Items returns the current result items.
func (a *App) Items() []domain.ResultItem {
	return a.resultList.Items()
}

// SelectedIndex returns the currently selected result index.
func (a *App) SelectedIndex() int {
	return a.resultList.Selected()
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.searchInput.SetWidth(width)
	a.resultList.SetDimensions(width, height-6)
	a.statusBar.SetWidth(width)
}
