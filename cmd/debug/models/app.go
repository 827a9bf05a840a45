package models

import (
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/log"

	"github.com/VoidMesh/caves/internal/caves"
	"github.com/VoidMesh/caves/services/cave"
)

// ViewType represents the different views in the debug tool
type ViewType int

const (
	MenuView ViewType = iota
	CaveExplorerView
	LibraryView

	viewCount
)

// App is the main application model
type App struct {
	manager *caves.Manager

	// Current state
	currentView ViewType
	width       int
	height      int

	// View models
	menu     MenuModel
	explorer CaveExplorerModel
	library  LibraryModel

	// UI state
	showHelp bool
}

// NewApp creates a new application instance
func NewApp(manager *caves.Manager, generator *cave.Service, seed string, startView string) *App {
	app := &App{
		manager:     manager,
		currentView: MenuView,
	}

	app.menu = NewMenuModel()
	app.explorer = NewCaveExplorerModel(generator, manager, seed)
	app.library = NewLibraryModel(manager)

	switch startView {
	case "explorer":
		app.currentView = CaveExplorerView
	case "library":
		app.currentView = LibraryView
	default:
		app.currentView = MenuView
	}

	return app
}

// Init initializes the application
func (m *App) Init() tea.Cmd {
	log.Debug("Initializing debug tool")
	return m.getCurrentViewModel().Init()
}

// Update handles messages and updates the application state
func (m *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		m.menu.SetSize(msg.Width, msg.Height)
		m.explorer.SetSize(msg.Width, msg.Height)
		m.library.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.currentView == MenuView {
				return m, tea.Quit
			}
			m.currentView = MenuView
			return m, m.menu.Init()

		case "?":
			m.showHelp = !m.showHelp
			return m, nil

		case "tab":
			m.currentView = (m.currentView + 1) % viewCount
			return m, m.getCurrentViewModel().Init()
		}

	case SwitchViewMsg:
		m.currentView = msg.View
		return m, m.getCurrentViewModel().Init()

	case OpenInExplorerMsg:
		m.explorer.Show(msg.Result)
		m.currentView = CaveExplorerView
		return m, nil
	}

	if m.showHelp {
		return m, nil
	}

	// Route message to current view
	var cmd tea.Cmd
	switch m.currentView {
	case MenuView:
		newModel, c := m.menu.Update(msg)
		m.menu = newModel.(MenuModel)
		cmd = c
	case CaveExplorerView:
		newModel, c := m.explorer.Update(msg)
		m.explorer = newModel.(CaveExplorerModel)
		cmd = c
	case LibraryView:
		newModel, c := m.library.Update(msg)
		m.library = newModel.(LibraryModel)
		cmd = c
	}

	return m, cmd
}

// View renders the application
func (m *App) View() string {
	if m.showHelp {
		return m.renderHelp()
	}

	switch m.currentView {
	case MenuView:
		return m.menu.View()
	case CaveExplorerView:
		return m.explorer.View()
	case LibraryView:
		return m.library.View()
	}

	return "Unknown view"
}

func (m *App) getCurrentViewModel() tea.Model {
	switch m.currentView {
	case CaveExplorerView:
		return m.explorer
	case LibraryView:
		return m.library
	}
	return m.menu
}

func (m *App) renderHelp() string {
	return `
┌─ VoidMesh Caves Debug Tool - Help ──────────────────┐
│                                                      │
│ Global Keys:                                         │
│   q, Ctrl+C    Quit (from menu) / Back to menu       │
│   ?            Toggle this help                      │
│   Tab          Cycle through views                   │
│                                                      │
│ Explorer:                                            │
│   r            New random seed                       │
│   + / -        Raise / lower threshold               │
│   [ / ]        Zoom noise scale out / in             │
│   s            Toggle smoothing                      │
│   c            Toggle connecting regions             │
│   b            Switch noise backend                  │
│   v            Toggle cave carving                   │
│   w            Save cave to the library              │
│   Arrow keys   Pan the view                          │
│                                                      │
│ Library:                                             │
│   ↑/↓ Enter    Pick a cave / open it                 │
│   d            Delete   x  Verify   r  Refresh       │
│                                                      │
│ Press ? again to close this help                     │
└──────────────────────────────────────────────────────┘
`
}

// SwitchViewMsg is a message to switch views
type SwitchViewMsg struct {
	View ViewType
}

// NewSwitchViewMsg creates a new switch view message
func NewSwitchViewMsg(view ViewType) SwitchViewMsg {
	return SwitchViewMsg{View: view}
}

// OpenInExplorerMsg shows a regenerated library cave in the explorer.
type OpenInExplorerMsg struct {
	Result *cave.Result
}
