package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"crossprobe/internal/adapters/tui/views"
	"crossprobe/internal/application"
)

// ViewState represents the current view
type ViewState int

const (
	ViewNotes ViewState = iota
	ViewEntities
	ViewHelp
)

// App is the main TUI application model
type App struct {
	session *application.Session

	state    ViewState
	notes    *views.NotesModel
	entities *views.EntitiesModel
	help     *views.HelpModel

	width  int
	height int
}

// NewApp creates the TUI application for one note and one session.
// The returned sink must be the session feedback machine's view.
func NewApp(session *application.Session, sink *views.StyleSink, noteText string) *App {
	return &App{
		session:  session,
		state:    ViewNotes,
		notes:    views.NewNotesModel(session, sink, noteText),
		entities: views.NewEntitiesModel(session),
		help:     views.NewHelpModel(),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.notes.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.notes.SetSize(msg.Width, msg.Height)
		a.entities.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	case views.SwitchToEntitiesMsg:
		a.state = ViewEntities
		return a, a.entities.Init()

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToNotesMsg:
		a.state = ViewNotes
		return a, nil
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewNotes:
		_, cmd = a.notes.Update(msg)
	case ViewEntities:
		_, cmd = a.entities.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewEntities:
		return a.entities.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.notes.View()
	}
}
