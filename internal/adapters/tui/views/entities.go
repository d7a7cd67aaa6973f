package views

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"crossprobe/internal/adapters/tui/styles"
	"crossprobe/internal/application"
	"crossprobe/internal/domain"
)

// EntitiesKeyMap defines key bindings for the entity browser
type EntitiesKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Highlight key.Binding
	Yank      key.Binding
	Back      key.Binding
}

var EntitiesKeys = EntitiesKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "ctrl+p"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "ctrl+n"),
		key.WithHelp("↓", "down"),
	),
	Highlight: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "highlight"),
	),
	Yank: key.NewBinding(
		key.WithKeys("ctrl+y"),
		key.WithHelp("ctrl+y", "copy name"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
}

type entityRow struct {
	kind domain.EntityKind
	name string
}

// EntitiesModel browses the design database entities by name.
type EntitiesModel struct {
	session *application.Session
	input   textinput.Model

	all      []entityRow
	filtered []entityRow
	cursor   int

	message    string
	messageErr bool
	width      int
	height     int
}

// NewEntitiesModel creates the entity browser
func NewEntitiesModel(session *application.Session) *EntitiesModel {
	input := textinput.New()
	input.Placeholder = "Filter..."
	input.Focus()

	return &EntitiesModel{
		session: session,
		input:   input,
	}
}

// Init loads the entity lists
func (m *EntitiesModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.load)
}

func (m *EntitiesModel) load() tea.Msg {
	var rows []entityRow

	components, err := m.session.Board.ListComponents()
	if err != nil {
		return errMsg{err}
	}
	for _, ref := range components {
		rows = append(rows, entityRow{kind: domain.KindComponent, name: ref.Name})
	}

	nets, err := m.session.Board.ListNets()
	if err != nil {
		return errMsg{err}
	}
	for _, ref := range nets {
		rows = append(rows, entityRow{kind: domain.KindNet, name: ref.Name})
	}

	return entitiesLoadedMsg{rows}
}

type entitiesLoadedMsg struct {
	rows []entityRow
}

// Update handles messages for the entity browser
func (m *EntitiesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case entitiesLoadedMsg:
		m.all = msg.rows
		m.applyFilter()
		return m, nil

	case errMsg:
		m.message = msg.err.Error()
		m.messageErr = true
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, EntitiesKeys.Back):
			return m, func() tea.Msg { return SwitchToNotesMsg{} }

		case key.Matches(msg, EntitiesKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, EntitiesKeys.Down):
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, EntitiesKeys.Highlight):
			m.highlightSelected()
			return m, nil

		case key.Matches(msg, EntitiesKeys.Yank):
			if row, ok := m.selected(); ok {
				clipboard.WriteAll(row.name)
				m.message = fmt.Sprintf("copied %s", row.name)
				m.messageErr = false
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.applyFilter()
	return m, cmd
}

func (m *EntitiesModel) selected() (entityRow, bool) {
	if m.cursor < 0 || m.cursor >= len(m.filtered) {
		return entityRow{}, false
	}
	return m.filtered[m.cursor], true
}

func (m *EntitiesModel) highlightSelected() {
	row, ok := m.selected()
	if !ok {
		return
	}
	res := m.session.Resolver.Resolve(domain.Token{Name: row.name, Kind: row.kind})
	if !res.Found {
		m.message = fmt.Sprintf("%s not in cache, refresh first", row.name)
		m.messageErr = true
		return
	}
	outcome := m.session.Highlighter.Highlight(res.Record)
	if outcome == domain.HighlightUnavailable {
		m.message = fmt.Sprintf("%s: host canvas unavailable", row.name)
		m.messageErr = true
		return
	}
	m.message = fmt.Sprintf("%s %s highlighted (%s)", row.kind, row.name, outcome)
	m.messageErr = false
}

func (m *EntitiesModel) applyFilter() {
	query := strings.ToLower(m.input.Value())
	m.filtered = m.filtered[:0]
	for _, row := range m.all {
		if query == "" || strings.Contains(strings.ToLower(row.name), query) {
			m.filtered = append(m.filtered, row)
		}
	}
	if m.cursor >= len(m.filtered) {
		m.cursor = len(m.filtered) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// View renders the entity browser
func (m *EntitiesModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Design Entities"))
	b.WriteString("\n\n")

	b.WriteString(styles.InputFocused.Render(m.input.View()))
	b.WriteString("\n\n")

	if len(m.filtered) == 0 {
		b.WriteString(styles.MutedText.Render("No entities"))
		b.WriteString("\n")
	} else {
		// Show max 15 rows around the cursor
		start := 0
		if m.cursor > 14 {
			start = m.cursor - 14
		}
		end := start + 15
		if end > len(m.filtered) {
			end = len(m.filtered)
		}
		for i := start; i < end; i++ {
			row := m.filtered[i]
			line := fmt.Sprintf("[%-9s] %s", row.kind, row.name)
			if i == m.cursor {
				line = styles.Selected.Render(line)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
		if rest := len(m.filtered) - end; rest > 0 {
			b.WriteString(styles.MutedText.Render(fmt.Sprintf("... and %d more", rest)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	if m.message != "" {
		b.WriteString(RenderMessage(m.message, m.messageErr))
		b.WriteString("\n\n")
	}

	b.WriteString(RenderHelpLine(
		EntitiesKeys.Up, EntitiesKeys.Down, EntitiesKeys.Highlight,
		EntitiesKeys.Yank, EntitiesKeys.Back,
	))

	return styles.App.Render(b.String())
}

// SetSize updates the view dimensions
func (m *EntitiesModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}
