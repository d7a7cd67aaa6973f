package views

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"crossprobe/internal/adapters/tui/styles"
	"crossprobe/internal/application"
	"crossprobe/internal/application/commands"
	"crossprobe/internal/domain"
)

// NotesKeyMap defines key bindings for the notes view
type NotesKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	NextToken key.Binding
	PrevToken key.Binding
	Probe     key.Binding
	Refresh   key.Binding
	Clear     key.Binding
	Yank      key.Binding
	Info      key.Binding
	Entities  key.Binding
	Help      key.Binding
	Quit      key.Binding
}

var NotesKeys = NotesKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "left"),
	),
	Right: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "right"),
	),
	NextToken: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next ref"),
	),
	PrevToken: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "prev ref"),
	),
	Probe: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "probe"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh cache"),
	),
	Clear: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "clear"),
	),
	Yank: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy name"),
	),
	Info: key.NewBinding(
		key.WithKeys("i"),
		key.WithHelp("i", "info"),
	),
	Entities: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "entities"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// NotesModel is the note probing view: it renders the note text and
// cross-probes the reference under the cursor.
type NotesModel struct {
	session *application.Session
	sink    *StyleSink

	text   string
	tokens []domain.Token
	cursor int

	message    string
	messageErr bool
	width      int
	height     int
}

// NewNotesModel creates the notes view for a loaded note.
func NewNotesModel(session *application.Session, sink *StyleSink, text string) *NotesModel {
	return &NotesModel{
		session: session,
		sink:    sink,
		text:    text,
		tokens:  domain.ScanAll(session.ScanCfg, text),
	}
}

// Init initializes the notes view
func (m *NotesModel) Init() tea.Cmd {
	return m.refresh
}

func (m *NotesModel) refresh() tea.Msg {
	stats, err := commands.NewRefreshCommand(m.session.Cache).Execute(context.Background())
	if err != nil {
		return errMsg{err}
	}
	return refreshedMsg{stats}
}

type refreshedMsg struct {
	stats *domain.RefreshStats
}

type errMsg struct {
	err error
}

// settledMsg repaints the status line once the settle dwell elapsed
type settledMsg struct{}

// Update handles messages for the notes view
func (m *NotesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case refreshedMsg:
		m.message = fmt.Sprintf("cache generation %d: %d components, %d nets",
			msg.stats.Generation, msg.stats.Components, msg.stats.Nets)
		m.messageErr = false
		return m, nil

	case errMsg:
		m.message = msg.err.Error()
		m.messageErr = true
		return m, nil

	case settledMsg:
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *NotesModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, NotesKeys.Quit):
		m.session.Close()
		return m, tea.Quit

	case key.Matches(msg, NotesKeys.Left):
		m.moveCursor(-1)
		return m, nil

	case key.Matches(msg, NotesKeys.Right):
		m.moveCursor(1)
		return m, nil

	case key.Matches(msg, NotesKeys.Up):
		m.moveLine(-1)
		return m, nil

	case key.Matches(msg, NotesKeys.Down):
		m.moveLine(1)
		return m, nil

	case key.Matches(msg, NotesKeys.NextToken):
		m.jumpToken(1)
		return m, nil

	case key.Matches(msg, NotesKeys.PrevToken):
		m.jumpToken(-1)
		return m, nil

	case key.Matches(msg, NotesKeys.Probe):
		return m, m.probe()

	case key.Matches(msg, NotesKeys.Refresh):
		return m, m.refresh

	case key.Matches(msg, NotesKeys.Clear):
		commands.NewClearCommand(m.session.Highlighter, m.session.Feedback).Execute(context.Background())
		m.message = "cleared"
		m.messageErr = false
		return m, nil

	case key.Matches(msg, NotesKeys.Yank):
		if tok, ok := domain.Scan(m.session.ScanCfg, m.text, m.cursor); ok {
			clipboard.WriteAll(tok.Name)
			m.message = fmt.Sprintf("copied %s", tok.Name)
			m.messageErr = false
		}
		return m, nil

	case key.Matches(msg, NotesKeys.Info):
		return m, m.info()

	case key.Matches(msg, NotesKeys.Entities):
		return m, func() tea.Msg { return SwitchToEntitiesMsg{} }

	case key.Matches(msg, NotesKeys.Help):
		return m, func() tea.Msg { return SwitchToHelpMsg{} }
	}

	return m, nil
}

func (m *NotesModel) probe() tea.Cmd {
	cmd := commands.NewProbeCommand(
		m.session.ScanCfg, m.session.Resolver, m.session.Highlighter, m.session.Feedback,
		m.text, m.cursor)
	result, err := cmd.Execute(context.Background())
	if err != nil {
		m.message = err.Error()
		m.messageErr = true
		return nil
	}

	switch {
	case result.Token == nil:
		m.message = "no reference here"
		m.messageErr = false
		return nil
	case !result.Resolution.Found:
		m.message = fmt.Sprintf("%s: %s not found", result.Token.Name, result.Resolution.Kind)
		m.messageErr = true
	case result.Outcome == domain.HighlightUnavailable:
		m.message = fmt.Sprintf("%s: host canvas unavailable", result.Token.Name)
		m.messageErr = true
	default:
		m.message = fmt.Sprintf("%s: %s highlighted (%s)",
			result.Token.Name, result.Resolution.Kind, result.Outcome)
		m.messageErr = false
	}

	// Repaint once the settle dwell has passed so the status reflects it.
	return tea.Tick(application.DefaultSettleDelay+100*time.Millisecond, func(time.Time) tea.Msg {
		return settledMsg{}
	})
}

func (m *NotesModel) info() tea.Cmd {
	tok, ok := domain.Scan(m.session.ScanCfg, m.text, m.cursor)
	if !ok {
		m.message = "no reference here"
		m.messageErr = false
		return nil
	}
	report, err := commands.NewInfoCommand(m.session.Board, m.session.Cache, tok.Name).Execute(context.Background())
	if err != nil {
		m.message = err.Error()
		m.messageErr = true
		return nil
	}
	m.message = strings.ReplaceAll(report, "\n", " · ")
	m.messageErr = false
	return nil
}

func (m *NotesModel) moveCursor(dir int) {
	if dir > 0 {
		if m.cursor < len(m.text) {
			_, size := utf8.DecodeRuneInString(m.text[m.cursor:])
			m.cursor += size
		}
		if m.cursor >= len(m.text) && len(m.text) > 0 {
			m.cursor = len(m.text) - 1
		}
		return
	}
	if m.cursor > 0 {
		_, size := utf8.DecodeLastRuneInString(m.text[:m.cursor])
		m.cursor -= size
	}
}

func (m *NotesModel) moveLine(dir int) {
	lineStart := strings.LastIndexByte(m.text[:m.cursor], '\n') + 1
	col := m.cursor - lineStart

	if dir > 0 {
		next := strings.IndexByte(m.text[m.cursor:], '\n')
		if next < 0 {
			return
		}
		targetStart := m.cursor + next + 1
		m.cursor = clampToLine(m.text, targetStart, col)
		return
	}

	if lineStart == 0 {
		return
	}
	prevStart := strings.LastIndexByte(m.text[:lineStart-1], '\n') + 1
	m.cursor = clampToLine(m.text, prevStart, col)
}

func clampToLine(text string, lineStart, col int) int {
	lineEnd := strings.IndexByte(text[lineStart:], '\n')
	if lineEnd < 0 {
		lineEnd = len(text) - lineStart
	}
	if col > lineEnd {
		col = lineEnd
	}
	pos := lineStart + col
	if pos >= len(text) && len(text) > 0 {
		pos = len(text) - 1
	}
	return pos
}

func (m *NotesModel) jumpToken(dir int) {
	if len(m.tokens) == 0 {
		return
	}
	if dir > 0 {
		for _, t := range m.tokens {
			if t.Span.Start > m.cursor {
				m.cursor = t.Span.Start
				return
			}
		}
		m.cursor = m.tokens[0].Span.Start
		return
	}
	for i := len(m.tokens) - 1; i >= 0; i-- {
		if t := m.tokens[i]; t.Span.End <= m.cursor {
			m.cursor = t.Span.Start
			return
		}
	}
	m.cursor = m.tokens[len(m.tokens)-1].Span.Start
}

// View renders the notes view
func (m *NotesModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Cross-Probe Notes"))
	b.WriteString("\n\n")

	b.WriteString(RenderNote(m.text, m.tokens, m.cursor, m.sink))
	b.WriteString("\n\n")

	b.WriteString(m.statusLine())
	b.WriteString("\n")

	if m.message != "" {
		b.WriteString(RenderMessage(m.message, m.messageErr))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(RenderHelpLine(
		NotesKeys.NextToken, NotesKeys.Probe, NotesKeys.Refresh,
		NotesKeys.Clear, NotesKeys.Entities, NotesKeys.Help, NotesKeys.Quit,
	))

	return styles.App.Render(b.String())
}

func (m *NotesModel) statusLine() string {
	state := m.session.Feedback.State()
	stale := ""
	if m.session.Cache.IsStale() {
		stale = styles.MutedText.Render("  cache stale · press r")
	}
	return styles.StatusBar.Render(fmt.Sprintf("offset %d · %d refs · feedback %s", m.cursor, len(m.tokens), state)) + stale
}

// SetSize updates the view dimensions
func (m *NotesModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}
