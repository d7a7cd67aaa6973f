package styles

import (
	"github.com/charmbracelet/lipgloss"

	"crossprobe/internal/ports"
)

var (
	// Colors
	Primary   = lipgloss.Color("#0A84FF") // Accent blue
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
	White     = lipgloss.Color("#FFFFFF")
	Black     = lipgloss.Color("#000000")

	// Base styles
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Token styles: how reference spans render in the note text
	TokenDefault = lipgloss.NewStyle().
			Foreground(Primary).
			Underline(true)

	TokenFound = lipgloss.NewStyle().
			Background(Secondary).
			Foreground(Black).
			Bold(true)

	TokenNotFound = lipgloss.NewStyle().
			Background(Error).
			Foreground(White).
			Bold(true)

	// Cursor marks the probe position inside the note
	Cursor = lipgloss.NewStyle().
		Reverse(true)

	// Status bar
	StatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("#1F2937")).
			Foreground(White).
			Padding(0, 1)

	StatusKey = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Padding(0, 1).
			MarginRight(1)

	// List selection
	Selected = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true)

	// Input styles
	InputLabel = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	InputFocused = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Secondary).
			Padding(0, 1)

	// Help styles
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	HelpSeparator = lipgloss.NewStyle().
			Foreground(Muted).
			SetString(" • ")

	// Message styles
	Success = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	// Muted text style (for using Muted color as a style)
	MutedText = lipgloss.NewStyle().
			Foreground(Muted)
)

// TokenStyle maps an editor token style to its lipgloss rendering.
func TokenStyle(s ports.TokenStyle) lipgloss.Style {
	switch s {
	case ports.StyleFound:
		return TokenFound
	case ports.StyleNotFound:
		return TokenNotFound
	default:
		return TokenDefault
	}
}
