package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"crossprobe/internal/adapters/board"
	"crossprobe/internal/adapters/snapshot"
	"crossprobe/internal/adapters/tui"
	"crossprobe/internal/adapters/tui/views"
	"crossprobe/internal/application"
	"crossprobe/internal/config"
)

func main() {
	boardFlag := flag.String("board", config.BoardPath(), "path to the design snapshot")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: crossprobe [--board snapshot.db] <note.md>")
		os.Exit(1)
	}

	noteText, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	snap, err := snapshot.Open(*boardFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer snap.Close()

	sink := views.NewStyleSink()
	session := application.NewSession(
		board.Wrap(snap), config.ScanConfig(), config.Capabilities(), sink, config.SettleDelay())
	defer session.Close()

	app := tui.NewApp(session, sink, string(noteText))

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
