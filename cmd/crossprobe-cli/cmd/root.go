package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"crossprobe/internal/adapters/board"
	"crossprobe/internal/adapters/snapshot"
	"crossprobe/internal/application"
	"crossprobe/internal/config"
)

var (
	boardPath string
	snap      *snapshot.Board
	session   *application.Session
)

var rootCmd = &cobra.Command{
	Use:   "crossprobe-cli",
	Short: "CLI for cross-probing design references from notes",
	Long: `crossprobe-cli links free-form engineering notes to a PCB design
snapshot: it scans note text for component and net references
([[NET:GND]], @R1, bare designators like U3), resolves them against
the design database, and drives highlighting.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		var err error
		snap, err = snapshot.Open(boardPath)
		if err != nil {
			return err
		}
		session = application.NewSession(
			board.Wrap(snap), config.ScanConfig(), config.Capabilities(), nil, config.SettleDelay())
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if session != nil {
			session.Close()
		}
		if snap != nil {
			snap.Close()
		}
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&boardPath, "board", "b", config.BoardPath(), "path to the design snapshot")
}

// GetSession returns the initialized probing session
func GetSession() *application.Session {
	return session
}

// GetSnapshot returns the opened snapshot board
func GetSnapshot() *snapshot.Board {
	return snap
}
