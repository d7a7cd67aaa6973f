package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"crossprobe/internal/application/commands"
)

var probeCmd = &cobra.Command{
	Use:   "probe <note-file> <offset>",
	Short: "Cross-probe the reference at an offset",
	Long: `Probe the design reference at a byte offset in a note file: scan the
token under the offset, resolve it against the design database, and
highlight it.

Examples:
  crossprobe-cli probe bringup-notes.md 42`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		offset, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid offset %q: %w", args[1], err)
		}

		session := GetSession()
		if _, err := commands.NewRefreshCommand(session.Cache).Execute(context.Background()); err != nil {
			return err
		}

		probe := commands.NewProbeCommand(
			session.ScanCfg, session.Resolver, session.Highlighter, session.Feedback,
			string(text), offset)
		result, err := probe.Execute(context.Background())
		if err != nil {
			return err
		}

		if result.Token == nil {
			fmt.Println("No reference at that offset")
			return nil
		}

		fmt.Printf("token      %s (%s, %d-%d)\n",
			result.Token.Name, result.Token.Kind, result.Token.Span.Start, result.Token.Span.End)
		if !result.Resolution.Found {
			fmt.Printf("resolution %s not found\n", result.Resolution.Kind)
			return nil
		}
		fmt.Printf("resolution found %s %s\n", result.Resolution.Kind, result.Resolution.Record.Name)
		fmt.Printf("highlight  %s\n", result.Outcome)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(probeCmd)
}
