package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"crossprobe/internal/domain"
)

var scanCmd = &cobra.Command{
	Use:   "scan <note-file>",
	Short: "List design references in a note",
	Long: `Scan a note file for design references and print every token found,
with its byte span and syntax-implied kind.

Examples:
  crossprobe-cli scan bringup-notes.md`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		tokens := domain.ScanAll(GetSession().ScanCfg, string(text))
		if len(tokens) == 0 {
			fmt.Println("No references found")
			return nil
		}

		for _, t := range tokens {
			fmt.Printf("%5d-%-5d [%-9s] %s\n", t.Span.Start, t.Span.End, t.Kind, t.Name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)
}
