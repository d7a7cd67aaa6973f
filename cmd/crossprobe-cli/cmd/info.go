package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"crossprobe/internal/application/commands"
)

var infoCmd = &cobra.Command{
	Use:   "info <designator>",
	Short: "Show component details",
	Long: `Print a markdown report for a component: value, footprint, layer,
position, and connected nets.

Examples:
  crossprobe-cli info R1`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		session := GetSession()
		if _, err := commands.NewRefreshCommand(session.Cache).Execute(context.Background()); err != nil {
			return err
		}

		report, err := commands.NewInfoCommand(session.Board, session.Cache, args[0]).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Print(report)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
