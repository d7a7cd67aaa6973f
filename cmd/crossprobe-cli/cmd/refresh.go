package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"crossprobe/internal/application/commands"
)

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Rebuild the entity cache",
	Long: `Rebuild the entity cache from the design database and report what
was found.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		stats, err := commands.NewRefreshCommand(GetSession().Cache).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Printf("generation %d: %d components, %d nets (%s)\n",
			stats.Generation, stats.Components, stats.Nets, stats.Duration.Round(time.Microsecond))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(refreshCmd)
}
