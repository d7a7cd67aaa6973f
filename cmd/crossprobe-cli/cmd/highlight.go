package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"crossprobe/internal/application/commands"
	"crossprobe/internal/domain"
)

var highlightKind string

var highlightCmd = &cobra.Command{
	Use:   "highlight <name>",
	Short: "Highlight an entity by name",
	Long: `Resolve an entity name and highlight it on the canvas. Without --kind
the name is tried as a component first, then as a net.

Examples:
  crossprobe-cli highlight GND --kind net
  crossprobe-cli highlight R1`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		session := GetSession()
		if _, err := commands.NewRefreshCommand(session.Cache).Execute(context.Background()); err != nil {
			return err
		}

		kind := domain.KindUnknown
		switch highlightKind {
		case "component":
			kind = domain.KindComponent
		case "net":
			kind = domain.KindNet
		case "":
		default:
			return fmt.Errorf("invalid kind %q (component or net)", highlightKind)
		}

		res := session.Resolver.Resolve(domain.Token{Name: args[0], Kind: kind})
		if !res.Found {
			fmt.Printf("%s %s not found\n", res.Kind, args[0])
			return nil
		}

		outcome := session.Highlighter.Highlight(res.Record)
		fmt.Printf("%s %s: %s\n", res.Kind, res.Record.Name, outcome)
		return nil
	},
}

func init() {
	highlightCmd.Flags().StringVarP(&highlightKind, "kind", "k", "", "entity kind (component or net)")
	rootCmd.AddCommand(highlightCmd)
}
