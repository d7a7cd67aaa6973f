package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"crossprobe/internal/domain"
)

var componentsCmd = &cobra.Command{
	Use:   "components",
	Short: "List component designators",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return listEntities(domain.KindComponent)
	},
}

var netsCmd = &cobra.Command{
	Use:   "nets",
	Short: "List net names",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return listEntities(domain.KindNet)
	},
}

func listEntities(kind domain.EntityKind) error {
	var refs []domain.EntityRef
	var err error
	if kind == domain.KindComponent {
		refs, err = GetSession().Board.ListComponents()
	} else {
		refs, err = GetSession().Board.ListNets()
	}
	if err != nil {
		return err
	}

	if len(refs) == 0 {
		fmt.Printf("No %ss found\n", kind)
		return nil
	}
	for _, ref := range refs {
		fmt.Println(ref.Name)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(componentsCmd)
	rootCmd.AddCommand(netsCmd)
}
