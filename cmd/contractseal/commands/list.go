package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// list: print the IDs of all archived documents.
func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List archived document IDs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := wire.Archive.List()
			if err != nil {
				return err
			}
			for _, id := range ids {
				fmt.Println(id)
			}
			return nil
		},
	}
}
