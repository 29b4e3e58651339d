package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List known groups",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		groups, err := store.Groups()
		if err != nil {
			return err
		}
		for _, g := range groups {
			fmt.Println(g)
		}
		return nil
	},
}
