package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kukaryambik/packrat/pkg/pathset"
)

var showCmd = &cobra.Command{
	Use:   "show GROUP",
	Short: "Show the tracked paths of a group",
	Long: `Show the tracked paths of a group.

By default the raw manifest entries are printed, flags included. With
--full the group is resolved instead and every effectively included
file or directory is listed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return opts.show(args[0])
	},
}

func init() {
	showCmd.Flags().BoolVar(&opts.Full, "full", false,
		"Resolve the group and show every effectively included path")
}

func (opts *CommandOptions) show(group string) error {
	_, specs, err := loadGroup(group, true)
	if err != nil {
		return err
	}

	if !opts.Full {
		for _, spec := range specs {
			fmt.Println(" " + spec.Line())
		}
		return nil
	}

	files, err := pathset.Resolve(specs, pathset.OS{})
	if err != nil {
		return err
	}
	for _, f := range files {
		fmt.Println("\t" + f)
	}
	return nil
}
