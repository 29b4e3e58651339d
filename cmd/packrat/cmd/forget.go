package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var forgetCmd = &cobra.Command{
	Use:   "forget GROUP",
	Short: "Delete a group",
	Long: `Delete a group.

The manifest is removed after a confirmation that previews its content.
The backup file is kept around for a later restore unless --drop-backup
is given.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return opts.forget(args[0])
	},
}

func init() {
	forgetCmd.Flags().BoolVar(&opts.DropBackup, "drop-backup", false,
		"Also delete the backup file")
}

func (opts *CommandOptions) forget(group string) error {
	name, specs, err := loadGroup(group, true)
	if err != nil {
		return err
	}

	if len(specs) > 0 {
		lines := make([]string, 0, len(specs))
		for _, spec := range specs {
			lines = append(lines, spec.Line())
		}
		prompt := fmt.Sprintf("Confirm deletion of group %q containing %d lines\n%s",
			name, len(lines), renderLines(lines))
		if !confirm(prompt, false) {
			return nil
		}
	}

	return store.Remove(name, opts.DropBackup)
}
