package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kukaryambik/packrat/pkg/manifest"
)

var renameCmd = &cobra.Command{
	Use:   "rename GROUP NEW_NAME",
	Short: "Rename a group",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return opts.rename(args[0], args[1])
	},
}

func (opts *CommandOptions) rename(oldName, newName string) error {
	oldGroup, _, err := loadGroup(oldName, true)
	if err != nil {
		return err
	}
	if !store.Exists(oldGroup) {
		return fmt.Errorf("group %q does not exist", oldGroup)
	}

	newGroup, err := manifest.CanonicalGroupName(newName)
	if err != nil {
		return err
	}

	if store.Exists(newGroup) || store.HasBackup(newGroup) {
		prompt := fmt.Sprintf(
			"Group %q already exists. Overwrite it? This also destroys its backup file", newGroup)
		if !confirm(prompt, false) {
			return nil
		}
		if err := store.Remove(newGroup, true); err != nil {
			return err
		}
	}

	return store.Rename(oldGroup, newGroup)
}
