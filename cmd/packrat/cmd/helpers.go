package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/kukaryambik/packrat/pkg/manifest"
	"github.com/kukaryambik/packrat/pkg/pathset"
)

// confirm prints the prompt and reads a yes/no answer from stdin. An empty
// answer picks the default, anything unrecognized (or a read error) declines.
func confirm(prompt string, def bool) bool {
	suffix := "[y/N]"
	if def {
		suffix = "[Y/n]"
	}
	fmt.Printf("%s %s: ", prompt, suffix)

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return false
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	case "":
		return def
	default:
		return false
	}
}

// loadGroup canonicalizes the group name and loads its specs. When the
// manifest is missing but a backup exists the user is offered a restore.
// With needExist set, a group that is still missing after that is an error
// unless the restore offer was declined.
func loadGroup(group string, needExist bool) (string, []pathset.Spec, error) {
	name, err := manifest.CanonicalGroupName(group)
	if err != nil {
		return "", nil, err
	}

	if !store.Exists(name) {
		if store.HasBackup(name) {
			msg := fmt.Sprintf(
				"The group %q was not found, but a backup file was. Would you like to restore the backup file?", name)
			if confirm(msg, true) {
				if err := store.RestoreBackup(name); err != nil {
					return "", nil, err
				}
			}
		} else if needExist {
			return "", nil, fmt.Errorf("group %q does not exist", name)
		}
	}

	if !store.Exists(name) {
		return name, nil, nil
	}

	specs, err := store.Load(name)
	if err != nil {
		return "", nil, err
	}
	return name, specs, nil
}

// renderLines shortens long manifests to first line, ellipsis and last line.
func renderLines(lines []string) string {
	if len(lines) >= 3 {
		lines = []string{lines[0], "...", lines[len(lines)-1]}
	}
	return strings.Join(lines, "\n") + "\n"
}
