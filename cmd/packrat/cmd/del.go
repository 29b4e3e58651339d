package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kukaryambik/packrat/pkg/pathset"
)

var delCmd = &cobra.Command{
	Use:   "del GROUP REGEX",
	Short: "Remove tracked paths matching a regular expression",
	Long: `Remove tracked paths matching a regular expression.

Every path in the group is matched against REGEX and the matching entries
are dropped. Since "." and ".." match nearly everything, passing one of
them offers to substitute the current or parent directory instead.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return opts.del(args[0], args[1])
	},
}

func (opts *CommandOptions) del(group, expr string) error {
	switch expr {
	case ".":
		if confirm(`"del ." removes every path in the group. Did you mean the current directory instead?`, true) {
			wd, err := os.Getwd()
			if err != nil {
				return err
			}
			expr = wd
		}
	case "..":
		if confirm(`"del .." removes nearly every path in the group. Did you mean the parent directory instead?`, true) {
			wd, err := os.Getwd()
			if err != nil {
				return err
			}
			expr = filepath.Dir(wd)
		}
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return fmt.Errorf("invalid regular expression %q: %v", expr, err)
	}

	name, specs, err := loadGroup(group, true)
	if err != nil {
		return err
	}

	var kept []pathset.Spec
	for _, spec := range specs {
		if re.MatchString(spec.Path) {
			logrus.Debugf("Removing %s from group %s", spec.Path, name)
			continue
		}
		kept = append(kept, spec)
	}

	return store.Save(name, kept)
}
