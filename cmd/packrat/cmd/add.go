package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kukaryambik/packrat/pkg/manifest"
	"github.com/kukaryambik/packrat/pkg/pathset"
)

var addCmd = &cobra.Command{
	Use:   "add GROUP PATH...",
	Short: "Add paths to be tracked under a group",
	Long: `Add paths to be tracked under a group.

Paths are stored in canonical absolute form. Adding a path that is already
tracked replaces its flags in place. Paths containing unescaped wildcards
are stored as glob patterns unless --no-glob is given.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return opts.add(args[0], args[1:])
	},
}

func init() {
	addCmd.Flags().BoolVar(&opts.Exclude, "exclude", false,
		"Exclude the paths instead of including them; overridden by more specific entries")
	addCmd.Flags().BoolVar(&opts.AllowNX, "allow-nx", false,
		"Keep the paths in the group even when they do not exist")
	addCmd.Flags().BoolVar(&opts.Glob, "glob", false,
		"Treat the paths as glob patterns")
	addCmd.Flags().BoolVar(&opts.NoGlob, "no-glob", false,
		"Treat the paths literally even if they contain wildcards")
}

func (opts *CommandOptions) add(group string, paths []string) error {
	if opts.Glob && opts.NoGlob {
		return fmt.Errorf("--glob and --no-glob are mutually exclusive")
	}

	name, specs, err := loadGroup(group, false)
	if err != nil {
		return err
	}

	fsys := pathset.OS{}
	var added []pathset.Spec
	for _, p := range paths {
		spec, err := pathset.New(p, opts.Exclude, opts.AllowNX, false)
		if err != nil {
			return err
		}
		spec.Glob = opts.Glob || (!opts.NoGlob && pathset.IsPattern(spec.Path))

		if !spec.Glob && !opts.AllowNX && !fsys.Exists(spec.Path) {
			logrus.Warnf(
				"Path %s does not exist, ignoring. Pass --allow-nx to keep it anyway", spec.Path)
			continue
		}

		logrus.Debugf("Adding %s to group %s", spec.Line(), name)
		added = append(added, spec)
	}

	specs = manifest.Upsert(specs, added...)
	return store.Save(name, specs)
}
