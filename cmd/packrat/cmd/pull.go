package cmd

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kukaryambik/packrat/pkg/archiver"
	"github.com/kukaryambik/packrat/pkg/pathset"
	"github.com/kukaryambik/packrat/pkg/util"
)

var pullCmd = &cobra.Command{
	Use:   "pull GROUP [COMMAND...]",
	Short: "Pack the group into a tarball and run commands on it",
	Long: `Pack the group into a tarball and run commands on it.

The group is resolved into a concrete set of files which are packed into
a compressed tarball. Every COMMAND is then run through /bin/sh with any
"{}" replaced by the tarball path, so the commands can upload or copy it
wherever they like. Without commands the default-pull-command setting is
used if present. The tarball is deleted afterwards unless --output keeps
it at a fixed path.

Commands run with the inherited environment plus any variables from a
pull.env file in the config directory.`,
	Example: `  packrat pull photos 'rclone copy {} remote:backups/'`,
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return opts.pull(cmd.Context(), args[0], args[1:])
	},
}

func init() {
	pullCmd.Flags().StringVar(&opts.Name, "name", "",
		"Base name for the tarball instead of backup_GROUP_DATE")
	pullCmd.Flags().StringVarP(&opts.Output, "output", "o", "",
		"Keep the tarball at this path instead of a temporary directory")
	pullCmd.Flags().StringVar(&opts.Algo, "compalgo", string(archiver.AlgoGzip),
		"Compression algorithm (none, gz, bz2, xz, zst)")
	pullCmd.Flags().BoolVar(&opts.NoCompress, "no-compress", false,
		"Turn off compression")
}

func (opts *CommandOptions) pull(ctx context.Context, group string, commands []string) error {
	name, specs, err := loadGroup(group, true)
	if err != nil {
		return err
	}

	files, err := pathset.Resolve(specs, pathset.OS{})
	if err != nil {
		return err
	}

	if len(files) == 0 {
		if !confirm(fmt.Sprintf("Group %q is empty. Pull an empty tarball anyway?", name), false) {
			return nil
		}
	}

	algo := archiver.AlgoNone
	if !opts.NoCompress {
		if algo, err = archiver.ParseAlgo(opts.Algo); err != nil {
			return err
		}
	}

	base := util.Coalesce(
		opts.Name,
		fmt.Sprintf("backup_%s_%s", name, time.Now().Format("2006-01-02")),
	)

	tarPath := opts.Output
	if tarPath == "" {
		tmpDir, err := os.MkdirTemp("", appName+"-*")
		if err != nil {
			return fmt.Errorf("cannot create temporary directory: %v", err)
		}
		defer os.RemoveAll(tmpDir)
		tarPath = filepath.Join(tmpDir, base+"."+algo.Extension())
	}

	logrus.Infof("Creating %s from %d paths", tarPath, len(files))
	if err := archiver.Create(ctx, files, tarPath, algo); err != nil {
		return err
	}

	if len(commands) == 0 {
		if def := viper.GetString("default-pull-command"); def != "" {
			logrus.Debugf("Using default pull command: %s", def)
			commands = []string{def}
		}
	}

	env := hookEnv()
	for _, command := range commands {
		line := strings.ReplaceAll(command, "{}", tarPath)
		logrus.Infof("Running command: %s", line)

		hook := exec.CommandContext(ctx, "/bin/sh", "-c", line)
		hook.Stdin = os.Stdin
		hook.Stdout = os.Stdout
		hook.Stderr = os.Stderr
		hook.Env = env
		if err := hook.Run(); err != nil {
			return fmt.Errorf("command %q: %v", line, err)
		}
	}

	return nil
}

// hookEnv merges the optional pull.env file into the inherited environment.
func hookEnv() []string {
	env := os.Environ()

	envFile := filepath.Join(opts.ConfigDir, "pull.env")
	extra, err := godotenv.Read(envFile)
	if err != nil {
		if !os.IsNotExist(err) {
			logrus.Warnf("Error reading %s: %v", envFile, err)
		}
		return env
	}

	for k, v := range extra {
		env = append(env, k+"="+v)
	}
	return env
}
