package cmd

import (
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kukaryambik/packrat/pkg/logging"
	"github.com/kukaryambik/packrat/pkg/manifest"
	"github.com/kukaryambik/packrat/pkg/util"
)

const appName = "packrat"

// defaultConfigDir is expanded against the user's home directory at startup.
const defaultConfigDir = "~/.config/" + appName

// CommandOptions holds the flag values shared by the subcommands.
type CommandOptions struct {
	ConfigDir string

	AllowNX    bool
	Exclude    bool
	Glob       bool
	NoGlob     bool
	Full       bool
	Algo       string
	NoCompress bool
	Name       string
	Output     string
	DropBackup bool
}

var (
	logLevel     string
	logFormat    string
	logTimestamp bool

	opts  CommandOptions
	store *manifest.Store
)

func init() {
	viper.SetEnvPrefix(appName) // Environment variables prefixed with PACKRAT_
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // Automatically bind environment variables

	addFlags()

	// Bind flags to environment variables
	viper.BindPFlags(RootCmd.PersistentFlags())

	RootCmd.AddCommand(
		addCmd,
		delCmd,
		forgetCmd,
		listCmd,
		pullCmd,
		renameCmd,
		showCmd,
	)
}

var RootCmd = &cobra.Command{
	Use:   appName,
	Short: "Tracks files to be backed up, on a per-group basis",
	Long: appName + ` tracks files to be backed up, on a per-group basis.

Paths are collected into named groups. Each group is a list of inclusions
and exclusions where the more specific entry always wins, so excluding a
directory while keeping one file inside it just works. The pull command
resolves the group into a concrete set of files, packs them into a tarball
and hands it to your upload commands.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {

		// Set variables from flags or environment
		opts.ConfigDir = util.ExpandUser(viper.GetString("config-dir"))
		logLevel = viper.GetString("verbosity")
		logFormat = viper.GetString("log-format")

		// Set up logging
		if err := logging.Configure(logLevel, logFormat, logTimestamp); err != nil {
			return err
		}

		st, err := manifest.NewStore(opts.ConfigDir)
		if err != nil {
			return err
		}
		store = st

		readSettings(opts.ConfigDir)

		return nil
	},
}

func addFlags() {
	RootCmd.PersistentFlags().StringVarP(
		&opts.ConfigDir, "config-dir", "c", defaultConfigDir,
		"Directory holding the group manifests; or use PACKRAT_CONFIG_DIR")
	RootCmd.MarkPersistentFlagDirname("config-dir")

	// Logging flags
	RootCmd.PersistentFlags().StringVarP(
		&logLevel, "verbosity", "v", logging.DefaultLevel,
		"Log level (trace, debug, info, warn, error, fatal, panic)",
	)
	RootCmd.PersistentFlags().StringVar(
		&logFormat, "log-format", logging.FormatColor,
		"Log format (text, color, json)",
	)
	RootCmd.PersistentFlags().BoolVar(
		&logTimestamp, "log-timestamp", logging.DefaultLogTimestamp,
		"Timestamp in log output",
	)
}

// readSettings loads optional defaults such as default-pull-command from
// a config.yaml in the config directory. A missing file is fine.
func readSettings(dir string) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(dir)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			logrus.Warnf("Error reading settings: %v", err)
		}
		return
	}
	logrus.Debugf("Loaded settings from %s", viper.ConfigFileUsed())
}
