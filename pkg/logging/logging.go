package logging

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

const (
	DefaultLevel        = "info"
	DefaultLogTimestamp = false

	FormatText  = "text"
	FormatColor = "color"
	FormatJSON  = "json"
)

// Configure sets up the global logger from the CLI logging flags.
func Configure(level, format string, timestamp bool) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	logrus.SetLevel(lvl)

	switch format {
	case FormatText:
		logrus.SetFormatter(&logrus.TextFormatter{
			DisableColors:    true,
			FullTimestamp:    timestamp,
			DisableTimestamp: !timestamp,
		})
	case FormatColor:
		logrus.SetFormatter(&logrus.TextFormatter{
			ForceColors:      true,
			FullTimestamp:    timestamp,
			DisableTimestamp: !timestamp,
		})
	case FormatJSON:
		logrus.SetFormatter(&logrus.JSONFormatter{
			DisableTimestamp: !timestamp,
		})
	default:
		return fmt.Errorf("unknown log format %q (choose text, color or json)", format)
	}

	return nil
}
