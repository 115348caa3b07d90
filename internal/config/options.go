package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Process option keys. Environment variables use the PANMGR_ prefix
// (PANMGR_LOG_LEVEL, PANMGR_LOG_FORMAT).
const (
	OptLogLevel  = "log_level"
	OptLogFormat = "log_format"
	OptConfig    = "config"

	EnvPrefix = "PANMGR"
)

// Log formats
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Options are process-level settings taken from flags, environment and an
// optional config file. User-facing settings live in Settings.
type Options struct {
	LogLevel   logrus.Level
	LogFormat  string
	ConfigFile string
}

// BindFlags registers the process flags on cmd and binds them into v.
func BindFlags(cmd *cobra.Command, v *viper.Viper) error {
	flags := cmd.PersistentFlags()
	flags.String("log-level", "info", `log level: debug, info, warn or error`)
	flags.String("log-format", LogFormatText, `log format: text or json`)
	flags.String("config", "", `optional config file (yaml, toml or json) with log_level and log_format`)

	v.SetDefault(OptLogLevel, "info")
	v.SetDefault(OptLogFormat, LogFormatText)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for key, flag := range map[string]string{
		OptLogLevel:  "log-level",
		OptLogFormat: "log-format",
		OptConfig:    "config",
	} {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			return errors.Wrapf(err, "binding flag %s", flag)
		}
	}
	return nil
}

// LoadOptions resolves Options from v, reading the config file when one is
// named.
func LoadOptions(v *viper.Viper) (Options, error) {
	var opts Options

	if file := v.GetString(OptConfig); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return opts, errors.Wrapf(err, "reading config %s", file)
		}
		opts.ConfigFile = file
	}

	level, err := logrus.ParseLevel(v.GetString(OptLogLevel))
	if err != nil {
		return opts, err
	}
	opts.LogLevel = level

	switch format := strings.ToLower(v.GetString(OptLogFormat)); format {
	case LogFormatText, LogFormatJSON:
		opts.LogFormat = format
	default:
		return opts, errors.Errorf("unknown log format %q", format)
	}

	return opts, nil
}

// ConfigureLogger applies opts to logger
func ConfigureLogger(logger *logrus.Logger, opts Options) {
	logger.SetLevel(opts.LogLevel)
	if opts.LogFormat == LogFormatJSON {
		logger.SetFormatter(&logrus.JSONFormatter{})
		return
	}
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}
