package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBoundCommand(t *testing.T) (*cobra.Command, *viper.Viper) {
	t.Helper()
	cmd := &cobra.Command{Use: "test", Run: func(*cobra.Command, []string) {}}
	v := viper.New()
	require.NoError(t, BindFlags(cmd, v))
	return cmd, v
}

func TestLoadOptions_Defaults(t *testing.T) {
	_, v := newBoundCommand(t)

	opts, err := LoadOptions(v)
	require.NoError(t, err)

	assert.Equal(t, logrus.InfoLevel, opts.LogLevel)
	assert.Equal(t, LogFormatText, opts.LogFormat)
	assert.Empty(t, opts.ConfigFile)
}

func TestLoadOptions_Flags(t *testing.T) {
	cmd, v := newBoundCommand(t)
	require.NoError(t, cmd.PersistentFlags().Parse([]string{"--log-level", "debug", "--log-format", "JSON"}))

	opts, err := LoadOptions(v)
	require.NoError(t, err)

	assert.Equal(t, logrus.DebugLevel, opts.LogLevel)
	assert.Equal(t, LogFormatJSON, opts.LogFormat)
}

func TestLoadOptions_Environment(t *testing.T) {
	t.Setenv("PANMGR_LOG_LEVEL", "warn")
	_, v := newBoundCommand(t)

	opts, err := LoadOptions(v)
	require.NoError(t, err)
	assert.Equal(t, logrus.WarnLevel, opts.LogLevel)
}

func TestLoadOptions_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pan-manager.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: error\nlog_format: json\n"), 0o600))

	cmd, v := newBoundCommand(t)
	require.NoError(t, cmd.PersistentFlags().Parse([]string{"--config", path}))

	opts, err := LoadOptions(v)
	require.NoError(t, err)

	assert.Equal(t, path, opts.ConfigFile)
	assert.Equal(t, logrus.ErrorLevel, opts.LogLevel)
	assert.Equal(t, LogFormatJSON, opts.LogFormat)
}

func TestLoadOptions_Invalid(t *testing.T) {
	cmd, v := newBoundCommand(t)
	require.NoError(t, cmd.PersistentFlags().Parse([]string{"--log-level", "chatty"}))
	_, err := LoadOptions(v)
	assert.Error(t, err)

	cmd, v = newBoundCommand(t)
	require.NoError(t, cmd.PersistentFlags().Parse([]string{"--log-format", "xml"}))
	_, err = LoadOptions(v)
	assert.Error(t, err)

	cmd, v = newBoundCommand(t)
	require.NoError(t, cmd.PersistentFlags().Parse([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml")}))
	_, err = LoadOptions(v)
	assert.Error(t, err)
}

func TestConfigureLogger(t *testing.T) {
	logger := logrus.New()

	ConfigureLogger(logger, Options{LogLevel: logrus.DebugLevel, LogFormat: LogFormatJSON})
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)

	ConfigureLogger(logger, Options{LogLevel: logrus.WarnLevel, LogFormat: LogFormatText})
	assert.Equal(t, logrus.WarnLevel, logger.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, logger.Formatter)
}
