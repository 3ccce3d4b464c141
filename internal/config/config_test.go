package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(NewViper(), "")
	require.NoError(t, err)
	assert.Equal(t, OutputText, cfg.Output)
	assert.False(t, cfg.Verbose)
	assert.False(t, cfg.Quiet)
	assert.Empty(t, cfg.Log.File)
	assert.Equal(t, 10, cfg.Log.MaxSizeMB)
	assert.Equal(t, 3, cfg.Log.MaxBackups)
}

func TestLoad_File(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "output: json\nverbose: true\nlog:\n  file: /tmp/schnorr.log\n  max_backups: 1\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(NewViper(), path)
	require.NoError(t, err)
	assert.Equal(t, OutputJSON, cfg.Output)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, "/tmp/schnorr.log", cfg.Log.File)
	assert.Equal(t, 1, cfg.Log.MaxBackups)
	assert.Equal(t, 10, cfg.Log.MaxSizeMB)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(NewViper(), filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("SCHNORR_OUTPUT", "yaml")
	t.Setenv("SCHNORR_LOG_FILE", "/var/log/schnorr.log")

	cfg, err := Load(NewViper(), "")
	require.NoError(t, err)
	assert.Equal(t, OutputYAML, cfg.Output)
	assert.Equal(t, "/var/log/schnorr.log", cfg.Log.File)
}

func TestLoad_InvalidOutput(t *testing.T) {
	t.Setenv("SCHNORR_OUTPUT", "xml")

	_, err := Load(NewViper(), "")
	require.ErrorIs(t, err, ErrInvalidOutputFormat)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	require.Error(t, Validate(nil))
	require.NoError(t, Validate(&Config{Output: OutputText}))
	require.ErrorIs(t, Validate(&Config{Output: ""}), ErrInvalidOutputFormat)
	require.Error(t, Validate(&Config{Output: OutputJSON, Verbose: true, Quiet: true}))
	require.Error(t, Validate(&Config{Output: OutputJSON, Log: LogConfig{MaxSizeMB: -1}}))
}
