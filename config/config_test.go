// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/drawkit/utils/logging"
)

func TestGetConfigDefaults(t *testing.T) {
	require := require.New(t)

	v, err := BuildViper(BuildFlagSet(), nil)
	require.NoError(err)

	config, err := GetConfig(v)
	require.NoError(err)
	require.Nil(config.Seed)
	require.False(config.MetricsEnabled)
	require.Equal(defaultMetricsNamespace, config.MetricsNamespace)
	require.Equal(logging.Info, config.LoggingConfig.LogLevel)
	require.Equal(logging.Info, config.LoggingConfig.DisplayLevel)
	require.Equal(logging.Console, config.LoggingConfig.LogFormat)
	require.Empty(config.LoggingConfig.File)
}

func TestGetConfigFlags(t *testing.T) {
	require := require.New(t)

	v, err := BuildViper(BuildFlagSet(), []string{
		"--seed=42",
		"--log-level=debug",
		"--log-display-level=warn",
		"--log-display-highlight=plain",
		"--log-format=json",
		"--metrics-enabled",
		"--metrics-namespace=test",
	})
	require.NoError(err)

	config, err := GetConfig(v)
	require.NoError(err)
	require.NotNil(config.Seed)
	require.Equal(uint64(42), *config.Seed)
	require.True(config.MetricsEnabled)
	require.Equal("test", config.MetricsNamespace)
	require.Equal(logging.Debug, config.LoggingConfig.LogLevel)
	require.Equal(logging.Warn, config.LoggingConfig.DisplayLevel)
	require.Equal(logging.Plain, config.LoggingConfig.DisplayHighlight)
	require.Equal(logging.JSON, config.LoggingConfig.LogFormat)
}

func TestGetConfigZeroSeedIsSet(t *testing.T) {
	require := require.New(t)

	v, err := BuildViper(BuildFlagSet(), []string{"--seed=0"})
	require.NoError(err)

	config, err := GetConfig(v)
	require.NoError(err)
	require.NotNil(config.Seed)
	require.Zero(*config.Seed)
}

func TestGetConfigEnv(t *testing.T) {
	require := require.New(t)

	t.Setenv("DRAWKIT_SEED", "7")
	t.Setenv("DRAWKIT_LOG_LEVEL", "error")

	v, err := BuildViper(BuildFlagSet(), nil)
	require.NoError(err)

	config, err := GetConfig(v)
	require.NoError(err)
	require.NotNil(config.Seed)
	require.Equal(uint64(7), *config.Seed)
	require.Equal(logging.Error, config.LoggingConfig.LogLevel)
}

func TestGetConfigFile(t *testing.T) {
	require := require.New(t)

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(os.WriteFile(path, []byte(`{
	"seed": 3,
	"log-format": "json",
	"metrics-namespace": "fromfile"
}`), 0o600))

	v, err := BuildViper(BuildFlagSet(), []string{"--config-file=" + path, "--metrics-namespace=fromflag"})
	require.NoError(err)

	config, err := GetConfig(v)
	require.NoError(err)
	require.NotNil(config.Seed)
	require.Equal(uint64(3), *config.Seed)
	require.Equal(logging.JSON, config.LoggingConfig.LogFormat)

	// Flags take precedence over the config file.
	require.Equal("fromflag", config.MetricsNamespace)
}

func TestGetConfigErrors(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		expectedErr error
	}{
		{
			name:        "unknown log level",
			args:        []string{"--log-level=loud"},
			expectedErr: logging.ErrUnknownLevel,
		},
		{
			name:        "unknown display level",
			args:        []string{"--log-display-level=loud"},
			expectedErr: logging.ErrUnknownLevel,
		},
		{
			name:        "unknown format",
			args:        []string{"--log-format=xml"},
			expectedErr: logging.ErrUnknownFormat,
		},
		{
			name:        "unknown highlight",
			args:        []string{"--log-display-highlight=rainbow"},
			expectedErr: logging.ErrUnknownHighlight,
		},
		{
			name:        "negative max files",
			args:        []string{"--log-file-max-files=-1"},
			expectedErr: errNegativeLogFileLimit,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)

			v, err := BuildViper(BuildFlagSet(), test.args)
			require.NoError(err)

			_, err = GetConfig(v)
			require.ErrorIs(err, test.expectedErr)
		})
	}
}

func TestBuildViperMissingConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.json")
	_, err := BuildViper(BuildFlagSet(), []string{"--config-file=" + path})
	require.Error(t, err)
}
