// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ava-labs/drawkit/utils/logging"
)

const (
	envPrefix = "drawkit"

	defaultMetricsNamespace = "drawkit"
)

var errNegativeLogFileLimit = errors.New("log file limits must be non-negative")

// Config is the configuration shared by every drawkit command.
type Config struct {
	// Seed, if non-nil, makes every draw deterministic.
	Seed *uint64 `json:"seed"`

	LoggingConfig logging.Config `json:"loggingConfig"`

	MetricsEnabled   bool   `json:"metricsEnabled"`
	MetricsNamespace string `json:"metricsNamespace"`
}

// BuildFlagSet returns a flag set containing every configuration flag.
func BuildFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("drawkit", pflag.ContinueOnError)
	addFlags(fs)
	return fs
}

func addFlags(fs *pflag.FlagSet) {
	fs.String(ConfigFileKey, "", "Specifies a config file")
	fs.Uint64(SeedKey, 0, "Seed of the random source. If unset, the source is seeded from the clock")

	// Logging
	fs.String(LogLevelKey, "info", "The log level of the log file. Should be one of {verbo, debug, trace, info, warn, error, fatal, off}")
	fs.String(LogDisplayLevelKey, "", "The log display level. If left blank, will inherit the value of log-level. Otherwise, should be one of {verbo, debug, trace, info, warn, error, fatal, off}")
	fs.String(LogDisplayHighlightKey, "auto", "Whether to color/highlight display logs. Default highlights when the output is a terminal. Otherwise, should be one of {auto, plain, colors}")
	fs.String(LogFormatKey, "console", "The structure of log entries. Should be one of {console, json}")
	fs.String(LogFileKey, "", "File logs are written to. If empty, logs are only displayed")
	fs.Int(LogFileMaxSizeKey, 8, "The size, in megabytes, of a log file before it is rotated")
	fs.Int(LogFileMaxFilesKey, 7, "The number of rotated log files to keep")
	fs.Int(LogFileMaxAgeKey, 0, "The number of days rotated log files are kept. 0 keeps them forever")
	fs.Bool(LogFileCompressKey, false, "Whether rotated log files are compressed")

	// Metrics
	fs.Bool(MetricsEnabledKey, false, "If true, the metrics of the draws are logged once the command completes")
	fs.String(MetricsNamespaceKey, defaultMetricsNamespace, "Namespace of the metrics")
}

// BuildViper returns the viper environment from the flags of [fs], the
// DRAWKIT_ prefixed environment variables and the config file, if one is
// specified. [args] are parsed into [fs] unless [fs] was already parsed.
func BuildViper(fs *pflag.FlagSet, args []string) (*viper.Viper, error) {
	if !fs.Parsed() {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}

	if v.IsSet(ConfigFileKey) {
		if path := v.GetString(ConfigFileKey); path != "" {
			v.SetConfigFile(os.ExpandEnv(path))
			if err := v.ReadInConfig(); err != nil {
				return nil, err
			}
		}
	}
	return v, nil
}

// GetConfig returns the validated configuration of [v].
func GetConfig(v *viper.Viper) (Config, error) {
	config := Config{
		MetricsEnabled:   v.GetBool(MetricsEnabledKey),
		MetricsNamespace: v.GetString(MetricsNamespaceKey),
	}

	if v.IsSet(SeedKey) {
		seed := v.GetUint64(SeedKey)
		config.Seed = &seed
	}

	loggingConfig, err := getLoggingConfig(v)
	if err != nil {
		return Config{}, err
	}
	config.LoggingConfig = loggingConfig
	return config, nil
}

func getLoggingConfig(v *viper.Viper) (logging.Config, error) {
	var (
		loggingConfig = logging.DefaultConfig()
		err           error
	)

	loggingConfig.LogLevel, err = logging.ToLevel(v.GetString(LogLevelKey))
	if err != nil {
		return loggingConfig, err
	}

	loggingConfig.DisplayLevel = loggingConfig.LogLevel
	if displayLevel := v.GetString(LogDisplayLevelKey); displayLevel != "" {
		loggingConfig.DisplayLevel, err = logging.ToLevel(displayLevel)
		if err != nil {
			return loggingConfig, err
		}
	}

	loggingConfig.DisplayHighlight, err = logging.ToHighlight(v.GetString(LogDisplayHighlightKey), os.Stderr.Fd())
	if err != nil {
		return loggingConfig, err
	}

	loggingConfig.LogFormat, err = logging.ToFormat(v.GetString(LogFormatKey))
	if err != nil {
		return loggingConfig, err
	}

	loggingConfig.File = os.ExpandEnv(v.GetString(LogFileKey))
	loggingConfig.MaxSize = v.GetInt(LogFileMaxSizeKey)
	loggingConfig.MaxFiles = v.GetInt(LogFileMaxFilesKey)
	loggingConfig.MaxAge = v.GetInt(LogFileMaxAgeKey)
	loggingConfig.Compress = v.GetBool(LogFileCompressKey)
	if loggingConfig.MaxSize < 0 || loggingConfig.MaxFiles < 0 || loggingConfig.MaxAge < 0 {
		return loggingConfig, fmt.Errorf("%w: size=%d files=%d age=%d",
			errNegativeLogFileLimit,
			loggingConfig.MaxSize,
			loggingConfig.MaxFiles,
			loggingConfig.MaxAge,
		)
	}
	return loggingConfig, nil
}
