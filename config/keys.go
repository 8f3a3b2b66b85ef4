// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

const (
	ConfigFileKey          = "config-file"
	SeedKey                = "seed"
	LogLevelKey            = "log-level"
	LogDisplayLevelKey     = "log-display-level"
	LogDisplayHighlightKey = "log-display-highlight"
	LogFormatKey           = "log-format"
	LogFileKey             = "log-file"
	LogFileMaxSizeKey      = "log-file-max-size"
	LogFileMaxFilesKey     = "log-file-max-files"
	LogFileMaxAgeKey       = "log-file-max-age"
	LogFileCompressKey     = "log-file-compress"
	MetricsEnabledKey      = "metrics-enabled"
	MetricsNamespaceKey    = "metrics-namespace"
)
