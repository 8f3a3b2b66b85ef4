// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"io"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Config defines the configuration of a logger
type Config struct {
	// Name is prepended to every entry.
	Name string `json:"name"`

	DisplayLevel     Level     `json:"displayLevel"`
	DisplayHighlight Highlight `json:"displayHighlight"`
	LogFormat        Format    `json:"logFormat"`

	// If [File] is empty, entries are only displayed.
	File     string `json:"file"`
	LogLevel Level  `json:"logLevel"`

	// MaxSize is the size, in megabytes, of a log file before it is rotated.
	MaxSize int `json:"maxSize"`
	// MaxFiles is the number of rotated files kept.
	MaxFiles int `json:"maxFiles"`
	// MaxAge is the number of days rotated files are kept.
	MaxAge   int  `json:"maxAge"`
	Compress bool `json:"compress"`
}

func DefaultConfig() Config {
	return Config{
		DisplayLevel:     Info,
		DisplayHighlight: Plain,
		LogFormat:        Console,
		LogLevel:         Debug,
		MaxSize:          8,
		MaxFiles:         7,
		MaxAge:           0,
	}
}

// New returns a logger that displays entries on [display] and, if configured,
// writes them into a rotated log file.
func New(config Config, display io.WriteCloser) Logger {
	cores := []WrappedCore{
		NewWrappedCore(
			config.DisplayLevel,
			display,
			config.LogFormat.Encoder(config.DisplayHighlight),
		),
	}
	if config.File != "" {
		writer := &lumberjack.Logger{
			Filename:   config.File,
			MaxSize:    config.MaxSize,
			MaxBackups: config.MaxFiles,
			MaxAge:     config.MaxAge,
			Compress:   config.Compress,
		}
		cores = append(cores, NewWrappedCore(
			config.LogLevel,
			writer,
			config.LogFormat.Encoder(Plain),
		))
	}
	return NewLogger(config.Name, cores...)
}

// Stderr is the display writer used by command line tools. Closing it is a
// no-op so that stopping a logger doesn't close the process' stderr.
var Stderr = NopCloser(os.Stderr)

// NopCloser returns a WriteCloser whose Close does nothing.
func NopCloser(w io.Writer) io.WriteCloser {
	return nopCloser{Writer: w}
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error {
	return nil
}
