// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap/zapcore"
)

var ErrUnknownFormat = errors.New("unknown log format")

// Format of the written log entries
type Format int

const (
	Console Format = iota
	JSON
)

const timeLayout = "[01-02|15:04:05.000]"

func ToFormat(f string) (Format, error) {
	switch strings.ToUpper(f) {
	case "CONSOLE":
		return Console, nil
	case "JSON":
		return JSON, nil
	default:
		return Console, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

func (f Format) String() string {
	switch f {
	case Console:
		return "console"
	case JSON:
		return "json"
	default:
		return unknownStr
	}
}

// Encoder returns the encoder of [f]. Console output is highlighted according
// to [h]; JSON output is never highlighted.
func (f Format) Encoder(h Highlight) zapcore.Encoder {
	if f == JSON {
		return JSONEncoder()
	}
	return h.ConsoleEncoder()
}

func JSONEncoder() zapcore.Encoder {
	config := newEncoderConfig()
	config.EncodeTime = zapcore.ISO8601TimeEncoder
	return zapcore.NewJSONEncoder(config)
}

func newEncoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    levelEncoder,
		EncodeTime:     zapcore.TimeEncoderOfLayout(timeLayout),
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	}
}

func levelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(fromZapLevel(l).String())
}

func colorLevelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	level := fromZapLevel(l)
	enc.AppendString(level.Color().Wrap(level.AlignedString()))
}
