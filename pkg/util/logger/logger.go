package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger represents a component for writing messages to log.
//
// It is an alias of zap.Logger to avoid a heavy wrapper layer:
// components accept *Logger and attach context via zap fields
// directly.
type Logger = zap.Logger

// New constructs a ready-to-go Logger instance with the given
// severity level. Messages of lower levels are not recorded.
//
// Records contain an ISO8601 timestamp, level, message and optional
// structured context serialized in a console-friendly plain-text
// format. Stack traces are attached to fatal records only.
//
// If timestamps is false, the timestamp is omitted from records.
// This mode suits interactive runs where an outer collector does
// not prepend its own time mark.
func New(level string, timestamps bool) (*Logger, error) {
	var lvl zapcore.Level

	err := lvl.UnmarshalText([]byte(level))
	if err != nil {
		return nil, fmt.Errorf("incorrect logger level %q: %w", level, err)
	}

	c := zap.NewProductionConfig()
	c.Level = zap.NewAtomicLevelAt(lvl)
	c.Encoding = "console"
	c.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if !timestamps {
		c.EncoderConfig.TimeKey = ""
	}

	l, err := c.Build(
		zap.AddStacktrace(zap.NewAtomicLevelAt(zap.FatalLevel)),
	)
	if err != nil {
		return nil, fmt.Errorf("build zap logger: %w", err)
	}

	return l, nil
}
