package observability

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger writes human readable log lines to w. Rendering goes to stdout,
// so w is normally stderr.
func NewLogger(w io.Writer, level string) (zerolog.Logger, error) {
	parsed, err := ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}

	writer := zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly, NoColor: true}
	return zerolog.New(writer).Level(parsed).With().Timestamp().Logger(), nil
}

func ParseLevel(level string) (zerolog.Level, error) {
	trimmed := strings.ToLower(strings.TrimSpace(level))
	if trimmed == "" {
		return zerolog.WarnLevel, nil
	}

	parsed, err := zerolog.ParseLevel(trimmed)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("parse log level %q: %w", level, err)
	}

	return parsed, nil
}

// Component tags every event from logger with the emitting component.
func Component(logger zerolog.Logger, name string) *zerolog.Logger {
	tagged := logger.With().Str("component", name).Logger()
	return &tagged
}
