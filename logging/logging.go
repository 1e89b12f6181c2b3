package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"sber/config"
)

// New builds the process logger. Output goes to stderr so it never mixes
// with menu screens on stdout.
func New(c config.LogConfig) zerolog.Logger {
	return NewWithWriter(c, os.Stderr)
}

func NewWithWriter(c config.LogConfig, w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(c.Level)
	if err != nil || c.Level == "" {
		level = zerolog.InfoLevel
	}
	out := w
	if c.Pretty {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly, NoColor: true}
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
