package config

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// NewLogger returns a timestamped logger writing to stderr, leveled by the
// LOG_LEVEL variable (info when unset or unknown).
func NewLogger(prefix string) *log.Logger {
	return newLogger(os.Stderr, prefix, GetEnv("LOG_LEVEL", "info"))
}

func newLogger(w io.Writer, prefix, level string) *log.Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           lvl,
	})
}
