// Package logging builds the charmbracelet/log logger used across todolists.
package logging

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/nhle/todolists/internal/model"
)

// New returns a logger writing to w, configured from cfg.
func New(w io.Writer, cfg model.LogConfig) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:     ParseLevel(cfg.Level),
		Formatter: ParseFormatter(cfg.Format),
		Prefix:    "todolists",
	})
}

// ParseLevel parses a level name. Unknown names yield InfoLevel.
func ParseLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	case "fatal":
		return log.FatalLevel
	default:
		return log.InfoLevel
	}
}

// ParseFormatter parses a formatter name. Unknown names yield TextFormatter.
func ParseFormatter(format string) log.Formatter {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}
