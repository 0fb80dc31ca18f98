// Package commands implements the gwconsole CLI commands.
package commands

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/mindworks-software/lorawan-stack/pkg/config"
	"github.com/mindworks-software/lorawan-stack/pkg/formlog"
)

// ErrFailed is returned by commands that ran to completion but found
// problems, such as invalid settings or failing scenarios.
var ErrFailed = errors.New("failed")

// ParseLevel parses a log level name (case-insensitive).
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", s)
	}
}

// NewLogger returns a text logger writing to w at the given level.
func NewLogger(w io.Writer, level string) (*slog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

// LoadConfig loads the configuration at path, or the defaults if path is
// empty.
func LoadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.DefaultConfig(), nil
	}
	return config.Load(path)
}

// EventLogger returns the form activity logger configured by cfg: form
// events go to logger at debug level and, if an events file is configured,
// to that file. The returned close function must be called when done.
func EventLogger(cfg *config.Config, logger *slog.Logger) (formlog.Logger, func() error, error) {
	loggers := []formlog.Logger{formlog.NewSlogAdapter(logger)}
	closeFn := func() error { return nil }

	if cfg.Log.Events != "" {
		fl, err := formlog.NewFileLogger(cfg.Log.Events)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open event log: %w", err)
		}
		loggers = append(loggers, fl)
		closeFn = func() error {
			logger.Debug("closing event log", slog.String("path", cfg.Log.Events), slog.Int("sessions", fl.Sessions()))
			return fl.Close()
		}
	}
	return formlog.NewMultiLogger(loggers...), closeFn, nil
}
