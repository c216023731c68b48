package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nhle/contract-tracker/internal/model"
)

// New builds the application logger from cfg. Log lines go to cfg.File as
// JSON because the terminal is owned by the UI; an empty file disables
// logging. The returned close function releases the file.
func New(cfg model.LogConfig) (zerolog.Logger, func() error, error) {
	level, err := parseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), noop, err
	}

	if strings.TrimSpace(cfg.File) == "" {
		return zerolog.Nop(), noop, nil
	}

	if dir := filepath.Dir(cfg.File); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return zerolog.Nop(), noop, fmt.Errorf("creating log directory %s: %w", dir, err)
		}
	}

	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), noop, fmt.Errorf("opening log file %s: %w", cfg.File, err)
	}

	return NewWriter(f, level), f.Close, nil
}

// NewWriter returns a logger writing to w at the given level, tagged with
// a run ID that is unique per process start.
func NewWriter(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Str("run_id", uuid.NewString()).
		Logger()
}

// parseLevel maps a configured level name to a zerolog level. Empty means info.
func parseLevel(s string) (zerolog.Level, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(s)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}

func noop() error { return nil }
