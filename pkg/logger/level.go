package logger

import (
	"fmt"
	"log/slog"
	"strings"
)

// ParseLevel converts a level name such as "debug" or "WARN" to slog.Level.
// "warning" is accepted as an alias for warn.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
}
