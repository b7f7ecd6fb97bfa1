package ext

import (
	"log/slog"
	"strings"
)

// ParseLevel parses a slog level name, ignoring case. "warning" and "crit"
// are accepted as aliases of "warn" and "error+4". Offsets such as
// "info+2" are accepted as by slog.Level.UnmarshalText.
func ParseLevel(s string) (slog.Level, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch name {
	case "warning":
		return slog.LevelWarn, nil
	case "crit", "critical":
		return slog.LevelError + 4, nil
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(name)); err != nil {
		return 0, formatError("log level", s, "debug, info, warn or error")
	}
	return l, nil
}
