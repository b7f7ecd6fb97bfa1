package ext

import (
	"strconv"
	"strings"
	"time"

	"github.com/DavisLCVB/doptions"
)

var units = map[string]time.Duration{
	"ms": time.Millisecond,
	"s":  time.Second,
	"m":  time.Minute,
	"h":  time.Hour,
	"d":  24 * time.Hour,
}

// ParseDuration parses a whole number followed by one unit: ms, s, m, h or
// d. Unlike time.ParseDuration, the unit is required and units cannot be
// combined.
func ParseDuration(s string) (time.Duration, error) {
	i := strings.IndexFunc(s, func(r rune) bool { return r < '0' || r > '9' })
	if i <= 0 {
		return 0, formatError("duration", s, "a number followed by ms, s, m, h or d")
	}
	unit, ok := units[s[i:]]
	if !ok {
		return 0, formatError("duration", s, "unit ms, s, m, h or d")
	}
	n, err := strconv.ParseInt(s[:i], 10, 64)
	if err != nil || n > int64(1<<63-1)/int64(unit) {
		return 0, &doptions.ValueOutOfRangeError{Type: "duration", Value: s, Min: "0", Max: time.Duration(1<<63 - 1).String()}
	}
	return time.Duration(n) * unit, nil
}
