package ext

import (
	"strings"

	"github.com/DavisLCVB/doptions"
)

// Range is an inclusive integer interval.
type Range struct {
	Min, Max int
}

// ParseRange parses "min..max" or "min-max". Min may be negative and must
// not exceed Max.
func ParseRange(s string) (Range, error) {
	lo, hi, ok := strings.Cut(s, "..")
	if !ok {
		// a leading '-' is a sign, not the separator
		i := -1
		if len(s) > 1 {
			i = strings.IndexByte(s[1:], '-')
		}
		if i < 0 {
			return Range{}, formatError("range", s, "min..max or min-max")
		}
		lo, hi = s[:i+1], s[i+2:]
	}
	from, err := doptions.Convert[int](builtin, strings.TrimSpace(lo))
	if err != nil {
		return Range{}, err
	}
	to, err := doptions.Convert[int](builtin, strings.TrimSpace(hi))
	if err != nil {
		return Range{}, err
	}
	if from > to {
		return Range{}, formatError("range", s, "min <= max")
	}
	return Range{Min: from, Max: to}, nil
}

// Contains reports whether i is in r.
func (r Range) Contains(i int) bool {
	return i >= r.Min && i <= r.Max
}
