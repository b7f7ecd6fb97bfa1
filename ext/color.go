package ext

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/DavisLCVB/doptions"
)

// Color is an RGB color.
type Color struct {
	R, G, B uint8
}

// ParseColor parses "#rrggbb" or "rgb(r,g,b)".
func ParseColor(s string) (Color, error) {
	if hex, ok := strings.CutPrefix(s, "#"); ok {
		if len(hex) != 6 {
			return Color{}, formatError("color", s, "#rrggbb")
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return Color{}, formatError("color", s, "#rrggbb")
		}
		return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
	}
	body, ok := strings.CutPrefix(s, "rgb")
	if ok {
		body, ok = enclosed(body, '(', ')')
	}
	if !ok {
		return Color{}, formatError("color", s, "#rrggbb or rgb(r,g,b)")
	}
	parts := strings.Split(body, ",")
	if len(parts) != 3 {
		return Color{}, formatError("color", s, "rgb(r,g,b)")
	}
	var c [3]uint8
	for i, p := range parts {
		v, err := doptions.Convert[uint8](builtin, strings.TrimSpace(p))
		if err != nil {
			return Color{}, err
		}
		c[i] = v
	}
	return Color{R: c[0], G: c[1], B: c[2]}, nil
}

func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
