package ext

import (
	"strings"

	"github.com/DavisLCVB/doptions"
)

// Point is a point in the plane, written "(x,y)".
type Point struct {
	X, Y float64
}

// ParsePoint parses "(x,y)". Coordinates are floats and may be surrounded by
// white space.
func ParsePoint(s string) (Point, error) {
	if len(s) < 2 || s[0] != '(' || s[len(s)-1] != ')' {
		return Point{}, formatError("point", s, "(x,y)")
	}
	x, y, ok := strings.Cut(s[1:len(s)-1], ",")
	if !ok {
		return Point{}, formatError("point", s, "(x,y)")
	}
	px, err := doptions.Convert[float64](builtin, strings.TrimSpace(x))
	if err != nil {
		return Point{}, err
	}
	py, err := doptions.Convert[float64](builtin, strings.TrimSpace(y))
	if err != nil {
		return Point{}, err
	}
	return Point{X: px, Y: py}, nil
}

// Polygon is a closed shape given by its vertices.
type Polygon []Point

// ParsePolygon parses "[(x1,y1),(x2,y2),(x3,y3),...]". A polygon has at
// least 3 vertices; "[]" is the empty polygon.
func ParsePolygon(s string) (Polygon, error) {
	body, ok := enclosed(s, '[', ']')
	if !ok {
		return nil, formatError("polygon", s, "[(x,y),...]")
	}
	if strings.TrimSpace(body) == "" {
		return Polygon{}, nil
	}
	var p Polygon
	for {
		start := strings.IndexByte(body, '(')
		if start < 0 {
			break
		}
		end := strings.IndexByte(body[start:], ')')
		if end < 0 {
			return nil, formatError("polygon", s, "[(x,y),...]")
		}
		pt, err := ParsePoint(body[start : start+end+1])
		if err != nil {
			return nil, err
		}
		p = append(p, pt)
		body = body[start+end+1:]
	}
	if len(p) < 3 {
		return nil, formatError("polygon", s, "at least 3 vertices")
	}
	return p, nil
}
