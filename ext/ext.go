// Package ext provides converters for types that are often given on the
// command line: lists, sets, ranges, durations, log levels, network
// addresses, colors, identifiers and versions. Register adds all of them to
// a doptions.Registry.
package ext

import (
	"errors"
	"fmt"
	"log/slog"
	"net/netip"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/google/uuid"

	"github.com/DavisLCVB/doptions"
)

// ErrFormat is wrapped by every error returned for malformed input.
var ErrFormat = errors.New("invalid format")

// builtin converts list elements and other scalar parts.
var builtin = doptions.NewRegistry()

// Register adds the converters of this package to r. Types already
// registered in r are reported as errors, the others are still added.
func Register(r *doptions.Registry) error {
	return errors.Join(
		doptions.Register(r, ParsePoint),
		doptions.Register(r, ParsePolygon),
		doptions.Register(r, ParseIntList),
		doptions.Register(r, ParseStringList),
		doptions.Register(r, ParseKeyValues),
		doptions.Register(r, ParseIntSet),
		doptions.Register(r, ParseRange),
		doptions.Register[time.Duration](r, ParseDuration),
		doptions.Register[slog.Level](r, ParseLevel),
		doptions.Register[netip.Addr](r, ParseIPv4),
		doptions.Register(r, ParseColor),
		doptions.Register(r, ParseDatabaseConfig),
		doptions.Register[uuid.UUID](r, ParseUUID),
		doptions.Register[*semver.Version](r, ParseVersion),
		doptions.Register[*semver.Constraints](r, ParseConstraint),
	)
}

func formatError(typ, value, want string) error {
	return fmt.Errorf("%w: %s %q, expected %s", ErrFormat, typ, value, want)
}
