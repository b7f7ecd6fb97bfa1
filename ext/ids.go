package ext

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/google/uuid"
)

// ParseUUID parses a UUID in any of the forms accepted by uuid.Parse.
func ParseUUID(s string) (uuid.UUID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: uuid %q: %v", ErrFormat, s, err)
	}
	return u, nil
}

// ParseVersion parses a semantic version such as "1.2.3" or "v2.0.0-rc.1".
func ParseVersion(s string) (*semver.Version, error) {
	v, err := semver.NewVersion(s)
	if err != nil {
		return nil, fmt.Errorf("%w: version %q: %v", ErrFormat, s, err)
	}
	return v, nil
}

// ParseConstraint parses a version constraint such as ">= 1.2, < 2".
func ParseConstraint(s string) (*semver.Constraints, error) {
	c, err := semver.NewConstraint(s)
	if err != nil {
		return nil, fmt.Errorf("%w: version constraint %q: %v", ErrFormat, s, err)
	}
	return c, nil
}
