package doptions

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Default name length limits.
const (
	DefaultShortNameMaxLength = 3
	DefaultLongNameMaxLength  = 100
)

// Policy holds the rules names of options and commands must obey. Short
// names have between 1 and ShortNameMaxLength characters, long names between
// ShortNameMaxLength+1 and LongNameMaxLength characters. The first character
// of a name is always an ASCII letter, the others are ASCII letters or
// digits, or one of the separators enabled by the Allow fields. A name listed
// in ReservedNames is rejected.
type Policy struct {
	ShortNameMaxLength int      `yaml:"short_name_max_length" toml:"short_name_max_length"`
	LongNameMaxLength  int      `yaml:"long_name_max_length" toml:"long_name_max_length"`
	AllowDots          bool     `yaml:"allow_dots" toml:"allow_dots"`
	AllowDashes        bool     `yaml:"allow_dashes" toml:"allow_dashes"`
	AllowUnderscores   bool     `yaml:"allow_underscores" toml:"allow_underscores"`
	ReservedNames      []string `yaml:"reserved_names" toml:"reserved_names"`
}

// DefaultPolicy returns the default policy: short names up to 3 characters,
// long names up to 100, dashes and underscores allowed, dots not allowed.
func DefaultPolicy() Policy {
	return Policy{
		ShortNameMaxLength: DefaultShortNameMaxLength,
		LongNameMaxLength:  DefaultLongNameMaxLength,
		AllowDashes:        true,
		AllowUnderscores:   true,
	}
}

// Validate returns an error if the limits of the policy are inconsistent.
func (p Policy) Validate() error {
	if p.ShortNameMaxLength < 1 {
		return fmt.Errorf("invalid policy: short name max length %d is less than 1", p.ShortNameMaxLength)
	}
	if p.LongNameMaxLength <= p.ShortNameMaxLength {
		return fmt.Errorf("invalid policy: long name max length %d must exceed short name max length %d",
			p.LongNameMaxLength, p.ShortNameMaxLength)
	}
	return nil
}

func (p Policy) copy() Policy {
	c := p
	if p.ReservedNames != nil {
		c.ReservedNames = append([]string(nil), p.ReservedNames...)
	}
	return c
}

// DecodePolicyYAML decodes a policy from YAML. Keys missing from the input
// keep their default value.
func DecodePolicyYAML(data []byte) (Policy, error) {
	p := DefaultPolicy()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return Policy{}, fmt.Errorf("decoding policy: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Policy{}, err
	}
	return p, nil
}

// DecodePolicyTOML decodes a policy from TOML. Keys missing from the input
// keep their default value.
func DecodePolicyTOML(data []byte) (Policy, error) {
	p := DefaultPolicy()
	md, err := toml.Decode(string(data), &p)
	if err != nil {
		return Policy{}, fmt.Errorf("decoding policy: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Policy{}, fmt.Errorf("decoding policy: unknown key %q", undecoded[0].String())
	}
	if err := p.Validate(); err != nil {
		return Policy{}, err
	}
	return p, nil
}

// LoadPolicyFile reads a policy from a file. The format is selected by the
// file extension: .yaml, .yml or .toml.
func LoadPolicyFile(path string) (Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Policy{}, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return DecodePolicyYAML(data)
	case ".toml":
		return DecodePolicyTOML(data)
	default:
		return Policy{}, fmt.Errorf("policy file %q: unsupported extension %q", path, ext)
	}
}
