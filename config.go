package doptions

import (
	"io"
	"log/slog"
)

// Config holds the name policy, the converter registry and the logger used
// by an Application and its commands.
type Config struct {
	Policy   Policy
	Registry *Registry
	Logger   *slog.Logger
}

// NewConfig returns the address of a new default Config. Its logger discards
// everything.
func NewConfig() *Config {
	return &Config{
		Policy:   DefaultPolicy(),
		Registry: NewRegistry(),
		Logger:   discardLogger(),
	}
}

// copy returns a deep copy of c with nil fields replaced by defaults.
func (c *Config) copy() *Config {
	if c == nil {
		return NewConfig()
	}
	cp := &Config{Policy: c.Policy.copy(), Logger: c.Logger}
	if c.Registry != nil {
		cp.Registry = c.Registry.Clone()
	} else {
		cp.Registry = NewRegistry()
	}
	if cp.Logger == nil {
		cp.Logger = discardLogger()
	}
	return cp
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// scope is what options and commands need from their owner: a validator,
// converters and a logger.
type scope struct {
	validator *Validator
	registry  *Registry
	logger    *slog.Logger
}

// newScope copies config and builds a validator for its policy.
func newScope(config *Config) (*scope, error) {
	c := config.copy()
	v, err := NewValidator(c.Policy)
	if err != nil {
		return nil, err
	}
	return &scope{validator: v, registry: c.Registry, logger: c.Logger}, nil
}

// defaultScope is shared by NewApp, NewCommand and NewOption. It is never
// modified.
var defaultScope = func() *scope {
	s, err := newScope(NewConfig())
	if err != nil {
		panic(err)
	}
	return s
}()
