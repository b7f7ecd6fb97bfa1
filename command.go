package doptions

import (
	"log/slog"
)

// Command is a named group of options. When its name appears in the
// arguments given to Application.Parse, the remaining arguments are parsed
// by the command.
type Command struct {
	name string
	opts optionSet
}

// NewCommand returns a Command using the default policy and no extension
// converters.
func NewCommand(name string) (*Command, error) {
	return newCommand(defaultScope, name)
}

// CustomCommand returns a Command using a copy of config. The name must be a
// valid long name.
func CustomCommand(config *Config, name string) (*Command, error) {
	s, err := newScope(config)
	if err != nil {
		return nil, err
	}
	return newCommand(s, name)
}

func newCommand(s *scope, name string) (*Command, error) {
	if err := validateCommandName(s.validator, name); err != nil {
		return nil, err
	}
	return &Command{name: name, opts: newOptionSet(s)}, nil
}

func validateCommandName(v *Validator, name string) error {
	if err := v.ValidateName(name); err != nil {
		return err
	}
	return v.ValidateSize(name, false)
}

// Name returns the name of the command.
func (c *Command) Name() string { return c.name }

// AddOption adds an option to the command. See CustomOption for the format of
// spec and the requirements on target.
func (c *Command) AddOption(spec string, target any) (*Option, error) {
	return c.opts.add(spec, target)
}

// Options returns the options of the command in the order they were added.
func (c *Command) Options() []*Option {
	return c.opts.list()
}

// Parse parses args, which must contain only option names and their values.
// Each option may appear at most once, by either of its names. Options not
// present in args keep the value of their targets.
//
// Parse stops at the first error. Targets already written are not restored.
func (c *Command) Parse(args []string) error {
	seen := make(map[int]bool)
	for i := 0; i < len(args); {
		k, ok := c.opts.lookup(args[i])
		if !ok {
			return &UnknownArgumentError{Arg: args[i]}
		}
		next, err := c.opts.consume(args, i, k, seen)
		if err != nil {
			return err
		}
		i = next
	}
	c.opts.scope.logger.Debug("command parsed",
		slog.String("command", c.name),
		slog.Int("args", len(args)))
	return nil
}
