package doptions

import (
	"log/slog"
)

// Application is the top level of a command line: global options followed
// by at most one command.
type Application struct {
	opts     optionSet
	commands []*appCommand
	index    map[string]int // command name -> position in commands
}

type appCommand struct {
	cmd      *Command
	executed *bool
}

// NewApp returns an Application using the default policy and no extension
// converters.
func NewApp() *Application {
	return newApp(defaultScope)
}

// CustomApp returns an Application using a copy of config. Changes made to
// config after the call have no effect on the Application. It returns an
// error if config.Policy is inconsistent.
func CustomApp(config *Config) (*Application, error) {
	s, err := newScope(config)
	if err != nil {
		return nil, err
	}
	return newApp(s), nil
}

func newApp(s *scope) *Application {
	return &Application{opts: newOptionSet(s), index: make(map[string]int)}
}

// AddOption adds a global option. See CustomOption for the format of spec
// and the requirements on target.
func (a *Application) AddOption(spec string, target any) (*Option, error) {
	return a.opts.add(spec, target)
}

// AddCommand adds a command named name, which must be a valid long name. If
// executed is not nil, Parse sets *executed to true when the command runs;
// it never sets it to false.
func (a *Application) AddCommand(name string, executed *bool) (*Command, error) {
	if _, ok := a.index[name]; ok {
		return nil, &DuplicateNameError{Name: name}
	}
	c, err := newCommand(a.opts.scope, name)
	if err != nil {
		return nil, err
	}
	a.index[name] = len(a.commands)
	a.commands = append(a.commands, &appCommand{cmd: c, executed: executed})
	return c, nil
}

// Options returns the global options in the order they were added.
func (a *Application) Options() []*Option {
	return a.opts.list()
}

// Commands returns the commands in the order they were added.
func (a *Application) Commands() []*Command {
	cmds := make([]*Command, len(a.commands))
	for i, ac := range a.commands {
		cmds[i] = ac.cmd
	}
	return cmds
}

// Parse parses args, which do not include the program name. Tokens are
// global options and their values until a command name is found; all tokens
// after the command name are parsed by that command, and parsing ends.
//
// Parse stops at the first error. Targets already written are not restored.
func (a *Application) Parse(args []string) error {
	log := a.opts.scope.logger
	seen := make(map[int]bool)
	for i := 0; i < len(args); {
		token := args[i]
		if j, ok := a.index[token]; ok {
			ac := a.commands[j]
			log.Debug("command dispatched",
				slog.String("command", token),
				slog.Int("position", i))
			if err := ac.cmd.Parse(args[i+1:]); err != nil {
				return err
			}
			if ac.executed != nil {
				*ac.executed = true
			}
			return nil
		}
		k, ok := a.opts.lookup(token)
		if !ok {
			return &UnknownArgumentError{Arg: token}
		}
		next, err := a.opts.consume(args, i, k, seen)
		if err != nil {
			return err
		}
		i = next
	}
	return nil
}

// ParseArgv parses argv as given to the program, skipping the program name
// in argv[0].
func (a *Application) ParseArgv(argv []string) error {
	if len(argv) == 0 {
		return nil
	}
	return a.Parse(argv[1:])
}
