package doptions

import (
	"log/slog"
)

// optionSet is the ordered list of options shared by Application and
// Command, with the name index used to match tokens.
type optionSet struct {
	scope   *scope
	options []*Option
	index   map[string]int // canonical name -> position in options
}

func newOptionSet(s *scope) optionSet {
	return optionSet{scope: s, index: make(map[string]int)}
}

// add creates an option and appends it. No name of the new option may be
// used by an option already in the set.
func (set *optionSet) add(spec string, target any) (*Option, error) {
	o, err := newOption(set.scope, spec, target)
	if err != nil {
		return nil, err
	}
	for _, name := range o.Names() {
		if _, ok := set.index[name]; ok {
			return nil, &DuplicateNameError{Name: name}
		}
	}
	for _, name := range o.Names() {
		set.index[name] = len(set.options)
	}
	set.options = append(set.options, o)
	return o, nil
}

// list returns a copy of the options in registration order.
func (set *optionSet) list() []*Option {
	return append([]*Option(nil), set.options...)
}

// lookup returns the position of the option named by token.
func (set *optionSet) lookup(token string) (int, bool) {
	k, ok := set.index[token]
	return k, ok
}

// consume handles the option k matched by args[i] and returns the index of
// the next unprocessed token. Options already in seen are rejected; k is
// added to seen on success.
func (set *optionSet) consume(args []string, i, k int, seen map[int]bool) (int, error) {
	o := set.options[k]
	if seen[k] {
		return 0, &DuplicateArgumentError{Names: o.Names()}
	}
	next := i + 1
	value := "true"
	if o.NeedsValue() {
		if next >= len(args) {
			return 0, &InsufficientValuesError{Arg: args[i]}
		}
		value = args[next]
		next++
	}
	if err := o.ParseValue(value); err != nil {
		return 0, err
	}
	seen[k] = true
	set.scope.logger.Debug("option matched",
		slog.String("token", args[i]),
		slog.String("option", o.String()),
		slog.String("kind", o.Kind().String()))
	return next, nil
}
