package doptions

import (
	"reflect"
	"strings"
)

// Option binds a short name, a long name, or both, to a target variable. An
// Option is created by NewOption, CustomOption, or the AddOption methods of
// Application and Command. Its names never change after creation.
//
// An Option keeps a reference to its target but does not own it: the caller
// must keep the variable alive as long as the Option can parse values into
// it.
type Option struct {
	short  string // "-s" or ""
	long   string // "--long" or ""
	kind   Kind
	target reflect.Value // settable
	conv   Converter     // only for KindExtension
}

// NewOption returns an Option using the default policy and no extension
// converters. See CustomOption.
func NewOption(spec string, target any) (*Option, error) {
	return newOption(defaultScope, spec, target)
}

// CustomOption returns an Option for the names in spec, writing values into
// target, using the policy and converters of config.
//
// The spec is either a single name or a short and a long name separated by a
// comma, e.g. "-n,--number". White space around each name is ignored. A
// single name starting with "--" is long, a single name starting with "-" is
// short, any other single name is short if it is not longer than the maximum
// short name length. The target must be a non-nil pointer to a basic type or
// to a type with a converter registered in config.Registry.
func CustomOption(config *Config, spec string, target any) (*Option, error) {
	s, err := newScope(config)
	if err != nil {
		return nil, err
	}
	return newOption(s, spec, target)
}

func newOption(s *scope, spec string, target any) (*Option, error) {
	short, long, err := parseSpec(s.validator, spec)
	if err != nil {
		return nil, err
	}
	v := reflect.ValueOf(target)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return nil, &InvalidTargetError{Option: spec, Reason: "not a non-nil pointer"}
	}
	elem := v.Elem()
	k, conv, ok := s.registry.resolve(elem.Type())
	if !ok {
		return nil, &InvalidTargetError{Option: spec, Type: elem.Type().String(), Reason: "no converter registered"}
	}
	o := &Option{kind: k, target: elem, conv: conv}
	if short != "" {
		o.short = "-" + short
	}
	if long != "" {
		o.long = "--" + long
	}
	return o, nil
}

// parseSpec splits spec into a bare short name and a bare long name, one of
// which may be empty, and validates them.
func parseSpec(v *Validator, spec string) (string, string, error) {
	data := strings.TrimSpace(spec)
	if data == "" {
		return "", "", &EmptyNameError{Label: "option name"}
	}

	if i := strings.IndexByte(data, ','); i >= 0 {
		short := strings.TrimSpace(data[:i])
		long := strings.TrimSpace(data[i+1:])
		if short == "" {
			return "", "", &EmptyNameError{Label: "short name"}
		}
		if long == "" {
			return "", "", &EmptyNameError{Label: "long name"}
		}
		short = strings.TrimPrefix(short, "-")
		long = strings.TrimPrefix(long, "--")
		if err := v.ValidateName(short); err != nil {
			return "", "", err
		}
		if err := v.ValidateName(long); err != nil {
			return "", "", err
		}
		if err := v.ValidateSize(short, true); err != nil {
			return "", "", err
		}
		if err := v.ValidateSize(long, false); err != nil {
			return "", "", err
		}
		return short, long, nil
	}

	var isShort bool
	switch {
	case strings.HasPrefix(data, "--") && len(data) >= 3:
		data = data[2:]
	case data[0] == '-' && len(data) >= 2:
		data = data[1:]
		isShort = true
	default:
		isShort = len(data) <= v.policy.ShortNameMaxLength
	}
	data = strings.TrimSpace(data)
	if err := v.ValidateSize(data, isShort); err != nil {
		return "", "", err
	}
	if err := v.ValidateName(data); err != nil {
		return "", "", err
	}
	if isShort {
		return data, "", nil
	}
	return "", data, nil
}

// ShortName returns the short name with its "-" prefix, or "" if the option
// has no short name.
func (o *Option) ShortName() string { return o.short }

// LongName returns the long name with its "--" prefix, or "" if the option
// has no long name.
func (o *Option) LongName() string { return o.long }

// Names returns the names of the option, short name first.
func (o *Option) Names() []string {
	names := make([]string, 0, 2)
	if o.short != "" {
		names = append(names, o.short)
	}
	if o.long != "" {
		names = append(names, o.long)
	}
	return names
}

// Kind returns the conversion kind of the option.
func (o *Option) Kind() Kind { return o.kind }

// NeedsValue returns false for boolean options, which are set to true by
// their presence, and true for all others.
func (o *Option) NeedsValue() bool {
	return o.target.Kind() != reflect.Bool
}

// ParseValue converts value and stores it in the target. Conversion errors
// are returned as *OptionValueError wrapping the converter's error.
func (o *Option) ParseValue(value string) error {
	if err := assign(o.kind, o.conv, o.target, value); err != nil {
		return &OptionValueError{Option: o.String(), Value: value, Err: err}
	}
	return nil
}

// String returns the names of the option separated by a comma.
func (o *Option) String() string {
	return strings.Join(o.Names(), ", ")
}
