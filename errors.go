package doptions

import (
	"errors"
	"fmt"
	"strings"
)

// Error categories. Every error returned while defining options and commands
// matches ErrBuild with errors.Is, every error returned while parsing
// arguments matches ErrParse.
var (
	ErrBuild = errors.New("build error")
	ErrParse = errors.New("parse error")

	// ErrInvalidTarget is wrapped by errors about option targets that are
	// not pointers or point to a type without a converter.
	ErrInvalidTarget = errors.New("invalid target")
)

// EmptyNameError is returned when a name, or one half of a combined
// short/long option spec, is empty after trimming.
type EmptyNameError struct {
	Label string // which name was empty, e.g. "short name"
}

func (e *EmptyNameError) Error() string {
	return fmt.Sprintf("name cannot be empty: %s", e.Label)
}

func (e *EmptyNameError) Is(target error) bool { return target == ErrBuild }

// InvalidNameError is returned when a name does not start with an ASCII
// letter, contains a character the policy does not allow, or is reserved.
type InvalidNameError struct {
	Name   string
	Reason string
}

func (e *InvalidNameError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("invalid name: %q", e.Name)
	}
	return fmt.Sprintf("invalid name: %q (%s)", e.Name, e.Reason)
}

func (e *InvalidNameError) Is(target error) bool { return target == ErrBuild }

// InvalidSizeError is returned when the length of a name is outside the
// bounds of its category. Min and Max are inclusive.
type InvalidSizeError struct {
	Name     string
	Size     int
	Min, Max int
	Short    bool
}

func (e *InvalidSizeError) Error() string {
	which := "long"
	if e.Short {
		which = "short"
	}
	return fmt.Sprintf("name %q has invalid size %d (%s: %d-%d)", e.Name, e.Size, which, e.Min, e.Max)
}

func (e *InvalidSizeError) Is(target error) bool { return target == ErrBuild }

// DuplicateNameError is returned when an option or command name is already
// used in the same scope.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("name %q already defined", e.Name)
}

func (e *DuplicateNameError) Is(target error) bool { return target == ErrBuild }

// UnknownArgumentError is returned when a token matches neither an option
// nor a command.
type UnknownArgumentError struct {
	Arg string
}

func (e *UnknownArgumentError) Error() string {
	return fmt.Sprintf("unknown argument: %s", e.Arg)
}

func (e *UnknownArgumentError) Is(target error) bool { return target == ErrParse }

// InsufficientValuesError is returned when an option taking a value is the
// last token.
type InsufficientValuesError struct {
	Arg string
}

func (e *InsufficientValuesError) Error() string {
	return fmt.Sprintf("insufficient values for argument: %s", e.Arg)
}

func (e *InsufficientValuesError) Is(target error) bool { return target == ErrParse }

// DuplicateArgumentError is returned when an option is given more than once,
// by any of its names. Names holds all the names of the option.
type DuplicateArgumentError struct {
	Names []string
}

func (e *DuplicateArgumentError) Error() string {
	return fmt.Sprintf("argument appears multiple times: %s", strings.Join(e.Names, ", "))
}

func (e *DuplicateArgumentError) Is(target error) bool { return target == ErrParse }

// ValueOutOfRangeError is returned when an integer literal is well formed but
// does not fit the target type.
type ValueOutOfRangeError struct {
	Type     string
	Value    string
	Min, Max string
}

func (e *ValueOutOfRangeError) Error() string {
	return fmt.Sprintf("value out of range for %s: %s (%s - %s)", e.Type, e.Value, e.Min, e.Max)
}

func (e *ValueOutOfRangeError) Is(target error) bool { return target == ErrParse }

// ConversionError is returned when a literal cannot be parsed as the base
// representation of the target type.
type ConversionError struct {
	Type  string
	Value string
	Err   error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("cannot convert %q to %s: %v", e.Value, e.Type, e.Err)
}

func (e *ConversionError) Unwrap() error { return e.Err }

func (e *ConversionError) Is(target error) bool { return target == ErrParse }

// OptionValueError decorates any conversion failure with the option it
// happened on. Err is the converter's error, unchanged.
type OptionValueError struct {
	Option string
	Value  string
	Err    error
}

func (e *OptionValueError) Error() string {
	return fmt.Sprintf("parse error on %s: %v", e.Option, e.Err)
}

func (e *OptionValueError) Unwrap() error { return e.Err }

func (e *OptionValueError) Is(target error) bool { return target == ErrParse }

// InvalidTargetError is returned when an option target is not a non-nil
// pointer, or points to a type without a converter.
type InvalidTargetError struct {
	Option string // spec as given
	Type   string // target type, "" if not a pointer
	Reason string
}

func (e *InvalidTargetError) Error() string {
	if e.Type == "" {
		return fmt.Sprintf("invalid target for option %q: %s", e.Option, e.Reason)
	}
	return fmt.Sprintf("invalid target for option %q: %s: %s", e.Option, e.Type, e.Reason)
}

func (e *InvalidTargetError) Unwrap() error { return ErrInvalidTarget }

func (e *InvalidTargetError) Is(target error) bool { return target == ErrBuild }
