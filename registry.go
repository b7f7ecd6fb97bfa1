package doptions

import (
	"fmt"
	"reflect"
)

// Kind identifies how an option converts its value. Every builtin kind
// corresponds to a basic Go type supported by the Parse* functions of the
// strconv package. Values of kind KindExtension are converted by a function
// registered in a Registry.
type Kind uint8

// Option kinds.
const (
	KindExtension Kind = iota
	KindBool
	KindString
	KindInt
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64
)

var kindNames = [...]string{
	KindExtension: "extension",
	KindBool:      "bool",
	KindString:    "string",
	KindInt:       "int",
	KindInt8:      "int8",
	KindInt16:     "int16",
	KindInt32:     "int32",
	KindInt64:     "int64",
	KindUint:      "uint",
	KindUint8:     "uint8",
	KindUint16:    "uint16",
	KindUint32:    "uint32",
	KindUint64:    "uint64",
	KindFloat32:   "float32",
	KindFloat64:   "float64",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// kindOf maps a reflect.Kind to a builtin Kind, or KindExtension if there is
// no builtin conversion for it.
func kindOf(k reflect.Kind) Kind {
	switch k {
	case reflect.Bool:
		return KindBool
	case reflect.String:
		return KindString
	case reflect.Int:
		return KindInt
	case reflect.Int8:
		return KindInt8
	case reflect.Int16:
		return KindInt16
	case reflect.Int32:
		return KindInt32
	case reflect.Int64:
		return KindInt64
	case reflect.Uint:
		return KindUint
	case reflect.Uint8:
		return KindUint8
	case reflect.Uint16:
		return KindUint16
	case reflect.Uint32:
		return KindUint32
	case reflect.Uint64:
		return KindUint64
	case reflect.Float32:
		return KindFloat32
	case reflect.Float64:
		return KindFloat64
	}
	return KindExtension
}

// Converter converts a string to a value of the type it is registered for.
// It returns an error for malformed input.
type Converter func(value string) (any, error)

// Registry maps types to converters. Builtin kinds need no registration:
// they are resolved from the kind of the type. A converter registered for a
// named type with a builtin kind (e.g. type Port uint16) takes precedence over
// the builtin conversion.
type Registry struct {
	converters map[reflect.Type]Converter
}

// NewRegistry returns a Registry without extension converters.
func NewRegistry() *Registry {
	return &Registry{converters: make(map[reflect.Type]Converter)}
}

// Register adds fn as the converter for typ. A type can be registered only
// once, and predeclared types (bool, string, int, ...) cannot be registered.
func (r *Registry) Register(typ reflect.Type, fn Converter) error {
	switch {
	case typ == nil:
		return fmt.Errorf("cannot register converter for nil type")
	case fn == nil:
		return fmt.Errorf("cannot register nil converter for %v", typ)
	case isPredeclared(typ):
		return fmt.Errorf("cannot register converter for builtin type %v", typ)
	}
	if _, ok := r.converters[typ]; ok {
		return fmt.Errorf("converter for %v already registered", typ)
	}
	r.converters[typ] = fn
	return nil
}

// Register adds fn as the converter for T in r.
func Register[T any](r *Registry, fn func(string) (T, error)) error {
	if fn == nil {
		return r.Register(reflect.TypeOf((*T)(nil)).Elem(), nil)
	}
	return r.Register(reflect.TypeOf((*T)(nil)).Elem(), func(value string) (any, error) {
		v, err := fn(value)
		if err != nil {
			return nil, err
		}
		return v, nil
	})
}

// Registered returns true if an extension converter is registered for typ.
func (r *Registry) Registered(typ reflect.Type) bool {
	_, ok := r.converters[typ]
	return ok
}

// Clone returns a copy of r. Later registrations in either one do not affect
// the other.
func (r *Registry) Clone() *Registry {
	c := NewRegistry()
	for t, fn := range r.converters {
		c.converters[t] = fn
	}
	return c
}

// resolve returns the kind and, for extensions, the converter to use for
// values of type typ. It returns false if typ cannot be converted.
func (r *Registry) resolve(typ reflect.Type) (Kind, Converter, bool) {
	if fn, ok := r.converters[typ]; ok {
		return KindExtension, fn, true
	}
	if k := kindOf(typ.Kind()); k != KindExtension {
		return k, nil, true
	}
	return KindExtension, nil, false
}

// Convert converts value to T using the converters of r.
func Convert[T any](r *Registry, value string) (T, error) {
	var t T
	typ := reflect.TypeOf((*T)(nil)).Elem()
	k, fn, ok := r.resolve(typ)
	if !ok {
		return t, fmt.Errorf("%w: no converter for type %v", ErrInvalidTarget, typ)
	}
	err := assign(k, fn, reflect.ValueOf(&t).Elem(), value)
	return t, err
}

// isPredeclared returns true for the unnamed-package basic types.
func isPredeclared(typ reflect.Type) bool {
	return typ.PkgPath() == "" && typ.Name() != "" && kindOf(typ.Kind()) != KindExtension
}
