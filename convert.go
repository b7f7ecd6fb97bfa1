package doptions

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
)

// assign converts value according to k and sets v, which must be settable.
// Integers are parsed in base 10 as 64-bit values, then checked against the
// range of the target type.
func assign(k Kind, fn Converter, v reflect.Value, value string) error {
	typ := v.Type().String()
	switch k {
	case KindString:
		v.SetString(value)
	case KindBool:
		// presence flags only ever see "true"; anything else is false
		v.SetBool(value == "true")
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64:
		i, err := parseSigned(value, v.Type().Bits(), typ)
		if err != nil {
			return err
		}
		v.SetInt(i)
	case KindUint, KindUint8, KindUint16, KindUint32, KindUint64:
		u, err := parseUnsigned(value, v.Type().Bits(), typ)
		if err != nil {
			return err
		}
		v.SetUint(u)
	case KindFloat32, KindFloat64:
		f, err := strconv.ParseFloat(value, v.Type().Bits())
		if err != nil {
			return &ConversionError{Type: typ, Value: value, Err: numError(err)}
		}
		v.SetFloat(f)
	case KindExtension:
		if fn == nil {
			return fmt.Errorf("%w: no converter for type %s", ErrInvalidTarget, typ)
		}
		x, err := fn(value)
		if err != nil {
			return err
		}
		rv := reflect.ValueOf(x)
		switch {
		case !rv.IsValid():
			v.SetZero()
		case rv.Type().AssignableTo(v.Type()):
			v.Set(rv)
		default:
			return fmt.Errorf("%w: converter for %s returned %v", ErrInvalidTarget, typ, rv.Type())
		}
	default:
		return fmt.Errorf("%w: unknown kind %v", ErrInvalidTarget, k)
	}
	return nil
}

func parseSigned(value string, bits int, typ string) (int64, error) {
	lo, hi := signedBounds(bits)
	i, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, outOfRange(typ, value, strconv.FormatInt(lo, 10), strconv.FormatInt(hi, 10))
		}
		return 0, &ConversionError{Type: typ, Value: value, Err: numError(err)}
	}
	if i < lo || i > hi {
		return 0, outOfRange(typ, strconv.FormatInt(i, 10), strconv.FormatInt(lo, 10), strconv.FormatInt(hi, 10))
	}
	return i, nil
}

func parseUnsigned(value string, bits int, typ string) (uint64, error) {
	hi := unsignedMax(bits)
	u, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, outOfRange(typ, value, "0", strconv.FormatUint(hi, 10))
		}
		// ParseUint rejects signs: a signed literal may still be valid
		i, serr := strconv.ParseInt(value, 10, 64)
		switch {
		case serr == nil && i >= 0:
			u = uint64(i)
		case serr == nil || errors.Is(serr, strconv.ErrRange):
			return 0, outOfRange(typ, value, "0", strconv.FormatUint(hi, 10))
		default:
			return 0, &ConversionError{Type: typ, Value: value, Err: numError(err)}
		}
	}
	if u > hi {
		return 0, outOfRange(typ, strconv.FormatUint(u, 10), "0", strconv.FormatUint(hi, 10))
	}
	return u, nil
}

func outOfRange(typ, value, lo, hi string) error {
	return &ValueOutOfRangeError{Type: typ, Value: value, Min: lo, Max: hi}
}

// numError strips the strconv function name and the repeated input from a
// *strconv.NumError, which ConversionError already reports.
func numError(err error) error {
	var ne *strconv.NumError
	if errors.As(err, &ne) {
		return ne.Err
	}
	return err
}

func signedBounds(bits int) (int64, int64) {
	switch bits {
	case 8:
		return math.MinInt8, math.MaxInt8
	case 16:
		return math.MinInt16, math.MaxInt16
	case 32:
		return math.MinInt32, math.MaxInt32
	}
	return math.MinInt64, math.MaxInt64
}

func unsignedMax(bits int) uint64 {
	switch bits {
	case 8:
		return math.MaxUint8
	case 16:
		return math.MaxUint16
	case 32:
		return math.MaxUint32
	}
	return math.MaxUint64
}
