package ext

import (
	"slices"
	"strings"

	"github.com/DavisLCVB/doptions"
)

// IntList is written "[1,2,3]".
type IntList []int

// StringList is written "[a,b,c]".
type StringList []string

// IntSet is written "{3,1,2}". Its elements are sorted and unique.
type IntSet []int

// KeyValues is written "{key:value,...}".
type KeyValues map[string]string

// enclosed returns the inside of s if s starts with first and ends with last.
func enclosed(s string, first, last byte) (string, bool) {
	if len(s) < 2 || s[0] != first || s[len(s)-1] != last {
		return "", false
	}
	return s[1 : len(s)-1], true
}

// items splits a comma separated list, trimming each item. Empty items are
// dropped.
func items(body string) []string {
	var out []string
	for _, it := range strings.Split(body, ",") {
		if it = strings.TrimSpace(it); it != "" {
			out = append(out, it)
		}
	}
	return out
}

func ints(body string) ([]int, error) {
	list := make([]int, 0)
	for _, it := range items(body) {
		i, err := doptions.Convert[int](builtin, it)
		if err != nil {
			return nil, err
		}
		list = append(list, i)
	}
	return list, nil
}

// ParseIntList parses "[1,2,3]". Elements may be surrounded by white space.
func ParseIntList(s string) (IntList, error) {
	body, ok := enclosed(s, '[', ']')
	if !ok {
		return nil, formatError("int list", s, "[v1,v2,...]")
	}
	list, err := ints(body)
	return IntList(list), err
}

// ParseStringList parses "[a,b,c]". Elements are trimmed and empty elements
// are dropped.
func ParseStringList(s string) (StringList, error) {
	body, ok := enclosed(s, '[', ']')
	if !ok {
		return nil, formatError("string list", s, "[v1,v2,...]")
	}
	list := items(body)
	if list == nil {
		list = []string{}
	}
	return StringList(list), nil
}

// ParseIntSet parses "{3,1,3}" into the sorted set {1,3}.
func ParseIntSet(s string) (IntSet, error) {
	body, ok := enclosed(s, '{', '}')
	if !ok {
		return nil, formatError("int set", s, "{v1,v2,...}")
	}
	list, err := ints(body)
	if err != nil {
		return nil, err
	}
	slices.Sort(list)
	return IntSet(slices.Compact(list)), nil
}

// ParseKeyValues parses "{key:value,...}". Keys and values are trimmed; keys
// must not be empty. A repeated key keeps its last value.
func ParseKeyValues(s string) (KeyValues, error) {
	body, ok := enclosed(s, '{', '}')
	if !ok {
		return nil, formatError("key values", s, "{k1:v1,k2:v2}")
	}
	kv := make(KeyValues)
	if strings.TrimSpace(body) == "" {
		return kv, nil
	}
	for _, pair := range strings.Split(body, ",") {
		k, v, ok := strings.Cut(pair, ":")
		if !ok {
			return nil, formatError("key value pair", pair, "key:value")
		}
		k = strings.TrimSpace(k)
		if k == "" {
			return nil, formatError("key value pair", pair, "a non-empty key")
		}
		kv[k] = strings.TrimSpace(v)
	}
	return kv, nil
}
