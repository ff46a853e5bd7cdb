package config

import (
	"fmt"
	"sort"
	"strings"
)

// ParseList splits a comma-separated list, trimming whitespace and dropping empty items.
func ParseList(input string) []string {
	var out []string
	for _, item := range strings.Split(input, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

// ParseKeyValuePairs parses a comma-separated string of key=value pairs.
// Empty pairs are ignored. A pair without "=" or with an empty key is an error.
func ParseKeyValuePairs(input string) (map[string]string, error) {
	result := map[string]string{}
	for _, pair := range ParseList(input) {
		key, val, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid key=value pair %q", pair)
		}
		result[key] = strings.TrimSpace(val)
	}
	return result, nil
}

// ListValue is a flag.Value holding a comma-separated list. Repeated flags append.
type ListValue []string

func (l *ListValue) String() string { return strings.Join(*l, ",") }

func (l *ListValue) Set(s string) error {
	*l = append(*l, ParseList(s)...)
	return nil
}

// MapValue is a flag.Value holding key=value pairs. Repeated flags merge, later keys win.
type MapValue map[string]string

func (m *MapValue) String() string {
	if m == nil || *m == nil {
		return ""
	}
	keys := make([]string, 0, len(*m))
	for k := range *m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, len(keys))
	for i, k := range keys {
		pairs[i] = k + "=" + (*m)[k]
	}
	return strings.Join(pairs, ",")
}

func (m *MapValue) Set(s string) error {
	pairs, err := ParseKeyValuePairs(s)
	if err != nil {
		return err
	}
	if *m == nil {
		*m = MapValue{}
	}
	for k, v := range pairs {
		(*m)[k] = v
	}
	return nil
}
