package util

import (
	"strconv"
	"strings"
)

type StringParsable interface {
	string | int | float64
}

// SplitList splits a comma separated value and trims every element. Empty
// elements are dropped.
func SplitList(s string) []string {
	parts := strings.Split(s, ",")
	v := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v = append(v, p)
	}
	return v
}

// ParseStringAs parses the input string as a StringParsable type, returning the default
// if an error occurs.
func ParseStringAs[T StringParsable](v string, def T) T {
	v = strings.Trim(v, `"`) // in case something comes in as if it were a json string

	var parser func(string) (any, error)
	switch any(def).(type) {
	case string:
		parser = func(s string) (any, error) { return s, nil }
	case int:
		parser = func(s string) (any, error) { return strconv.Atoi(s) }
	case float64:
		parser = func(s string) (any, error) { return strconv.ParseFloat(s, 64) }
	default:
		panic("ParseStringAs got a type we can't handle")
	}

	val, err := parser(v)
	if err != nil {
		logger.With("value", v, "error", err).Warn("Could not parse value, using default")
		return def
	}
	return val.(T)
}
