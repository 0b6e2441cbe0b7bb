package serverenv

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// lookupString returns the variable value, or def when it is absent or
// empty.
func lookupString(l Lookup, name, def string) string {
	if v, ok := l.Lookup(name); ok && v != "" {
		return v
	}
	return def
}

// lookupRequired returns the variable value, failing when it is absent or
// empty.
func lookupRequired(l Lookup, name string) (string, error) {
	v, ok := l.Lookup(name)
	if !ok || v == "" {
		return "", &MissingVariableError{Name: name}
	}
	return v, nil
}

type unsigned interface {
	~uint16 | ~uint32 | ~uint64
}

// lookupUint parses an unsigned integer variable, returning def when it is
// absent or empty. Values that do not parse or do not fit the target type
// fail rather than falling back to the default.
func lookupUint[T unsigned](l Lookup, name string, def T) (T, error) {
	raw, ok := l.Lookup(name)
	if !ok || raw == "" {
		return def, nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || uint64(T(v)) != v {
		return 0, &InvalidValueError{Name: name, Value: raw, Expected: fmt.Sprintf("%T", def)}
	}
	return T(v), nil
}

// lookupPort parses a TCP port variable, rejecting 0 and anything beyond
// 65535 at the same error site.
func lookupPort(l Lookup, name string, def uint16) (uint16, error) {
	raw, ok := l.Lookup(name)
	if !ok || raw == "" {
		return def, nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || v < 1 || v > 65535 {
		return 0, &InvalidValueError{Name: name, Value: raw, Expected: "a port between 1 and 65535"}
	}
	return uint16(v), nil
}

// lookupDuration parses a count-of-unit variable into a Duration, returning
// def when it is absent or empty. Values whose product with unit does not
// fit a Duration are rejected at the same error site instead of wrapping
// around.
func lookupDuration(l Lookup, name string, def time.Duration, unit time.Duration) (time.Duration, error) {
	raw, ok := l.Lookup(name)
	if !ok || raw == "" {
		return def, nil
	}
	limit := uint64(math.MaxInt64 / unit)
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || v > limit {
		return 0, &InvalidValueError{
			Name:     name,
			Value:    raw,
			Expected: fmt.Sprintf("an integer between 0 and %d", limit),
		}
	}
	return time.Duration(v) * unit, nil
}

// lookupBool parses a boolean variable accepting true/false and 1/0 in any
// case, returning def when it is absent or empty.
func lookupBool(l Lookup, name string, def bool) (bool, error) {
	raw, ok := l.Lookup(name)
	if !ok || raw == "" {
		return def, nil
	}
	switch strings.ToLower(raw) {
	case "1", "true":
		return true, nil
	case "0", "false":
		return false, nil
	}
	return false, &InvalidValueError{Name: name, Value: raw, Expected: "a boolean"}
}
