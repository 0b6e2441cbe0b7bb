package serverenv

import "fmt"

// MissingVariableError reports a required environment variable that is
// absent from the snapshot, or present but empty.
type MissingVariableError struct {
	// Name is the environment variable name.
	Name string
}

func (e *MissingVariableError) Error() string {
	return fmt.Sprintf("%s must be set", e.Name)
}

// InvalidValueError reports a variable whose value failed type coercion or
// enum matching. Defaults never apply to invalid values, only to absent
// ones.
type InvalidValueError struct {
	// Name is the environment variable name.
	Name string
	// Value is the raw value found in the snapshot.
	Value string
	// Expected describes the type or value set the variable must match.
	Expected string
}

func (e *InvalidValueError) Error() string {
	name := e.Name
	if name == "" {
		name = "value"
	}
	return fmt.Sprintf("%s must be %s (got: %q)", name, e.Expected, e.Value)
}

// PoolRangeError reports a connection pool whose minimum size exceeds its
// maximum.
type PoolRangeError struct {
	Min uint32
	Max uint32
}

func (e *PoolRangeError) Error() string {
	return fmt.Sprintf("MIN_CONNECTIONS (%d) must be <= MAX_CONNECTIONS (%d)", e.Min, e.Max)
}
