package serverenv

import "os"

// Lookup is a read-only snapshot of environment values. Abstracting the
// process environment behind it lets tests supply isolated snapshots and
// run in parallel without mutating global state.
type Lookup interface {
	// Lookup returns the value of the named variable and whether it was
	// present in the snapshot.
	Lookup(name string) (string, bool)
}

// MapLookup is a Lookup backed by a plain map.
type MapLookup map[string]string

func (m MapLookup) Lookup(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

// OSLookup returns a Lookup over the process environment.
func OSLookup() Lookup { return osLookup{} }

type osLookup struct{}

func (osLookup) Lookup(name string) (string, bool) { return os.LookupEnv(name) }

// overlay chains lookups, earlier sources win.
type overlay []Lookup

func (o overlay) Lookup(name string) (string, bool) {
	for _, l := range o {
		if v, ok := l.Lookup(name); ok {
			return v, true
		}
	}
	return "", false
}
