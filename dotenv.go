package serverenv

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
)

// String renders the configuration in .env format, one KEY=value per line
// in a stable order, keyed by the variable each field is resolved from even
// when the value came from a default. The computed URL is not settable, so
// it appears as a comment instead of an assignment. Intended for startup
// logging; re-parsing the output with ParseDotenv reproduces every
// non-computed field.
func (c *Config) String() string {
	var b strings.Builder
	b.WriteString("# Environment variables and their values, resolved from\n")
	b.WriteString("# the process environment, a .env file, or a default.\n")
	b.WriteString("#\n")
	fmt.Fprintf(&b, "# APP_URL --> %s\n", c.Server.URL)
	b.WriteString("#\n")
	fmt.Fprintf(&b, "APP_ENV=%s\n", c.Env)
	fmt.Fprintf(&b, "APP_URI=%q\n", c.Server.URI)
	fmt.Fprintf(&b, "HOST=%s\n", c.Server.Host)
	fmt.Fprintf(&b, "PORT=%d\n", c.Server.Port)
	fmt.Fprintf(&b, "DATABASE_URL=%q\n", c.DB.URL)
	fmt.Fprintf(&b, "MIN_CONNECTIONS=%d\n", c.DB.MinConnections)
	fmt.Fprintf(&b, "MAX_CONNECTIONS=%d\n", c.DB.MaxConnections)
	fmt.Fprintf(&b, "ACQUIRE_TIMEOUT_MS=%d\n", c.DB.AcquireTimeout.Milliseconds())
	fmt.Fprintf(&b, "IDLE_TIMEOUT_SEC=%d\n", int64(c.DB.IdleTimeout.Seconds()))
	fmt.Fprintf(&b, "TEST_BEFORE_ACQUIRE=%t\n", c.DB.TestBeforeAcquire)
	return b.String()
}

// ParseDotenv parses .env-formatted text into a Lookup, so a rendered
// Config can be resolved again.
func ParseDotenv(s string) (Lookup, error) {
	vals, err := godotenv.Unmarshal(s)
	if err != nil {
		return nil, err
	}
	return MapLookup(vals), nil
}

// readDotenv reads and merges .env files, earlier files winning, matching
// godotenv's own multi-file behavior.
func readDotenv(paths []string) (map[string]string, error) {
	merged := map[string]string{}
	for _, p := range paths {
		vals, err := godotenv.Read(p)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", p, err)
		}
		for k, v := range vals {
			if _, ok := merged[k]; !ok {
				merged[k] = v
			}
		}
	}
	return merged, nil
}
