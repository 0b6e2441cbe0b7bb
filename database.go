package serverenv

import (
	"strings"
	"time"
)

// Database holds the settings needed to size and open a connection pool.
// Only values are resolved here; no connection is ever attempted.
type Database struct {
	// URL is the connection string, set with DATABASE_URL. Required.
	URL string
	// MinConnections is the pool size created at start-up, set with
	// MIN_CONNECTIONS.
	MinConnections uint32
	// MaxConnections is the pool ceiling, set with MAX_CONNECTIONS.
	MaxConnections uint32
	// AcquireTimeout is the time allowed to acquire a connection, set in
	// milliseconds with ACQUIRE_TIMEOUT_MS.
	AcquireTimeout time.Duration
	// IdleTimeout closes connections idle longer than this, set in
	// seconds with IDLE_TIMEOUT_SEC.
	IdleTimeout time.Duration
	// TestBeforeAcquire controls whether pooled connections are tested
	// before reuse, set with TEST_BEFORE_ACQUIRE.
	TestBeforeAcquire bool
}

func resolveDatabase(l Lookup, env Environment) (Database, error) {
	url, err := lookupRequired(l, "DATABASE_URL")
	if err != nil {
		return Database{}, err
	}
	// Test runs get a _test database so a stray local/prod URL is never
	// used by mistake, unless the URL already names one or carries
	// connection arguments.
	if env == Test && !strings.HasSuffix(url, "_test") && !strings.Contains(url, "?") {
		url += "_test"
	}
	minConns, err := lookupUint(l, "MIN_CONNECTIONS", uint32(1))
	if err != nil {
		return Database{}, err
	}
	maxConns, err := lookupUint(l, "MAX_CONNECTIONS", uint32(10))
	if err != nil {
		return Database{}, err
	}
	if minConns > maxConns {
		return Database{}, &PoolRangeError{Min: minConns, Max: maxConns}
	}
	acquireTimeout, err := lookupDuration(l, "ACQUIRE_TIMEOUT_MS", 750*time.Millisecond, time.Millisecond)
	if err != nil {
		return Database{}, err
	}
	idleTimeout, err := lookupDuration(l, "IDLE_TIMEOUT_SEC", 300*time.Second, time.Second)
	if err != nil {
		return Database{}, err
	}
	testBefore, err := lookupBool(l, "TEST_BEFORE_ACQUIRE", false)
	if err != nil {
		return Database{}, err
	}
	return Database{
		URL:               url,
		MinConnections:    minConns,
		MaxConnections:    maxConns,
		AcquireTimeout:    acquireTimeout,
		IdleTimeout:       idleTimeout,
		TestBeforeAcquire: testBefore,
	}, nil
}
