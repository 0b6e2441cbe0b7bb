package serverenv

import "github.com/rs/zerolog"

// Config is a full server configuration resolved from environment
// variables: deployment tier, HTTP server settings and database settings.
// It is built once during process startup and nothing mutates it after
// Init returns, so it is safe to read concurrently without locking.
//
// Config only produces values; opening the listener and the pool is the
// caller's job.
type Config struct {
	// Env is the deployment tier, set with APP_ENV.
	Env Environment
	// Server holds everything needed to bind the HTTP listener.
	Server Server
	// DB holds everything needed to size and open the connection pool.
	DB Database
}

type initOptions struct {
	lookup  Lookup
	env     Environment
	haveEnv bool
	logger  zerolog.Logger
	dotenv  []string
}

// Option adjusts how Init resolves a Config.
type Option func(*initOptions)

// WithLookup resolves from the given snapshot instead of the process
// environment. Tests use it to stay isolated from global state.
func WithLookup(l Lookup) Option {
	return func(o *initOptions) { o.lookup = l }
}

// WithEnvironment pins the deployment tier instead of reading APP_ENV.
func WithEnvironment(env Environment) Option {
	return func(o *initOptions) { o.env, o.haveEnv = env, true }
}

// WithLogger enables progress logging during Init. The default logger
// discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(o *initOptions) { o.logger = log }
}

// WithDotenv overlays the given .env files under the snapshot before
// resolving. Values already present in the snapshot win, the usual dotenv
// precedence.
func WithDotenv(paths ...string) Option {
	return func(o *initOptions) { o.dotenv = paths }
}

// Init resolves a full Config from the environment, falling back to
// defaultPort when PORT is unset. It resolves the deployment tier first,
// then the server settings, then the database settings, and fails on the
// first missing or invalid variable. A partial Config is never returned.
func Init(defaultPort uint16, opts ...Option) (*Config, error) {
	o := initOptions{lookup: OSLookup(), logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	if len(o.dotenv) > 0 {
		fileVals, err := readDotenv(o.dotenv)
		if err != nil {
			return nil, err
		}
		o.lookup = overlay{o.lookup, MapLookup(fileVals)}
	}
	o.logger.Debug().Msg("configuring server environment")

	env := o.env
	if !o.haveEnv {
		var err error
		if env, err = resolveEnvironment(o.lookup); err != nil {
			return nil, err
		}
	}
	tierEvent := o.logger.Info
	if env == Test {
		tierEvent = o.logger.Debug
	}
	tierEvent().Stringer("environment", env).Msg("environment resolved")

	server, err := resolveServer(o.lookup, defaultPort)
	if err != nil {
		return nil, err
	}
	db, err := resolveDatabase(o.lookup, env)
	if err != nil {
		return nil, err
	}
	o.logger.Debug().
		Str("url", server.URL).
		Uint32("max_connections", db.MaxConnections).
		Msg("configuration resolved")
	return &Config{Env: env, Server: server, DB: db}, nil
}
