// Package serverenv resolves a validated, typed HTTP server configuration
// from environment variables: deployment tier, network binding, public URL
// and database pool parameters.
//
// The whole configuration is built once, synchronously, by [Init]. It reads
// a snapshot of the environment, applies defaults for absent variables,
// coerces and validates every value, and returns either a complete [Config]
// or the first error encountered. A present-but-invalid value always fails;
// defaults apply only to absent (or empty) variables. The returned Config is
// never mutated afterwards, so it can be read concurrently without locking.
//
// # Usage
//
//	cfg, err := serverenv.Init(8080)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.URL)
//
// Tests inject an isolated snapshot instead of mutating the process
// environment:
//
//	cfg, err := serverenv.Init(8080, serverenv.WithLookup(serverenv.MapLookup{
//		"DATABASE_URL": "postgresql://localhost/app",
//	}))
//
// # Variables
//
//	APP_ENV              deployment tier (local, test, staging, production), default local
//	HOST                 bind address, default 127.0.0.1
//	PORT                 listen port (1-65535), default is the argument of Init
//	APP_URI              base path of the public URL, default empty
//	DATABASE_URL         connection string, required
//	MIN_CONNECTIONS      pool minimum, default 1
//	MAX_CONNECTIONS      pool maximum, default 10
//	ACQUIRE_TIMEOUT_MS   pool acquire timeout, default 750
//	IDLE_TIMEOUT_SEC     pooled connection idle timeout, default 300
//	TEST_BEFORE_ACQUIRE  test pooled connections before reuse, default false
//
// The public URL is computed from HOST, PORT and APP_URI and is never read
// from the environment. [Config.String] renders the configuration back in
// .env format for startup logging.
package serverenv
