package serverenv

import (
	"fmt"
	"strings"
)

// Server holds the settings needed to bind an HTTP listener and build its
// public URL.
type Server struct {
	// Host is the bind address, set with HOST. Requests are limited to
	// this address; "0" means accept from anywhere.
	Host string
	// Port is the listen port, set with PORT, otherwise the defaultPort
	// passed to Init.
	Port uint16
	// URI is the base path of the public URL (e.g. "api/v1"), set with
	// APP_URI.
	URI string
	// URL is the public URL computed from the fields above,
	// "http://{host}:{port}/{uri}/". It is never read from the
	// environment and cannot be overridden.
	URL string
}

func resolveServer(l Lookup, defaultPort uint16) (Server, error) {
	host := lookupString(l, "HOST", "127.0.0.1")
	port, err := lookupPort(l, "PORT", defaultPort)
	if err != nil {
		return Server{}, err
	}
	uri := lookupString(l, "APP_URI", "")
	return Server{
		Host: host,
		Port: port,
		URI:  uri,
		URL:  serverURL(host, port, uri),
	}, nil
}

// serverURL assembles the public URL with exactly one trailing slash and no
// empty path segments, whatever slashes APP_URI came with. A "0" bind
// address is reachable on localhost, so that is what the URL says.
func serverURL(host string, port uint16, uri string) string {
	if host == "0" {
		host = "localhost"
	}
	path := strings.Trim(uri, "/")
	if path == "" {
		return fmt.Sprintf("http://%s:%d/", host, port)
	}
	return fmt.Sprintf("http://%s:%d/%s/", host, port, path)
}
