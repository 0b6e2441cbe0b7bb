package serverenv

import (
	"fmt"
	"strings"
)

// Environment is the deployment tier an application runs under.
type Environment string

const (
	Local      Environment = "local"
	Test       Environment = "test"
	Staging    Environment = "staging"
	Production Environment = "production"
)

// environments lists every recognized tier.
var environments = []Environment{Local, Test, Staging, Production}

// ParseEnvironment matches s against the known deployment tiers,
// case-insensitively. There is no partial matching; an unrecognized value
// yields an *InvalidValueError.
func ParseEnvironment(s string) (Environment, error) {
	return parseEnvironment("", s)
}

func parseEnvironment(name, s string) (Environment, error) {
	for _, e := range environments {
		if strings.EqualFold(s, string(e)) {
			return e, nil
		}
	}
	return "", &InvalidValueError{
		Name:     name,
		Value:    s,
		Expected: fmt.Sprintf("one of %v", environments),
	}
}

func (e Environment) String() string { return string(e) }

// IsLocal reports whether the tier is a developer machine.
func (e Environment) IsLocal() bool { return e == Local }

// IsTest reports whether the tier is a test run.
func (e Environment) IsTest() bool { return e == Test }

// IsStaging reports whether the tier is a staging deployment.
func (e Environment) IsStaging() bool { return e == Staging }

// IsProduction reports whether the tier is a production deployment.
func (e Environment) IsProduction() bool { return e == Production }

// resolveEnvironment reads APP_ENV. Absent means Local; an unrecognized
// value fails instead of silently defaulting.
func resolveEnvironment(l Lookup) (Environment, error) {
	raw, ok := l.Lookup("APP_ENV")
	if !ok || raw == "" {
		return Local, nil
	}
	return parseEnvironment("APP_ENV", raw)
}
