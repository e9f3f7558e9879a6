// Package config implements the two mutable configuration snapshots a
// session works with — device_cfg (what the eNB reports) and
// desired_cfg (what it should be) — and the pure diff engine that
// compares them against a data model to compute what the session
// should fetch, add, delete, or set next.
package config

import "fmt"

// ConfigurationError is raised on an invariant violation in the core:
// an unknown parameter, an out-of-range value, a missing object. It is
// surfaced to the control RPC caller when externally triggered;
// otherwise the session loop logs it and holds at its current state —
// no error path mutates desired_cfg silently.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return "configuration error: " + e.Message
}

func errInvariant(format string, args ...interface{}) *ConfigurationError {
	return &ConfigurationError{Message: fmt.Sprintf(format, args...)}
}
