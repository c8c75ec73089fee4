package probe

import "github.com/dbsmedya/riverprobe/internal/snmp"

// CheckResult is the outcome of a single check. Message and Metrics may be
// empty; empty fragments contribute nothing to the merged status line.
type CheckResult struct {
	Severity Severity
	Message  string
	Metrics  string
}

// Check is a single health probe run against the shared session.
type Check interface {
	// Name identifies the check in logs.
	Name() string

	// Run executes the check. A returned error means the check could not
	// be evaluated at all; it contributes no message or metric fragment.
	Run(sess snmp.Session) (CheckResult, error)
}
