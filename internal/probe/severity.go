// Package probe implements the riverprobe check pipeline: scalar fetches,
// lock-step table walks, the individual checks, and their aggregation into
// a single status line.
package probe

// Severity classifies a check outcome, ordered by operational urgency.
// The integer value doubles as the process exit code reported to the
// monitoring supervisor.
type Severity int

const (
	SeverityOK Severity = iota
	SeverityWarning
	SeverityError
	SeverityUnknown
)

func (s Severity) String() string {
	switch s {
	case SeverityOK:
		return "OK"
	case SeverityWarning:
		return "WARNING"
	case SeverityError:
		return "ERROR"
	case SeverityUnknown:
		return "UNKNOWN"
	default:
		return "UNKNOWN"
	}
}

// ExitCode returns the supervisor exit code for the severity.
func (s Severity) ExitCode() int {
	if s < SeverityOK || s > SeverityUnknown {
		return SeverityUnknown.ExitCode()
	}
	return int(s)
}
