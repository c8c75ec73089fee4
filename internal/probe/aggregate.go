package probe

import (
	"strings"

	"github.com/dbsmedya/riverprobe/internal/logger"
	"github.com/dbsmedya/riverprobe/internal/snmp"
)

// Runner executes an ordered sequence of checks against one session,
// short-circuiting at the first non-OK severity. Later checks never run
// once an earlier one has failed, keeping traffic to a faulted appliance
// minimal.
type Runner struct {
	checks []Check
	log    *logger.Logger
}

// NewRunner creates a Runner over the given checks, executed in order.
func NewRunner(log *logger.Logger, checks ...Check) *Runner {
	return &Runner{checks: checks, log: log}
}

// Run executes the checks in order and merges their outputs. Non-empty
// messages and metrics are each joined with ", "; the returned severity is
// that of whichever check ran last. An error from a check aborts the run
// and contributes no fragments.
func (r *Runner) Run(sess snmp.Session) (CheckResult, error) {
	var messages, metrics []string
	severity := SeverityOK

	for _, check := range r.checks {
		r.log.Debugw("running check", "check", check.Name())

		result, err := check.Run(sess)
		if err != nil {
			return CheckResult{}, err
		}

		if result.Message != "" {
			messages = append(messages, result.Message)
		}
		if result.Metrics != "" {
			metrics = append(metrics, result.Metrics)
		}

		severity = result.Severity
		if severity != SeverityOK {
			r.log.Debugw("stopping at first failing check",
				"check", check.Name(),
				"severity", severity.String(),
			)
			break
		}
	}

	return CheckResult{
		Severity: severity,
		Message:  strings.Join(messages, ", "),
		Metrics:  strings.Join(metrics, ", "),
	}, nil
}
