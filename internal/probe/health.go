package probe

import (
	"fmt"

	"github.com/dbsmedya/riverprobe/internal/logger"
	"github.com/dbsmedya/riverprobe/internal/snmp"
)

// STEELHEAD-MIB scalars (enterprise 17163). systemHealth is an enumerated
// code; healthySentinel is the only value meaning nominal health, any
// deviation (admission control, degraded, critical) is a fault.
const (
	oidModel        = ".1.3.6.1.4.1.17163.1.1.1.1.0"
	oidHealthString = ".1.3.6.1.4.1.17163.1.1.2.2.0"
	oidSystemHealth = ".1.3.6.1.4.1.17163.1.1.2.7.0"
	oidBWInLan      = ".1.3.6.1.4.1.17163.1.1.5.3.1.1.0"
	oidBWInWan      = ".1.3.6.1.4.1.17163.1.1.5.3.1.2.0"
	oidBWOutLan     = ".1.3.6.1.4.1.17163.1.1.5.3.1.3.0"
	oidBWOutWan     = ".1.3.6.1.4.1.17163.1.1.5.3.1.4.0"

	healthySentinel = 10000
)

var healthFields = FieldSet{
	"model":  oidModel,
	"health": oidHealthString,
	"status": oidSystemHealth,
	"inlan":  oidBWInLan,
	"inwan":  oidBWInWan,
	"outlan": oidBWOutLan,
	"outwan": oidBWOutWan,
}

// HealthCheck evaluates appliance health against the healthy sentinel and
// reports the optimized traffic counters as perfdata.
type HealthCheck struct {
	log *logger.Logger
}

// NewHealthCheck creates the device health check.
func NewHealthCheck(log *logger.Logger) *HealthCheck {
	return &HealthCheck{log: log.WithCheck("health")}
}

// Name implements Check.
func (c *HealthCheck) Name() string { return "health" }

// Run implements Check. One batched scalar fetch; severity is ERROR for
// any health code other than the sentinel.
func (c *HealthCheck) Run(sess snmp.Session) (CheckResult, error) {
	values, err := FetchScalars(sess, healthFields)
	if err != nil {
		return CheckResult{}, err
	}

	model := ToString(values["model"])
	health := ToString(values["health"])
	status := ToInt64(values["status"])

	severity := SeverityOK
	if status != healthySentinel {
		severity = SeverityError
	}

	c.log.Debugw("health evaluated",
		"model", model,
		"health", health,
		"status", status,
	)

	// Key order is a compatibility contract with the graphing tooling.
	metrics := fmt.Sprintf("HEALTH=%s;OUTLAN=%d;OUTWAN=%d;INLAN=%d;INWAN=%d;",
		health,
		ToInt64(values["outlan"]),
		ToInt64(values["outwan"]),
		ToInt64(values["inlan"]),
		ToInt64(values["inwan"]),
	)

	return CheckResult{
		Severity: severity,
		Message:  fmt.Sprintf("%s, health %s", model, health),
		Metrics:  metrics,
	}, nil
}
