package probe

import (
	"errors"
	"fmt"
)

// ProtocolError indicates the agent answered but the response violated the
// contract, typically by omitting an expected field.
type ProtocolError struct {
	Field string
	OID   string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("agent response missing expected field %q (%s)", e.Field, e.OID)
}

// InvalidArgumentError reports a caller-supplied value the probe cannot
// run with, such as a non-positive page size.
type InvalidArgumentError struct {
	Name    string
	Value   interface{}
	Message string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Name, e.Value, e.Message)
}

// MissingParameterError reports a required CLI parameter that was not
// supplied.
type MissingParameterError struct {
	Name string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("required parameter %s is missing", e.Name)
}

// SeverityFor maps an error to the severity the supervisor should see.
// Missing parameters are UNKNOWN; transport, protocol, and all other
// failures are ERROR. No error is retried.
func SeverityFor(err error) Severity {
	var missing *MissingParameterError
	if errors.As(err, &missing) {
		return SeverityUnknown
	}
	return SeverityError
}
