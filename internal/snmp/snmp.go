// Package snmp provides the SNMP transport session used by riverprobe checks.
package snmp

import "fmt"

// Binding is a single OID/value pair from a bulk response.
type Binding struct {
	OID   string
	Value interface{}
}

// Session is the transport surface the checks run against.
// Implementations must be safe for strictly sequential use; riverprobe
// never issues overlapping requests on one session.
type Session interface {
	// Get fetches the given scalar OIDs in one request and returns the
	// values keyed by normalized OID. OIDs the agent reports as absent
	// are omitted from the result.
	Get(oids []string) (map[string]interface{}, error)

	// GetBulk issues a single GETBULK over all given OIDs, requesting up
	// to maxRepetitions successor bindings per OID. Bindings are returned
	// in response order.
	GetBulk(oids []string, maxRepetitions int) ([]Binding, error)

	// Close releases the underlying transport. Safe to call more than once.
	Close() error
}

// TransportError wraps a connection, timeout, or request failure at the
// protocol layer.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("snmp %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
