package probe

import (
	"fmt"
	"net"
	"strings"

	"github.com/dbsmedya/riverprobe/internal/logger"
	"github.com/dbsmedya/riverprobe/internal/snmp"
)

// STEELHEAD-MIB peer table columns: hostname and address, walked in
// lock-step. The appliance may report a peer by address while the operator
// named it by hostname, or the other way round.
const (
	oidPeerHostname = ".1.3.6.1.4.1.17163.1.1.2.6.1.1.2"
	oidPeerAddress  = ".1.3.6.1.4.1.17163.1.1.2.6.1.1.4"
)

var peerTables = TableSpec{
	"hostname": oidPeerHostname,
	"address":  oidPeerAddress,
}

// PeerCheck verifies that every required peer appears in the appliance's
// peer table. Connectivity checking is opt-in: with no required peers the
// check passes without touching the transport.
type PeerCheck struct {
	required []string
	pageSize int
	log      *logger.Logger
}

// NewPeerCheck creates the peer connectivity check for the given required
// peer identifiers (hostnames or IPv4 addresses, case-insensitive).
// Duplicate identifiers collapse to their first spelling so the required
// count matches the number of distinct peers to find.
func NewPeerCheck(required []string, pageSize int, log *logger.Logger) *PeerCheck {
	unique := make([]string, 0, len(required))
	known := make(map[string]bool, len(required))
	for _, peer := range required {
		key := strings.ToLower(peer)
		if known[key] {
			continue
		}
		known[key] = true
		unique = append(unique, peer)
	}

	return &PeerCheck{
		required: unique,
		pageSize: pageSize,
		log:      log.WithCheck("peers"),
	}
}

// Name implements Check.
func (c *PeerCheck) Name() string { return "peers" }

// Run implements Check. The walk stops as soon as every required peer has
// been seen; walking the rest of a potentially large peer table would only
// cost traffic, not change the outcome.
func (c *PeerCheck) Run(sess snmp.Session) (CheckResult, error) {
	if len(c.required) == 0 {
		return CheckResult{Severity: SeverityOK}, nil
	}

	walker := NewTableWalker(sess, c.pageSize, c.log)
	results, err := walker.Walk(peerTables, func(results TableResults) bool {
		return len(c.seen(results)) == len(c.required)
	})
	if err != nil {
		return CheckResult{}, err
	}

	seen := c.seen(results)

	var connected, missing []string
	for _, peer := range c.required {
		if seen[strings.ToLower(peer)] {
			connected = append(connected, peer)
		} else {
			missing = append(missing, peer)
		}
	}

	c.log.Debugw("peer table evaluated",
		"required", len(c.required),
		"connected", len(connected),
		"missing", len(missing),
	)

	if len(missing) > 0 {
		return CheckResult{
			Severity: SeverityError,
			Message:  fmt.Sprintf("%s %s MISSING", peerLabel(len(missing)), strings.Join(missing, ", ")),
		}, nil
	}

	return CheckResult{
		Severity: SeverityOK,
		Message:  fmt.Sprintf("%s %s connected", peerLabel(len(connected)), strings.Join(connected, ", ")),
	}, nil
}

// seen returns the set of required peers (normalized) matched by the
// observed hostname and address values. An observed IPv4 address also
// matches through its reverse-octet form.
func (c *PeerCheck) seen(results TableResults) map[string]bool {
	want := make(map[string]bool, len(c.required))
	for _, peer := range c.required {
		want[strings.ToLower(peer)] = true
	}

	seen := make(map[string]bool, len(want))
	for _, rows := range results {
		for _, row := range rows {
			observed := strings.ToLower(ToString(row))
			if want[observed] {
				seen[observed] = true
			}
			if reversed, ok := reverseOctets(observed); ok && want[reversed] {
				seen[reversed] = true
			}
		}
	}
	return seen
}

// peerLabel pluralizes the peer label when more than one peer is named.
func peerLabel(n int) string {
	if n > 1 {
		return "peers"
	}
	return "peer"
}

// reverseOctets returns the dotted-quad with its four octets reversed.
// Only IPv4 dotted-quad strings qualify; anything else is skipped
// silently, including IPv6.
func reverseOctets(s string) (string, bool) {
	if strings.Count(s, ".") != 3 || strings.Contains(s, ":") {
		return "", false
	}
	ip := net.ParseIP(s)
	if ip == nil {
		return "", false
	}
	v4 := ip.To4()
	if v4 == nil {
		return "", false
	}
	return fmt.Sprintf("%d.%d.%d.%d", v4[3], v4[2], v4[1], v4[0]), true
}
