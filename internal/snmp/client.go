package snmp

import (
	"time"

	"github.com/gosnmp/gosnmp"

	"github.com/dbsmedya/riverprobe/internal/logger"
)

// AgentConfig describes the SNMP agent endpoint to probe.
type AgentConfig struct {
	Host      string
	Port      int
	Community string
	Timeout   time.Duration
	Retries   int
}

// Client is a gosnmp-backed Session. The session is acquired once at
// startup and released unconditionally before the process reports its
// final status.
type Client struct {
	agent *gosnmp.GoSNMP
	log   *logger.Logger
}

// Connect opens an SNMP v2c session to the configured agent.
func Connect(cfg AgentConfig, log *logger.Logger) (*Client, error) {
	agent := newAgent(cfg)

	if err := agent.Connect(); err != nil {
		return nil, &TransportError{Op: "connect", Err: err}
	}

	log.WithHost(cfg.Host).Debugw("SNMP session established",
		"port", cfg.Port,
		"timeout", cfg.Timeout,
	)

	return &Client{agent: agent, log: log}, nil
}

// newAgent maps an AgentConfig onto the gosnmp request parameters.
func newAgent(cfg AgentConfig) *gosnmp.GoSNMP {
	return &gosnmp.GoSNMP{
		Target:    cfg.Host,
		Port:      uint16(cfg.Port),
		Community: cfg.Community,
		Version:   gosnmp.Version2c,
		Timeout:   cfg.Timeout,
		Retries:   cfg.Retries,
		MaxOids:   gosnmp.MaxOids,
	}
}

// Get implements Session.
func (c *Client) Get(oids []string) (map[string]interface{}, error) {
	packet, err := c.agent.Get(oids)
	if err != nil {
		return nil, &TransportError{Op: "get", Err: err}
	}

	values := make(map[string]interface{}, len(packet.Variables))
	for _, pdu := range packet.Variables {
		switch pdu.Type {
		case gosnmp.NoSuchObject, gosnmp.NoSuchInstance, gosnmp.EndOfMibView:
			// Absent on the agent; the caller decides whether that is an error.
			continue
		}
		values[Normalize(pdu.Name)] = pdu.Value
	}

	c.log.Debugw("SNMP get complete", "requested", len(oids), "returned", len(values))
	return values, nil
}

// GetBulk implements Session.
func (c *Client) GetBulk(oids []string, maxRepetitions int) ([]Binding, error) {
	packet, err := c.agent.GetBulk(oids, 0, uint32(maxRepetitions))
	if err != nil {
		return nil, &TransportError{Op: "getbulk", Err: err}
	}

	bindings := make([]Binding, 0, len(packet.Variables))
	for _, pdu := range packet.Variables {
		switch pdu.Type {
		case gosnmp.NoSuchObject, gosnmp.NoSuchInstance, gosnmp.EndOfMibView:
			continue
		}
		bindings = append(bindings, Binding{OID: Normalize(pdu.Name), Value: pdu.Value})
	}

	c.log.Debugw("SNMP getbulk complete", "requested", len(oids), "returned", len(bindings))
	return bindings, nil
}

// Close implements Session.
func (c *Client) Close() error {
	if c.agent.Conn == nil {
		return nil
	}
	err := c.agent.Conn.Close()
	c.agent.Conn = nil
	if err != nil {
		return &TransportError{Op: "close", Err: err}
	}
	return nil
}
