package snmp

import (
	"errors"
	"testing"
	"time"

	"github.com/gosnmp/gosnmp"
	"github.com/stretchr/testify/assert"
)

func TestNewAgentMapsConfig(t *testing.T) {
	cfg := AgentConfig{
		Host:      "steelhead01",
		Port:      1161,
		Community: "s3cret",
		Timeout:   5 * time.Second,
		Retries:   2,
	}

	agent := newAgent(cfg)

	assert.Equal(t, "steelhead01", agent.Target)
	assert.Equal(t, uint16(1161), agent.Port)
	assert.Equal(t, "s3cret", agent.Community)
	assert.Equal(t, gosnmp.Version2c, agent.Version)
	assert.Equal(t, 5*time.Second, agent.Timeout)
	assert.Equal(t, 2, agent.Retries)
}

func TestTransportError(t *testing.T) {
	cause := errors.New("connection refused")
	err := &TransportError{Op: "connect", Err: cause}

	assert.Equal(t, "snmp connect: connection refused", err.Error())
	assert.Equal(t, cause, errors.Unwrap(err))

	var transport *TransportError
	assert.ErrorAs(t, err, &transport)
}

func TestClientCloseWithoutConnection(t *testing.T) {
	client := &Client{agent: newAgent(AgentConfig{Host: "h", Port: 161})}

	assert.NoError(t, client.Close())
	assert.NoError(t, client.Close(), "close is idempotent")
}
