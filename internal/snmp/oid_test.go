package snmp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "bare", in: "1.3.6.1", want: ".1.3.6.1"},
		{name: "already canonical", in: ".1.3.6.1", want: ".1.3.6.1"},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestAppendIndex(t *testing.T) {
	assert.Equal(t, ".1.3.6.1.0", AppendIndex(".1.3.6.1", 0))
	assert.Equal(t, ".1.3.6.1.17", AppendIndex(".1.3.6.1", 17))
}

func TestCutIndex(t *testing.T) {
	base := ".1.3.6.1.4.1.17163.1.1.2.6.1.1.2"

	tests := []struct {
		name string
		oid  string
		want int64
		ok   bool
	}{
		{name: "single index", oid: base + ".5", want: 5, ok: true},
		{name: "multi-part index keeps first component", oid: base + ".5.1.9", want: 5, ok: true},
		{name: "bare dot forms normalized", oid: base[1:] + ".3", want: 3, ok: true},
		{name: "different column", oid: ".1.3.6.1.4.1.17163.1.1.2.6.1.1.4.5", ok: false},
		{name: "base itself", oid: base, ok: false},
		{name: "non-numeric suffix", oid: base + ".x", ok: false},
		{name: "unrelated subtree", oid: ".1.3.6.1.4.1.99999.1.1", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CutIndex(base, tt.oid)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
