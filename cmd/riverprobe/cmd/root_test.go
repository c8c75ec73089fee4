package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags restores the package flag state after a test so cases stay
// independent.
func resetFlags(t *testing.T) {
	t.Helper()

	origCfgFile := cfgFile
	origHost := host
	origCommunity := community
	origPeerList := peerList
	origPort := port
	origTimeout := timeoutSeconds
	origRetries := retries
	origPageSize := pageSize
	origLogLevel := logLevel
	origLogFormat := logFormat
	origNoColor := noColor

	t.Cleanup(func() {
		cfgFile = origCfgFile
		host = origHost
		community = origCommunity
		peerList = origPeerList
		port = origPort
		timeoutSeconds = origTimeout
		retries = origRetries
		pageSize = origPageSize
		logLevel = origLogLevel
		logFormat = origLogFormat
		noColor = origNoColor
	})
}

func TestRootCommandStructure(t *testing.T) {
	assert.NotNil(t, rootCmd)
	assert.Equal(t, "riverprobe", rootCmd.Name())
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
	assert.Equal(t, Version, rootCmd.Version)
}

func TestRootCommandFlags(t *testing.T) {
	flags := rootCmd.Flags()

	hostFlag := flags.Lookup("host")
	require.NotNil(t, hostFlag)
	assert.Equal(t, "H", hostFlag.Shorthand)

	communityFlag := flags.Lookup("community")
	require.NotNil(t, communityFlag)
	assert.Equal(t, "c", communityFlag.Shorthand)

	peersFlag := flags.Lookup("peers")
	require.NotNil(t, peersFlag)
	assert.Equal(t, "p", peersFlag.Shorthand)

	for _, name := range []string{"config", "port", "timeout", "retries", "page-size", "log-level", "log-format", "no-color"} {
		assert.NotNil(t, flags.Lookup(name), "flag %s missing", name)
	}
}

func TestSplitPeers(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{name: "empty", in: "", want: nil},
		{name: "single", in: "10.1.2.3", want: []string{"10.1.2.3"}},
		{name: "several", in: "10.1.2.3,riverbed-magadan", want: []string{"10.1.2.3", "riverbed-magadan"}},
		{name: "spaces trimmed", in: " 10.1.2.3 , riverbed-magadan ", want: []string{"10.1.2.3", "riverbed-magadan"}},
		{name: "empty entries dropped", in: "a,,b,", want: []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitPeers(tt.in))
		})
	}
}

func TestMissingHostPrintsUsageAndExitsUnknown(t *testing.T) {
	resetFlags(t)
	host = ""
	cfgFile = ""

	var out bytes.Buffer
	rootCmd.SetArgs([]string{})

	code := execute(&out)

	assert.Equal(t, 3, code)
	assert.Contains(t, out.String(), "Usage:")
	assert.Contains(t, out.String(), "-H")
}

func TestConfigLoadFailureReportsErrorLine(t *testing.T) {
	resetFlags(t)

	var out bytes.Buffer
	rootCmd.SetArgs([]string{"-H", "steelhead01", "--config", "/does/not/exist.yaml", "--no-color"})
	defer rootCmd.SetArgs([]string{})

	code := execute(&out)

	assert.Equal(t, 2, code)
	assert.True(t, strings.HasPrefix(out.String(), "ERROR: "), "got %q", out.String())
}

func TestUnknownFlagExitsUnknown(t *testing.T) {
	resetFlags(t)

	var out bytes.Buffer
	rootCmd.SetArgs([]string{"--definitely-not-a-flag"})
	defer rootCmd.SetArgs([]string{})

	code := execute(&out)

	assert.Equal(t, 3, code)
	assert.Contains(t, out.String(), "Usage:")
}

func TestVersionCommand(t *testing.T) {
	resetFlags(t)

	var out bytes.Buffer
	rootCmd.SetArgs([]string{"version"})
	defer rootCmd.SetArgs([]string{})

	code := execute(&out)

	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "riverprobe version")
}
