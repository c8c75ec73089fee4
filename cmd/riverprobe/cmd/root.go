package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"github.com/dbsmedya/riverprobe/internal/config"
	"github.com/dbsmedya/riverprobe/internal/logger"
	"github.com/dbsmedya/riverprobe/internal/probe"
	"github.com/dbsmedya/riverprobe/internal/snmp"
)

// Version information (set via ldflags at build time)
var (
	Version = "0.0.1-dev"
	Commit  = "unknown"
)

// CLI flags that override config file values
var (
	cfgFile        string
	host           string
	community      string
	peerList       string
	port           int
	timeoutSeconds int
	retries        int
	pageSize       int
	logLevel       string
	logFormat      string
	noColor        bool
)

// exitCode is the supervisor exit code decided by the last run.
var exitCode = probe.SeverityUnknown.ExitCode()

var rootCmd = &cobra.Command{
	Use:   "riverprobe -H <host>",
	Short: "Riverbed Steelhead SNMP health probe",
	Long: `riverprobe queries a Riverbed Steelhead appliance over SNMP for device
health and, optionally, peer connectivity, and prints a single status line
with machine-parseable performance data.

The process exit code signals severity to the monitoring supervisor:
  0 OK, 1 WARNING, 2 ERROR, 3 UNKNOWN

Example:
  riverprobe -H steelhead01 -c public -p 10.1.2.3,riverbed-magadan`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runProbe,
}

// Execute runs the root command and exits with the plugin status code.
func Execute() {
	os.Exit(execute(os.Stdout))
}

func execute(out io.Writer) int {
	rootCmd.SetOut(out)
	// Help and version exits are OK; runProbe overwrites this with the
	// probe outcome.
	exitCode = probe.SeverityOK.ExitCode()

	if err := rootCmd.Execute(); err != nil {
		// Flag-parse failures are parameter problems, not device faults.
		fmt.Fprintln(out, rootCmd.UsageString())
		return probe.SeverityUnknown.ExitCode()
	}
	return exitCode
}

func init() {
	rootCmd.Flags().StringVarP(&host, "host", "H", "",
		"Appliance hostname or address (required)")
	rootCmd.Flags().StringVarP(&community, "community", "c", "",
		"SNMP community string (default \"public\")")
	rootCmd.Flags().StringVarP(&peerList, "peers", "p", "",
		"Comma-separated peers that must appear in the peer table (case-insensitive)")

	rootCmd.Flags().StringVar(&cfgFile, "config", "",
		"Path to optional configuration file")
	rootCmd.Flags().IntVar(&port, "port", 0,
		"Override SNMP port (default 161)")
	rootCmd.Flags().IntVar(&timeoutSeconds, "timeout", 0,
		"Override request timeout in seconds (default 10)")
	rootCmd.Flags().IntVar(&retries, "retries", 0,
		"Override transport retry count (default 1)")
	rootCmd.Flags().IntVar(&pageSize, "page-size", 0,
		"Override bulk repetitions per table per page (default 10)")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "",
		"Override log level (debug, info, warn, error)")
	rootCmd.Flags().StringVar(&logFormat, "log-format", "",
		"Override log format (json, text)")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false,
		"Disable colored severity output")
}

func runProbe(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	// Before the config is loaded only the flag can disable color; the
	// loaded config gets its say below.
	colorize := !noColor && color.IsSupportColor()

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return report(out, colorize, err)
	}

	cfg.Apply(config.Overrides{
		Host:           host,
		Community:      community,
		Port:           port,
		TimeoutSeconds: timeoutSeconds,
		Retries:        retries,
		PageSize:       pageSize,
		Peers:          splitPeers(peerList),
		LogLevel:       logLevel,
		LogFormat:      logFormat,
		NoColor:        noColor,
	})

	if cfg.Target.Host == "" {
		// The supervisor contract wants usage text here, not a status line.
		fmt.Fprint(out, cmd.UsageString())
		missing := &probe.MissingParameterError{Name: "-H <host>"}
		exitCode = probe.SeverityFor(missing).ExitCode()
		return nil
	}

	colorize = !cfg.Output.NoColor && color.IsSupportColor()

	if err := cfg.Validate(); err != nil {
		return report(out, colorize, err)
	}

	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return report(out, colorize, err)
	}
	defer func() { _ = log.Sync() }()

	sess, err := snmp.Connect(snmp.AgentConfig{
		Host:      cfg.Target.Host,
		Port:      cfg.Target.Port,
		Community: cfg.Target.Community,
		Timeout:   cfg.Target.Timeout(),
		Retries:   cfg.Target.Retries,
	}, log)
	if err != nil {
		return report(out, colorize, err)
	}
	// The session is released on every exit path before the process
	// reports its final status.
	defer func() { _ = sess.Close() }()

	runner := probe.NewRunner(log,
		probe.NewHealthCheck(log),
		probe.NewPeerCheck(cfg.Peers, cfg.Walk.PageSize, log),
	)

	result, err := runner.Run(sess)
	if err != nil {
		return report(out, colorize, err)
	}

	fmt.Fprintln(out, probe.FormatStatusLine(result, colorize))
	exitCode = result.Severity.ExitCode()
	return nil
}

// report prints the failure status line for err and records the matching
// exit code. It always returns nil: the line itself is the error report,
// cobra must not print a second one.
func report(out io.Writer, colorize bool, err error) error {
	severity := probe.SeverityFor(err)
	line := probe.FormatStatusLine(probe.CheckResult{
		Severity: severity,
		Message:  err.Error(),
	}, colorize)
	fmt.Fprintln(out, line)
	exitCode = severity.ExitCode()
	return nil
}

// splitPeers parses the -p flag value into peer identifiers.
func splitPeers(list string) []string {
	if list == "" {
		return nil
	}
	var peers []string
	for _, peer := range strings.Split(list, ",") {
		peer = strings.TrimSpace(peer)
		if peer != "" {
			peers = append(peers, peer)
		}
	}
	return peers
}
