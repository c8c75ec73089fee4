package probe

import "github.com/gookit/color"

// perfdataTag prefixes the performance-data section of the status line.
// The tag and everything after it are parsed by the graphing tooling and
// must not change.
const perfdataTag = "RIVERBED:"

// FormatStatusLine renders the final single-line plugin output:
//
//	<SEVERITY>: <message>|RIVERBED:<metrics>
//
// The perfdata section is omitted when there are no metrics. Colorize
// tints only the severity token, for humans running the probe by hand;
// it must stay off when the supervisor consumes the line.
func FormatStatusLine(result CheckResult, colorize bool) string {
	label := result.Severity.String()
	if colorize {
		label = severityColor(result.Severity).Sprint(label)
	}

	line := label + ":"
	if result.Message != "" {
		line += " " + result.Message
	}
	if result.Metrics != "" {
		line += "|" + perfdataTag + result.Metrics
	}
	return line
}

func severityColor(s Severity) color.Color {
	switch s {
	case SeverityOK:
		return color.Green
	case SeverityWarning:
		return color.Yellow
	case SeverityError:
		return color.Red
	default:
		return color.Magenta
	}
}
