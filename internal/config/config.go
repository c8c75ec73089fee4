// Package config provides configuration structures and loading for riverprobe.
package config

import "time"

// Config represents the complete probe configuration.
type Config struct {
	Target  TargetConfig  `yaml:"target" mapstructure:"target"`
	Peers   []string      `yaml:"peers" mapstructure:"peers"`
	Walk    WalkConfig    `yaml:"walk" mapstructure:"walk"`
	Output  OutputConfig  `yaml:"output" mapstructure:"output"`
	Logging LoggingConfig `yaml:"logging" mapstructure:"logging"`
}

// TargetConfig describes the SNMP agent to probe.
type TargetConfig struct {
	Host           string `yaml:"host" mapstructure:"host"`
	Port           int    `yaml:"port" mapstructure:"port"`
	Community      string `yaml:"community" mapstructure:"community"`
	TimeoutSeconds int    `yaml:"timeout_seconds" mapstructure:"timeout_seconds"`
	Retries        int    `yaml:"retries" mapstructure:"retries"`
}

// Timeout returns the per-request transport timeout.
func (t *TargetConfig) Timeout() time.Duration {
	return time.Duration(t.TimeoutSeconds) * time.Second
}

// WalkConfig represents table-walk settings.
type WalkConfig struct {
	PageSize int `yaml:"page_size" mapstructure:"page_size"`
}

// OutputConfig represents status-line rendering settings.
type OutputConfig struct {
	NoColor bool `yaml:"no_color" mapstructure:"no_color"`
}

// LoggingConfig represents logging settings. Diagnostics go to stderr by
// default; stdout is reserved for the status line.
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `yaml:"format" mapstructure:"format"` // json or text
	Output string `yaml:"output" mapstructure:"output"` // stderr, stdout, or file path
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Target: TargetConfig{
			Port:           161,
			Community:      "public",
			TimeoutSeconds: 10,
			Retries:        1,
		},
		Walk: WalkConfig{
			PageSize: 10,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
	}
}

// Overrides contains CLI flag values that override config file settings.
type Overrides struct {
	Host           string
	Community      string
	Port           int
	TimeoutSeconds int
	Retries        int
	PageSize       int
	Peers          []string
	LogLevel       string
	LogFormat      string
	NoColor        bool
}

// Apply overlays non-zero override values onto the configuration.
func (c *Config) Apply(o Overrides) {
	if o.Host != "" {
		c.Target.Host = o.Host
	}
	if o.Community != "" {
		c.Target.Community = o.Community
	}
	if o.Port > 0 {
		c.Target.Port = o.Port
	}
	if o.TimeoutSeconds > 0 {
		c.Target.TimeoutSeconds = o.TimeoutSeconds
	}
	if o.Retries > 0 {
		c.Target.Retries = o.Retries
	}
	if o.PageSize > 0 {
		c.Walk.PageSize = o.PageSize
	}
	if len(o.Peers) > 0 {
		c.Peers = o.Peers
	}
	if o.LogLevel != "" {
		c.Logging.Level = o.LogLevel
	}
	if o.LogFormat != "" {
		c.Logging.Format = o.LogFormat
	}
	if o.NoColor {
		c.Output.NoColor = true
	}
}
