package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_DefaultsAreValid(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
}

func TestValidate_Failures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cfg *Config)
		field  string
	}{
		{
			name:   "port too small",
			mutate: func(cfg *Config) { cfg.Target.Port = 0 },
			field:  "target.port",
		},
		{
			name:   "port too large",
			mutate: func(cfg *Config) { cfg.Target.Port = 70000 },
			field:  "target.port",
		},
		{
			name:   "empty community",
			mutate: func(cfg *Config) { cfg.Target.Community = "" },
			field:  "target.community",
		},
		{
			name:   "zero timeout",
			mutate: func(cfg *Config) { cfg.Target.TimeoutSeconds = 0 },
			field:  "target.timeout_seconds",
		},
		{
			name:   "negative retries",
			mutate: func(cfg *Config) { cfg.Target.Retries = -1 },
			field:  "target.retries",
		},
		{
			name:   "zero page size",
			mutate: func(cfg *Config) { cfg.Walk.PageSize = 0 },
			field:  "walk.page_size",
		},
		{
			name:   "negative page size",
			mutate: func(cfg *Config) { cfg.Walk.PageSize = -5 },
			field:  "walk.page_size",
		},
		{
			name:   "bad log level",
			mutate: func(cfg *Config) { cfg.Logging.Level = "verbose" },
			field:  "logging.level",
		},
		{
			name:   "bad log format",
			mutate: func(cfg *Config) { cfg.Logging.Format = "xml" },
			field:  "logging.format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()

			require.Error(t, err)
			var verrs ValidationErrors
			require.ErrorAs(t, err, &verrs)
			found := false
			for _, verr := range verrs {
				if verr.Field == tt.field {
					found = true
				}
			}
			assert.True(t, found, "expected a validation error for %s, got %v", tt.field, err)
		})
	}
}

func TestValidate_CollectsMultipleErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Target.Port = 0
	cfg.Walk.PageSize = 0
	cfg.Logging.Level = "loud"

	err := cfg.Validate()

	require.Error(t, err)
	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 3)
	assert.Contains(t, err.Error(), "validation failed")
}
