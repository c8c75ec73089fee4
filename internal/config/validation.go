package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("validation failed:\n  - %s", strings.Join(msgs, "\n  - "))
}

// Validate checks the configuration for valid values. Host presence is
// checked separately by the command layer so the missing-host case can map
// to the UNKNOWN exit path with usage text.
func (c *Config) Validate() error {
	var errors ValidationErrors

	if c.Target.Port <= 0 || c.Target.Port > 65535 {
		errors = append(errors, ValidationError{
			Field:   "target.port",
			Message: "port must be between 1 and 65535",
		})
	}

	if c.Target.Community == "" {
		errors = append(errors, ValidationError{
			Field:   "target.community",
			Message: "community is required",
		})
	}

	if c.Target.TimeoutSeconds <= 0 {
		errors = append(errors, ValidationError{
			Field:   "target.timeout_seconds",
			Message: "timeout_seconds must be positive",
		})
	}

	if c.Target.Retries < 0 {
		errors = append(errors, ValidationError{
			Field:   "target.retries",
			Message: "retries cannot be negative",
		})
	}

	if c.Walk.PageSize <= 0 {
		errors = append(errors, ValidationError{
			Field:   "walk.page_size",
			Message: "page_size must be positive",
		})
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true, "": true}
	if !validLevels[c.Logging.Level] {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Message: "level must be 'debug', 'info', 'warn', or 'error'",
		})
	}

	validFormats := map[string]bool{"json": true, "text": true, "": true}
	if !validFormats[c.Logging.Format] {
		errors = append(errors, ValidationError{
			Field:   "logging.format",
			Message: "format must be 'json' or 'text'",
		})
	}

	if len(errors) > 0 {
		return errors
	}
	return nil
}
