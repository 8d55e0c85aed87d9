package configloader

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the name of the invalid field.
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s (got %v)", e.Field, e.Message, e.Value)
}

// validStrictPolicies are the accepted strict policy names.
//
//nolint:gochecknoglobals // Read-only lookup table.
var validStrictPolicies = map[string]bool{
	"ignore": true,
	"warn":   true,
	"error":  true,
}

// validLogLevels are the accepted log level names.
//
//nolint:gochecknoglobals // Read-only lookup table.
var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks the configuration for invalid values.
func Validate(cfg *Config) error {
	if cfg == nil {
		return nil
	}
	if !validStrictPolicies[cfg.Strict] {
		return &ValidationError{
			Field:   "strict",
			Value:   cfg.Strict,
			Message: "must be one of ignore, warn, error",
		}
	}
	if !validLogLevels[cfg.LogLevel] {
		return &ValidationError{
			Field:   "log_level",
			Value:   cfg.LogLevel,
			Message: "must be one of debug, info, warn, error",
		}
	}
	if cfg.MaxExpand < 0 {
		return &ValidationError{
			Field:   "max_expand",
			Value:   cfg.MaxExpand,
			Message: "must not be negative",
		}
	}
	if cfg.MaxSize < 0 {
		return &ValidationError{
			Field:   "max_size",
			Value:   cfg.MaxSize,
			Message: "must not be negative",
		}
	}
	if cfg.MinRuleThickness < 0 {
		return &ValidationError{
			Field:   "min_rule_thickness",
			Value:   cfg.MinRuleThickness,
			Message: "must not be negative",
		}
	}
	for name := range cfg.Macros {
		if !strings.HasPrefix(name, "\\") {
			return &ValidationError{
				Field:   "macros",
				Value:   name,
				Message: "macro names must start with a backslash",
			}
		}
	}
	return nil
}
