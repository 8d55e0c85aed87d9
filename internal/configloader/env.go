package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// envVarPrefix is the prefix for all gotexmath environment variables.
const envVarPrefix = "GOTEXMATH_"

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with GOTEXMATH_ (e.g.,
// GOTEXMATH_STRICT=error).
func LoadFromEnv(cfg *Config) error {
	if cfg == nil {
		return nil
	}

	if v := os.Getenv(envVarPrefix + "STRICT"); v != "" {
		cfg.Strict = strings.ToLower(v)
	}
	if v := os.Getenv(envVarPrefix + "LOG_LEVEL"); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}

	var err error
	if cfg.Display, err = envBool("DISPLAY", cfg.Display); err != nil {
		return err
	}
	if cfg.Trust, err = envBool("TRUST", cfg.Trust); err != nil {
		return err
	}

	if v := os.Getenv(envVarPrefix + "TRUSTED_PROTOCOLS"); v != "" {
		cfg.TrustedProtocols = splitList(v)
	}

	if v := os.Getenv(envVarPrefix + "MAX_EXPAND"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %sMAX_EXPAND %q: %w", envVarPrefix, v, err)
		}
		cfg.MaxExpand = n
	}
	if cfg.MaxSize, err = envFloat("MAX_SIZE", cfg.MaxSize); err != nil {
		return err
	}
	if cfg.MinRuleThickness, err = envFloat("MIN_RULE_THICKNESS", cfg.MinRuleThickness); err != nil {
		return err
	}
	return nil
}

func envBool(suffix string, current bool) (bool, error) {
	v := os.Getenv(envVarPrefix + suffix)
	if v == "" {
		return current, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return current, fmt.Errorf("invalid %s%s %q: %w", envVarPrefix, suffix, v, err)
	}
	return b, nil
}

func envFloat(suffix string, current float64) (float64, error) {
	v := os.Getenv(envVarPrefix + suffix)
	if v == "" {
		return current, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return current, fmt.Errorf("invalid %s%s %q: %w", envVarPrefix, suffix, v, err)
	}
	return f, nil
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
