// Package configloader provides configuration loading and resolution.
// It implements XDG-compliant configuration discovery, hierarchical merging,
// environment variable support, and validation.
package configloader

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for project config.
	// Defaults to the current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config flag).
	// If set, project and user config discovery is skipped.
	ExplicitPath string

	// IgnoreEnv skips environment variable overrides.
	IgnoreEnv bool
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *Config

	// Paths contains the discovered configuration file paths.
	Paths *ConfigPaths

	// LoadedFrom lists the files that were actually loaded, in order of
	// increasing precedence.
	LoadedFrom []string
}

// Load resolves the final configuration by merging all sources.
// Precedence (highest to lowest):
//  1. Environment variables (GOTEXMATH_*)
//  2. Explicit config file (opts.ExplicitPath)
//  3. Project config (.gotexmath.yml upward search)
//  4. User config ($XDG_CONFIG_HOME/gotexmath/config.yaml)
//  5. Defaults
func Load(opts LoadOptions) (*LoadResult, error) {
	workDir := opts.WorkingDir
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("resolve working directory: %w", err)
		}
		workDir = wd
	}

	result := &LoadResult{
		Config: DefaultConfig(),
		Paths:  &ConfigPaths{Explicit: opts.ExplicitPath},
	}

	if opts.ExplicitPath != "" {
		if err := loadFile(result, opts.ExplicitPath, true); err != nil {
			return nil, err
		}
	} else {
		discovered := DiscoverPaths(workDir)
		discovered.Explicit = opts.ExplicitPath
		result.Paths = discovered
		if err := loadFile(result, discovered.User, false); err != nil {
			return nil, err
		}
		if err := loadFile(result, discovered.Project, false); err != nil {
			return nil, err
		}
	}

	if !opts.IgnoreEnv {
		if err := LoadFromEnv(result.Config); err != nil {
			return nil, err
		}
	}

	if err := Validate(result.Config); err != nil {
		return nil, err
	}
	return result, nil
}

// loadFile merges one config file into the result. A missing discovered
// file is skipped silently; a missing explicit file is an error.
func loadFile(result *LoadResult, path string, required bool) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !required {
			return nil
		}
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var o overlay
	if err := yaml.Unmarshal(data, &o); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	result.Config.apply(&o)
	result.LoadedFrom = append(result.LoadedFrom, path)
	return nil
}
