package configloader

import (
	"os"
	"path/filepath"
)

// ConfigPaths represents discovered configuration file paths.
type ConfigPaths struct {
	// User is the user-level config path (e.g., ~/.config/gotexmath/config.yaml).
	User string

	// Project is the project-level config path (e.g., ./.gotexmath.yml).
	Project string

	// Explicit is a config path provided via --config flag.
	Explicit string
}

// projectConfigFiles are the config file names we search for, in order of
// preference.
//
//nolint:gochecknoglobals // Read-only lookup table.
var projectConfigFiles = []string{
	".gotexmath.yml",
	".gotexmath.yaml",
	"gotexmath.yml",
	"gotexmath.yaml",
}

// vcsRootMarkers are directories that indicate a VCS root, bounding the
// upward project-config search.
//
//nolint:gochecknoglobals // Read-only lookup table.
var vcsRootMarkers = []string{".git", ".hg", ".svn"}

// DiscoverPaths finds configuration files in standard locations: the user
// config under $XDG_CONFIG_HOME/gotexmath, and a project config found by
// searching upward from workDir until a VCS root or the filesystem root.
func DiscoverPaths(workDir string) *ConfigPaths {
	paths := &ConfigPaths{}

	if configHome := userConfigHome(); configHome != "" {
		paths.User = firstExisting(
			filepath.Join(configHome, "gotexmath", "config.yaml"),
			filepath.Join(configHome, "gotexmath", "config.yml"),
		)
	}

	paths.Project = findProjectConfig(workDir)
	return paths
}

func userConfigHome() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return xdg
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config")
}

func firstExisting(candidates ...string) string {
	for _, path := range candidates {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// findProjectConfig searches workDir and its ancestors for a project config
// file. The search stops after the first directory containing a VCS marker.
func findProjectConfig(workDir string) string {
	dir, err := filepath.Abs(workDir)
	if err != nil {
		return ""
	}
	for {
		candidates := make([]string, 0, len(projectConfigFiles))
		for _, name := range projectConfigFiles {
			candidates = append(candidates, filepath.Join(dir, name))
		}
		if found := firstExisting(candidates...); found != "" {
			return found
		}
		if isVCSRoot(dir) {
			return ""
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

func isVCSRoot(dir string) bool {
	for _, marker := range vcsRootMarkers {
		if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
			return true
		}
	}
	return false
}
