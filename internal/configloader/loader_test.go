package configloader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gotexmath/pkg/parser"
	"github.com/yaklabco/gotexmath/pkg/render"
)

// newWorkDir creates an isolated working directory with a VCS marker so the
// upward project-config search never escapes into the real filesystem. It
// also points XDG_CONFIG_HOME at an empty directory.
func newWorkDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0o755))
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	return dir
}

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	dir := newWorkDir(t)

	result, err := Load(LoadOptions{WorkingDir: dir, IgnoreEnv: true})
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), result.Config)
	assert.Empty(t, result.LoadedFrom)
}

func TestLoad_ProjectConfig(t *testing.T) {
	dir := newWorkDir(t)
	path := writeFile(t, filepath.Join(dir, ".gotexmath.yml"),
		"display: true\nstrict: error\nmax_expand: 500\n")

	result, err := Load(LoadOptions{WorkingDir: dir, IgnoreEnv: true})
	require.NoError(t, err)
	assert.True(t, result.Config.Display)
	assert.Equal(t, "error", result.Config.Strict)
	assert.Equal(t, 500, result.Config.MaxExpand)
	assert.Equal(t, []string{path}, result.LoadedFrom)
	assert.Equal(t, path, result.Paths.Project)
}

func TestLoad_ProjectConfigFoundUpward(t *testing.T) {
	root := newWorkDir(t)
	path := writeFile(t, filepath.Join(root, ".gotexmath.yml"), "strict: ignore\n")
	nested := filepath.Join(root, "docs", "api")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	result, err := Load(LoadOptions{WorkingDir: nested, IgnoreEnv: true})
	require.NoError(t, err)
	assert.Equal(t, "ignore", result.Config.Strict)
	assert.Equal(t, []string{path}, result.LoadedFrom)
}

func TestLoad_ProjectOverridesUserConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0o755))

	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	userPath := writeFile(t, filepath.Join(configHome, "gotexmath", "config.yaml"),
		"strict: ignore\nmax_expand: 50\n")
	projectPath := writeFile(t, filepath.Join(dir, ".gotexmath.yml"),
		"strict: error\n")

	result, err := Load(LoadOptions{WorkingDir: dir, IgnoreEnv: true})
	require.NoError(t, err)

	// Project wins on the field it names; the user value survives elsewhere.
	assert.Equal(t, "error", result.Config.Strict)
	assert.Equal(t, 50, result.Config.MaxExpand)
	assert.Equal(t, []string{userPath, projectPath}, result.LoadedFrom)
}

func TestLoad_MacrosMergeAcrossFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0o755))

	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	writeFile(t, filepath.Join(configHome, "gotexmath", "config.yaml"),
		"macros:\n  \"\\\\RR\": \"\\\\mathbb{R}\"\n  \"\\\\half\": \"0.5\"\n")
	writeFile(t, filepath.Join(dir, ".gotexmath.yml"),
		"macros:\n  \"\\\\half\": \"\\\\frac{1}{2}\"\n")

	result, err := Load(LoadOptions{WorkingDir: dir, IgnoreEnv: true})
	require.NoError(t, err)
	assert.Equal(t, "\\mathbb{R}", result.Config.Macros["\\RR"])
	assert.Equal(t, "\\frac{1}{2}", result.Config.Macros["\\half"])
}

func TestLoad_ExplicitPathSkipsDiscovery(t *testing.T) {
	dir := newWorkDir(t)
	writeFile(t, filepath.Join(dir, ".gotexmath.yml"), "strict: ignore\n")
	explicit := writeFile(t, filepath.Join(dir, "custom.yaml"), "strict: error\n")

	result, err := Load(LoadOptions{
		WorkingDir:   dir,
		ExplicitPath: explicit,
		IgnoreEnv:    true,
	})
	require.NoError(t, err)
	assert.Equal(t, "error", result.Config.Strict)
	assert.Equal(t, []string{explicit}, result.LoadedFrom)
}

func TestLoad_MissingExplicitPathErrors(t *testing.T) {
	dir := newWorkDir(t)

	_, err := Load(LoadOptions{
		WorkingDir:   dir,
		ExplicitPath: filepath.Join(dir, "no-such.yaml"),
		IgnoreEnv:    true,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}

func TestLoad_MalformedYAMLErrors(t *testing.T) {
	dir := newWorkDir(t)
	writeFile(t, filepath.Join(dir, ".gotexmath.yml"), "strict: [not, a, scalar\n")

	_, err := Load(LoadOptions{WorkingDir: dir, IgnoreEnv: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestLoad_EnvOverridesFiles(t *testing.T) {
	dir := newWorkDir(t)
	writeFile(t, filepath.Join(dir, ".gotexmath.yml"), "strict: ignore\n")
	t.Setenv("GOTEXMATH_STRICT", "ERROR")
	t.Setenv("GOTEXMATH_MAX_EXPAND", "25")
	t.Setenv("GOTEXMATH_TRUSTED_PROTOCOLS", "https, mailto")

	result, err := Load(LoadOptions{WorkingDir: dir})
	require.NoError(t, err)
	assert.Equal(t, "error", result.Config.Strict)
	assert.Equal(t, 25, result.Config.MaxExpand)
	assert.Equal(t, []string{"https", "mailto"}, result.Config.TrustedProtocols)
}

func TestLoad_IgnoreEnv(t *testing.T) {
	dir := newWorkDir(t)
	t.Setenv("GOTEXMATH_STRICT", "error")

	result, err := Load(LoadOptions{WorkingDir: dir, IgnoreEnv: true})
	require.NoError(t, err)
	assert.Equal(t, "warn", result.Config.Strict)
}

func TestLoad_InvalidEnvValueErrors(t *testing.T) {
	dir := newWorkDir(t)
	t.Setenv("GOTEXMATH_DISPLAY", "definitely")

	_, err := Load(LoadOptions{WorkingDir: dir})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GOTEXMATH_DISPLAY")
}

func TestLoad_ValidationRejectsMergedConfig(t *testing.T) {
	dir := newWorkDir(t)
	writeFile(t, filepath.Join(dir, ".gotexmath.yml"), "strict: sometimes\n")

	_, err := Load(LoadOptions{WorkingDir: dir, IgnoreEnv: true})
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "strict", verr.Field)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"bad strict", func(c *Config) { c.Strict = "loud" }, "strict"},
		{"bad log level", func(c *Config) { c.LogLevel = "trace" }, "log_level"},
		{"negative max_expand", func(c *Config) { c.MaxExpand = -1 }, "max_expand"},
		{"negative max_size", func(c *Config) { c.MaxSize = -0.5 }, "max_size"},
		{"negative min_rule_thickness", func(c *Config) { c.MinRuleThickness = -1 }, "min_rule_thickness"},
		{"macro without backslash", func(c *Config) { c.Macros = map[string]string{"half": "0.5"} }, "macros"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)

			err := Validate(cfg)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.field, verr.Field)
		})
	}

	t.Run("defaults pass", func(t *testing.T) {
		assert.NoError(t, Validate(DefaultConfig()))
	})
}

func TestConfig_ToSettings_Severity(t *testing.T) {
	tests := []struct {
		name string
		want render.Severity
	}{
		{"ignore", render.Ignore},
		{"warn", render.Warn},
		{"error", render.Error},
	}
	for _, tc := range tests {
		cfg := DefaultConfig()
		cfg.Strict = tc.name
		assert.Equal(t, tc.want, cfg.ToSettings().Strict, tc.name)
	}
}

func TestConfig_ToSettings_BlanketTrustSkipsProtocolList(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Trust = true
	cfg.TrustedProtocols = []string{"https"}

	settings := cfg.ToSettings()
	assert.True(t, settings.Trust)
	assert.Nil(t, settings.TrustFn)
}

func TestConfig_ToSettings_TrustedProtocols(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TrustedProtocols = []string{"HTTPS", "mailto"}

	settings := cfg.ToSettings()
	require.NotNil(t, settings.TrustFn)
	assert.False(t, settings.Trust)
	assert.True(t, settings.TrustFn(parser.TrustContext{Protocol: "https"}))
	assert.True(t, settings.TrustFn(parser.TrustContext{Protocol: "mailto"}))
	assert.False(t, settings.TrustFn(parser.TrustContext{Protocol: "javascript"}))
}

func TestConfig_ToSettings_MacroArity(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Macros = map[string]string{
		"\\RR":   "\\mathbb{R}",
		"\\pair": "(#1, #2)",
	}

	settings := cfg.ToSettings()
	require.Len(t, settings.Macros, 2)
	assert.Equal(t, 0, settings.Macros["\\RR"].NumArgs)
	assert.Equal(t, 2, settings.Macros["\\pair"].NumArgs)
	assert.Equal(t, "(#1, #2)", settings.Macros["\\pair"].Body)
}

func TestMacroNumArgs(t *testing.T) {
	tests := []struct {
		body string
		want int
	}{
		{"", 0},
		{"\\alpha", 0},
		{"#1", 1},
		{"#2 before #1", 2},
		{"#1#9", 9},
		{"trailing #", 0},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, macroNumArgs(tc.body), tc.body)
	}
}
