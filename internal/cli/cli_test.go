package cli_test

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gotexmath/internal/cli"
	"github.com/yaklabco/gotexmath/internal/configloader"
	"github.com/yaklabco/gotexmath/pkg/mathast"
)

// newRoot builds the root command with config discovery pointed away from
// any real user configuration.
func newRoot(t *testing.T) *rootRunner {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	cmd := cli.NewRootCommand(cli.BuildInfo{Version: "test", Commit: "none", Date: "today"})
	return &rootRunner{cmd: cmd}
}

type rootRunner struct {
	cmd *cobra.Command
}

func (r *rootRunner) run(args ...string) error {
	r.cmd.SetArgs(args)
	return r.cmd.Execute()
}

func TestNewRootCommand_Subcommands(t *testing.T) {
	cmd := cli.NewRootCommand(cli.BuildInfo{Version: "test"})

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Contains(t, names, "render")
	assert.Contains(t, names, "doc")
	assert.Contains(t, names, "symbols")
	assert.Contains(t, names, "version")
}

func TestRenderCommand_WritesMathML(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.xml")

	err := newRoot(t).run("render", "x^2", "-o", out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<msup><mi>x</mi><mn>2</mn></msup>")
	assert.NotContains(t, string(data), `display="block"`)
}

func TestRenderCommand_DisplayFlag(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.xml")

	err := newRoot(t).run("render", "--display", "x^2", "-o", out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `display="block"`)
}

func TestRenderCommand_HTMLFormat(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.html")

	err := newRoot(t).run("render", "--format", "html", "x^2", "-o", out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `class="katex"`)
	assert.Contains(t, string(data), "katex-html")
}

func TestRenderCommand_InputFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "expr.tex")
	require.NoError(t, os.WriteFile(in, []byte(`\frac{1}{2}`), 0o644))
	out := filepath.Join(dir, "out.xml")

	err := newRoot(t).run("render", "-i", in, "-o", out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<mfrac>")
}

func TestRenderCommand_UnknownFormat(t *testing.T) {
	err := newRoot(t).run("render", "--format", "pdf", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestRenderCommand_ParseErrorSurfaces(t *testing.T) {
	err := newRoot(t).run("render", "x^2^3", "-o", filepath.Join(t.TempDir(), "out"))
	require.Error(t, err)

	var parseErr *mathast.ParseError
	assert.ErrorAs(t, err, &parseErr)
	assert.Equal(t, cli.ExitParseError, cli.ExitCodeFromError(err))
}

func TestRenderCommand_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "conf.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("display: true\n"), 0o644))
	out := filepath.Join(dir, "out.xml")

	err := newRoot(t).run("--config", cfgPath, "render", "x^2", "-o", out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `display="block"`)
}

func TestRenderCommand_InvalidConfigExitCode(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "conf.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("strict: shouty\n"), 0o644))

	err := newRoot(t).run("--config", cfgPath, "render", "x")
	require.Error(t, err)
	assert.Equal(t, cli.ExitConfigError, cli.ExitCodeFromError(err))
}

func TestDocCommand_RewritesInPlace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.md")
	require.NoError(t, os.WriteFile(path, []byte("Value $x^2$ here.\n"), 0o644))

	err := newRoot(t).run("doc", "-w", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<math")
	assert.NotContains(t, string(data), "$x^2$")
}

func TestDocCommand_OutputFlag(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.md")
	out := filepath.Join(dir, "out.md")
	require.NoError(t, os.WriteFile(in, []byte("$a+b$\n"), 0o644))

	err := newRoot(t).run("doc", "-o", out, in)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<mi>a</mi>")
}

func TestDocCommand_OutputRequiresSingleInput(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.md")
	b := filepath.Join(dir, "b.md")
	require.NoError(t, os.WriteFile(a, []byte("x\n"), 0o644))
	require.NoError(t, os.WriteFile(b, []byte("y\n"), 0o644))

	err := newRoot(t).run("doc", "-o", filepath.Join(dir, "out.md"), a, b)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "single input")
}

func TestDocCommand_OutputAndWriteConflict(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.md")
	require.NoError(t, os.WriteFile(path, []byte("x\n"), 0o644))

	err := newRoot(t).run("doc", "-w", "-o", path+".out", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestDocCommand_ContinuesPastFailedFile(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.md")
	good := filepath.Join(dir, "good.md")
	require.NoError(t, os.WriteFile(bad, []byte("$x^2^3$\n"), 0o644))
	require.NoError(t, os.WriteFile(good, []byte("$y$\n"), 0o644))

	err := newRoot(t).run("doc", "-w", bad, good)
	require.Error(t, err)

	// The good file still got rewritten.
	data, readErr := os.ReadFile(good)
	require.NoError(t, readErr)
	assert.Contains(t, string(data), "<mi>y</mi>")

	// The bad file is untouched.
	data, readErr = os.ReadFile(bad)
	require.NoError(t, readErr)
	assert.Equal(t, "$x^2^3$\n", string(data))
}

func TestExitCodeFromError(t *testing.T) {
	parseErr := mathast.NewParseError(mathast.DoubleSuperscript{})
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, cli.ExitSuccess},
		{"parse error", parseErr, cli.ExitParseError},
		{"wrapped parse error", fmt.Errorf("doc.md: %w", parseErr), cli.ExitParseError},
		{"validation error", &configloader.ValidationError{Field: "strict"}, cli.ExitConfigError},
		{"other", errors.New("boom"), cli.ExitInternalError},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, cli.ExitCodeFromError(tc.err))
		})
	}
}
