package configloader

import (
	"strings"

	"github.com/yaklabco/gotexmath/pkg/macro"
	"github.com/yaklabco/gotexmath/pkg/parser"
	"github.com/yaklabco/gotexmath/pkg/render"
)

// Config is the file- and environment-backed render configuration. It is
// the YAML-facing counterpart of render.Settings.
type Config struct {
	// Display typesets standalone expressions in display style.
	Display bool `yaml:"display"`

	// Strict is the strict-mode policy: "ignore", "warn" or "error".
	Strict string `yaml:"strict"`

	// Trust permits every trust-gated command, regardless of protocol.
	Trust bool `yaml:"trust"`

	// TrustedProtocols permits trust-gated commands whose URL protocol is
	// listed ("http", "https", "mailto", "_relative"). Ignored when Trust
	// is set.
	TrustedProtocols []string `yaml:"trusted_protocols"`

	// Macros maps control sequences to replacement text, with #1..#9
	// placeholders for arguments.
	Macros map[string]string `yaml:"macros"`

	// MaxSize caps user-specified sizes in ems; 0 means unlimited.
	MaxSize float64 `yaml:"max_size"`

	// MaxExpand bounds macro expansions per render; 0 means the default.
	MaxExpand int `yaml:"max_expand"`

	// MinRuleThickness is the minimum fraction-bar thickness in ems.
	MinRuleThickness float64 `yaml:"min_rule_thickness"`

	// LogLevel sets the logger level: "debug", "info", "warn", "error".
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Strict:   "warn",
		LogLevel: "info",
	}
}

// severityFromName maps a strict policy name to its severity. Validation
// guarantees the name is one of the three.
func severityFromName(name string) render.Severity {
	switch name {
	case "ignore":
		return render.Ignore
	case "error":
		return render.Error
	default:
		return render.Warn
	}
}

// macroNumArgs derives a macro's arity from the highest #n placeholder in
// its replacement text.
func macroNumArgs(body string) int {
	numArgs := 0
	for i := 0; i+1 < len(body); i++ {
		if body[i] != '#' {
			continue
		}
		d := body[i+1]
		if d >= '1' && d <= '9' && int(d-'0') > numArgs {
			numArgs = int(d - '0')
		}
	}
	return numArgs
}

// ToSettings converts the configuration into render settings.
func (c *Config) ToSettings() *render.Settings {
	settings := &render.Settings{
		Display:          c.Display,
		Strict:           severityFromName(c.Strict),
		Trust:            c.Trust,
		MaxSize:          c.MaxSize,
		MaxExpand:        c.MaxExpand,
		MinRuleThickness: c.MinRuleThickness,
	}

	if !c.Trust && len(c.TrustedProtocols) > 0 {
		allowed := make(map[string]bool, len(c.TrustedProtocols))
		for _, protocol := range c.TrustedProtocols {
			allowed[strings.ToLower(protocol)] = true
		}
		settings.TrustFn = func(ctx parser.TrustContext) bool {
			return allowed[ctx.Protocol]
		}
	}

	if len(c.Macros) > 0 {
		settings.Macros = make(map[string]*macro.Definition, len(c.Macros))
		for name, body := range c.Macros {
			settings.Macros[name] = &macro.Definition{
				Body:    body,
				NumArgs: macroNumArgs(body),
			}
		}
	}
	return settings
}
