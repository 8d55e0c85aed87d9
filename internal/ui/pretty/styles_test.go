package pretty_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/gotexmath/internal/ui/pretty"
)

func TestNewStyles_NoColorRendersPlainText(t *testing.T) {
	styles := pretty.NewStyles(false)
	assert.Equal(t, "error", styles.Error.Render("error"))
	assert.Equal(t, "hint", styles.Dim.Render("hint"))
}

func TestIsColorEnabled_ExplicitModes(t *testing.T) {
	var buf bytes.Buffer
	assert.True(t, pretty.IsColorEnabled("always", &buf))
	assert.False(t, pretty.IsColorEnabled("never", &buf))
}

func TestIsColorEnabled_AutoNonTTY(t *testing.T) {
	var buf bytes.Buffer
	assert.False(t, pretty.IsColorEnabled("auto", &buf))
}

func TestIsColorEnabled_AutoRespectsNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	var buf bytes.Buffer
	assert.False(t, pretty.IsColorEnabled("auto", &buf))
}
