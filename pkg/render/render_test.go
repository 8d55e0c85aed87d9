package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gotexmath/pkg/macro"
	"github.com/yaklabco/gotexmath/pkg/mathast"
	"github.com/yaklabco/gotexmath/pkg/parser"
)

func TestRenderMathML_Superscript(t *testing.T) {
	got, err := RenderMathML("x^2", nil)
	require.NoError(t, err)

	assert.Equal(t,
		`<math xmlns="http://www.w3.org/1998/Math/MathML"><semantics>`+
			`<mrow><msup><mi>x</mi><mn>2</mn></msup></mrow>`+
			`<annotation encoding="application/x-tex">x^2</annotation>`+
			`</semantics></math>`,
		got)
}

func TestRenderMathML_Fraction(t *testing.T) {
	got, err := RenderMathML(`\frac{1}{2}`, nil)
	require.NoError(t, err)
	assert.Contains(t, got, "<mfrac><mn>1</mn><mn>2</mn></mfrac>")
}

func TestRenderMathML_Sqrt(t *testing.T) {
	got, err := RenderMathML(`\sqrt{2}`, nil)
	require.NoError(t, err)
	assert.Contains(t, got, "<msqrt><mn>2</mn></msqrt>")

	got, err = RenderMathML(`\sqrt[3]{2}`, nil)
	require.NoError(t, err)
	assert.Contains(t, got, "<mroot><mn>2</mn><mn>3</mn></mroot>")
}

func TestRenderMathML_NumberRunsMerge(t *testing.T) {
	got, err := RenderMathML("3.14", nil)
	require.NoError(t, err)
	assert.Contains(t, got, "<mn>3.14</mn>")
}

func TestRenderMathML_Matrix(t *testing.T) {
	got, err := RenderMathML(`\begin{matrix}a&b\\c&d\end{matrix}`, nil)
	require.NoError(t, err)
	assert.Contains(t, got, `<mtable columnalign="center center">`)
	// Cells render in text style.
	assert.Contains(t, got, `<mtd><mstyle scriptlevel="0" displaystyle="false"><mi>a</mi></mstyle></mtd>`)
	assert.Equal(t, 4, strings.Count(got, "<mtd>"))
	assert.Equal(t, 2, strings.Count(got, "<mtr>"))
}

func TestRenderMathML_DisplayMode(t *testing.T) {
	got, err := RenderMathML("x", &Settings{Display: true})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got,
		`<math xmlns="http://www.w3.org/1998/Math/MathML" display="block">`))
}

func TestRenderMathML_AnnotationEscapes(t *testing.T) {
	got, err := RenderMathML("a<b", nil)
	require.NoError(t, err)
	assert.Contains(t, got, `<annotation encoding="application/x-tex">a&lt;b</annotation>`)
}

func TestRender_ParseErrorPropagates(t *testing.T) {
	_, err := RenderMathML("x^2^3", nil)
	require.Error(t, err)
	var perr *mathast.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, mathast.DoubleSuperscript{}, perr.Kind)
}

func TestRender_StrictErrorEscalates(t *testing.T) {
	// A trailing comment is fine by default but fatal under strict errors.
	_, err := RenderMathML("a% note", nil)
	require.NoError(t, err)

	_, err = RenderMathML("a% note", &Settings{Strict: Error})
	require.Error(t, err)
	var perr *mathast.ParseError
	require.ErrorAs(t, err, &perr)
	sme, ok := perr.Kind.(mathast.StrictModeError)
	require.True(t, ok)
	assert.Equal(t, "commentAtEnd", sme.Code)
}

func TestRender_StrictFnOverridesBlanketPolicy(t *testing.T) {
	settings := &Settings{
		Strict: Error,
		StrictFn: func(code, message string, tok *mathast.Token) Severity {
			return Ignore
		},
	}
	_, err := RenderMathML("a% note", settings)
	assert.NoError(t, err)
}

func TestRender_TrustGatesURL(t *testing.T) {
	got, err := RenderMathML(`\url{https://example.com}`, nil)
	require.NoError(t, err)
	assert.Contains(t, got, `mathcolor="#cc0000"`)
	assert.NotContains(t, got, `href=`)

	got, err = RenderMathML(`\url{https://example.com}`, &Settings{Trust: true})
	require.NoError(t, err)
	assert.Contains(t, got, `href="https://example.com"`)
}

func TestRender_TrustFnDecidesPerProtocol(t *testing.T) {
	settings := &Settings{
		TrustFn: func(ctx parser.TrustContext) bool {
			return ctx.Protocol == "https"
		},
	}
	got, err := RenderMathML(`\url{https://example.com}`, settings)
	require.NoError(t, err)
	assert.Contains(t, got, `href="https://example.com"`)

	got, err = RenderMathML(`\url{javascript:alert(1)}`, settings)
	require.NoError(t, err)
	assert.NotContains(t, got, `href=`)
}

func TestRender_MacrosFromSettings(t *testing.T) {
	settings := &Settings{
		Macros: map[string]*macro.Definition{
			"\\half": {Body: `\frac{1}{2}`},
		},
	}
	got, err := RenderMathML(`\half`, settings)
	require.NoError(t, err)
	assert.Contains(t, got, "<mfrac>")
}

func TestRender_GdefWritesBackToSharedMacroMap(t *testing.T) {
	settings := &Settings{Macros: map[string]*macro.Definition{}}

	_, err := RenderMathML(`\gdef\foo{x}\foo`, settings)
	require.NoError(t, err)
	require.Contains(t, settings.Macros, "\\foo")

	// A later render over the same settings sees the definition.
	got, err := RenderMathML(`\foo`, settings)
	require.NoError(t, err)
	assert.Contains(t, got, "<mi>x</mi>")
}

func TestRender_MaxExpandLimits(t *testing.T) {
	settings := &Settings{
		MaxExpand: 5,
		Macros: map[string]*macro.Definition{
			"\\loop": {Body: `\loop`},
		},
	}
	_, err := RenderMathML(`\loop`, settings)
	require.Error(t, err)
	var perr *mathast.ParseError
	require.ErrorAs(t, err, &perr)
	assert.IsType(t, mathast.TooManyExpansions{}, perr.Kind)
}

func TestRenderHTML_RootClasses(t *testing.T) {
	got, err := RenderHTML("x", nil)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, `<span class="katex">`))
	assert.Contains(t, got, `aria-hidden="true"`)
	assert.Contains(t, got, `class="strut"`)
	assert.Contains(t, got, `class="base"`)

	got, err = RenderHTML("x", &Settings{Display: true})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, `<span class="katex-display">`))
}

func TestRenderToString_CombinesBothTrees(t *testing.T) {
	got, err := RenderToString("x^2", nil)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(got, `<span class="katex">`))
	assert.Contains(t, got, `<span class="katex-mathml"><math`)
	assert.Contains(t, got, `class="katex-html"`)
	assert.Contains(t, got, "<msup>")
	assert.True(t, strings.HasSuffix(got, "</span>"))
}

func TestRenderToString_DisplayWrapper(t *testing.T) {
	got, err := RenderToString("x", &Settings{Display: true})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, `<span class="katex-display"><span class="katex">`))
}

func TestParse_ReturnsTree(t *testing.T) {
	tree, err := Parse("a+b", nil)
	require.NoError(t, err)
	assert.Len(t, tree, 3)
}
