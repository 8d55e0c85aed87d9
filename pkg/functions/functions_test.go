package functions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gotexmath/pkg/mathast"
	"github.com/yaklabco/gotexmath/pkg/parser"
)

// fnSettings satisfies parser.Settings for handler tests.
type fnSettings struct {
	trusted   bool
	strictErr bool
}

func (s fnSettings) ReportNonstrict(code, message string, tok *mathast.Token) error {
	if s.strictErr {
		return mathast.ParseErrorAt(mathast.StrictModeError{ErrMessage: message, Code: code}, tok)
	}
	return nil
}
func (s fnSettings) DisplayMode() bool                       { return false }
func (s fnSettings) IsTrusted(ctx parser.TrustContext) bool  { return s.trusted }

func parseWith(t *testing.T, input string, settings fnSettings) []mathast.Node {
	t.Helper()
	tree, err := parser.New(input, settings, nil, 1000).Parse()
	require.NoError(t, err)
	return tree
}

func parse(t *testing.T, input string) []mathast.Node {
	t.Helper()
	return parseWith(t, input, fnSettings{})
}

func parseErr(t *testing.T, input string) *mathast.ParseError {
	t.Helper()
	_, err := parser.New(input, fnSettings{}, nil, 1000).Parse()
	require.Error(t, err)
	var perr *mathast.ParseError
	require.ErrorAs(t, err, &perr)
	return perr
}

func TestFrac(t *testing.T) {
	tree := parse(t, `\frac{a}{b}`)
	require.Len(t, tree, 1)

	frac, ok := tree[0].(*mathast.Genfrac)
	require.True(t, ok)
	assert.True(t, frac.HasBarLine)
	assert.Empty(t, frac.LeftDelim)
	assert.Equal(t, "auto", frac.Size)
	assert.Equal(t, "a", mathast.BaseElem(frac.Numer).(*mathast.MathOrd).Text)
	assert.Equal(t, "b", mathast.BaseElem(frac.Denom).(*mathast.MathOrd).Text)
}

func TestFrac_BareArguments(t *testing.T) {
	tree := parse(t, `\frac ab`)
	require.Len(t, tree, 1)
	assert.Equal(t, mathast.KindGenfrac, tree[0].Kind())
}

func TestBinom(t *testing.T) {
	tree := parse(t, `\binom{n}{k}`)
	frac := tree[0].(*mathast.Genfrac)
	assert.False(t, frac.HasBarLine)
	assert.Equal(t, "(", frac.LeftDelim)
	assert.Equal(t, ")", frac.RightDelim)
}

func TestDfracForcesDisplaySize(t *testing.T) {
	frac := parse(t, `\dfrac{1}{2}`)[0].(*mathast.Genfrac)
	assert.Equal(t, "display", frac.Size)
}

func TestOver_RewritesExpression(t *testing.T) {
	tree := parse(t, `a+b \over c`)
	require.Len(t, tree, 1)

	frac, ok := tree[0].(*mathast.Genfrac)
	require.True(t, ok)
	numer, ok := frac.Numer.(*mathast.OrdGroup)
	require.True(t, ok)
	assert.Len(t, numer.Body, 3)
}

func TestOver_OnlyOnePerGroup(t *testing.T) {
	perr := parseErr(t, `a \over b \over c`)
	assert.Equal(t, mathast.MultipleInfixOperators{}, perr.Kind)
}

func TestSqrt(t *testing.T) {
	tree := parse(t, `\sqrt{2}`)
	require.Len(t, tree, 1)
	sqrt := tree[0].(*mathast.Sqrt)
	assert.Nil(t, sqrt.Index)
}

func TestSqrt_WithIndex(t *testing.T) {
	sqrt := parse(t, `\sqrt[3]{2}`)[0].(*mathast.Sqrt)
	require.NotNil(t, sqrt.Index)
}

func TestSqrt_MissingArgument(t *testing.T) {
	perr := parseErr(t, `2\sqrt`)
	assert.Equal(t, mathast.ExpectedGroupAs{Context: `argument to '\sqrt'`}, perr.Kind)
}

func TestSqrt_NotAllowedAsBareSuperscript(t *testing.T) {
	perr := parseErr(t, `1^\sqrt{2}`)
	assert.Equal(t, mathast.FunctionMissingArguments{Func: `\sqrt`, Context: "superscript"}, perr.Kind)
}

func TestSqrt_InfixInArgument(t *testing.T) {
	perr := parseErr(t, `\sqrt\over2`)
	assert.Equal(t, mathast.FunctionMissingArguments{Func: `\over`, Context: `argument to '\sqrt'`}, perr.Kind)
}

func TestDef(t *testing.T) {
	tree := parse(t, `\def\foo{ab}\foo`)
	assert.Len(t, tree, 2)
}

func TestDef_WithParameters(t *testing.T) {
	tree := parse(t, `\def\pair#1#2{#2#1}\pair xy`)
	require.Len(t, tree, 2)
	assert.Equal(t, "y", tree[0].(*mathast.MathOrd).Text)
	assert.Equal(t, "x", tree[1].(*mathast.MathOrd).Text)
}

func TestDef_ScopedToGroup(t *testing.T) {
	perr := parseErr(t, `{\def\foo{x}}\foo`)
	assert.Equal(t, mathast.UndefinedControlSequence{Name: `\foo`}, perr.Kind)
}

func TestGdef_SurvivesGroup(t *testing.T) {
	tree := parse(t, `{\gdef\foo{x}}\foo`)
	require.Len(t, tree, 2)
	assert.Equal(t, mathast.KindOrdGroup, tree[0].Kind())
	assert.Equal(t, "x", tree[1].(*mathast.MathOrd).Text)
}

func TestNewcommand(t *testing.T) {
	tree := parse(t, `\newcommand{\twice}[1]{#1#1}\twice a`)
	assert.Len(t, tree, 2)
}

func TestNewcommand_RefusesRedefinition(t *testing.T) {
	perr := parseErr(t, `\newcommand{\frac}{x}`)
	assert.Equal(t, mathast.RedefineExisting{Name: `\frac`}, perr.Kind)
}

func TestRenewcommand_RequiresExisting(t *testing.T) {
	perr := parseErr(t, `\renewcommand{\nosuch}{x}`)
	assert.Equal(t, mathast.RenewUndefined{Name: `\nosuch`}, perr.Kind)
}

func TestProvidecommand_KeepsExistingMeaning(t *testing.T) {
	tree := parse(t, `\providecommand{\alpha}{x}\alpha`)
	require.Len(t, tree, 1)
	assert.Equal(t, "α", tree[0].(*mathast.MathOrd).Text)
}

func TestMatrixEnvironment(t *testing.T) {
	tree := parse(t, `\begin{matrix}a&b\\c&d\end{matrix}`)
	require.Len(t, tree, 1)

	arr, ok := tree[0].(*mathast.Array)
	require.True(t, ok)
	require.Len(t, arr.Body, 2)
	assert.Len(t, arr.Body[0], 2)
	assert.Len(t, arr.Cols, 2)
	assert.Equal(t, "c", arr.Cols[0].Align)
}

func TestMatrixEnvironment_TrailingRowDropped(t *testing.T) {
	arr := parse(t, `\begin{matrix}a\\b\\\end{matrix}`)[0].(*mathast.Array)
	assert.Len(t, arr.Body, 2)
}

func TestPmatrixWrapsInDelimiters(t *testing.T) {
	tree := parse(t, `\begin{pmatrix}a\end{pmatrix}`)
	lr, ok := tree[0].(*mathast.LeftRight)
	require.True(t, ok)
	assert.Equal(t, "(", lr.Left)
	assert.Equal(t, ")", lr.Right)
	assert.Equal(t, mathast.KindArray, lr.Body[0].Kind())
}

func TestCasesEnvironment(t *testing.T) {
	tree := parse(t, `\begin{cases}a&b\\c&d\end{cases}`)
	lr := tree[0].(*mathast.LeftRight)
	assert.Equal(t, `\{`, lr.Left)
	assert.Equal(t, ".", lr.Right)
}

func TestArrayEnvironment_ColumnSpec(t *testing.T) {
	arr := parse(t, `\begin{array}{l|r}a&b\end{array}`)[0].(*mathast.Array)
	require.Len(t, arr.Cols, 3)
	assert.Equal(t, "l", arr.Cols[0].Align)
	assert.Equal(t, "|", arr.Cols[1].Separator)
	assert.Equal(t, "r", arr.Cols[2].Align)
}

func TestArrayEnvironment_BadColumnSpec(t *testing.T) {
	perr := parseErr(t, `\begin{array}{q}a\end{array}`)
	assert.Equal(t, mathast.UnknownColumnAlignment{Alignment: "q"}, perr.Kind)
}

func TestEnvironment_Unknown(t *testing.T) {
	perr := parseErr(t, `\begin{nope}x\end{nope}`)
	assert.Equal(t, mathast.NoSuchEnvironment{Name: "nope"}, perr.Kind)
}

func TestEnvironment_MismatchedEnd(t *testing.T) {
	perr := parseErr(t, `\begin{matrix}a\end{pmatrix}`)
	assert.Equal(t, mathast.MismatchedEnvironmentEnd{Begin: "matrix", End: "pmatrix"}, perr.Kind)
}

func TestLeftRight(t *testing.T) {
	tree := parse(t, `\left(x\right)`)
	require.Len(t, tree, 1)
	lr := tree[0].(*mathast.LeftRight)
	assert.Equal(t, "(", lr.Left)
	assert.Equal(t, ")", lr.Right)
	assert.Len(t, lr.Body, 1)
}

func TestLeft_InvalidDelimiter(t *testing.T) {
	perr := parseErr(t, `\left x\right)`)
	assert.Equal(t, mathast.InvalidDelimiterAfter{Delim: "x", Func: `\left`}, perr.Kind)
}

func TestBigDelimiter(t *testing.T) {
	tree := parse(t, `\bigl( x \bigr)`)
	require.Len(t, tree, 3)
	ds := tree[0].(*mathast.DelimSizing)
	assert.Equal(t, 1, ds.Size)
	assert.Equal(t, "mopen", ds.MClass)
	assert.Equal(t, "(", ds.Delim)
}

func TestColor_ScoopsRestOfGroup(t *testing.T) {
	tree := parse(t, `a\color{red}b+c`)
	require.Len(t, tree, 2)

	col, ok := tree[1].(*mathast.Color)
	require.True(t, ok)
	assert.Equal(t, "red", col.Color)
	assert.Len(t, col.Body, 3)
}

func TestColor_StopsAtGroupEnd(t *testing.T) {
	tree := parse(t, `{\color{red}a}b`)
	require.Len(t, tree, 2)
	grp := tree[0].(*mathast.OrdGroup)
	require.Len(t, grp.Body, 1)
	assert.Equal(t, mathast.KindColor, grp.Body[0].Kind())
}

func TestTextcolor(t *testing.T) {
	tree := parse(t, `\textcolor{#ff0000}{x}y`)
	require.Len(t, tree, 2)
	col := tree[0].(*mathast.Color)
	assert.Equal(t, "#ff0000", col.Color)
	assert.Len(t, col.Body, 1)
}

func TestTextcolor_InvalidColor(t *testing.T) {
	perr := parseErr(t, `\textcolor{#ff00}{x}`)
	assert.Equal(t, mathast.InvalidColor{Color: "#ff00"}, perr.Kind)
}

func TestText(t *testing.T) {
	tree := parse(t, `\text{hi there}`)
	require.Len(t, tree, 1)

	txt := tree[0].(*mathast.Text)
	assert.Empty(t, txt.Font)
	// Text mode keeps the space.
	assert.Len(t, txt.Body, 8)
}

func TestTextbf_RecordsFont(t *testing.T) {
	txt := parse(t, `\textbf{x}`)[0].(*mathast.Text)
	assert.Equal(t, `\textbf`, txt.Font)
}

func TestSqrt_DisallowedInTextMode(t *testing.T) {
	perr := parseErr(t, `\text{\sqrt{2}}`)
	assert.Equal(t, mathast.FunctionDisallowedInMode{Func: `\sqrt`, Mode: mathast.ModeText}, perr.Kind)
}

func TestMathAccent(t *testing.T) {
	tree := parse(t, `\hat{x}`)
	acc := tree[0].(*mathast.Accent)
	assert.Equal(t, `\hat`, acc.Label)
	assert.True(t, acc.IsShifty)
	assert.False(t, acc.IsStretchy)
}

func TestWideAccentIsStretchy(t *testing.T) {
	acc := parse(t, `\widehat{xy}`)[0].(*mathast.Accent)
	assert.True(t, acc.IsStretchy)
	assert.False(t, acc.IsShifty)
}

func TestTextAccentInMathMode_StrictEscalates(t *testing.T) {
	_, err := parser.New(`\'e`, fnSettings{strictErr: true}, nil, 1000).Parse()
	require.Error(t, err)
	var perr *mathast.ParseError
	require.ErrorAs(t, err, &perr)
	sme, ok := perr.Kind.(mathast.StrictModeError)
	require.True(t, ok)
	assert.Equal(t, "mathVsTextAccents", sme.Code)
}

func TestURL_UntrustedRendersAsErrorColor(t *testing.T) {
	tree := parse(t, `\url{https://example.com}`)
	require.Len(t, tree, 1)
	col, ok := tree[0].(*mathast.Color)
	require.True(t, ok)
	assert.Equal(t, "#cc0000", col.Color)
}

func TestURL_Trusted(t *testing.T) {
	tree := parseWith(t, `\url{https://example.com}`, fnSettings{trusted: true})
	require.Len(t, tree, 1)
	href, ok := tree[0].(*mathast.Href)
	require.True(t, ok)
	assert.Equal(t, "https://example.com", href.Href)
}

func TestHref_Trusted(t *testing.T) {
	tree := parseWith(t, `\href{https://example.com}{x}`, fnSettings{trusted: true})
	href := tree[0].(*mathast.Href)
	assert.Equal(t, "https://example.com", href.Href)
	assert.Len(t, href.Body, 1)
}

func TestURL_PercentSurvives(t *testing.T) {
	tree := parseWith(t, `\url{https://example.com/a%20b}`, fnSettings{trusted: true})
	href := tree[0].(*mathast.Href)
	assert.Equal(t, "https://example.com/a%20b", href.Href)
}
