package functions

import (
	"strings"

	"github.com/yaklabco/gotexmath/pkg/domtree"
	"github.com/yaklabco/gotexmath/pkg/htmlbuild"
	"github.com/yaklabco/gotexmath/pkg/mathast"
	"github.com/yaklabco/gotexmath/pkg/mathmlbuild"
	"github.com/yaklabco/gotexmath/pkg/mmltree"
	"github.com/yaklabco/gotexmath/pkg/options"
	"github.com/yaklabco/gotexmath/pkg/parser"
)

// matrixDelims maps a matrix variant to the delimiter pair wrapped around
// the plain matrix body.
var matrixDelims = map[string][2]string{
	"pmatrix": {"(", ")"},
	"bmatrix": {"[", "]"},
	"Bmatrix": {"\\{", "\\}"},
	"vmatrix": {"|", "|"},
	"Vmatrix": {"\\Vert", "\\Vert"},
}

func init() {
	parser.DefaultFunctions.Register(&parser.FuncSpec{
		NumArgs:  1,
		ArgTypes: []parser.ArgType{parser.ArgRaw},
		Handler:  handleBegin,
	}, "\\begin")

	parser.DefaultEnvironments.Register(&parser.EnvSpec{
		Handler: handleMatrixEnv,
	}, "matrix", "pmatrix", "bmatrix", "Bmatrix", "vmatrix", "Vmatrix")

	parser.DefaultEnvironments.Register(&parser.EnvSpec{
		Handler: handleCasesEnv,
	}, "cases")

	parser.DefaultEnvironments.Register(&parser.EnvSpec{
		NumArgs:  1,
		ArgTypes: []parser.ArgType{parser.ArgRaw},
		Handler:  handleArrayEnv,
	}, "array")

	htmlbuild.Register(mathast.KindArray, buildArrayHTML)
	mathmlbuild.Register(mathast.KindArray, buildArrayMathML)
}

// handleBegin dispatches \begin{name} to the environment registry and
// checks the matching \end.
func handleBegin(ctx *parser.FuncContext, args, optArgs []mathast.Node) (mathast.Node, error) {
	name := strings.TrimSpace(args[0].(*mathast.Raw).Str)
	env := parser.DefaultEnvironments.Get(name)
	if env == nil {
		return nil, mathast.ParseErrorAt(mathast.NoSuchEnvironment{Name: name}, ctx.Token)
	}

	p := ctx.Parser
	envArgs, envOptArgs, err := p.ParseArguments("\\begin{"+name+"}", env.NumArgs, env.NumOptionalArgs, env.ArgTypes)
	if err != nil {
		return nil, err
	}
	result, err := env.Handler(&parser.EnvContext{
		Parser:  p,
		EnvName: name,
		Token:   ctx.Token,
	}, envArgs, envOptArgs)
	if err != nil {
		return nil, err
	}

	if err := p.Expect("\\end"); err != nil {
		return nil, err
	}
	endName, _, err := p.ParseStringGroup(false)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(endName) != name {
		return nil, mathast.ParseErrorAt(
			mathast.MismatchedEnvironmentEnd{Begin: name, End: strings.TrimSpace(endName)}, ctx.Token)
	}
	return result, nil
}

// parseArrayBody parses rows of cells separated by & and \\, stopping
// before \end. Cells render in text style, as in LaTeX arrays.
func parseArrayBody(p *parser.Parser) (*mathast.Array, error) {
	p.Gullet().BeginGroup()

	arr := &mathast.Array{Info: mathast.Info{Mode: p.Mode()}}
	var row []mathast.Node
	for {
		cell, err := p.ParseExpression(false, "\\\\")
		if err != nil {
			return nil, err
		}
		row = append(row, &mathast.Styling{
			Info:  mathast.Info{Mode: p.Mode()},
			Style: "text",
			Body: []mathast.Node{&mathast.OrdGroup{
				Info: mathast.Info{Mode: p.Mode()},
				Body: cell,
			}},
		})

		tok, err := p.Fetch()
		if err != nil {
			return nil, err
		}
		switch tok.Text.String() {
		case "&":
			p.Consume()

		case "\\\\":
			p.Consume()
			gapNode, err := p.ParseSizeGroup(true)
			if err != nil {
				return nil, err
			}
			var gap *mathast.Measurement
			if sz, ok := gapNode.(*mathast.Size); ok && !sz.IsBlank {
				v := sz.Value
				gap = &v
			}
			arr.RowGaps = append(arr.RowGaps, gap)
			arr.Body = append(arr.Body, row)
			row = nil

		case "\\end":
			// A trailing \\ leaves a row holding one empty cell; drop it.
			if len(row) != 1 || len(arr.Body) == 0 {
				arr.Body = append(arr.Body, row)
			} else if st, ok := row[0].(*mathast.Styling); !ok || len(ordArgument(st.Body[0])) > 0 {
				arr.Body = append(arr.Body, row)
			}
			if err := p.Gullet().EndGroup(); err != nil {
				return nil, err
			}
			return arr, nil

		default:
			return nil, mathast.ParseErrorAt(
				mathast.ExpectedToken{Expected: "& or \\\\ or \\end", Found: tok.Text.String()}, tok)
		}
	}
}

func handleMatrixEnv(ctx *parser.EnvContext, args, optArgs []mathast.Node) (mathast.Node, error) {
	arr, err := parseArrayBody(ctx.Parser)
	if err != nil {
		return nil, err
	}

	// All matrix columns center.
	cols := 0
	for _, row := range arr.Body {
		if len(row) > cols {
			cols = len(row)
		}
	}
	for i := 0; i < cols; i++ {
		arr.Cols = append(arr.Cols, mathast.AlignSpec{Align: "c"})
	}

	delims, wrapped := matrixDelims[ctx.EnvName]
	if !wrapped {
		return arr, nil
	}
	return &mathast.LeftRight{
		Info:  mathast.Info{Mode: ctx.Parser.Mode(), Loc: ctx.Token.Loc},
		Body:  []mathast.Node{arr},
		Left:  delims[0],
		Right: delims[1],
	}, nil
}

func handleCasesEnv(ctx *parser.EnvContext, args, optArgs []mathast.Node) (mathast.Node, error) {
	arr, err := parseArrayBody(ctx.Parser)
	if err != nil {
		return nil, err
	}
	arr.Cols = []mathast.AlignSpec{{Align: "l"}, {Align: "l"}}
	return &mathast.LeftRight{
		Info:  mathast.Info{Mode: ctx.Parser.Mode(), Loc: ctx.Token.Loc},
		Body:  []mathast.Node{arr},
		Left:  "\\{",
		Right: ".",
	}, nil
}

func handleArrayEnv(ctx *parser.EnvContext, args, optArgs []mathast.Node) (mathast.Node, error) {
	spec := args[0].(*mathast.Raw).Str

	var cols []mathast.AlignSpec
	for _, ch := range spec {
		switch ch {
		case 'l', 'c', 'r':
			cols = append(cols, mathast.AlignSpec{Align: string(ch)})
		case '|':
			cols = append(cols, mathast.AlignSpec{Separator: "|"})
		case ' ':
		default:
			return nil, mathast.ParseErrorAt(
				mathast.UnknownColumnAlignment{Alignment: string(ch)}, ctx.Token)
		}
	}

	arr, err := parseArrayBody(ctx.Parser)
	if err != nil {
		return nil, err
	}
	arr.Cols = cols
	arr.HSkipBeforeAndAfter = true
	return arr, nil
}

func columnAlignments(cols []mathast.AlignSpec) []string {
	var aligns []string
	for _, col := range cols {
		switch col.Align {
		case "l":
			aligns = append(aligns, "left")
		case "c":
			aligns = append(aligns, "center")
		case "r":
			aligns = append(aligns, "right")
		}
	}
	return aligns
}

func buildArrayMathML(node mathast.Node, opts *options.Options) (mmltree.Node, error) {
	n, ok := node.(*mathast.Array)
	if !ok {
		return nil, mathast.NewParseError(mathast.ExpectedNode{Node: mathast.KindArray})
	}

	var rows []mmltree.Node
	for _, row := range n.Body {
		var cells []mmltree.Node
		for _, cell := range row {
			built, err := mathmlbuild.Build(cell, opts)
			if err != nil {
				return nil, err
			}
			cells = append(cells, mmltree.NewMathNode("mtd", built))
		}
		rows = append(rows, mmltree.NewMathNode("mtr", cells...))
	}

	table := mmltree.NewMathNode("mtable", rows...)
	if aligns := columnAlignments(n.Cols); len(aligns) > 0 {
		table.SetAttribute("columnalign", strings.Join(aligns, " "))
	}
	return table, nil
}

func buildArrayHTML(node mathast.Node, opts *options.Options) (domtree.Node, error) {
	n, ok := node.(*mathast.Array)
	if !ok {
		return nil, mathast.NewParseError(mathast.ExpectedNode{Node: mathast.KindArray})
	}

	var rows []domtree.Node
	for _, row := range n.Body {
		var cells []domtree.Node
		for _, cell := range row {
			built, err := htmlbuild.Build(cell, opts)
			if err != nil {
				return nil, err
			}
			cells = append(cells, htmlbuild.MakeSpan([]string{"mtd"}, []domtree.Node{built}, nil))
		}
		rows = append(rows, htmlbuild.MakeSpan([]string{"mtr"}, cells, nil))
	}
	return htmlbuild.MakeSpan([]string{"mord", "mtable"}, rows, opts), nil
}
