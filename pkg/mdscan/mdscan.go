// Package mdscan finds TeX math embedded in Markdown documents and replaces
// it in place with rendered MathML. Inline `$...$` and display `$$...$$`
// spans are found inside text runs; a fenced code block with info string
// "math" renders as a display block. Everything else passes through
// byte-identical.
package mdscan

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"sort"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	gmparser "github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/yaklabco/gotexmath/pkg/render"
)

// mathSpanRe matches a display $$...$$ span or an inline $...$ span. Inline
// spans may not cross a line break; display spans may.
var mathSpanRe = regexp.MustCompile(`\$\$([^$]+)\$\$|\$([^$\n]+)\$`)

// Scanner renders math segments of Markdown documents under one shared
// render configuration.
type Scanner struct {
	settings *render.Settings
	md       goldmark.Markdown
}

// New creates a scanner. A nil settings renders with the defaults; the
// Display flag is ignored, since each segment's delimiters decide its mode.
func New(settings *render.Settings) *Scanner {
	if settings == nil {
		settings = &render.Settings{}
	}
	return &Scanner{
		settings: settings,
		md:       goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}
}

// replacement is one source range to splice out, with the markup that
// replaces it.
type replacement struct {
	start, stop int
	markup      string
}

// Render returns doc with every math segment replaced by MathML markup,
// along with the number of segments rendered. The first math segment that
// fails to render aborts the scan.
func (s *Scanner) Render(ctx context.Context, doc []byte) ([]byte, int, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, fmt.Errorf("scan cancelled: %w", err)
	}

	reader := text.NewReader(doc)
	root := s.md.Parser().Parse(reader, gmparser.WithContext(gmparser.NewContext()))

	var reps []replacement
	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.FencedCodeBlock:
			rep, ok, err := s.fenceReplacement(doc, node)
			if err != nil {
				return ast.WalkStop, err
			}
			if ok {
				reps = append(reps, rep)
			}
			return ast.WalkSkipChildren, nil
		case *ast.CodeSpan, *ast.CodeBlock, *ast.HTMLBlock, *ast.RawHTML:
			// Literal regions keep their dollar signs.
			return ast.WalkSkipChildren, nil
		case *ast.Text:
			found, err := s.textReplacements(doc, node.Segment)
			if err != nil {
				return ast.WalkStop, err
			}
			reps = append(reps, found...)
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, 0, err
	}
	return splice(doc, reps), len(reps), nil
}

// renderSegment renders one math source in the requested mode.
func (s *Scanner) renderSegment(source string, display bool, offset int) (string, error) {
	settings := *s.settings
	settings.Display = display
	markup, err := render.RenderMathML(source, &settings)
	if err != nil {
		return "", fmt.Errorf("math at byte %d: %w", offset, err)
	}
	return markup, nil
}

// fenceReplacement renders a ```math fence, covering the fence lines
// themselves. Fences with other info strings, or with no content, are left
// alone.
func (s *Scanner) fenceReplacement(doc []byte, node *ast.FencedCodeBlock) (replacement, bool, error) {
	if string(node.Language(doc)) != "math" {
		return replacement{}, false, nil
	}
	lines := node.Lines()
	if lines.Len() == 0 {
		return replacement{}, false, nil
	}

	var source bytes.Buffer
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		source.Write(seg.Value(doc))
	}

	// Content lines carry their newlines, so the opening fence line ends
	// right before the first content line and the closing fence line starts
	// right after the last one.
	first := lines.At(0).Start
	start := 0
	if first > 0 {
		start = bytes.LastIndexByte(doc[:first-1], '\n') + 1
	}
	stop := lines.At(lines.Len() - 1).Stop
	if nl := bytes.IndexByte(doc[stop:], '\n'); nl >= 0 {
		stop += nl + 1
	} else {
		stop = len(doc)
	}

	markup, err := s.renderSegment(source.String(), true, start)
	if err != nil {
		return replacement{}, false, err
	}
	return replacement{start: start, stop: stop, markup: markup + "\n"}, true, nil
}

// textReplacements finds dollar-delimited math inside one text segment.
func (s *Scanner) textReplacements(doc []byte, seg text.Segment) ([]replacement, error) {
	body := seg.Value(doc)
	var reps []replacement
	for _, m := range mathSpanRe.FindAllSubmatchIndex(body, -1) {
		// A backslash before the opening dollar escapes it.
		if m[0] > 0 && body[m[0]-1] == '\\' {
			continue
		}
		display := m[2] >= 0
		var source []byte
		if display {
			source = body[m[2]:m[3]]
		} else {
			source = body[m[4]:m[5]]
		}
		markup, err := s.renderSegment(string(source), display, seg.Start+m[0])
		if err != nil {
			return nil, err
		}
		reps = append(reps, replacement{
			start:  seg.Start + m[0],
			stop:   seg.Start + m[1],
			markup: markup,
		})
	}
	return reps, nil
}

// splice rebuilds the document with each replaced range swapped for its
// markup. Ranges never overlap; they come from disjoint source nodes.
func splice(doc []byte, reps []replacement) []byte {
	if len(reps) == 0 {
		out := make([]byte, len(doc))
		copy(out, doc)
		return out
	}
	sort.Slice(reps, func(i, j int) bool { return reps[i].start < reps[j].start })

	var out bytes.Buffer
	pos := 0
	for _, rep := range reps {
		if rep.start < pos {
			continue
		}
		out.Write(doc[pos:rep.start])
		out.WriteString(rep.markup)
		pos = rep.stop
	}
	out.Write(doc[pos:])
	return out.Bytes()
}
