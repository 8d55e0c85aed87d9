package mathast

//go:generate stringer -type=NodeKind -trimprefix=Kind

// NodeKind classifies the type of a parse node. The set is closed: every
// LaTeX construct the parser understands maps to exactly one kind, and the
// two builders dispatch on it.
type NodeKind uint16

// Parse node kinds.
const (
	KindAtom NodeKind = iota
	KindMathOrd
	KindTextOrd
	KindOrdGroup
	KindSupSub
	KindOp
	KindGenfrac
	KindInfix
	KindSqrt
	KindMclass
	KindLeftRight
	KindMiddle
	KindDelimSizing
	KindArray
	KindText
	KindColor
	KindRule
	KindKern
	KindSpacing
	KindAccent
	KindPhantom
	KindHPhantom
	KindVPhantom
	KindStyling
	KindSizing
	KindVerb
	KindHref
	KindSize
	KindColorToken
	KindURL
	KindRaw
	KindInternal
)

// AtomClass is TeX's spacing category for a symbol, used to compute
// inter-atom spacing and MathML operator attributes.
type AtomClass uint8

// Atom classes, in TeX's traditional order.
const (
	AtomOrd AtomClass = iota
	AtomBin
	AtomRel
	AtomOpen
	AtomClose
	AtomPunct
	AtomInner
	AtomOp
)

// DomClass returns the CSS/DOM class name for the atom class ("mord",
// "mbin", ...).
func (a AtomClass) DomClass() string {
	switch a {
	case AtomBin:
		return "mbin"
	case AtomRel:
		return "mrel"
	case AtomOpen:
		return "mopen"
	case AtomClose:
		return "mclose"
	case AtomPunct:
		return "mpunct"
	case AtomInner:
		return "minner"
	case AtomOp:
		return "mop"
	default:
		return "mord"
	}
}

// Node is a single node in the parsed math tree. Nodes are built bottom-up
// during parsing and are immutable afterward; each node is owned exclusively
// by its parent until a builder consumes it.
type Node interface {
	// Kind identifies the node variant.
	Kind() NodeKind

	// NodeMode reports whether the node was parsed in math or text mode.
	NodeMode() Mode

	// NodeLoc returns the node's source span, when known.
	NodeLoc() *SourceRange
}

// Info carries the mode and source span common to every node variant.
// Embed it in a variant struct to satisfy the mode/loc half of Node.
type Info struct {
	Mode Mode
	Loc  *SourceRange
}

// NodeMode implements Node.
func (i Info) NodeMode() Mode { return i.Mode }

// NodeLoc implements Node.
func (i Info) NodeLoc() *SourceRange { return i.Loc }

// BaseElem strips transparent wrappers (single-child ord groups, styling,
// sizing, color) from a node so adjacency-sensitive logic can inspect the
// element that will actually be rendered.
func BaseElem(n Node) Node {
	for {
		switch g := n.(type) {
		case *OrdGroup:
			if len(g.Body) != 1 {
				return n
			}
			n = g.Body[0]
		case *Styling:
			if len(g.Body) != 1 {
				return n
			}
			n = g.Body[0]
		case *Sizing:
			if len(g.Body) != 1 {
				return n
			}
			n = g.Body[0]
		case *Color:
			if len(g.Body) != 1 {
				return n
			}
			n = g.Body[0]
		default:
			return n
		}
	}
}

// IsCharacterBox reports whether the node renders as a single character box,
// which adjacency-sensitive constructs (e.g. \underset) need to know without
// re-walking children.
func IsCharacterBox(n Node) bool {
	switch BaseElem(n).(type) {
	case *Atom, *MathOrd, *TextOrd:
		return true
	default:
		return false
	}
}
