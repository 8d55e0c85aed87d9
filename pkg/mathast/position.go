package mathast

// Input is an immutable source buffer shared by every token lexed from it.
// Tokens reference slices of the buffer by offset instead of copying text.
type Input struct {
	text string
}

// NewInput wraps a source string in a shared Input buffer.
func NewInput(text string) *Input {
	return &Input{text: text}
}

// Text returns the full source text.
func (in *Input) Text() string {
	if in == nil {
		return ""
	}
	return in.text
}

// Len returns the length of the source text in bytes.
func (in *Input) Len() int {
	if in == nil {
		return 0
	}
	return len(in.text)
}

// SourceRange locates a token or node within a shared Input buffer.
type SourceRange struct {
	// Input is the shared source buffer this range points into.
	Input *Input

	// Start is the byte offset where the range begins (inclusive).
	Start int

	// End is the byte offset where the range ends (exclusive).
	End int
}

// Text returns the source text covered by the range.
func (r *SourceRange) Text() string {
	if r == nil || r.Input == nil {
		return ""
	}
	return r.Input.text[r.Start:r.End]
}

// MergeRanges combines the spans of a first and last token into one range.
// Returns nil unless both ranges exist and share the same input buffer.
func MergeRanges(first, last *SourceRange) *SourceRange {
	if first == nil || last == nil || first.Input != last.Input {
		return nil
	}
	return &SourceRange{Input: first.Input, Start: first.Start, End: last.End}
}
