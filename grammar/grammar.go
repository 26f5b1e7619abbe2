// Package grammar implements the PEG combinator primitives of spec
// §4.5: ordered choice, greedy repetition, negative lookahead, and
// styled source nodes, composed at construction time into a single
// top-level matcher per language.
//
// Grounded on _examples/original_source/peg.hpp's parse_choice /
// parse_sequence / parse_repetition shape (ordered choice that commits
// to the first success, greedy zero-or-more with no backtracking into
// a committed alternative) and on the combinator names used throughout
// _examples/original_source/languages/*.hpp (sequence, choice,
// repetition, optional, not_, but, highlight).
package grammar

import "github.com/eyelash/platon-core/style"

// Input is the PEG backtracking cursor: the raw byte sequence of the
// buffer plus a position, with save/restore via Pos itself.
type Input struct {
	Data []byte
	Pos  int
}

// NewInput returns an Input positioned at the start of data.
func NewInput(data []byte) *Input {
	return &Input{Data: data}
}

// AtEnd reports whether the cursor has no more bytes to consume.
func (in *Input) AtEnd() bool {
	return in.Pos >= len(in.Data)
}

// Byte returns the byte at the cursor. Callers must check AtEnd first.
func (in *Input) Byte() byte {
	return in.Data[in.Pos]
}

// Node is a "source node": the styled subtree a Highlight match
// produces. Unstyled matches never allocate a Node — only Highlight
// does — so every Node carries a real Style.
type Node struct {
	Start, End int
	Style      style.Style
	Children   []*Node
}

// Matcher is a single PEG primitive or combinator. Match either
// succeeds, consuming a (possibly empty) prefix of in and returning
// the styled source nodes produced while doing so, or fails, leaving
// in's position exactly as it found it.
type Matcher interface {
	Match(in *Input) ([]*Node, bool)
}

type matcherFunc func(in *Input) ([]*Node, bool)

func (f matcherFunc) Match(in *Input) ([]*Node, bool) {
	return f(in)
}

// Func adapts a plain function to Matcher, for primitives that need
// custom state beyond what Seq/Choice/Repeat compose — e.g. the
// C++ raw-string literal's delimiter capture (cpp.go), grounded on
// _examples/original_source/languages/cplusplus.hpp's
// CplusplusRawStringDelimiterStart/End classes.
func Func(f func(in *Input) ([]*Node, bool)) Matcher {
	return matcherFunc(f)
}
