package grammar

import (
	"testing"

	"github.com/eyelash/platon-core/style"
)

// matchAll runs m against s and reports whether it succeeds and
// consumes the entire input, mirroring peg.hpp's assert_peg helper
// (which additionally asserts *g == '\0', i.e. the whole grammar was
// consumed — not applicable here since our grammars are Go values,
// not a textual grammar DSL).
func matchAll(m Matcher, s string) bool {
	in := NewInput([]byte(s))
	_, ok := m.Match(in)
	return ok && in.AtEnd()
}

func TestLiteralChar(t *testing.T) {
	if !matchAll(Char('a'), "a") {
		t.Error(`Char('a') should match "a"`)
	}
	if matchAll(Char('a'), "b") {
		t.Error(`Char('a') should not match "b"`)
	}
}

func TestChoiceInsideSeq(t *testing.T) {
	m := Seq(Char('('), Choice(Char('a'), Char('b')), Char(')'))
	if !matchAll(m, "(a)") {
		t.Error(`Seq should match "(a)"`)
	}
}

func TestRepeatZeroOrMore(t *testing.T) {
	m := Repeat(Char('a'))
	if !matchAll(m, "") {
		t.Error("Repeat should match empty input")
	}
	if !matchAll(m, "aa") {
		t.Error(`Repeat should match "aa"`)
	}
}

func TestSeqLiteral(t *testing.T) {
	if !matchAll(Seq(Char('a'), Char('b'), Char('c')), "abc") {
		t.Error(`Seq should match "abc"`)
	}
	if matchAll(Seq(Char('a'), Char('b'), Char('c')), "adc") {
		t.Error(`Seq should not match "adc"`)
	}
}

func TestChoiceCommitsToFirstSuccess(t *testing.T) {
	m := Choice(Char('a'), Char('b'), Char('c'))
	if !matchAll(m, "b") {
		t.Error(`Choice should match "b"`)
	}
	if matchAll(m, "d") {
		t.Error(`Choice should not match "d"`)
	}

	// The first alternative "a" succeeds on "ab", so Choice commits to it
	// and never tries "ab"; one byte is left unconsumed.
	if matchAll(Choice(Str("a"), Str("ab")), "ab") {
		t.Error(`Choice("a", "ab") should commit to "a" and not consume all of "ab"`)
	}
}

func TestGroupedRepetitionAndChoice(t *testing.T) {
	abc := Seq(Char('a'), Char('b'), Char('c'))
	if !matchAll(Repeat(abc), "abcabc") {
		t.Error(`Repeat(abc) should match "abcabc"`)
	}

	choice := Choice(Char('a'), Char('b'), Char('c'))
	if !matchAll(Repeat(choice), "bb") {
		t.Error(`Repeat(choice) should match "bb"`)
	}
}

func TestOptAndBut(t *testing.T) {
	m := Seq(Str("/*"), Repeat(But(Str("*/"))), Opt(Str("*/")))
	if !matchAll(m, "/* hi */") {
		t.Error(`block comment matcher should match "/* hi */"`)
	}
	if !matchAll(m, "/* unterminated") {
		t.Error("block comment matcher should tolerate an unterminated comment")
	}
}

func TestNotLookaheadDoesNotConsume(t *testing.T) {
	in := NewInput([]byte("a"))
	_, ok := Not(Char('b')).Match(in)
	if !ok {
		t.Fatal("Not(Char('b')) should succeed when 'b' doesn't match")
	}
	if in.Pos != 0 {
		t.Errorf("Not should not consume input, Pos = %d", in.Pos)
	}
}

func TestKeywordRejectsLongerIdentifier(t *testing.T) {
	boundary := Range('a', 'z')
	m := Keyword(Str("if"), boundary)
	if !matchAll(m, "if") {
		t.Error(`Keyword("if") should match "if"`)
	}
	if matchAll(m, "iffy") {
		t.Error(`Keyword("if") should not match inside "iffy"`)
	}
}

func TestHighlightWrapsMatchedRange(t *testing.T) {
	m := Highlight(style.KEYWORD, Str("if"))
	in := NewInput([]byte("if"))
	nodes, ok := m.Match(in)
	if !ok || len(nodes) != 1 {
		t.Fatalf("Highlight match = %v,%v, want one node", nodes, ok)
	}
	n := nodes[0]
	if n.Start != 0 || n.End != 2 || n.Style != style.KEYWORD {
		t.Errorf("node = %+v, want Start=0 End=2 Style=KEYWORD", n)
	}
}

func TestRecursiveSelfReference(t *testing.T) {
	var blockComment Matcher
	blockComment = Recursive(func() Matcher {
		return Seq(
			Str("/*"),
			Repeat(Choice(blockComment, But(Str("*/")))),
			Opt(Str("*/")),
		)
	})

	if !matchAll(blockComment, "/* outer /* inner */ still outer */") {
		t.Error("recursive block comment matcher should handle nesting")
	}
}

func TestHighlightNestingProducesNestedChildren(t *testing.T) {
	m := Highlight(style.WORD, Highlight(style.KEYWORD, Str("if")))
	in := NewInput([]byte("if"))
	nodes, ok := m.Match(in)
	if !ok || len(nodes) != 1 {
		t.Fatalf("match = %v,%v", nodes, ok)
	}
	outer := nodes[0]
	if outer.Style != style.WORD || len(outer.Children) != 1 {
		t.Fatalf("outer = %+v, want Style=WORD with one child", outer)
	}
	if outer.Children[0].Style != style.KEYWORD {
		t.Errorf("inner style = %v, want KEYWORD", outer.Children[0].Style)
	}
}
