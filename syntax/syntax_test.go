package syntax

import (
	"testing"

	"github.com/eyelash/platon-core/grammar"
	"github.com/eyelash/platon-core/style"
)

func ifKeywordGrammar() grammar.Matcher {
	boundary := grammar.Range('a', 'z')
	return grammar.Repeat(grammar.Choice(
		grammar.Highlight(style.WORD, grammar.Highlight(style.KEYWORD, grammar.Keyword(grammar.Str("if"), boundary))),
		grammar.Highlight(style.WORD, grammar.OneOrMore(boundary)),
		grammar.AnyChar(),
	))
}

func TestFlattenMergesAdjacentEqualStyleSpans(t *testing.T) {
	in := grammar.NewInput([]byte("if"))
	nodes, ok := ifKeywordGrammar().Match(in)
	if !ok {
		t.Fatal("grammar failed to match")
	}
	spans := Flatten(nodes)
	if len(spans) != 1 {
		t.Fatalf("Flatten() = %v, want a single merged span", spans)
	}
	if spans[0].Start != 0 || spans[0].End != 2 || spans[0].Style != style.KEYWORD {
		t.Errorf("span = %+v, want {0 2 KEYWORD}", spans[0])
	}

	adjacent := Flatten([]*grammar.Node{
		{Start: 0, End: 2, Style: style.KEYWORD},
		{Start: 2, End: 4, Style: style.KEYWORD},
	})
	if len(adjacent) != 1 || adjacent[0] != (Span{Start: 0, End: 4, Style: style.KEYWORD}) {
		t.Errorf("Flatten(adjacent KEYWORD nodes) = %v, want [{0 4 KEYWORD}]", adjacent)
	}
}

func TestFlattenElidesUnhighlightedGaps(t *testing.T) {
	in := grammar.NewInput([]byte("if x"))
	nodes, ok := ifKeywordGrammar().Match(in)
	if !ok {
		t.Fatal("grammar failed to match")
	}
	spans := Flatten(nodes)
	// "if" -> KEYWORD, " " -> elided (any_char, no highlight), "x" -> WORD.
	if len(spans) != 2 {
		t.Fatalf("Flatten() = %v, want 2 spans", spans)
	}
	if spans[1].Start != 3 || spans[1].End != 4 || spans[1].Style != style.WORD {
		t.Errorf("spans[1] = %+v, want {3 4 WORD}", spans[1])
	}
}

func TestCacheInvalidateBelowHighWaterMark(t *testing.T) {
	c := NewCache()
	g := ifKeywordGrammar()
	buf := []byte("if x")

	first := c.Get(buf, g, 0)
	if len(first) == 0 {
		t.Fatal("expected spans from first parse")
	}

	c.Invalidate(1)
	if c.valid {
		t.Error("Invalidate at offset below high-water-mark should discard the cache")
	}

	second := c.Get(buf, g, 0)
	if len(second) != len(first) {
		t.Errorf("reparse produced %d spans, want %d", len(second), len(first))
	}
}

func TestCacheInvalidateAboveHighWaterMarkIsNoOp(t *testing.T) {
	c := NewCache()
	g := ifKeywordGrammar()
	buf := []byte("if")

	c.Get(buf, g, 0)
	hwm := c.highWaterMark

	c.Invalidate(hwm + 100)
	if !c.valid {
		t.Error("Invalidate beyond the high-water-mark should not discard the cache")
	}
}

func TestCacheDisableAboveThreshold(t *testing.T) {
	c := NewCache()
	c.DisableAbove(1)
	g := ifKeywordGrammar()

	spans := c.Get([]byte("if"), g, 0)
	if spans != nil {
		t.Errorf("Get() over the threshold = %v, want nil", spans)
	}
}
