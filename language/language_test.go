package language

import (
	"testing"

	"github.com/eyelash/platon-core/grammar"
	"github.com/eyelash/platon-core/style"
	"github.com/eyelash/platon-core/syntax"
)

func TestDetectCaseInsensitiveSuffix(t *testing.T) {
	e := Detect("main.GO")
	if e.Name != "Go" {
		t.Fatalf("Detect(main.GO) = %q, want Go", e.Name)
	}
}

func TestDetectUnknownExtensionIsNoOp(t *testing.T) {
	e := Detect("README")
	if e != NoOpLanguage {
		t.Fatalf("Detect(README) = %v, want NoOpLanguage", e.Name)
	}
	if e.Motion().NextWord(nil, 5) != 5 {
		t.Error("NoOpLanguage word motion should be identity")
	}
}

func TestGoGrammarHighlightsKeywordAndString(t *testing.T) {
	entry := Detect("main.go")
	in := grammar.NewInput([]byte(`func main() { s := "hi" }`))
	nodes, ok := entry.Grammar.Match(in)
	if !ok {
		t.Fatal("Go grammar failed to match")
	}
	spans := syntax.Flatten(nodes)

	var sawKeyword, sawString bool
	for _, sp := range spans {
		switch sp.Style {
		case style.KEYWORD:
			sawKeyword = true
		case style.STRING:
			sawString = true
		}
	}
	if !sawKeyword {
		t.Error(`expected a KEYWORD span for "func"`)
	}
	if !sawString {
		t.Error(`expected a STRING span for "hi"`)
	}
}

func TestCGrammarHighlightsComment(t *testing.T) {
	entry := Detect("main.c")
	in := grammar.NewInput([]byte("// hello\nint x;"))
	nodes, ok := entry.Grammar.Match(in)
	if !ok {
		t.Fatal("C grammar failed to match")
	}
	spans := syntax.Flatten(nodes)
	if len(spans) == 0 || spans[0].Style != style.COMMENT {
		t.Fatalf("spans = %v, want a leading COMMENT span", spans)
	}
}

func TestRustNestedBlockComment(t *testing.T) {
	entry := Detect("main.rs")
	in := grammar.NewInput([]byte("/* outer /* inner */ outer */ fn main() {}"))
	nodes, ok := entry.Grammar.Match(in)
	if !ok {
		t.Fatal("Rust grammar failed to match")
	}
	spans := syntax.Flatten(nodes)
	if len(spans) == 0 || spans[0].Style != style.COMMENT {
		t.Fatalf("spans = %v, want a leading COMMENT span", spans)
	}
	if spans[0].End != len("/* outer /* inner */ outer */") {
		t.Errorf("comment span end = %d, want %d", spans[0].End, len("/* outer /* inner */ outer */"))
	}
}

func TestXMLAttributeHighlighting(t *testing.T) {
	entry := Detect("page.html")
	in := grammar.NewInput([]byte(`<a href="x">`))
	nodes, ok := entry.Grammar.Match(in)
	if !ok {
		t.Fatal("XML grammar failed to match")
	}
	spans := syntax.Flatten(nodes)

	var sawLiteral bool
	for _, sp := range spans {
		if sp.Style == style.LITERAL {
			sawLiteral = true
		}
	}
	if !sawLiteral {
		t.Errorf("spans = %v, want a LITERAL span for the attribute value", spans)
	}
}
