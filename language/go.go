package language

import (
	"github.com/eyelash/platon-core/grammar"
	"github.com/eyelash/platon-core/style"
)

// goSyntax is not present in original_source — the C++ editor this
// spec was distilled from predates the Go rewrite and never shipped a
// Go grammar of its own (_examples/original_source/languages has no
// go.hpp). It is written in the same idiom as c.go/rust.go: a
// comment/string/number/keyword/type/identifier repetition-of-choice,
// reusing this repository's own keyword set rather than the teacher's
// tree-sitter-backed grammars/go_lexer.go (which delegates to
// go/scanner and carries no literal keyword list to transcribe).
var goRawString = grammar.Seq(grammar.Char('`'), grammar.Repeat(grammar.But(grammar.Char('`'))), grammar.Opt(grammar.Char('`')))

var goString = grammar.Choice(
	goRawString,
	grammar.Seq(
		grammar.Char('"'),
		grammar.Repeat(grammar.Choice(cEscape, grammar.But(grammar.Choice(grammar.Char('"'), grammar.Char('\n'))))),
		grammar.Opt(grammar.Char('"')),
	),
)

var goRune = grammar.Seq(
	grammar.Char('\''),
	grammar.Repeat(grammar.Choice(cEscape, grammar.But(grammar.Choice(grammar.Char('\''), grammar.Char('\n'))))),
	grammar.Opt(grammar.Char('\'')),
)

var goNumber = grammar.Seq(
	grammar.Choice(
		grammar.Seq(grammar.Char('0'), grammar.Choice(grammar.Char('x'), grammar.Char('X')), grammar.OneOrMore(grammar.Choice(grammar.HexDigit(), grammar.Char('_')))),
		grammar.Seq(grammar.Char('0'), grammar.Choice(grammar.Char('b'), grammar.Char('B')), grammar.OneOrMore(grammar.Choice(grammar.Range('0', '1'), grammar.Char('_')))),
		grammar.Seq(grammar.Char('0'), grammar.Choice(grammar.Char('o'), grammar.Char('O')), grammar.OneOrMore(grammar.Choice(grammar.Range('0', '7'), grammar.Char('_')))),
		grammar.Seq(
			grammar.Choice(
				grammar.Seq(grammar.OneOrMore(grammar.Range('0', '9')), grammar.Opt(grammar.Char('.')), grammar.Repeat(grammar.Range('0', '9'))),
				grammar.Seq(grammar.Char('.'), grammar.OneOrMore(grammar.Range('0', '9'))),
			),
			grammar.Opt(grammar.Seq(
				grammar.Choice(grammar.Char('e'), grammar.Char('E')),
				grammar.Opt(grammar.Choice(grammar.Char('+'), grammar.Char('-'))),
				grammar.OneOrMore(grammar.Range('0', '9')),
			)),
		),
	),
	grammar.Opt(grammar.Char('i')),
)

var goSyntax = grammar.Repeat(grammar.Choice(
	grammar.Highlight(style.COMMENT, cComment),
	grammar.Highlight(style.WORD, grammar.Highlight(style.STRING, goString)),
	grammar.Highlight(style.WORD, grammar.Highlight(style.STRING, goRune)),
	grammar.Highlight(style.WORD, grammar.Highlight(style.LITERAL, goNumber)),
	grammar.Highlight(style.WORD, grammar.Highlight(style.LITERAL, cKeywords("true", "false", "nil", "iota"))),
	grammar.Highlight(style.WORD, grammar.Highlight(style.KEYWORD, cKeywords(
		"break", "case", "chan", "const", "continue", "default", "defer", "else",
		"fallthrough", "for", "func", "go", "goto", "if", "import", "interface",
		"map", "package", "range", "return", "select", "struct", "switch", "type", "var",
	))),
	grammar.Highlight(style.WORD, grammar.Highlight(style.TYPE, cKeywords(
		"bool", "byte", "complex64", "complex128", "error",
		"float32", "float64", "int", "int8", "int16", "int32", "int64",
		"rune", "string", "uint", "uint8", "uint16", "uint32", "uint64", "uintptr", "any",
	))),
	grammar.Highlight(style.WORD, cIdentifier),
	grammar.AnyChar(),
))

func init() {
	Register(&Entry{
		Name:       "Go",
		Extensions: []string{".go"},
		Grammar:    goSyntax,
	})
}
