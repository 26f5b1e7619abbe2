package language

import (
	"github.com/eyelash/platon-core/grammar"
	"github.com/eyelash/platon-core/style"
)

// cSyntax transcribes _examples/original_source/languages/c.hpp's
// c_syntax one-to-one: comments, then string/character/number
// literals (each wrapped in WORD before the inner STRING/LITERAL
// highlight — see style.WORD's doc comment), keyword and type lists,
// the sizeof operator, the run-of-punctuation operator matcher,
// identifiers, and the any_char fallback that guarantees the overall
// repetition never fails.
var cSyntax = grammar.Repeat(grammar.Choice(
	grammar.Highlight(style.COMMENT, cComment),
	grammar.Highlight(style.WORD, grammar.Highlight(style.STRING, cString)),
	grammar.Highlight(style.WORD, grammar.Highlight(style.STRING, cCharacterLiteral)),
	grammar.Highlight(style.WORD, grammar.Highlight(style.LITERAL, cNumber)),
	grammar.Highlight(style.WORD, grammar.Highlight(style.KEYWORD, cKeywords(
		"if", "else", "for", "while", "do", "switch", "case", "default",
		"goto", "break", "continue", "return", "struct", "enum", "union",
		"typedef", "const", "static", "extern", "inline",
	))),
	grammar.Highlight(style.WORD, grammar.Highlight(style.OPERATOR, cKeyword("sizeof"))),
	grammar.Highlight(style.WORD, grammar.Highlight(style.OPERATOR, grammar.OneOrMore(grammar.Choice(
		grammar.Char('+'), grammar.Char('-'), grammar.Char('*'), grammar.Char('/'), grammar.Char('%'),
		grammar.Char('='), grammar.Char('!'), grammar.Char('<'), grammar.Char('>'), grammar.Char('&'),
		grammar.Char('|'), grammar.Char('^'), grammar.Char('~'), grammar.Char('?'), grammar.Char(':'), grammar.Char('.'),
	)))),
	grammar.Highlight(style.WORD, grammar.Highlight(style.TYPE, cKeywords(
		"void", "char", "short", "int", "long", "float", "double", "unsigned", "signed",
	))),
	grammar.Highlight(style.WORD, cIdentifier),
	grammar.AnyChar(),
))

func init() {
	Register(&Entry{
		Name:       "C",
		Extensions: []string{".c", ".h"},
		Grammar:    cSyntax,
	})
}
