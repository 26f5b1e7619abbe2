package language

import (
	"github.com/eyelash/platon-core/grammar"
	"github.com/eyelash/platon-core/style"
)

var javaString = grammar.Choice(
	grammar.Seq(
		grammar.Str(`"""`),
		grammar.Repeat(grammar.Char(' ')),
		grammar.Char('\n'),
		grammar.Repeat(grammar.Choice(cEscape, grammar.But(grammar.Str(`"""`)))),
		grammar.Opt(grammar.Str(`"""`)),
	),
	grammar.Seq(
		grammar.Char('"'),
		grammar.Repeat(grammar.Choice(cEscape, grammar.But(grammar.Choice(grammar.Char('"'), grammar.Char('\n'))))),
		grammar.Opt(grammar.Char('"')),
	),
)

var javaCharacterLiteral = grammar.Seq(
	grammar.Char('\''),
	grammar.Repeat(grammar.Choice(cEscape, grammar.But(grammar.Choice(grammar.Char('\''), grammar.Char('\n'))))),
	grammar.Opt(grammar.Char('\'')),
)

var javaDigits = grammar.Seq(grammar.Range('0', '9'), grammar.Repeat(grammar.Seq(grammar.Repeat(grammar.Char('_')), grammar.Range('0', '9'))))
var javaHexDigits = grammar.Seq(grammar.HexDigit(), grammar.Repeat(grammar.Seq(grammar.Repeat(grammar.Char('_')), grammar.HexDigit())))
var javaBinaryDigits = grammar.Seq(grammar.Range('0', '1'), grammar.Repeat(grammar.Seq(grammar.Repeat(grammar.Char('_')), grammar.Range('0', '1'))))

var javaNumber = grammar.Seq(
	grammar.Choice(
		grammar.Seq(
			grammar.Char('0'),
			grammar.Choice(grammar.Char('x'), grammar.Char('X')),
			grammar.Choice(
				grammar.Seq(javaHexDigits, grammar.Opt(grammar.Char('.')), grammar.Opt(javaHexDigits)),
				grammar.Seq(grammar.Char('.'), javaHexDigits),
			),
			grammar.Opt(grammar.Seq(
				grammar.Choice(grammar.Char('p'), grammar.Char('P')),
				grammar.Opt(grammar.Choice(grammar.Char('+'), grammar.Char('-'))),
				javaDigits,
			)),
		),
		grammar.Seq(grammar.Char('0'), grammar.Choice(grammar.Char('b'), grammar.Char('B')), javaBinaryDigits),
		grammar.Seq(
			grammar.Choice(
				grammar.Seq(javaDigits, grammar.Opt(grammar.Char('.')), grammar.Opt(javaDigits)),
				grammar.Seq(grammar.Char('.'), javaDigits),
			),
			grammar.Opt(grammar.Seq(
				grammar.Choice(grammar.Char('e'), grammar.Char('E')),
				grammar.Opt(grammar.Choice(grammar.Char('+'), grammar.Char('-'))),
				javaDigits,
			)),
		),
	),
	grammar.Opt(grammar.Choice(grammar.Char('l'), grammar.Char('L'), grammar.Char('f'), grammar.Char('F'), grammar.Char('d'), grammar.Char('D'))),
)

var javaSyntax = grammar.Repeat(grammar.Choice(
	grammar.Highlight(style.COMMENT, cComment),
	grammar.Highlight(style.STRING, javaString),
	grammar.Highlight(style.STRING, javaCharacterLiteral),
	grammar.Highlight(style.LITERAL, javaNumber),
	grammar.Highlight(style.WORD, grammar.Highlight(style.LITERAL, javaKeywords("null", "false", "true"))),
	grammar.Highlight(style.WORD, grammar.Highlight(style.KEYWORD, javaKeywords(
		"this", "var", "if", "else", "for", "while", "do", "switch", "case", "default",
		"break", "continue", "try", "catch", "finally", "throw", "return", "new", "class",
		"record", "interface", "enum", "extends", "implements", "abstract", "final",
		"public", "protected", "private", "static", "throws", "import", "package",
	))),
	grammar.Highlight(style.WORD, grammar.Highlight(style.TYPE, javaKeywords(
		"void", "boolean", "char", "byte", "short", "int", "long", "float", "double",
	))),
	grammar.Highlight(style.WORD, javaIdentifier),
	grammar.AnyChar(),
))

func init() {
	Register(&Entry{
		Name:       "Java",
		Extensions: []string{".java"},
		Grammar:    javaSyntax,
	})
}
