package language

import "github.com/eyelash/platon-core/grammar"

// Shared C-family primitives, grounded on
// _examples/original_source/languages/c.hpp. Reused by c.go, cpp.go,
// go.go, haskell.go, python.go and rust.go — every one of those
// grammars' keyword lists are sequence(t, not_(identifier_char)) over
// the same identifier-continuation class.
var (
	cIdentifierBeginChar = grammar.Choice(grammar.Range('a', 'z'), grammar.Range('A', 'Z'), grammar.Char('_'))
	cIdentifierChar      = grammar.Choice(grammar.Range('a', 'z'), grammar.Range('A', 'Z'), grammar.Char('_'), grammar.Range('0', '9'))
	cIdentifier          = grammar.Seq(cIdentifierBeginChar, grammar.Repeat(cIdentifierChar))
)

func cKeyword(s string) grammar.Matcher {
	return grammar.Keyword(grammar.Str(s), cIdentifierChar)
}

func cKeywords(words ...string) grammar.Matcher {
	return grammar.Keywords(cIdentifierChar, words...)
}

var cComment = grammar.Choice(
	grammar.Seq(grammar.Str("/*"), grammar.Repeat(grammar.But(grammar.Str("*/"))), grammar.Opt(grammar.Str("*/"))),
	grammar.Seq(grammar.Str("//"), grammar.Repeat(grammar.But(grammar.Char('\n')))),
)

var cEscape = grammar.Seq(grammar.Char('\\'), grammar.AnyChar())

var cString = grammar.Seq(
	grammar.Opt(grammar.Choice(grammar.Char('L'), grammar.Str("u8"), grammar.Char('u'), grammar.Char('U'))),
	grammar.Char('"'),
	grammar.Repeat(grammar.Choice(cEscape, grammar.But(grammar.Choice(grammar.Char('"'), grammar.Char('\n'))))),
	grammar.Opt(grammar.Char('"')),
)

var cCharacterLiteral = grammar.Seq(
	grammar.Opt(grammar.Choice(grammar.Char('L'), grammar.Str("u8"), grammar.Char('u'), grammar.Char('U'))),
	grammar.Char('\''),
	grammar.Repeat(grammar.Choice(cEscape, grammar.But(grammar.Choice(grammar.Char('\''), grammar.Char('\n'))))),
	grammar.Opt(grammar.Char('\'')),
)

var cDigits = grammar.Seq(grammar.Range('0', '9'), grammar.Repeat(grammar.Seq(grammar.Opt(grammar.Char('\'')), grammar.Range('0', '9'))))
var cHexDigits = grammar.Seq(grammar.HexDigit(), grammar.Repeat(grammar.Seq(grammar.Opt(grammar.Char('\'')), grammar.HexDigit())))
var cBinaryDigits = grammar.Seq(grammar.Range('0', '1'), grammar.Repeat(grammar.Seq(grammar.Opt(grammar.Char('\'')), grammar.Range('0', '1'))))

var cNumber = grammar.Seq(
	grammar.Choice(
		// hex
		grammar.Seq(
			grammar.Char('0'),
			grammar.Choice(grammar.Char('x'), grammar.Char('X')),
			grammar.Choice(
				grammar.Seq(cHexDigits, grammar.Opt(grammar.Char('.')), grammar.Opt(cHexDigits)),
				grammar.Seq(grammar.Char('.'), cHexDigits),
			),
			grammar.Opt(grammar.Seq(
				grammar.Choice(grammar.Char('p'), grammar.Char('P')),
				grammar.Opt(grammar.Choice(grammar.Char('+'), grammar.Char('-'))),
				cDigits,
			)),
		),
		// binary
		grammar.Seq(grammar.Char('0'), grammar.Choice(grammar.Char('b'), grammar.Char('B')), cBinaryDigits),
		// decimal or octal
		grammar.Seq(
			grammar.Choice(
				grammar.Seq(cDigits, grammar.Opt(grammar.Char('.')), grammar.Opt(cDigits)),
				grammar.Seq(grammar.Char('.'), cDigits),
			),
			grammar.Opt(grammar.Seq(
				grammar.Choice(grammar.Char('e'), grammar.Char('E')),
				grammar.Opt(grammar.Choice(grammar.Char('+'), grammar.Char('-'))),
				cDigits,
			)),
		),
	),
	grammar.Repeat(grammar.Choice(grammar.Char('u'), grammar.Char('U'), grammar.Char('l'), grammar.Char('L'), grammar.Char('f'), grammar.Char('F'))),
)

// Shared Java-family primitives, grounded on
// _examples/original_source/languages/java.hpp. Reused by java.go and
// javascript.go.
var (
	javaIdentifierBeginChar = grammar.Choice(grammar.Range('a', 'z'), grammar.Range('A', 'Z'), grammar.Char('$'), grammar.Char('_'))
	javaIdentifierChar      = grammar.Choice(grammar.Range('a', 'z'), grammar.Range('A', 'Z'), grammar.Char('$'), grammar.Char('_'), grammar.Range('0', '9'))
	javaIdentifier          = grammar.Seq(javaIdentifierBeginChar, grammar.Repeat(javaIdentifierChar))
)

func javaKeywords(words ...string) grammar.Matcher {
	return grammar.Keywords(javaIdentifierChar, words...)
}
