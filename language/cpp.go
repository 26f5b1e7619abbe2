package language

import (
	"github.com/eyelash/platon-core/grammar"
	"github.com/eyelash/platon-core/style"
)

// cplusplusRawString reimplements
// _examples/original_source/languages/cplusplus.hpp's
// CplusplusRawStringDelimiterStart/End pair: R"delim(...)delim" where
// delim is an arbitrary (possibly empty) run of delimiter characters
// captured while matching the opening tag and replayed literally to
// find the closing tag. grammar.Seq/Choice can't express "remember
// what you just matched", so this is a hand-written grammar.Func
// instead of a composition of the other primitives.
func cplusplusRawString() grammar.Matcher {
	prefix := grammar.Opt(grammar.Choice(grammar.Char('L'), grammar.Str("u8"), grammar.Char('u'), grammar.Char('U')))
	open := grammar.Str(`R"`)
	return grammar.Func(func(in *grammar.Input) ([]*grammar.Node, bool) {
		start := in.Pos
		if _, ok := prefix.Match(in); !ok {
			in.Pos = start
			return nil, false
		}
		if _, ok := open.Match(in); !ok {
			in.Pos = start
			return nil, false
		}

		var delimiter []byte
		for !in.AtEnd() && isCplusplusRawStringDelimiterChar(in.Byte()) {
			delimiter = append(delimiter, in.Byte())
			in.Pos++
		}
		if _, ok := grammar.Char('(').Match(in); !ok {
			in.Pos = start
			return nil, false
		}

		closer := ")" + string(delimiter) + `"`
		body := grammar.Seq(grammar.Repeat(grammar.But(grammar.Str(closer))), grammar.Opt(grammar.Str(closer)))
		if _, ok := body.Match(in); !ok {
			in.Pos = start
			return nil, false
		}
		return nil, true
	})
}

func isCplusplusRawStringDelimiterChar(c byte) bool {
	return c >= 0x21 && c <= 0x7E && c != '(' && c != '\\'
}

// cplusplusSyntax transcribes cplusplus.hpp's cplusplus_syntax.
var cplusplusSyntax = grammar.Repeat(grammar.Choice(
	grammar.Highlight(style.COMMENT, cComment),
	grammar.Highlight(style.WORD, grammar.Highlight(style.STRING, cplusplusRawString())),
	grammar.Highlight(style.WORD, grammar.Highlight(style.STRING, cString)),
	grammar.Highlight(style.WORD, grammar.Highlight(style.STRING, cCharacterLiteral)),
	grammar.Highlight(style.WORD, grammar.Highlight(style.LITERAL, cNumber)),
	grammar.Highlight(style.WORD, grammar.Highlight(style.LITERAL, cKeywords("nullptr", "false", "true"))),
	grammar.Highlight(style.WORD, grammar.Highlight(style.KEYWORD, cKeywords(
		"this", "auto", "constexpr", "consteval", "if", "else", "for", "while", "do",
		"switch", "case", "default", "goto", "break", "continue", "try", "catch", "throw",
		"return", "class", "struct", "enum", "union", "final", "public", "protected",
		"private", "static", "virtual", "override", "noexcept", "explicit", "friend",
		"mutable", "operator", "template", "typename", "namespace", "using", "typedef",
		"const", "module", "import", "export",
	))),
	grammar.Highlight(style.WORD, grammar.Highlight(style.OPERATOR, cKeywords(
		"new", "delete", "sizeof", "alignof", "static_cast", "reinterpret_cast", "dynamic_cast", "const_cast",
	))),
	grammar.Highlight(style.WORD, grammar.Highlight(style.TYPE, cKeywords(
		"void", "bool", "char", "short", "int", "long", "float", "double", "unsigned", "signed",
	))),
	grammar.Highlight(style.WORD, cIdentifier),
	grammar.AnyChar(),
))

func init() {
	Register(&Entry{
		Name:       "C++",
		Extensions: []string{".cpp", ".cc", ".cxx", ".hpp", ".hh"},
		Grammar:    cplusplusSyntax,
	})
}
