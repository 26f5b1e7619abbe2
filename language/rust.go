package language

import (
	"github.com/eyelash/platon-core/grammar"
	"github.com/eyelash/platon-core/style"
)

// rustBlockComment is the nesting /* ... */ comment of
// _examples/original_source/languages/rust.hpp's RustBlockComment, a
// self-referential match(): Recursive closes over the variable after
// it has been declared, the same trick the source's `*this` plays.
var rustBlockComment grammar.Matcher

func init() {
	rustBlockComment = grammar.Recursive(func() grammar.Matcher {
		return grammar.Seq(
			grammar.Str("/*"),
			grammar.Repeat(grammar.Choice(rustBlockComment, grammar.But(grammar.Str("*/")))),
			grammar.Opt(grammar.Str("*/")),
		)
	})
}

var rustSyntax = grammar.Repeat(grammar.Choice(
	grammar.Highlight(style.COMMENT, grammar.Choice(
		// rustBlockComment is still nil here (it is assigned in init),
		// so it is looked up at match time.
		grammar.Recursive(func() grammar.Matcher { return rustBlockComment }),
		grammar.Seq(grammar.Str("//"), grammar.Repeat(grammar.But(grammar.Char('\n')))),
	)),
	grammar.Highlight(style.WORD, grammar.Highlight(style.LITERAL, cKeywords("false", "true"))),
	grammar.Highlight(style.WORD, grammar.Highlight(style.KEYWORD, cKeywords(
		"let", "mut", "if", "else", "while", "for", "in", "loop", "match", "break",
		"continue", "return", "fn", "struct", "enum", "trait", "type", "impl", "where",
		"pub", "use", "mod",
	))),
	grammar.Highlight(style.WORD, grammar.Highlight(style.TYPE, grammar.KeywordMatchers(cIdentifierChar,
		grammar.Str("bool"),
		grammar.Str("char"),
		grammar.Seq(grammar.Choice(grammar.Char('u'), grammar.Char('i')), grammar.Choice(
			grammar.Str("8"), grammar.Str("16"), grammar.Str("32"), grammar.Str("64"), grammar.Str("128"), grammar.Str("size"),
		)),
		grammar.Seq(grammar.Char('f'), grammar.Choice(grammar.Str("32"), grammar.Str("64"))),
		grammar.Str("str"),
	))),
	grammar.Highlight(style.WORD, cIdentifier),
	grammar.AnyChar(),
))

func init() {
	Register(&Entry{
		Name:       "Rust",
		Extensions: []string{".rs"},
		Grammar:    rustSyntax,
	})
}
