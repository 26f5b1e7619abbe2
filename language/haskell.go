package language

import (
	"github.com/eyelash/platon-core/grammar"
	"github.com/eyelash/platon-core/style"
)

var haskellIdentifierChar = grammar.Choice(grammar.Range('a', 'z'), grammar.Char('_'), grammar.Range('A', 'Z'), grammar.Range('0', '9'), grammar.Char('\''))

// haskellBlockComment is the nesting {- ... -} comment of
// _examples/original_source/languages/haskell.hpp's
// HaskellBlockComment, structured exactly like rustBlockComment.
var haskellBlockComment grammar.Matcher

func init() {
	haskellBlockComment = grammar.Recursive(func() grammar.Matcher {
		return grammar.Seq(
			grammar.Str("{-"),
			grammar.Repeat(grammar.Choice(haskellBlockComment, grammar.But(grammar.Str("-}")))),
			grammar.Opt(grammar.Str("-}")),
		)
	})
}

var haskellSyntax = grammar.Repeat(grammar.Choice(
	grammar.Highlight(style.COMMENT, grammar.Choice(
		// haskellBlockComment is still nil here (it is assigned in
		// init), so it is looked up at match time.
		grammar.Recursive(func() grammar.Matcher { return haskellBlockComment }),
		grammar.Seq(grammar.Str("--"), grammar.Repeat(grammar.But(grammar.Char('\n')))),
	)),
	grammar.Highlight(style.KEYWORD, cKeywords(
		"if", "then", "else", "let", "in", "where", "case", "of", "do", "type",
		"newtype", "data", "class", "instance", "module", "import",
	)),
	grammar.Highlight(style.TYPE, grammar.Seq(grammar.Range('A', 'Z'), grammar.Repeat(haskellIdentifierChar))),
	grammar.Seq(grammar.Choice(grammar.Range('a', 'z'), grammar.Char('_')), grammar.Repeat(haskellIdentifierChar)),
	grammar.AnyChar(),
))

func init() {
	Register(&Entry{
		Name:       "Haskell",
		Extensions: []string{".hs", ".lhs"},
		Grammar:    haskellSyntax,
	})
}
