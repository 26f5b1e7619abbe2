package language

import (
	"github.com/eyelash/platon-core/grammar"
	"github.com/eyelash/platon-core/style"
)

var pythonComment = grammar.Seq(grammar.Char('#'), grammar.Repeat(grammar.But(grammar.Char('\n'))))

var pythonSyntax = grammar.Repeat(grammar.Choice(
	grammar.Highlight(style.COMMENT, pythonComment),
	grammar.Highlight(style.WORD, grammar.Highlight(style.KEYWORD, cKeywords(
		"lambda", "and", "or", "not", "if", "elif", "else", "for", "in",
		"while", "break", "continue", "return", "def", "class",
	))),
	grammar.AnyChar(),
))

func init() {
	Register(&Entry{
		Name:       "Python",
		Extensions: []string{".py"},
		Grammar:    pythonSyntax,
	})
}
