package language

import (
	"github.com/eyelash/platon-core/grammar"
	"github.com/eyelash/platon-core/style"
)

var xmlComment = grammar.Seq(grammar.Str("<!--"), grammar.Repeat(grammar.But(grammar.Str("-->"))), grammar.Opt(grammar.Str("-->")))

var xmlWhiteSpace = grammar.Repeat(grammar.Choice(grammar.Char(' '), grammar.Char('\t'), grammar.Char('\n'), grammar.Char('\r')))
var xmlNameStartChar = grammar.Choice(grammar.Range('a', 'z'), grammar.Range('A', 'Z'), grammar.Char(':'), grammar.Char('_'))
var xmlNameChar = grammar.Choice(xmlNameStartChar, grammar.Char('-'), grammar.Char('.'), grammar.Range('0', '9'))
var xmlName = grammar.Seq(xmlNameStartChar, grammar.Repeat(xmlNameChar))

var xmlSyntax = grammar.Repeat(grammar.Choice(
	grammar.Highlight(style.COMMENT, xmlComment),
	grammar.Highlight(style.KEYWORD, grammar.Seq(
		grammar.Seq(grammar.Char('<'), xmlName),
		xmlWhiteSpace,
		grammar.Highlight(style.TYPE, grammar.Repeat(grammar.Seq(
			xmlName,
			xmlWhiteSpace,
			grammar.Char('='),
			xmlWhiteSpace,
			grammar.Highlight(style.LITERAL, grammar.Seq(grammar.Char('"'), grammar.Repeat(grammar.But(grammar.Char('"'))), grammar.Char('"'))),
			xmlWhiteSpace,
		))),
		grammar.Choice(grammar.Char('>'), grammar.Str("/>")),
	)),
	grammar.Highlight(style.KEYWORD, grammar.Seq(grammar.Str("</"), xmlName, xmlWhiteSpace, grammar.Char('>'))),
	grammar.AnyChar(),
))

func init() {
	Register(&Entry{
		Name:       "XML",
		Extensions: []string{".xml", ".html", ".htm", ".svg"},
		Grammar:    xmlSyntax,
	})
}
