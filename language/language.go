// Package language implements the language registry of spec §4.5:
// filename-to-grammar mapping with a no-op fallback for unknown
// extensions.
//
// Grounded on the teacher's grammars/registry.go (LangEntry / Register
// / DetectLanguage shape), trimmed to what spec needs: no tree-sitter
// *Language, no TokenSourceFactory, no shebang detection — extension
// suffix match only, per spec §4.5.
package language

import (
	"strings"

	"github.com/eyelash/platon-core/grammar"
)

// QueryableBuffer is the slice of buffer.TextBuffer's surface that
// word motion needs.
type QueryableBuffer interface {
	Size() int
	Byte(i int) byte
}

// WordMotion defines a language's previous-/next-word navigation.
type WordMotion interface {
	PreviousWord(buf QueryableBuffer, i int) int
	NextWord(buf QueryableBuffer, i int) int
}

// NoOpWordMotion returns the input position unchanged. The source's
// get_next_word/get_previous_word are themselves identities in the
// active variant (spec §9 Design Notes "Word motion"); this repository
// carries that forward rather than fabricating Unicode word-break
// semantics for languages that never specified any.
type NoOpWordMotion struct{}

func (NoOpWordMotion) PreviousWord(_ QueryableBuffer, i int) int { return i }
func (NoOpWordMotion) NextWord(_ QueryableBuffer, i int) int     { return i }

// Entry is a registered language.
type Entry struct {
	Name       string
	Extensions []string
	Grammar    grammar.Matcher
	WordMotion WordMotion // nil reads as NoOpWordMotion
}

// Motion returns e's word motion, defaulting to NoOpWordMotion.
func (e *Entry) Motion() WordMotion {
	if e.WordMotion == nil {
		return NoOpWordMotion{}
	}
	return e.WordMotion
}

// NoOpLanguage is returned by Detect for unrecognised extensions: zero
// spans (AnyChar produces no highlight), identity word motion.
var NoOpLanguage = &Entry{
	Name:    "plain text",
	Grammar: grammar.Repeat(grammar.AnyChar()),
}

var registry []*Entry

// Register adds a language to the registry.
func Register(e *Entry) {
	registry = append(registry, e)
}

// Detect returns the Entry whose Extensions contains a case-insensitive
// suffix of filename, or NoOpLanguage if none matches.
func Detect(filename string) *Entry {
	lower := strings.ToLower(filename)
	for _, e := range registry {
		for _, ext := range e.Extensions {
			if strings.HasSuffix(lower, strings.ToLower(ext)) {
				return e
			}
		}
	}
	return NoOpLanguage
}

// All returns every registered language, for diagnostics.
func All() []*Entry {
	return registry
}
