package grammar

import "github.com/eyelash/platon-core/style"

// Seq matches each matcher in order; the whole sequence fails and
// rewinds if any child fails (peg.hpp's parse_sequence).
func Seq(ms ...Matcher) Matcher {
	return matcherFunc(func(in *Input) ([]*Node, bool) {
		start := in.Pos
		var children []*Node
		for _, m := range ms {
			nodes, ok := m.Match(in)
			if !ok {
				in.Pos = start
				return nil, false
			}
			children = append(children, nodes...)
		}
		return children, true
	})
}

// Choice tries each matcher in order and commits to the first success
// — there is no backtracking across a committed alternative
// (peg.hpp's parse_choice).
func Choice(ms ...Matcher) Matcher {
	return matcherFunc(func(in *Input) ([]*Node, bool) {
		start := in.Pos
		for _, m := range ms {
			nodes, ok := m.Match(in)
			if ok {
				return nodes, true
			}
			in.Pos = start
		}
		return nil, false
	})
}

// Opt matches m if possible; otherwise succeeds without consuming.
func Opt(m Matcher) Matcher {
	return matcherFunc(func(in *Input) ([]*Node, bool) {
		if nodes, ok := m.Match(in); ok {
			return nodes, true
		}
		return nil, true
	})
}

// Repeat matches m zero or more times, greedily. A child match that
// consumes nothing stops the loop after being counted once, guarding
// against an infinite loop on zero-width matches.
func Repeat(m Matcher) Matcher {
	return matcherFunc(func(in *Input) ([]*Node, bool) {
		var children []*Node
		for {
			before := in.Pos
			nodes, ok := m.Match(in)
			if !ok {
				break
			}
			children = append(children, nodes...)
			if in.Pos == before {
				break
			}
		}
		return children, true
	})
}

// OneOrMore matches m one or more times, greedily.
func OneOrMore(m Matcher) Matcher {
	return Seq(m, Repeat(m))
}

// Not is negative lookahead: succeeds without consuming iff m fails.
func Not(m Matcher) Matcher {
	return matcherFunc(func(in *Input) ([]*Node, bool) {
		start := in.Pos
		_, ok := m.Match(in)
		in.Pos = start
		if ok {
			return nil, false
		}
		return nil, true
	})
}

// But is the complement of m: consume one byte that m does not match.
func But(m Matcher) Matcher {
	return Seq(Not(m), AnyChar())
}

// Highlight wraps inner's match in a styled source node.
func Highlight(st style.Style, inner Matcher) Matcher {
	return matcherFunc(func(in *Input) ([]*Node, bool) {
		start := in.Pos
		children, ok := inner.Match(in)
		if !ok {
			return nil, false
		}
		return []*Node{{Start: start, End: in.Pos, Style: st, Children: children}}, true
	})
}

// Recursive defers construction of m until match time, so m can refer
// to a matcher that has not finished being built yet — the portable
// equivalent of the source's self-referential `class X { ... *this
// ... }` combinator (RustBlockComment, HaskellBlockComment).
func Recursive(factory func() Matcher) Matcher {
	return matcherFunc(func(in *Input) ([]*Node, bool) {
		return factory().Match(in)
	})
}

// Keyword matches literal, then fails the whole match if boundary
// would also match at the resulting position — i.e. the literal is not
// immediately followed by an identifier-continuation character
// (c_keyword / java_keyword).
func Keyword(literal Matcher, boundary Matcher) Matcher {
	return Seq(literal, Not(boundary))
}

// Keywords builds an ordered choice of Keyword(Str(w), boundary) for
// each w (c_keywords / java_keywords).
func Keywords(boundary Matcher, words ...string) Matcher {
	ms := make([]Matcher, len(words))
	for i, w := range words {
		ms[i] = Keyword(Str(w), boundary)
	}
	return Choice(ms...)
}

// KeywordMatchers generalises Keywords to arbitrary literal matchers —
// the source's c_keywords(T... arguments) accepts any matcher, not
// just bare string literals, e.g. Rust's integer-width type names
// built from sequence(choice('u','i'), choice("8","16",...)).
func KeywordMatchers(boundary Matcher, ms ...Matcher) Matcher {
	wrapped := make([]Matcher, len(ms))
	for i, m := range ms {
		wrapped[i] = Keyword(m, boundary)
	}
	return Choice(wrapped...)
}
