package grammar

import "unicode"

// Char matches a single literal byte.
func Char(c byte) Matcher {
	return CharFunc(func(b byte) bool { return b == c })
}

// CharFunc matches a single byte satisfying pred.
func CharFunc(pred func(byte) bool) Matcher {
	return matcherFunc(func(in *Input) ([]*Node, bool) {
		if in.AtEnd() || !pred(in.Byte()) {
			return nil, false
		}
		in.Pos++
		return nil, true
	})
}

// Range matches a single byte in [lo, hi].
func Range(lo, hi byte) Matcher {
	return CharFunc(func(c byte) bool { return c >= lo && c <= hi })
}

// AnyChar matches any single byte.
func AnyChar() Matcher {
	return matcherFunc(func(in *Input) ([]*Node, bool) {
		if in.AtEnd() {
			return nil, false
		}
		in.Pos++
		return nil, true
	})
}

// Str matches a literal byte string, case-sensitively.
func Str(s string) Matcher {
	return matcherFunc(func(in *Input) ([]*Node, bool) {
		start := in.Pos
		for i := 0; i < len(s); i++ {
			if in.AtEnd() || in.Byte() != s[i] {
				in.Pos = start
				return nil, false
			}
			in.Pos++
		}
		return nil, true
	})
}

// StrCI matches a literal byte string, ignoring ASCII case.
func StrCI(s string) Matcher {
	return matcherFunc(func(in *Input) ([]*Node, bool) {
		start := in.Pos
		for i := 0; i < len(s); i++ {
			if in.AtEnd() || toLowerASCII(in.Byte()) != toLowerASCII(s[i]) {
				in.Pos = start
				return nil, false
			}
			in.Pos++
		}
		return nil, true
	})
}

func toLowerASCII(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c - 'A' + 'a'
	}
	return c
}

// HexDigit matches a single hexadecimal digit.
func HexDigit() Matcher {
	return CharFunc(func(c byte) bool {
		return unicode.Is(unicode.ASCII_Hex_Digit, rune(c))
	})
}
