// Package theme implements the theme descriptor of spec §6 ("JSON
// theme format") and the three built-in themes of
// _examples/original_source/themes/*.hpp.
//
// The source expresses colours as literal Color::hsv/Color::hsl calls
// (with an occasional with_alpha overlay composited with +) evaluated
// at compile time. Spec §1 scopes "theme colour mathematics beyond the
// shape of the theme descriptor" out, so rather than port that
// constexpr math this package reproduces every literal call with
// github.com/lucasb-eyer/go-colorful's Hsv/Hsl constructors — the one
// real colour library present across the example pack.
package theme

import (
	"math"

	"github.com/eyelash/platon-core/style"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// ColorRGBA is an 8-bit-per-channel colour, matching spec §6's
// "[r,g,b,a] 0-255 integers" wire format.
type ColorRGBA struct {
	R, G, B, A uint8
}

// StyleAttrs is a themed style: colour plus weight/slant, matching
// spec §6's "{color:[r,g,b,a], bold:bool, italic:bool}" style object.
type StyleAttrs struct {
	Color  ColorRGBA
	Bold   bool
	Italic bool
}

// Theme mirrors spec §6's JSON theme format exactly.
type Theme struct {
	Background             ColorRGBA
	BackgroundActive       ColorRGBA
	Selection              ColorRGBA
	Cursor                 ColorRGBA
	NumberBackground       ColorRGBA
	NumberBackgroundActive ColorRGBA
	Number                 StyleAttrs
	NumberActive           StyleAttrs

	// Styles is indexed by style.Style minus the DEFAULT sentinel (so
	// Styles[style.WORD-1] is the "plain text" entry, through
	// Styles[style.FUNCTION-1]), always 8 long. default.hpp and
	// monokai.hpp only ever initialise the first 5 of the source's
	// theme array (text, comments, keywords, types, literals) — the
	// language they were written for had no operator/string/function
	// highlights yet. Default/Monokai below fill the remaining three
	// slots by reusing the nearest defined entry (operators from
	// keywords, strings and function names from literals) rather than
	// leaving them zero-valued, which would render as solid black.
	Styles []StyleAttrs
}

// StyleFor returns t's attributes for s, or the WORD/plain-text entry
// for style.DEFAULT (which never reaches this lookup in practice,
// since DEFAULT spans are elided by syntax.Flatten).
func (t *Theme) StyleFor(s style.Style) StyleAttrs {
	i := int(s) - 1
	if i < 0 || i >= len(t.Styles) {
		return t.Styles[0]
	}
	return t.Styles[i]
}

func round(f float64) uint8 {
	if f < 0 {
		f = 0
	}
	if f > 255 {
		f = 255
	}
	return uint8(math.Round(f))
}

func fromColorful(c colorful.Color) ColorRGBA {
	return ColorRGBA{R: round(c.R * 255), G: round(c.G * 255), B: round(c.B * 255), A: 255}
}

// hsv mirrors Color::hsv(h, s, v) — h in degrees, s and v as 0-100
// percentages.
func hsv(h, s, v float64) ColorRGBA {
	return fromColorful(colorful.Hsv(h, s/100, v/100))
}

// hsl mirrors Color::hsl(h, s, l) — h in degrees, s and l as 0-100
// percentages.
func hsl(h, s, l float64) ColorRGBA {
	return fromColorful(colorful.Hsl(h, s/100, l/100))
}

// withAlpha mirrors Color::with_alpha(a), a in 0-1.
func withAlpha(c ColorRGBA, a float64) ColorRGBA {
	c.A = round(a * 255)
	return c
}

// blend mirrors Color::operator+: alpha-composites overlay atop base.
func blend(base, overlay ColorRGBA) ColorRGBA {
	a := float64(overlay.A) / 255
	mix := func(b, o uint8) uint8 {
		return round(float64(o)*a + float64(b)*(1-a))
	}
	return ColorRGBA{R: mix(base.R, overlay.R), G: mix(base.G, overlay.G), B: mix(base.B, overlay.B), A: 255}
}

// Default reproduces original_source/themes/default.hpp.
func Default() *Theme {
	text := StyleAttrs{Color: hsv(0, 0, 20)}
	comments := StyleAttrs{Color: hsv(0, 0, 60), Italic: true}
	keywords := StyleAttrs{Color: hsv(270, 80, 80), Bold: true}
	types := StyleAttrs{Color: hsv(210, 80, 80), Bold: true}
	literals := StyleAttrs{Color: hsv(150, 80, 80)}
	return &Theme{
		Background:             hsv(0, 0, 100),
		BackgroundActive:       hsv(0, 0, 100),
		Selection:              hsv(60, 40, 100),
		Cursor:                 hsv(0, 0, 20),
		NumberBackground:       hsv(0, 0, 100),
		NumberBackgroundActive: hsv(0, 0, 100),
		Number:                 StyleAttrs{Color: hsv(0, 0, 60)},
		NumberActive:           StyleAttrs{Color: hsv(0, 0, 20)},
		Styles: []StyleAttrs{
			text,     // WORD
			comments, // COMMENT
			keywords, // KEYWORD
			keywords, // OPERATOR (unspecified in the source; reuses keywords)
			types,    // TYPE
			literals, // LITERAL
			literals, // STRING (unspecified in the source; reuses literals)
			literals, // FUNCTION (unspecified in the source; reuses literals)
		},
	}
}

// Monokai reproduces original_source/themes/monokai.hpp.
func Monokai() *Theme {
	text := StyleAttrs{Color: hsl(60, 30, 96)}
	comments := StyleAttrs{Color: hsl(50, 11, 41)}
	keywords := StyleAttrs{Color: hsl(338, 95, 56)}
	types := StyleAttrs{Color: hsl(190, 81, 67), Italic: true}
	literals := StyleAttrs{Color: hsl(54, 70, 68)}
	return &Theme{
		Background:             hsl(70, 8, 15),
		BackgroundActive:       hsl(70, 8, 15),
		Selection:              withAlpha(hsl(55, 8, 31), 0.7),
		Cursor:                 withAlpha(hsl(60, 36, 96), 0.9),
		NumberBackground:       hsl(70, 8, 15),
		NumberBackgroundActive: hsl(55, 11, 22),
		Number:                 StyleAttrs{Color: withAlpha(hsl(60, 30, 96), 0.5)},
		NumberActive:           StyleAttrs{Color: withAlpha(hsl(60, 30, 96), 0.8)},
		Styles: []StyleAttrs{
			text,
			comments,
			keywords,
			keywords,
			types,
			literals,
			literals,
			literals,
		},
	}
}

// OneDark reproduces original_source/themes/one_dark.hpp.
func OneDark() *Theme {
	background := hsl(220, 13, 18)
	return &Theme{
		Background:             background,
		BackgroundActive:       withAlpha(hsl(220, 100, 80), 0.04),
		Selection:              hsl(220, 13, 28),
		Cursor:                 hsl(220, 100, 66),
		NumberBackground:       hsl(220, 13, 18),
		NumberBackgroundActive: hsl(220, 13, 18),
		Number:                 StyleAttrs{Color: blend(background, withAlpha(hsl(220, 14, 45), 0.6))},
		NumberActive:           StyleAttrs{Color: blend(background, withAlpha(hsl(220, 14, 71), 0.6))},
		Styles: []StyleAttrs{
			{Color: hsl(220, 14, 71)},                // WORD (text)
			{Color: hsl(220, 10, 40), Italic: true},  // COMMENT
			{Color: hsl(286, 60, 67)},                // KEYWORD
			{Color: hsl(286, 60, 67)},                // OPERATOR
			{Color: hsl(187, 47, 55)},                // TYPE
			{Color: hsl(29, 54, 61)},                 // LITERAL
			{Color: hsl(95, 38, 62)},                 // STRING
			{Color: hsl(207, 82, 66)},                // FUNCTION
		},
	}
}
