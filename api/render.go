package api

import (
	"github.com/eyelash/platon-core/editor"
	"github.com/eyelash/platon-core/theme"
)

// lineWire is one row of spec §6's "JSON render format", bit-stable
// down to field names and tuple shapes.
type lineWire struct {
	Text       string    `json:"text"`
	Number     int       `json:"number"`
	Spans      [][3]int  `json:"spans"`
	Selections [][2]int  `json:"selections"`
	Cursors    []int     `json:"cursors"`
}

func toWireLines(lines []editor.LineRecord) []lineWire {
	out := make([]lineWire, len(lines))
	for i, l := range lines {
		w := lineWire{
			Text:       l.Text,
			Number:     l.Number,
			Spans:      make([][3]int, len(l.Spans)),
			Selections: make([][2]int, len(l.Selections)),
			Cursors:    l.Cursors,
		}
		for j, s := range l.Spans {
			// style is an index into the theme's styles array after
			// subtracting the DEFAULT sentinel (spec §6).
			w.Spans[j] = [3]int{s.Start, s.End, int(s.Style) - 1}
		}
		for j, r := range l.Selections {
			w.Selections[j] = [2]int{r.Start, r.End}
		}
		out[i] = w
	}
	return out
}

// colorWire is spec §6's "[r,g,b,a] 0-255 integers" colour quadruple.
type colorWire [4]int

func toColorWire(c theme.ColorRGBA) colorWire {
	return colorWire{int(c.R), int(c.G), int(c.B), int(c.A)}
}

type styleWire struct {
	Color  colorWire `json:"color"`
	Bold   bool      `json:"bold"`
	Italic bool      `json:"italic"`
}

func toStyleWire(s theme.StyleAttrs) styleWire {
	return styleWire{Color: toColorWire(s.Color), Bold: s.Bold, Italic: s.Italic}
}

// themeWire mirrors spec §6's "JSON theme format" object exactly.
type themeWire struct {
	Background             colorWire   `json:"background"`
	BackgroundActive       colorWire   `json:"background_active"`
	Selection              colorWire   `json:"selection"`
	Cursor                 colorWire   `json:"cursor"`
	NumberBackground       colorWire   `json:"number_background"`
	NumberBackgroundActive colorWire   `json:"number_background_active"`
	Number                 styleWire   `json:"number"`
	NumberActive           styleWire   `json:"number_active"`
	Styles                 []styleWire `json:"styles"`
}

func toThemeWire(t *theme.Theme) themeWire {
	styles := make([]styleWire, len(t.Styles))
	for i, s := range t.Styles {
		styles[i] = toStyleWire(s)
	}
	return themeWire{
		Background:             toColorWire(t.Background),
		BackgroundActive:       toColorWire(t.BackgroundActive),
		Selection:              toColorWire(t.Selection),
		Cursor:                 toColorWire(t.Cursor),
		NumberBackground:       toColorWire(t.NumberBackground),
		NumberBackgroundActive: toColorWire(t.NumberBackgroundActive),
		Number:                 toStyleWire(t.Number),
		NumberActive:           toStyleWire(t.NumberActive),
		Styles:                 styles,
	}
}
