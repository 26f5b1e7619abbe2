// Rendering surface of spec §4.6: per-line view records for a
// requested row range, translating buffer/selection/syntax state into
// line-local byte offsets ready for JSON emission at the boundary.
package editor

import (
	"github.com/eyelash/platon-core/selection"
	"github.com/eyelash/platon-core/style"
	"github.com/eyelash/platon-core/syntax"
)

// SpanView is one styled sub-range of a rendered line, in line-local
// byte offsets.
type SpanView struct {
	Start, End int
	Style      style.Style
}

// RangeView is one selection's intersection with a rendered line, in
// line-local byte offsets.
type RangeView struct {
	Start, End int
}

// LineRecord is spec §4.6's per-row render output.
type LineRecord struct {
	Text       string
	Number     int
	Spans      []SpanView
	Selections []RangeView
	Cursors    []int
}

// Render returns one LineRecord per row in [first, last). Rows at or
// past TotalLines produce an empty virtual line, per spec §4.6.
func (e *Editor) Render(first, last int) []LineRecord {
	data := e.buf.Bytes(0, e.buf.Size())
	spans := e.cache.Get(data, e.lang.Grammar, 0)
	sels := e.sel.All()

	out := make([]LineRecord, 0, last-first)
	for i := first; i < last; i++ {
		out = append(out, e.renderLine(i, data, spans, sels))
	}
	return out
}

func (e *Editor) renderLine(i int, data []byte, spans []syntax.Span, sels []selection.Selection) LineRecord {
	rec := LineRecord{Number: i + 1}
	if i >= e.buf.TotalLines() {
		return rec
	}

	start := e.buf.LineStart(i)
	end := e.buf.LineEnd(i) + 1 // line_end is the newline's own offset; include it in the text.
	if end > len(data) {
		end = len(data)
	}
	rec.Text = string(data[start:end])

	for _, sp := range spans {
		if sp.End <= start || sp.Start >= end {
			continue
		}
		lo, hi := sp.Start, sp.End
		if lo < start {
			lo = start
		}
		if hi > end {
			hi = end
		}
		rec.Spans = append(rec.Spans, SpanView{Start: lo - start, End: hi - start, Style: sp.Style})
	}

	for _, sel := range sels {
		lo, hi := sel.Min(), sel.Max()
		if hi > start && lo < end {
			clo, chi := lo, hi
			if clo < start {
				clo = start
			}
			if chi > end {
				chi = end
			}
			rec.Selections = append(rec.Selections, RangeView{Start: clo - start, End: chi - start})
		}
		if sel.Head >= start && sel.Head < end {
			rec.Cursors = append(rec.Cursors, sel.Head-start)
		}
	}

	return rec
}
