// Package editor implements the orchestrator of spec §4.4: it owns a
// buffer, a selection collection, a language entry and a syntax cache,
// and exposes every editing/navigation/clipboard command as a method.
//
// Grounded directly on spec §4.3/§4.4's command contracts; auto-indent
// is grounded on the teacher's editor/indent.go (ComputeIndent's
// "copy leading whitespace, stop at the first non-blank" logic), and
// the overall owns-buffer/owns-selections/owns-cache shape is grounded
// on editor/multicursor.go's MultiCursor-holds-cursors-and-applies-
// edits-with-rebasing pattern, generalised from single-string text to
// the rope-backed buffer and selection packages built for this spec.
package editor

import (
	"strings"

	"github.com/eyelash/platon-core/buffer"
	"github.com/eyelash/platon-core/language"
	"github.com/eyelash/platon-core/selection"
	"github.com/eyelash/platon-core/syntax"
)

// Editor orchestrates one open document.
type Editor struct {
	buf   *buffer.TextBuffer
	sel   *selection.Selections
	lang  *language.Entry
	cache *syntax.Cache
	path  string
}

// New returns an editor over an empty buffer with no language.
func New() *Editor {
	return &Editor{
		buf:   buffer.New(),
		sel:   selection.New(),
		lang:  language.NoOpLanguage,
		cache: syntax.NewCache(),
	}
}

// Open reads path and returns an editor over its contents, choosing a
// language by extension.
func Open(path string) (*Editor, error) {
	buf, err := buffer.Open(path)
	if err != nil {
		return nil, err
	}
	return &Editor{
		buf:   buf,
		sel:   selection.New(),
		lang:  language.Detect(path),
		cache: syntax.NewCache(),
		path:  path,
	}, nil
}

// Save writes the buffer to path, or to the path it was opened/last
// saved from when path is empty.
func (e *Editor) Save(path string) error {
	if path == "" {
		path = e.path
	}
	if err := e.buf.Save(path); err != nil {
		return err
	}
	e.path = path
	return nil
}

// TotalLines returns the buffer's line count.
func (e *Editor) TotalLines() int {
	return e.buf.TotalLines()
}

// Index maps a (col, line) pair to a byte offset (spec §4.4
// "Column-to-index mapping"): col is a byte offset within the line,
// clamped to the line's terminating newline.
func (e *Editor) Index(col, line int) int {
	if line > e.buf.TotalLines()-1 {
		return e.buf.Size() - 1
	}
	start := e.buf.LineStart(line)
	end := e.buf.LineEnd(line)
	idx := start + col
	if idx > end {
		idx = end
	}
	return idx
}

// invalidateForSelections discards cached syntax state at or past the
// lowest offset any current selection could edit, conservatively safe
// for every command that follows with a buffer mutation.
func (e *Editor) invalidateForSelections() {
	min := e.buf.Size()
	for _, sel := range e.sel.All() {
		if m := sel.Min(); m < min {
			min = m
		}
	}
	e.cache.Invalidate(min)
}

// insertAtSelection deletes sel's non-empty range (if any) then
// inserts text at the resulting position, returning a bare cursor
// after the inserted text and the byte counts BatchEdit needs to
// rebase subsequent selections.
func (e *Editor) insertAtSelection(sel selection.Selection, text []byte) (selection.Selection, int, int) {
	deleted := 0
	if !sel.IsBare() {
		lo, hi := sel.Min(), sel.Max()
		e.buf.RemoveRange(lo, hi)
		deleted = hi - lo
	}
	pos := sel.Min()
	e.buf.InsertBytes(pos, text)
	return selection.Collapsed(pos + len(text)), len(text), deleted
}

// leadingWhitespace returns the run of spaces/tabs at the start of
// line, stopping at the first non-blank byte (spec §4.4's
// "insert_newline" auto-indent rule).
func (e *Editor) leadingWhitespace(line int) []byte {
	start := e.buf.LineStart(line)
	end := e.buf.LineEnd(line)
	var out []byte
	for i := start; i < end; i++ {
		c := e.buf.Byte(i)
		if c != ' ' && c != '\t' {
			break
		}
		out = append(out, c)
	}
	return out
}

// InsertText deletes any non-empty selection then inserts s, advancing
// head (spec §4.4 "insert_text").
func (e *Editor) InsertText(s string) {
	e.invalidateForSelections()
	data := []byte(s)
	e.sel.BatchEdit(false, func(sel selection.Selection) (selection.Selection, int, int) {
		return e.insertAtSelection(sel, data)
	})
}

// InsertNewline inserts a newline followed by the leading whitespace
// run of the line being split (spec §4.4 "insert_newline").
func (e *Editor) InsertNewline() {
	e.invalidateForSelections()
	e.sel.BatchEdit(false, func(sel selection.Selection) (selection.Selection, int, int) {
		indent := e.leadingWhitespace(e.buf.Line(sel.Min()))
		text := make([]byte, 0, 1+len(indent))
		text = append(text, '\n')
		text = append(text, indent...)
		return e.insertAtSelection(sel, text)
	})
}

// DeleteBackward extends a bare cursor's head to the previous
// codepoint and deletes the result (spec §4.4 "delete_backward").
func (e *Editor) DeleteBackward() {
	e.invalidateForSelections()
	e.sel.BatchEdit(true, func(sel selection.Selection) (selection.Selection, int, int) {
		if sel.IsBare() {
			sel = selection.Selection{Tail: sel.Head, Head: e.buf.PrevIndex(sel.Head)}
		}
		lo, hi := sel.Min(), sel.Max()
		e.buf.RemoveRange(lo, hi)
		return selection.Collapsed(lo), 0, hi - lo
	})
}

// DeleteForward extends a bare cursor's head to the next codepoint and
// deletes the result (spec §4.4 "delete_forward").
func (e *Editor) DeleteForward() {
	e.invalidateForSelections()
	e.sel.BatchEdit(false, func(sel selection.Selection) (selection.Selection, int, int) {
		if sel.IsBare() {
			sel = selection.Selection{Tail: sel.Head, Head: e.buf.NextIndex(sel.Head)}
		}
		lo, hi := sel.Min(), sel.Max()
		e.buf.RemoveRange(lo, hi)
		return selection.Collapsed(lo), 0, hi - lo
	})
}

// SetCursor replaces all selections with a single bare cursor at
// (col, line) (spec §4.4 "set_cursor").
func (e *Editor) SetCursor(col, line int) {
	e.sel.SetSingle(selection.Collapsed(e.Index(col, line)))
}

// ToggleCursor removes the selection containing (col, line), or
// inserts a new bare cursor there (spec §4.4 "toggle_cursor").
func (e *Editor) ToggleCursor(col, line int) {
	point := e.Index(col, line)
	if i, ok := e.sel.ContainsPoint(point); ok {
		// Selections is never empty (spec §3); removing the sole
		// surviving selection would violate that, so the last one
		// collapses to a bare cursor instead of vanishing.
		if e.sel.Count() == 1 {
			e.sel.Set(0, selection.Collapsed(point))
			return
		}
		e.sel.RemoveAt(i)
		return
	}
	e.sel.InsertSorted(selection.Collapsed(point))
}

// ExtendSelection moves only the last-active selection's head to
// (col, line), then collapses using the resulting selection's own
// direction (spec §4.4 "extend_selection").
func (e *Editor) ExtendSelection(col, line int) {
	target := e.Index(col, line)
	i := e.sel.LastActiveIndex()
	sel := e.sel.Get(i)
	sel.Head = target
	e.sel.Set(i, sel)
	e.sel.Collapse(sel.IsReversed())
}

func (e *Editor) moveHorizontal(extend bool, forward bool) {
	e.sel.ForEach(func(_ int, sel selection.Selection) selection.Selection {
		if !extend && !sel.IsBare() {
			if forward {
				return selection.Collapsed(sel.Max())
			}
			return selection.Collapsed(sel.Min())
		}
		var head int
		if forward {
			head = e.buf.NextIndex(sel.Head)
		} else {
			head = e.buf.PrevIndex(sel.Head)
		}
		tail := sel.Tail
		if !extend {
			tail = head
		}
		return selection.Selection{Tail: tail, Head: head}
	})
	e.sel.Collapse(!forward)
}

// MoveLeft moves (or shrinks) every selection one codepoint left.
func (e *Editor) MoveLeft(extend bool) { e.moveHorizontal(extend, false) }

// MoveRight moves (or shrinks) every selection one codepoint right.
func (e *Editor) MoveRight(extend bool) { e.moveHorizontal(extend, true) }

// column returns i's visual column in codepoints from its line start
// (spec §4.3 "Vertical movement").
func (e *Editor) column(i int) int {
	lineStart := e.buf.LineStart(e.buf.Line(i))
	return e.buf.CodepointsBefore(i) - e.buf.CodepointsBefore(lineStart)
}

func (e *Editor) verticalTarget(i int, deltaLine int) int {
	col := e.column(i)
	target := e.buf.Line(i) + deltaLine
	if target < 0 {
		target = 0
	}
	if last := e.buf.TotalLines() - 1; target > last {
		target = last
	}
	cpStart := e.buf.CodepointsBefore(e.buf.LineStart(target))
	cpEnd := e.buf.CodepointsBefore(e.buf.LineEnd(target))
	cp := cpStart + col
	if cp > cpEnd {
		cp = cpEnd
	}
	return e.buf.ByteOfCodepoint(cp)
}

func (e *Editor) moveVertical(extend bool, forward bool) {
	delta := -1
	if forward {
		delta = 1
	}
	e.sel.ForEach(func(_ int, sel selection.Selection) selection.Selection {
		if !extend && !sel.IsBare() {
			if forward {
				return selection.Collapsed(sel.Max())
			}
			return selection.Collapsed(sel.Min())
		}
		head := e.verticalTarget(sel.Head, delta)
		tail := sel.Tail
		if !extend {
			tail = head
		}
		return selection.Selection{Tail: tail, Head: head}
	})
	e.sel.Collapse(!forward)
}

// MoveUp moves (or shrinks) every selection one line up, preserving
// visual column.
func (e *Editor) MoveUp(extend bool) { e.moveVertical(extend, false) }

// MoveDown moves (or shrinks) every selection one line down,
// preserving visual column.
func (e *Editor) MoveDown(extend bool) { e.moveVertical(extend, true) }

// MoveToBeginningOfLine moves every selection's head to its line's
// start.
func (e *Editor) MoveToBeginningOfLine(extend bool) {
	e.sel.ForEach(func(_ int, sel selection.Selection) selection.Selection {
		head := e.buf.LineStart(e.buf.Line(sel.Head))
		tail := sel.Tail
		if !extend {
			tail = head
		}
		return selection.Selection{Tail: tail, Head: head}
	})
	e.sel.Collapse(true)
}

// MoveToEndOfLine moves every selection's head to its line's
// terminating newline.
func (e *Editor) MoveToEndOfLine(extend bool) {
	e.sel.ForEach(func(_ int, sel selection.Selection) selection.Selection {
		head := e.buf.LineEnd(e.buf.Line(sel.Head))
		tail := sel.Tail
		if !extend {
			tail = head
		}
		return selection.Selection{Tail: tail, Head: head}
	})
	e.sel.Collapse(false)
}

// MoveToBeginningOfWord defers to the language's previous-word motion.
func (e *Editor) MoveToBeginningOfWord(extend bool) {
	e.sel.ForEach(func(_ int, sel selection.Selection) selection.Selection {
		head := e.lang.Motion().PreviousWord(e.buf, sel.Head)
		tail := sel.Tail
		if !extend {
			tail = head
		}
		return selection.Selection{Tail: tail, Head: head}
	})
	e.sel.Collapse(true)
}

// MoveToEndOfWord defers to the language's next-word motion.
func (e *Editor) MoveToEndOfWord(extend bool) {
	e.sel.ForEach(func(_ int, sel selection.Selection) selection.Selection {
		head := e.lang.Motion().NextWord(e.buf, sel.Head)
		tail := sel.Tail
		if !extend {
			tail = head
		}
		return selection.Selection{Tail: tail, Head: head}
	})
	e.sel.Collapse(false)
}

// SelectAll replaces all selections with a single range spanning the
// whole buffer, excluding the final synthesised newline.
func (e *Editor) SelectAll() {
	e.sel.SetSingle(selection.Selection{Tail: 0, Head: e.buf.Size() - 1})
}

// Copy concatenates every selection's text, separated by "\n" (spec
// §4.4 "copy").
func (e *Editor) Copy() string {
	sels := e.sel.All()
	parts := make([]string, len(sels))
	for i, sel := range sels {
		parts[i] = string(e.buf.Bytes(sel.Min(), sel.Max()))
	}
	return strings.Join(parts, "\n")
}

// Cut samples Copy's result then deletes every selection (spec §4.4
// "cut").
func (e *Editor) Cut() string {
	text := e.Copy()
	e.invalidateForSelections()
	e.sel.BatchEdit(false, func(sel selection.Selection) (selection.Selection, int, int) {
		lo, hi := sel.Min(), sel.Max()
		e.buf.RemoveRange(lo, hi)
		return selection.Collapsed(lo), 0, hi - lo
	})
	return text
}

// Paste inserts text at every selection. When text splits into exactly
// selections.count() fragments on "\n", each fragment is inserted at
// its corresponding selection in order (line-aligned paste); otherwise
// the whole text is inserted at every selection (spec §4.4 "paste").
func (e *Editor) Paste(text string) {
	e.invalidateForSelections()
	fragments := strings.Split(text, "\n")
	if len(fragments) == e.sel.Count() {
		i := 0
		e.sel.BatchEdit(false, func(sel selection.Selection) (selection.Selection, int, int) {
			frag := []byte(fragments[i])
			i++
			return e.insertAtSelection(sel, frag)
		})
		return
	}
	data := []byte(text)
	e.sel.BatchEdit(false, func(sel selection.Selection) (selection.Selection, int, int) {
		return e.insertAtSelection(sel, data)
	})
}
