package editor

import "testing"

func TestNewIsEmptyWithBareCursor(t *testing.T) {
	e := New()
	if e.TotalLines() != 1 {
		t.Fatalf("TotalLines() = %d, want 1", e.TotalLines())
	}
	if got := e.Copy(); got != "" {
		t.Fatalf("Copy() = %q, want empty", got)
	}
}

func TestInsertTextAdvancesHead(t *testing.T) {
	e := New()
	e.InsertText("hello")
	if got := e.Render(0, 1)[0].Text; got != "hello\n" {
		t.Fatalf("line 0 = %q, want %q", got, "hello\n")
	}
}

func TestInsertTextReplacesSelection(t *testing.T) {
	e := New()
	e.InsertText("hello")
	e.SetCursor(0, 0)
	e.ExtendSelection(5, 0)
	e.InsertText("bye")
	if got := e.Render(0, 1)[0].Text; got != "bye\n" {
		t.Fatalf("line 0 = %q, want %q", got, "bye\n")
	}
}

func TestInsertNewlineCopiesIndent(t *testing.T) {
	e := New()
	e.InsertText("  foo")
	e.InsertNewline()
	e.InsertText("bar")
	lines := e.Render(0, 2)
	if lines[0].Text != "  foo\n" {
		t.Fatalf("line 0 = %q", lines[0].Text)
	}
	if lines[1].Text != "  bar\n" {
		t.Fatalf("line 1 = %q, want indent copied", lines[1].Text)
	}
}

func TestDeleteBackwardRemovesPrecedingCodepoint(t *testing.T) {
	e := New()
	e.InsertText("abc")
	e.DeleteBackward()
	if got := e.Render(0, 1)[0].Text; got != "ab\n" {
		t.Fatalf("line 0 = %q, want %q", got, "ab\n")
	}
}

func TestDeleteBackwardOnEmptySelectionAtStartIsNoOp(t *testing.T) {
	e := New()
	e.SetCursor(0, 0)
	e.DeleteBackward()
	if got := e.Render(0, 1)[0].Text; got != "\n" {
		t.Fatalf("line 0 = %q, want %q", got, "\n")
	}
}

func TestDeleteForwardRemovesFollowingCodepoint(t *testing.T) {
	e := New()
	e.InsertText("abc")
	e.SetCursor(0, 0)
	e.DeleteForward()
	if got := e.Render(0, 1)[0].Text; got != "bc\n" {
		t.Fatalf("line 0 = %q, want %q", got, "bc\n")
	}
}

func TestSetCursorClampsToLineEnd(t *testing.T) {
	e := New()
	e.InsertText("abc")
	e.SetCursor(100, 0)
	e.InsertText("X")
	if got := e.Render(0, 1)[0].Text; got != "abcX\n" {
		t.Fatalf("line 0 = %q, want %q", got, "abcX\n")
	}
}

func TestToggleCursorInsertsNewBareCursor(t *testing.T) {
	e := New()
	e.InsertText("abcdef")
	e.SetCursor(0, 0)
	e.ToggleCursor(3, 0)
	if e.sel.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", e.sel.Count())
	}
}

func TestToggleCursorOnSoleSelectionCollapsesInsteadOfEmptying(t *testing.T) {
	e := New()
	e.InsertText("abcdef")
	e.SetCursor(0, 0)
	e.ExtendSelection(4, 0)
	e.ToggleCursor(2, 0)
	if e.sel.Count() != 1 {
		t.Fatalf("Count() = %d, want 1 (Selections must never be empty)", e.sel.Count())
	}
	if got := e.sel.Get(0); !got.IsBare() || got.Head != 2 {
		t.Fatalf("Get(0) = %+v, want a bare cursor at 2", got)
	}
}

func TestToggleCursorRemovesOneOfSeveralSelections(t *testing.T) {
	e := New()
	e.InsertText("abcdef")
	e.SetCursor(0, 0)
	e.ExtendSelection(2, 0)
	e.ToggleCursor(4, 0)
	if e.sel.Count() != 2 {
		t.Fatalf("Count() = %d, want 2 before removal", e.sel.Count())
	}
	e.ToggleCursor(1, 0)
	if e.sel.Count() != 1 {
		t.Fatalf("Count() = %d, want 1 after removing the selection containing point 1", e.sel.Count())
	}
}

func TestSelectAllExcludesTrailingNewline(t *testing.T) {
	e := New()
	e.InsertText("abc")
	e.SelectAll()
	if got := e.Copy(); got != "abc" {
		t.Fatalf("Copy() = %q, want %q", got, "abc")
	}
}

func TestCopyDoesNotMutate(t *testing.T) {
	e := New()
	e.InsertText("abc")
	e.SelectAll()
	e.Copy()
	if got := e.Render(0, 1)[0].Text; got != "abc\n" {
		t.Fatalf("line 0 = %q, want unchanged %q", got, "abc\n")
	}
}

func TestCutDeletesSelection(t *testing.T) {
	e := New()
	e.InsertText("abc")
	e.SelectAll()
	cut := e.Cut()
	if cut != "abc" {
		t.Fatalf("Cut() = %q, want %q", cut, "abc")
	}
	if got := e.Render(0, 1)[0].Text; got != "\n" {
		t.Fatalf("line 0 = %q, want empty buffer", got)
	}
}

func TestPasteLineAlignedAcrossSelections(t *testing.T) {
	e := New()
	e.InsertText("\n\n")
	e.SetCursor(0, 0)
	e.ToggleCursor(0, 1)
	e.ToggleCursor(0, 2)
	e.Paste("a\nb\nc")
	lines := e.Render(0, 3)
	if lines[0].Text != "a\n" || lines[1].Text != "b\n" || lines[2].Text != "c\n" {
		t.Fatalf("lines = %q %q %q, want line-aligned paste", lines[0].Text, lines[1].Text, lines[2].Text)
	}
}

func TestPasteWholeTextWhenFragmentCountMismatches(t *testing.T) {
	e := New()
	e.InsertText("ab")
	e.SetCursor(2, 0)
	e.Paste("X\nY")
	lines := e.Render(0, 2)
	if lines[0].Text != "abX\n" || lines[1].Text != "Y\n" {
		t.Fatalf("lines = %q %q, want whole text inserted at the single selection", lines[0].Text, lines[1].Text)
	}
}

func TestMoveLeftCollapsesNonEmptySelectionToMin(t *testing.T) {
	e := New()
	e.InsertText("abcdef")
	e.SetCursor(0, 0)
	e.ExtendSelection(4, 0)
	e.MoveLeft(false)
	e.InsertText("X")
	if got := e.Render(0, 1)[0].Text; got != "Xabcdef\n" {
		t.Fatalf("line 0 = %q", got)
	}
}

func TestMoveUpDownPreservesColumn(t *testing.T) {
	e := New()
	e.InsertText("abcdef")
	e.InsertNewline()
	e.InsertText("xy")
	e.MoveUp(false)
	e.InsertText("Z")
	if got := e.Render(0, 1)[0].Text; got != "abZcdef\n" {
		t.Fatalf("line 0 = %q, want column preserved at 2", got)
	}
}

func TestIndexClampsPastTotalLinesToBufferEnd(t *testing.T) {
	e := New()
	e.InsertText("abc")
	if got, want := e.Index(0, 50), 3; got != want {
		t.Fatalf("Index(0, 50) = %d, want %d (buffer's last byte)", got, want)
	}
}
