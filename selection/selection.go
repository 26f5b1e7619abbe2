// Package selection implements the selection model of spec §4.3: a
// directed (tail, head) range and an ordered, non-overlapping
// collection of them with collapse and batch-edit rebasing.
//
// The collection is backed by github.com/bahlo/generic-list-go's
// doubly linked list rather than a slice: Collapse and BatchEdit both
// walk the collection once, splicing out merged neighbours in place —
// the list gives O(1) removal mid-walk where a slice would need an
// O(n) shift per merge.
package selection

import (
	list "github.com/bahlo/generic-list-go"
)

// Selection is a directed byte range. Head is the caret; Tail is the
// anchor. Head == Tail is a bare cursor.
type Selection struct {
	Tail, Head int
}

// IsReversed reports whether the selection runs from a higher offset
// to a lower one.
func (s Selection) IsReversed() bool {
	return s.Tail > s.Head
}

// IsBare reports whether the selection is a caret with no range.
func (s Selection) IsBare() bool {
	return s.Tail == s.Head
}

// Min returns the lower of Tail and Head.
func (s Selection) Min() int {
	if s.Tail < s.Head {
		return s.Tail
	}
	return s.Head
}

// Max returns the higher of Tail and Head.
func (s Selection) Max() int {
	if s.Tail > s.Head {
		return s.Tail
	}
	return s.Head
}

// Shift translates both endpoints by n.
func (s Selection) Shift(n int) Selection {
	return Selection{Tail: s.Tail + n, Head: s.Head + n}
}

// Collapsed returns a bare cursor at offset.
func Collapsed(offset int) Selection {
	return Selection{Tail: offset, Head: offset}
}

// Selections is an ordered, non-empty collection of Selection, sorted
// by Min and pairwise non-overlapping once Collapse has run. It tracks
// the last-active index: the selection most recently created or
// modified.
type Selections struct {
	list       *list.List[Selection]
	lastActive int
}

// New returns a collection holding a single bare cursor at 0.
func New() *Selections {
	l := list.New[Selection]()
	l.PushBack(Selection{})
	return &Selections{list: l, lastActive: 0}
}

// Count returns the number of selections.
func (s *Selections) Count() int {
	return s.list.Len()
}

// All returns the selections in order.
func (s *Selections) All() []Selection {
	out := make([]Selection, 0, s.list.Len())
	for e := s.list.Front(); e != nil; e = e.Next() {
		out = append(out, e.Value)
	}
	return out
}

// Get returns the selection at index i.
func (s *Selections) Get(i int) Selection {
	return s.elementAt(i).Value
}

// Set overwrites the selection at index i.
func (s *Selections) Set(i int, sel Selection) {
	s.elementAt(i).Value = sel
	s.lastActive = i
}

// LastActive returns the last-active selection.
func (s *Selections) LastActive() Selection {
	return s.Get(s.lastActive)
}

// LastActiveIndex returns the last-active index.
func (s *Selections) LastActiveIndex() int {
	return s.lastActive
}

// SetSingle replaces the entire collection with a single selection.
func (s *Selections) SetSingle(sel Selection) {
	s.list.Init()
	s.list.PushBack(sel)
	s.lastActive = 0
}

// InsertSorted inserts sel in Min order and marks it last-active,
// returning its resulting index. Ties (equal Min) insert after
// existing entries.
func (s *Selections) InsertSorted(sel Selection) int {
	pos := 0
	for e := s.list.Front(); e != nil; e = e.Next() {
		if e.Value.Min() > sel.Min() {
			s.list.InsertBefore(sel, e)
			s.lastActive = pos
			return pos
		}
		pos++
	}
	s.list.PushBack(sel)
	s.lastActive = pos
	return pos
}

// RemoveAt removes the selection at index i, rebasing the last-active
// index the way Collapse does.
func (s *Selections) RemoveAt(i int) {
	s.list.Remove(s.elementAt(i))
	s.rebaseLastActiveAfterRemoval(i)
}

// ContainsPoint returns the index of the selection whose [Min,Max)
// range contains x, used by toggle_cursor.
func (s *Selections) ContainsPoint(x int) (int, bool) {
	i := 0
	for e := s.list.Front(); e != nil; e = e.Next() {
		if x >= e.Value.Min() && x < e.Value.Max() {
			return i, true
		}
		i++
	}
	return -1, false
}

// ForEach replaces every selection's value with the result of fn,
// called with each selection's index and current value, in order.
func (s *Selections) ForEach(fn func(i int, sel Selection) Selection) {
	i := 0
	for e := s.list.Front(); e != nil; e = e.Next() {
		e.Value = fn(i, e.Value)
		i++
	}
}

// Collapse scans adjacent pairs in order, merging selections whose
// ranges touch or overlap, or that share the same head (duplicate
// carets). reverseDirection picks which of the merged pair's extremes
// becomes the new tail vs. head, preserving the direction of the most
// recent movement (spec §4.3).
func (s *Selections) Collapse(reverseDirection bool) {
	pos := 0
	for e := s.list.Front(); e != nil; {
		next := e.Next()
		if next == nil {
			break
		}
		a, b := e.Value.Min(), e.Value.Max()
		c, d := next.Value.Min(), next.Value.Max()
		sameHead := e.Value.Head == next.Value.Head
		if b >= c || sameHead {
			lo, hi := a, b
			if c < lo {
				lo = c
			}
			if d > hi {
				hi = d
			}
			var merged Selection
			if reverseDirection {
				merged = Selection{Tail: hi, Head: lo}
			} else {
				merged = Selection{Tail: lo, Head: hi}
			}
			e.Value = merged
			removedPos := pos + 1
			s.list.Remove(next)
			if removedPos <= s.lastActive {
				s.lastActive--
			}
			continue
		}
		e = next
		pos++
	}
	s.clampLastActive()
}

// BatchEdit applies edit to every selection in ascending order,
// rebasing each selection by the running insertion/deletion offsets
// before invoking edit, then runs Collapse (spec §4.3 "Batch edit
// protocol"). edit performs the actual buffer delete/insert for the
// rebased selection and returns the resulting selection together with
// the byte counts it inserted and deleted.
func (s *Selections) BatchEdit(reverseDirection bool, edit func(sel Selection) (result Selection, inserted, deleted int)) {
	insertionOffset, deletionOffset := 0, 0
	for e := s.list.Front(); e != nil; e = e.Next() {
		sel := e.Value.Shift(insertionOffset - deletionOffset)
		result, ins, del := edit(sel)
		insertionOffset += ins
		deletionOffset += del
		e.Value = result
	}
	s.Collapse(reverseDirection)
}

func (s *Selections) elementAt(i int) *list.Element[Selection] {
	e := s.list.Front()
	for ; i > 0 && e != nil; i-- {
		e = e.Next()
	}
	return e
}

func (s *Selections) rebaseLastActiveAfterRemoval(removedIndex int) {
	if removedIndex <= s.lastActive {
		s.lastActive--
	}
	s.clampLastActive()
}

func (s *Selections) clampLastActive() {
	if s.lastActive < 0 {
		s.lastActive = 0
	}
	if n := s.list.Len(); n > 0 && s.lastActive >= n {
		s.lastActive = n - 1
	}
}
