// Package syntax implements the highlighter's output type and its
// high-water-mark invalidation cache (spec §4.5, §3).
//
// The invalidation-tracker shape is grounded on
// _examples/dshills-keystorm/internal/renderer/dirty/tracker.go's
// "accumulate an offset, discard stale state once an edit crosses it"
// bookkeeping pattern, with the polarity inverted: dshills-keystorm
// tracks the lowest dirty offset below which state must be redrawn;
// this cache tracks the highest offset a completed parse touched,
// below which cached spans remain trustworthy.
package syntax

import (
	"sync"

	"github.com/eyelash/platon-core/grammar"
	"github.com/eyelash/platon-core/style"
)

// Span is a contiguous byte range tagged with a style, as produced by
// Flatten. Spans never nest and never overlap.
type Span struct {
	Start, End int
	Style      style.Style
}

// largeFileThreshold is the default size above which highlighting is
// disabled until an incremental reparse strategy exists (spec §4.5,
// Design Notes "Open question: large-file highlighting policy"). It is
// a provisional, documented policy knob, not a hard limit.
const largeFileThreshold = 10_000

// Flatten walks a tree of source nodes in order, carrying an outer
// style inherited from the nearest enclosing Highlight, and returns
// the flat, merged span list spec §4.5 describes. Gaps inside a styled
// node inherit that node's style; gaps between top-level nodes (i.e.
// matched but never wrapped in a Highlight) are elided entirely.
func Flatten(nodes []*grammar.Node) []Span {
	var out []Span
	for _, n := range nodes {
		appendNode(n, &out)
	}
	return out
}

func appendNode(n *grammar.Node, out *[]Span) {
	cursor := n.Start
	for _, c := range n.Children {
		if c.Start > cursor {
			appendSpan(out, cursor, c.Start, n.Style)
		}
		appendNode(c, out)
		cursor = c.End
	}
	if cursor < n.End {
		appendSpan(out, cursor, n.End, n.Style)
	}
}

func appendSpan(out *[]Span, start, end int, st style.Style) {
	if start >= end {
		return
	}
	if n := len(*out); n > 0 && (*out)[n-1].Style == st && (*out)[n-1].End == start {
		(*out)[n-1].End = end
		return
	}
	*out = append(*out, Span{Start: start, End: end, Style: st})
}

// Cache memoises the last-computed span list together with the
// highest buffer offset the parse producing it touched. Reparsing is
// non-incremental: an edit at or before the high-water-mark discards
// the whole cache, and the next Get call reparses from the start of
// the buffer (spec §4.5's documented policy; true incremental resume
// from a preserved boundary is left as a future extension, per the
// spec's own Open Question).
type Cache struct {
	mu            sync.Mutex
	spans         []Span
	highWaterMark int
	valid         bool
	disableAbove  int
}

// NewCache returns an empty, invalid cache with the default large-file
// threshold.
func NewCache() *Cache {
	return &Cache{disableAbove: largeFileThreshold}
}

// DisableAbove sets the byte-size threshold above which Get returns no
// spans without invoking the grammar. Zero disables the threshold.
func (c *Cache) DisableAbove(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.disableAbove = n
}

// Invalidate discards the cache if offset falls at or before the
// high-water-mark of the last parse.
func (c *Cache) Invalidate(offset int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.valid && offset <= c.highWaterMark {
		c.valid = false
		c.spans = nil
		c.highWaterMark = 0
	}
}

// Get returns the span list for buf, reparsing with g if the cache is
// not valid. limit caps how many leading bytes of buf are considered;
// limit <= 0 means the whole buffer.
func (c *Cache) Get(buf []byte, g grammar.Matcher, limit int) []Span {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.valid {
		return c.spans
	}

	if c.disableAbove > 0 && len(buf) > c.disableAbove {
		c.spans = nil
		c.highWaterMark = len(buf)
		c.valid = true
		return nil
	}

	data := buf
	if limit > 0 && limit < len(data) {
		data = data[:limit]
	}

	in := grammar.NewInput(data)
	// Every language's top rule is a greedy repetition of
	// alternatives ending in any_char(), so one Match call always
	// succeeds and consumes the whole input (spec §7 "Grammar
	// failure — impossible by construction").
	nodes, _ := g.Match(in)

	c.spans = Flatten(nodes)
	c.highWaterMark = len(data)
	c.valid = true
	return c.spans
}
