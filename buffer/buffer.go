// Package buffer implements the text buffer of spec §4.2: a rope-backed
// sequence of bytes, treated as UTF-8, that answers byte/codepoint/line
// positional queries in O(log N) and supports single-byte insert and
// remove without copying the whole document.
//
// Grounded on _examples/original_source/piece_table.hpp and buffer.hpp
// for the query contracts, and on the teacher's editor/buffer.go for
// the Go surface shape (Open/Save naming, doc-comment density).
package buffer

import (
	"bufio"
	"os"

	"github.com/eyelash/platon-core/internal/rope"
)

// info is the monoidal summary cached at every rope node: byte count,
// UTF-8 codepoint count, and newline count (spec §3).
type info struct {
	Bytes      int
	Codepoints int
	Newlines   int
}

func (a info) Combine(b info) info {
	return info{
		Bytes:      a.Bytes + b.Bytes,
		Codepoints: a.Codepoints + b.Codepoints,
		Newlines:   a.Newlines + b.Newlines,
	}
}

func fromByte(c byte) info {
	i := info{Bytes: 1}
	// A continuation byte has the top two bits 10; every other byte
	// starts a new codepoint (spec §3).
	if c&0xC0 != 0x80 {
		i.Codepoints = 1
	}
	if c == '\n' {
		i.Newlines = 1
	}
	return i
}

func byteComp(i int) rope.Comp[info] {
	return func(sum info) bool { return i < sum.Bytes }
}

func codepointComp(c int) rope.Comp[info] {
	return func(sum info) bool { return c < sum.Codepoints }
}

func lineComp(k int) rope.Comp[info] {
	return func(sum info) bool { return k < sum.Newlines }
}

// TextBuffer is the in-memory document. The empty value is not usable;
// construct with New or Open.
type TextBuffer struct {
	tree *rope.Tree[byte, info]
}

// New returns an empty buffer: a single synthesised newline, per spec
// §3 ("An empty buffer contains exactly one \n").
func New() *TextBuffer {
	tree := rope.NewTree[byte, info](fromByte)
	tree.Append('\n')
	return &TextBuffer{tree: tree}
}

// Open reads path in full and builds a buffer from its bytes, appending
// a trailing newline if the file doesn't already end in one. On I/O
// failure it returns a nil buffer and the error — no partial state is
// ever produced (spec §7).
func Open(path string) (*TextBuffer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 || data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}
	return &TextBuffer{tree: rope.NewTreeFromItems[byte, info](data, fromByte)}, nil
}

// Size returns the buffer's byte length. Always >= 1.
func (b *TextBuffer) Size() int {
	return b.tree.Info().Bytes
}

// TotalLines returns the number of newline-terminated lines.
func (b *TextBuffer) TotalLines() int {
	return b.tree.Info().Newlines
}

// LineStart returns the byte offset where line k begins.
func (b *TextBuffer) LineStart(k int) int {
	if k == 0 {
		return 0
	}
	return b.tree.Sum(lineComp(k-1)).Bytes + 1
}

// LineEnd returns the byte offset of line k's terminating newline.
func (b *TextBuffer) LineEnd(k int) int {
	return b.tree.Sum(lineComp(k)).Bytes
}

// Line returns the index of the line containing byte offset i.
func (b *TextBuffer) Line(i int) int {
	return b.tree.Sum(byteComp(i)).Newlines
}

// CodepointsBefore returns the number of codepoints in [0, i).
func (b *TextBuffer) CodepointsBefore(i int) int {
	return b.tree.Sum(byteComp(i)).Codepoints
}

// ByteOfCodepoint returns the byte offset of the c-th codepoint.
func (b *TextBuffer) ByteOfCodepoint(c int) int {
	return b.tree.Sum(codepointComp(c)).Bytes
}

// PrevIndex returns the byte offset of the codepoint preceding i,
// clamped at 0 (spec §4.3).
func (b *TextBuffer) PrevIndex(i int) int {
	cp := b.CodepointsBefore(i)
	if cp == 0 {
		return 0
	}
	return b.ByteOfCodepoint(cp - 1)
}

// NextIndex returns the byte offset of the codepoint following i,
// clamped at size-1 (spec §4.3).
func (b *TextBuffer) NextIndex(i int) int {
	cp := b.CodepointsBefore(i)
	idx := b.ByteOfCodepoint(cp + 1)
	if last := b.Size() - 1; idx > last {
		idx = last
	}
	return idx
}

// Byte returns the byte at offset i.
func (b *TextBuffer) Byte(i int) byte {
	v, _ := b.tree.Get(byteComp(i))
	return v
}

// Bytes returns a copy of the byte range [start, end).
func (b *TextBuffer) Bytes(start, end int) []byte {
	if end < start {
		end = start
	}
	out := make([]byte, 0, end-start)
	for i := start; i < end; i++ {
		v, ok := b.tree.Get(byteComp(i))
		if !ok {
			break
		}
		out = append(out, v)
	}
	return out
}

// InsertByte inserts a single byte at offset i.
func (b *TextBuffer) InsertByte(i int, c byte) {
	b.tree.Insert(byteComp(i), c)
}

// InsertBytes inserts data at offset i, one byte at a time — callers
// that insert multi-byte codepoints are responsible for sequencing the
// bytes consistently (spec §4.2).
func (b *TextBuffer) InsertBytes(i int, data []byte) {
	for _, c := range data {
		b.tree.Insert(byteComp(i), c)
		i++
	}
}

// RemoveByte removes the byte at offset i.
func (b *TextBuffer) RemoveByte(i int) {
	b.tree.Remove(byteComp(i))
}

// RemoveRange removes the byte range [start, end).
func (b *TextBuffer) RemoveRange(start, end int) {
	for j := start; j < end; j++ {
		b.tree.Remove(byteComp(start))
	}
}

// Save streams the buffer's leaves, in order, to path.
func (b *TextBuffer) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	var werr error
	b.tree.ForEachLeaf(func(chunk []byte) {
		if werr != nil {
			return
		}
		_, werr = w.Write(chunk)
	})
	if werr != nil {
		return werr
	}
	return w.Flush()
}
