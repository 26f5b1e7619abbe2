package buffer

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewIsSingleNewline(t *testing.T) {
	b := New()
	if b.Size() != 1 {
		t.Fatalf("Size() = %d, want 1", b.Size())
	}
	if b.TotalLines() != 1 {
		t.Fatalf("TotalLines() = %d, want 1", b.TotalLines())
	}
	if b.Byte(0) != '\n' {
		t.Fatalf("Byte(0) = %q, want \\n", b.Byte(0))
	}
}

func TestOpenAppendsTrailingNewline(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "no-newline.txt")
	if err := os.WriteFile(path, []byte("hello"), 0o644); err != nil {
		t.Fatal(err)
	}

	b, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(b.Bytes(0, b.Size())), "hello\n"; got != want {
		t.Fatalf("Bytes() = %q, want %q", got, want)
	}
}

func TestOpenPreservesExistingTrailingNewline(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "has-newline.txt")
	want := "line one\nline two\n"
	if err := os.WriteFile(path, []byte(want), 0o644); err != nil {
		t.Fatal(err)
	}

	b, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := string(b.Bytes(0, b.Size())); got != want {
		t.Fatalf("Bytes() = %q, want %q", got, want)
	}
	if b.TotalLines() != 2 {
		t.Fatalf("TotalLines() = %d, want 2", b.TotalLines())
	}
}

func TestLineStartEndRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lines.txt")
	content := "abc\nde\n\nfghij\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	b, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}

	wantStarts := []int{0, 4, 7, 8}
	wantEnds := []int{3, 6, 7, 13}
	for k, want := range wantStarts {
		if got := b.LineStart(k); got != want {
			t.Errorf("LineStart(%d) = %d, want %d", k, got, want)
		}
	}
	for k, want := range wantEnds {
		if got := b.LineEnd(k); got != want {
			t.Errorf("LineEnd(%d) = %d, want %d", k, got, want)
		}
	}
	for i := 0; i < b.Size(); i++ {
		k := b.Line(i)
		if i < b.LineStart(k) || i > b.LineEnd(k) {
			t.Errorf("Line(%d) = %d, outside [%d,%d]", i, k, b.LineStart(k), b.LineEnd(k))
		}
	}
}

func TestByteOfCodepointRoundTripsOnASCII(t *testing.T) {
	b := New()
	for i, c := range []byte("hello\n") {
		if i == 0 {
			b.InsertByte(0, c)
			continue
		}
		b.InsertByte(i, c)
	}
	// buffer is now "hello\n\n" (original single newline pushed to the end)
	n := b.CodepointsBefore(b.Size())
	for cp := 0; cp < n; cp++ {
		byteOff := b.ByteOfCodepoint(cp)
		if got := b.CodepointsBefore(byteOff); got != cp {
			t.Errorf("CodepointsBefore(ByteOfCodepoint(%d)) = %d, want %d", cp, got, cp)
		}
	}
}

func TestByteOfCodepointRoundTripsOnMultibyte(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "utf8.txt")
	content := "aé中\U0001F600z\n" // ascii, latin-1 accented, CJK, emoji
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	b, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}

	n := b.CodepointsBefore(b.Size())
	for cp := 0; cp < n; cp++ {
		byteOff := b.ByteOfCodepoint(cp)
		if got := b.CodepointsBefore(byteOff); got != cp {
			t.Errorf("CodepointsBefore(ByteOfCodepoint(%d)) = %d, want %d", cp, got, cp)
		}
	}
}

func TestPrevNextIndexClamp(t *testing.T) {
	b := New() // "\n"
	if got := b.PrevIndex(0); got != 0 {
		t.Errorf("PrevIndex(0) = %d, want 0", got)
	}
	if got := b.NextIndex(0); got != b.Size()-1 {
		t.Errorf("NextIndex(0) = %d, want %d", got, b.Size()-1)
	}
}

func TestInsertThenRemoveRestoresOriginal(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "restore.txt")
	content := "the quick brown fox\njumps over\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	b, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	before := string(b.Bytes(0, b.Size()))

	b.InsertBytes(4, []byte("very "))
	b.RemoveRange(4, 9)

	after := string(b.Bytes(0, b.Size()))
	if before != after {
		t.Errorf("insert-then-remove changed content:\nbefore %q\nafter  %q", before, after)
	}
}

func TestSaveRoundTrips(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.txt")
	content := "one\ntwo\nthree\n"
	if err := os.WriteFile(src, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	b, err := Open(src)
	if err != nil {
		t.Fatal(err)
	}

	dst := filepath.Join(dir, "dst.txt")
	if err := b.Save(dst); err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != content {
		t.Errorf("Save() wrote %q, want %q", got, content)
	}
}

func TestSizeTotalLinesInvariant(t *testing.T) {
	b := New()
	for i := 0; i < 50; i++ {
		b.InsertByte(0, 'x')
	}
	if b.Size() != 51 {
		t.Fatalf("Size() = %d, want 51", b.Size())
	}
	if b.TotalLines() != 1 {
		t.Fatalf("TotalLines() = %d, want 1", b.TotalLines())
	}

	b.InsertByte(0, '\n')
	if b.TotalLines() != 2 {
		t.Fatalf("TotalLines() after inserting newline = %d, want 2", b.TotalLines())
	}
}
