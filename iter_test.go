package charpos

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScanFullWalkthrough drives the widest shape over mixed ASCII, emoji,
// and line breaks, checking every yielded position exactly.
func TestScanFullWalkthrough(t *testing.T) {
	src := "Hello 👋\nWorld 🌏\n🦀🦀"

	want := []struct {
		pos Position
		r   rune
	}{
		{Position{1, 1, 0, 1}, 'H'},
		{Position{1, 2, 1, 2}, 'e'},
		{Position{1, 3, 2, 3}, 'l'},
		{Position{1, 4, 3, 4}, 'l'},
		{Position{1, 5, 4, 5}, 'o'},
		{Position{1, 6, 5, 6}, ' '},
		{Position{1, 7, 6, 10}, '👋'},
		{Position{1, 8, 10, 11}, '\n'},
		{Position{2, 1, 11, 12}, 'W'},
		{Position{2, 2, 12, 13}, 'o'},
		{Position{2, 3, 13, 14}, 'r'},
		{Position{2, 4, 14, 15}, 'l'},
		{Position{2, 5, 15, 16}, 'd'},
		{Position{2, 6, 16, 17}, ' '},
		{Position{2, 7, 17, 21}, '🌏'},
		{Position{2, 8, 21, 22}, '\n'},
		{Position{3, 1, 22, 26}, '🦀'},
		{Position{3, 2, 26, 30}, '🦀'},
	}

	it := Scan[Position](src)
	for i, w := range want {
		pos, r, ok := it.Next()
		require.True(t, ok, "step %d: iterator ended early", i)
		assert.Equal(t, w.pos, pos, "step %d", i)
		assert.Equal(t, w.r, r, "step %d", i)
	}

	_, _, ok := it.Next()
	assert.False(t, ok)
	assert.Empty(t, it.Rest())
}

func TestScanEmptyInput(t *testing.T) {
	_, _, ok := Scan[Position]("").Next()
	assert.False(t, ok)

	_, _, ok = Scan[ByteRange]("").Next()
	assert.False(t, ok)

	_, _, ok = ScanBytes[LineCol](nil).Next()
	assert.False(t, ok)
}

func TestScanOnlyLineFeeds(t *testing.T) {
	it := Scan[Position]("\n\n\n")

	want := []Position{
		{Line: 1, Col: 1, ByteStart: 0, ByteEnd: 1},
		{Line: 2, Col: 1, ByteStart: 1, ByteEnd: 2},
		{Line: 3, Col: 1, ByteStart: 2, ByteEnd: 3},
	}
	for i, w := range want {
		pos, r, ok := it.Next()
		require.True(t, ok, "step %d", i)
		assert.Equal(t, w, pos, "step %d", i)
		assert.Equal(t, '\n', r, "step %d", i)
	}
	_, _, ok := it.Next()
	assert.False(t, ok)
}

// TestScanExhaustionIsIdempotent makes sure a finished iterator never
// resurrects earlier values.
func TestScanExhaustionIsIdempotent(t *testing.T) {
	it := Scan[LineCol]("ab")
	it.Next()
	it.Next()

	for i := 0; i < 3; i++ {
		pos, r, ok := it.Next()
		assert.False(t, ok, "call %d after exhaustion", i)
		assert.Equal(t, LineCol{}, pos)
		assert.Equal(t, rune(0), r)
	}
}

// TestScanSpansAreContiguous checks the span invariants over a variety of
// inputs: spans start at 0, abut exactly, and cover the whole source.
func TestScanSpansAreContiguous(t *testing.T) {
	sources := []string{
		"plain ascii text",
		"Hello 👋\nWorld 🌏\n🦀🦀",
		"tabs\tand\rmixed\r\nbreaks\n",
		"é",
		"\n",
		"ö日本語🦀",
	}

	for _, src := range sources {
		it := Scan[ByteRange](src)
		next := 0
		for {
			rng, _, ok := it.Next()
			if !ok {
				break
			}
			assert.Equal(t, next, rng.Start, "source %q", src)
			assert.Greater(t, rng.End, rng.Start, "source %q", src)
			assert.LessOrEqual(t, rng.Len(), 4, "source %q", src)
			next = rng.End
		}
		assert.Equal(t, len(src), next, "source %q: spans must cover the whole input", src)
	}
}

// TestScanLineAndColInvariants walks arbitrary text checking the counter
// rules directly: first scalar at 1:1, column resets to 1 after each break,
// line grows by exactly one per break and never shrinks.
func TestScanLineAndColInvariants(t *testing.T) {
	src := "one\rtwo\r\nthree\n\nfünf 🦀 six\n"

	it := Scan[Position](src)
	prevWasBreak := false
	first := true
	var prev Position
	for {
		pos, r, ok := it.Next()
		if !ok {
			break
		}
		switch {
		case first:
			assert.Equal(t, 1, pos.Line)
			assert.Equal(t, 1, pos.Col)
			first = false
		case prevWasBreak:
			assert.Equal(t, prev.Line+1, pos.Line, "line must advance by one after a break")
			assert.Equal(t, 1, pos.Col, "column must reset after a break")
		default:
			assert.Equal(t, prev.Line, pos.Line)
			assert.Equal(t, prev.Col+1, pos.Col)
		}
		prev = pos
		prevWasBreak = IsLineBreak(r)
	}
}

// TestScanByteStartsMatchNativeDecoding pins the scalar source to the
// platform decoder: requesting only byte starts must reproduce the offsets
// a plain range over the string produces.
func TestScanByteStartsMatchNativeDecoding(t *testing.T) {
	src := "Hello 👋\nWorld 🌏\n🦀🦀"

	it := Scan[ByteStart](src)
	for i, r := range src {
		start, got, ok := it.Next()
		require.True(t, ok, "iterator ended before native decoding at offset %d", i)
		assert.Equal(t, ByteStart(i), start)
		assert.Equal(t, r, got)
	}
	_, _, ok := it.Next()
	assert.False(t, ok)
}

func TestScanRest(t *testing.T) {
	src := "ab\ncd"
	it := Scan[Line](src)

	assert.Equal(t, src, it.Rest())
	it.Next()
	assert.Equal(t, "b\ncd", it.Rest())
	it.Next()
	it.Next()
	assert.Equal(t, "cd", it.Rest())
}

// TestScanBytesMatchesString drives the string and byte iterators over the
// same input and expects identical output.
func TestScanBytesMatchesString(t *testing.T) {
	src := "mixed\r\nbreaks é🦀\n"

	si := Scan[Position](src)
	bi := ScanBytes[Position]([]byte(src))
	for {
		spos, sr, sok := si.Next()
		bpos, br, bok := bi.Next()
		assert.Equal(t, sok, bok)
		if !sok || !bok {
			break
		}
		assert.Equal(t, spos, bpos)
		assert.Equal(t, sr, br)
	}
}

func BenchmarkScanLineCol(b *testing.B) {
	src := "Hello 👋\nWorld 🌏\n🦀🦀\n"

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		it := Scan[LineCol](src)
		for {
			_, _, ok := it.Next()
			if !ok {
				break
			}
		}
	}
}

func BenchmarkScanByteRange(b *testing.B) {
	src := "Hello 👋\nWorld 🌏\n🦀🦀\n"

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		it := Scan[ByteRange](src)
		for {
			_, _, ok := it.Next()
			if !ok {
				break
			}
		}
	}
}
