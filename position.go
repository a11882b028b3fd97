package charpos

import "fmt"

// Position is the complete positional record for one scalar value: 1-based
// line and column plus the half-open [ByteStart, ByteEnd) byte span the
// scalar occupies in the source. It is also the widest output shape; every
// other shape is a projection of it.
type Position struct {
	Line      int `json:"line"`       // 1-based line number
	Col       int `json:"col"`        // 1-based column number, counted in scalars
	ByteStart int `json:"byte_start"` // inclusive byte offset in the source
	ByteEnd   int `json:"byte_end"`   // exclusive byte offset in the source
}

// FromPosition returns the record unchanged, making Position usable as an
// output shape directly.
func (Position) FromPosition(p Position) Position { return p }

// String formats the position as "line:col (start..end)".
func (p Position) String() string {
	return fmt.Sprintf("%d:%d (%d..%d)", p.Line, p.Col, p.ByteStart, p.ByteEnd)
}

// IsLineBreak reports whether r terminates a line. Classification is per
// scalar: line feed and carriage return each count as their own break, so a
// CRLF sequence is two breaks. No other scalar ends a line.
func IsLineBreak(r rune) bool {
	return r == '\n' || r == '\r'
}

// tracker holds the running line/column counters during a scan. It is the
// only mutable state in the package and is owned exclusively by one
// iterator.
type tracker struct {
	line int // 1-based
	col  int // 1-based, in scalars
}

func newTracker() tracker {
	return tracker{line: 1, col: 1}
}

// advance consumes one scalar occupying src[start:end) and returns the
// position it was read at. The line counter moves and the column resets
// after a line-break scalar; every other scalar advances the column by one.
// Spans are assumed to arrive contiguous and in order.
func (t *tracker) advance(r rune, start, end int) Position {
	pos := Position{Line: t.line, Col: t.col, ByteStart: start, ByteEnd: end}
	if IsLineBreak(r) {
		t.line++
		t.col = 1
	} else {
		t.col++
	}
	return pos
}
