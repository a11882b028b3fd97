package charpos

import "fmt"

// Shape is the capability every output shape implements: projecting a full
// positional record into itself. Iterators are parameterized over a Shape,
// which resolves the projection at compile time — a scan asked for byte
// ranges never touches the line/column fields of its records.
type Shape[T any] interface {
	FromPosition(Position) T
}

// Line is a 1-based line number.
type Line int

// FromPosition projects the line number.
func (Line) FromPosition(p Position) Line { return Line(p.Line) }

// Col is a 1-based column number, counted in scalar values.
type Col int

// FromPosition projects the column number.
func (Col) FromPosition(p Position) Col { return Col(p.Col) }

// ByteStart is the inclusive byte offset of a scalar in the source.
type ByteStart int

// FromPosition projects the starting byte offset.
func (ByteStart) FromPosition(p Position) ByteStart { return ByteStart(p.ByteStart) }

// ByteEnd is the exclusive byte offset just past a scalar in the source.
type ByteEnd int

// FromPosition projects the ending byte offset.
func (ByteEnd) FromPosition(p Position) ByteEnd { return ByteEnd(p.ByteEnd) }

// ByteRange is the half-open [Start, End) byte span of one scalar.
// End-Start is the scalar's encoded length, 1 to 4 bytes.
type ByteRange struct {
	Start int // inclusive
	End   int // exclusive
}

// FromPosition projects the byte span.
func (ByteRange) FromPosition(p Position) ByteRange {
	return ByteRange{Start: p.ByteStart, End: p.ByteEnd}
}

// Len returns the encoded byte length of the scalar.
func (r ByteRange) Len() int { return r.End - r.Start }

// String formats the range as "start..end".
func (r ByteRange) String() string { return fmt.Sprintf("%d..%d", r.Start, r.End) }

// LineCol pairs the 1-based line and column numbers.
type LineCol struct {
	Line int
	Col  int
}

// FromPosition projects the line and column numbers.
func (LineCol) FromPosition(p Position) LineCol {
	return LineCol{Line: p.Line, Col: p.Col}
}

// String formats the position as "line:col".
func (lc LineCol) String() string { return fmt.Sprintf("%d:%d", lc.Line, lc.Col) }

// LineColByte carries the line and column numbers plus the starting byte
// offset, for callers that want a point location without the span's end.
type LineColByte struct {
	Line      int
	Col       int
	ByteStart int
}

// FromPosition projects the line, column, and starting byte offset.
func (LineColByte) FromPosition(p Position) LineColByte {
	return LineColByte{Line: p.Line, Col: p.Col, ByteStart: p.ByteStart}
}
