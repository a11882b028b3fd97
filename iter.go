package charpos

import "unicode/utf8"

// Iter walks a string one scalar value at a time, yielding each scalar with
// its projected position. Obtain one with Scan. An Iter is single use:
// once exhausted it stays exhausted, and a fresh Scan is needed to walk the
// same text again.
type Iter[T Shape[T]] struct {
	src string
	off int // byte offset of the next scalar
	pos tracker
}

// Scan returns an iterator over the scalar values of src, projecting each
// position into the shape T. The returned iterator borrows src for its
// lifetime and allocates nothing per step.
//
//	it := charpos.Scan[charpos.ByteRange](src)
func Scan[T Shape[T]](src string) *Iter[T] {
	return &Iter[T]{src: src, pos: newTracker()}
}

// Next yields the next scalar and its projected position. The third result
// is false once src is exhausted; subsequent calls keep returning false.
// Byte spans are yielded in strictly increasing, contiguous order starting
// at offset 0.
func (it *Iter[T]) Next() (T, rune, bool) {
	if it.off >= len(it.src) {
		var zero T
		return zero, 0, false
	}
	r, size := utf8.DecodeRuneInString(it.src[it.off:])
	pos := it.pos.advance(r, it.off, it.off+size)
	it.off += size
	var shape T
	return shape.FromPosition(pos), r, true
}

// Rest returns the portion of the source that has not been yielded yet.
func (it *Iter[T]) Rest() string {
	return it.src[it.off:]
}

// BytesIter is the []byte counterpart of Iter, for callers holding raw
// buffers. Semantics are identical; the buffer must not be mutated while
// the iterator is driven.
type BytesIter[T Shape[T]] struct {
	src []byte
	off int
	pos tracker
}

// ScanBytes returns an iterator over the scalar values of src, projecting
// each position into the shape T.
func ScanBytes[T Shape[T]](src []byte) *BytesIter[T] {
	return &BytesIter[T]{src: src, pos: newTracker()}
}

// Next yields the next scalar and its projected position. The third result
// is false once src is exhausted; subsequent calls keep returning false.
func (it *BytesIter[T]) Next() (T, rune, bool) {
	if it.off >= len(it.src) {
		var zero T
		return zero, 0, false
	}
	r, size := utf8.DecodeRune(it.src[it.off:])
	pos := it.pos.advance(r, it.off, it.off+size)
	it.off += size
	var shape T
	return shape.FromPosition(pos), r, true
}

// Rest returns the portion of the source that has not been yielded yet.
func (it *BytesIter[T]) Rest() []byte {
	return it.src[it.off:]
}
