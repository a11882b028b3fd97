// Package charpos provides position-aware iteration over UTF-8 text.
//
// # Overview
//
// A single pass over a string yields, for every Unicode scalar value, the
// scalar itself plus a caller-selected combination of positional facts:
// 1-based line number, 1-based column number, and the half-open byte span
// the scalar occupies in the source. The combination is chosen as a type
// parameter, so facts the caller did not ask for are never materialized:
//
//	for it := charpos.Scan[charpos.LineCol](src); ; {
//	    pos, r, ok := it.Next()
//	    if !ok {
//	        break
//	    }
//	    fmt.Printf("[Ln %d, Col %d] %q\n", pos.Line, pos.Col, r)
//	}
//
// # Output shapes
//
// Atomic shapes project one fact or one common grouping:
//   - Line, Col, ByteStart, ByteEnd
//   - ByteRange (the [start, end) byte span)
//   - LineCol, LineColByte
//   - Position (line, column, and byte span together)
//
// Any ordered combination of shapes is expressed with Pair, Triple, and
// Quad, whose members may themselves be tuples:
//
//	charpos.Scan[charpos.Pair[charpos.LineCol, charpos.ByteRange]](src)
//
// Projection is compositional: a tuple's members carry exactly the values
// the corresponding atomic shapes would have produced on their own.
//
// # Line and column semantics
//
// Columns count scalar values, not grapheme clusters: a combining mark or
// an emoji each advance the column by one. Line breaks are classified per
// scalar by IsLineBreak; '\r' and '\n' are each their own break, so a CRLF
// pair advances the line twice. Both counters are 1-based.
//
// # Iteration model
//
// Iterators are lazy, forward-only, and single use. Next reports false once
// the source is exhausted and keeps doing so afterwards. An iterator owns
// its own counters and must not be shared across goroutines while being
// driven; the source text itself may be shared read-only.
package charpos
