package charpos

// Pair combines two output shapes into one, projected member-wise in order.
// Members may themselves be tuples, so larger combinations can be nested,
// though Triple and Quad cover the common cases directly.
type Pair[A Shape[A], B Shape[B]] struct {
	A A
	B B
}

// FromPosition projects each member from the same record.
func (Pair[A, B]) FromPosition(p Position) Pair[A, B] {
	var a A
	var b B
	return Pair[A, B]{A: a.FromPosition(p), B: b.FromPosition(p)}
}

// Triple combines three output shapes into one, projected member-wise in
// order.
type Triple[A Shape[A], B Shape[B], C Shape[C]] struct {
	A A
	B B
	C C
}

// FromPosition projects each member from the same record.
func (Triple[A, B, C]) FromPosition(p Position) Triple[A, B, C] {
	var a A
	var b B
	var c C
	return Triple[A, B, C]{A: a.FromPosition(p), B: b.FromPosition(p), C: c.FromPosition(p)}
}

// Quad combines four output shapes into one, projected member-wise in order.
type Quad[A Shape[A], B Shape[B], C Shape[C], D Shape[D]] struct {
	A A
	B B
	C C
	D D
}

// FromPosition projects each member from the same record.
func (Quad[A, B, C, D]) FromPosition(p Position) Quad[A, B, C, D] {
	var a A
	var b B
	var c C
	var d D
	return Quad[A, B, C, D]{
		A: a.FromPosition(p),
		B: b.FromPosition(p),
		C: c.FromPosition(p),
		D: d.FromPosition(p),
	}
}
