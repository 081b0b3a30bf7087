package spiro

// Origin is a reference point for a local coordinate frame.
//
// Frames nest by offsetting: the canvas origin offset by the outer circle's
// center gives the frame the inner circle moves in. Offsetting is plain
// vector addition, so the order in which offsets are applied does not matter.
type Origin struct {
	X, Y float64
}

// NewOrigin creates an Origin at (x, y).
func NewOrigin(x, y float64) Origin {
	return Origin{X: x, Y: y}
}

// Offset returns a new Origin displaced by p.
func (o Origin) Offset(p Point) Origin {
	return Origin{X: o.X + p.X, Y: o.Y + p.Y}
}

// Adjust translates the local coordinates (x, y) into the parent frame.
func (o Origin) Adjust(x, y float64) Point {
	return Point{X: x + o.X, Y: y + o.Y}
}

// Point returns the origin as a Point in the parent frame.
func (o Origin) Point() Point {
	return Point{X: o.X, Y: o.Y}
}

// Within reports whether b lies within r of o. See [WithinRange].
func (o Origin) Within(b Origin, r float64) bool {
	return WithinRange(o, b, r)
}

// WithinRange reports whether the Euclidean distance between a and b is at
// most r.
func WithinRange(a, b Origin, r float64) bool {
	return a.Point().Distance(b.Point()) <= r
}
