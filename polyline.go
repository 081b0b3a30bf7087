// polyline.go

package spiro

import (
	"iter"
	"slices"
)

// Polyline is an ordered sequence of points drawn as one stroke.
// The first point is where the pen is set down ("move to"); every following
// point is joined to its predecessor by a straight segment ("line to").
type Polyline struct {
	points []Point
}

// Len returns the number of points, including the start point.
func (p *Polyline) Len() int {
	return len(p.points)
}

// Start returns the first point.
func (p *Polyline) Start() Point {
	return p.points[0]
}

// End returns the last point.
func (p *Polyline) End() Point {
	return p.points[len(p.points)-1]
}

// At returns the i-th point.
func (p *Polyline) At(i int) Point {
	return p.points[i]
}

// Points returns a copy of the points in stroke order.
func (p *Polyline) Points() []Point {
	return slices.Clone(p.points)
}

// All iterates over the points in stroke order.
func (p *Polyline) All() iter.Seq2[int, Point] {
	return slices.All(p.points)
}

// Segments returns the number of line segments.
func (p *Polyline) Segments() int {
	return max(len(p.points)-1, 0)
}

// PolylineBuilder accumulates points into a Polyline.
// All methods return the builder for chaining.
type PolylineBuilder struct {
	points []Point
}

// BuildPolyline starts a new polyline builder.
func BuildPolyline() *PolylineBuilder {
	return &PolylineBuilder{}
}

// Grow reserves room for n more points.
func (b *PolylineBuilder) Grow(n int) *PolylineBuilder {
	b.points = slices.Grow(b.points, n)
	return b
}

// MoveTo sets the start point, discarding anything accumulated so far.
func (b *PolylineBuilder) MoveTo(p Point) *PolylineBuilder {
	b.points = append(b.points[:0], p)
	return b
}

// LineTo appends a point. Without a start point it behaves like MoveTo.
func (b *PolylineBuilder) LineTo(p Point) *PolylineBuilder {
	b.points = append(b.points, p)
	return b
}

// Len returns the number of points accumulated so far.
func (b *PolylineBuilder) Len() int {
	return len(b.points)
}

// Build returns the constructed polyline and resets the builder.
func (b *PolylineBuilder) Build() (*Polyline, error) {
	if len(b.points) == 0 {
		return nil, ErrEmptyPath
	}
	p := &Polyline{points: b.points}
	b.points = nil
	return p, nil
}
