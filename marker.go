package spiro

import "fmt"

// Line is a straight segment between two points.
type Line struct {
	P1, P2 Point
}

// Path returns the segment as a two-point polyline placed in frame.
func (l Line) Path(frame Origin) *Polyline {
	return &Polyline{points: []Point{
		frame.Offset(l.P1).Point(),
		frame.Offset(l.P2).Point(),
	}}
}

// Cross is a plus-shaped marker. Width is the length of each arm.
type Cross struct {
	Center Point
	Width  float64
}

// Lines returns the horizontal and vertical bars of the cross.
func (c Cross) Lines() [2]Line {
	return [2]Line{
		{P1: Pt(c.Center.X-c.Width, c.Center.Y), P2: Pt(c.Center.X+c.Width, c.Center.Y)},
		{P1: Pt(c.Center.X, c.Center.Y-c.Width), P2: Pt(c.Center.X, c.Center.Y+c.Width)},
	}
}

// Draw strokes both bars of the cross into sink.
func (c Cross) Draw(sink Sink, frame Origin, col Color, style StrokeStyle) error {
	for _, l := range c.Lines() {
		if err := sink.Stroke(l.Path(frame), col, style); err != nil {
			return fmt.Errorf("%w: cross: %w", ErrRender, err)
		}
	}
	return nil
}
