package spiro

// Sink receives finished polylines and strokes them.
type Sink interface {
	Stroke(p *Polyline, c Color, style StrokeStyle) error
}

// Canvas is a Sink with its own coordinate frame, usually centered on the
// drawing surface.
type Canvas interface {
	Sink
	Origin() Origin
}

// PolylineRecorder is a Sink that keeps every stroke it receives.
// It is useful for tests and for exporting geometry without rasterizing.
type PolylineRecorder struct {
	Strokes []RecordedStroke
}

// RecordedStroke is one call to [PolylineRecorder.Stroke].
type RecordedStroke struct {
	Path  *Polyline
	Color Color
	Style StrokeStyle
}

// Stroke implements Sink.
func (r *PolylineRecorder) Stroke(p *Polyline, c Color, style StrokeStyle) error {
	if p == nil || p.Len() == 0 {
		return ErrEmptyPath
	}
	r.Strokes = append(r.Strokes, RecordedStroke{Path: p, Color: c, Style: style})
	return nil
}
