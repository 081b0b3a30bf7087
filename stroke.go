package spiro

import "slices"

// LineCap specifies the shape of line endpoints.
type LineCap int

const (
	// LineCapButt specifies a flat line cap.
	LineCapButt LineCap = iota
	// LineCapRound specifies a rounded line cap.
	LineCapRound
	// LineCapSquare specifies a square line cap.
	LineCapSquare
)

func (c LineCap) String() string {
	switch c {
	case LineCapButt:
		return "butt"
	case LineCapRound:
		return "round"
	case LineCapSquare:
		return "square"
	default:
		return "unknown"
	}
}

// LineJoin specifies the shape of line joins.
type LineJoin int

const (
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter LineJoin = iota
	// LineJoinRound specifies a rounded join.
	LineJoinRound
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
)

func (j LineJoin) String() string {
	switch j {
	case LineJoinMiter:
		return "miter"
	case LineJoinRound:
		return "round"
	case LineJoinBevel:
		return "bevel"
	default:
		return "unknown"
	}
}

// StrokeStyle describes how a polyline is stroked.
// spiro never interprets it; sinks map it onto their own stroke types.
type StrokeStyle struct {
	// Width is the line width in pixels. Default: 1.0
	Width float64

	// Cap is the shape of line endpoints. Default: LineCapButt
	Cap LineCap

	// Join is the shape of line joins. Default: LineJoinMiter
	Join LineJoin

	// MiterLimit is the limit for miter joins before they become bevels.
	// Default: 4.0
	MiterLimit float64

	// Dash alternates dash and gap lengths. Empty means a solid line.
	Dash []float64

	// DashOffset shifts the start of the dash pattern.
	DashOffset float64
}

// DefaultStrokeStyle returns a solid 1-pixel line with butt caps and
// miter joins.
func DefaultStrokeStyle() StrokeStyle {
	return StrokeStyle{
		Width:      1.0,
		Cap:        LineCapButt,
		Join:       LineJoinMiter,
		MiterLimit: 4.0,
	}
}

// RoundStrokeStyle returns a stroke with round caps and joins, the style
// spirograph curves are drawn with by default.
func RoundStrokeStyle(width float64) StrokeStyle {
	return DefaultStrokeStyle().
		WithWidth(width).
		WithCap(LineCapRound).
		WithJoin(LineJoinRound).
		WithMiterLimit(2.0)
}

// WithWidth returns a copy of the style with the given width.
func (s StrokeStyle) WithWidth(w float64) StrokeStyle {
	s.Width = w
	return s
}

// WithCap returns a copy of the style with the given line cap.
func (s StrokeStyle) WithCap(lineCap LineCap) StrokeStyle {
	s.Cap = lineCap
	return s
}

// WithJoin returns a copy of the style with the given line join.
func (s StrokeStyle) WithJoin(join LineJoin) StrokeStyle {
	s.Join = join
	return s
}

// WithMiterLimit returns a copy of the style with the given miter limit.
func (s StrokeStyle) WithMiterLimit(limit float64) StrokeStyle {
	s.MiterLimit = limit
	return s
}

// WithDash returns a copy of the style with the given dash pattern.
// Passing no lengths returns to a solid line.
//
// Example:
//
//	style.WithDash(5, 3) // 5 units dash, 3 units gap
func (s StrokeStyle) WithDash(lengths ...float64) StrokeStyle {
	s.Dash = slices.Clone(lengths)
	if len(s.Dash) == 0 {
		s.Dash = nil
	}
	return s
}

// WithDashOffset returns a copy of the style with the dash offset set.
func (s StrokeStyle) WithDashOffset(offset float64) StrokeStyle {
	s.Dash = slices.Clone(s.Dash)
	s.DashOffset = offset
	return s
}

// IsDashed reports whether the style has a usable dash pattern.
// A pattern whose lengths are all zero draws nothing and counts as solid.
func (s StrokeStyle) IsDashed() bool {
	for _, l := range s.Dash {
		if l > 0 {
			return true
		}
	}
	return false
}
