package spiro

import (
	"context"
	"errors"
	"fmt"
)

// DrawBorder strokes the outer circle's rim into sink.
func (s *Spirograph) DrawBorder(sink Sink, frame Origin, col Color, style StrokeStyle, step float64) error {
	path, err := s.Outer.BorderPath(frame, step)
	if err != nil {
		return err
	}
	if err := sink.Stroke(path, col, style); err != nil {
		return fmt.Errorf("%w: border: %w", ErrRender, err)
	}
	return nil
}

// Draw traces the curve and strokes it into sink.
//
// When the trace fails with ErrNotClosed the partial curve is still stroked
// and the error is returned alongside the trace.
func (s *Spirograph) Draw(ctx context.Context, sink Sink, frame Origin, col Color, style StrokeStyle, penOffset, step float64, opts ...TraceOption) (*Trace, error) {
	tr, err := s.Trace(ctx, frame, penOffset, step, opts...)
	if err != nil && !errors.Is(err, ErrNotClosed) {
		return tr, err
	}
	if serr := sink.Stroke(tr.Path, col, style); serr != nil {
		return tr, fmt.Errorf("%w: curve: %w", ErrRender, serr)
	}
	return tr, err
}

// Colors groups the colors of one drawing.
type Colors struct {
	Cross  Color
	Border Color
	Curve  Color
}

// DefaultColors returns white, green and yellow.
func DefaultColors() Colors {
	return Colors{
		Cross:  White.Color(),
		Border: Green.Color(),
		Curve:  Yellow.Color(),
	}
}

// Drawing is everything needed to render one spirograph image: a cross at
// the canvas origin, the outer border, and the traced curve.
type Drawing struct {
	Spiro *Spirograph

	// PenOffset is the pen's distance in from the inner rim.
	PenOffset float64

	// Step is the inner circle's angular step per point, in radians.
	Step float64

	// BorderStep is the angular step used to sample the border.
	// Zero disables the border.
	BorderStep float64

	// CrossWidth is the arm length of the origin cross.
	// Zero disables the cross.
	CrossWidth float64

	Style  StrokeStyle
	Colors Colors

	// Options are passed to [Spirograph.Trace].
	Options []TraceOption
}

// Render draws d into c and returns the trace of the curve.
func (d *Drawing) Render(ctx context.Context, c Canvas) (*Trace, error) {
	if d.Spiro == nil {
		return nil, errors.New("spiro: drawing has no spirograph")
	}
	frame := c.Origin()

	if d.CrossWidth > 0 {
		cross := Cross{Center: Pt(0, 0), Width: d.CrossWidth}
		if err := cross.Draw(c, frame, d.Colors.Cross, d.Style); err != nil {
			return nil, err
		}
	}
	if d.BorderStep > 0 {
		if err := d.Spiro.DrawBorder(c, frame, d.Colors.Border, d.Style, d.BorderStep); err != nil {
			return nil, err
		}
	}

	tr, err := d.Spiro.Draw(ctx, c, frame, d.Colors.Curve, d.Style, d.PenOffset, d.Step, d.Options...)
	if err != nil {
		return tr, err
	}
	Logger().Debug("spiro: drawing rendered",
		"points", tr.Path.Len(),
		"policy", tr.Policy,
		"rotations", tr.Rotations)
	return tr, nil
}
