// Package spiro traces spirograph curves.
//
// # Overview
//
// A small inner circle rolls without slipping around the inside of a larger
// outer circle. A pen mounted inside the inner circle traces a hypotrochoid.
// spiro advances the two circles step by step, coupling them through their
// arc lengths, and stops once the traced curve returns to its start.
//
// # Quick Start
//
//	s, err := spiro.New(spiro.Pt(0, 0), 350, 250)
//	if err != nil {
//	    return err
//	}
//
//	// Trace until the curve closes within one unit of its start.
//	tr, err := s.Trace(ctx, spiro.Origin{X: 400, Y: 500}, 50, 0.005,
//	    spiro.WithRange(1.0))
//	if err != nil {
//	    return err
//	}
//	fmt.Println(tr.Path.Len(), tr.Rotations)
//
// # Rendering
//
// The package does not rasterize anything itself. Drawings are stroked into
// a [Sink]; the canvas sub-package provides one backed by gogpu/gg that
// writes PNG, JPEG, BMP and TIFF files.
//
// # Coordinate System
//
// Coordinates follow the raster convention used by gg:
//   - X increases right
//   - Y increases down
//   - Angles in radians, measured with cos/sin, never wrapped
//
// Nested frames are expressed with [Origin]: canvas origin, then the outer
// circle's center, then the inner circle's center.
package spiro
