package spiro

import (
	"fmt"
	"math"
)

// FullTurn is one complete revolution in radians.
const FullTurn = 2 * math.Pi

// Circle is a circle with an angular position.
//
// Angle is unbounded: it accumulates across full turns and is never wrapped
// into [0, 2π). A negative angle is a rotation in the opposite sense. For
// circles that are only drawn, Angle is the configured sweep of the border.
type Circle struct {
	Center Point
	Angle  float64
	Radius float64
}

// NewCircle creates a circle. The radius must be positive and finite.
func NewCircle(center Point, angle, radius float64) (Circle, error) {
	if err := checkRadius(radius); err != nil {
		return Circle{}, err
	}
	return Circle{Center: center, Angle: angle, Radius: radius}, nil
}

func checkRadius(r float64) error {
	if r <= 0 || math.IsNaN(r) || math.IsInf(r, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidRadius, r)
	}
	return nil
}

// WithAngle returns a copy of c turned to angle.
func (c Circle) WithAngle(angle float64) Circle {
	c.Angle = angle
	return c
}

// ArcLength returns the signed length of rim travelled to reach Angle.
func (c Circle) ArcLength() float64 {
	return c.Angle * c.Radius
}

// AngleFromArc returns the angle at which c has travelled arc along its rim.
func (c Circle) AngleFromArc(arc float64) float64 {
	return arc / c.Radius
}

// SetAngleFromArc turns c so that its ArcLength equals arc.
func (c *Circle) SetAngleFromArc(arc float64) {
	c.Angle = c.AngleFromArc(arc)
}

// PointAt returns the point on the ray at the current angle, offset radius
// units inward from the rim. An offset of 0 is the rim point.
func (c Circle) PointAt(offset float64) Point {
	return c.Center.Add(Polar(c.Angle, c.Radius-offset))
}

// MaxBorderPoints bounds the number of points of a border path.
const MaxBorderPoints = DefaultMaxSteps

// BorderPath samples the rim from angle 0 to the configured sweep Angle,
// stepping by step radians. Points are placed in frame offset by Center.
// The last step is shortened so the path ends exactly on the sweep.
// A step that would need more than MaxBorderPoints points is rejected.
func (c Circle) BorderPath(frame Origin, step float64) (*Polyline, error) {
	if err := checkStep(step); err != nil {
		return nil, err
	}

	if math.IsNaN(c.Angle) || math.IsInf(c.Angle, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSweep, c.Angle)
	}

	local := Circle{Radius: c.Radius}
	frame = frame.Offset(c.Center)
	sweep := math.Abs(c.Angle)
	dir := math.Copysign(1, c.Angle)

	// Steps landing within rounding error of the sweep are not repeated.
	steps := math.Ceil(sweep/step - 1e-9)
	if steps > MaxBorderPoints {
		return nil, fmt.Errorf("%w: %v needs more than %d border points", ErrInvalidStep, step, MaxBorderPoints)
	}
	n := int(steps)

	b := BuildPolyline().Grow(n + 1).MoveTo(frame.Offset(local.PointAt(0)).Point())
	for i := 1; i <= n; i++ {
		swept := sweep
		if i < n {
			swept = float64(i) * step
		}
		local.Angle = dir * swept
		b.LineTo(frame.Offset(local.PointAt(0)).Point())
	}
	return b.Build()
}

func checkStep(step float64) error {
	if step <= 0 || math.IsNaN(step) || math.IsInf(step, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidStep, step)
	}
	return nil
}
