package spiro

import (
	"context"
	"errors"
	"fmt"
	"math"
)

// ctxCheckInterval is how many steps run between context polls.
const ctxCheckInterval = 4096

// Spirograph is an inner circle rolling inside an outer circle.
//
// Both circles are immutable once constructed; the rolling motion is carried
// in a separate State so that a single step can be computed and tested on
// its own.
type Spirograph struct {
	Outer Circle
	Inner Circle
}

// New creates a spirograph whose outer circle is centered at center.
// Both circles start with a full-turn sweep, so [Circle.BorderPath] draws
// them completely.
func New(center Point, outerRadius, innerRadius float64) (*Spirograph, error) {
	outer, err := NewCircle(center, FullTurn, outerRadius)
	if err != nil {
		return nil, fmt.Errorf("outer circle: %w", err)
	}
	inner, err := NewCircle(center, FullTurn, innerRadius)
	if err != nil {
		return nil, fmt.Errorf("inner circle: %w", err)
	}
	return &Spirograph{Outer: outer, Inner: inner}, nil
}

// State is the position of the rolling circles at one step.
//
// InnerCenter is relative to the outer circle's center.
type State struct {
	InnerAngle  float64
	OuterAngle  float64
	InnerCenter Point
}

// Start returns the state with both circles at angle zero.
func (s *Spirograph) Start() State {
	return s.settle(State{})
}

// Advance turns the inner circle by step radians and rolls the outer circle
// to match. It does not modify s.
func (s *Spirograph) Advance(st State, step float64) State {
	st.InnerAngle += step
	return s.settle(st)
}

// settle derives the outer angle and inner center from the inner angle.
// Rolling without slipping means both rims cover the same arc length in
// opposite senses.
func (s *Spirograph) settle(st State) State {
	inner := s.Inner.WithAngle(st.InnerAngle)
	outer := Circle{Radius: s.Outer.Radius}
	outer.SetAngleFromArc(-inner.ArcLength())

	st.OuterAngle = outer.Angle
	st.InnerCenter = outer.PointAt(s.Inner.Radius)
	return st
}

// Pen returns the pen position for st, penOffset units in from the inner
// rim, in frame coordinates. An offset equal to the inner radius puts the
// pen at the inner circle's center.
func (s *Spirograph) Pen(st State, frame Origin, penOffset float64) Origin {
	inner := Circle{Center: st.InnerCenter, Angle: st.InnerAngle, Radius: s.Inner.Radius}
	return frame.Offset(s.Outer.Center).Offset(inner.PointAt(penOffset))
}

// Trace is the outcome of tracing a spirograph curve.
type Trace struct {
	// Path runs from the pen's start through every step taken.
	Path *Polyline

	// Steps is the number of steps taken, one per point after the start.
	Steps int

	// Closed reports whether the last point is within range of the start.
	Closed bool

	// Policy is the policy that produced Path. It differs from the
	// requested policy after a fallback.
	Policy Policy

	// Final is the state after the last step.
	Final State

	// Rotations is the signed number of outer-circle turns. Rolling inside
	// the outer circle turns it in the negative sense.
	Rotations float64

	// InnerRotations is the number of turns of the inner circle.
	InnerRotations float64
}

// Trace rolls the inner circle by step radians at a time and records the
// pen, penOffset units in from the inner rim. frame is the coordinate frame
// the outer circle's center is expressed in.
//
// Under PolicyClosure (the default) the trace ends once the outer circle has
// made a full turn and the pen is back within range of its start. Ratios of
// radii that never close run into the step budget; the partial trace is then
// returned together with an error wrapping ErrNotClosed, unless WithFallback
// is set. A cancelled ctx stops the trace with ctx.Err().
func (s *Spirograph) Trace(ctx context.Context, frame Origin, penOffset, step float64, opts ...TraceOption) (*Trace, error) {
	o := defaultTraceOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if err := checkStep(step); err != nil {
		return nil, err
	}
	if math.IsNaN(penOffset) || math.IsInf(penOffset, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPenOffset, penOffset)
	}
	if o.rng < 0 || math.IsNaN(o.rng) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRange, o.rng)
	}
	switch o.policy {
	case PolicyClosure, PolicySweep:
	default:
		return nil, fmt.Errorf("spiro: unknown trace policy %d", int(o.policy))
	}
	if o.policy == PolicySweep || o.fallback {
		if o.sweep <= 0 || math.IsNaN(o.sweep) || math.IsInf(o.sweep, 0) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidSweep, o.sweep)
		}
	}

	tr, err := s.trace(ctx, frame, penOffset, step, o.policy, &o)
	if errors.Is(err, ErrNotClosed) && o.fallback {
		Logger().Warn("spiro: curve did not close, retracing with fixed sweep",
			"steps", tr.Steps, "sweep", o.sweep)
		return s.trace(ctx, frame, penOffset, step, PolicySweep, &o)
	}
	return tr, err
}

func (s *Spirograph) trace(ctx context.Context, frame Origin, penOffset, step float64, policy Policy, o *traceOptions) (*Trace, error) {
	log := Logger()
	log.Debug("spiro: trace started",
		"policy", policy,
		"outer", s.Outer.Radius,
		"inner", s.Inner.Radius,
		"pen", penOffset,
		"step", step)

	st := s.Start()
	start := s.Pen(st, frame, penOffset)
	last := start

	b := BuildPolyline().MoveTo(start.Point())
	if policy == PolicySweep {
		b.Grow(s.sweepSteps(o.sweep, step))
	}

	tr := &Trace{Policy: policy}
	var err error
	for {
		if policy == PolicySweep && st.OuterAngle <= -o.sweep {
			break
		}
		if policy == PolicyClosure && o.maxSteps >= 0 && tr.Steps >= o.maxSteps {
			err = fmt.Errorf("%w: %d steps", ErrNotClosed, tr.Steps)
			break
		}
		if tr.Steps%ctxCheckInterval == 0 {
			if cerr := ctx.Err(); cerr != nil {
				err = cerr
				break
			}
		}

		st = s.Advance(st, step)
		last = s.Pen(st, frame, penOffset)
		b.LineTo(last.Point())
		tr.Steps++

		// The first turn is excluded: the pen is still near its start there.
		if policy == PolicyClosure && math.Abs(st.OuterAngle) > FullTurn && last.Within(start, o.rng) {
			break
		}
	}

	path, berr := b.Build()
	if berr != nil {
		return nil, berr
	}
	tr.Path = path
	tr.Final = st
	tr.Closed = last.Within(start, o.rng) && tr.Steps > 0
	tr.Rotations = st.OuterAngle / FullTurn
	tr.InnerRotations = st.InnerAngle / FullTurn

	log.Debug("spiro: trace finished",
		"steps", tr.Steps,
		"closed", tr.Closed,
		"rotations", tr.Rotations,
		"inner_rotations", tr.InnerRotations)
	return tr, err
}

// sweepSteps estimates the number of steps needed to turn the outer circle
// through sweep radians.
func (s *Spirograph) sweepSteps(sweep, step float64) int {
	n := sweep * s.Outer.Radius / (s.Inner.Radius * step)
	if n > DefaultMaxSteps {
		return DefaultMaxSteps
	}
	return int(n) + 1
}
