package spiro

import "math"

// Policy selects when a trace stops.
type Policy int

const (
	// PolicyClosure stops once the outer circle has turned at least once and
	// the pen is back within range of its start.
	PolicyClosure Policy = iota

	// PolicySweep stops once the outer circle has turned through a fixed
	// sweep, whether or not the curve has closed.
	PolicySweep
)

func (p Policy) String() string {
	switch p {
	case PolicyClosure:
		return "closure"
	case PolicySweep:
		return "sweep"
	default:
		return "unknown"
	}
}

const (
	// DefaultRange is the closure tolerance in pixels.
	DefaultRange = 1.0

	// DefaultSweep is 50 full turns of the outer circle.
	DefaultSweep = 100 * math.Pi

	// DefaultMaxSteps bounds a closure trace.
	DefaultMaxSteps = 4_000_000
)

// TraceOption configures a trace.
//
// Example:
//
//	// Closure detection with a looser tolerance
//	tr, err := s.Trace(ctx, frame, 50, 0.005, spiro.WithRange(2))
//
//	// Fixed 10-turn sweep
//	tr, err := s.Trace(ctx, frame, 50, 0.005,
//	    spiro.WithPolicy(spiro.PolicySweep), spiro.WithSweep(20*math.Pi))
type TraceOption func(*traceOptions)

type traceOptions struct {
	policy   Policy
	rng      float64
	sweep    float64
	maxSteps int
	fallback bool
}

func defaultTraceOptions() traceOptions {
	return traceOptions{
		policy:   PolicyClosure,
		rng:      DefaultRange,
		sweep:    DefaultSweep,
		maxSteps: DefaultMaxSteps,
	}
}

// WithPolicy selects the termination policy. Default: PolicyClosure.
func WithPolicy(p Policy) TraceOption {
	return func(o *traceOptions) {
		o.policy = p
	}
}

// WithRange sets the distance from the start point below which the curve
// counts as closed. Default: DefaultRange.
func WithRange(r float64) TraceOption {
	return func(o *traceOptions) {
		o.rng = r
	}
}

// WithSweep sets the total outer-circle rotation, in radians, traced under
// PolicySweep and by the fallback. Default: DefaultSweep.
func WithSweep(sweep float64) TraceOption {
	return func(o *traceOptions) {
		o.sweep = sweep
	}
}

// WithMaxSteps caps the number of steps of a closure trace.
// A negative value removes the cap; the trace is then bounded only by its
// context. Zero selects DefaultMaxSteps.
func WithMaxSteps(n int) TraceOption {
	return func(o *traceOptions) {
		if n == 0 {
			n = DefaultMaxSteps
		}
		o.maxSteps = n
	}
}

// WithFallback makes a closure trace that runs out of steps retrace the
// curve under PolicySweep instead of returning ErrNotClosed.
func WithFallback(enabled bool) TraceOption {
	return func(o *traceOptions) {
		o.fallback = enabled
	}
}
