package spiro

import (
	"context"
	"errors"
	"math"
	"testing"
)

// referencePen evaluates the rolling pen in closed form: the inner center
// sits R-r from the outer center at the outer angle, and the pen sits r-p
// from the inner center at the inner angle.
func referencePen(outerR, innerR, pen, innerAngle float64) Point {
	outerAngle := -innerAngle * innerR / outerR
	return Polar(outerAngle, outerR-innerR).Add(Polar(innerAngle, innerR-pen))
}

func mustNew(t *testing.T, outer, inner float64) *Spirograph {
	t.Helper()
	s, err := New(Pt(0, 0), outer, inner)
	if err != nil {
		t.Fatalf("New(%v, %v) = %v", outer, inner, err)
	}
	return s
}

func TestNew_RejectsZeroRadius(t *testing.T) {
	tests := []struct {
		name         string
		outer, inner float64
	}{
		{"zero outer", 0, 100},
		{"zero inner", 300, 0},
		{"negative inner", 300, -1},
		{"nan outer", math.NaN(), 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(Pt(0, 0), tt.outer, tt.inner); !errors.Is(err, ErrInvalidRadius) {
				t.Errorf("New() error = %v, want ErrInvalidRadius", err)
			}
		})
	}
}

func TestSpirograph_Start(t *testing.T) {
	s := mustNew(t, 300, 100)
	st := s.Start()

	if st.InnerAngle != 0 || st.OuterAngle != 0 {
		t.Errorf("Start() angles = %v/%v, want 0/0", st.InnerAngle, st.OuterAngle)
	}
	if !st.InnerCenter.Approx(Pt(200, 0), 1e-12) {
		t.Errorf("Start() inner center = %v, want (200, 0)", st.InnerCenter)
	}
	if got := s.Pen(st, NewOrigin(400, 500), 0); !got.Point().Approx(Pt(700, 500), 1e-12) {
		t.Errorf("Pen() at start = %v, want (700, 500)", got)
	}
}

func TestSpirograph_AdvanceIsPure(t *testing.T) {
	s := mustNew(t, 300, 100)
	before := *s
	st := s.Start()

	a := s.Advance(st, 0.3)
	b := s.Advance(st, 0.3)
	if a != b {
		t.Errorf("Advance is not deterministic: %+v vs %+v", a, b)
	}
	if st.InnerAngle != 0 {
		t.Errorf("Advance modified its input state: %+v", st)
	}
	if *s != before {
		t.Errorf("Advance modified the spirograph: %+v", *s)
	}

	if math.Abs(a.OuterAngle-(-0.1)) > 1e-15 {
		t.Errorf("OuterAngle = %v, want -0.1", a.OuterAngle)
	}
	if d := a.InnerCenter.Length(); math.Abs(d-200) > 1e-9 {
		t.Errorf("inner center is %v from the outer center, want 200", d)
	}
}

func TestSpirograph_PenAtInnerCenter(t *testing.T) {
	s := mustNew(t, 300, 100)
	frame := NewOrigin(10, 20)
	st := s.Start()
	for range 50 {
		st = s.Advance(st, 0.37)
		got := s.Pen(st, frame, s.Inner.Radius)
		want := frame.Offset(st.InnerCenter)
		if !got.Point().Approx(want.Point(), 1e-9) {
			t.Fatalf("pen offset = radius: pen %v, inner center %v", got, want)
		}
	}
}

func TestSpirograph_PenOnInnerRim(t *testing.T) {
	s := mustNew(t, 300, 100)
	st := s.Start()
	for range 50 {
		st = s.Advance(st, 0.21)
		d := s.Pen(st, Origin{}, 0).Point().Distance(st.InnerCenter)
		if math.Abs(d-s.Inner.Radius) > 1e-9 {
			t.Fatalf("pen offset 0 is %v from the inner center, want %v", d, s.Inner.Radius)
		}
	}
}

func TestTrace_ClosesThreeToOne(t *testing.T) {
	s := mustNew(t, 300, 100)
	const (
		step = 0.01
		rng  = 1.0
	)

	tr, err := s.Trace(context.Background(), Origin{}, 0, step, WithRange(rng))
	if err != nil {
		t.Fatalf("Trace() = %v", err)
	}
	if !tr.Closed {
		t.Fatal("Trace() did not report closure")
	}
	if tr.Policy != PolicyClosure {
		t.Errorf("Policy = %v, want closure", tr.Policy)
	}
	if tr.Path.Len() != tr.Steps+1 {
		t.Errorf("Len() = %d, want Steps+1 = %d", tr.Path.Len(), tr.Steps+1)
	}
	if d := tr.Path.End().Distance(tr.Path.Start()); d > rng {
		t.Errorf("final point is %v from the start, want <= %v", d, rng)
	}

	// Closure needs the inner angle to reach a multiple of 2π while the outer
	// angle also completes a turn: θ = 6π, φ = -2π, crossed on the first step
	// past 6π.
	wantSteps := int(math.Floor(6*math.Pi/step)) + 1
	if tr.Steps != wantSteps {
		t.Errorf("Steps = %d, want %d", tr.Steps, wantSteps)
	}
	if math.Abs(tr.InnerRotations-3) > step {
		t.Errorf("InnerRotations = %v, want ~3", tr.InnerRotations)
	}
	if math.Abs(tr.Rotations-(-1)) > step {
		t.Errorf("Rotations = %v, want ~-1", tr.Rotations)
	}

	// Every point matches the closed-form reference.
	for i, p := range tr.Path.All() {
		want := referencePen(300, 100, 0, float64(i)*step)
		if !p.Approx(want, 1e-6) {
			t.Fatalf("point %d = %v, want %v", i, p, want)
		}
	}
}

func TestTrace_ClosesReferenceDrawing(t *testing.T) {
	s := mustNew(t, 350, 250)
	tr, err := s.Trace(context.Background(), NewOrigin(400, 500), 50, 0.005)
	if err != nil {
		t.Fatalf("Trace() = %v", err)
	}
	// 350:250 = 7:5, so the pattern repeats after 5 outer turns.
	if math.Abs(tr.Rotations-(-5)) > 0.01 {
		t.Errorf("Rotations = %v, want ~-5", tr.Rotations)
	}
	if math.Abs(tr.InnerRotations-7) > 0.01 {
		t.Errorf("InnerRotations = %v, want ~7", tr.InnerRotations)
	}
	if d := tr.Path.End().Distance(tr.Path.Start()); d > DefaultRange {
		t.Errorf("final point is %v from the start", d)
	}
}

func TestTrace_Deterministic(t *testing.T) {
	s := mustNew(t, 300, 120)
	frame := NewOrigin(400, 500)

	a, err := s.Trace(context.Background(), frame, 30, 0.02)
	if err != nil {
		t.Fatalf("Trace() = %v", err)
	}
	b, err := s.Trace(context.Background(), frame, 30, 0.02)
	if err != nil {
		t.Fatalf("Trace() = %v", err)
	}
	diff(t, a.Path.Points(), b.Path.Points())
	if a.Steps != b.Steps || a.Final != b.Final {
		t.Errorf("traces differ: %d/%+v vs %d/%+v", a.Steps, a.Final, b.Steps, b.Final)
	}
}

func TestTrace_FrameTranslatesCurve(t *testing.T) {
	s := mustNew(t, 300, 100)
	frame := NewOrigin(400, 500)

	local, err := s.Trace(context.Background(), Origin{}, 20, 0.05)
	if err != nil {
		t.Fatalf("Trace() = %v", err)
	}
	moved, err := s.Trace(context.Background(), frame, 20, 0.05)
	if err != nil {
		t.Fatalf("Trace() = %v", err)
	}

	want := local.Path.Points()
	for i := range want {
		want[i] = frame.Offset(want[i]).Point()
	}
	diff(t, want, moved.Path.Points(), approx)
}

func TestTrace_OuterCenterShiftsCurve(t *testing.T) {
	at0 := mustNew(t, 300, 100)
	shifted, err := New(Pt(50, -25), 300, 100)
	if err != nil {
		t.Fatalf("New() = %v", err)
	}

	a, err := at0.Trace(context.Background(), Origin{}, 0, 0.05)
	if err != nil {
		t.Fatalf("Trace() = %v", err)
	}
	b, err := shifted.Trace(context.Background(), Origin{}, 0, 0.05)
	if err != nil {
		t.Fatalf("Trace() = %v", err)
	}

	want := a.Path.Points()
	for i := range want {
		want[i] = want[i].Add(Pt(50, -25))
	}
	diff(t, want, b.Path.Points(), approx)
}

func TestTrace_RejectsBadStep(t *testing.T) {
	s := mustNew(t, 300, 100)
	for _, step := range []float64{0, -0.01, math.NaN(), math.Inf(1)} {
		tr, err := s.Trace(context.Background(), Origin{}, 0, step)
		if !errors.Is(err, ErrInvalidStep) {
			t.Errorf("Trace(step=%v) error = %v, want ErrInvalidStep", step, err)
		}
		if tr != nil {
			t.Errorf("Trace(step=%v) returned a trace", step)
		}
	}
}

func TestTrace_RejectsNonFinitePenOffset(t *testing.T) {
	s := mustNew(t, 300, 100)
	for _, pen := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		tr, err := s.Trace(context.Background(), Origin{}, pen, 0.01, WithFallback(true))
		if !errors.Is(err, ErrInvalidPenOffset) {
			t.Errorf("Trace(pen=%v) error = %v, want ErrInvalidPenOffset", pen, err)
		}
		if tr != nil {
			t.Errorf("Trace(pen=%v) returned a trace", pen)
		}
	}
}

func TestTrace_RejectsBadOptions(t *testing.T) {
	s := mustNew(t, 300, 100)
	ctx := context.Background()

	if _, err := s.Trace(ctx, Origin{}, 0, 0.01, WithRange(-1)); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("negative range error = %v, want ErrInvalidRange", err)
	}
	if _, err := s.Trace(ctx, Origin{}, 0, 0.01, WithPolicy(PolicySweep), WithSweep(0)); !errors.Is(err, ErrInvalidSweep) {
		t.Errorf("zero sweep error = %v, want ErrInvalidSweep", err)
	}
	if _, err := s.Trace(ctx, Origin{}, 0, 0.01, WithPolicy(Policy(7))); err == nil {
		t.Error("unknown policy accepted")
	}
}

func TestTrace_SweepPolicy(t *testing.T) {
	s := mustNew(t, 300, 100)
	const sweep = 4 * math.Pi

	tr, err := s.Trace(context.Background(), Origin{}, 0, 0.01,
		WithPolicy(PolicySweep), WithSweep(sweep))
	if err != nil {
		t.Fatalf("Trace() = %v", err)
	}
	if tr.Policy != PolicySweep {
		t.Errorf("Policy = %v, want sweep", tr.Policy)
	}
	if tr.Final.OuterAngle > -sweep {
		t.Errorf("stopped at outer angle %v, before -%v", tr.Final.OuterAngle, sweep)
	}
	prev := s.Advance(tr.Final, -0.01)
	if prev.OuterAngle <= -sweep-1e-9 {
		t.Errorf("ran past the sweep: previous outer angle %v", prev.OuterAngle)
	}
	if math.Abs(tr.Rotations-(-2)) > 0.01 {
		t.Errorf("Rotations = %v, want ~-2", tr.Rotations)
	}
}

func TestTrace_NotClosedWithinBudget(t *testing.T) {
	// An irrational ratio of radii never repeats.
	s := mustNew(t, 300, 100*math.Sqrt2)
	const budget = 20000

	tr, err := s.Trace(context.Background(), Origin{}, 0, 0.01, WithMaxSteps(budget))
	if !errors.Is(err, ErrNotClosed) {
		t.Fatalf("Trace() error = %v, want ErrNotClosed", err)
	}
	if tr == nil {
		t.Fatal("Trace() returned no partial trace")
	}
	if tr.Steps != budget || tr.Path.Len() != budget+1 {
		t.Errorf("Steps/Len = %d/%d, want %d/%d", tr.Steps, tr.Path.Len(), budget, budget+1)
	}
	if tr.Closed {
		t.Error("partial trace reported as closed")
	}
}

func TestTrace_FallbackToSweep(t *testing.T) {
	s := mustNew(t, 300, 100*math.Sqrt2)

	tr, err := s.Trace(context.Background(), Origin{}, 0, 0.01,
		WithMaxSteps(1000), WithFallback(true), WithSweep(2*math.Pi))
	if err != nil {
		t.Fatalf("Trace() = %v", err)
	}
	if tr.Policy != PolicySweep {
		t.Errorf("Policy = %v, want sweep after fallback", tr.Policy)
	}
	if tr.Final.OuterAngle > -2*math.Pi {
		t.Errorf("fallback stopped early at outer angle %v", tr.Final.OuterAngle)
	}
}

func TestTrace_Cancelled(t *testing.T) {
	s := mustNew(t, 300, 100*math.Sqrt2)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tr, err := s.Trace(ctx, Origin{}, 0, 0.01, WithMaxSteps(-1))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Trace() error = %v, want context.Canceled", err)
	}
	if tr == nil || tr.Path.Len() != 1 {
		t.Errorf("cancelled trace should hold only the start point")
	}
}

func TestTrace_ZeroRangeNeverCloses(t *testing.T) {
	s := mustNew(t, 300, 100)
	_, err := s.Trace(context.Background(), Origin{}, 0, 0.01, WithRange(0), WithMaxSteps(5000))
	if !errors.Is(err, ErrNotClosed) {
		t.Errorf("Trace() error = %v, want ErrNotClosed", err)
	}
}

func TestPolicy_String(t *testing.T) {
	if PolicyClosure.String() != "closure" || PolicySweep.String() != "sweep" || Policy(9).String() != "unknown" {
		t.Error("unexpected Policy names")
	}
}
