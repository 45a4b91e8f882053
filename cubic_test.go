package bezier

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

// straightTen is a straight cubic from (0, 0) to (10, 0) with its handles
// at the thirds, so that it traces its chord at constant speed.
var straightTen = Cubic[float64]{
	Pt(0.0, 0.0),
	Pt(10.0/3.0, 0.0),
	Pt(20.0/3.0, 0.0),
	Pt(10.0, 0.0),
}

// arch is a symmetric upward arch.
var arch = Cubic[float64]{
	Pt(0.0, 0.0),
	Pt(0.0, 10.0),
	Pt(10.0, 10.0),
	Pt(10.0, 0.0),
}

func TestCubicDerivative(t *testing.T) {
	// y = x²
	c := Cubic[float64]{
		Pt(0.0, 0.0),
		Pt(1.0/3.0, 0.0),
		Pt(2.0/3.0, 1.0/3.0),
		Pt(1.0, 1.0),
	}

	const n = 10
	const delta = 1e-6
	for i := 0; i < n+1; i++ {
		ts := float64(i) / float64(n)
		p := c.Eval(ts)
		p1 := c.Eval(ts + delta)
		dApprox := p1.Sub(p).Mul(1.0 / delta)
		d := c.Derivative(ts)
		if l := d.Sub(dApprox).Hypot(); l >= delta*2 {
			t.Errorf("got difference of %g, want at most %g", l, delta*2)
		}
	}
}

func TestCubicSecondDerivative(t *testing.T) {
	const n = 10
	const delta = 1e-6
	for i := 0; i < n+1; i++ {
		ts := float64(i) / float64(n)
		d := arch.Derivative(ts)
		d1 := arch.Derivative(ts + delta)
		sdApprox := d1.Sub(d).Mul(1.0 / delta)
		sd := arch.SecondDerivative(ts)
		if l := sd.Sub(sdApprox).Hypot(); l >= delta*200 {
			t.Errorf("at t=%g: got difference of %g", ts, l)
		}
	}
}

func TestCubicEvalEndpoints(t *testing.T) {
	c := Cubic[float64]{
		Pt(0.1, 0.2),
		Pt(0.3, 0.7),
		Pt(0.9, 0.4),
		Pt(0.7, 0.1),
	}
	// The endpoints are returned exactly, not merely approximately.
	diff(t, c.P0, c.Eval(0))
	diff(t, c.P3, c.Eval(1))
}

func TestCubicSubdivide(t *testing.T) {
	for _, ts := range []float64{0.25, 0.5, 0.8} {
		left, right := arch.Subdivide(ts)
		diff(t, arch.P0, left.P0)
		diff(t, arch.P3, right.P3)
		diff(t, left.P3, right.P0)
		for i := 0; i < 11; i++ {
			u := float64(i) / 10
			diff(t, arch.Eval(u*ts), left.Eval(u), cmpopts.EquateApprox(0, 1e-12))
			diff(t, arch.Eval(ts+u*(1-ts)), right.Eval(u), cmpopts.EquateApprox(0, 1e-12))
		}
	}
}

func TestCubicSubsegment(t *testing.T) {
	diff(t, arch, arch.Subsegment(0, 1))

	sub := arch.Subsegment(0.2, 0.8)
	for i := 0; i < 11; i++ {
		u := float64(i) / 10
		diff(t, arch.Eval(0.2+u*0.6), sub.Eval(u), cmpopts.EquateApprox(0, 1e-12))
	}
}

func TestCubicSubsegmentReversed(t *testing.T) {
	// Swapped bounds reverse the direction of travel.
	sub := arch.Subsegment(0.8, 0.2)
	for i := 0; i < 11; i++ {
		u := float64(i) / 10
		diff(t, arch.Eval(0.8-u*0.6), sub.Eval(u), cmpopts.EquateApprox(0, 1e-12))
	}
}

func TestCubicSubsegmentFullReversal(t *testing.T) {
	// The full range with swapped bounds is the reversed curve, control
	// point for control point.
	diff(t, arch.Reversed(), arch.Subsegment(1, 0))
}

func TestCubicReversed(t *testing.T) {
	r := arch.Reversed()
	diff(t, arch.P0, r.P3)
	diff(t, arch.Eval(0.3), r.Eval(0.7), cmpopts.EquateApprox(0, 1e-12))
}

func TestCubicHandleBounds(t *testing.T) {
	diff(t, Rect[float64]{0, 0, 10, 10}, arch.HandleBounds())
}

func TestCubicBounds(t *testing.T) {
	// The arch's highest point is at t=0.5, y=7.5; x spans the endpoints.
	diff(t, Rect[float64]{0, 0, 10, 7.5}, arch.Bounds(0), cmpopts.EquateApprox(0, 1e-9))
}

func TestCubicBoundsPadding(t *testing.T) {
	// Padding applies around interior extrema only; the endpoints stay
	// unpadded. The arch has an interior y maximum but no interior x
	// extrema, so only Y1 moves.
	diff(t, Rect[float64]{0, 0, 10, 9.5}, arch.Bounds(2), cmpopts.EquateApprox(0, 1e-9))
}

func TestCubicExtrema(t *testing.T) {
	roots, n := arch.Extrema()
	if n != 1 {
		t.Fatalf("got %d extrema, want 1", n)
	}
	diff(t, 0.5, roots[0], cmpopts.EquateApprox(0, 1e-9))

	_, n = straightTen.Extrema()
	if n != 0 {
		t.Errorf("straight curve: got %d extrema, want 0", n)
	}
}

func TestCubicPeaks(t *testing.T) {
	roots, n := arch.Peaks()
	if n != 1 {
		t.Fatalf("got %d peaks, want 1", n)
	}
	diff(t, 0.5, roots[0], cmpopts.EquateApprox(0, 1e-7))
}

func TestCubicInflections(t *testing.T) {
	// An S-curve has one inflection in the middle.
	s := Cubic[float64]{
		Pt(0.0, 0.0),
		Pt(5.0, 10.0),
		Pt(5.0, -10.0),
		Pt(10.0, 0.0),
	}
	roots, n := s.Inflections()
	if n != 1 {
		t.Fatalf("got %d inflections, want 1", n)
	}
	diff(t, 0.5, roots[0], cmpopts.EquateApprox(0, 1e-9))

	_, n = arch.Inflections()
	if n != 0 {
		t.Errorf("arch: got %d inflections, want 0", n)
	}
}

func TestCubicTangentNormal(t *testing.T) {
	tan := arch.Tangent(0.5)
	diff(t, Vec(1.0, 0.0), tan, cmpopts.EquateApprox(0, 1e-12))
	diff(t, Vec(0.0, 1.0), arch.Normal(0.5), cmpopts.EquateApprox(0, 1e-12))
	diff(t, 0.0, arch.Angle(0.5), cmpopts.EquateApprox(0, 1e-12))
}

func TestCubicTangentDegenerate(t *testing.T) {
	// The handle sits on the start point, so the derivative vanishes at
	// t=0; the tangent falls back to the chord direction.
	c := Cubic[float64]{
		Pt(0.0, 0.0),
		Pt(0.0, 0.0),
		Pt(10.0, 0.0),
		Pt(10.0, 0.0),
	}
	diff(t, Vec(1.0, 0.0), c.Tangent(0), cmpopts.EquateApprox(0, 1e-12))
}

func TestCubicCurvature(t *testing.T) {
	if got := straightTen.Curvature(0.3); got != 0 {
		t.Errorf("straight curve: got curvature %g, want 0", got)
	}

	// A quarter circle of radius 10, via the standard magic-number
	// approximation. Its curvature stays within a few percent of 1/10.
	const kappa = 0.5522847498307936
	quarter := Cubic[float64]{
		Pt(10.0, 0.0),
		Pt(10.0, 10*kappa),
		Pt(10*kappa, 10.0),
		Pt(0.0, 10.0),
	}
	for i := 0; i < 11; i++ {
		ts := float64(i) / 10
		diff(t, 0.1, quarter.Curvature(ts), cmpopts.EquateApprox(0.03, 0))
	}
}

func TestCubicIsLinear(t *testing.T) {
	if !straightTen.IsLinear(1e-12) {
		t.Error("thirds-handle line: want linear")
	}
	if arch.IsLinear(1e-12) {
		t.Error("arch: want not linear")
	}
}

func TestCubicIsStraight(t *testing.T) {
	if !straightTen.IsStraight() {
		t.Error("thirds-handle line: want straight")
	}
	if arch.IsStraight() {
		t.Error("arch: want not straight")
	}

	// Handles collinear with the chord but pointing backwards make the
	// curve retrace itself; that is not straight travel.
	retrace := Cubic[float64]{
		Pt(0.0, 0.0),
		Pt(-5.0, 0.0),
		Pt(15.0, 0.0),
		Pt(10.0, 0.0),
	}
	if retrace.IsStraight() {
		t.Error("retracing curve: want not straight")
	}
}

func TestCubicLength(t *testing.T) {
	diff(t, 10.0, straightTen.Length(), cmpopts.EquateApprox(0, 1e-9))

	// Quarter circle of radius 10: length π·10/2.
	const kappa = 0.5522847498307936
	quarter := Cubic[float64]{
		Pt(10.0, 0.0),
		Pt(10.0, 10*kappa),
		Pt(10*kappa, 10.0),
		Pt(0.0, 10.0),
	}
	diff(t, math.Pi*5, quarter.Length(), cmpopts.EquateApprox(1e-4, 0))
}

func TestCubicArclenBetween(t *testing.T) {
	whole := arch.Length()
	split := arch.ArclenBetween(0, 0.37) + arch.ArclenBetween(0.37, 1)
	diff(t, whole, split, cmpopts.EquateApprox(0, 1e-9))
}

func TestCubicSolveForArclen(t *testing.T) {
	if got := arch.SolveForArclen(-1); got != 0 {
		t.Errorf("negative offset: got %g, want 0", got)
	}
	if got := arch.SolveForArclen(arch.Length() + 1); got != 1 {
		t.Errorf("overshooting offset: got %g, want 1", got)
	}

	// Round trip through the arc-length parameterization.
	for _, ts := range []float64{0.1, 0.37, 0.5, 0.9} {
		s := arch.ArclenBetween(0, ts)
		diff(t, ts, arch.SolveForArclen(s), cmpopts.EquateApprox(0, 1e-6))
	}
}

func TestFindRootExactHitZeroDerivative(t *testing.T) {
	// x³ has its root where the derivative vanishes too; landing exactly
	// on it must return the root instead of degrading to NaN through a
	// 0/0 Newton step.
	f := func(x float64) float64 { return x * x * x }
	df := func(x float64) float64 { return 3 * x * x }
	got := findRoot(f, df, 0, -1, 1, 32, 1e-12)
	if got != 0 {
		t.Fatalf("got %g, want 0", got)
	}
}

func TestCubicNearest(t *testing.T) {
	ts, dist := straightTen.Nearest(Pt(5.0, 3.0))
	diff(t, 0.5, ts, cmpopts.EquateApprox(0, 1e-7))
	diff(t, 3.0, dist, cmpopts.EquateApprox(0, 1e-7))

	// A point on the curve has distance zero.
	ts, dist = arch.Nearest(arch.Eval(0.3))
	diff(t, 0.3, ts, cmpopts.EquateApprox(0, 1e-6))
	if dist > 1e-6 {
		t.Errorf("on-curve point: got distance %g", dist)
	}
}

func TestCubicNearestAtDistance(t *testing.T) {
	// The curve point 3 units away from (5, 3) towards the middle of the
	// line is directly below it.
	ts := straightTen.NearestAtDistance(Pt(5.0, 3.0), 3)
	diff(t, 0.5, ts, cmpopts.EquateApprox(0, 1e-7))
}

func TestCubicParameterOf(t *testing.T) {
	for _, want := range []float64{0, 0.25, 0.6, 1} {
		got, ok := arch.ParameterOf(arch.Eval(want))
		if !ok {
			t.Fatalf("t=%g: point not found on curve", want)
		}
		diff(t, want, got, cmpopts.EquateApprox(0, 1e-6))
	}

	if _, ok := arch.ParameterOf(Pt(5.0, 100.0)); ok {
		t.Error("off-curve point: want no parameter")
	}
}

func TestCubicChord(t *testing.T) {
	diff(t, LineSegment[float64]{Pt(0.0, 0.0), Pt(10.0, 0.0)}, arch.Chord())
}

func TestCubicFloat32(t *testing.T) {
	c := Cubic[float32]{
		Pt[float32](0, 0),
		Pt[float32](0, 10),
		Pt[float32](10, 10),
		Pt[float32](10, 0),
	}
	diff(t, Pt[float32](5, 7.5), c.Eval(0.5), cmpopts.EquateApprox(1e-5, 1e-5))

	ts, dist := c.Nearest(Pt[float32](5, 20))
	diff(t, float32(0.5), ts, cmpopts.EquateApprox(1e-3, 1e-3))
	diff(t, float32(12.5), dist, cmpopts.EquateApprox(1e-3, 1e-3))
}
