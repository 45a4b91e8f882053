package bezier

import "math"

// MaxExtrema is the maximum number of curve-time values [Cubic.Extrema] can
// report: up to two roots of the derivative per axis.
const MaxExtrema = 4

// MaxPeaks is the maximum number of curve-time values [Cubic.Peaks] can
// report.
const MaxPeaks = 3

// Cubic is a cubic Bézier curve. P0 and P3 are the endpoints; P1 and P2 are
// the handles, given in absolute coordinates.
//
// The control points carry no validity requirements: zero-length, linear
// and cusped curves are handled by every operation.
type Cubic[T Float] struct {
	P0 Point[T]
	P1 Point[T]
	P2 Point[T]
	P3 Point[T]
}

// Eval evaluates the curve at parameter t ∈ [0, 1].
//
// The endpoints are returned exactly for t = 0 and t = 1, with no
// floating-point drift.
func (c Cubic[T]) Eval(t T) Point[T] {
	if t == 0 {
		return c.P0
	}
	if t == 1 {
		return c.P3
	}
	mt := 1 - t
	a := Vec2[T](c.P0).Mul(mt * mt * mt)
	b := Vec2[T](c.P1).Mul(mt * mt * 3.0)
	cc := Vec2[T](c.P2).Mul(mt * 3.0)
	d := Vec2[T](c.P3)
	v := a.Add(b.Add(cc.Add(d.Mul(t)).Mul(t)).Mul(t))
	return Point[T](v)
}

// Derivative evaluates the curve's first derivative at t.
func (c Cubic[T]) Derivative(t T) Vec2[T] {
	mt := 1 - t
	d0 := c.P1.Sub(c.P0).Mul(3 * mt * mt)
	d1 := c.P2.Sub(c.P1).Mul(6 * mt * t)
	d2 := c.P3.Sub(c.P2).Mul(3 * t * t)
	return d0.Add(d1).Add(d2)
}

// SecondDerivative evaluates the curve's second derivative at t.
func (c Cubic[T]) SecondDerivative(t T) Vec2[T] {
	mt := 1 - t
	a := c.P2.Sub(c.P1).Sub(c.P1.Sub(c.P0))
	b := c.P3.Sub(c.P2).Sub(c.P2.Sub(c.P1))
	return a.Mul(6 * mt).Add(b.Mul(6 * t))
}

// Tangent returns the unit tangent at t.
//
// A curve whose handle coincides with the adjacent endpoint has a vanishing
// derivative there; within CurveTime of the ends, such a degenerate tangent
// falls back to the direction of the chord, avoiding a zero-length result.
func (c Cubic[T]) Tangent(t T) Vec2[T] {
	e := Eps[T]()
	d := c.Derivative(t)
	if d.IsZero(e.Epsilon) && (t < e.CurveTime || t > 1-e.CurveTime) {
		d = c.P3.Sub(c.P0)
	}
	return d.Normalize()
}

// Normal returns the unit tangent at t rotated by 90°.
func (c Cubic[T]) Normal(t T) Vec2[T] {
	return c.Tangent(t).Turn90()
}

// Angle returns the direction of the tangent at t, in radians.
func (c Cubic[T]) Angle(t T) T {
	return c.Tangent(t).Angle()
}

// Curvature returns the signed curvature at t.
//
// Fully linear curves report exactly 0 without evaluating the curvature
// formula, whose denominator is unstable for vanishing derivatives.
func (c Cubic[T]) Curvature(t T) T {
	if c.IsLinear(Eps[T]().Epsilon) {
		return 0
	}
	fd := c.Derivative(t)
	sd := c.SecondDerivative(t)
	h := fd.Hypot()
	return fd.Cross(sd) / (h * h * h)
}

// Chord returns the segment between the curve's endpoints.
func (c Cubic[T]) Chord() LineSegment[T] {
	return LineSegment[T]{c.P0, c.P3}
}

// Reversed returns the curve traversed in the opposite direction, with
// endpoints and handles swapped in order.
func (c Cubic[T]) Reversed() Cubic[T] {
	return Cubic[T]{c.P3, c.P2, c.P1, c.P0}
}

// Subdivide splits the curve at parameter t using de Casteljau's algorithm.
// The concatenation of the two returned curves is geometrically identical
// to the original.
func (c Cubic[T]) Subdivide(t T) (Cubic[T], Cubic[T]) {
	p01 := c.P0.Lerp(c.P1, t)
	p12 := c.P1.Lerp(c.P2, t)
	p23 := c.P2.Lerp(c.P3, t)
	p012 := p01.Lerp(p12, t)
	p123 := p12.Lerp(p23, t)
	pm := p012.Lerp(p123, t)
	return Cubic[T]{c.P0, p01, p012, pm}, Cubic[T]{pm, p123, p23, c.P3}
}

// Subsegment extracts the sub-curve over the parameter range [from, to] by
// composing two subdivisions. If from > to, the result is the reversed
// sub-curve over [to, from].
func (c Cubic[T]) Subsegment(from, to T) Cubic[T] {
	flip := from > to
	if flip {
		from, to = to, from
	}
	out := c
	if from > 0 {
		_, out = out.Subdivide(from)
	}
	if to < 1 {
		out, _ = out.Subdivide((to - from) / (1 - from))
	}
	if flip {
		out = out.Reversed()
	}
	return out
}

// HandleBounds returns the bounding box of all four control points. It
// always contains the curve, but is not tight.
func (c Cubic[T]) HandleBounds() Rect[T] {
	return NewRectFromPoints(c.P0, c.P3).UnionPoint(c.P1).UnionPoint(c.P2)
}

// Bounds returns the tight bounding box of the curve, found by solving for
// the curve's axis-aligned extrema.
//
// The box grows by padding on each side around interior extrema only; the
// endpoints stay unpadded. Stroked-path bounds rely on this asymmetry: caps
// are accounted for separately, while interior turns need the stroke
// radius.
func (c Cubic[T]) Bounds(padding T) Rect[T] {
	var r Rect[T]
	r.X0, r.X1 = boundsOneAxis(c.P0.X, c.P1.X, c.P2.X, c.P3.X, padding)
	r.Y0, r.Y1 = boundsOneAxis(c.P0.Y, c.P1.Y, c.P2.Y, c.P3.Y, padding)
	return r
}

func boundsOneAxis[T Float](v0, v1, v2, v3, padding T) (lo, hi T) {
	e := Eps[T]()
	lo = min(v0, v3)
	hi = max(v0, v3)
	// The derivative of one coordinate is a quadratic in t; its interior
	// roots are the axis extrema.
	a := 3*(v1-v2) - v0 + v3
	b := 2*(v0+v2) - 4*v1
	cc := v1 - v0
	roots, n := SolveQuadratic(a, b, cc, 0, 1)
	if n == InfiniteRoots {
		return lo, hi
	}
	for _, t := range roots[:n] {
		if t <= e.CurveTime || t >= 1-e.CurveTime {
			continue
		}
		u := 1 - t
		v := u*u*u*v0 + 3*u*u*t*v1 + 3*u*t*t*v2 + t*t*t*v3
		lo = min(lo, v-padding)
		hi = max(hi, v+padding)
	}
	return lo, hi
}

// Extrema returns the curve times of the axis-aligned extrema, up to two
// per axis. Only interior extrema count. The values are in no particular
// order.
func (c Cubic[T]) Extrema() ([MaxExtrema]T, int) {
	var out [MaxExtrema]T
	var outN int
	oneCoord := func(v0, v1, v2, v3 T) {
		a := 3*(v1-v2) - v0 + v3
		b := 2*(v0+v2) - 4*v1
		cc := v1 - v0
		roots, n := SolveQuadratic(a, b, cc, 0, 1)
		if n == InfiniteRoots {
			return
		}
		for _, t := range roots[:n] {
			if t > 0 && t < 1 {
				out[outN] = t
				outN++
			}
		}
	}
	oneCoord(c.P0.X, c.P1.X, c.P2.X, c.P3.X)
	oneCoord(c.P0.Y, c.P1.Y, c.P2.Y, c.P3.Y)
	return out, outN
}

// Peaks returns the curve times where the first and second derivative are
// perpendicular, which includes the curvature extrema. The endpoints are
// excluded; the values are sorted in ascending order.
func (c Cubic[T]) Peaks() ([MaxPeaks]T, int) {
	e := Eps[T]()
	ax := -c.P0.X + 3*c.P1.X - 3*c.P2.X + c.P3.X
	bx := 3*c.P0.X - 6*c.P1.X + 3*c.P2.X
	cx := 3 * (c.P1.X - c.P0.X)
	ay := -c.P0.Y + 3*c.P1.Y - 3*c.P2.Y + c.P3.Y
	by := 3*c.P0.Y - 6*c.P1.Y + 3*c.P2.Y
	cy := 3 * (c.P1.Y - c.P0.Y)
	tMin, tMax := e.CurveTime, 1-e.CurveTime
	roots, n := SolveCubic(
		9*(ax*ax+ay*ay),
		9*(ax*bx+ay*by),
		2*(bx*bx+by*by)+3*(ax*cx+ay*cy),
		bx*cx+by*cy,
		tMin, tMax,
	)
	var out [MaxPeaks]T
	if n == InfiniteRoots {
		return out, 0
	}
	copy(out[:], roots[:n])
	sortRoots(out[:n])
	return out, n
}

// Inflections returns the curve times of the inflection points, up to two,
// sorted in ascending order.
func (c Cubic[T]) Inflections() ([2]T, int) {
	a := c.P1.Sub(c.P0)
	b := c.P2.Sub(c.P1).Sub(a)
	cc := c.P3.Sub(c.P0).Sub(c.P2.Sub(c.P1).Mul(3))
	roots, n := SolveQuadratic(b.Cross(cc), a.Cross(cc), a.Cross(b), 0, 1)
	var out [2]T
	if n == InfiniteRoots {
		return out, 0
	}
	copy(out[:], roots[:n])
	sortRoots(out[:n])
	return out, n
}

// IsLinear reports whether both handles coincide with their respective
// endpoints within epsilon.
func (c Cubic[T]) IsLinear(epsilon T) bool {
	return c.P1.Close(c.P0, epsilon) && c.P2.Close(c.P3, epsilon)
}

// IsStraight reports whether the curve traces its chord: it is linear, or
// its handles are collinear with the chord and project onto it without
// overshooting either end.
func (c Cubic[T]) IsStraight() bool {
	e := Eps[T]()
	if c.IsLinear(e.Epsilon) {
		return true
	}
	v := c.P3.Sub(c.P0)
	if v.IsZero(e.Epsilon) {
		// Zero-length curves with non-degenerate handles loop away from
		// the chord.
		return false
	}
	h1 := c.P1.Sub(c.P0)
	h2 := c.P2.Sub(c.P3)
	if isCollinear(v, h1) && isCollinear(v, h2) {
		l := Line[T]{c.P0, c.P3}
		if l.Distance(c.P1) < e.Geometric && l.Distance(c.P2) < e.Geometric {
			div := v.Dot(v)
			s1 := v.Dot(h1) / div
			s2 := v.Dot(h2) / div
			return s1 >= 0 && s1 <= 1 && s2 <= 0 && s2 >= -1
		}
	}
	return false
}

// isCollinear reports whether two vectors point along the same line, within
// the trigonometric tolerance.
func isCollinear[T Float](v1, v2 Vec2[T]) bool {
	return abs(v1.Cross(v2)) <= Eps[T]().Trigonometric*v1.Hypot()*v2.Hypot()
}

// Length returns the arc length of the whole curve. A NaN result, which
// arises for curves with NaN control points, is clamped to 0.
func (c Cubic[T]) Length() T {
	l := c.ArclenBetween(0, 1)
	if isNaN(l) {
		return 0
	}
	return l
}

// ArclenBetween returns the arc length of the curve between the parameters
// t0 and t1, by Gauss-Legendre integration of the derivative's magnitude.
// The order of the quadrature grows with the parameter span.
func (c Cubic[T]) ArclenBetween(t0, t1 T) T {
	return integrate(c.speed(), t0, t1, arclenIterations(t0, t1))
}

func (c Cubic[T]) speed() func(T) T {
	return func(t T) T {
		return c.Derivative(t).Hypot()
	}
}

// SolveForArclen returns the parameter at the given arc-length offset from
// the curve's start.
//
// Offsets of zero or less return 0 immediately; offsets beyond the curve's
// length return 1. In between, Newton-Raphson iteration on the arc-length
// integral is combined with a bisection bracket that catches steps escaping
// the valid range. The integral is accumulated over increasingly small
// subsegments rather than recomputed from t=0 each round.
func (c Cubic[T]) SolveForArclen(arclen T) T {
	e := Eps[T]()
	if arclen <= 0 {
		return 0
	}
	total := c.Length()
	if arclen >= total {
		return 1
	}
	ds := c.speed()
	start := T(0)
	var length T
	f := func(t T) T {
		length += integrate(ds, start, t, arclenIterations(start, t))
		start = t
		return length - arclen
	}
	return findRoot(f, ds, arclen/total, 0, 1, 32, e.Epsilon)
}

// findRoot runs Newton-Raphson iteration on f with derivative df, keeping
// the bracket [a, b] around the root: whenever a Newton step would escape
// the bracket, it falls back to bisection.
func findRoot[T Float](f, df func(T) T, x, a, b T, n int, tolerance T) T {
	for i := 0; i < n; i++ {
		fx := f(x)
		if fx == 0 {
			// An exact hit. Dividing by df here would poison x with NaN
			// when the derivative vanishes at the root too.
			return x
		}
		dx := fx / df(x)
		nx := x - dx
		if abs(dx) < tolerance {
			x = nx
			break
		}
		if fx > 0 {
			b = x
			if nx <= a {
				x = (a + b) * 0.5
			} else {
				x = nx
			}
		} else {
			a = x
			if nx >= b {
				x = (a + b) * 0.5
			} else {
				x = nx
			}
		}
	}
	return clamp(x, a, b)
}

// Nearest returns the parameter of the curve point closest to pt, together
// with the distance.
//
// The search samples the curve uniformly for a coarse minimum and then
// refines it with a halving step, which is robust against the multiple
// local minima a cubic can expose to a point.
func (c Cubic[T]) Nearest(pt Point[T]) (t, dist T) {
	t = c.closest(pt, 0)
	return t, pt.Distance(c.Eval(t))
}

// NearestAtDistance returns the parameter whose curve point lies closest to
// the given distance away from pt. With distance 0 it matches
// [Cubic.Nearest]; positive distances locate offset points.
func (c Cubic[T]) NearestAtDistance(pt Point[T], distance T) T {
	return c.closest(pt, distance)
}

func (c Cubic[T]) closest(pt Point[T], target T) T {
	e := Eps[T]()
	const count = 100
	minDist := T(math.Inf(1))
	var minT T
	refine := func(t T) bool {
		if t >= 0 && t <= 1 {
			if d := abs(pt.Distance(c.Eval(t)) - target); d < minDist {
				minDist = d
				minT = t
				return true
			}
		}
		return false
	}
	for i := 0; i <= count; i++ {
		refine(T(i) / count)
	}
	step := T(1) / (count * 2)
	for step > e.CurveTime {
		if !refine(minT-step) && !refine(minT+step) {
			step /= 2
		}
	}
	return minT
}

// ParameterOf returns the parameter at which the curve passes through pt,
// for points known to lie on the curve. The endpoints are matched first
// with a tight tolerance; other points are located by solving the curve's
// coordinate polynomials and verified against the geometric tolerance. The
// second return value is false if the point is not on the curve.
func (c Cubic[T]) ParameterOf(pt Point[T]) (T, bool) {
	e := Eps[T]()
	if pt.Close(c.P0, e.Epsilon) {
		return 0, true
	}
	if pt.Close(c.P3, e.Epsilon) {
		return 1, true
	}
	coords := [2]T{pt.X, pt.Y}
	for coord := range coords {
		roots, n := c.solveForCoord(coord, coords[coord], 0, 1)
		if n == InfiniteRoots {
			continue
		}
		for _, u := range roots[:n] {
			if pt.Close(c.Eval(u), e.Geometric) {
				return u, true
			}
		}
	}
	// A last chance for endpoints that only match loosely.
	if pt.Close(c.P0, e.Geometric) {
		return 0, true
	}
	if pt.Close(c.P3, e.Geometric) {
		return 1, true
	}
	return 0, false
}

// solveForCoord finds parameters in [min, max] where one coordinate of the
// curve (0 for x, 1 for y) equals val.
func (c Cubic[T]) solveForCoord(coord int, val, min, max T) ([3]T, int) {
	v0, v1, v2, v3 := c.P0.X, c.P1.X, c.P2.X, c.P3.X
	if coord == 1 {
		v0, v1, v2, v3 = c.P0.Y, c.P1.Y, c.P2.Y, c.P3.Y
	}
	c1 := 3 * (v1 - v0)
	b := 3*(v2-v1) - c1
	a := v3 - v0 - c1 - b
	return SolveCubic(a, b, c1, v0-val, min, max)
}

// sortRoots sorts a short root slice in ascending order.
func sortRoots[T Float](s []T) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j] < s[j-1]; j-- {
			s[j], s[j-1] = s[j-1], s[j]
		}
	}
}
