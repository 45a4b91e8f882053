package bezier

import "math"

// BiarcKind discriminates the two shapes a [Biarc] can take.
type BiarcKind int

const (
	// BiarcArcs is a pair of circular arcs meeting tangentially.
	BiarcArcs BiarcKind = iota
	// BiarcPoints is a straight piece, described by its two endpoints
	// only. Straight and zero-length curve sections cannot be represented
	// by arcs of finite radius.
	BiarcPoints
)

// Biarc is one element of a biarc approximation: either two arcs joined
// with a common tangent, or a point pair standing in for a straight
// section. Arc1 and Arc2 are valid only for [BiarcArcs], Start and End only
// for [BiarcPoints].
type Biarc[T Float] struct {
	Kind  BiarcKind
	Arc1  Arc[T]
	Arc2  Arc[T]
	Start Point[T]
	End   Point[T]
}

// maxBiarcDepth caps the subdivision recursion of [Cubic.Biarcs]. Curves
// with cusp-like regions can fail the tolerance test at every depth; the
// cap accepts the best fit found instead of recursing forever.
const maxBiarcDepth = 20

// Biarcs approximates the curve with a sequence of biarcs whose maximum
// distance from the curve stays within tolerance.
//
// The curve is first split at its interior inflection points, since a
// single biarc cannot change bending direction. Each piece is then fitted
// with two arcs that interpolate the piece's endpoints and its midpoint,
// meeting the curve's tangent there; pieces that diverge beyond the
// tolerance are subdivided and fitted again. Straight pieces become
// [BiarcPoints] elements.
func (c Cubic[T]) Biarcs(tolerance T) []Biarc[T] {
	e := Eps[T]()
	var out []Biarc[T]
	infl, n := c.Inflections()
	prev := T(0)
	for _, t := range infl[:n] {
		if t <= e.CurveTime || t >= 1-e.CurveTime {
			continue
		}
		out = c.Subsegment(prev, t).fitBiarcs(out, tolerance, 0)
		prev = t
	}
	return c.Subsegment(prev, 1).fitBiarcs(out, tolerance, 0)
}

func (c Cubic[T]) fitBiarcs(out []Biarc[T], tolerance T, depth int) []Biarc[T] {
	e := Eps[T]()
	if c.IsStraight() || c.P3.Sub(c.P0).IsZero(e.Epsilon) {
		return append(out, Biarc[T]{Kind: BiarcPoints, Start: c.P0, End: c.P3})
	}
	b, ok := c.fitBiarc()
	if !ok {
		// The midpoint is collinear with an endpoint; the piece is too
		// flat for finite arcs.
		return append(out, Biarc[T]{Kind: BiarcPoints, Start: c.P0, End: c.P3})
	}
	if depth < maxBiarcDepth && c.biarcDivergence(b) > tolerance {
		l, r := c.Subdivide(0.5)
		out = l.fitBiarcs(out, tolerance, depth+1)
		return r.fitBiarcs(out, tolerance, depth+1)
	}
	return append(out, b)
}

// fitBiarc constructs the biarc through the curve's endpoints and its
// midpoint. Each arc's center lies on the curve's normal at the midpoint,
// which makes the two arcs tangent to each other and to the curve there.
func (c Cubic[T]) fitBiarc() (Biarc[T], bool) {
	m := c.Eval(0.5)
	normal := Line[T]{m, m.Translate(c.Normal(0.5))}
	c1, ok1 := bisector(c.P0, m).CrossingPoint(normal)
	c2, ok2 := bisector(m, c.P3).CrossingPoint(normal)
	if !ok1 || !ok2 {
		return Biarc[T]{}, false
	}
	// The curve's travel direction at the junction decides each arc's
	// sweep sign: a counterclockwise arc's tangent is the radial vector
	// rotated by 90°.
	d := c.Derivative(0.5)
	return Biarc[T]{
		Kind: BiarcArcs,
		Arc1: arcThrough(c1, c.P0, m, m.Sub(c1).Cross(d) > 0),
		Arc2: arcThrough(c2, m, c.P3, m.Sub(c2).Cross(d) > 0),
	}, true
}

// arcThrough builds the arc around center from p0 to p1, counterclockwise
// or clockwise as requested.
func arcThrough[T Float](center, p0, p1 Point[T], ccw bool) Arc[T] {
	r0 := p0.Sub(center)
	start := r0.Angle()
	sweep := p1.Sub(center).Angle() - start
	const tau = 2 * math.Pi
	if ccw {
		if sweep < 0 {
			sweep += tau
		}
	} else {
		if sweep > 0 {
			sweep -= tau
		}
	}
	return Arc[T]{
		Center:     center,
		Radius:     r0.Hypot(),
		StartAngle: start,
		SweepAngle: sweep,
	}
}

// biarcDivergence estimates how far the biarc strays from the curve by
// sampling the curve and measuring each sample's distance from its arc's
// circle.
func (c Cubic[T]) biarcDivergence(b Biarc[T]) T {
	const samples = 10
	var worst T
	for i := 1; i < samples; i++ {
		t := T(i) / samples
		p := c.Eval(t)
		a := b.Arc1
		if t > 0.5 {
			a = b.Arc2
		}
		if d := abs(p.Distance(a.Center) - a.Radius); d > worst {
			worst = d
		}
	}
	return worst
}
