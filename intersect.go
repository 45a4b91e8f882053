package bezier

// MaxIntersections is the maximum number of intersections two cubic Bézier
// curves can have, by Bézout's theorem.
const MaxIntersections = 9

// Intersection is a single crossing of two curves: the curve time on each
// curve and the point where they meet.
type Intersection[T Float] struct {
	T1    T
	T2    T
	Point Point[T]
}

// Overlap is one end of an overlapping region between two curves, pairing
// the curve time on the first curve with the matching time on the second.
type Overlap[T Float] struct {
	T1 T
	T2 T
}

// Overlaps checks whether the two curves share a common section and returns
// the section's two boundary pairs. The count is 2 when an overlap exists
// and 0 otherwise; partial pairs never occur.
//
// Curved overlaps require the shared section to be a genuine subsegment of
// both curves, which is verified by comparing the handles of the sliced-out
// parts. Straight curves overlap whenever they are collinear and share more
// than a point.
func (c Cubic[T]) Overlaps(other Cubic[T]) ([2]Overlap[T], int) {
	e := Eps[T]()
	var none [2]Overlap[T]
	straight1 := c.IsStraight()
	straight2 := other.IsStraight()
	straightBoth := straight1 && straight2
	// Project against the longer chord; a tiny baseline makes the distance
	// test meaningless.
	l1, l2 := c, other
	if c.P3.Sub(c.P0).Hypot2() < other.P3.Sub(other.P0).Hypot2() {
		l1, l2 = other, c
	}
	line := Line[T]{l1.P0, l1.P3}
	if line.Distance(l2.P0) < e.Geometric && line.Distance(l2.P3) < e.Geometric {
		// All four endpoints are collinear. If the handles hug the same
		// line, the curves are straight for the purpose of overlapping even
		// if IsStraight disagrees.
		if !straightBoth &&
			line.Distance(l1.P1) < e.Geometric &&
			line.Distance(l1.P2) < e.Geometric &&
			line.Distance(l2.P1) < e.Geometric &&
			line.Distance(l2.P2) < e.Geometric {
			straight1, straight2, straightBoth = true, true, true
		}
	} else if straightBoth {
		// Straight curves on different lines cannot overlap.
		return none, 0
	}
	if straight1 != straight2 {
		return none, 0
	}

	// An overlapping region is bounded by endpoints: walk the four
	// endpoints and locate each on the opposite curve.
	cv := [2]Cubic[T]{c, other}
	var pairs [2]Overlap[T]
	var np int
	for i := 0; i < 4 && np < 2; i++ {
		i1 := i & 1
		i2 := i1 ^ 1
		t1 := T(i >> 1)
		pt := cv[i2].P0
		if t1 == 1 {
			pt = cv[i2].P3
		}
		t2, ok := cv[i1].ParameterOf(pt)
		if !ok {
			continue
		}
		pair := Overlap[T]{T1: t2, T2: t1}
		if i1 == 1 {
			pair = Overlap[T]{T1: t1, T2: t2}
		}
		// Filter out tiny overlaps.
		if np == 0 ||
			abs(pair.T1-pairs[0].T1) > e.CurveTime &&
				abs(pair.T2-pairs[0].T2) > e.CurveTime {
			pairs[np] = pair
			np++
		}
	}
	if np != 2 {
		return none, 0
	}
	if !straightBoth {
		// Slice out the claimed common section from both curves and make
		// sure the handles agree, not just the endpoints.
		o1 := c.Subsegment(pairs[0].T1, pairs[1].T1)
		o2 := other.Subsegment(pairs[0].T2, pairs[1].T2)
		if abs(o2.P1.X-o1.P1.X) > e.Geometric ||
			abs(o2.P1.Y-o1.P1.Y) > e.Geometric ||
			abs(o2.P2.X-o1.P2.X) > e.Geometric ||
			abs(o2.P2.Y-o1.P2.Y) > e.Geometric {
			return none, 0
		}
	}
	return pairs, 2
}

// Intersections finds the points where the two curves cross, up to
// [MaxIntersections].
//
// Overlapping curves report the two boundaries of the overlap region.
// Straight curves are intersected as line segments; a straight curve
// against a curved one is solved by rotating the curved one onto the line's
// axis and finding the cubic's roots there. Two curved curves go through
// iterated fat-line clipping, with the recursion bounded both in total
// calls and in depth so that degenerate inputs terminate.
//
// The results are sorted by T1 and deduplicated within the curve-time
// tolerance.
func (c Cubic[T]) Intersections(other Cubic[T]) ([MaxIntersections]Intersection[T], int) {
	e := Eps[T]()
	ix := intersector[T]{c1: c, c2: other}
	if !c.HandleBounds().Overlaps(other.HandleBounds(), e.Epsilon) {
		return ix.out, 0
	}
	if pairs, n := c.Overlaps(other); n > 0 {
		for _, p := range pairs[:n] {
			ix.add(p.T1, p.T2)
		}
		return ix.finish()
	}
	straight1 := c.IsStraight()
	straight2 := other.IsStraight()
	straightBoth := straight1 && straight2
	before := ix.n
	switch {
	case straightBoth:
		ix.addLineLine()
	case straight1:
		ix.addCurveLine(other, c, true)
	case straight2:
		ix.addCurveLine(c, other, false)
	default:
		ix.clip(c, other, false, 0, 0, 1, 0, 1)
	}
	if !straightBoth || ix.n == before {
		// Endpoints that merely touch are easily missed by all of the
		// above; check the four endpoint pairings explicitly.
		for i := 0; i < 4; i++ {
			t1 := T(i >> 1)
			t2 := T(i & 1)
			p1 := c.P0
			if t1 == 1 {
				p1 = c.P3
			}
			p2 := other.P0
			if t2 == 1 {
				p2 = other.P3
			}
			if p1.Close(p2, e.Epsilon) {
				ix.add(t1, t2)
			}
		}
	}
	return ix.finish()
}

// intersector accumulates intersections between one fixed pair of curves.
// The fat-line recursion swaps which curve it clips, but results are always
// expressed in terms of c1 and c2.
type intersector[T Float] struct {
	c1    Cubic[T]
	c2    Cubic[T]
	out   [MaxIntersections]Intersection[T]
	n     int
	calls int
}

func (ix *intersector[T]) add(t1, t2 T) {
	e := Eps[T]()
	for _, is := range ix.out[:ix.n] {
		if abs(is.T1-t1) < e.CurveTime && abs(is.T2-t2) < e.CurveTime {
			return
		}
	}
	if ix.n == MaxIntersections {
		return
	}
	ix.out[ix.n] = Intersection[T]{T1: t1, T2: t2, Point: ix.c1.Eval(t1)}
	ix.n++
}

func (ix *intersector[T]) finish() ([MaxIntersections]Intersection[T], int) {
	s := ix.out[:ix.n]
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && (s[j].T1 < s[j-1].T1 ||
			s[j].T1 == s[j-1].T1 && s[j].T2 < s[j-1].T2); j-- {
			s[j], s[j-1] = s[j-1], s[j]
		}
	}
	return ix.out, ix.n
}

func (ix *intersector[T]) addLineLine() {
	pt, ok := ix.c1.Chord().Intersect(ix.c2.Chord())
	if !ok {
		return
	}
	t1, ok1 := ix.c1.ParameterOf(pt)
	t2, ok2 := ix.c2.ParameterOf(pt)
	if ok1 && ok2 {
		ix.add(t1, t2)
	}
}

// addCurveLine intersects the curved cv with the straight ln. flip is true
// when ln is the intersector's first curve.
func (ix *intersector[T]) addCurveLine(cv, ln Cubic[T], flip bool) {
	roots, n := curveLineRoots(cv, ln.P0, ln.P3.Sub(ln.P0))
	for _, t1 := range roots[:n] {
		p := cv.Eval(t1)
		t2, ok := ln.ParameterOf(p)
		if !ok {
			continue
		}
		if flip {
			ix.add(t2, t1)
		} else {
			ix.add(t1, t2)
		}
	}
}

// curveLineRoots finds the curve times where cv crosses the infinite line
// through p with direction v, by rotating the curve into the line's frame
// and solving its y coordinate for zero. A directionless line degenerates
// to a point-on-curve test.
func curveLineRoots[T Float](cv Cubic[T], p Point[T], v Vec2[T]) ([3]T, int) {
	e := Eps[T]()
	var roots [3]T
	if abs(v.X) < e.Epsilon && abs(v.Y) < e.Epsilon {
		if t, ok := cv.ParameterOf(p); ok {
			roots[0] = t
			return roots, 1
		}
		return roots, 0
	}
	sin, cos := sincos(atan2(-v.Y, v.X))
	rotY := func(pt Point[T]) T {
		return (pt.X-p.X)*sin + (pt.Y-p.Y)*cos
	}
	r := Cubic[T]{
		P0: Point[T]{Y: rotY(cv.P0)},
		P1: Point[T]{Y: rotY(cv.P1)},
		P2: Point[T]{Y: rotY(cv.P2)},
		P3: Point[T]{Y: rotY(cv.P3)},
	}
	out, n := r.solveForCoord(1, 0, 0, 1)
	if n == InfiniteRoots {
		return roots, 0
	}
	return out, n
}

// Counting both the total calls and the recursion depth bounds the fat-line
// clipping on adversarial inputs, where the hulls shrink too slowly for the
// convergence test alone to terminate.
const (
	maxClipCalls = 4096
	maxClipDepth = 40
)

// clip is one round of fat-line clipping: v1 is clipped against the fat
// line around v2, over the remaining parameter intervals [tMin, tMax] on v1
// and [uMin, uMax] on v2. flip is true when v1 is a piece of the
// intersector's second curve.
func (ix *intersector[T]) clip(v1, v2 Cubic[T], flip bool, depth int, tMin, tMax, uMin, uMax T) {
	ix.calls++
	if ix.calls >= maxClipCalls || depth >= maxClipDepth {
		return
	}
	e := Eps[T]()
	base := Line[T]{v2.P0, v2.P3}
	d1 := base.SignedDistance(v2.P1)
	d2 := base.SignedDistance(v2.P2)
	factor := T(4.0 / 9.0)
	if d1*d2 > 0 {
		factor = 3.0 / 4.0
	}
	dMin := factor * min(0, d1, d2)
	dMax := factor * max(0, d1, d2)
	// The non-parametric curve D(t): distance of v1 from the baseline,
	// with t spaced evenly.
	dp0 := base.SignedDistance(v1.P0)
	dp1 := base.SignedDistance(v1.P1)
	dp2 := base.SignedDistance(v1.P2)
	dp3 := base.SignedDistance(v1.P3)
	if d1 == 0 && d2 == 0 && dp0 == 0 && dp1 == 0 && dp2 == 0 && dp3 == 0 {
		// Everything is collinear; clipping cannot make progress.
		return
	}
	top, bottom := convexHull(dp0, dp1, dp2, dp3)
	tMinClip, ok := clipConvexHull(top, bottom, dMin, dMax)
	if !ok {
		return
	}
	reverseHull(top)
	reverseHull(bottom)
	tMaxClip, ok := clipConvexHull(top, bottom, dMin, dMax)
	if !ok {
		return
	}
	// Project the clip back onto v1's original parameter range.
	tMinNew := tMin + (tMax-tMin)*tMinClip
	tMaxNew := tMin + (tMax-tMin)*tMaxClip
	if max(uMax-uMin, tMaxNew-tMinNew) < e.FatLine {
		t := (tMinNew + tMaxNew) / 2
		u := (uMin + uMax) / 2
		if flip {
			ix.add(u, t)
		} else {
			ix.add(t, u)
		}
		return
	}
	v1 = v1.Subsegment(tMinClip, tMaxClip)
	uDiff := uMax - uMin
	if tMaxClip-tMinClip > 0.8 {
		// The clip is barely making progress; subdivide the curve that has
		// converged the least.
		if tMaxNew-tMinNew > uDiff {
			l, r := v1.Subdivide(0.5)
			t := (tMinNew + tMaxNew) / 2
			ix.clip(v2, l, !flip, depth+1, uMin, uMax, tMinNew, t)
			ix.clip(v2, r, !flip, depth+1, uMin, uMax, t, tMaxNew)
		} else {
			l, r := v2.Subdivide(0.5)
			u := (uMin + uMax) / 2
			ix.clip(l, v1, !flip, depth+1, uMin, u, tMinNew, tMaxNew)
			ix.clip(r, v1, !flip, depth+1, u, uMax, tMinNew, tMaxNew)
		}
		return
	}
	if uDiff == 0 || uDiff >= e.FatLine {
		ix.clip(v2, v1, !flip, depth+1, uMin, uMax, tMinNew, tMaxNew)
	} else {
		// The other curve's interval is already tight; keep clipping this
		// one.
		ix.clip(v1, v2, flip, depth+1, tMinNew, tMaxNew, uMin, uMax)
	}
}

// hullPoint is a vertex of the distance curve's convex hull: curve time and
// signed distance.
type hullPoint[T Float] struct {
	t T
	d T
}

// convexHull builds the convex hull of the non-parametric distance curve
// through (0, dq0), (1/3, dq1), (2/3, dq2), (1, dq3), split into its top
// and bottom chains.
func convexHull[T Float](dq0, dq1, dq2, dq3 T) (top, bottom []hullPoint[T]) {
	p0 := hullPoint[T]{0, dq0}
	p1 := hullPoint[T]{1.0 / 3.0, dq1}
	p2 := hullPoint[T]{2.0 / 3.0, dq2}
	p3 := hullPoint[T]{1, dq3}
	// Vertical distances of the middle points from the line [p0, p3].
	dist1 := dq1 - (2*dq0+dq3)/3
	dist2 := dq2 - (dq0+2*dq3)/3
	if dist1*dist2 < 0 {
		// The middle points straddle [p0, p3]; the hull is a quadrilateral
		// with one middle point in each chain.
		top = []hullPoint[T]{p0, p1, p3}
		bottom = []hullPoint[T]{p0, p2, p3}
	} else {
		// Both middle points are on the same side, so [p0, p3] is one
		// chain. The other is a triangle if one middle point dominates the
		// other, a quadrilateral otherwise.
		distRatio := dist1 / dist2
		switch {
		case distRatio >= 2:
			top = []hullPoint[T]{p0, p1, p3}
		case distRatio <= 0.5:
			top = []hullPoint[T]{p0, p2, p3}
		default:
			top = []hullPoint[T]{p0, p1, p2, p3}
		}
		bottom = []hullPoint[T]{p0, p3}
	}
	flip := dist1
	if flip == 0 {
		flip = dist2
	}
	if flip < 0 {
		top, bottom = bottom, top
	}
	return top, bottom
}

func reverseHull[T Float](h []hullPoint[T]) {
	for i, j := 0, len(h)-1; i < j; i, j = i+1, j-1 {
		h[i], h[j] = h[j], h[i]
	}
}

// clipConvexHull finds the curve time where the hull enters the fat line's
// band [dMin, dMax], walking from the left. The boolean is false when the
// hull never enters the band.
func clipConvexHull[T Float](top, bottom []hullPoint[T], dMin, dMax T) (T, bool) {
	switch {
	case top[0].d < dMin:
		return clipConvexHullPart(top, true, dMin)
	case bottom[0].d > dMax:
		return clipConvexHullPart(bottom, false, dMax)
	default:
		return top[0].t, true
	}
}

func clipConvexHullPart[T Float](part []hullPoint[T], top bool, threshold T) (T, bool) {
	px, py := part[0].t, part[0].d
	for _, p := range part[1:] {
		qx, qy := p.t, p.d
		if top && qy >= threshold || !top && qy <= threshold {
			if qy == threshold {
				return qx, true
			}
			return px + (threshold-py)*(qx-px)/(qy-py), true
		}
		px, py = qx, qy
	}
	return 0, false
}
