package bezier

// Line is an infinite line, described by two distinct points it passes
// through.
type Line[T Float] struct {
	P0 Point[T]
	P1 Point[T]
}

// SignedDistance returns the perpendicular distance of pt from the line,
// positive on the side the line's direction vector turned by 90° points to.
func (l Line[T]) SignedDistance(pt Point[T]) T {
	d := l.P1.Sub(l.P0)
	h := d.Hypot()
	if h == 0 {
		return pt.Sub(l.P0).Hypot()
	}
	return d.Cross(pt.Sub(l.P0)) / h
}

// Distance returns the perpendicular distance of pt from the line.
func (l Line[T]) Distance(pt Point[T]) T {
	return abs(l.SignedDistance(pt))
}

// Side reports which side of the line pt lies on: -1, 0 or 1, matching the
// sign of [Line.SignedDistance].
func (l Line[T]) Side(pt Point[T]) int {
	d := l.P1.Sub(l.P0).Cross(pt.Sub(l.P0))
	switch {
	case d < 0:
		return -1
	case d > 0:
		return 1
	default:
		return 0
	}
}

// CrossingPoint computes the point where two lines, extended to infinity,
// cross. It returns false for parallel (including coincident) lines.
func (l Line[T]) CrossingPoint(o Line[T]) (Point[T], bool) {
	ab := l.P1.Sub(l.P0)
	cd := o.P1.Sub(o.P0)
	pcd := ab.Cross(cd)
	if pcd == 0 {
		return Point[T]{}, false
	}
	h := ab.Cross(l.P0.Sub(o.P0)) / pcd
	return o.P0.Translate(cd.Mul(h)), true
}

// LineSegment is the part of a line bounded by two endpoints.
type LineSegment[T Float] struct {
	P0 Point[T]
	P1 Point[T]
}

// Length returns the length of the segment.
func (l LineSegment[T]) Length() T {
	return l.P1.Sub(l.P0).Hypot()
}

// Eval evaluates the segment at parameter t, interpolating linearly between
// the endpoints.
func (l LineSegment[T]) Eval(t T) Point[T] {
	return l.P0.Lerp(l.P1, t)
}

// Line returns the infinite line through the segment's endpoints.
func (l LineSegment[T]) Line() Line[T] {
	return Line[T]{l.P0, l.P1}
}

// Intersect computes the point where two bounded segments cross. It returns
// false if the segments are parallel or the crossing of their lines falls
// outside either segment.
func (l LineSegment[T]) Intersect(o LineSegment[T]) (Point[T], bool) {
	e := Eps[T]()
	ab := l.P1.Sub(l.P0)
	cd := o.P1.Sub(o.P0)
	det := ab.Cross(cd)
	if abs(det) < e.Epsilon {
		return Point[T]{}, false
	}
	w := o.P0.Sub(l.P0)
	t := w.Cross(cd) / det
	u := w.Cross(ab) / det
	if t < -e.CurveTime || t > 1+e.CurveTime || u < -e.CurveTime || u > 1+e.CurveTime {
		return Point[T]{}, false
	}
	return l.Eval(clamp(t, 0, 1)), true
}

// Nearest returns the parameter on the segment closest to pt, together with
// the squared distance.
func (l LineSegment[T]) Nearest(pt Point[T]) (t, distSq T) {
	d := l.P1.Sub(l.P0)
	dotp := d.Dot(pt.Sub(l.P0))
	dSquared := d.Dot(d)
	if dotp <= 0.0 || dSquared == 0.0 {
		return 0.0, pt.Sub(l.P0).Hypot2()
	} else if dotp >= dSquared {
		return 1.0, pt.Sub(l.P1).Hypot2()
	}
	t = dotp / dSquared
	return t, pt.Sub(l.Eval(t)).Hypot2()
}
