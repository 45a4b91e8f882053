package bezier

import "errors"

var (
	// ErrCollinear is returned by [NewCircleFromPoints] when the three
	// points lie on one line and no finite circle passes through them.
	ErrCollinear = errors.New("bezier: points are collinear")
	// ErrNoIntersection is returned by [NewCircleFromPoints] when the
	// perpendicular bisectors fail to produce a center, which can happen
	// for numerically extreme inputs.
	ErrNoIntersection = errors.New("bezier: bisectors do not intersect")
)

// Circle is a circle described by center and radius.
type Circle[T Float] struct {
	Center Point[T]
	Radius T
}

// NewCircleFromPoints returns the unique circle through three points.
//
// The two failure modes are distinguished: [ErrCollinear] when the points
// span no area, and [ErrNoIntersection] when the bisector construction
// degenerates despite the points not being detectably collinear.
func NewCircleFromPoints[T Float](p0, p1, p2 Point[T]) (Circle[T], error) {
	e := Eps[T]()
	if abs(p1.Sub(p0).Cross(p2.Sub(p0))) < e.Epsilon {
		return Circle[T]{}, ErrCollinear
	}
	center, ok := bisector(p0, p1).CrossingPoint(bisector(p1, p2))
	if !ok || center.IsNaN() {
		return Circle[T]{}, ErrNoIntersection
	}
	return Circle[T]{
		Center: center,
		Radius: center.Distance(p0),
	}, nil
}

// bisector returns the perpendicular bisector of the chord p0−p1.
func bisector[T Float](p0, p1 Point[T]) Line[T] {
	mid := p0.Midpoint(p1)
	return Line[T]{
		P0: mid,
		P1: mid.Translate(p1.Sub(p0).Turn90()),
	}
}

// Contains reports whether pt lies inside or on the circle.
func (c Circle[T]) Contains(pt Point[T]) bool {
	return pt.Sub(c.Center).Hypot2() <= c.Radius*c.Radius
}

// Distance returns the distance of pt from the circle's outline, which is 0
// for points on the circle and positive elsewhere.
func (c Circle[T]) Distance(pt Point[T]) T {
	return abs(pt.Distance(c.Center) - c.Radius)
}

// IsNaN reports whether the center or the radius is NaN.
func (c Circle[T]) IsNaN() bool {
	return c.Center.IsNaN() || isNaN(c.Radius)
}
