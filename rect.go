package bezier

// Rect is an axis-aligned rectangle, stored as minimum and maximum
// coordinates.
type Rect[T Float] struct {
	X0, Y0 T
	X1, Y1 T
}

// NewRectFromPoints returns a rectangle with the extents of p0 and p1,
// ensuring that width and height are non-negative.
func NewRectFromPoints[T Float](p0, p1 Point[T]) Rect[T] {
	return Rect[T]{p0.X, p0.Y, p1.X, p1.Y}.Abs()
}

// Abs returns a new rectangle with the same extents as r, but ensuring that
// width and height are non-negative.
func (r Rect[T]) Abs() Rect[T] {
	return Rect[T]{
		X0: min(r.X0, r.X1),
		Y0: min(r.Y0, r.Y1),
		X1: max(r.X0, r.X1),
		Y1: max(r.Y0, r.Y1),
	}
}

func (r Rect[T]) MinX() T { return min(r.X0, r.X1) }
func (r Rect[T]) MaxX() T { return max(r.X0, r.X1) }
func (r Rect[T]) MinY() T { return min(r.Y0, r.Y1) }
func (r Rect[T]) MaxY() T { return max(r.Y0, r.Y1) }

// Width returns the rectangle's width, defined as X1 − X0. It may be
// negative.
func (r Rect[T]) Width() T {
	return r.X1 - r.X0
}

// Height returns the rectangle's height, defined as Y1 − Y0. It may be
// negative.
func (r Rect[T]) Height() T {
	return r.Y1 - r.Y0
}

// Origin returns the corner with the minimum coordinates.
func (r Rect[T]) Origin() Point[T] {
	return Point[T]{
		X: r.X0,
		Y: r.Y0,
	}
}

// Center returns the center of the rectangle.
func (r Rect[T]) Center() Point[T] {
	return Point[T]{
		X: 0.5 * (r.X0 + r.X1),
		Y: 0.5 * (r.Y0 + r.Y1),
	}
}

// Contains reports whether the point is inside the rectangle.
//
// The top and left edges are inside, while the bottom and right edges are
// outside, so that contiguous rectangles cover each point exactly once.
func (r Rect[T]) Contains(pt Point[T]) bool {
	return pt.X >= r.X0 && pt.X < r.X1 && pt.Y >= r.Y0 && pt.Y < r.Y1
}

// Union returns the smallest rectangle enclosing two rectangles.
//
// Results are valid only if width and height are non-negative.
func (r Rect[T]) Union(o Rect[T]) Rect[T] {
	return Rect[T]{
		X0: min(r.X0, o.X0),
		Y0: min(r.Y0, o.Y0),
		X1: max(r.X1, o.X1),
		Y1: max(r.Y1, o.Y1),
	}
}

// UnionPoint returns the smallest rectangle enclosing the rectangle and the
// point.
//
// Results are valid only if width and height are non-negative.
func (r Rect[T]) UnionPoint(pt Point[T]) Rect[T] {
	return Rect[T]{
		X0: min(r.X0, pt.X),
		Y0: min(r.Y0, pt.Y),
		X1: max(r.X1, pt.X),
		Y1: max(r.Y1, pt.Y),
	}
}

// Overlaps reports whether two rectangles share at least one point,
// comparing with the given tolerance. Edge-touching rectangles overlap.
func (r Rect[T]) Overlaps(o Rect[T], epsilon T) bool {
	return r.X0 <= o.X1+epsilon && o.X0 <= r.X1+epsilon &&
		r.Y0 <= o.Y1+epsilon && o.Y0 <= r.Y1+epsilon
}

// Inflate returns a new rectangle expanded by the given amounts on all four
// sides.
func (r Rect[T]) Inflate(width, height T) Rect[T] {
	return Rect[T]{
		X0: r.X0 - width,
		Y0: r.Y0 - height,
		X1: r.X1 + width,
		Y1: r.Y1 + height,
	}
}

// IsNaN reports whether any of the rectangle's coordinates are NaN.
func (r Rect[T]) IsNaN() bool {
	return isNaN(r.X0) || isNaN(r.Y0) || isNaN(r.X1) || isNaN(r.Y1)
}
