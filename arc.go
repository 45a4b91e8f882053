package bezier

// Arc is a circular arc: the part of a circle swept from StartAngle by
// SweepAngle. A negative sweep runs clockwise in a y-up coordinate system.
type Arc[T Float] struct {
	Center     Point[T]
	Radius     T
	StartAngle T
	SweepAngle T
}

// Eval evaluates the arc at parameter t ∈ [0, 1], sweeping from the start
// angle.
func (a Arc[T]) Eval(t T) Point[T] {
	sin, cos := sincos(a.StartAngle + t*a.SweepAngle)
	return a.Center.Translate(Vec2[T]{X: cos * a.Radius, Y: sin * a.Radius})
}

// Start returns the arc's start point.
func (a Arc[T]) Start() Point[T] {
	return a.Eval(0)
}

// End returns the arc's end point.
func (a Arc[T]) End() Point[T] {
	return a.Eval(1)
}

// Length returns the arc length.
func (a Arc[T]) Length() T {
	return abs(a.SweepAngle) * a.Radius
}
