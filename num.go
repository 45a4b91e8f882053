package bezier

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Float constrains the numeric type of every generic type in this package.
// Instantiating with float32 or float64 selects the matching [Epsilons]
// table.
type Float = constraints.Float

// Epsilons is the table of tolerances tuned for one floating-point
// precision. The engine compares nothing against a single global epsilon;
// each comparison uses the member matching its numerical character.
type Epsilons[T Float] struct {
	// Epsilon is the general tolerance for values that went through only a
	// few arithmetic operations.
	Epsilon T
	// Machine is the distance between 1 and the next larger representable
	// value of T.
	Machine T
	// CurveTime is the tolerance for comparing curve parameters.
	CurveTime T
	// Geometric is the tolerance for comparing coordinates and distances.
	Geometric T
	// Trigonometric is the tolerance for comparing angles and results of
	// trigonometric functions.
	Trigonometric T
	// FatLine is the convergence threshold of the fat-line clipping
	// intersection algorithm.
	FatLine T
}

// Eps returns the epsilon table for the precision T.
func Eps[T Float]() Epsilons[T] {
	switch any(T(0)).(type) {
	case float32:
		return Epsilons[T]{
			Epsilon:       1e-5,
			Machine:       T(1.1920929e-7),
			CurveTime:     1e-4,
			Geometric:     1e-4,
			Trigonometric: 1e-4,
			FatLine:       1e-5,
		}
	default:
		return Epsilons[T]{
			Epsilon:       1e-12,
			Machine:       T(2.220446049250313e-16),
			CurveTime:     1e-8,
			Geometric:     1e-7,
			Trigonometric: 1e-8,
			FatLine:       1e-9,
		}
	}
}

func sqrt[T Float](v T) T     { return T(math.Sqrt(float64(v))) }
func cbrt[T Float](v T) T     { return T(math.Cbrt(float64(v))) }
func abs[T Float](v T) T      { return T(math.Abs(float64(v))) }
func atan2[T Float](y, x T) T { return T(math.Atan2(float64(y), float64(x))) }

func sincos[T Float](v T) (sin, cos T) {
	s, c := math.Sincos(float64(v))
	return T(s), T(c)
}

func ceil[T Float](v T) T { return T(math.Ceil(float64(v))) }

func isNaN[T Float](v T) bool    { return math.IsNaN(float64(v)) }
func isFinite[T Float](v T) bool { return !math.IsInf(float64(v), 0) && !isNaN(v) }

func clamp[T Float](v, lo, hi T) T {
	return min(max(v, lo), hi)
}
