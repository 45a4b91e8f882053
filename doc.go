// Package bezier implements cubic Bézier curves and the numerical algorithms
// that make them useful for 2D vector geometry: evaluation, subdivision,
// tight bounds, curvature and Loop–Blinn classification, closest-point
// search, arc-length parametrization, robust quadratic and cubic root
// solving, fat-line-clipping curve–curve intersection, overlap detection,
// and biarc approximation.
//
// # Precision
//
// Every type in this package is generic over the floating-point type T,
// which may be float32 or float64. The choice of T selects a matching table
// of tolerances (see [Epsilons] and [Eps]); the per-precision tables are
// part of the package's contract, as nearly every comparison in the engine
// is made relative to them.
//
// # Curves
//
// [Cubic] is the central type: four control points, where P0 and P3 are the
// endpoints and P1 and P2 are handles in absolute coordinates. Degenerate
// curves (zero length, collinear control points, cusps) are valid inputs to
// every operation; algorithms return degenerate or empty results rather
// than failing. The curve parameter t ranges over [0, 1] and is not
// proportional to arc length; use [Cubic.SolveForArclen] to convert
// distances along the curve back to parameters.
//
// The supporting value types [Point], [Vec2], [Rect], [Line],
// [LineSegment], [Circle] and [Arc] carry only the surface the curve
// engine consumes.
// All types in this package are plain values; operations never mutate their
// receivers.
//
// # Results
//
// Operations with a bounded number of solutions return fixed-size arrays
// together with a count, avoiding allocation on hot paths: up to 2 roots
// from [SolveQuadratic], 3 from [SolveCubic], 4 extrema, 3 peaks, and
// [MaxIntersections] curve–curve intersections. A count of [InfiniteRoots]
// from the solvers marks the degenerate all-zero polynomial whose solution
// set is the whole interval. Biarc approximation returns a growable slice,
// as subdivision makes its segment count unbounded.
package bezier
