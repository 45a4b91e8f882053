package bezier

// CurveClass is the shape category of a cubic Bézier curve as determined by
// [Cubic.Classify].
type CurveClass int

const (
	// ClassLine marks a degenerate curve that traces a straight line.
	ClassLine CurveClass = iota
	// ClassQuadratic marks a cubic that is an elevated quadratic.
	ClassQuadratic
	// ClassSerpentine marks a curve with two inflection points.
	ClassSerpentine
	// ClassCusp marks a curve whose derivative vanishes at an interior
	// parameter.
	ClassCusp
	// ClassLoop marks a self-intersecting curve; the two roots are the
	// parameters of the double point.
	ClassLoop
	// ClassArch marks a simple arch: a serpentine, cusp or loop whose
	// characteristic roots all fall outside (0, 1).
	ClassArch
)

func (c CurveClass) String() string {
	switch c {
	case ClassLine:
		return "line"
	case ClassQuadratic:
		return "quadratic"
	case ClassSerpentine:
		return "serpentine"
	case ClassCusp:
		return "cusp"
	case ClassLoop:
		return "loop"
	case ClassArch:
		return "arch"
	default:
		return "unknown"
	}
}

// Classification is the result of [Cubic.Classify]: the curve's shape
// category and, depending on the category, up to two characteristic curve
// times. For a serpentine these are the inflection points, for a cusp the
// cusp parameter, for a loop the two parameters of the self-intersection.
type Classification[T Float] struct {
	Class CurveClass
	Roots [2]T
	N     int
}

// Classify determines the shape category of the curve.
//
// The classification follows Loop and Blinn, "Resolution Independent Curve
// Rendering using Programmable Graphics Hardware": the sign of the
// discriminant of the curve's characteristic polynomial separates
// serpentines, cusps and loops. Categories whose characteristic roots all
// fall outside the curve's own parameter range degrade to [ClassArch]; a
// loop additionally requires both roots inside (0, 1), since otherwise the
// double point belongs to the extended curve only.
func (c Cubic[T]) Classify() Classification[T] {
	e := Eps[T]()
	x0, y0 := c.P0.X, c.P0.Y
	x1, y1 := c.P1.X, c.P1.Y
	x2, y2 := c.P2.X, c.P2.Y
	x3, y3 := c.P3.X, c.P3.Y
	a1 := x0*(y3-y2) + y0*(x2-x3) + x3*y2 - y3*x2
	a2 := x1*(y0-y3) + y1*(x3-x0) + x0*y3 - y0*x3
	a3 := x2*(y1-y0) + y2*(x0-x1) + x1*y0 - y1*x0
	d3 := 3 * a3
	d2 := d3 - a2
	d1 := d2 - a2 + a1
	// Normalizing the coefficient vector keeps the epsilon comparisons
	// meaningful across curve scales.
	if l := sqrt(d1*d1 + d2*d2 + d3*d3); l != 0 {
		s := 1 / l
		d1 *= s
		d2 *= s
		d3 *= s
	}
	isZero := func(v T) bool { return abs(v) < e.Epsilon }

	result := func(class CurveClass, roots ...T) Classification[T] {
		var out Classification[T]
		var ok [2]bool
		for i, t := range roots {
			ok[i] = t > 0 && t < 1
		}
		switch {
		case len(roots) == 0:
			// Lines and quadratics have no characteristic roots.
		case !ok[0] && !ok[1], class == ClassLoop && !(ok[0] && ok[1]):
			class = ClassArch
		default:
			for i, t := range roots {
				if ok[i] {
					out.Roots[out.N] = t
					out.N++
				}
			}
			sortRoots(out.Roots[:out.N])
		}
		out.Class = class
		return out
	}

	if isZero(d1) {
		if isZero(d2) {
			if isZero(d3) {
				return result(ClassLine)
			}
			return result(ClassQuadratic)
		}
		return result(ClassSerpentine, d3/(3*d2))
	}
	// The normalization above makes this comparison meaningful: for a
	// geometric cusp whose coordinates are not axis-aligned, roundoff
	// leaves the discriminant tiny but rarely exactly zero.
	d := 3*d2*d2 - 4*d1*d3
	switch {
	case isZero(d):
		return result(ClassCusp, d2/(2*d1))
	case d > 0:
		f := sqrt(d / 3)
		return result(ClassSerpentine, (d2+f)/(2*d1), (d2-f)/(2*d1))
	default:
		f := sqrt(-d)
		return result(ClassLoop, (d2+f)/(2*d1), (d2-f)/(2*d1))
	}
}
