package bezier

import "math"

// InfiniteRoots is returned as the root count by [SolveQuadratic] and
// [SolveCubic] when all coefficients vanish, so that every value of x
// satisfies the equation. Callers must check for it before slicing the
// returned roots.
const InfiniteRoots = -1

// SolveQuadratic finds real roots of a x² + b x + c = 0 within [min, max].
//
// The function tries to be quite numerically robust. If the equation is
// nearly linear, the quadratic term is dropped; when the discriminant
// suffers from cancellation, it is recomputed with split products; and when
// the coefficients are of extreme magnitude, they are rescaled by a power of
// two first. Roots within epsilon outside [min, max] are clamped onto the
// boundary; a root count of [InfiniteRoots] marks the all-zero polynomial.
//
// The returned roots are not sorted.
func SolveQuadratic[T Float](a, b, c, min, max T) ([2]T, int) {
	e := Eps[T]()
	var roots [2]T
	inf := T(math.Inf(1))
	x1, x2 := inf, inf
	if abs(a) < e.Epsilon {
		// a is zero or very small, treat as linear eqn
		if abs(b) < e.Epsilon {
			if abs(c) < e.Epsilon {
				return roots, InfiniteRoots
			}
			return roots, 0
		}
		x1 = -c / b
	} else {
		// Halving b keeps the common factor of 2 out of the quadratic
		// formula.
		b *= -0.5
		d := discriminant(a, b, c)
		if d != 0 && abs(d) < e.Machine {
			// The discriminant is tiny relative to the coefficients;
			// rescale to reduce cancellation before deciding its sign.
			if f := normalizationFactor(abs(a), abs(b), abs(c)); f != 0 {
				a *= f
				b *= f
				c *= f
				d = discriminant(a, b, c)
			}
		}
		if d >= -e.Machine {
			var q T
			if d > 0 {
				q = sqrt(d)
			}
			r := b + q
			if b < 0 {
				r = b - q
			}
			// The root with the smaller magnitude is derived from the
			// larger one, avoiding cancellation.
			if r == 0 {
				x1 = c / a
				x2 = -x1
			} else {
				x1 = r / a
				x2 = c / r
			}
		}
	}
	var count int
	minB, maxB := min-e.Epsilon, max+e.Epsilon
	if isFinite(x1) && x1 > minB && x1 < maxB {
		roots[count] = clamp(x1, min, max)
		count++
	}
	if x2 != x1 && isFinite(x2) && x2 > minB && x2 < maxB {
		roots[count] = clamp(x2, min, max)
		count++
	}
	return roots, count
}

// discriminant computes b² − a c for a pre-halved b. When the subtraction
// cancels, the products are recomputed in split form, which recovers the
// bits the straightforward expression loses.
//
// See Kahan, "On the Cost of Floating-Point Computation Without Extra-Precise
// Arithmetic".
func discriminant[T Float](a, b, c T) T {
	split := func(v float64) (hi, lo float64) {
		x := v * 134217729
		y := v - x
		hi = y + x
		lo = v - hi
		return hi, lo
	}
	af, bf, cf := float64(a), float64(b), float64(c)
	d := bf*bf - af*cf
	e := bf*bf + af*cf
	if math.Abs(d)*3 < e {
		ahi, alo := split(af)
		bhi, blo := split(bf)
		chi, clo := split(cf)
		p := bf * bf
		dp := (bhi*bhi - p + 2*bhi*blo) + blo*blo
		q := af * cf
		dq := (ahi*chi - q + ahi*clo + alo*chi) + alo*clo
		d = (p - q) + (dp - dq)
	}
	return T(d)
}

// normalizationFactor returns a power of two that brings coefficients of
// extreme magnitude back towards 1, or 0 when no rescaling is needed.
// Powers of two leave mantissas untouched, so rescaling is exact.
func normalizationFactor[T Float](values ...T) T {
	var norm T
	for _, v := range values {
		norm = max(norm, v)
	}
	if norm != 0 && (norm < 1e-8 || norm > 1e8) {
		return T(math.Exp2(-math.Round(math.Log2(float64(norm)))))
	}
	return 0
}

// SolveCubic finds real roots of a x³ + b x² + c x + d = 0 within
// [min, max].
//
// This is Kahan's algorithm: one real root is isolated with Newton's method
// started from a closed-form initial guess, then the cubic is deflated to a
// quadratic that [SolveQuadratic] finishes off. When the cubic or the
// constant coefficient is negligible the problem degenerates to the
// quadratic directly. The boundary and [InfiniteRoots] conventions match
// [SolveQuadratic]; the returned roots are not sorted.
//
// See Kahan, "To Solve a Real Cubic Equation".
func SolveCubic[T Float](a, b, c, d, lo, hi T) ([3]T, int) {
	e := Eps[T]()
	if f := normalizationFactor(abs(a), abs(b), abs(c), abs(d)); f != 0 {
		a *= f
		b *= f
		c *= f
		d *= f
	}

	// evaluate computes the cubic and its derivative at x0 by Horner's
	// scheme, keeping the intermediate coefficients of the deflated
	// quadratic.
	var x, b1, c2, qd, q T
	evaluate := func(x0 T) {
		x = x0
		tmp := a * x
		b1 = tmp + b
		c2 = b1*x + c
		qd = (tmp+b1)*x + c2
		q = c2*x + d
	}

	switch {
	case abs(a) < e.Epsilon:
		a = b
		b1 = c
		c2 = d
		x = T(math.Inf(1))
	case abs(d) < e.Epsilon:
		b1 = b
		c2 = c
		x = 0
	default:
		// Start Newton's method at the inflection point of the cubic.
		evaluate(-(b / a) / 3)
		t := q / a
		r := cbrt(abs(t))
		s := T(1)
		if t < 0 {
			s = -1
		}
		td := -qd / a
		// The 1.3247... constant is the real root of x³ = x + 1, which
		// turns the closed-form magnitude estimates into a guaranteed
		// overestimate of the dominant root.
		rd := r
		if td > 0 {
			rd = 1.324717957244746 * max(r, sqrt(td))
		}
		x0 := x - s*rd
		if x0 != x {
			for {
				evaluate(x0)
				if qd == 0 {
					x0 = x
				} else {
					x0 = x - q/qd/(1+e.Machine)
				}
				if s*x0 <= s*x {
					break
				}
			}
			// If the root has a large magnitude, the deflated
			// coefficients are more accurately recovered from the low
			// end of the polynomial.
			if abs(a)*x*x > abs(d/x) {
				c2 = -d / x
				b1 = (c2 - c) / x
			}
		}
	}

	quadRoots, count := SolveQuadratic(a, b1, c2, lo, hi)
	var roots [3]T
	if count == InfiniteRoots {
		return roots, InfiniteRoots
	}
	copy(roots[:], quadRoots[:count])
	if isFinite(x) &&
		(count == 0 || x != roots[0]) &&
		(count < 2 || x != roots[1]) &&
		x > lo-e.Epsilon && x < hi+e.Epsilon {
		roots[count] = clamp(x, lo, hi)
		count++
	}
	return roots, count
}
