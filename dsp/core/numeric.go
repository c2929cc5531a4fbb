package core

import "math"

const (
	defaultEpsilon = 1e-12

	// Epsilon is the default floor applied before log, sqrt and division.
	Epsilon = 1e-6

	// MaxExponent caps the argument passed to math.Exp.
	MaxExponent = 20.0
)

// Clamp limits value to the inclusive range [min, max].
// NaN degrades to min.
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	if value < min || math.IsNaN(value) {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// FloorMagnitude returns x unless |x| < eps, in which case it returns eps.
// The sign of small values is not preserved.
func FloorMagnitude(x, eps float64) float64 {
	if math.Abs(x) < eps || math.IsNaN(x) {
		return eps
	}

	return x
}

// SafeDiv returns num / (den + eps) with eps floored at [Epsilon] when
// eps <= 0. A denominator that still lands on zero yields 0.
func SafeDiv(num, den, eps float64) float64 {
	if eps <= 0 {
		eps = Epsilon
	}

	d := den + eps
	if d == 0 {
		return 0
	}

	return num / d
}

// SafeLog returns ln(max(x, eps)).
func SafeLog(x, eps float64) float64 {
	if eps <= 0 {
		eps = Epsilon
	}

	if x < eps || math.IsNaN(x) {
		x = eps
	}

	return math.Log(x)
}

// SafeSqrt returns sqrt(max(x, 0)).
func SafeSqrt(x float64) float64 {
	if x <= 0 || math.IsNaN(x) {
		return 0
	}

	return math.Sqrt(x)
}

// CappedExp returns exp(min(x, limit)). A non-positive limit selects
// [MaxExponent].
func CappedExp(x, limit float64) float64 {
	if limit <= 0 {
		limit = MaxExponent
	}

	if math.IsNaN(x) {
		return 1
	}

	if x > limit {
		x = limit
	}

	return math.Exp(x)
}

// SafePow returns max(base, 0)^exp.
func SafePow(base, exp float64) float64 {
	if base <= 0 || math.IsNaN(base) {
		if exp > 0 {
			return 0
		}

		return 1
	}

	return math.Pow(base, exp)
}

// IsFinite reports whether x is neither NaN nor ±Inf.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// FlushDenormals converts tiny denormal-like values to exact zero.
func FlushDenormals(x float64) float64 {
	const epsilon = 1e-30
	if x > -epsilon && x < epsilon {
		return 0
	}

	return x
}
