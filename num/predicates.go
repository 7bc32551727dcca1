package num

import "math"

// IsPositive reports whether n > 0.
func IsPositive[N Number](n N) bool { return n > 0 }

// IsNegative reports whether n < 0.
func IsNegative[N Number](n N) bool { return n < 0 }

// IsZero reports whether n == 0.
func IsZero[N Number](n N) bool { return n == 0 }

// IsEven reports whether n is divisible by 2.
func IsEven[N Integer](n N) bool { return n%2 == 0 }

// IsOdd reports whether n is not divisible by 2.
func IsOdd[N Integer](n N) bool { return n%2 != 0 }

// IsInteger reports whether f is finite and has no fractional part.
func IsInteger[F Float](f F) bool {
	x := float64(f)
	return !math.IsInf(x, 0) && !math.IsNaN(x) && x == math.Trunc(x)
}

// IsDouble reports whether f is finite and has a fractional part.
func IsDouble[F Float](f F) bool {
	x := float64(f)
	return !math.IsInf(x, 0) && !math.IsNaN(x) && x != math.Trunc(x)
}

// IsPrime reports whether n is prime, by trial division up to √n.
// Numbers below 2 are never prime.
func IsPrime[N Integer](n N) bool {
	if n < 2 {
		return false
	}
	if n < 4 {
		return true
	}
	if n%2 == 0 {
		return false
	}
	for d := N(3); d <= n/d; d += 2 {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// IsInRange reports whether low <= n <= high.
func IsInRange[N Number](n, low, high N) bool {
	return n >= low && n <= high
}
