package num

import (
	"fmt"
	"math"
	"strconv"

	"github.com/samber/lo"
)

// SwapSign returns -n.
func SwapSign[N Signed | Float](n N) N { return -n }

// Abs returns the absolute value of n.
func Abs[N Signed | Float](n N) N {
	if n < 0 {
		return -n
	}
	return n
}

// Clamp limits n to the inclusive range [low, high].
func Clamp[N Number](n, low, high N) N {
	return lo.Clamp(n, low, high)
}

// Lerp interpolates linearly from a to b: a + (b-a)*t. t is not clamped.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Normalize maps n from [low, high] onto [0, 1], the inverse of [Lerp].
// It returns 0 when low == high.
func Normalize[N Number](n, low, high N) float64 {
	if low == high {
		return 0
	}
	return (float64(n) - float64(low)) / (float64(high) - float64(low))
}

// Factorial returns n!. Returns [ErrNegativeFactorial] for n < 0 and
// [ErrOverflow] when the result would not fit uint64 (n > 20).
//
//	Factorial(5) // 120
func Factorial(n int) (uint64, error) {
	switch {
	case n < 0:
		return 0, fmt.Errorf("%w: %d", ErrNegativeFactorial, n)
	case n > 20:
		return 0, fmt.Errorf("%w: %d! does not fit uint64", ErrOverflow, n)
	}
	result := uint64(1)
	for i := 2; i <= n; i++ {
		result *= uint64(i)
	}
	return result, nil
}

// MustFactorial is like [Factorial] but panics on error.
func MustFactorial(n int) uint64 {
	return lo.Must(Factorial(n))
}

// Gcd returns the greatest common divisor of a and b (always >= 0).
func Gcd[N Integer](a, b N) N {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}

// Lcm returns the least common multiple of a and b, or 0 if either is 0.
func Lcm[N Integer](a, b N) N {
	if a == 0 || b == 0 {
		return 0
	}
	l := a / Gcd(a, b) * b
	if l < 0 {
		return -l
	}
	return l
}

// ─────────────────────────────────────────────────────────────────────────────
// Digits
// ─────────────────────────────────────────────────────────────────────────────

func digits[N Integer](n N) string {
	return strconv.FormatUint(absUint(n), 10)
}

func absUint[N Integer](n N) uint64 {
	if n < 0 {
		return uint64(-int64(n))
	}
	return uint64(n)
}

// SumOfDigits returns the sum of the decimal digits of |n|.
func SumOfDigits[N Integer](n N) int {
	sum := 0
	for _, r := range digits(n) {
		sum += int(r - '0')
	}
	return sum
}

// DigitCount returns the number of decimal digits of |n|; 0 has one digit.
func DigitCount[N Integer](n N) int {
	return len(digits(n))
}

// Reversed returns n with its decimal digits reversed, keeping the sign.
// Leading zeros of the result are dropped: Reversed(120) == 21. Returns
// [ErrOverflow] when the reversed value does not fit N, as with
// Reversed(int8(-128)).
func Reversed[N Integer](n N) (N, error) {
	rev := string(lo.Reverse([]rune(digits(n))))
	u, err := strconv.ParseUint(rev, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: reversing %d", ErrOverflow, n)
	}
	if n < 0 {
		out := -N(u)
		if out > 0 || uint64(-int64(out)) != u {
			return 0, fmt.Errorf("%w: reversing %d", ErrOverflow, n)
		}
		return out, nil
	}
	out := N(u)
	if out < 0 || uint64(out) != u {
		return 0, fmt.Errorf("%w: reversing %d", ErrOverflow, n)
	}
	return out, nil
}

// MustReversed is like [Reversed] but panics on overflow.
func MustReversed[N Integer](n N) N {
	return lo.Must(Reversed(n))
}

// ─────────────────────────────────────────────────────────────────────────────
// Angles & rounding
// ─────────────────────────────────────────────────────────────────────────────

// ToRadians converts degrees to radians.
func ToRadians(deg float64) float64 { return deg * math.Pi / 180 }

// ToDegrees converts radians to degrees.
func ToDegrees(rad float64) float64 { return rad * 180 / math.Pi }

// RoundTo rounds f to the given number of decimal places, halves away from
// zero. Negative decimals round to tens, hundreds and so on.
//
//	RoundTo(3.14159, 2) // 3.14
//	RoundTo(1250, -2)   // 1300
func RoundTo(f float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))
	return math.Round(f*scale) / scale
}
