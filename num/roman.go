package num

import (
	"fmt"
	"strings"
)

var romanNumerals = []struct {
	value  int
	symbol string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

// ToRoman converts n to an upper-case Roman numeral. Returns
// [ErrRomanOutOfRange] unless 1 <= n <= 3999.
//
//	ToRoman(1994) // "MCMXCIV"
func ToRoman(n int) (string, error) {
	if n < 1 || n > 3999 {
		return "", fmt.Errorf("%w: got %d", ErrRomanOutOfRange, n)
	}
	var b strings.Builder
	for _, r := range romanNumerals {
		for n >= r.value {
			b.WriteString(r.symbol)
			n -= r.value
		}
	}
	return b.String(), nil
}

// MustToRoman is like [ToRoman] but panics on error.
func MustToRoman(n int) string {
	s, err := ToRoman(n)
	if err != nil {
		panic(err)
	}
	return s
}

// FromRoman parses a canonical Roman numeral (case-insensitive). Numerals
// that [ToRoman] would never produce, such as "IIII" or "IC", are rejected
// with [ErrInvalidRoman].
func FromRoman(s string) (int, error) {
	upper := strings.ToUpper(strings.TrimSpace(s))
	rest, total := upper, 0
	for _, r := range romanNumerals {
		for strings.HasPrefix(rest, r.symbol) {
			total += r.value
			rest = rest[len(r.symbol):]
		}
	}
	if rest != "" || total == 0 || total > 3999 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidRoman, s)
	}
	if canonical, _ := ToRoman(total); canonical != upper {
		return 0, fmt.Errorf("%w: %q is not canonical (want %q)", ErrInvalidRoman, s, canonical)
	}
	return total, nil
}
