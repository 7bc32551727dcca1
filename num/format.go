package num

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"
	"github.com/samber/mo"
)

// ToPrecision formats n with at most digits decimal places and strips
// trailing zeros (and a trailing decimal point).
//
//	ToPrecision(3.14159, 2) // "3.14"
//	ToPrecision(2.5, 3)     // "2.5"
//	ToPrecision(2.0, 2)     // "2"
func ToPrecision[N Number](n N, digits int) string {
	return trimZeros(strconv.FormatFloat(float64(n), 'f', max(digits, 0), 64))
}

func trimZeros(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	return strings.TrimSuffix(strings.TrimRight(s, "0"), ".")
}

// ─────────────────────────────────────────────────────────────────────────────
// Currency
// ─────────────────────────────────────────────────────────────────────────────

// CurrencyOptions configures [ToCurrencyString]. Zero-valued fields fall
// back to [DefaultCurrencyOptions], so a partially filled struct only
// overrides what it sets:
//
//	ToCurrencyString(1234.5, CurrencyOptions{Symbol: "$"}) // "$1,234.50"
type CurrencyOptions struct {
	// Symbol is written before the amount, or after it when SymbolAfter is
	// set. Default: "".
	Symbol string
	// SymbolAfter places Symbol after the amount ("1.000,50 €" style).
	SymbolAfter bool
	// Delimiter separates groups of three integer digits. Default: ",".
	Delimiter string
	// NoGrouping disables the Delimiter entirely ("1234567.89").
	NoGrouping bool
	// Separator separates the integer and decimal parts. Default: ".".
	Separator string
	// Precision is the number of decimal places. Default: 2. Use
	// mo.Some(0) for whole amounts.
	Precision mo.Option[int]
	// KeepZeroDecimals keeps an all-zero decimal part ("1,000.00" instead
	// of "1,000").
	KeepZeroDecimals bool
}

// DefaultCurrencyOptions returns options for "1,234,567.89" style output
// with no symbol.
func DefaultCurrencyOptions() CurrencyOptions {
	return CurrencyOptions{Delimiter: ",", Separator: ".", Precision: mo.Some(2)}
}

func (o CurrencyOptions) withDefaults() CurrencyOptions {
	d := DefaultCurrencyOptions()
	o.Delimiter = lo.CoalesceOrEmpty(o.Delimiter, d.Delimiter)
	o.Separator = lo.CoalesceOrEmpty(o.Separator, d.Separator)
	if o.Precision.IsAbsent() {
		o.Precision = d.Precision
	}
	if o.NoGrouping {
		o.Delimiter = ""
	}
	return o
}

// ToCurrencyString formats n as a money amount: integer digits grouped in
// threes from the right, Precision decimal places, and no decimal part at
// all when it is all zeros (unless KeepZeroDecimals is set). Negative
// amounts are prefixed with "-" before the symbol.
//
//	ToCurrencyString(1234567.89) // "1,234,567.89"
//	ToCurrencyString(-42.5)      // "-42.50"
func ToCurrencyString[N Number](n N, opts ...CurrencyOptions) string {
	o := lo.FirstOr(opts, CurrencyOptions{}).withDefaults()
	v := float64(n)
	neg := v < 0
	fixed := strconv.FormatFloat(math.Abs(v), 'f', max(o.Precision.MustGet(), 0), 64)
	intPart, frac, _ := strings.Cut(fixed, ".")

	amount := groupDigits(intPart, o.Delimiter)
	if frac != "" && (o.KeepZeroDecimals || strings.Trim(frac, "0") != "") {
		amount += o.Separator + frac
	}
	if o.SymbolAfter {
		amount += o.Symbol
	} else {
		amount = o.Symbol + amount
	}
	if neg && strings.Trim(intPart+frac, "0") != "" {
		return "-" + amount
	}
	return amount
}

func groupDigits(digits, delimiter string) string {
	if delimiter == "" || len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(delimiter)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// ─────────────────────────────────────────────────────────────────────────────
// Percentages, padding & ordinals
// ─────────────────────────────────────────────────────────────────────────────

// DefaultPercentagePrecision is the number of decimals [Percentage] uses
// when none is given.
const DefaultPercentagePrecision = 2

// Percentage returns value as a percentage of total with a fixed number of
// decimals (default [DefaultPercentagePrecision]). A zero total yields "0%".
//
//	Percentage(1, 4)    // "25.00%"
//	Percentage(1, 3, 1) // "33.3%"
func Percentage[N Number](value, total N, precision ...int) string {
	if total == 0 {
		return "0%"
	}
	p := DefaultPercentagePrecision
	if len(precision) > 0 {
		p = max(precision[0], 0)
	}
	pct := float64(value) / float64(total) * 100
	return strconv.FormatFloat(pct, 'f', p, 64) + "%"
}

// Pad left-pads the decimal representation of n with char (default '0')
// until it is width characters long. Longer values are returned as is.
//
//	Pad(7, 3)       // "007"
//	Pad(42, 5, ' ') // "   42"
func Pad[N Integer](n N, width int, char ...rune) string {
	c := '0'
	if len(char) > 0 {
		c = char[0]
	}
	s := formatRadix(n, 10)
	if missing := width - utf8.RuneCountInString(s); missing > 0 {
		s = strings.Repeat(string(c), missing) + s
	}
	return s
}

// ToOrdinalSuffix returns the English ordinal suffix for n: "st", "nd",
// "rd" or "th". Numbers ending in 11, 12 or 13 always take "th".
func ToOrdinalSuffix[N Integer](n N) string {
	u := absUint(n)
	if r := u % 100; r >= 11 && r <= 13 {
		return "th"
	}
	switch u % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	}
	return "th"
}

// ToOrdinal returns n followed by its ordinal suffix.
//
//	ToOrdinal(1)   // "1st"
//	ToOrdinal(112) // "112th"
func ToOrdinal[N Integer](n N) string {
	return formatRadix(n, 10) + ToOrdinalSuffix(n)
}

// ─────────────────────────────────────────────────────────────────────────────
// Radix
// ─────────────────────────────────────────────────────────────────────────────

func formatRadix[N Integer](n N, base int) string {
	if n < 0 {
		return strconv.FormatInt(int64(n), base)
	}
	return strconv.FormatUint(uint64(n), base)
}

// ToBinary returns n in base 2, with a leading "-" for negatives.
func ToBinary[N Integer](n N) string { return formatRadix(n, 2) }

// ToOctal returns n in base 8.
func ToOctal[N Integer](n N) string { return formatRadix(n, 8) }

// ToHex returns n in lower-case base 16.
func ToHex[N Integer](n N) string { return formatRadix(n, 16) }

// ─────────────────────────────────────────────────────────────────────────────
// Compact notation
// ─────────────────────────────────────────────────────────────────────────────

var compactUnits = []struct {
	size   float64
	suffix string
}{
	{1e12, "T"},
	{1e9, "B"},
	{1e6, "M"},
	{1e3, "K"},
}

// ToCompact abbreviates n with K, M, B or T and at most one decimal.
//
//	ToCompact(950)     // "950"
//	ToCompact(1234)    // "1.2K"
//	ToCompact(2500000) // "2.5M"
func ToCompact[N Number](n N) string {
	v := float64(n)
	sign := ""
	if v < 0 {
		sign, v = "-", -v
	}
	for i, unit := range compactUnits {
		if v < unit.size {
			continue
		}
		scaled := RoundTo(v/unit.size, 1)
		if scaled >= 1000 && i > 0 {
			unit = compactUnits[i-1]
			scaled = RoundTo(v/unit.size, 1)
		}
		return sign + ToPrecision(scaled, 1) + unit.suffix
	}
	return sign + ToPrecision(v, 1)
}
