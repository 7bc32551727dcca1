package str

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/samber/mo"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	htmlTagPattern   = regexp.MustCompile(`<[^>]*>`)
	slugStripPattern = regexp.MustCompile(`[^\w\s\-]`)
	slugSepPattern   = regexp.MustCompile(`[\s_\-]+`)
)

// MaskOptions configures [Mask].
type MaskOptions struct {
	// Head is the number of leading characters left visible.
	Head int
	// Tail is the number of trailing characters left visible.
	Tail int
	// Char replaces every hidden character. Defaults to '*' when zero.
	Char rune
}

// DefaultMaskOptions keeps the last four characters visible, the usual
// layout for card and account numbers.
func DefaultMaskOptions() MaskOptions {
	return MaskOptions{Head: 0, Tail: 4, Char: '*'}
}

// Mask hides the middle of s, keeping opts.Head leading and opts.Tail
// trailing characters. Strings no longer than Head+Tail are returned as is.
//
//	Mask("4111111111111111", DefaultMaskOptions()) // "************1111"
func Mask(s string, opts MaskOptions) string {
	if opts.Char == 0 {
		opts.Char = '*'
	}
	head, tail := max(opts.Head, 0), max(opts.Tail, 0)
	rs := []rune(s)
	if len(rs) <= head+tail {
		return s
	}
	var b strings.Builder
	b.WriteString(string(rs[:head]))
	b.WriteString(strings.Repeat(string(opts.Char), len(rs)-head-tail))
	b.WriteString(string(rs[len(rs)-tail:]))
	return b.String()
}

// Truncate cuts s to length characters and appends ellipsis (default "...")
// only when something was actually cut.
//
//	Truncate("Hello world", 5) // "Hello..."
func Truncate(s string, length int, ellipsis ...string) string {
	tail := "..."
	if len(ellipsis) > 0 {
		tail = ellipsis[0]
	}
	if length < 0 {
		length = 0
	}
	if utf8.RuneCountInString(s) <= length {
		return s
	}
	return string([]rune(s)[:length]) + tail
}

// Initials returns the upper-cased first letter of at most limit (default 2)
// whitespace-separated words.
//
//	Initials("john ronald reuel tolkien")    // "JR"
//	Initials("john ronald reuel tolkien", 4) // "JRRT"
func Initials(s string, limit ...int) string {
	n := 2
	if len(limit) > 0 {
		n = limit[0]
	}
	var b strings.Builder
	for i, w := range strings.Fields(s) {
		if i >= n {
			break
		}
		r, _ := utf8.DecodeRuneInString(w)
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

// ToSlug converts s to a URL slug: accents are folded ("é" → "e"), the
// result is lower-cased, characters other than letters, digits, whitespace,
// underscores and hyphens are removed, and runs of whitespace, underscores
// and hyphens collapse to a single hyphen.
//
//	ToSlug("  Héllo, Wörld_2024! ") // "hello-world-2024"
func ToSlug(s string) string {
	folded, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), s)
	if err != nil {
		folded = s
	}
	out := strings.ToLower(strings.TrimSpace(folded))
	out = slugStripPattern.ReplaceAllString(out, "")
	out = slugSepPattern.ReplaceAllString(out, "-")
	return strings.Trim(out, "-")
}

// Reverse returns s with its characters in reverse order.
func Reverse(s string) string {
	rs := []rune(s)
	for i, j := 0, len(rs)-1; i < j; i, j = i+1, j-1 {
		rs[i], rs[j] = rs[j], rs[i]
	}
	return string(rs)
}

// StripHTML removes every <...> tag from s.
func StripHTML(s string) string {
	return htmlTagPattern.ReplaceAllString(s, "")
}

// Repeat joins n copies of s with an optional separator.
//
//	Repeat("ab", 3, "-") // "ab-ab-ab"
func Repeat(s string, n int, sep ...string) string {
	if n <= 0 {
		return ""
	}
	separator := ""
	if len(sep) > 0 {
		separator = sep[0]
	}
	parts := make([]string, n)
	for i := range parts {
		parts[i] = s
	}
	return strings.Join(parts, separator)
}

// CountOccurrences counts non-overlapping occurrences of sub in s.
// An empty sub never occurs.
func CountOccurrences(s, sub string) int {
	if sub == "" {
		return 0
	}
	return strings.Count(s, sub)
}

// WordCount returns the number of whitespace-separated words in s.
func WordCount(s string) int { return len(strings.Fields(s)) }

// VowelCount returns the number of ASCII vowels (a, e, i, o, u) in s,
// ignoring case.
func VowelCount(s string) int {
	n := 0
	for _, r := range strings.ToLower(s) {
		switch r {
		case 'a', 'e', 'i', 'o', 'u':
			n++
		}
	}
	return n
}

// PadLeft left-pads s with pad until it is width characters long.
func PadLeft(s string, width int, pad rune) string {
	n := width - utf8.RuneCountInString(s)
	if n <= 0 {
		return s
	}
	return strings.Repeat(string(pad), n) + s
}

// PadRight right-pads s with pad until it is width characters long.
func PadRight(s string, width int, pad rune) string {
	n := width - utf8.RuneCountInString(s)
	if n <= 0 {
		return s
	}
	return s + strings.Repeat(string(pad), n)
}

// Wrap surrounds s with with on both sides.
func Wrap(s, with string) string { return with + s + with }

// ContainsIgnoreCase reports whether substr is within s, ignoring case.
func ContainsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// EqualsIgnoreCase reports whether a and b are equal under Unicode case folding.
func EqualsIgnoreCase(a, b string) bool { return strings.EqualFold(a, b) }

// ToInt parses s as a base-10 integer.
func ToInt(s string) mo.Option[int] {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return mo.None[int]()
	}
	return mo.Some(n)
}

// ToFloat parses s as a 64-bit float.
func ToFloat(s string) mo.Option[float64] {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return mo.None[float64]()
	}
	return mo.Some(f)
}
