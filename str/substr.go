package str

import (
	"strings"
	"unicode/utf8"
)

// ─────────────────────────────────────────────────────────────────────────────
// Delimiter search: absent delimiter yields ""
// ─────────────────────────────────────────────────────────────────────────────

// Between returns the text between the first occurrence of start and the
// next occurrence of end after it. Returns "" if either is missing.
//
//	Between("a[b]c", "[", "]") // "b"
func Between(s, start, end string) string {
	i := strings.Index(s, start)
	if i < 0 {
		return ""
	}
	rest := s[i+len(start):]
	j := strings.Index(rest, end)
	if j < 0 {
		return ""
	}
	return rest[:j]
}

// Before returns the text before the first occurrence of delim, or "".
func Before(s, delim string) string {
	if i := strings.Index(s, delim); i >= 0 {
		return s[:i]
	}
	return ""
}

// After returns the text after the first occurrence of delim, or "".
func After(s, delim string) string {
	if i := strings.Index(s, delim); i >= 0 {
		return s[i+len(delim):]
	}
	return ""
}

// BeforeLast returns the text before the last occurrence of delim, or "".
func BeforeLast(s, delim string) string {
	if i := strings.LastIndex(s, delim); i >= 0 {
		return s[:i]
	}
	return ""
}

// AfterLast returns the text after the last occurrence of delim, or "".
func AfterLast(s, delim string) string {
	if i := strings.LastIndex(s, delim); i >= 0 {
		return s[i+len(delim):]
	}
	return ""
}

// ─────────────────────────────────────────────────────────────────────────────
// Dropping characters (rune based)
// ─────────────────────────────────────────────────────────────────────────────

// DropLeft removes the first n characters. Returns "" when n >= length and
// s unchanged when n <= 0.
func DropLeft(s string, n int) string {
	if n <= 0 {
		return s
	}
	runes := []rune(s)
	if n >= len(runes) {
		return ""
	}
	return string(runes[n:])
}

// DropRight removes the last n characters.
func DropRight(s string, n int) string {
	if n <= 0 {
		return s
	}
	runes := []rune(s)
	if n >= len(runes) {
		return ""
	}
	return string(runes[:len(runes)-n])
}

// DropLeftWhile removes leading characters while fn returns true.
func DropLeftWhile(s string, fn func(rune) bool) string {
	return strings.TrimLeftFunc(s, fn)
}

// DropRightWhile removes trailing characters while fn returns true.
func DropRightWhile(s string, fn func(rune) bool) string {
	return strings.TrimRightFunc(s, fn)
}

// ─────────────────────────────────────────────────────────────────────────────
// Prefix / suffix removal: absent affix yields s unchanged
// ─────────────────────────────────────────────────────────────────────────────

// RemovePrefix returns s without prefix, or s unchanged if it does not
// start with prefix.
func RemovePrefix(s, prefix string) string { return strings.TrimPrefix(s, prefix) }

// RemoveSuffix returns s without suffix, or s unchanged if it does not end
// with suffix.
func RemoveSuffix(s, suffix string) string { return strings.TrimSuffix(s, suffix) }

// ─────────────────────────────────────────────────────────────────────────────
// Replacement around a delimiter: absent delimiter yields s unchanged
// ─────────────────────────────────────────────────────────────────────────────

// ReplaceAfterFirst replaces everything after the first delim with
// replacement.
//
//	ReplaceAfterFirst("a.b.c", ".", "x") // "a.x"
func ReplaceAfterFirst(s, delim, replacement string) string {
	i := strings.Index(s, delim)
	if i < 0 {
		return s
	}
	return s[:i+len(delim)] + replacement
}

// ReplaceAfterLast replaces everything after the last delim with replacement.
func ReplaceAfterLast(s, delim, replacement string) string {
	i := strings.LastIndex(s, delim)
	if i < 0 {
		return s
	}
	return s[:i+len(delim)] + replacement
}

// ReplaceBeforeFirst replaces everything before the first delim with
// replacement.
func ReplaceBeforeFirst(s, delim, replacement string) string {
	i := strings.Index(s, delim)
	if i < 0 {
		return s
	}
	return replacement + s[i:]
}

// ReplaceBeforeLast replaces everything before the last delim with
// replacement.
//
//	ReplaceBeforeLast("a.b.c", ".", "x") // "x.c"
func ReplaceBeforeLast(s, delim, replacement string) string {
	i := strings.LastIndex(s, delim)
	if i < 0 {
		return s
	}
	return replacement + s[i:]
}

// ─────────────────────────────────────────────────────────────────────────────
// Character views
// ─────────────────────────────────────────────────────────────────────────────

// Chars splits s into its characters.
func Chars(s string) []string {
	out := make([]string, 0, utf8.RuneCountInString(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

// Lines splits s on "\n", "\r\n" or "\r".
func Lines(s string) []string {
	if s == "" {
		return []string{}
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.Split(s, "\n")
}
