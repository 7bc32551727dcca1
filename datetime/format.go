package datetime

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// formatTokens is ordered longest first within each letter so the scanner
// always takes the longest match.
var formatTokens = []struct {
	token  string
	render func(time.Time) string
}{
	{"yyyy", func(t time.Time) string { return fmt.Sprintf("%04d", t.Year()) }},
	{"yy", func(t time.Time) string { return fmt.Sprintf("%02d", t.Year()%100) }},
	{"MMMM", func(t time.Time) string { return t.Month().String() }},
	{"MMM", func(t time.Time) string { return t.Month().String()[:3] }},
	{"MM", func(t time.Time) string { return fmt.Sprintf("%02d", int(t.Month())) }},
	{"M", func(t time.Time) string { return strconv.Itoa(int(t.Month())) }},
	{"dd", func(t time.Time) string { return fmt.Sprintf("%02d", t.Day()) }},
	{"d", func(t time.Time) string { return strconv.Itoa(t.Day()) }},
	{"HH", func(t time.Time) string { return fmt.Sprintf("%02d", t.Hour()) }},
	{"H", func(t time.Time) string { return strconv.Itoa(t.Hour()) }},
	{"mm", func(t time.Time) string { return fmt.Sprintf("%02d", t.Minute()) }},
	{"ss", func(t time.Time) string { return fmt.Sprintf("%02d", t.Second()) }},
	{"EEEE", func(t time.Time) string { return t.Weekday().String() }},
	{"EEE", func(t time.Time) string { return t.Weekday().String()[:3] }},
}

// Format renders t with a Unicode-style pattern:
//
//	yyyy yy      year (4 digits / last 2)
//	MMMM MMM     month name (full / 3 letters)
//	MM M         month number (padded / plain)
//	dd d         day of month
//	HH H         hour, 24h clock
//	mm ss        minute, second
//	EEEE EEE     weekday name (full / 3 letters)
//
// Text inside single quotes is copied verbatim and '' yields a literal
// quote. Every other character passes through unchanged. Returns
// [ErrInvalidPattern] when a quoted section is not closed.
//
//	Format(t, "dd MMM yyyy")        // "05 Mar 2024"
//	Format(t, "EEEE 'at' HH:mm")    // "Tuesday at 14:30"
func Format(t time.Time, pattern string) (string, error) {
	var b strings.Builder
	for i := 0; i < len(pattern); {
		if pattern[i] == '\'' {
			lit, next, err := quoted(pattern, i)
			if err != nil {
				return "", err
			}
			b.WriteString(lit)
			i = next
			continue
		}
		if tok, render, ok := matchToken(pattern[i:]); ok {
			b.WriteString(render(t))
			i += len(tok)
			continue
		}
		b.WriteByte(pattern[i])
		i++
	}
	return b.String(), nil
}

// MustFormat is like [Format] but panics on an invalid pattern.
func MustFormat(t time.Time, pattern string) string {
	s, err := Format(t, pattern)
	if err != nil {
		panic(err)
	}
	return s
}

func matchToken(s string) (string, func(time.Time) string, bool) {
	for _, ft := range formatTokens {
		if strings.HasPrefix(s, ft.token) {
			return ft.token, ft.render, true
		}
	}
	return "", nil, false
}

// quoted reads the literal starting at the quote at pattern[start] and
// returns it with the index just past the closing quote.
func quoted(pattern string, start int) (string, int, error) {
	if strings.HasPrefix(pattern[start:], "''") {
		return "'", start + 2, nil
	}
	var b strings.Builder
	for i := start + 1; i < len(pattern); i++ {
		if pattern[i] != '\'' {
			b.WriteByte(pattern[i])
			continue
		}
		if i+1 < len(pattern) && pattern[i+1] == '\'' {
			b.WriteByte('\'')
			i++
			continue
		}
		return b.String(), i + 1, nil
	}
	return "", 0, fmt.Errorf("%w: unterminated quote at offset %d", ErrInvalidPattern, start)
}
