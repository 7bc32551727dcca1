package str

import (
	"encoding/base64"
	"fmt"
	"regexp"
	"strconv"
)

var (
	indexPlaceholder = regexp.MustCompile(`\{(\d+)\}`)
	namedPlaceholder = regexp.MustCompile(`\{([A-Za-z_][A-Za-z0-9_.\-]*)\}`)
)

// Format substitutes positional {0}, {1}, … placeholders with the matching
// argument rendered by fmt.Sprint. Returns [ErrIndexOutOfRange] when a
// placeholder refers to a missing argument.
//
//	Format("{0} + {0} = {1}", 2, 4) // "2 + 2 = 4"
func Format(pattern string, args ...any) (string, error) {
	var err error
	out := indexPlaceholder.ReplaceAllStringFunc(pattern, func(m string) string {
		if err != nil {
			return m
		}
		idx, convErr := strconv.Atoi(m[1 : len(m)-1])
		if convErr != nil || idx >= len(args) {
			err = fmt.Errorf("%w: %s with %d argument(s)", ErrIndexOutOfRange, m, len(args))
			return m
		}
		return fmt.Sprint(args[idx])
	})
	if err != nil {
		return "", err
	}
	return out, nil
}

// FormatMap substitutes named {key} placeholders with the matching value
// from values. Returns [ErrMissingKey] when a placeholder has no entry.
//
//	FormatMap("Hi {name}", map[string]any{"name": "Ada"}) // "Hi Ada"
func FormatMap(pattern string, values map[string]any) (string, error) {
	var err error
	out := namedPlaceholder.ReplaceAllStringFunc(pattern, func(m string) string {
		if err != nil {
			return m
		}
		key := m[1 : len(m)-1]
		v, ok := values[key]
		if !ok {
			err = fmt.Errorf("%w: %q", ErrMissingKey, key)
			return m
		}
		return fmt.Sprint(v)
	})
	if err != nil {
		return "", err
	}
	return out, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Encoding
// ─────────────────────────────────────────────────────────────────────────────

// ToBytes returns the UTF-8 bytes of s.
func ToBytes(s string) []byte { return []byte(s) }

// ToBase64 encodes the UTF-8 bytes of s with standard, padded Base64.
func ToBase64(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

// FromBase64 decodes standard, padded Base64 back into a string.
// FromBase64(ToBase64(s)) == s for every s.
func FromBase64(s string) (string, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidBase64, err)
	}
	return string(b), nil
}
