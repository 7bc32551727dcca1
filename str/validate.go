package str

import (
	"net/netip"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// Patterns used by the validation predicates. They are anchored and compiled
// once at package initialisation.
var (
	emailPattern    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	digitsPattern   = regexp.MustCompile(`^[0-9]+$`)
	alphaPattern    = regexp.MustCompile(`^[a-zA-Z]+$`)
	alnumPattern    = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	urlPattern      = regexp.MustCompile(`^(https?|ftp)://[^\s/$.?#][^\s]*$`)
	phonePattern    = regexp.MustCompile(`^\+?[0-9][0-9\s\-().]{5,18}[0-9]$`)
	hexColorPattern = regexp.MustCompile(`^#?([0-9a-fA-F]{3}|[0-9a-fA-F]{4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
	ipv4Pattern     = regexp.MustCompile(`^((25[0-5]|2[0-4][0-9]|1[0-9]{2}|[1-9]?[0-9])\.){3}(25[0-5]|2[0-4][0-9]|1[0-9]{2}|[1-9]?[0-9])$`)
	slugPattern     = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	specialPattern  = regexp.MustCompile(`[^a-zA-Z0-9\s]`)
)

// IsBlank reports whether s is empty or contains only whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// IsEmail reports whether s looks like an e-mail address (local@domain.tld).
func IsEmail(s string) bool { return emailPattern.MatchString(s) }

// IsDigits reports whether s consists solely of ASCII digits.
func IsDigits(s string) bool { return digitsPattern.MatchString(s) }

// IsAlpha reports whether s consists solely of ASCII letters.
func IsAlpha(s string) bool { return alphaPattern.MatchString(s) }

// IsAlphanumeric reports whether s consists solely of ASCII letters and digits.
func IsAlphanumeric(s string) bool { return alnumPattern.MatchString(s) }

// IsURL reports whether s is an http, https or ftp URL.
func IsURL(s string) bool { return urlPattern.MatchString(s) }

// IsPhoneNumber reports whether s is a phone number of 7 to 20 characters
// made of digits, spaces, dashes, dots and parentheses, with an optional
// leading "+".
func IsPhoneNumber(s string) bool { return phonePattern.MatchString(s) }

// IsHexColor reports whether s is a 3, 4, 6 or 8 digit hex colour, with or
// without a leading "#".
func IsHexColor(s string) bool { return hexColorPattern.MatchString(s) }

// IsIPv4 reports whether s is a dotted-quad IPv4 address without leading zeros.
func IsIPv4(s string) bool { return ipv4Pattern.MatchString(s) }

// IsIPv6 reports whether s is a textual IPv6 address. Zoned addresses
// ("fe80::1%eth0") and IPv4 addresses are rejected.
func IsIPv6(s string) bool {
	if !strings.Contains(s, ":") {
		return false
	}
	addr, err := netip.ParseAddr(s)
	return err == nil && addr.Is6() && addr.Zone() == ""
}

// IsUUID reports whether s is a UUID in any of the forms accepted by
// github.com/google/uuid (canonical, urn:uuid:, braced or 32 hex digits).
func IsUUID(s string) bool {
	return s != "" && uuid.Validate(s) == nil
}

// IsSlug reports whether s is a lower-case, hyphen-separated slug.
func IsSlug(s string) bool { return slugPattern.MatchString(s) }

// IsNumeric reports whether s parses as a decimal number.
func IsNumeric(s string) bool {
	_, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return s != "" && err == nil
}

// IsStrongPassword reports whether s is at least 8 characters long and
// contains an upper-case letter, a lower-case letter, a digit and a
// character that is none of those.
func IsStrongPassword(s string) bool {
	if len([]rune(s)) < 8 {
		return false
	}
	var upper, lower, digit bool
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return upper && lower && digit && specialPattern.MatchString(s)
}

// IsPalindrome reports whether s reads the same backwards once it has been
// lower-cased and stripped of everything except letters and digits.
// Input with no letters or digits is not a palindrome.
func IsPalindrome(s string) bool {
	cleaned := make([]rune, 0, len(s))
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			cleaned = append(cleaned, r)
		}
	}
	if len(cleaned) == 0 {
		return false
	}
	for i, j := 0, len(cleaned)-1; i < j; i, j = i+1, j-1 {
		if cleaned[i] != cleaned[j] {
			return false
		}
	}
	return true
}
