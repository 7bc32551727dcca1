package str

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ─────────────────────────────────────────────────────────────────────────────
// Tokenizer
// ─────────────────────────────────────────────────────────────────────────────

func isWordDelimiter(r rune) bool {
	return unicode.IsSpace(r) || r == '_' || r == '-' || r == '.'
}

// Words splits s into its constituent words.
//
// A new word starts after any whitespace, underscore, hyphen or dot, and
// before an uppercase letter that follows a lowercase letter or digit.
// A run of capitals followed by a lowercase letter is treated as an acronym
// that ends one letter early, so "HTTPServer" yields "HTTP", "Server".
func Words(s string) []string {
	runes := []rune(s)
	words := make([]string, 0, 4)
	start := -1
	flush := func(end int) {
		if start >= 0 && end > start {
			words = append(words, string(runes[start:end]))
		}
		start = -1
	}
	for i, r := range runes {
		if isWordDelimiter(r) {
			flush(i)
			continue
		}
		if start < 0 {
			start = i
			continue
		}
		if unicode.IsUpper(r) {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				flush(i)
				start = i
			}
		}
	}
	flush(len(runes))
	return words
}

func titleWord(w string) string {
	return cases.Title(language.English).String(w)
}

func joinWords(s, sep string, fn func(i int, w string) string) string {
	words := Words(s)
	for i, w := range words {
		words[i] = fn(i, w)
	}
	return strings.Join(words, sep)
}

// ─────────────────────────────────────────────────────────────────────────────
// Single-word casing
// ─────────────────────────────────────────────────────────────────────────────

// Capitalize upper-cases the first character of s and leaves the rest as is.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// Uncapitalize lower-cases the first character of s and leaves the rest as is.
func Uncapitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

// ─────────────────────────────────────────────────────────────────────────────
// Multi-word casing
// ─────────────────────────────────────────────────────────────────────────────

// TitleCase returns every word of s title-cased and separated by a space.
//
//	TitleCase("hello_world") // "Hello World"
func TitleCase(s string) string {
	return joinWords(s, " ", func(_ int, w string) string { return titleWord(w) })
}

// ToCamelCase converts s to camelCase.
//
//	ToCamelCase("Hello world-foo") // "helloWorldFoo"
func ToCamelCase(s string) string {
	return joinWords(s, "", func(i int, w string) string {
		if i == 0 {
			return strings.ToLower(w)
		}
		return titleWord(w)
	})
}

// ToPascalCase converts s to PascalCase.
func ToPascalCase(s string) string {
	return joinWords(s, "", func(_ int, w string) string { return titleWord(w) })
}

// ToSnakeCase converts s to snake_case.
//
//	ToSnakeCase("helloWorld") // "hello_world"
//	ToSnakeCase("HTTPServer") // "http_server"
func ToSnakeCase(s string) string {
	return joinWords(s, "_", func(_ int, w string) string { return strings.ToLower(w) })
}

// ToScreamingSnakeCase converts s to SCREAMING_SNAKE_CASE.
func ToScreamingSnakeCase(s string) string {
	return joinWords(s, "_", func(_ int, w string) string { return strings.ToUpper(w) })
}

// ToKebabCase converts s to kebab-case.
func ToKebabCase(s string) string {
	return joinWords(s, "-", func(_ int, w string) string { return strings.ToLower(w) })
}

// ToTrainCase converts s to Train-Case.
//
//	ToTrainCase("hello world") // "Hello-World"
func ToTrainCase(s string) string {
	return joinWords(s, "-", func(_ int, w string) string { return titleWord(w) })
}

// ToDotCase converts s to dot.case.
func ToDotCase(s string) string {
	return joinWords(s, ".", func(_ int, w string) string { return strings.ToLower(w) })
}

// Underscore converts a (possibly namespaced) identifier to its
// underscored path form: "::" becomes "/" and each segment is snake_cased.
//
//	Underscore("ActiveModel::Errors") // "active_model/errors"
func Underscore(s string) string {
	segments := strings.Split(s, "::")
	for i, seg := range segments {
		segments[i] = ToSnakeCase(seg)
	}
	return strings.Join(segments, "/")
}

// Humanize turns an identifier into a human-readable phrase: words are
// lower-cased and space-separated, a trailing "id" word is dropped and the
// first letter is capitalised.
//
//	Humanize("employee_salary") // "Employee salary"
//	Humanize("authorId")        // "Author"
func Humanize(s string) string {
	words := Words(s)
	if len(words) > 1 && strings.EqualFold(words[len(words)-1], "id") {
		words = words[:len(words)-1]
	}
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return Capitalize(strings.Join(words, " "))
}
