package str

import "strings"

// Pluralize appends "s" to word. When a count is supplied and equals 1 the
// word is returned unchanged.
//
// The rule is intentionally naive: "box" becomes "boxs". Callers needing
// irregular forms should keep their own lookup table.
func Pluralize(word string, count ...int) string {
	if word == "" || (len(count) > 0 && count[0] == 1) {
		return word
	}
	return word + "s"
}

// Singularize strips one trailing "s" from word, the inverse of [Pluralize].
func Singularize(word string) string {
	if len(word) > 1 && strings.HasSuffix(word, "s") && !strings.HasSuffix(word, "ss") {
		return word[:len(word)-1]
	}
	return word
}

// Tableize returns the pluralised snake_case table name for a type name.
//
//	Tableize("UserProfile") // "user_profiles"
func Tableize(s string) string {
	return Pluralize(ToSnakeCase(s))
}

// ForeignKey returns the snake_case foreign-key column for a type name.
//
//	ForeignKey("UserProfile") // "user_profile_id"
func ForeignKey(s string) string {
	snake := ToSnakeCase(s)
	if snake == "" {
		return ""
	}
	return snake + "_id"
}

// Constantize returns the SCREAMING_SNAKE_CASE constant name for s.
//
//	Constantize("maxRetryCount") // "MAX_RETRY_COUNT"
func Constantize(s string) string {
	return ToScreamingSnakeCase(s)
}

// Sequenceize returns the database sequence name for a type name: its table
// name followed by "_seq".
//
//	Sequenceize("UserProfile") // "user_profiles_seq"
func Sequenceize(s string) string {
	table := Tableize(s)
	if table == "" {
		return ""
	}
	return table + "_seq"
}

// Pathize returns the lower-cased words of s joined by "/".
//
//	Pathize("UserProfile") // "user/profile"
func Pathize(s string) string {
	return joinWords(s, "/", func(_ int, w string) string { return strings.ToLower(w) })
}

// Variablize returns the camelCase variable name for s.
//
//	Variablize("user_profile") // "userProfile"
func Variablize(s string) string {
	return ToCamelCase(s)
}
