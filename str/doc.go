// Package str provides standalone helper functions that extend Go's built-in
// string type: case conversion, validation predicates, substring slicing,
// placeholder formatting, encoding and a handful of inflection helpers.
//
// Every function takes the receiver string as its first argument and returns
// a new value; no function mutates shared state, so all helpers are safe for
// concurrent use.
//
// # Case conversion
//
// Input is split into words on whitespace, underscores, hyphens and dots, and
// on lower-to-upper letter transitions ("helloWorld" → "hello", "World").
// The words are then reassembled in the requested style:
//
//	str.ToSnakeCase("helloWorld Foo") // "hello_world_foo"
//	str.ToCamelCase("hello-world")    // "helloWorld"
//	str.ToTrainCase("hello world")    // "Hello-World"
//
// # Absence semantics
//
// The Between / Before / After family returns "" when the delimiter is
// missing, whereas RemovePrefix / RemoveSuffix and the Replace*First/Last
// family return the input unchanged. The asymmetry is deliberate and
// preserved across the package.
//
// # Errors
//
// Only operations with a real precondition return an error: [Format] and
// [FormatMap] (out-of-range index or missing key), [FromBase64] (malformed
// input) and [Digest] (unknown algorithm). Compare with [errors.Is] against
// the sentinels in this package.
package str
