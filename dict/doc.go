// Package dict provides helpers for associative maps.
//
// Built-in Go maps have no iteration order, yet several operations here are
// defined by encounter order (Shift removes the "first" entry, UniqueValues
// keeps the first key per value, InvertMap lets the last duplicate win). They
// therefore operate on [Map], a small insertion-ordered map:
//
//	m := dict.New[string, int]().Set("a", 1).Set("b", 2)
//	for k, v := range m.All() {
//	    fmt.Println(k, v)
//	}
//
// Use [FromMapSorted] to lift a built-in map into a deterministic order.
//
// # Nested data
//
// [Flatten], [Unflatten] and [DeepGet] walk nested maps. Both *Map[string, any]
// and map[string]any are accepted as intermediate nodes, so data decoded by
// encoding/json can be mixed with ordered maps:
//
//	dict.DeepGet(m, "user", "address", "city") // mo.Some[any]("London")
//
// The dot-notation functions [Get], [Set], [Has], [HasAll], [HasAny] and
// [Forget] address plain map[string]any trees with paths such as
// "user.address.city". [Query] evaluates a JSONPath expression instead.
//
// # Encoding
//
// [Map] implements json.Marshaler and keeps its member order. [ToJSON],
// [ToYAML] and [ToTOML] render nested maps in the matching format.
package dict
