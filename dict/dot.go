package dict

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"
)

// ─────────────────────────────────────────────────────────────────────────────
// Dot-notation paths over map[string]any
//
// These functions read, write and test values in nested map[string]any trees
// (the shape produced by encoding/json or yaml.v3) through dot-separated key
// paths:
//
//	m := map[string]any{
//	    "user": map[string]any{
//	        "name":    "Alice",
//	        "address": map[string]any{"city": "London"},
//	    },
//	}
//
//	Get(m, "user.address.city")  → Some("London")
//	Set(m, "user.age", 30)
//	Has(m, "user.name")          → true
//	Forget(m, "user.address")    → true
// ─────────────────────────────────────────────────────────────────────────────

func splitPath(path string) ([]string, error) {
	segments := strings.Split(path, DefaultSeparator)
	if slices.Contains(segments, "") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPath, path)
	}
	return segments, nil
}

// parent walks every segment but the last and returns the map holding the
// final key, or false when an intermediate node is missing or not a map.
func parent(m map[string]any, segments []string) (map[string]any, bool) {
	current := m
	for _, seg := range segments[:len(segments)-1] {
		nested, ok := current[seg].(map[string]any)
		if !ok {
			return nil, false
		}
		current = nested
	}
	return current, true
}

// Get returns the value at the dot path, or an absent option when any
// segment is missing or runs through a non-map value.
//
//	Get(m, "user.address.city") // Some("London")
//	Get(m, "user.missing")      // None
func Get(m map[string]any, path string) mo.Option[any] {
	segments, err := splitPath(path)
	if err != nil {
		return mo.None[any]()
	}
	node, ok := parent(m, segments)
	if !ok {
		return mo.None[any]()
	}
	v, ok := node[segments[len(segments)-1]]
	return mo.TupleToOption(v, ok)
}

// Set writes value at the dot path, creating intermediate maps as needed.
// An intermediate value that is not a map is replaced by a new map.
// Returns [ErrInvalidPath] for an empty path or an empty segment.
//
//	Set(m, "user.address.postcode", "EC1")
func Set(m map[string]any, path string, value any) error {
	segments, err := splitPath(path)
	if err != nil {
		return err
	}
	current := m
	for _, seg := range segments[:len(segments)-1] {
		nested, ok := current[seg].(map[string]any)
		if !ok {
			nested = make(map[string]any)
			current[seg] = nested
		}
		current = nested
	}
	current[segments[len(segments)-1]] = value
	return nil
}

// Has reports whether the dot path exists in m.
func Has(m map[string]any, path string) bool {
	return Get(m, path).IsPresent()
}

// HasAll reports whether every dot path exists in m.
func HasAll(m map[string]any, paths ...string) bool {
	return lo.EveryBy(paths, func(p string) bool { return Has(m, p) })
}

// HasAny reports whether at least one dot path exists in m.
func HasAny(m map[string]any, paths ...string) bool {
	return lo.SomeBy(paths, func(p string) bool { return Has(m, p) })
}

// Forget removes the value at the dot path and reports whether it existed.
// Emptied intermediate maps are left in place.
func Forget(m map[string]any, path string) bool {
	segments, err := splitPath(path)
	if err != nil {
		return false
	}
	node, ok := parent(m, segments)
	if !ok {
		return false
	}
	last := segments[len(segments)-1]
	if _, exists := node[last]; !exists {
		return false
	}
	delete(node, last)
	return true
}

// DeepMerge merges src into dst and returns dst. Values in src overwrite
// values in dst, except that two nested maps under the same key are merged
// recursively.
func DeepMerge(dst, src map[string]any) map[string]any {
	for k, incoming := range src {
		dstMap, dstIsMap := dst[k].(map[string]any)
		srcMap, srcIsMap := incoming.(map[string]any)
		if dstIsMap && srcIsMap {
			DeepMerge(dstMap, srcMap)
			continue
		}
		dst[k] = incoming
	}
	return dst
}
