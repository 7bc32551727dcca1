package dict

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"
)

// DefaultSeparator joins nested keys in [Flatten] and splits them in
// [Unflatten].
const DefaultSeparator = "."

// ─────────────────────────────────────────────────────────────────────────────
// Flatten / Unflatten
// ─────────────────────────────────────────────────────────────────────────────

// Flatten collapses nested maps into a single level, joining keys with sep
// (default "."). Nested *Map[string, any] values keep their order; nested
// map[string]any values are visited in ascending key order. Every other
// value, including an empty nested map, is a leaf and passes through
// unchanged.
//
//	Flatten({"a": {"b": 1, "c": {"d": 2}}, "e": 3})
//	// {"a.b": 1, "a.c.d": 2, "e": 3}
func Flatten(m *Map[string, any], sep ...string) *Map[string, any] {
	s := lo.FirstOr(sep, DefaultSeparator)
	out := New[string, any]()
	flattenInto(out, "", m.All(), s)
	return out
}

func flattenInto(out *Map[string, any], prefix string, entries iter.Seq2[string, any], sep string) {
	for k, v := range entries {
		key := k
		if prefix != "" {
			key = prefix + sep + k
		}
		if nested, ok := children(v); ok {
			flattenInto(out, key, nested, sep)
			continue
		}
		out.Set(key, v)
	}
}

// children returns an ordered view over v when v is a non-empty nested map.
func children(v any) (iter.Seq2[string, any], bool) {
	switch n := v.(type) {
	case *Map[string, any]:
		if n == nil || n.IsEmpty() {
			return nil, false
		}
		return n.All(), true
	case map[string]any:
		if len(n) == 0 {
			return nil, false
		}
		keys := lo.Keys(n)
		slices.Sort(keys)
		return func(yield func(string, any) bool) {
			for _, k := range keys {
				if !yield(k, n[k]) {
					return
				}
			}
		}, true
	}
	return nil, false
}

// Unflatten expands separator-joined keys back into nested *Map[string, any]
// values. It is the inverse of [Flatten] for maps without empty nested maps.
// Returns [ErrInvalidPath] when a key has an empty segment or when one key
// is a prefix of another ("a" = 1 next to "a.b" = 2).
func Unflatten(m *Map[string, any], sep ...string) (*Map[string, any], error) {
	s := lo.FirstOr(sep, DefaultSeparator)
	out := New[string, any]()
	for key, v := range m.All() {
		segments := strings.Split(key, s)
		if slices.Contains(segments, "") {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPath, key)
		}
		node := out
		for _, seg := range segments[:len(segments)-1] {
			existing, ok := node.Get(seg)
			if !ok {
				child := New[string, any]()
				node.Set(seg, child)
				node = child
				continue
			}
			child, isMap := existing.(*Map[string, any])
			if !isMap {
				return nil, fmt.Errorf("%w: %q conflicts with leaf %q", ErrInvalidPath, key, seg)
			}
			node = child
		}
		last := segments[len(segments)-1]
		if existing, ok := node.Get(last); ok {
			if _, isMap := existing.(*Map[string, any]); isMap {
				return nil, fmt.Errorf("%w: %q conflicts with nested map", ErrInvalidPath, key)
			}
		}
		node.Set(last, v)
	}
	return out, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Deep access
// ─────────────────────────────────────────────────────────────────────────────

// DeepGet walks path through nested maps and returns the value at its end.
// It returns an absent option at the first missing key or at the first
// intermediate value that is not a map. An empty path yields m itself.
//
//	DeepGet(m, "user", "address", "city") // Some("London")
//	DeepGet(m, "user", "missing")         // None
func DeepGet(m *Map[string, any], path ...string) mo.Option[any] {
	var current any = m
	for _, key := range path {
		switch node := current.(type) {
		case *Map[string, any]:
			v, ok := node.Get(key)
			if !ok {
				return mo.None[any]()
			}
			current = v
		case map[string]any:
			v, ok := node[key]
			if !ok {
				return mo.None[any]()
			}
			current = v
		default:
			return mo.None[any]()
		}
	}
	return mo.Some(current)
}

// Native converts v into plain Go values: every *Map[string, any] becomes
// a map[string]any, recursively, including maps held inside []any. Other
// values are returned unchanged.
func Native(v any) any {
	switch n := v.(type) {
	case *Map[string, any]:
		out := make(map[string]any, n.Len())
		for k, child := range n.All() {
			out[k] = Native(child)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(n))
		for k, child := range n {
			out[k] = Native(child)
		}
		return out
	case []any:
		return lo.Map(n, func(child any, _ int) any { return Native(child) })
	}
	return v
}
