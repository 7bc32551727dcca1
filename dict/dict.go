package dict

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"

	"github.com/hasbyte1/go-utility-belts/str"
	"github.com/hasbyte1/go-utility-belts/tuple"
)

// ─────────────────────────────────────────────────────────────────────────────
// Safe access
// ─────────────────────────────────────────────────────────────────────────────

// GetOrDefault returns the value for key, or def when key is absent.
func GetOrDefault[K comparable, V any](m *Map[K, V], key K, def V) V {
	if v, ok := m.Get(key); ok {
		return v
	}
	return def
}

// GetOption returns the value for key as an optional.
func GetOption[K comparable, V any](m *Map[K, V], key K) mo.Option[V] {
	return mo.TupleToOption(m.Get(key))
}

// GetOrPut returns the value for key. On a miss it calls fn, stores the
// result under key and returns it; on a hit m is left untouched and fn is
// never called.
func GetOrPut[K comparable, V any](m *Map[K, V], key K, fn func() V) V {
	if v, ok := m.Get(key); ok {
		return v
	}
	v := fn()
	m.Set(key, v)
	return v
}

// ─────────────────────────────────────────────────────────────────────────────
// Filtering
// ─────────────────────────────────────────────────────────────────────────────

// Filter returns a new map with the entries for which fn returns true.
func Filter[K comparable, V any](m *Map[K, V], fn func(K, V) bool) *Map[K, V] {
	out := New[K, V]()
	for k, v := range m.All() {
		if fn(k, v) {
			out.Set(k, v)
		}
	}
	return out
}

// Reject returns a new map without the entries for which fn returns true.
// It is the complement of [Filter].
func Reject[K comparable, V any](m *Map[K, V], fn func(K, V) bool) *Map[K, V] {
	return Filter(m, func(k K, v V) bool { return !fn(k, v) })
}

// FilterKeys keeps the entries whose key satisfies fn.
func FilterKeys[K comparable, V any](m *Map[K, V], fn func(K) bool) *Map[K, V] {
	return Filter(m, func(k K, _ V) bool { return fn(k) })
}

// RejectKeys drops the entries whose key satisfies fn.
func RejectKeys[K comparable, V any](m *Map[K, V], fn func(K) bool) *Map[K, V] {
	return Reject(m, func(k K, _ V) bool { return fn(k) })
}

// FilterValues keeps the entries whose value satisfies fn.
func FilterValues[K comparable, V any](m *Map[K, V], fn func(V) bool) *Map[K, V] {
	return Filter(m, func(_ K, v V) bool { return fn(v) })
}

// RejectValues drops the entries whose value satisfies fn.
func RejectValues[K comparable, V any](m *Map[K, V], fn func(V) bool) *Map[K, V] {
	return Reject(m, func(_ K, v V) bool { return fn(v) })
}

// FilterNull drops entries whose value is nil (nil interface, pointer,
// slice, map, channel or func).
func FilterNull[K comparable, V any](m *Map[K, V]) *Map[K, V] {
	return Reject(m, func(_ K, v V) bool { return lo.IsNil(v) })
}

// FilterEmpty drops entries whose value is nil or renders as "" with
// fmt.Sprint.
func FilterEmpty[K comparable, V any](m *Map[K, V]) *Map[K, V] {
	return Reject(m, func(_ K, v V) bool { return lo.IsNil(v) || fmt.Sprint(v) == "" })
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// MapKeys returns a new map whose keys are produced by fn. When two entries
// map to the same key the later one wins.
func MapKeys[K comparable, V any, R comparable](m *Map[K, V], fn func(K, V) R) *Map[R, V] {
	out := New[R, V]()
	for k, v := range m.All() {
		out.Set(fn(k, v), v)
	}
	return out
}

// MapValues returns a new map with every value replaced by fn(key, value).
func MapValues[K comparable, V, R any](m *Map[K, V], fn func(K, V) R) *Map[K, R] {
	out := New[K, R]()
	for k, v := range m.All() {
		out.Set(k, fn(k, v))
	}
	return out
}

// InvertMap swaps keys and values. When several keys share a value, the
// entry encountered last wins.
func InvertMap[K, V comparable](m *Map[K, V]) *Map[V, K] {
	out := New[V, K]()
	for k, v := range m.All() {
		out.Set(v, k)
	}
	return out
}

// MergeWith returns a new map holding the entries of m followed by the new
// entries of other. On a key conflict resolve(key, existing, incoming)
// decides the value; without resolve the incoming value wins.
func MergeWith[K comparable, V any](m, other *Map[K, V], resolve ...func(key K, existing, incoming V) V) *Map[K, V] {
	out := m.Clone()
	for k, incoming := range other.All() {
		if existing, ok := out.Get(k); ok && len(resolve) > 0 && resolve[0] != nil {
			out.Set(k, resolve[0](k, existing, incoming))
			continue
		}
		out.Set(k, incoming)
	}
	return out
}

// UniqueValues keeps only the first entry for each distinct value.
func UniqueValues[K, V comparable](m *Map[K, V]) *Map[K, V] {
	seen := make(map[V]struct{}, m.Len())
	return Filter(m, func(_ K, v V) bool {
		if _, ok := seen[v]; ok {
			return false
		}
		seen[v] = struct{}{}
		return true
	})
}

// Partition splits m into the entries matching fn and the rest, each in
// original order.
func Partition[K comparable, V any](m *Map[K, V], fn func(K, V) bool) tuple.Pair[*Map[K, V], *Map[K, V]] {
	pass, fail := New[K, V](), New[K, V]()
	for k, v := range m.All() {
		if fn(k, v) {
			pass.Set(k, v)
		} else {
			fail.Set(k, v)
		}
	}
	return tuple.Of(pass, fail)
}

// ─────────────────────────────────────────────────────────────────────────────
// In-place mutation
// ─────────────────────────────────────────────────────────────────────────────

// Shift removes and returns the first entry. Returns [ErrEmptyMap] when m
// has no entries.
func Shift[K comparable, V any](m *Map[K, V]) (tuple.Pair[K, V], error) {
	if m.IsEmpty() {
		return tuple.Pair[K, V]{}, ErrEmptyMap
	}
	k := m.keys[0]
	v := m.values[k]
	m.Delete(k)
	return tuple.Of(k, v), nil
}

// Contains reports whether m maps key to exactly value.
func Contains[K, V comparable](m *Map[K, V], key K, value V) bool {
	v, ok := m.Get(key)
	return ok && v == value
}

// RemoveExact deletes key only when it currently maps to value, and reports
// whether an entry was removed.
func RemoveExact[K, V comparable](m *Map[K, V], key K, value V) bool {
	if !Contains(m, key, value) {
		return false
	}
	return m.Delete(key)
}

// ─────────────────────────────────────────────────────────────────────────────
// Key / value casing
// ─────────────────────────────────────────────────────────────────────────────

// KeysToCase returns a new map with every key passed through caser, such
// as [str.ToSnakeCase].
func KeysToCase[V any](m *Map[string, V], caser func(string) string) *Map[string, V] {
	return MapKeys(m, func(k string, _ V) string { return caser(k) })
}

// ValuesToCase returns a new map with every string value passed through
// caser. Values of other types are kept as they are.
func ValuesToCase[K comparable, V any](m *Map[K, V], caser func(string) string) *Map[K, V] {
	return MapValues(m, func(_ K, v V) V {
		if s, ok := any(v).(string); ok {
			if cased, ok := any(caser(s)).(V); ok {
				return cased
			}
		}
		return v
	})
}

// KeysToCamelCase converts every key to camelCase.
func KeysToCamelCase[V any](m *Map[string, V]) *Map[string, V] {
	return KeysToCase(m, str.ToCamelCase)
}

// KeysToSnakeCase converts every key to snake_case.
func KeysToSnakeCase[V any](m *Map[string, V]) *Map[string, V] {
	return KeysToCase(m, str.ToSnakeCase)
}

// KeysToKebabCase converts every key to kebab-case.
func KeysToKebabCase[V any](m *Map[string, V]) *Map[string, V] {
	return KeysToCase(m, str.ToKebabCase)
}

// KeysToPascalCase converts every key to PascalCase.
func KeysToPascalCase[V any](m *Map[string, V]) *Map[string, V] {
	return KeysToCase(m, str.ToPascalCase)
}

// ─────────────────────────────────────────────────────────────────────────────
// Query strings
// ─────────────────────────────────────────────────────────────────────────────

// ToQueryString URL-encodes every key and value (values via fmt.Sprint) and
// joins the pairs with "&" in insertion order.
//
//	ToQueryString(m) // "q=go+generics&page=2"
func ToQueryString[V any](m *Map[string, V]) string {
	parts := make([]string, 0, m.Len())
	for k, v := range m.All() {
		parts = append(parts, url.QueryEscape(k)+"="+url.QueryEscape(fmt.Sprint(v)))
	}
	return strings.Join(parts, "&")
}
