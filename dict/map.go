package dict

import (
	"bytes"
	"cmp"
	"encoding/json"
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/hasbyte1/go-utility-belts/tuple"
)

// Map is an insertion-ordered map.
//
// Iteration (Keys, Values, Entries, All) follows the order in which keys were
// first inserted. Setting an existing key replaces its value but keeps its
// position; deleting and re-inserting a key moves it to the end.
//
// The zero value is not usable; create maps with [New], [FromEntries],
// [FromMap] or [FromMapSorted]. A Map is not safe for concurrent mutation.
type Map[K comparable, V any] struct {
	keys   []K
	values map[K]V
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates an empty Map.
func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{values: make(map[K]V)}
}

// FromEntries creates a Map from key/value pairs in the given order.
// A key that appears twice keeps its first position and its last value.
func FromEntries[K comparable, V any](entries ...tuple.Pair[K, V]) *Map[K, V] {
	m := &Map[K, V]{keys: make([]K, 0, len(entries)), values: make(map[K]V, len(entries))}
	for _, e := range entries {
		m.Set(e.First, e.Second)
	}
	return m
}

// FromMap copies a built-in map. Go maps are unordered, so the resulting
// order is unspecified; use [FromMapSorted] when the order matters.
func FromMap[K comparable, V any](src map[K]V) *Map[K, V] {
	m := &Map[K, V]{keys: make([]K, 0, len(src)), values: make(map[K]V, len(src))}
	for k, v := range src {
		m.Set(k, v)
	}
	return m
}

// FromMapSorted copies a built-in map, ordering the keys ascending.
func FromMapSorted[K cmp.Ordered, V any](src map[K]V) *Map[K, V] {
	keys := make([]K, 0, len(src))
	for k := range src {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	m := &Map[K, V]{keys: make([]K, 0, len(src)), values: make(map[K]V, len(src))}
	for _, k := range keys {
		m.Set(k, src[k])
	}
	return m
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Len returns the number of entries.
func (m *Map[K, V]) Len() int { return len(m.keys) }

// IsEmpty reports whether the map has no entries.
func (m *Map[K, V]) IsEmpty() bool { return len(m.keys) == 0 }

// Get returns the value for key together with a presence flag.
func (m *Map[K, V]) Get(key K) (V, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Has reports whether key is present.
func (m *Map[K, V]) Has(key K) bool {
	_, ok := m.values[key]
	return ok
}

// Set inserts or replaces the value for key and returns m for chaining.
func (m *Map[K, V]) Set(key K, value V) *Map[K, V] {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
	return m
}

// Delete removes key and reports whether it was present.
func (m *Map[K, V]) Delete(key K) bool {
	if _, ok := m.values[key]; !ok {
		return false
	}
	delete(m.values, key)
	m.keys = slices.DeleteFunc(m.keys, func(k K) bool { return k == key })
	return true
}

// Keys returns the keys in insertion order.
func (m *Map[K, V]) Keys() []K { return slices.Clone(m.keys) }

// Values returns the values in insertion order.
func (m *Map[K, V]) Values() []V {
	out := make([]V, len(m.keys))
	for i, k := range m.keys {
		out[i] = m.values[k]
	}
	return out
}

// Entries returns the entries as key/value pairs in insertion order.
func (m *Map[K, V]) Entries() []tuple.Pair[K, V] {
	out := make([]tuple.Pair[K, V], len(m.keys))
	for i, k := range m.keys {
		out[i] = tuple.Of(k, m.values[k])
	}
	return out
}

// All returns an iterator over the entries in insertion order.
//
//	for k, v := range m.All() { ... }
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range m.keys {
			if !yield(k, m.values[k]) {
				return
			}
		}
	}
}

// ToMap returns a built-in map copy (order is lost).
func (m *Map[K, V]) ToMap() map[K]V {
	out := make(map[K]V, len(m.keys))
	for _, k := range m.keys {
		out[k] = m.values[k]
	}
	return out
}

// Clone returns a shallow copy preserving order.
func (m *Map[K, V]) Clone() *Map[K, V] {
	return FromEntries(m.Entries()...)
}

// String renders the map as "{k1: v1, k2: v2}" in insertion order.
// It implements [fmt.Stringer].
func (m *Map[K, V]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v: %v", k, m.values[k])
	}
	b.WriteByte('}')
	return b.String()
}

// MarshalJSON encodes the map as a JSON object whose members follow
// insertion order. Keys are rendered with fmt.Sprint.
func (m *Map[K, V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(fmt.Sprint(k))
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(m.values[k])
		if err != nil {
			return nil, fmt.Errorf("dict: encoding value for key %v: %w", k, err)
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Equal reports whether a and b hold the same entries, ignoring order.
func Equal[K, V comparable](a, b *Map[K, V]) bool {
	if a.Len() != b.Len() {
		return false
	}
	for k, v := range a.All() {
		if bv, ok := b.Get(k); !ok || bv != v {
			return false
		}
	}
	return true
}

// Sorted returns a copy of m ordered by ascending key.
func Sorted[K cmp.Ordered, V any](m *Map[K, V]) *Map[K, V] {
	entries := m.Entries()
	slices.SortStableFunc(entries, func(a, b tuple.Pair[K, V]) int { return cmp.Compare(a.First, b.First) })
	return FromEntries(entries...)
}
