package arr

import (
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// ─────────────────────────────────────────────────────────────────────────────
// Safe accessors
// ─────────────────────────────────────────────────────────────────────────────

func at[T any](items []T, i int) mo.Option[T] {
	if i < 0 || i >= len(items) {
		return mo.None[T]()
	}
	return mo.Some(items[i])
}

// FirstOrNone returns the first element, or None for an empty slice.
func FirstOrNone[T any](items []T) mo.Option[T] { return at(items, 0) }

// Second returns the element at index 1, if any.
func Second[T any](items []T) mo.Option[T] { return at(items, 1) }

// Third returns the element at index 2, if any.
func Third[T any](items []T) mo.Option[T] { return at(items, 2) }

// Penultimate returns the next-to-last element, if any.
func Penultimate[T any](items []T) mo.Option[T] { return at(items, len(items)-2) }

// LastOrNone returns the last element, or None for an empty slice.
func LastOrNone[T any](items []T) mo.Option[T] { return at(items, len(items)-1) }

// SingleOrNone returns the only element of a one-element slice. Both an
// empty slice and a slice with more than one element yield None.
func SingleOrNone[T any](items []T) mo.Option[T] {
	if len(items) != 1 {
		return mo.None[T]()
	}
	return mo.Some(items[0])
}

// ElementAt returns the element at index i; negative indexes count from the
// end, so -1 is the last element.
func ElementAt[T any](items []T, i int) mo.Option[T] {
	if i < 0 {
		i += len(items)
	}
	return at(items, i)
}

// ─────────────────────────────────────────────────────────────────────────────
// Searching & testing
// ─────────────────────────────────────────────────────────────────────────────

// FirstWhere returns the first element satisfying fn.
func FirstWhere[T any](items []T, fn func(T) bool) mo.Option[T] {
	return mo.TupleToOption(lo.Find(items, fn))
}

// LastWhere returns the last element satisfying fn.
func LastWhere[T any](items []T, fn func(T) bool) mo.Option[T] {
	for i := len(items) - 1; i >= 0; i-- {
		if fn(items[i]) {
			return mo.Some(items[i])
		}
	}
	return mo.None[T]()
}

// Contains reports whether at least one element satisfies fn.
func Contains[T any](items []T, fn func(T) bool) bool {
	return lo.ContainsBy(items, fn)
}

// ContainsValue reports whether items contains value.
func ContainsValue[T comparable](items []T, value T) bool {
	return lo.Contains(items, value)
}

// IndexOf returns the index of the first occurrence of value, or -1.
func IndexOf[T comparable](items []T, value T) int {
	return lo.IndexOf(items, value)
}

// LastIndexOf returns the index of the last occurrence of value, or -1.
func LastIndexOf[T comparable](items []T, value T) int {
	return lo.LastIndexOf(items, value)
}

// Search returns the index of the first element satisfying fn, or -1.
func Search[T any](items []T, fn func(T) bool) int {
	for i, item := range items {
		if fn(item) {
			return i
		}
	}
	return -1
}

// ─────────────────────────────────────────────────────────────────────────────
// Set operations
// ─────────────────────────────────────────────────────────────────────────────

// Unique returns items with duplicates removed, keeping the first
// occurrence of each value.
func Unique[T comparable](items []T) []T {
	return lo.Uniq(items)
}

// DistinctBy keeps the first element for each key produced by fn, in
// original order.
func DistinctBy[T any, K comparable](items []T, fn func(T) K) []T {
	return lo.UniqBy(items, fn)
}

// Without returns items with every occurrence of the given values removed.
func Without[T comparable](items []T, values ...T) []T {
	return lo.Without(items, values...)
}

// Diff returns the elements of a that are not in b.
func Diff[T comparable](a, b []T) []T {
	return lo.Without(a, b...)
}

// Intersect returns the elements of a that also appear in b, in a's order.
func Intersect[T comparable](a, b []T) []T {
	set := make(map[T]struct{}, len(b))
	for _, item := range b {
		set[item] = struct{}{}
	}
	out := make([]T, 0)
	for _, item := range a {
		if _, found := set[item]; found {
			out = append(out, item)
		}
	}
	return out
}

// MergeList concatenates items and other into a new slice. With distinct
// set, elements of other already present in items (or earlier in other)
// are skipped.
func MergeList[T comparable](items, other []T, distinct ...bool) []T {
	out := make([]T, 0, len(items)+len(other))
	out = append(out, items...)
	if len(distinct) == 0 || !distinct[0] {
		return append(out, other...)
	}
	seen := make(map[T]struct{}, len(items)+len(other))
	for _, item := range items {
		seen[item] = struct{}{}
	}
	for _, item := range other {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}
