package collections

import (
	"cmp"
	"iter"

	"github.com/samber/mo"

	"github.com/hasbyte1/go-utility-belts/arr"
	"github.com/hasbyte1/go-utility-belts/dict"
	"github.com/hasbyte1/go-utility-belts/num"
	"github.com/hasbyte1/go-utility-belts/tuple"
)

// This file contains package-level generic functions for operations that
// transform a Collection[T] to a Collection[U] (T ≠ U), or that need a
// constraint on T the Collection type does not carry.
//
//	result := collections.Map(
//	    collections.New(1, 2, 3, 4, 5).Filter(func(n, _ int) bool { return n%2 == 0 }),
//	    func(n, _ int) string { return strconv.Itoa(n) },
//	)

// Map applies fn to every item and returns a new Collection[U].
//
//	doubled := collections.Map(collections.New(1, 2, 3),
//	    func(n, _ int) string { return strconv.Itoa(n * 2) })
func Map[T, U any](c *Collection[T], fn func(T, int) U) *Collection[U] {
	return wrap(arr.Map(c.items, fn))
}

// MapIndexed returns a lazy sequence of fn(index, item).
func MapIndexed[T, U any](c *Collection[T], fn func(int, T) U) iter.Seq[U] {
	return arr.MapIndexed(c.items, fn)
}

// FlatMap applies fn to every item (producing a []U per item) and flattens
// the results into a single Collection[U].
//
//	words := collections.FlatMap(collections.New("hello world", "foo bar"),
//	    func(s string, _ int) []string { return strings.Fields(s) })
//	// → ["hello", "world", "foo", "bar"]
func FlatMap[T, U any](c *Collection[T], fn func(T, int) []U) *Collection[U] {
	return wrap(arr.FlatMap(c.items, fn))
}

// Reduce reduces Collection[T] to a single value of type U.
//
//	sum := collections.Reduce(collections.New(1, 2, 3, 4),
//	    func(acc int, n, _ int) int { return acc + n }, 0)
func Reduce[T, U any](c *Collection[T], fn func(U, T, int) U, initial U) U {
	return arr.Reduce(c.items, fn, initial)
}

// Pluck extracts a single field U from every item T.
//
//	names := collections.Pluck(users, func(u User) string { return u.Name })
func Pluck[T, U any](c *Collection[T], fn func(T) U) *Collection[U] {
	return Map(c, func(item T, _ int) U { return fn(item) })
}

// GroupBy groups items by the key K extracted by fn. Groups are ordered by
// the first item of each group.
//
//	byDept := collections.GroupBy(employees,
//	    func(e Employee) string { return e.Department })
func GroupBy[T any, K comparable](c *Collection[T], fn func(T) K) *dict.Map[K, *Collection[T]] {
	groups := arr.GroupBy(c.items, fn)
	out := dict.New[K, *Collection[T]]()
	for k, items := range groups.All() {
		out.Set(k, wrap(items))
	}
	return out
}

// KeyBy builds a map[K]T keyed by the value extracted by fn.
// When multiple items share the same key, the last one wins.
//
//	byID := collections.KeyBy(users, func(u User) int { return u.ID })
func KeyBy[T any, K comparable](c *Collection[T], fn func(T) K) map[K]T {
	return arr.AssociateBy(c.items, fn)
}

// Zip combines two collections element-by-element into Pairs.
// Stops at the shorter of the two collections.
//
//	pairs := collections.Zip(
//	    collections.New("a", "b", "c"),
//	    collections.New(1, 2, 3),
//	) // → [(a, 1) (b, 2) (c, 3)]
func Zip[A, B any](a *Collection[A], b *Collection[B]) *Collection[tuple.Pair[A, B]] {
	return wrap(arr.Zip(a.items, b.items))
}

// Pairs returns each item paired with its successor.
func Pairs[T any](c *Collection[T]) *Collection[tuple.Pair[T, T]] {
	return wrap(arr.ToPairs(c.items))
}

// Combine creates a map from equal-length key and value slices.
// Returns [arr.ErrMismatchedLengths] if len(keys) != len(values).
//
//	m, _ := collections.Combine([]string{"a", "b"}, []int{1, 2})
//	// → map["a":1, "b":2]
func Combine[K comparable, V any](keys []K, values []V) (map[K]V, error) {
	return arr.Combine(keys, values)
}

// Collapse flattens a Collection[[]T] into a Collection[T] (one level only).
//
//	flat := collections.Collapse(collections.New([]int{1, 2}, []int{3, 4}))
//	// → [1, 2, 3, 4]
func Collapse[T any](c *Collection[[]T]) *Collection[T] {
	return wrap(arr.Collapse(c.items))
}

// FlattenDeep recursively flattens a Collection[any] that may contain nested
// []any or *Collection[any] values of arbitrary depth.
func FlattenDeep(c *Collection[any]) *Collection[any] {
	out := make([]any, 0, len(c.items))
	var flatten func(items []any)
	flatten = func(items []any) {
		for _, item := range items {
			switch v := item.(type) {
			case []any:
				flatten(v)
			case *Collection[any]:
				flatten(v.items)
			default:
				out = append(out, item)
			}
		}
	}
	flatten(c.items)
	return wrap(out)
}

// ─────────────────────────────────────────────────────────────────────────────
// Constrained helpers
// ─────────────────────────────────────────────────────────────────────────────

// Sum returns the sum of a numeric collection.
func Sum[N num.Number](c *Collection[N]) N { return arr.Sum(c.items) }

// Median returns the median of a numeric collection, or 0 when empty.
func Median[N num.Number](c *Collection[N]) float64 { return arr.Median(c.items) }

// Min returns the smallest item of an ordered collection.
func Min[T cmp.Ordered](c *Collection[T]) mo.Option[T] { return arr.Min(c.items) }

// Max returns the largest item of an ordered collection.
func Max[T cmp.Ordered](c *Collection[T]) mo.Option[T] { return arr.Max(c.items) }

// Distinct removes duplicate items, keeping first occurrences.
func Distinct[T comparable](c *Collection[T]) *Collection[T] { return wrap(arr.Unique(c.items)) }

// Without returns c without any of values.
func Without[T comparable](c *Collection[T], values ...T) *Collection[T] {
	return wrap(arr.Without(c.items, values...))
}

// Frequencies counts each distinct item, in first-occurrence order.
func Frequencies[T comparable](c *Collection[T]) *dict.Map[T, int] {
	return arr.Frequencies(c.items)
}

// Mode returns the most frequent item; the earliest wins ties.
func Mode[T comparable](c *Collection[T]) mo.Option[T] { return arr.Mode(c.items) }
