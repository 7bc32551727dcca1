package arr

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/hasbyte1/go-utility-belts/dict"
	"github.com/hasbyte1/go-utility-belts/tuple"
)

// ─────────────────────────────────────────────────────────────────────────────
// Mapping & filtering
// ─────────────────────────────────────────────────────────────────────────────

// Map applies fn(item, index) to each element and returns a new slice.
func Map[T, U any](items []T, fn func(T, int) U) []U {
	return lo.Map(items, fn)
}

// Filter returns the elements for which fn(item, index) returns true.
func Filter[T any](items []T, fn func(T, int) bool) []T {
	return lo.Filter(items, fn)
}

// Reject returns the elements for which fn(item, index) returns false.
func Reject[T any](items []T, fn func(T, int) bool) []T {
	return lo.Reject(items, fn)
}

// Reduce folds items into a single value, starting from initial.
func Reduce[T, U any](items []T, fn func(U, T, int) U, initial U) U {
	return lo.Reduce(items, fn, initial)
}

// FlatMap applies fn to each element and concatenates the results.
func FlatMap[T, U any](items []T, fn func(T, int) []U) []U {
	return lo.FlatMap(items, fn)
}

// Compact drops nil values and empty strings, slices, arrays and maps.
// Zero numbers and false are kept.
func Compact[T any](items []T) []T {
	return slices.DeleteFunc(slices.Clone(items), isBlank[T])
}

func isBlank[T any](item T) bool {
	v := reflect.ValueOf(any(item))
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Chan, reflect.Func:
		return v.IsNil()
	case reflect.String, reflect.Slice, reflect.Map, reflect.Array:
		return v.Len() == 0
	}
	return false
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing & restructuring
// ─────────────────────────────────────────────────────────────────────────────

// Chunk splits items into consecutive groups of size. The last group keeps
// the remainder and may be shorter. Returns [ErrInvalidSize] when size <= 0.
func Chunk[T any](items []T, size int) ([][]T, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	return lo.Chunk(items, size), nil
}

// Windowed returns overlapping windows of size elements, advancing by step
// (default 1). It stops once a full window no longer fits, so a slice
// shorter than size yields no windows.
//
//	Windowed([]int{1, 2, 3, 4, 5}, 3)    // [[1 2 3] [2 3 4] [3 4 5]]
//	Windowed([]int{1, 2, 3, 4, 5}, 2, 2) // [[1 2] [3 4]]
func Windowed[T any](items []T, size int, step ...int) ([][]T, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	s := lo.FirstOr(step, 1)
	if s <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidStep, s)
	}
	out := make([][]T, 0)
	for start := 0; start+size <= len(items); start += s {
		out = append(out, slices.Clone(items[start:start+size]))
	}
	return out, nil
}

// Zip pairs the elements of a and b by position, stopping at the shorter
// slice.
func Zip[A, B any](a []A, b []B) []tuple.Pair[A, B] {
	n := min(len(a), len(b))
	out := make([]tuple.Pair[A, B], n)
	for i := range n {
		out[i] = tuple.Of(a[i], b[i])
	}
	return out
}

// ToPairs returns each element paired with its successor. Fewer than two
// elements yield an empty slice.
//
//	ToPairs([]int{1, 2, 3}) // [(1, 2) (2, 3)]
func ToPairs[T any](items []T) []tuple.Pair[T, T] {
	if len(items) < 2 {
		return []tuple.Pair[T, T]{}
	}
	return Zip(items[:len(items)-1], items[1:])
}

// Collapse flattens a slice of slices by one level.
func Collapse[T any](items [][]T) []T {
	return lo.Flatten(items)
}

// Flatten flattens dynamically typed nested lists by one level. Every
// element must be a slice or array; otherwise Flatten returns
// [ErrNotAList] naming the offending index.
//
//	Flatten([]any{[]int{1, 2}, []string{"a"}}) // [1 2 a]
func Flatten(items []any) ([]any, error) {
	out := make([]any, 0, len(items))
	for i, item := range items {
		v := reflect.ValueOf(item)
		if !v.IsValid() || (v.Kind() != reflect.Slice && v.Kind() != reflect.Array) {
			return nil, fmt.Errorf("%w: index %d holds %T", ErrNotAList, i, item)
		}
		for j := range v.Len() {
			out = append(out, v.Index(j).Interface())
		}
	}
	return out, nil
}

// Rotate returns a copy of items rotated left by n positions (n modulo the
// length). A negative n rotates right.
//
//	Rotate([]int{1, 2, 3, 4}, 1)  // [2 3 4 1]
//	Rotate([]int{1, 2, 3, 4}, -1) // [4 1 2 3]
func Rotate[T any](items []T, n int) []T {
	l := len(items)
	if l == 0 {
		return []T{}
	}
	k := ((n % l) + l) % l
	out := make([]T, 0, l)
	out = append(out, items[k:]...)
	return append(out, items[:k]...)
}

// Reverse returns a reversed copy of items.
func Reverse[T any](items []T) []T {
	out := slices.Clone(items)
	slices.Reverse(out)
	return out
}

// Prepend returns a new slice with values placed before items.
func Prepend[T any](items []T, values ...T) []T {
	return slices.Concat(values, items)
}

// TakeLast returns the last n elements (all of them when n >= len).
func TakeLast[T any](items []T, n int) []T {
	if n <= 0 {
		return []T{}
	}
	return slices.Clone(items[max(0, len(items)-n):])
}

// Intersperse returns items with sep inserted between every two elements.
func Intersperse[T any](items []T, sep T) []T {
	if len(items) == 0 {
		return []T{}
	}
	out := make([]T, 0, 2*len(items)-1)
	for i, item := range items {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, item)
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Sorting
// ─────────────────────────────────────────────────────────────────────────────

// SortedBy returns a copy of items stably sorted by ascending fn(item).
func SortedBy[T any, K cmp.Ordered](items []T, fn func(T) K) []T {
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b T) int { return cmp.Compare(fn(a), fn(b)) })
	return out
}

// SortedByDescending returns a copy of items stably sorted by descending
// fn(item). Elements with equal keys keep their relative order.
func SortedByDescending[T any, K cmp.Ordered](items []T, fn func(T) K) []T {
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b T) int { return cmp.Compare(fn(b), fn(a)) })
	return out
}

// Sort returns a copy of items stably sorted by less.
func Sort[T any](items []T, less func(a, b T) bool) []T {
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b T) int {
		switch {
		case less(a, b):
			return -1
		case less(b, a):
			return 1
		}
		return 0
	})
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Grouping & association
// ─────────────────────────────────────────────────────────────────────────────

// GroupBy groups items by fn(item). Groups appear in order of their first
// element and each group keeps encounter order.
func GroupBy[T any, K comparable](items []T, fn func(T) K) *dict.Map[K, []T] {
	groups := dict.New[K, []T]()
	for _, item := range items {
		k := fn(item)
		group, _ := groups.Get(k)
		groups.Set(k, append(group, item))
	}
	return groups
}

// Partition splits items into the elements satisfying fn and the rest,
// each keeping relative order.
func Partition[T any](items []T, fn func(T) bool) tuple.Pair[[]T, []T] {
	pass, fail := make([]T, 0), make([]T, 0)
	for _, item := range items {
		if fn(item) {
			pass = append(pass, item)
		} else {
			fail = append(fail, item)
		}
	}
	return tuple.Of(pass, fail)
}

// ToMap builds a map from the key and value selectors. Later duplicate keys
// overwrite earlier ones.
func ToMap[T any, K comparable, V any](items []T, key func(T) K, value func(T) V) map[K]V {
	return lo.SliceToMap(items, func(item T) (K, V) { return key(item), value(item) })
}

// AssociateBy keys every element by fn(item). Later duplicates win.
func AssociateBy[T any, K comparable](items []T, fn func(T) K) map[K]T {
	return lo.KeyBy(items, fn)
}

// AssociateWith maps every element to fn(item). Later duplicates win.
func AssociateWith[K comparable, V any](items []K, fn func(K) V) map[K]V {
	return lo.SliceToMap(items, func(k K) (K, V) { return k, fn(k) })
}

// Combine builds a map from equal-length key and value slices. Returns
// [ErrMismatchedLengths] when the lengths differ.
func Combine[K comparable, V any](keys []K, values []V) (map[K]V, error) {
	if len(keys) != len(values) {
		return nil, fmt.Errorf("%w: %d keys, %d values", ErrMismatchedLengths, len(keys), len(values))
	}
	out := make(map[K]V, len(keys))
	for i, k := range keys {
		out[k] = values[i]
	}
	return out, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Joining
// ─────────────────────────────────────────────────────────────────────────────

// JoinOptions configures [JoinToString].
type JoinOptions struct {
	// Separator is placed between elements.
	Separator string
	// Prefix is written before the first element.
	Prefix string
	// Suffix is written after the last element.
	Suffix string
}

// DefaultJoinOptions returns options that join with ", " and no prefix or
// suffix.
func DefaultJoinOptions() JoinOptions {
	return JoinOptions{Separator: ", "}
}

// JoinToString renders each element (with fmt.Sprint, or transform when
// given) and joins them according to opts.
//
//	JoinToString([]int{1, 2, 3}, JoinOptions{Separator: "|", Prefix: "<", Suffix: ">"})
//	// "<1|2|3>"
func JoinToString[T any](items []T, opts JoinOptions, transform ...func(T) string) string {
	render := func(item T) string { return fmt.Sprint(item) }
	if len(transform) > 0 && transform[0] != nil {
		render = transform[0]
	}
	var b strings.Builder
	b.WriteString(opts.Prefix)
	for i, item := range items {
		if i > 0 {
			b.WriteString(opts.Separator)
		}
		b.WriteString(render(item))
	}
	b.WriteString(opts.Suffix)
	return b.String()
}
