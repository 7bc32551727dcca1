package arr

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/samber/lo"
	"github.com/samber/mo"

	"github.com/hasbyte1/go-utility-belts/dict"
	"github.com/hasbyte1/go-utility-belts/num"
)

// ─────────────────────────────────────────────────────────────────────────────
// Sums & averages
// ─────────────────────────────────────────────────────────────────────────────

// Sum returns the sum of items. An empty slice sums to 0.
func Sum[N num.Number](items []N) N {
	return lo.Sum(items)
}

// SumBy returns the sum of fn(item) over items.
func SumBy[T any, N num.Number](items []T, fn func(T) N) N {
	return lo.SumBy(items, fn)
}

// Average returns the arithmetic mean of items, or 0 for an empty slice.
func Average[N num.Number](items []N) float64 {
	if len(items) == 0 {
		return 0
	}
	var total float64
	for _, n := range items {
		total += float64(n)
	}
	return total / float64(len(items))
}

// AverageBy returns the mean of fn(item) over items, or 0 for an empty
// slice.
func AverageBy[T any, N num.Number](items []T, fn func(T) N) float64 {
	return Average(lo.Map(items, func(item T, _ int) N { return fn(item) }))
}

// Median returns the middle value of the sorted items, or the mean of the
// two middle values when the length is even. An empty slice yields 0. The
// input is not reordered.
func Median[N num.Number](items []N) float64 {
	if len(items) == 0 {
		return 0
	}
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, cmp.Compare[N])
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return float64(sorted[mid])
	}
	return (float64(sorted[mid-1]) + float64(sorted[mid])) / 2
}

// Numbers converts dynamically typed elements to float64 so they can be fed
// to [Average] or [Median]. Returns [ErrNotNumeric] naming the first element
// that is not an integer or floating-point value.
func Numbers(items []any) ([]float64, error) {
	out := make([]float64, len(items))
	for i, item := range items {
		switch v := item.(type) {
		case int:
			out[i] = float64(v)
		case int8:
			out[i] = float64(v)
		case int16:
			out[i] = float64(v)
		case int32:
			out[i] = float64(v)
		case int64:
			out[i] = float64(v)
		case uint:
			out[i] = float64(v)
		case uint8:
			out[i] = float64(v)
		case uint16:
			out[i] = float64(v)
		case uint32:
			out[i] = float64(v)
		case uint64:
			out[i] = float64(v)
		case float32:
			out[i] = float64(v)
		case float64:
			out[i] = v
		default:
			return nil, fmt.Errorf("%w: index %d holds %T", ErrNotNumeric, i, item)
		}
	}
	return out, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Extremes
// ─────────────────────────────────────────────────────────────────────────────

// Min returns the smallest element.
func Min[T cmp.Ordered](items []T) mo.Option[T] {
	if len(items) == 0 {
		return mo.None[T]()
	}
	return mo.Some(slices.Min(items))
}

// Max returns the largest element.
func Max[T cmp.Ordered](items []T) mo.Option[T] {
	if len(items) == 0 {
		return mo.None[T]()
	}
	return mo.Some(slices.Max(items))
}

// MaxBy returns the element with the largest key. On ties the earliest
// element wins.
func MaxBy[T any, K cmp.Ordered](items []T, fn func(T) K) mo.Option[T] {
	return extremeBy(items, fn, 1)
}

// MinBy returns the element with the smallest key. On ties the earliest
// element wins.
func MinBy[T any, K cmp.Ordered](items []T, fn func(T) K) mo.Option[T] {
	return extremeBy(items, fn, -1)
}

func extremeBy[T any, K cmp.Ordered](items []T, fn func(T) K, sign int) mo.Option[T] {
	if len(items) == 0 {
		return mo.None[T]()
	}
	best, bestKey := items[0], fn(items[0])
	for _, item := range items[1:] {
		if k := fn(item); cmp.Compare(k, bestKey)*sign > 0 {
			best, bestKey = item, k
		}
	}
	return mo.Some(best)
}

// ─────────────────────────────────────────────────────────────────────────────
// Counting
// ─────────────────────────────────────────────────────────────────────────────

// CountBy returns how many elements satisfy fn.
func CountBy[T any](items []T, fn func(T) bool) int {
	return lo.CountBy(items, fn)
}

// Frequencies counts the occurrences of each value. Keys appear in order of
// first occurrence.
func Frequencies[T comparable](items []T) *dict.Map[T, int] {
	counts := dict.New[T, int]()
	for _, item := range items {
		n, _ := counts.Get(item)
		counts.Set(item, n+1)
	}
	return counts
}

// Mode returns the most frequent value. When several values share the
// highest count, the one that occurs first in items wins.
func Mode[T comparable](items []T) mo.Option[T] {
	var (
		best  T
		count int
	)
	for value, n := range Frequencies(items).All() {
		if n > count {
			best, count = value, n
		}
	}
	if count == 0 {
		return mo.None[T]()
	}
	return mo.Some(best)
}
