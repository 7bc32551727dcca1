package arr

import "iter"

// ForEachIndexed calls fn(index, item) for every element in order.
func ForEachIndexed[T any](items []T, fn func(int, T)) {
	for i, item := range items {
		fn(i, item)
	}
}

// MapIndexed returns a lazy sequence of fn(index, item). Nothing is
// computed until the sequence is ranged over, and each range re-evaluates
// fn from the start.
//
//	for s := range arr.MapIndexed(names, label) { ... }
//	labels := slices.Collect(arr.MapIndexed(names, label))
func MapIndexed[T, U any](items []T, fn func(int, T) U) iter.Seq[U] {
	return func(yield func(U) bool) {
		for i, item := range items {
			if !yield(fn(i, item)) {
				return
			}
		}
	}
}

// WhereIndexed returns a lazy sequence of the (index, item) pairs for which
// fn(index, item) is true. Indexes refer to positions in items.
func WhereIndexed[T any](items []T, fn func(int, T) bool) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, item := range items {
			if fn(i, item) && !yield(i, item) {
				return
			}
		}
	}
}

// Values drops the keys of seq, keeping its values in order.
func Values[K, V any](seq iter.Seq2[K, V]) iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range seq {
			if !yield(v) {
				return
			}
		}
	}
}
