package arr

import (
	"fmt"
	"slices"
)

// ─────────────────────────────────────────────────────────────────────────────
// In-place mutation
//
// These helpers modify the slice pointed to by list. They never reallocate
// when removing, so other slices sharing the backing array see the shifted
// elements.
// ─────────────────────────────────────────────────────────────────────────────

// RemoveFirst removes the first occurrence of value and reports whether one
// was found.
//
//	xs := []int{1, 2, 1, 3}
//	RemoveFirst(&xs, 1) // xs == [2 1 3]
func RemoveFirst[T comparable](list *[]T, value T) bool {
	i := slices.Index(*list, value)
	if i < 0 {
		return false
	}
	*list = slices.Delete(*list, i, i+1)
	return true
}

// RemoveLastOccurrence removes the last occurrence of value and reports
// whether one was found.
//
//	xs := []int{1, 2, 1, 3}
//	RemoveLastOccurrence(&xs, 1) // xs == [1 2 3]
func RemoveLastOccurrence[T comparable](list *[]T, value T) bool {
	i := LastIndexOf(*list, value)
	if i < 0 {
		return false
	}
	*list = slices.Delete(*list, i, i+1)
	return true
}

// RemoveAll removes every occurrence of value and returns how many were
// removed.
func RemoveAll[T comparable](list *[]T, value T) int {
	before := len(*list)
	*list = slices.DeleteFunc(*list, func(item T) bool { return item == value })
	return before - len(*list)
}

// RemoveN removes up to n occurrences of value scanning from the front.
// A negative n removes up to -n occurrences scanning from the back. It
// returns how many elements were removed.
func RemoveN[T comparable](list *[]T, value T, n int) int {
	removed := 0
	if n >= 0 {
		for removed < n && RemoveFirst(list, value) {
			removed++
		}
		return removed
	}
	for removed < -n && RemoveLastOccurrence(list, value) {
		removed++
	}
	return removed
}

// RemoveWhere removes every element satisfying fn and returns how many were
// removed.
func RemoveWhere[T any](list *[]T, fn func(T) bool) int {
	before := len(*list)
	*list = slices.DeleteFunc(*list, fn)
	return before - len(*list)
}

// Swap exchanges the elements at i and j. Returns [ErrIndexOutOfRange] when
// either index is outside the slice.
func Swap[T any](list *[]T, i, j int) error {
	n := len(*list)
	if i < 0 || i >= n || j < 0 || j >= n {
		return fmt.Errorf("%w: swap(%d, %d) on length %d", ErrIndexOutOfRange, i, j, n)
	}
	(*list)[i], (*list)[j] = (*list)[j], (*list)[i]
	return nil
}

// ClearAndAddAll replaces the contents of list with items, reusing the
// backing array when it is large enough.
func ClearAndAddAll[T any](list *[]T, items ...T) {
	old := len(*list)
	*list = append((*list)[:0], items...)
	if old > len(*list) {
		clear((*list)[len(*list):old])
	}
}
