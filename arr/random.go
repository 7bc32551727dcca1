package arr

import (
	"math/rand/v2"
	"slices"
)

// ─────────────────────────────────────────────────────────────────────────────
// Randomisation
//
// Every function takes an optional *rand.Rand. Without one the
// package-level generator of math/rand/v2 is used.
// ─────────────────────────────────────────────────────────────────────────────

func intN(n int, rnd []*rand.Rand) int {
	if len(rnd) > 0 && rnd[0] != nil {
		return rnd[0].IntN(n)
	}
	return rand.IntN(n)
}

// Random returns one element chosen uniformly at random. Returns
// [ErrEmptyList] when items is empty.
func Random[T any](items []T, rnd ...*rand.Rand) (T, error) {
	if len(items) == 0 {
		var zero T
		return zero, ErrEmptyList
	}
	return items[intN(len(items), rnd)], nil
}

// Shuffle returns a shuffled copy of items (Fisher-Yates).
func Shuffle[T any](items []T, rnd ...*rand.Rand) []T {
	out := slices.Clone(items)
	for i := len(out) - 1; i > 0; i-- {
		j := intN(i+1, rnd)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Sample returns n elements drawn without replacement. When n >= len(items)
// the result is a shuffled copy of every element; n <= 0 yields an empty
// slice.
func Sample[T any](items []T, n int, rnd ...*rand.Rand) []T {
	if n <= 0 {
		return []T{}
	}
	s := Shuffle(items, rnd...)
	if n >= len(s) {
		return s
	}
	return s[:n:n]
}
