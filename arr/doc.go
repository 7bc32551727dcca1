// Package arr provides standalone generic helpers for Go slices: safe
// accessors, in-place removal, aggregation and statistics, indexed and lazy
// iteration, restructuring (chunk, window, zip, rotate, group) and seeded
// random sampling.
//
// Helpers take the slice as their first argument and return a new value:
//
//	chunks, _ := arr.Chunk([]int{1, 2, 3, 4, 5}, 2) // [[1 2] [3 4] [5]]
//	evens, odds := arr.Partition(xs, isEven).Unpack()
//	groups := arr.GroupBy(words, func(w string) int { return len(w) })
//
// # Mutation
//
// Only the functions that take a *[]T modify their input: [RemoveFirst],
// [RemoveLastOccurrence], [RemoveAll], [RemoveN], [Swap] and
// [ClearAndAddAll]. Everything else leaves the receiver untouched, and
// sorting helpers such as [SortedBy] return a sorted copy.
//
// # Absence
//
// Missing elements are reported with mo.Option rather than errors or zero
// values:
//
//	arr.Second([]int{7}).IsPresent()       // false
//	arr.SingleOrNone([]int{1, 2}).IsAbsent() // true
//
// Errors are reserved for violated preconditions (a non-positive chunk
// size, an empty list passed to [Random]) and wrap the sentinels in this
// package.
//
// # Randomness
//
// [Random], [Sample] and [Shuffle] accept an optional *rand.Rand from
// math/rand/v2. Pass one built from a fixed seed for reproducible output:
//
//	rnd := rand.New(rand.NewPCG(1, 2))
//	arr.Shuffle(xs, rnd)
package arr
