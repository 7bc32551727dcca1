package collections

import (
	"encoding/json"
	"fmt"
	"iter"
	"math/rand/v2"
	"slices"

	"github.com/samber/lo"
	"github.com/samber/mo"

	"github.com/hasbyte1/go-utility-belts/arr"
)

// Collection is a fluent, immutable-by-default wrapper around a slice of T.
//
// Every method that transforms the collection returns a *new* Collection,
// leaving the original unchanged, so a collection may be read from several
// goroutines at once. The methods delegate to package [arr]; Collection
// only adds method-call syntax on top of it.
//
// # Creating a collection
//
//	c := collections.New(1, 2, 3, 4, 5)
//	c := collections.From([]string{"a", "b", "c"})
//	c := collections.Collect(maps.Keys(m))
//
// # Method chaining
//
//	result := collections.New(5, 3, 8, 1).
//	    Filter(func(n, _ int) bool { return n > 2 }).
//	    SortBy(func(n int) float64 { return float64(n) }).
//	    Take(2)
//
// # Type-transforming operations
//
// Methods cannot introduce type parameters, so operations that change the
// element type are package-level functions: [Map], [GroupBy], [Zip] ...
type Collection[T any] struct {
	items []T
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a Collection from a variadic list of items (copied).
func New[T any](items ...T) *Collection[T] {
	return From(items)
}

// From creates a Collection from a slice (the slice is copied).
func From[T any](items []T) *Collection[T] {
	return wrap(slices.Clone(items))
}

// Collect drains seq into a new Collection.
func Collect[T any](seq iter.Seq[T]) *Collection[T] {
	return wrap(slices.Collect(seq))
}

// Empty creates an empty Collection of type T.
func Empty[T any]() *Collection[T] {
	return &Collection[T]{items: []T{}}
}

// wrap takes ownership of items without copying.
func wrap[T any](items []T) *Collection[T] {
	if items == nil {
		items = []T{}
	}
	return &Collection[T]{items: items}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// All returns a copy of the underlying slice.
func (c *Collection[T]) All() []T { return slices.Clone(c.items) }

// ToSlice is an alias for [Collection.All].
func (c *Collection[T]) ToSlice() []T { return c.All() }

// Values returns a lazy sequence over the items.
func (c *Collection[T]) Values() iter.Seq[T] { return slices.Values(c.items) }

// Indexed returns a lazy sequence of (index, item) pairs.
func (c *Collection[T]) Indexed() iter.Seq2[int, T] { return slices.All(c.items) }

// Count returns the number of items in the collection.
func (c *Collection[T]) Count() int { return len(c.items) }

// IsEmpty reports whether the collection contains no items.
func (c *Collection[T]) IsEmpty() bool { return len(c.items) == 0 }

// IsNotEmpty reports whether the collection has at least one item.
func (c *Collection[T]) IsNotEmpty() bool { return len(c.items) > 0 }

// Get returns the item at index. Negative indexes count from the end.
func (c *Collection[T]) Get(index int) mo.Option[T] { return arr.ElementAt(c.items, index) }

// At returns the item at index (no negative indexing), or
// [ErrIndexOutOfRange].
func (c *Collection[T]) At(index int) (T, error) {
	if index < 0 || index >= len(c.items) {
		var zero T
		return zero, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, index, len(c.items))
	}
	return c.items[index], nil
}

// Has reports whether index is a valid position in the collection.
func (c *Collection[T]) Has(index int) bool {
	return index >= 0 && index < len(c.items)
}

// MarshalJSON encodes the items as a JSON array.
func (c *Collection[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.items)
}

// ToJSON serialises the collection items to a JSON array.
func (c *Collection[T]) ToJSON() ([]byte, error) { return c.MarshalJSON() }

// String renders the items like fmt does for a slice, e.g. "[1 2 3]".
func (c *Collection[T]) String() string { return fmt.Sprint(c.items) }

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// Each calls fn(item, index) for every item.
func (c *Collection[T]) Each(fn func(T, int)) {
	arr.ForEachIndexed(c.items, func(i int, item T) { fn(item, i) })
}

// Tap calls fn(c) for side-effects (e.g. debugging) and returns c
// unchanged for further chaining.
func (c *Collection[T]) Tap(fn func(*Collection[T])) *Collection[T] {
	fn(c)
	return c
}

// ─────────────────────────────────────────────────────────────────────────────
// Search & Lookup
// ─────────────────────────────────────────────────────────────────────────────

// First returns the first item, or the first matching fns[0] when given.
func (c *Collection[T]) First(fns ...func(T) bool) mo.Option[T] {
	if len(fns) > 0 {
		return arr.FirstWhere(c.items, fns[0])
	}
	return arr.FirstOrNone(c.items)
}

// FirstOrFail returns the first item matching fn, or [ErrNoMatchingItems].
func (c *Collection[T]) FirstOrFail(fn func(T) bool) (T, error) {
	return orFail(c.First(fn))
}

func orFail[T any](o mo.Option[T]) (T, error) {
	v, ok := o.Get()
	if !ok {
		return v, ErrNoMatchingItems
	}
	return v, nil
}

// Second returns the second item.
func (c *Collection[T]) Second() mo.Option[T] { return arr.Second(c.items) }

// Third returns the third item.
func (c *Collection[T]) Third() mo.Option[T] { return arr.Third(c.items) }

// Penultimate returns the second-to-last item.
func (c *Collection[T]) Penultimate() mo.Option[T] { return arr.Penultimate(c.items) }

// Last returns the last item, or the last matching fns[0] when given.
func (c *Collection[T]) Last(fns ...func(T) bool) mo.Option[T] {
	if len(fns) > 0 {
		return arr.LastWhere(c.items, fns[0])
	}
	return arr.LastOrNone(c.items)
}

// LastOrFail returns the last item matching fn, or [ErrNoMatchingItems].
func (c *Collection[T]) LastOrFail(fn func(T) bool) (T, error) {
	return orFail(c.Last(fn))
}

// Single returns the only item when the collection holds exactly one.
func (c *Collection[T]) Single() mo.Option[T] { return arr.SingleOrNone(c.items) }

// Contains reports whether at least one item satisfies fn.
func (c *Collection[T]) Contains(fn func(T) bool) bool { return arr.Contains(c.items, fn) }

// Search returns the index of the first item for which fn returns true, or -1.
func (c *Collection[T]) Search(fn func(T) bool) int { return arr.Search(c.items, fn) }

// CountBy returns how many items satisfy fn.
func (c *Collection[T]) CountBy(fn func(T) bool) int { return arr.CountBy(c.items, fn) }

// Every reports whether every item satisfies fn (true when empty).
func (c *Collection[T]) Every(fn func(T) bool) bool { return lo.EveryBy(c.items, fn) }

// ─────────────────────────────────────────────────────────────────────────────
// Transformation (type-preserving)
// ─────────────────────────────────────────────────────────────────────────────

// Filter returns the items for which fn(item, index) returns true.
func (c *Collection[T]) Filter(fn func(T, int) bool) *Collection[T] {
	return wrap(arr.Filter(c.items, fn))
}

// Reject returns the items for which fn(item, index) returns false.
func (c *Collection[T]) Reject(fn func(T, int) bool) *Collection[T] {
	return wrap(arr.Reject(c.items, fn))
}

// Where is an alias for [Collection.Filter].
func (c *Collection[T]) Where(fn func(T, int) bool) *Collection[T] { return c.Filter(fn) }

// WhereIndexed returns the (index, item) pairs for which fn holds, lazily.
func (c *Collection[T]) WhereIndexed(fn func(int, T) bool) iter.Seq2[int, T] {
	return arr.WhereIndexed(c.items, fn)
}

// Compact drops nil values and empty strings, slices and maps.
func (c *Collection[T]) Compact() *Collection[T] { return wrap(arr.Compact(c.items)) }

// Reduce folds the items into a single value of type T.
//
// For reductions that change the type use the package-level [Reduce].
func (c *Collection[T]) Reduce(fn func(carry, item T) T, initial T) T {
	return arr.Reduce(c.items, func(acc, item T, _ int) T { return fn(acc, item) }, initial)
}

// Unique removes duplicates by the key fn extracts; the first occurrence
// wins. The key must be a comparable value.
func (c *Collection[T]) Unique(fn func(T) any) *Collection[T] {
	return wrap(arr.DistinctBy(c.items, fn))
}

// Diff returns the items of c whose key is not present in other.
func (c *Collection[T]) Diff(other Enumerable[T], fn func(T) any) *Collection[T] {
	set := keySet(other.All(), fn)
	return wrap(lo.Reject(c.items, func(item T, _ int) bool { return lo.HasKey(set, fn(item)) }))
}

// Intersect returns the items of c whose key is also present in other.
func (c *Collection[T]) Intersect(other Enumerable[T], fn func(T) any) *Collection[T] {
	set := keySet(other.All(), fn)
	return wrap(lo.Filter(c.items, func(item T, _ int) bool { return lo.HasKey(set, fn(item)) }))
}

func keySet[T any](items []T, fn func(T) any) map[any]struct{} {
	return lo.SliceToMap(items, func(item T) (any, struct{}) { return fn(item), struct{}{} })
}

// Reverse returns the items in reverse order.
func (c *Collection[T]) Reverse() *Collection[T] { return wrap(arr.Reverse(c.items)) }

// Rotate rotates left by n positions; a negative n rotates right.
func (c *Collection[T]) Rotate(n int) *Collection[T] { return wrap(arr.Rotate(c.items, n)) }

// Sort returns the items stably sorted by less.
func (c *Collection[T]) Sort(less func(a, b T) bool) *Collection[T] {
	return wrap(arr.Sort(c.items, less))
}

// SortBy returns the items stably sorted by ascending fn(item).
func (c *Collection[T]) SortBy(fn func(T) float64) *Collection[T] {
	return wrap(arr.SortedBy(c.items, fn))
}

// SortByDesc returns the items stably sorted by descending fn(item).
func (c *Collection[T]) SortByDesc(fn func(T) float64) *Collection[T] {
	return wrap(arr.SortedByDescending(c.items, fn))
}

// Shuffle returns the items in random order. Pass a *rand.Rand for a
// reproducible order.
func (c *Collection[T]) Shuffle(rnd ...*rand.Rand) *Collection[T] {
	return wrap(arr.Shuffle(c.items, rnd...))
}

// Sample returns n items drawn without replacement. When n >= Count() the
// result is a shuffled copy of the whole collection.
func (c *Collection[T]) Sample(n int, rnd ...*rand.Rand) *Collection[T] {
	return wrap(arr.Sample(c.items, n, rnd...))
}

// Random returns one item chosen uniformly at random, or
// [ErrEmptyCollection].
func (c *Collection[T]) Random(rnd ...*rand.Rand) (T, error) {
	if c.IsEmpty() {
		var zero T
		return zero, ErrEmptyCollection
	}
	return arr.Random(c.items, rnd...)
}

// Intersperse places sep between every two items.
func (c *Collection[T]) Intersperse(sep T) *Collection[T] {
	return wrap(arr.Intersperse(c.items, sep))
}

// ─────────────────────────────────────────────────────────────────────────────
// Add / Remove
// ─────────────────────────────────────────────────────────────────────────────

// Push returns a new collection with items appended.
func (c *Collection[T]) Push(items ...T) *Collection[T] {
	return wrap(slices.Concat(c.items, items))
}

// Append is an alias for [Collection.Push].
func (c *Collection[T]) Append(items ...T) *Collection[T] { return c.Push(items...) }

// Prepend returns a new collection with items inserted at the front.
func (c *Collection[T]) Prepend(items ...T) *Collection[T] {
	return wrap(arr.Prepend(c.items, items...))
}

// Pop returns the last item and the collection without it. On an empty
// collection the option is absent and c is returned.
func (c *Collection[T]) Pop() (mo.Option[T], *Collection[T]) {
	if c.IsEmpty() {
		return mo.None[T](), c
	}
	return mo.Some(c.items[len(c.items)-1]), From(c.items[:len(c.items)-1])
}

// Shift returns the first item and the collection without it. On an empty
// collection the option is absent and c is returned.
func (c *Collection[T]) Shift() (mo.Option[T], *Collection[T]) {
	if c.IsEmpty() {
		return mo.None[T](), c
	}
	return mo.Some(c.items[0]), From(c.items[1:])
}

// Pull returns the item at index and the collection without it, or
// [ErrIndexOutOfRange].
func (c *Collection[T]) Pull(index int) (T, *Collection[T], error) {
	item, err := c.At(index)
	if err != nil {
		return item, c, err
	}
	return item, wrap(slices.Delete(c.All(), index, index+1)), nil
}

// Forget returns a new collection with the item at index removed.
// Returns c unchanged if index is out of range.
func (c *Collection[T]) Forget(index int) *Collection[T] {
	_, col, _ := c.Pull(index)
	return col
}

// RemoveWhere returns the collection without the items satisfying fn.
func (c *Collection[T]) RemoveWhere(fn func(T) bool) *Collection[T] {
	out := c.All()
	arr.RemoveWhere(&out, fn)
	return wrap(out)
}

// Swap returns a copy with the items at i and j exchanged, or
// [ErrIndexOutOfRange].
func (c *Collection[T]) Swap(i, j int) (*Collection[T], error) {
	out := c.All()
	if err := arr.Swap(&out, i, j); err != nil {
		return c, fmt.Errorf("%w: %w", ErrIndexOutOfRange, err)
	}
	return wrap(out), nil
}

// Concat returns a new collection with all items from other appended.
func (c *Collection[T]) Concat(other Enumerable[T]) *Collection[T] {
	return c.Push(other.All()...)
}

// Merge is an alias for [Collection.Concat].
func (c *Collection[T]) Merge(other Enumerable[T]) *Collection[T] { return c.Concat(other) }

// ─────────────────────────────────────────────────────────────────────────────
// Slicing & Pagination
// ─────────────────────────────────────────────────────────────────────────────

// Take returns at most n items from the start.
// A negative n returns items from the end (Take(-3) is the last 3 items).
func (c *Collection[T]) Take(n int) *Collection[T] {
	if n < 0 {
		return wrap(arr.TakeLast(c.items, -n))
	}
	return From(c.items[:min(n, len(c.items))])
}

// TakeUntil returns items from the start until fn returns true (exclusive).
func (c *Collection[T]) TakeUntil(fn func(T) bool) *Collection[T] {
	i := arr.Search(c.items, fn)
	if i < 0 {
		return From(c.items)
	}
	return From(c.items[:i])
}

// TakeWhile returns items from the start while fn returns true.
func (c *Collection[T]) TakeWhile(fn func(T) bool) *Collection[T] {
	return c.TakeUntil(func(item T) bool { return !fn(item) })
}

// Skip returns a new collection skipping the first n items.
// A negative n drops items counted from the end.
func (c *Collection[T]) Skip(n int) *Collection[T] {
	total := len(c.items)
	if n < 0 {
		return From(c.items[:max(0, total+n)])
	}
	return From(c.items[min(n, total):])
}

// SkipUntil skips items until fn returns true, then returns the rest.
func (c *Collection[T]) SkipUntil(fn func(T) bool) *Collection[T] {
	i := arr.Search(c.items, fn)
	if i < 0 {
		return Empty[T]()
	}
	return From(c.items[i:])
}

// SkipWhile skips items while fn returns true, then returns the rest.
func (c *Collection[T]) SkipWhile(fn func(T) bool) *Collection[T] {
	return c.SkipUntil(func(item T) bool { return !fn(item) })
}

// Slice returns items starting at offset with at most length items.
// A negative offset counts from the end. A negative length means "to the
// end".
func (c *Collection[T]) Slice(offset, length int) *Collection[T] {
	total := len(c.items)
	if offset < 0 {
		offset = max(0, total+offset)
	}
	if offset >= total {
		return Empty[T]()
	}
	if length < 0 {
		return From(c.items[offset:])
	}
	return From(c.items[offset:min(offset+length, total)])
}

// Chunk splits the collection into consecutive groups of size. The last
// group may be shorter. Returns [arr.ErrInvalidSize] when size <= 0.
//
//	chunks, _ := c.Chunk(2)
//	for _, chunk := range chunks {
//	    sub := collections.From(chunk)
//	    // ...
//	}
func (c *Collection[T]) Chunk(size int) ([][]T, error) {
	return arr.Chunk(c.items, size)
}

// Windowed returns overlapping windows of size items advancing by step
// (default 1).
func (c *Collection[T]) Windowed(size int, step ...int) ([][]T, error) {
	return arr.Windowed(c.items, size, step...)
}

// ─────────────────────────────────────────────────────────────────────────────
// Aggregation
// ─────────────────────────────────────────────────────────────────────────────

// Sum returns the sum of fn(item) over all items.
func (c *Collection[T]) Sum(fn func(T) float64) float64 { return arr.SumBy(c.items, fn) }

// Average returns the mean of fn(item), or 0 for an empty collection.
func (c *Collection[T]) Average(fn func(T) float64) float64 {
	return arr.AverageBy(c.items, fn)
}

// Min returns the item with the smallest fn(item); the earliest wins ties.
func (c *Collection[T]) Min(fn func(T) float64) mo.Option[T] { return arr.MinBy(c.items, fn) }

// Max returns the item with the largest fn(item); the earliest wins ties.
func (c *Collection[T]) Max(fn func(T) float64) mo.Option[T] { return arr.MaxBy(c.items, fn) }

// ─────────────────────────────────────────────────────────────────────────────
// Partitioning
// ─────────────────────────────────────────────────────────────────────────────

// Partition splits the collection into the items satisfying fn and the
// rest, each keeping relative order.
func (c *Collection[T]) Partition(fn func(T) bool) (*Collection[T], *Collection[T]) {
	pass, fail := arr.Partition(c.items, fn).Unpack()
	return wrap(pass), wrap(fail)
}

// ─────────────────────────────────────────────────────────────────────────────
// String helpers
// ─────────────────────────────────────────────────────────────────────────────

// Implode joins all items with sep, rendering each with fn.
func (c *Collection[T]) Implode(sep string, fn func(T) string) string {
	return arr.JoinToString(c.items, arr.JoinOptions{Separator: sep}, fn)
}

// JoinToString renders the items with opts; see [arr.JoinToString].
func (c *Collection[T]) JoinToString(opts arr.JoinOptions, transform ...func(T) string) string {
	return arr.JoinToString(c.items, opts, transform...)
}

// ─────────────────────────────────────────────────────────────────────────────
// Conditional pipeline
// ─────────────────────────────────────────────────────────────────────────────

// When calls fn(c) if condition is true and returns the result.
// Otherwise returns c unchanged.
func (c *Collection[T]) When(condition bool, fn func(*Collection[T]) *Collection[T]) *Collection[T] {
	if condition {
		return fn(c)
	}
	return c
}

// Unless calls fn(c) if condition is false; otherwise returns c.
func (c *Collection[T]) Unless(condition bool, fn func(*Collection[T]) *Collection[T]) *Collection[T] {
	return c.When(!condition, fn)
}

// WhenEmpty calls fn(c) if c is empty; otherwise returns c.
func (c *Collection[T]) WhenEmpty(fn func(*Collection[T]) *Collection[T]) *Collection[T] {
	return c.When(c.IsEmpty(), fn)
}

// WhenNotEmpty calls fn(c) if c is not empty; otherwise returns c.
func (c *Collection[T]) WhenNotEmpty(fn func(*Collection[T]) *Collection[T]) *Collection[T] {
	return c.When(c.IsNotEmpty(), fn)
}
