package collections

import (
	"iter"

	"github.com/samber/mo"
)

// Enumerable is the read-only surface of [Collection][T].
//
// [Collection.Concat], [Collection.Merge], [Collection.Diff] and
// [Collection.Intersect] accept any Enumerable, so callers can pass their
// own read-only views without depending on the concrete *Collection type.
type Enumerable[T any] interface {
	// All returns a copy of every item as a plain Go slice.
	All() []T

	// Values returns a lazy sequence over the items.
	Values() iter.Seq[T]

	// Count returns the number of items.
	Count() int

	// IsEmpty reports whether there are no items.
	IsEmpty() bool

	// First returns the first item, optionally the first matching fns[0].
	First(fns ...func(T) bool) mo.Option[T]

	// Last returns the last item, optionally the last matching fns[0].
	Last(fns ...func(T) bool) mo.Option[T]

	// Filter returns a new collection of the items for which fn holds.
	Filter(fn func(T, int) bool) *Collection[T]
}

var _ Enumerable[int] = (*Collection[int])(nil)
