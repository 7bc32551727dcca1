// Package collections provides a fluent, generic Collection type on top of
// the slice helpers in package arr.
//
// # Overview
//
// The central type is [Collection][T], a wrapper around a slice of T that
// exposes the arr helpers as chainable methods:
//
//	result := collections.New(1, 2, 3, 4, 5, 6, 7, 8, 9, 10).
//	    Filter(func(n, _ int) bool { return n%2 == 0 }).
//	    SortByDesc(func(n int) float64 { return float64(n) }).
//	    Take(3).
//	    Implode(", ", strconv.Itoa) // → "10, 8, 6"
//
// # Immutability
//
// All transformation methods return a *new* Collection, leaving the original
// unchanged. Collection values are therefore safe to share across
// goroutines without locking.
//
// # Absence
//
// Accessors such as [Collection.First], [Collection.Second] and
// [Collection.Max] return a mo.Option instead of (T, bool):
//
//	name := users.First(isAdmin).OrElse(guest)
//
// # Type-transforming operations
//
// Go generics do not allow methods to introduce new type parameters, so
// operations that change the element type, or need comparable or numeric
// items, are package-level functions: [Map], [FlatMap], [Reduce], [Pluck],
// [GroupBy], [KeyBy], [Zip], [Pairs], [Combine], [Collapse], [FlattenDeep],
// [Sum], [Median], [Min], [Max], [Distinct], [Without], [Frequencies] and
// [Mode].
package collections
