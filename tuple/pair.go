// Package tuple provides the small immutable value types shared by the
// list and map helpers of this module.
package tuple

import "fmt"

// Pair holds two values of possibly different types.
//
// It is the element type produced by arr.Zip / arr.ToPairs and the return
// type of the partitioning helpers in arr and dict. A Pair is a plain value:
// two pairs are equal (==) when both halves are equal, provided A and B are
// comparable.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Of builds a Pair from its two halves.
func Of[A, B any](first A, second B) Pair[A, B] {
	return Pair[A, B]{First: first, Second: second}
}

// Unpack returns both halves, so a pair can be destructured in one line:
//
//	evens, odds := arr.Partition(xs, isEven).Unpack()
func (p Pair[A, B]) Unpack() (A, B) {
	return p.First, p.Second
}

// Swap returns a new pair with the halves exchanged.
func (p Pair[A, B]) Swap() Pair[B, A] {
	return Pair[B, A]{First: p.Second, Second: p.First}
}

// String returns a human-readable representation: "(first, second)".
func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}
