package arr_test

import (
	"slices"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/hasbyte1/go-utility-belts/arr"
)

func TestChunkProperties(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	properties.Property("concatenated chunks reproduce the input", prop.ForAll(
		func(xs []int, n int) bool {
			chunks, err := arr.Chunk(xs, n)
			return err == nil && slices.Equal(arr.Collapse(chunks), xs)
		},
		gen.SliceOf(gen.Int()),
		gen.IntRange(1, 10),
	))

	properties.Property("every chunk but the last has exactly n elements", prop.ForAll(
		func(xs []int, n int) bool {
			chunks, _ := arr.Chunk(xs, n)
			for i, c := range chunks {
				if i < len(chunks)-1 && len(c) != n {
					return false
				}
				if len(c) == 0 || len(c) > n {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.Int()),
		gen.IntRange(1, 10),
	))

	properties.TestingRun(t)
}

func TestRotateProperties(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	properties.Property("Rotate(k) then Rotate(-k) is the identity", prop.ForAll(
		func(xs []int, k int) bool {
			return slices.Equal(arr.Rotate(arr.Rotate(xs, k), -k), xs)
		},
		gen.SliceOf(gen.Int()),
		gen.IntRange(-50, 50),
	))

	properties.Property("Rotate(0) is the identity", prop.ForAll(
		func(xs []int) bool { return slices.Equal(arr.Rotate(xs, 0), xs) },
		gen.SliceOf(gen.Int()),
	))

	properties.TestingRun(t)
}

func TestMedianProperties(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	properties.Property("median lies between min and max", prop.ForAll(
		func(xs []int) bool {
			if len(xs) == 0 {
				return true
			}
			m := arr.Median(xs)
			return float64(arr.Min(xs).MustGet()) <= m && m <= float64(arr.Max(xs).MustGet())
		},
		gen.SliceOfN(15, gen.IntRange(-1000, 1000)).SuchThat(func(xs []int) bool { return len(xs) > 0 }),
	))

	properties.Property("odd-length median is the middle of the sorted copy", prop.ForAll(
		func(xs []int) bool {
			if len(xs) == 0 {
				return true
			}
			if len(xs)%2 == 0 {
				xs = xs[1:]
			}
			sorted := slices.Clone(xs)
			slices.Sort(sorted)
			return arr.Median(xs) == float64(sorted[len(sorted)/2])
		},
		gen.SliceOfN(9, gen.IntRange(-1000, 1000)),
	))

	properties.TestingRun(t)
}
