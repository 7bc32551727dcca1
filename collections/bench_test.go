package collections_test

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/hasbyte1/go-utility-belts/collections"
)

// shuffled returns 0..n-1 in a fixed pseudo-random order.
func shuffled(n int) *collections.Collection[int] {
	return collections.From(rand.New(rand.NewPCG(3, 5)).Perm(n))
}

// repeating returns n items cycling through distinct values.
func repeating(n, distinct int) *collections.Collection[int] {
	items := make([]int, n)
	for i := range items {
		items[i] = i % distinct
	}
	return collections.From(items)
}

func BenchmarkChunk(b *testing.B) {
	c := shuffled(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = c.Chunk(64)
	}
}

func BenchmarkWindowed(b *testing.B) {
	c := shuffled(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = c.Windowed(8, 4)
	}
}

func BenchmarkRotate(b *testing.B) {
	c := shuffled(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Rotate(-3_333)
	}
}

func BenchmarkPartition(b *testing.B) {
	c := shuffled(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Partition(func(n int) bool { return n&1 == 0 })
	}
}

func BenchmarkSampleSeeded(b *testing.B) {
	c := shuffled(10_000)
	rnd := rand.New(rand.NewPCG(1, 1))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Sample(100, rnd)
	}
}

func BenchmarkFrequencies(b *testing.B) {
	c := repeating(10_000, 100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		collections.Frequencies(c)
	}
}

func BenchmarkMode(b *testing.B) {
	c := repeating(10_000, 100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		collections.Mode(c)
	}
}

func BenchmarkMedian(b *testing.B) {
	for _, n := range []int{1_000, 100_000, 1_000_000} {
		c := shuffled(n)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				collections.Median(c)
			}
		})
	}
}

func BenchmarkGroupByModulo(b *testing.B) {
	c := shuffled(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		collections.GroupBy(c, func(n int) int { return n % 16 })
	}
}
