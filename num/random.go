package num

import (
	"fmt"
	"math/rand/v2"
)

// RandomList returns count integers drawn uniformly from [low, high).
// An optional *rand.Rand makes the output reproducible. Returns
// [ErrInvalidRange] when low >= high or count < 0.
func RandomList(count, low, high int, rnd ...*rand.Rand) ([]int, error) {
	if low >= high {
		return nil, fmt.Errorf("%w: [%d, %d) is empty", ErrInvalidRange, low, high)
	}
	if count < 0 {
		return nil, fmt.Errorf("%w: negative count %d", ErrInvalidRange, count)
	}
	intN := rand.IntN
	if len(rnd) > 0 && rnd[0] != nil {
		intN = rnd[0].IntN
	}
	out := make([]int, count)
	for i := range out {
		out[i] = low + intN(high-low)
	}
	return out, nil
}
