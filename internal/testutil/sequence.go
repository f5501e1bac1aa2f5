package testutil

import "math/rand"

// Sequence returns [0, 1, ..., n-1].
func Sequence(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// DeterministicFloats returns n values in [-amplitude, amplitude] drawn from
// a fixed seed, so failures are reproducible.
func DeterministicFloats(seed int64, amplitude float64, n int) []float64 {
	out := make([]float64, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}
