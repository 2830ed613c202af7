package testutil

import (
	"math/rand"
)

// Axis returns wavelengths from start to stop (inclusive) in steps of step nm.
func Axis(start, stop, step float64) []float64 {
	var out []float64
	for i := 0; ; i++ {
		w := start + float64(i)*step
		if w > stop+1e-9 {
			break
		}
		out = append(out, w)
	}
	return out
}

// DeterministicCurves generates n reflectance-like curves in [0.05, 0.95]
// of the given length with a fixed seed.
func DeterministicCurves(seed int64, n, length int) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([][]float64, n)
	for i := range out {
		c := make([]float64, length)
		level := 0.05 + 0.9*rng.Float64()
		for j := range c {
			level += (rng.Float64() - 0.5) * 0.02
			if level < 0.05 {
				level = 0.05
			}
			if level > 0.95 {
				level = 0.95
			}
			c[j] = level
		}
		out[i] = c
	}
	return out
}
