package utils

import "math"

// NormalizeL2 normalizes the vector in place to unit L2 norm.
// A zero vector is left unchanged. Both corpus vectors (at build time) and
// query vectors (at query time) must pass through this before inner-product
// scoring, otherwise the scores are not cosine similarities.
func NormalizeL2(x []float32) {
	var sum float32
	for _, v := range x {
		sum += v * v
	}
	if sum == 0 {
		return
	}
	norm := float32(1.0 / math.Sqrt(float64(sum)))
	for i := range x {
		x[i] *= norm
	}
}
