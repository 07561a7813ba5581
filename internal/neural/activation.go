package neural

import "math"

func sigmoid(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}

// sigmoidPrime is s(x)*(1-s(x)), evaluated on the raw pre-activation
// value, not on the stored activation.
func sigmoidPrime(x float64) float64 {
	s := sigmoid(x)
	return s * (1.0 - s)
}
