package generator

import mathrand "math/rand/v2"

const alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// intN returns a random int in [0, n) using the provided RNG if
// non-nil, otherwise the global math/rand/v2 source. The global source
// is safe for concurrent use; a seeded *Rand is not, and is meant for
// deterministic single-goroutine rendering.
func intN(rng *mathrand.Rand, n int) int {
	if n <= 0 {
		return 0
	}
	if rng != nil {
		return rng.IntN(n)
	}
	return mathrand.IntN(n)
}

// alphanumericString returns a random string of the given length drawn
// uniformly from [A-Za-z0-9].
func alphanumericString(rng *mathrand.Rand, length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = alphanumeric[intN(rng, len(alphanumeric))]
	}
	return string(b)
}
