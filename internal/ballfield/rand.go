package ballfield

import "math/rand"

// Source supplies the random draws used to build a field.
// *rand.Rand satisfies it.
type Source interface {
	Float64() float64
	Intn(n int) int
}

// NewSource returns a deterministic Source for the given seed.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed)) //nolint:gosec // simulation, not crypto
}

// uniform returns a value in [lo, hi).
func uniform(src Source, lo, hi float64) float64 {
	return lo + src.Float64()*(hi-lo)
}

// colorLevels is the exclusive upper bound of a sampled color channel.
const colorLevels = 255
