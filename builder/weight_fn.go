// Package builder provides edge-weight distributions for generated networks.
package builder

import "math/rand"

// DefaultEdgeWeight is the weight assigned when no WeightFn is configured.
const DefaultEdgeWeight int64 = 1

// WeightFn produces an edge weight given an optional *rand.Rand source.
// It must be deterministic for a given RNG state.
type WeightFn func(*rand.Rand) int64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) int64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics if value < 0.
func ConstantWeightFn(value int64) WeightFn {
	if value < 0 {
		panic("builder: ConstantWeightFn(value<0)")
	}
	return func(_ *rand.Rand) int64 {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max].
// Panics if min < 0 or max < min. With a nil rng it yields min.
func UniformWeightFn(min, max int64) WeightFn {
	if min < 0 || max < min {
		panic("builder: UniformWeightFn requires 0 ≤ min ≤ max")
	}
	return func(rng *rand.Rand) int64 {
		if rng == nil || min == max {
			return min
		}
		return min + rng.Int63n(max-min+1)
	}
}
