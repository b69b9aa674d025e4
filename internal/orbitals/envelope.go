package orbitals

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

// estimateEnvelope probes the domain r ∈ [0,maxR), θ ∈ [0,π), φ ∈ [0,2π) uniformly
// and returns the largest density seen over all lobes. This is an empirical
// bound: a region never probed may exceed it, and candidates there are then
// accepted more often than the density warrants.
func estimateEnvelope(lobes []Lobe, maxR Real, probes int, rng *rand.Rand) Real {
	if probes <= 0 || len(lobes) == 0 {
		return 0
	}
	seen := make([]Real, 0, probes*len(lobes))
	for i := 0; i < probes; i++ {
		r := rng.Float64() * maxR
		theta := rng.Float64() * math.Pi
		phi := rng.Float64() * 2 * math.Pi
		for _, l := range lobes {
			if v := l.Eval(r, theta, phi); isFinite(v) {
				seen = append(seen, v)
			}
		}
	}
	if len(seen) == 0 {
		return 0
	}
	return floats.Max(seen)
}
