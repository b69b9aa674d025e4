package orbitals

import (
	"math"
	"math/rand"

	"github.com/golang/geo/r3"
)

// Direction is a unit vector on S^2 in spherical form, angles in radians.
// Theta is the polar angle in [0, π], Phi the azimuth in [0, 2π).
type Direction struct {
	Theta, Phi Real
}

// RandomDirection returns a direction uniformly distributed over the sphere.
// θ = acos(2u-1) keeps the area element uniform; drawing θ uniformly would
// crowd the poles.
func RandomDirection(rng *rand.Rand) Direction {
	theta := math.Acos(2*rng.Float64() - 1)
	phi := 2 * math.Pi * rng.Float64()
	return Direction{Theta: theta, Phi: phi}
}

// Unit returns the Cartesian unit vector (sinθcosφ, sinθsinφ, cosθ).
func (d Direction) Unit() r3.Vector {
	st, ct := math.Sincos(d.Theta)
	sp, cp := math.Sincos(d.Phi)
	return r3.Vector{X: st * cp, Y: st * sp, Z: ct}
}

// At places the point at distance r along d.
func (d Direction) At(r Real) Point {
	return d.Unit().Mul(r)
}
