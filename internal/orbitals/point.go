package orbitals

import (
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Point is one accepted sample in Cartesian coordinates.
type Point = r3.Vector

// Radii returns |p| for every point, in order.
func Radii(pts []Point) []Real {
	rs := make([]Real, len(pts))
	for i, p := range pts {
		rs[i] = p.Norm()
	}
	return rs
}

// RadialStats returns mean, standard deviation and maximum of the point radii.
// All zero for an empty set.
func RadialStats(pts []Point) (mean, std, max Real) {
	if len(pts) == 0 {
		return 0, 0, 0
	}
	rs := Radii(pts)
	mean, std = stat.MeanStdDev(rs, nil)
	if len(rs) < 2 {
		std = 0
	}
	return mean, std, floats.Max(rs)
}

// Centroid is the arithmetic mean of the points.
func Centroid(pts []Point) Point {
	var c Point
	if len(pts) == 0 {
		return c
	}
	for _, p := range pts {
		c = c.Add(p)
	}
	return c.Mul(1 / Real(len(pts)))
}
