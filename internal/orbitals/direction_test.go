package orbitals

import (
	"math"
	"math/rand"
	"testing"
)

func TestRandomDirectionIsUniformOnS2(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	const M = 200000
	var sz, sz2, sx2 float64
	for i := 0; i < M; i++ {
		d := RandomDirection(rng)
		if th := d.Theta; th < 0 || th > math.Pi {
			t.Fatalf("theta out of range: %g", th)
		}
		if ph := d.Phi; ph < 0 || ph >= 2*math.Pi {
			t.Fatalf("phi out of range: %g", ph)
		}
		u := d.Unit()
		if !u.IsUnit() {
			t.Fatalf("direction not unit: |u|=%g", u.Norm())
		}
		sz += u.Z
		sz2 += u.Z * u.Z
		sx2 += u.X * u.X
	}
	// Uniform on S^2: E[z]=0, E[z^2]=E[x^2]=1/3.
	if m := sz / M; math.Abs(m) > 0.01 {
		t.Fatalf("mean z=%g, want≈0", m)
	}
	if m := sz2 / M; math.Abs(m-1.0/3) > 0.01 {
		t.Fatalf("mean z^2=%g, want≈1/3", m)
	}
	if m := sx2 / M; math.Abs(m-1.0/3) > 0.01 {
		t.Fatalf("mean x^2=%g, want≈1/3", m)
	}
}

func TestDirectionAt(t *testing.T) {
	d := Direction{Theta: math.Pi / 2, Phi: 0}
	p := d.At(3)
	if math.Abs(p.X-3) > 1e-12 || math.Abs(p.Y) > 1e-12 || math.Abs(p.Z) > 1e-12 {
		t.Fatalf("At mismatch: %v", p)
	}
	p = Direction{}.At(2)
	if p != (Point{X: 0, Y: 0, Z: 2}) {
		t.Fatalf("pole mismatch: %v", p)
	}
}
