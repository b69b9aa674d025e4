package orbitals

import "math"

// Radial is the r-only factor of an unnormalized density, r² |R_nl(r)|².
type Radial func(r Real) Real

// Angular is the (θ,φ) factor, |Y(θ,φ)|² of a real harmonic up to a constant.
type Angular func(theta, phi Real) Real

// Lobe pairs one angular shape with the radial part of its subshell.
type Lobe struct {
	Name    string
	Radial  Radial
	Angular Angular
}

// Eval returns the unnormalized density radial(r) * angular(θ,φ) >= 0.
func (l Lobe) Eval(r, theta, phi Real) Real {
	return l.Radial(r) * l.Angular(theta, phi)
}

func sq(x Real) Real { return x * x }

// Radial parts, n = shell.

func radial1s(r Real) Real { return r * r * math.Exp(-2*r) }

func radial2s(r Real) Real { return r * r * sq(2-r) * math.Exp(-r) }

func radial3s(r Real) Real {
	return r * r * sq(27-18*r+2*r*r) * math.Exp(-2*r/3)
}

func radial4s(r Real) Real {
	return r * r * sq(192-144*r+24*r*r-r*r*r) * math.Exp(-r/2)
}

func radial2p(r Real) Real { return sq(r*r) * math.Exp(-r) }

func radial3p(r Real) Real { return sq(r*r) * sq(6-r) * math.Exp(-2*r/3) }

func radial4p(r Real) Real {
	return sq(r*r) * sq(80-20*r+r*r) * math.Exp(-r/2)
}

func radial3d(r Real) Real { return sq(r*r*r) * math.Exp(-2*r/3) }

func radial4d(r Real) Real { return sq(r*r*r) * sq(12-r) * math.Exp(-r/2) }

func radial4f(r Real) Real { return sq(r*r*r*r) * math.Exp(-r/2) }

// Angular parts.

func isotropic(_, _ Real) Real { return 1 }

func angularPz(theta, _ Real) Real { return sq(math.Cos(theta)) }

func angularPx(theta, phi Real) Real { return sq(math.Sin(theta) * math.Cos(phi)) }

func angularPy(theta, phi Real) Real { return sq(math.Sin(theta) * math.Sin(phi)) }

func angularDz2(theta, _ Real) Real {
	c := math.Cos(theta)
	return sq(3*c*c - 1)
}

func angularDx2y2(theta, phi Real) Real {
	s := math.Sin(theta)
	return sq(s*s) * sq(math.Cos(2*phi))
}

func angularDxy(theta, phi Real) Real {
	s := math.Sin(theta)
	return sq(s*s) * sq(math.Sin(2*phi))
}

func angularDxz(theta, phi Real) Real {
	s, c := math.Sincos(theta)
	return sq(s*c) * sq(math.Cos(phi))
}

func angularDyz(theta, phi Real) Real {
	s, c := math.Sincos(theta)
	return sq(s*c) * sq(math.Sin(phi))
}

func angularFz3(theta, _ Real) Real {
	c := math.Cos(theta)
	return sq(5*c*c*c - 3*c)
}

func angularFxz2(theta, phi Real) Real {
	s, c := math.Sincos(theta)
	return sq(s*(5*c*c-1)) * sq(math.Cos(phi))
}

func angularFyz2(theta, phi Real) Real {
	s, c := math.Sincos(theta)
	return sq(s*(5*c*c-1)) * sq(math.Sin(phi))
}

func angularFxyz(theta, phi Real) Real {
	s, c := math.Sincos(theta)
	return sq(s*s*c) * sq(math.Sin(2*phi))
}

func angularFzx2y2(theta, phi Real) Real {
	s, c := math.Sincos(theta)
	return sq(s*s*c) * sq(math.Cos(2*phi))
}

func angularFx3y2(theta, phi Real) Real {
	s := math.Sin(theta)
	return sq(s*s*s) * sq(math.Cos(3*phi))
}

func angularFy3x2y2(theta, phi Real) Real {
	s := math.Sin(theta)
	return sq(s*s*s) * sq(math.Sin(3*phi))
}
