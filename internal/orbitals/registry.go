package orbitals

import (
	"math"
	"strconv"
)

// Family is the angular-momentum subshell letter.
type Family uint8

const (
	FamilyS Family = iota
	FamilyP
	FamilyD
	FamilyF
)

func (f Family) String() string {
	switch f {
	case FamilyS:
		return "s"
	case FamilyP:
		return "p"
	case FamilyD:
		return "d"
	case FamilyF:
		return "f"
	}
	return "?"
}

// Orbital is a resolved identifier: one lobe for a single orbital,
// all lobes of the subshell for a composite token like "3d".
type Orbital struct {
	Name   string
	Family Family
	N      int
	Lobes  []Lobe
}

// Composite reports whether the orbital averages several lobes.
func (o Orbital) Composite() bool { return len(o.Lobes) > 1 }

// MaxR is the upper end of the radial sampling range.
func (o Orbital) MaxR() Real { return shellExtent[o.N] }

// Probes is the number of envelope probes for this orbital.
func (o Orbital) Probes() int {
	if o.Family == FamilyF {
		return ProbeSamplesF
	}
	return ProbeSamples
}

// Budget is the attempt budget for count points.
func (o Orbital) Budget(count int) int {
	if o.Family == FamilyF {
		return attemptBudget(count, AttemptFactorF)
	}
	return attemptBudget(count, AttemptFactor)
}

// attemptBudget is count*factor, saturating at math.MaxInt instead of wrapping.
func attemptBudget(count, factor int) int {
	if count <= 0 || factor <= 0 {
		return 0
	}
	if count > math.MaxInt/factor {
		return math.MaxInt
	}
	return count * factor
}

type shape struct {
	suffix  string
	angular Angular
}

var familyShapes = map[Family][]shape{
	FamilyS: {{"", isotropic}},
	FamilyP: {{"x", angularPx}, {"y", angularPy}, {"z", angularPz}},
	FamilyD: {
		{"z2", angularDz2}, {"x2y2", angularDx2y2}, {"xy", angularDxy},
		{"xz", angularDxz}, {"yz", angularDyz},
	},
	FamilyF: {
		{"z3", angularFz3}, {"xz2", angularFxz2}, {"yz2", angularFyz2}, {"xyz", angularFxyz},
		{"zx2y2", angularFzx2y2}, {"x3y2", angularFx3y2}, {"y3x2y2", angularFy3x2y2},
	},
}

// subshells lists every supported (n, family) with its radial part, in display order.
var subshells = []struct {
	n      int
	family Family
	radial Radial
}{
	{1, FamilyS, radial1s},
	{2, FamilyS, radial2s},
	{2, FamilyP, radial2p},
	{3, FamilyS, radial3s},
	{3, FamilyP, radial3p},
	{3, FamilyD, radial3d},
	{4, FamilyS, radial4s},
	{4, FamilyP, radial4p},
	{4, FamilyD, radial4d},
	{4, FamilyF, radial4f},
}

var (
	registry = map[string]Orbital{}
	names    []string
)

func init() {
	for _, ss := range subshells {
		prefix := strconv.Itoa(ss.n) + ss.family.String()
		shapes := familyShapes[ss.family]
		lobes := make([]Lobe, len(shapes))
		for i, sh := range shapes {
			lobes[i] = Lobe{Name: prefix + sh.suffix, Radial: ss.radial, Angular: sh.angular}
		}
		// "ns" is its own single lobe; p/d/f get a composite token plus one per lobe.
		if ss.family != FamilyS {
			register(Orbital{Name: prefix, Family: ss.family, N: ss.n, Lobes: lobes})
		}
		for _, l := range lobes {
			register(Orbital{Name: l.Name, Family: ss.family, N: ss.n, Lobes: []Lobe{l}})
		}
	}
}

func register(o Orbital) {
	if _, dup := registry[o.Name]; dup {
		panic("duplicate orbital " + o.Name)
	}
	registry[o.Name] = o
	names = append(names, o.Name)
}

// Lookup resolves an orbital identifier. The returned Lobes are a copy.
func Lookup(name string) (Orbital, bool) {
	o, ok := registry[name]
	if !ok {
		return o, false
	}
	o.Lobes = append([]Lobe(nil), o.Lobes...)
	return o, true
}

// Supported reports whether name is a known identifier.
func Supported(name string) bool {
	_, ok := registry[name]
	return ok
}

// Names returns all identifiers in display order (1s, 2s, 2p, 2px, ...).
func Names() []string {
	out := make([]string, len(names))
	copy(out, names)
	return out
}
