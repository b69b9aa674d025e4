package orbitals

const (
	ProbeSamples   = 1000      // envelope probes per request
	ProbeSamplesF  = 1500      // f family: more lobes, more rejections
	AttemptFactor  = 10        // attempt budget = count * factor
	AttemptFactorF = 15        // f family
	MaxCount       = 5_000_000 // requests above this are clamped
	MaxShell       = 4
	DefaultCount   = 10_000
	ConfigPath     = "configs/orbitals.json"
	OutDir         = "points"
)

// shellExtent holds maxR, the radial sampling range, for n = 1..4.
var shellExtent = [MaxShell + 1]Real{0, 10, 10, 20, 40}
