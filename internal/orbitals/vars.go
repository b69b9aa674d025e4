package orbitals

type Real = float64

var (
	Debug = false // set to true for verbose debug output
	XYZ   = false // set to true to write text .xyz files instead of raw binary
)
