package orbitals

import (
	"math/rand"
	"time"
)

// Sampler draws orbital point clouds from its own random source.
// It is not safe for concurrent use; give each goroutine its own Sampler.
type Sampler struct {
	rng *rand.Rand
	// AttemptFactor overrides the per-family attempt multiplier when > 0.
	AttemptFactor int
}

// NewSampler wraps rng; a nil rng gets a time-seeded source.
func NewSampler(rng *rand.Rand) *Sampler {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Sampler{rng: rng}
}

// NewSeededSampler returns a Sampler whose output is reproducible for a given seed.
func NewSeededSampler(seed int64) *Sampler {
	return NewSampler(rand.New(rand.NewSource(seed)))
}

// Sample draws up to count points for the named orbital with a fresh time-seeded source.
func Sample(orbital string, count int) []Point {
	return NewSampler(nil).Sample(orbital, count)
}

// Sample draws up to count points for the named orbital. Unknown names and
// count <= 0 give an empty slice. The result may be shorter than count when
// the attempt budget runs out.
func (s *Sampler) Sample(orbital string, count int) []Point {
	pts, _ := s.SampleWithLog(orbital, count)
	return pts
}

// SampleWithLog is Sample plus the acceptance statistics of the request.
func (s *Sampler) SampleWithLog(orbital string, count int) ([]Point, SampleLog) {
	log := SampleLog{Orbital: orbital, Requested: clampCount(count)}
	o, ok := Lookup(orbital)
	if !ok {
		DebugLog("unsupported orbital %q", orbital)
		return []Point{}, log
	}
	return s.sampleOrbital(o, log.Requested)
}

func clampCount(count int) int {
	if count < 0 {
		return 0
	}
	if count > MaxCount {
		return MaxCount
	}
	return count
}

// sampleOrbital runs rejection sampling over the mean of o's lobe densities.
// A single orbital is the one-lobe case. The envelope is the max over the
// individual lobes, not over their mean, so composites reject more than needed.
func (s *Sampler) sampleOrbital(o Orbital, count int) ([]Point, SampleLog) {
	log := SampleLog{Orbital: o.Name, Requested: count, Lobes: len(o.Lobes)}
	if count == 0 {
		return []Point{}, log
	}
	maxR := o.MaxR()
	envelope := estimateEnvelope(o.Lobes, maxR, o.Probes(), s.rng)
	budget := o.Budget(count)
	if s.AttemptFactor > 0 {
		budget = attemptBudget(count, s.AttemptFactor)
	}
	log.Envelope, log.Budget = envelope, budget

	inv := 1 / Real(len(o.Lobes))
	points := make([]Point, 0, count)
	attempts := 0
	for len(points) < count && attempts < budget {
		r := s.rng.Float64() * maxR
		dir := RandomDirection(s.rng)
		var p Real
		for _, l := range o.Lobes {
			p += l.Eval(r, dir.Theta, dir.Phi)
		}
		p *= inv

		if p > s.rng.Float64()*envelope {
			points = append(points, dir.At(r))
		}
		attempts++
	}
	log.Accepted, log.Attempts = len(points), attempts
	log.MeanR, log.StdR, log.MaxSampledR = RadialStats(points)
	log.Centroid = Centroid(points)
	if log.Short() {
		DebugLogOnce("first short result: %s %d/%d, raise attemptFactor for a full cloud", o.Name, len(points), count)
	}
	DebugLog("%s: %d/%d points, %d/%d attempts, envelope=%.6g", o.Name, len(points), count, attempts, budget, envelope)
	return points, log
}
