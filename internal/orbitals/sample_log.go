package orbitals

import (
	"fmt"
	"sort"
	"sync"
)

// SampleLog records how one sampling request went.
type SampleLog struct {
	Orbital   string
	Requested int  // count after clamping
	Accepted  int  // points returned
	Attempts  int  // candidates drawn
	Budget    int  // attempt limit
	Lobes     int  // 0 for unsupported orbitals
	Envelope  Real // estimated maxProb

	// Shape of the accepted cloud, zero when empty.
	MeanR, StdR, MaxSampledR Real
	Centroid                 Point
}

// Short reports whether the budget ran out before the requested count.
func (l SampleLog) Short() bool { return l.Accepted < l.Requested }

// AcceptRate is accepted / attempts, 0 when nothing was drawn.
func (l SampleLog) AcceptRate() Real {
	if l.Attempts == 0 {
		return 0
	}
	return Real(l.Accepted) / Real(l.Attempts)
}

type SampleLogCache struct {
	mu   sync.Mutex
	logs map[string][]SampleLog // map of orbital name to logs
}

func NewSampleLogCache() *SampleLogCache {
	return &SampleLogCache{logs: make(map[string][]SampleLog)}
}

func (c *SampleLogCache) add(l SampleLog) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.logs[l.Orbital] = append(c.logs[l.Orbital], l)
}

func (c *SampleLogCache) get(name string) []SampleLog {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.logs[name]
}

func (c *SampleLogCache) stats() {
	c.mu.Lock()
	defer c.mu.Unlock()
	keys := make([]string, 0, len(c.logs))
	for k := range c.logs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		acc, att, short := 0, 0, 0
		var sumR, maxR Real
		for _, l := range c.logs[k] {
			acc += l.Accepted
			att += l.Attempts
			sumR += l.MeanR * Real(l.Accepted)
			if l.MaxSampledR > maxR {
				maxR = l.MaxSampledR
			}
			if l.Short() {
				short++
			}
		}
		meanR := 0.0
		if acc > 0 {
			meanR = sumR / Real(acc)
		}
		rate := 0.0
		if att > 0 {
			rate = Real(acc) / Real(att)
		}
		fmt.Printf("Orbital %s: %d requests, %d points, %d attempts, accept rate %.4f, %d short, <r>=%.3f, max r=%.3f\n",
			k, len(c.logs[k]), acc, att, rate, short, meanR, maxR)
	}
}
