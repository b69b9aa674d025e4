package orbitals

import (
	"fmt"
	"math/rand"
	"runtime"
	"sync"
	"time"
)

func Run(cfgPath string) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}

	start := time.Now()
	cache := NewSampleLogCache()
	if err := runJobs(cfg, cache); err != nil {
		return err
	}
	DebugLog("Jobs: %d, time: %s", len(cfg.Jobs), time.Since(start))

	if Debug {
		cache.stats()
	}
	return nil
}

// runJobs samples and saves every job. Jobs run in parallel, each with its own
// random source, so a seeded job gives the same points however it is scheduled.
func runJobs(cfg *Config, cache *SampleLogCache) error {
	n := len(cfg.Jobs)
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = n
	}

	DebugLogOnce("Batch workers: %d", workers)

	jobs := make(chan int)
	errs := make([]error, n)
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		done int
	)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(wid int) {
			defer wg.Done()
			for i := range jobs {
				log, err := runJob(cfg.Jobs[i], cfg.OutDir, wid, cache)
				errs[i] = err
				mu.Lock()
				done++
				fmt.Printf("[RUN] %d/%d %s: %d points, <r>=%.3f sd=%.3f max=%.3f, centroid=%v\n",
					done, n, log.Orbital, log.Accepted, log.MeanR, log.StdR, log.MaxSampledR, log.Centroid)
				mu.Unlock()
			}
		}(w)
	}
	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return fmt.Errorf("job #%d (%s): %w", i, cfg.Jobs[i].Orbital, err)
		}
	}
	return nil
}

func runJob(job JobCfg, outDir string, wid int, cache *SampleLogCache) (SampleLog, error) {
	seed := job.Seed
	if seed == 0 {
		seed = time.Now().UnixNano() ^ int64(uint64(wid)*0x9e3779b97f4a7c15)
	}
	s := NewSampler(rand.New(rand.NewSource(seed)))
	s.AttemptFactor = job.AttemptFactor

	pts, log := s.SampleWithLog(job.Orbital, job.Count)
	if cache != nil {
		cache.add(log)
	}
	if log.Short() {
		DebugLog("%s: short result %d/%d (accept rate %.4f)", job.Orbital, log.Accepted, log.Requested, log.AcceptRate())
	}

	path := job.outPath(outDir)
	if XYZ {
		return log, SavePointsXYZ(path, pts)
	}
	return log, SavePointsRaw(path, pts)
}
