package orbitals

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
)

// JobCfg is one sampling request of a batch.
type JobCfg struct {
	Orbital string `json:"orbital"`
	Count   int    `json:"count,omitempty"`
	// Seed makes the job reproducible; 0 means seed from the clock.
	Seed          int64  `json:"seed,omitempty"`
	AttemptFactor int    `json:"attemptFactor,omitempty"`
	Out           string `json:"out,omitempty"`
}

type Config struct {
	OutDir  string   `json:"outDir,omitempty"`
	Count   int      `json:"count,omitempty"` // default for jobs without one
	Workers int      `json:"workers,omitempty"`
	Jobs    []JobCfg `json:"jobs"`
}

// outPath returns the job's output file, defaulting to <outDir>/<orbital>.<ext>.
func (j JobCfg) outPath(outDir string) string {
	if j.Out != "" {
		return j.Out
	}
	ext := ".raw"
	if XYZ {
		ext = ".xyz"
	}
	return filepath.Join(outDir, j.Orbital+ext)
}

func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	DebugLog("Loaded config from %s: jobs=%d, count=%d, outDir=%s", path, len(cfg.Jobs), cfg.Count, cfg.OutDir)
	return &cfg, nil
}

// validate fills defaults and rejects jobs the sampler would silently drop.
func (cfg *Config) validate() error {
	if cfg.OutDir == "" {
		cfg.OutDir = OutDir
	}
	if cfg.Count <= 0 {
		cfg.Count = DefaultCount
	}
	if len(cfg.Jobs) == 0 {
		return errors.New("config has no jobs")
	}
	used := make(map[string]int, len(cfg.Jobs))
	for i := range cfg.Jobs {
		j := &cfg.Jobs[i]
		if !Supported(j.Orbital) {
			return fmt.Errorf("job #%d: unsupported orbital %q", i, j.Orbital)
		}
		if j.Count < 0 {
			return fmt.Errorf("job #%d: count must be >= 0, got %d", i, j.Count)
		}
		if j.Count == 0 {
			j.Count = cfg.Count
		}
		if j.Count > MaxCount {
			return fmt.Errorf("job #%d: count %d exceeds %d", i, j.Count, MaxCount)
		}
		if j.AttemptFactor < 0 {
			return fmt.Errorf("job #%d: attemptFactor must be >= 0, got %d", i, j.AttemptFactor)
		}
		if j.AttemptFactor > math.MaxInt/MaxCount {
			return fmt.Errorf("job #%d: attemptFactor %d exceeds %d", i, j.AttemptFactor, math.MaxInt/MaxCount)
		}
		// Jobs run concurrently; two writers on one file would clobber each other.
		out := filepath.Clean(j.outPath(cfg.OutDir))
		if prev, dup := used[out]; dup {
			return fmt.Errorf("job #%d: output %s already used by job #%d", i, out, prev)
		}
		used[out] = i
	}
	return nil
}
