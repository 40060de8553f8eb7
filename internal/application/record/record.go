// Package record saves benchmark runs to JSON and checks later runs against them.
package record

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/younwookim/layoutbench/internal/application/bench"
	"github.com/younwookim/layoutbench/internal/infrastructure/host"
)

// ErrMismatch is returned by Verify when a run differs from the record
var ErrMismatch = errors.New("run does not match record")

// New builds a record from a result. info may be nil.
func New(r bench.Result, info *host.Info) *Record {
	p := r.Params
	rec := &Record{
		Version:        Version,
		Scenario:       p.Scenario,
		Layout:         p.Layout.String(),
		Seed:           p.Seed,
		Population:     p.Population,
		Iterations:     p.Iterations,
		DT:             p.DT,
		StartTime:      r.StartTime.Format(time.RFC3339),
		ElapsedMs:      r.ElapsedMs(),
		PerIterationMs: r.PerIterationMs(),
		Sentinels:      make([]SentinelRecord, 0, len(r.Sentinels)),
	}
	for _, s := range r.Sentinels {
		rec.Sentinels = append(rec.Sentinels, SentinelRecord{
			Label: s.Label,
			Value: strconv.FormatFloat(float64(s.Value), 'g', -1, 32),
			Bits:  math.Float32bits(s.Value),
		})
	}
	if info != nil {
		rec.Host = &HostRecord{
			Hostname:    info.Hostname,
			Platform:    info.Platform,
			Arch:        info.Arch,
			CPUModel:    info.CPUModel,
			LogicalCPUs: info.LogicalCPUs,
			TotalMemory: info.TotalMemory,
		}
	}
	return rec
}

// Save writes the record to a file
func (rec *Record) Save(filename string) error {
	if len(rec.Sentinels) == 0 {
		return fmt.Errorf("no sentinels to save")
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(rec); err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}

	return nil
}

// Load reads a record from a file
func Load(filename string) (*Record, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var rec Record
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&rec); err != nil {
		return nil, fmt.Errorf("failed to decode record: %w", err)
	}

	return &rec, nil
}

// Verify checks that r was produced with the recorded parameters and yields
// bit-identical sentinels. Timings are never compared. The layout is not
// compared either, so a record from one layout can check the other.
func (rec *Record) Verify(r bench.Result) error {
	p := r.Params
	switch {
	case rec.Scenario != p.Scenario:
		return fmt.Errorf("%w: scenario %q, recorded %q", ErrMismatch, p.Scenario, rec.Scenario)
	case rec.Seed != p.Seed || rec.Population != p.Population || rec.Iterations != p.Iterations || rec.DT != p.DT:
		return fmt.Errorf("%w: parameters differ (seed %d/%d, population %d/%d, iterations %d/%d, dt %g/%g)",
			ErrMismatch, p.Seed, rec.Seed, p.Population, rec.Population, p.Iterations, rec.Iterations, p.DT, rec.DT)
	case len(rec.Sentinels) != len(r.Sentinels):
		return fmt.Errorf("%w: %d sentinels, recorded %d", ErrMismatch, len(r.Sentinels), len(rec.Sentinels))
	}

	for i, s := range r.Sentinels {
		want := rec.Sentinels[i]
		if got := math.Float32bits(s.Value); got != want.Bits {
			return fmt.Errorf("%w: %s = %g (%#08x), recorded %s (%#08x)",
				ErrMismatch, s.Label, s.Value, got, want.Value, want.Bits)
		}
	}
	return nil
}
