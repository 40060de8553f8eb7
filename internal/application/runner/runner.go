// Package runner wires configuration, host checks, the benchmark driver and
// run records together for the cmd binaries.
package runner

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/younwookim/layoutbench/configs"
	"github.com/younwookim/layoutbench/internal/application/bench"
	"github.com/younwookim/layoutbench/internal/application/layout"
	"github.com/younwookim/layoutbench/internal/application/record"
	"github.com/younwookim/layoutbench/internal/infrastructure/config"
	"github.com/younwookim/layoutbench/internal/infrastructure/host"
)

// Options configures a single run
type Options struct {
	Scenario   string
	Layout     layout.Layout
	RecordFile string // save the run here when set
	VerifyFile string // check sentinels against this record when set

	Out    io.Writer
	Loader *config.Loader
	Probe  func(ctx context.Context) (*host.Info, error)
}

// Run executes one benchmark and writes its report to opts.Out
func Run(ctx context.Context, opts Options) (bench.Result, error) {
	sc, err := opts.Loader.Scenario(opts.Scenario)
	if err != nil {
		return bench.Result{}, fmt.Errorf("failed to load scenario: %w", err)
	}

	engine, err := NewEngine(opts.Scenario, opts.Layout)
	if err != nil {
		return bench.Result{}, err
	}

	params := bench.Params{
		Scenario:   opts.Scenario,
		Title:      sc.Title,
		Noun:       sc.Noun,
		Layout:     opts.Layout,
		Population: sc.Population,
		Iterations: sc.Iterations,
		Seed:       sc.Seed,
		DT:         sc.DT,
	}
	if err := params.Validate(); err != nil {
		return bench.Result{}, err
	}

	var info *host.Info
	if opts.Probe != nil {
		info, err = opts.Probe(ctx)
		if err != nil {
			log.Printf("Host probe failed, skipping memory check: %v", err)
			info = nil
		}
	}
	if info != nil {
		if err := info.CheckFootprint(engine.Footprint(params.Population)); err != nil {
			return bench.Result{}, err
		}
	}

	result := bench.Run(engine, params)

	if err := bench.Report(opts.Out, result, info); err != nil {
		return result, err
	}

	if opts.RecordFile != "" {
		if err := record.New(result, info).Save(opts.RecordFile); err != nil {
			return result, fmt.Errorf("failed to save record: %w", err)
		}
		log.Printf("Record saved: %s", opts.RecordFile)
	}

	if opts.VerifyFile != "" {
		rec, err := record.Load(opts.VerifyFile)
		if err != nil {
			return result, err
		}
		if err := rec.Verify(result); err != nil {
			return result, err
		}
		log.Printf("Sentinels match %s (%s layout)", opts.VerifyFile, rec.Layout)
	}

	return result, nil
}

// Main is the whole body of each cmd binary. Any error is fatal.
func Main(scenario string, l layout.Layout) {
	recordFlag := flag.String("record", "", "Save the run to a JSON file (e.g., -record run.json)")
	verifyFlag := flag.String("verify", "", "Check sentinels against a saved run (e.g., -verify run.json)")
	flag.Parse()

	_, err := Run(context.Background(), Options{
		Scenario:   scenario,
		Layout:     l,
		RecordFile: *recordFlag,
		VerifyFile: *verifyFlag,
		Out:        os.Stdout,
		Loader:     config.NewFSLoader(configs.FS, "configs"),
		Probe:      host.Collect,
	})
	if err != nil {
		log.Fatalf("Benchmark failed: %v", err)
	}
}
