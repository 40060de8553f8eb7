package bench

import (
	"fmt"
	"io"

	"github.com/younwookim/layoutbench/internal/infrastructure/host"
)

// Report writes the console report for r. info may be nil.
func Report(w io.Writer, r Result, info *host.Info) error {
	p := r.Params

	lines := []string{
		fmt.Sprintf("%s (%s)", p.Title, p.Layout.Description()),
		fmt.Sprintf("%s: %d", p.Noun, p.Population),
		fmt.Sprintf("Iterations: %d", p.Iterations),
	}
	if info != nil {
		lines = append(lines, "Host: "+info.Summary())
	}
	lines = append(lines,
		"",
		fmt.Sprintf("Total time: %.0f ms", r.ElapsedMs()),
		fmt.Sprintf("Time per iteration: %.3f ms", r.PerIterationMs()),
	)
	for _, s := range r.Sentinels {
		lines = append(lines, fmt.Sprintf("%s: %g", s.Label, s.Value))
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}
	return nil
}
