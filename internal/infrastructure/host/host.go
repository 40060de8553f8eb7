// Package host describes the machine a benchmark runs on and checks that a
// population fits in memory before it is allocated.
package host

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/v4/cpu"
	gphost "github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
)

// ErrInsufficientMemory means the population cannot be sized as requested
var ErrInsufficientMemory = errors.New("insufficient memory for population")

// Info is a snapshot of the host
type Info struct {
	Hostname        string `json:"hostname"`
	Platform        string `json:"platform"`
	Arch            string `json:"arch"`
	CPUModel        string `json:"cpuModel"`
	LogicalCPUs     int    `json:"logicalCpus"`
	TotalMemory     uint64 `json:"totalMemory"`
	AvailableMemory uint64 `json:"availableMemory"`
}

// Collect queries the OS. Memory is required; CPU and platform details are
// filled in when available.
func Collect(ctx context.Context) (*Info, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read memory stats: %w", err)
	}

	info := &Info{
		Arch:            runtime.GOARCH,
		Platform:        runtime.GOOS,
		TotalMemory:     vm.Total,
		AvailableMemory: vm.Available,
	}

	if hi, err := gphost.InfoWithContext(ctx); err == nil {
		info.Hostname = hi.Hostname
		if hi.Platform != "" {
			info.Platform = hi.Platform + " " + hi.PlatformVersion
		}
	}
	if cpus, err := cpu.InfoWithContext(ctx); err == nil && len(cpus) > 0 {
		info.CPUModel = cpus[0].ModelName
	}
	if n, err := cpu.CountsWithContext(ctx, true); err == nil {
		info.LogicalCPUs = n
	}

	return info, nil
}

// Summary returns a one-line description for reports
func (i *Info) Summary() string {
	model := i.CPUModel
	if model == "" {
		model = "unknown cpu"
	}
	return fmt.Sprintf("%s (%d threads), %s/%s, %.1f GiB available of %.1f GiB",
		model, i.LogicalCPUs, i.Platform, i.Arch, gib(i.AvailableMemory), gib(i.TotalMemory))
}

// CheckFootprint fails when need bytes exceed the available memory
func (i *Info) CheckFootprint(need uint64) error {
	if need > i.AvailableMemory {
		return fmt.Errorf("%w: need %d bytes, %d available", ErrInsufficientMemory, need, i.AvailableMemory)
	}
	return nil
}

func gib(b uint64) float64 {
	return float64(b) / (1 << 30)
}
