package runner

import (
	"errors"
	"fmt"

	"github.com/younwookim/layoutbench/internal/application/bench"
	"github.com/younwookim/layoutbench/internal/application/layout"
	"github.com/younwookim/layoutbench/internal/application/system"
	"github.com/younwookim/layoutbench/internal/ecs"
)

// Scenario names as they appear in scenarios.yaml
const (
	ScenarioArray    = "array"
	ScenarioParticle = "particle"
)

// ErrUnknownEngine is returned when no engine exists for a scenario/layout pair
var ErrUnknownEngine = errors.New("unknown engine")

var engines = map[string]map[layout.Layout]func() bench.Engine{
	ScenarioArray: {
		layout.SoA: func() bench.Engine { return ecs.NewScalarWorld() },
		layout.AoS: func() bench.Engine { return system.NewElementSystem() },
	},
	ScenarioParticle: {
		layout.SoA: func() bench.Engine { return ecs.NewParticleWorld() },
		layout.AoS: func() bench.Engine { return system.NewParticleSystem() },
	},
}

// NewEngine returns a fresh engine for the scenario in the given layout
func NewEngine(scenario string, l layout.Layout) (bench.Engine, error) {
	newEngine, ok := engines[scenario][l]
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s", ErrUnknownEngine, scenario, l)
	}
	return newEngine(), nil
}
