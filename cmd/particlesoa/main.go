// Command particlesoa runs the particle benchmark with the structure of arrays layout.
package main

import (
	"github.com/younwookim/layoutbench/internal/application/layout"
	"github.com/younwookim/layoutbench/internal/application/runner"
)

func main() {
	runner.Main(runner.ScenarioParticle, layout.SoA)
}
