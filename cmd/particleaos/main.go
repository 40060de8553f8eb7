// Command particleaos runs the particle benchmark with the array of structures layout.
package main

import (
	"github.com/younwookim/layoutbench/internal/application/layout"
	"github.com/younwookim/layoutbench/internal/application/runner"
)

func main() {
	runner.Main(runner.ScenarioParticle, layout.AoS)
}
