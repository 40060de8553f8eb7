// Command arraysoa runs the array processing benchmark with the structure of arrays layout.
package main

import (
	"github.com/younwookim/layoutbench/internal/application/layout"
	"github.com/younwookim/layoutbench/internal/application/runner"
)

func main() {
	runner.Main(runner.ScenarioArray, layout.SoA)
}
