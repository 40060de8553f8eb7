// Command arrayaos runs the array processing benchmark with the array of structures layout.
package main

import (
	"github.com/younwookim/layoutbench/internal/application/layout"
	"github.com/younwookim/layoutbench/internal/application/runner"
)

func main() {
	runner.Main(runner.ScenarioArray, layout.AoS)
}
