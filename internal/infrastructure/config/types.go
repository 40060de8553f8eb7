package config

// BenchConfig is the root of scenarios.yaml
type BenchConfig struct {
	Scenarios map[string]ScenarioConfig `yaml:"scenarios"`
}

// ScenarioConfig holds the fixed parameters of one scenario
type ScenarioConfig struct {
	Title      string  `yaml:"title"`
	Noun       string  `yaml:"noun"`       // population label in reports
	Population int     `yaml:"population"` // entities
	Iterations int     `yaml:"iterations"`
	Seed       int64   `yaml:"seed"`
	DT         float32 `yaml:"dt"` // seconds; zero for scenarios without a time step
}
