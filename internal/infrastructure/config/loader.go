package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// ScenariosFile is the file name the loader reads
const ScenariosFile = "scenarios.yaml"

// ErrInvalidScenario is returned for missing or malformed scenarios
var ErrInvalidScenario = errors.New("invalid scenario")

// Loader loads benchmark configuration from YAML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadScenarios loads and validates scenarios.yaml
func (l *Loader) LoadScenarios() (*BenchConfig, error) {
	data, err := fs.ReadFile(l.fsys, ScenariosFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s/%s: %w", l.basePath, ScenariosFile, err)
	}

	var cfg BenchConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", ScenariosFile, err)
	}

	for name, sc := range cfg.Scenarios {
		if err := sc.Validate(); err != nil {
			return nil, fmt.Errorf("scenario %s: %w", name, err)
		}
	}

	return &cfg, nil
}

// Scenario loads a single scenario by name
func (l *Loader) Scenario(name string) (*ScenarioConfig, error) {
	cfg, err := l.LoadScenarios()
	if err != nil {
		return nil, err
	}
	return cfg.Scenario(name)
}

// Scenario returns the named scenario
func (c *BenchConfig) Scenario(name string) (*ScenarioConfig, error) {
	sc, ok := c.Scenarios[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q not found", ErrInvalidScenario, name)
	}
	return &sc, nil
}

// Validate checks that counts are positive and dt is not negative
func (s ScenarioConfig) Validate() error {
	switch {
	case s.Population <= 0:
		return fmt.Errorf("%w: population must be positive, got %d", ErrInvalidScenario, s.Population)
	case s.Iterations <= 0:
		return fmt.Errorf("%w: iterations must be positive, got %d", ErrInvalidScenario, s.Iterations)
	case s.DT < 0:
		return fmt.Errorf("%w: dt must not be negative, got %g", ErrInvalidScenario, s.DT)
	}
	return nil
}
