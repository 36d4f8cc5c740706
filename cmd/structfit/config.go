package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/structfit"
)

// Config describes one fit: the dataset, the model size, the optimized
// paths, and the optimizer settings.
type Config struct {
	// Components is the number of Gaussian bumps in the model.
	Components int `yaml:"components"`

	Data struct {
		X []float64 `yaml:"x"`
		Y []float64 `yaml:"y"`
	} `yaml:"data"`

	Vars []VarConfig `yaml:"vars"`

	Optimizer OptimizerConfig `yaml:"optimizer"`

	// Store is the base directory for persisted runs.
	Store string `yaml:"store"`
}

// VarConfig declares one optimized path, optionally bounded.
type VarConfig struct {
	Path   string    `yaml:"path"`
	Bounds []float64 `yaml:"bounds,omitempty"` // [lo, hi] or absent
}

// OptimizerConfig holds mayfly and multistart settings.
type OptimizerConfig struct {
	Iters   int   `yaml:"iters"`
	PopSize int   `yaml:"pop"`
	Seed    int64 `yaml:"seed"`
	Starts  int   `yaml:"starts"`
}

// LoadConfig reads and validates a YAML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Optimizer.Iters == 0 {
		c.Optimizer.Iters = 100
	}
	if c.Optimizer.PopSize == 0 {
		c.Optimizer.PopSize = 20
	}
	if c.Optimizer.Starts == 0 {
		c.Optimizer.Starts = 1
	}
	if c.Store == "" {
		c.Store = "./data"
	}
}

// Validate checks the config for inconsistencies before any work starts.
func (c *Config) Validate() error {
	if c.Components <= 0 {
		return fmt.Errorf("config: components must be positive")
	}
	if len(c.Data.X) == 0 {
		return fmt.Errorf("config: data must have at least one point")
	}
	if len(c.Data.X) != len(c.Data.Y) {
		return fmt.Errorf("config: data.x and data.y lengths differ (%d vs %d)", len(c.Data.X), len(c.Data.Y))
	}
	if len(c.Vars) == 0 {
		return fmt.Errorf("config: at least one var is required")
	}
	for i, v := range c.Vars {
		if v.Path == "" {
			return fmt.Errorf("config: var %d has no path", i)
		}
		if n := len(v.Bounds); n != 0 && n != 2 {
			return fmt.Errorf("config: var %d bounds must be [lo, hi], got %d values", i, n)
		}
	}
	return nil
}

// Args builds the structfit variable spec from the config.
func (c *Config) Args() (*structfit.Args, error) {
	vars := make([]structfit.Var, len(c.Vars))
	for i, v := range c.Vars {
		if len(v.Bounds) == 2 {
			vars[i] = structfit.In(v.Path, v.Bounds[0], v.Bounds[1])
		} else {
			vars[i] = structfit.Free(v.Path)
		}
	}
	return structfit.NewArgs(vars...)
}

// Dataset returns the config's data points.
func (c *Config) Dataset() Dataset {
	return Dataset{X: c.Data.X, Y: c.Data.Y}
}

// SeedModel returns the starting model: unit scales, zero shifts.
func (c *Config) SeedModel() Model {
	components := make([]Component, c.Components)
	for i := range components {
		components[i].Scale = 1
	}
	return Model{Components: components}
}
