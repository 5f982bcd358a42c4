package simulator

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Run file defaults.
const (
	DefaultGames = 10000
	DefaultSeed  = 42
)

// FileConfig is an HCL run file:
//
//	simulation {
//	  games   = 10000
//	  seed    = 42
//	  workers = 8
//	  output  = "results.json"
//	}
//
//	strategy "upper-focus" {}
//	strategy "hybrid" {}
type FileConfig struct {
	Simulation *SimulationSettings `hcl:"simulation,block"`
	Strategies []StrategyBlock     `hcl:"strategy,block"`
}

// SimulationSettings holds run-level settings.
type SimulationSettings struct {
	Games   int    `hcl:"games,optional"`
	Seed    *int64 `hcl:"seed,optional"`
	Workers int    `hcl:"workers,optional"`
	Output  string `hcl:"output,optional"`
}

// StrategyBlock names one entrant to simulate.
type StrategyBlock struct {
	Name string `hcl:"name,label"`
}

// DefaultConfig returns the run used when no file is given.
func DefaultConfig() *FileConfig {
	c := &FileConfig{}
	c.applyDefaults()
	return c
}

// LoadConfig loads a run file. A missing file yields the defaults.
func LoadConfig(filename string) (*FileConfig, error) {
	src, err := os.ReadFile(filename)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return ParseConfig(src, filename)
}

// ParseConfig decodes run file source and applies defaults.
func ParseConfig(src []byte, filename string) (*FileConfig, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config FileConfig
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config.applyDefaults()
	return &config, nil
}

func (c *FileConfig) applyDefaults() {
	if c.Simulation == nil {
		c.Simulation = &SimulationSettings{}
	}
	if c.Simulation.Games == 0 {
		c.Simulation.Games = DefaultGames
	}
	if c.Simulation.Seed == nil {
		seed := int64(DefaultSeed)
		c.Simulation.Seed = &seed
	}
	if c.Simulation.Workers == 0 {
		c.Simulation.Workers = runtime.GOMAXPROCS(0)
	}
	if len(c.Strategies) == 0 {
		for _, name := range DefaultNames() {
			c.Strategies = append(c.Strategies, StrategyBlock{Name: name})
		}
	}
}

// StrategyNames lists the configured entrants in file order.
func (c *FileConfig) StrategyNames() []string {
	names := make([]string, len(c.Strategies))
	for i, s := range c.Strategies {
		names[i] = s.Name
	}
	return names
}

// Seed returns the configured base seed.
func (c *FileConfig) Seed() int64 {
	if c.Simulation == nil || c.Simulation.Seed == nil {
		return DefaultSeed
	}
	return *c.Simulation.Seed
}

// Validate checks ranges and strategy names.
func (c *FileConfig) Validate() error {
	if c.Simulation == nil {
		return errors.New("missing simulation block")
	}
	if c.Simulation.Games < 1 {
		return fmt.Errorf("invalid games: %d", c.Simulation.Games)
	}
	if c.Simulation.Workers < 1 {
		return fmt.Errorf("invalid workers: %d", c.Simulation.Workers)
	}
	if len(c.Strategies) == 0 {
		return errors.New("no strategies configured")
	}

	seen := make(map[string]bool)
	for _, s := range c.Strategies {
		if !Known(s.Name) {
			return fmt.Errorf("unknown strategy %q", s.Name)
		}
		if seen[s.Name] {
			return fmt.Errorf("duplicate strategy %q", s.Name)
		}
		seen[s.Name] = true
	}
	return nil
}
