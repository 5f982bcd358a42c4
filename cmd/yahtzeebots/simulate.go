package main

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/coder/quartz"
	"github.com/rs/zerolog"

	"github.com/lox/yahtzeebots/cmd/yahtzeebots/shared"
	"github.com/lox/yahtzeebots/internal/report"
	"github.com/lox/yahtzeebots/internal/simulator"
)

type SimulateCmd struct {
	Games      int      `short:"n" help:"Games per strategy (default 10000)"`
	Seed       *int64   `help:"Base seed; game i of every strategy uses seed+i (default 42)"`
	Workers    int      `short:"w" help:"Games played concurrently (default one per CPU)"`
	Strategy   []string `short:"s" help:"Strategy to simulate, repeatable (default every full-fidelity strategy)"`
	Config     string   `short:"c" type:"existingfile" help:"HCL run file; flags override its values"`
	Output     string   `short:"o" help:"Write the JSON report to this path"`
	Alpha      float64  `default:"0.05" help:"Significance level for pairwise tests"`
	NoProgress bool     `help:"Hide progress bars"`
}

// settings merges the run file, if any, with explicitly set flags.
func (c *SimulateCmd) settings() (*simulator.FileConfig, error) {
	cfg := simulator.DefaultConfig()
	if c.Config != "" {
		loaded, err := simulator.LoadConfig(c.Config)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if c.Games != 0 {
		cfg.Simulation.Games = c.Games
	}
	if c.Seed != nil {
		seed := *c.Seed
		cfg.Simulation.Seed = &seed
	}
	if c.Workers != 0 {
		cfg.Simulation.Workers = c.Workers
	}
	if c.Output != "" {
		cfg.Simulation.Output = c.Output
	}
	if len(c.Strategy) > 0 {
		cfg.Strategies = cfg.Strategies[:0]
		for _, name := range c.Strategy {
			cfg.Strategies = append(cfg.Strategies, simulator.StrategyBlock{Name: name})
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *SimulateCmd) Run(g *Globals) error {
	logger, err := g.Logger()
	if err != nil {
		return err
	}
	ctx, stop := shared.SetupSignalHandlerWithLogger(logger)
	defer stop()

	var monitor simulator.Monitor = simulator.NopMonitor{}
	if !c.NoProgress {
		monitor = newProgressMonitor(os.Stderr, g.NoColor, quartz.NewReal())
	}
	return c.run(ctx, os.Stdout, logger, monitor, g.NoColor)
}

func (c *SimulateCmd) run(ctx context.Context, w io.Writer, logger zerolog.Logger, monitor simulator.Monitor, noColor bool) error {
	cfg, err := c.settings()
	if err != nil {
		return err
	}
	entrants, err := simulator.LookupAll(cfg.StrategyNames(), logger)
	if err != nil {
		return err
	}

	results, err := simulator.Run(ctx, simulator.Config{
		Games:   cfg.Simulation.Games,
		Seed:    cfg.Seed(),
		Workers: cfg.Simulation.Workers,
		Logger:  logger,
		Clock:   quartz.NewReal(),
		Monitor: monitor,
	}, entrants)
	if err != nil {
		return err
	}

	rep, err := report.Build(results, report.Options{
		Alpha:     c.Alpha,
		Version:   version,
		Generated: time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	if path := cfg.Simulation.Output; path != "" {
		if err := report.WriteJSON(path, rep); err != nil {
			return err
		}
		logger.Info().Str("path", path).Msg("Wrote report")
	}
	return report.Render(w, rep, report.RenderOptions{NoColor: noColor})
}
