package main

import (
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/lox/yahtzeebots/internal/report"
)

type AnalyzeCmd struct {
	Path   string   `arg:"" type:"existingfile" help:"Results file written by simulate --output"`
	Alpha  *float64 `help:"Significance level for pairwise tests (default: the report's own)"`
	Output string   `short:"o" help:"Write the recomputed report to this path"`
}

func (c *AnalyzeCmd) Run(g *Globals) error {
	logger, err := g.Logger()
	if err != nil {
		return err
	}
	return c.run(os.Stdout, logger, g.NoColor)
}

func (c *AnalyzeCmd) run(w io.Writer, logger zerolog.Logger, noColor bool) error {
	rep, err := report.Load(c.Path)
	if err != nil {
		return err
	}
	if c.Alpha != nil {
		rep.Metadata.Alpha = *c.Alpha
	}
	if err := rep.Analyze(); err != nil {
		return err
	}

	logger.Debug().
		Str("path", c.Path).
		Int("strategies", len(rep.Strategies)).
		Msg("Loaded report")

	if c.Output != "" {
		if err := report.WriteJSON(c.Output, rep); err != nil {
			return err
		}
		logger.Info().Str("path", c.Output).Msg("Wrote report")
	}
	return report.Render(w, rep, report.RenderOptions{NoColor: noColor})
}
