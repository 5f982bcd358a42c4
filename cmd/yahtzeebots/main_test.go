package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/coder/quartz"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/yahtzeebots/internal/report"
	"github.com/lox/yahtzeebots/internal/simulator"
)

func TestSimulateSettingsDefaults(t *testing.T) {
	cfg, err := (&SimulateCmd{}).settings()
	require.NoError(t, err)

	assert.Equal(t, simulator.DefaultGames, cfg.Simulation.Games)
	assert.Equal(t, int64(simulator.DefaultSeed), cfg.Seed())
	assert.Equal(t, simulator.DefaultNames(), cfg.StrategyNames())
}

func TestSimulateFlagsOverrideRunFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.hcl")
	writeFile(t, path, `
simulation {
  games   = 500
  seed    = 7
  workers = 3
}

strategy "greedy" {}
strategy "hybrid" {}
`)

	seed := int64(99)
	cmd := &SimulateCmd{Config: path, Games: 20, Seed: &seed, Strategy: []string{"upper-focus"}}
	cfg, err := cmd.settings()
	require.NoError(t, err)

	assert.Equal(t, 20, cfg.Simulation.Games)
	assert.Equal(t, int64(99), cfg.Seed())
	assert.Equal(t, 3, cfg.Simulation.Workers)
	assert.Equal(t, []string{"upper-focus"}, cfg.StrategyNames())
}

func TestSimulateRejectsUnknownStrategy(t *testing.T) {
	_, err := (&SimulateCmd{Strategy: []string{"nope"}}).settings()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope")
}

func TestSimulateWritesReportAndAnalyzeReadsIt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "results.json")
	cmd := &SimulateCmd{
		Games:    50,
		Workers:  2,
		Strategy: []string{"greedy", "hybrid"},
		Output:   path,
		Alpha:    0.1,
	}

	var out bytes.Buffer
	err := cmd.run(context.Background(), &out, zerolog.Nop(), simulator.NopMonitor{}, true)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "greedy")
	assert.Contains(t, out.String(), "hybrid")

	rep, err := report.Load(path)
	require.NoError(t, err)
	require.Len(t, rep.Strategies, 2)
	assert.Len(t, rep.Strategies[0].Scores, 50)
	require.Len(t, rep.Comparisons, 1)

	out.Reset()
	analyze := &AnalyzeCmd{Path: path}
	require.NoError(t, analyze.run(&out, zerolog.Nop(), true))
	assert.Contains(t, out.String(), "alpha 0.10", "saved alpha is kept without --alpha")

	out.Reset()
	alpha := 0.01
	analyze.Alpha = &alpha
	require.NoError(t, analyze.run(&out, zerolog.Nop(), true))
	assert.Contains(t, out.String(), "alpha 0.01")
}

func TestPlayPrintsEveryTurn(t *testing.T) {
	seed := int64(5)
	var out bytes.Buffer
	require.NoError(t, (&PlayCmd{Strategy: "greedy", Seed: &seed}).run(&out, zerolog.Nop(), true))

	text := out.String()
	assert.Contains(t, text, "Category")
	assert.Contains(t, text, "total")
	assert.NotContains(t, text, "\x1b[")

	var again bytes.Buffer
	require.NoError(t, (&PlayCmd{Strategy: "greedy", Seed: &seed}).run(&again, zerolog.Nop(), true))
	assert.Equal(t, text, again.String())
}

func TestPlayCategoryFilter(t *testing.T) {
	seed := int64(5)
	var out bytes.Buffer
	cmd := &PlayCmd{Strategy: "greedy", Seed: &seed, Category: []string{"Chance"}}
	require.NoError(t, cmd.run(&out, zerolog.Nop(), true))

	text := out.String()
	assert.Equal(t, 2, strings.Count(text, "chance"), "one table row plus the scorecard line")
	assert.Equal(t, 1, strings.Count(text, "full_house"))

	cmd.Category = []string{"bonus"}
	err := cmd.run(&bytes.Buffer{}, zerolog.Nop(), true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bonus")
}

func TestPlayRejectsFastScripts(t *testing.T) {
	err := (&PlayCmd{Strategy: "hybrid"}).run(&bytes.Buffer{}, zerolog.Nop(), true)
	assert.Error(t, err)
}

func TestStrategiesListsCatalog(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, (&StrategiesCmd{}).run(&out, true))

	for _, info := range simulator.Catalog() {
		assert.Contains(t, out.String(), info.Name)
	}
	assert.Contains(t, out.String(), "fast")
}

func TestFormatHolds(t *testing.T) {
	assert.Equal(t, "-", formatHolds(nil))
	assert.Equal(t, "0,1 | none", formatHolds([][]int{{0, 1}, {}}))
}

func TestProgressMonitorDrawsCompletion(t *testing.T) {
	clock := quartz.NewMock(t)
	var out bytes.Buffer
	m := newProgressMonitor(&out, true, clock)

	m.OnStrategyStart("greedy", 4)
	for i := range 4 {
		m.OnGameComplete("greedy", i, 100)
	}
	clock.Advance(2e9)
	m.OnStrategyComplete(simulator.StrategyResult{Name: "greedy", Scores: []int{1, 2, 3, 4}})

	text := out.String()
	assert.Contains(t, text, "greedy")
	assert.Contains(t, text, "100%")
	assert.Contains(t, text, "4 games in 2s")
	assert.Equal(t, 1, strings.Count(text, "\n"))
}

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
}
