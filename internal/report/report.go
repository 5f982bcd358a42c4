// Package report turns simulation results into a JSON document and terminal
// tables.
package report

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/lox/yahtzeebots/internal/fileutil"
	"github.com/lox/yahtzeebots/internal/simulator"
	"github.com/lox/yahtzeebots/internal/statistics"
)

// Metadata describes the run a report came from.
type Metadata struct {
	Version   string    `json:"version,omitempty"`
	Generated time.Time `json:"generated"`
	Games     int       `json:"games"`
	Seed      int64     `json:"seed"`
	Workers   int       `json:"workers"`
	Duration  string    `json:"duration,omitempty"`
	Alpha     float64   `json:"alpha"`
}

// Strategy is one entrant's scores and their summary.
type Strategy struct {
	Name           string             `json:"name"`
	Fidelity       string             `json:"fidelity"`
	GamesPerSecond float64            `json:"games_per_sec,omitempty"`
	Summary        statistics.Summary `json:"summary"`
	Scores         []int              `json:"scores"`
}

// Report is the full result document.
type Report struct {
	Metadata    Metadata                `json:"metadata"`
	Strategies  []Strategy              `json:"strategies"`
	Comparisons []statistics.Comparison `json:"comparisons"`
	HeadToHead  statistics.HeadToHead   `json:"head_to_head"`
}

// Options control Build.
type Options struct {
	Alpha     float64
	Version   string
	Generated time.Time
}

// Build analyses simulation results.
func Build(results *simulator.Results, opts Options) (*Report, error) {
	if results == nil || len(results.Strategies) == 0 {
		return nil, errors.New("no results to report")
	}
	r := &Report{
		Metadata: Metadata{
			Version:   opts.Version,
			Generated: opts.Generated,
			Games:     results.Games,
			Seed:      results.Seed,
			Workers:   results.Workers,
			Duration:  results.Duration.Round(time.Millisecond).String(),
			Alpha:     opts.Alpha,
		},
	}
	for _, s := range results.Strategies {
		r.Strategies = append(r.Strategies, Strategy{
			Name:           s.Name,
			Fidelity:       fidelity(s.Name),
			GamesPerSecond: s.GamesPerSecond(),
			Scores:         s.Scores,
		})
	}
	if err := r.Analyze(); err != nil {
		return nil, err
	}
	return r, nil
}

// Analyze recomputes every summary, comparison and the head-to-head matrix
// from the stored scores.
func (r *Report) Analyze() error {
	if r.Metadata.Alpha <= 0 || r.Metadata.Alpha >= 1 {
		r.Metadata.Alpha = statistics.DefaultAlpha
	}

	samples := make([]statistics.Sample, len(r.Strategies))
	for i := range r.Strategies {
		s := &r.Strategies[i]
		stats := statistics.FromScores(s.Scores)
		if err := stats.Validate(); err != nil {
			return fmt.Errorf("%s: %w", s.Name, err)
		}
		s.Summary = stats.Summary()
		if s.Fidelity == "" {
			s.Fidelity = fidelity(s.Name)
		}
		samples[i] = statistics.Sample{Name: s.Name, Scores: s.Scores}
	}

	r.Comparisons = statistics.Pairwise(samples, r.Metadata.Alpha)
	for i := range r.Comparisons {
		// JSON has no infinities; constant samples that differ get the
		// largest finite t instead.
		r.Comparisons[i].TStatistic = finite(r.Comparisons[i].TStatistic)
	}
	r.HeadToHead = statistics.Matrix(samples)
	return nil
}

// Strategy returns the named entry.
func (r *Report) Strategy(name string) (Strategy, bool) {
	for _, s := range r.Strategies {
		if s.Name == name {
			return s, true
		}
	}
	return Strategy{}, false
}

// WriteJSON writes the report atomically.
func WriteJSON(path string, r *Report) error {
	return fileutil.WriteJSONAtomic(path, r)
}

// Load reads a report and recomputes its analysis from the raw scores.
func Load(path string) (*Report, error) {
	var r Report
	if err := fileutil.ReadJSON(path, &r); err != nil {
		return nil, err
	}
	if len(r.Strategies) == 0 {
		return nil, fmt.Errorf("%s: no strategies in report", path)
	}
	if err := r.Analyze(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &r, nil
}

func fidelity(name string) string {
	for _, info := range simulator.Catalog() {
		if info.Name == name {
			return string(info.Fidelity)
		}
	}
	return "unknown"
}

func finite(v float64) float64 {
	switch {
	case math.IsInf(v, 1):
		return math.MaxFloat64
	case math.IsInf(v, -1):
		return -math.MaxFloat64
	case math.IsNaN(v):
		return 0
	}
	return v
}
