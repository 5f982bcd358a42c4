// Package simulator plays many games per strategy and collects the totals.
package simulator

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/coder/quartz"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/lox/yahtzeebots/internal/randutil"
)

// Config holds configuration for running simulations
type Config struct {
	Games   int
	Seed    int64
	Workers int
	Logger  zerolog.Logger
	Clock   quartz.Clock
	Monitor Monitor
}

// StrategyResult is the ordered list of totals for one entrant. Scores[i] is
// the total of game i, played with seed Seed+i.
type StrategyResult struct {
	Name     string
	Scores   []int
	Duration time.Duration
}

// GamesPerSecond reports throughput for the entrant's batch.
func (r StrategyResult) GamesPerSecond() float64 {
	if r.Duration <= 0 {
		return 0
	}
	return float64(len(r.Scores)) / r.Duration.Seconds()
}

// Results holds every entrant's totals from one run.
type Results struct {
	Games      int
	Seed       int64
	Workers    int
	Started    time.Time
	Duration   time.Duration
	Strategies []StrategyResult
}

// Scores returns the totals recorded for name.
func (r *Results) Scores(name string) ([]int, bool) {
	for _, s := range r.Strategies {
		if s.Name == name {
			return s.Scores, true
		}
	}
	return nil, false
}

// Simulator runs game batches
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration. Zero values get
// defaults: one worker per CPU, the real clock and no monitor.
func New(config Config) *Simulator {
	if config.Workers <= 0 {
		config.Workers = runtime.GOMAXPROCS(0)
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	if config.Monitor == nil {
		config.Monitor = NopMonitor{}
	}
	return &Simulator{config: config}
}

// Run plays Games games for every entrant, one entrant after another. Game i
// of every entrant is seeded with Seed+i, so results do not depend on the
// worker count. The first failing game or a cancelled ctx aborts the run.
func (s *Simulator) Run(ctx context.Context, entrants []Entrant) (*Results, error) {
	if s.config.Games <= 0 {
		return nil, fmt.Errorf("games must be positive, got %d", s.config.Games)
	}
	if len(entrants) == 0 {
		return nil, errors.New("no strategies to simulate")
	}

	clock := s.config.Clock
	results := &Results{
		Games:   s.config.Games,
		Seed:    s.config.Seed,
		Workers: s.config.Workers,
		Started: clock.Now(),
	}

	s.config.Logger.Info().
		Int("games", s.config.Games).
		Int64("seed", s.config.Seed).
		Int("workers", s.config.Workers).
		Int("strategies", len(entrants)).
		Msg("Starting simulation")

	for _, e := range entrants {
		r, err := s.runEntrant(ctx, e)
		if err != nil {
			return nil, err
		}
		results.Strategies = append(results.Strategies, r)
	}
	results.Duration = clock.Since(results.Started)

	s.config.Logger.Info().
		Dur("duration", results.Duration).
		Msg("Simulation complete")
	return results, nil
}

func (s *Simulator) runEntrant(ctx context.Context, e Entrant) (StrategyResult, error) {
	name := e.Name()
	games := s.config.Games
	monitor := s.config.Monitor
	start := s.config.Clock.Now()

	monitor.OnStrategyStart(name, games)

	scores := make([]int, games)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Workers)

	for i := range games {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			total, err := e.PlayGame(randutil.New(s.config.Seed + int64(i)))
			if err != nil {
				return fmt.Errorf("%s game %d (seed %d): %w", name, i, s.config.Seed+int64(i), err)
			}
			scores[i] = total
			monitor.OnGameComplete(name, i, total)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return StrategyResult{}, err
	}
	if err := ctx.Err(); err != nil {
		return StrategyResult{}, err
	}

	r := StrategyResult{
		Name:     name,
		Scores:   scores,
		Duration: s.config.Clock.Since(start),
	}
	monitor.OnStrategyComplete(r)

	s.config.Logger.Info().
		Str("strategy", name).
		Int("games", games).
		Dur("duration", r.Duration).
		Float64("games_per_sec", r.GamesPerSecond()).
		Msg("Strategy complete")
	return r, nil
}

// Run is a convenience wrapper around New(config).Run.
func Run(ctx context.Context, config Config, entrants []Entrant) (*Results, error) {
	return New(config).Run(ctx, entrants)
}
