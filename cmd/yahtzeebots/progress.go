package main

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/coder/quartz"
	"github.com/muesli/termenv"

	"github.com/lox/yahtzeebots/internal/simulator"
)

// progressMonitor draws one progress bar per strategy, redrawing in place
// whenever the completed percentage changes.
type progressMonitor struct {
	mu    sync.Mutex
	w     io.Writer
	bar   progress.Model
	clock quartz.Clock

	name    string
	games   int
	done    int
	lastPct int
	start   time.Time
}

func newProgressMonitor(w io.Writer, noColor bool, clock quartz.Clock) *progressMonitor {
	opts := []progress.Option{progress.WithDefaultGradient(), progress.WithWidth(40)}
	if noColor {
		opts = append(opts, progress.WithColorProfile(termenv.Ascii))
	}
	return &progressMonitor{
		w:     w,
		bar:   progress.New(opts...),
		clock: clock,
	}
}

func (m *progressMonitor) OnStrategyStart(name string, games int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.name = name
	m.games = games
	m.done = 0
	m.lastPct = -1
	m.start = m.clock.Now()
	m.draw(0)
}

func (m *progressMonitor) OnGameComplete(string, int, int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.done++
	if pct := m.done * 100 / max(m.games, 1); pct != m.lastPct {
		m.draw(pct)
	}
}

func (m *progressMonitor) OnStrategyComplete(r simulator.StrategyResult) {
	m.mu.Lock()
	defer m.mu.Unlock()

	elapsed := m.clock.Since(m.start)
	rate := 0.0
	if elapsed > 0 {
		rate = float64(len(r.Scores)) / elapsed.Seconds()
	}
	fmt.Fprintf(m.w, "\r%-16s %s %d games in %s (%.0f/sec)\n",
		r.Name, m.bar.ViewAs(1), len(r.Scores), elapsed.Round(time.Millisecond), rate)
}

func (m *progressMonitor) draw(pct int) {
	m.lastPct = pct
	fmt.Fprintf(m.w, "\r%-16s %s", m.name, m.bar.ViewAs(float64(pct)/100))
}
