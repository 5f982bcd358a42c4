package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"

	"github.com/lox/yahtzeebots/internal/dice"
	"github.com/lox/yahtzeebots/internal/game"
	"github.com/lox/yahtzeebots/internal/randutil"
	"github.com/lox/yahtzeebots/internal/scoring"
	"github.com/lox/yahtzeebots/internal/strategy"
	"github.com/lox/yahtzeebots/internal/tui"
)

type PlayCmd struct {
	Strategy    string   `arg:"" help:"Full-fidelity strategy to play"`
	Seed        *int64   `help:"Seed for reproducible dice (random when omitted)"`
	Interactive bool     `short:"i" help:"Step through the game turn by turn"`
	Category    []string `short:"c" help:"Only show turns scored in these categories, repeatable"`
}

func (c *PlayCmd) Run(g *Globals) error {
	logger, err := g.Logger()
	if err != nil {
		return err
	}
	if c.Interactive {
		result, err := c.play(logger)
		if err != nil {
			return err
		}
		return tui.Run(result, os.Stdin, os.Stdout)
	}
	return c.run(os.Stdout, logger, g.NoColor)
}

func (c *PlayCmd) play(logger zerolog.Logger) (game.Result, error) {
	s, err := strategy.New(c.Strategy)
	if err != nil {
		return game.Result{}, err
	}

	var src dice.Source
	if c.Seed != nil {
		src = randutil.New(*c.Seed)
	} else {
		src = randutil.NewLocked(time.Now().UnixNano())
	}

	return game.NewEngine(s, logger).PlayGame(src)
}

func (c *PlayCmd) run(w io.Writer, logger zerolog.Logger, noColor bool) error {
	only, err := c.categories()
	if err != nil {
		return err
	}
	result, err := c.play(logger)
	if err != nil {
		return err
	}

	turns := result.Turns
	if !only.Empty() {
		turns = nil
		for _, turn := range result.Turns {
			if only.Has(turn.Category) {
				turns = append(turns, turn)
			}
		}
	}

	fmt.Fprintln(w, turnsTable(newRenderer(w, noColor), turns))
	fmt.Fprint(w, result.Card.String())
	return nil
}

// categories parses the --category filter. An empty set shows every turn.
func (c *PlayCmd) categories() (scoring.CategorySet, error) {
	var set scoring.CategorySet
	for _, name := range c.Category {
		cat, err := scoring.ParseCategory(name)
		if err != nil {
			return 0, err
		}
		set = set.Add(cat)
	}
	return set, nil
}

func newRenderer(w io.Writer, noColor bool) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	if noColor {
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}

func turnsTable(r *lipgloss.Renderer, turns []game.TurnRecord) *table.Table {
	header := r.NewStyle().Bold(true).Foreground(lipgloss.Color("14")).Padding(0, 1)
	cell := r.NewStyle().Padding(0, 1)
	zero := r.NewStyle().Foreground(lipgloss.Color("8")).Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.NewStyle().Foreground(lipgloss.Color("8"))).
		Headers("Turn", "Roll", "Kept", "Final", "Category", "Score")
	for _, turn := range turns {
		t.Row(
			strconv.Itoa(turn.Turn),
			turn.Initial.String(),
			formatHolds(turn.Holds),
			turn.Final.String(),
			turn.Category.String(),
			strconv.Itoa(turn.Score),
		)
	}
	return t.StyleFunc(func(row, col int) lipgloss.Style {
		switch {
		case row == table.HeaderRow:
			return header
		case turns[row].Score == 0:
			return zero
		}
		return cell
	})
}

// formatHolds renders each reroll's kept positions, e.g. "0,1,2 | 0,1,2,3".
func formatHolds(holds [][]int) string {
	if len(holds) == 0 {
		return "-"
	}
	parts := make([]string, len(holds))
	for i, held := range holds {
		if len(held) == 0 {
			parts[i] = "none"
			continue
		}
		positions := make([]string, len(held))
		for j, p := range held {
			positions[j] = strconv.Itoa(p)
		}
		parts[i] = strings.Join(positions, ",")
	}
	return strings.Join(parts, " | ")
}
