// Package strategy holds the Yahtzee decision policies.
//
// A Strategy makes two decisions per turn: which dice to keep before each
// reroll (Hold) and which open category to score the final dice in (Choose).
// Strategies are pure functions of their inputs so that any engine, test or
// replay can drive them without setup.
package strategy

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lox/yahtzeebots/internal/dice"
	"github.com/lox/yahtzeebots/internal/scoring"
)

// Strategy decides holds and category commits for one player.
type Strategy interface {
	Name() string
	// Hold returns the positions to keep, in ascending order. The rest are rerolled.
	Hold(v dice.Values, avail scoring.CategorySet) []int
	// Choose returns a category from avail. avail must not be empty.
	Choose(v dice.Values, avail scoring.CategorySet) scoring.Category
}

// bestOf returns the candidate in avail with the strictly highest score.
// Candidates are listed in ranking order, so ties keep the earlier one.
// ok is false when no available candidate scores above zero.
func bestOf(v dice.Values, avail scoring.CategorySet, ranking []scoring.Category) (best scoring.Category, score int, ok bool) {
	for _, c := range ranking {
		if !avail.Has(c) {
			continue
		}
		if s := scoring.Score(c, v); s > score {
			best, score, ok = c, s, true
		}
	}
	return best, score, ok
}

// firstOf returns the first category of order that is still available.
func firstOf(avail scoring.CategorySet, order []scoring.Category) scoring.Category {
	for _, c := range order {
		if avail.Has(c) {
			return c
		}
	}
	if c, ok := avail.First(); ok {
		return c
	}
	panic("strategy: Choose called with no available categories")
}

var (
	canonical = scoring.All()

	// sixes down to ones
	upperHighFirst = []scoring.Category{
		scoring.Sixes, scoring.Fives, scoring.Fours,
		scoring.Threes, scoring.Twos, scoring.Ones,
	}
)

// Factory builds a fresh strategy.
type Factory func() Strategy

type entry struct {
	name        string
	description string
	factory     Factory
}

var registry = []entry{
	{"upper-focus", "chases the highest open upper face to earn the upper bonus", func() Strategy { return NewUpperFocus() }},
	{"lower-focus", "chases Yahtzee, straights and full houses before the upper section", func() Strategy { return NewLowerFocus() }},
	{"yahtzee-focus", "keeps the most frequent face and takes Yahtzee whenever it lands", func() Strategy { return NewYahtzeeFocus() }},
	{"greedy", "keeps the most frequent face and takes the best immediate score", func() Strategy { return NewGreedy() }},
}

// New returns the named strategy.
func New(name string) (Strategy, error) {
	for _, e := range registry {
		if e.name == name {
			return e.factory(), nil
		}
	}
	return nil, fmt.Errorf("unknown strategy %q (choose from %s)", name, strings.Join(Names(), ", "))
}

// Names lists the registered strategies in registration order.
func Names() []string {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.name
	}
	return names
}

// Describe returns the one-line description of a registered strategy.
func Describe(name string) string {
	for _, e := range registry {
		if e.name == name {
			return e.description
		}
	}
	return ""
}

func sorted(positions []int) []int {
	sort.Ints(positions)
	return positions
}
