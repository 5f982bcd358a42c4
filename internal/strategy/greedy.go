package strategy

import (
	"github.com/lox/yahtzeebots/internal/dice"
	"github.com/lox/yahtzeebots/internal/scoring"
)

var greedyGoals = Ranked{{Tag: "most_common", Match: MatchOfAKind(1)}}

// Greedy keeps its most frequent face and scores wherever it earns the most
// right now.
type Greedy struct{}

// NewGreedy returns the greedy strategy.
func NewGreedy() *Greedy {
	return &Greedy{}
}

func (*Greedy) Name() string { return "greedy" }

func (*Greedy) Hold(v dice.Values, avail scoring.CategorySet) []int {
	return greedyGoals.Hold(v, avail)
}

func (*Greedy) Choose(v dice.Values, avail scoring.CategorySet) scoring.Category {
	if c, _, ok := bestOf(v, avail, canonical); ok {
		return c
	}
	return firstOf(avail, canonical)
}
