package strategy

import (
	"github.com/lox/yahtzeebots/internal/dice"
	"github.com/lox/yahtzeebots/internal/scoring"
)

var lowerRanking = []scoring.Category{
	scoring.Yahtzee,
	scoring.LargeStraight,
	scoring.SmallStraight,
	scoring.FullHouse,
	scoring.FourOfAKind,
	scoring.ThreeOfAKind,
	scoring.Chance,
}

// LowerFocus chases the fixed-score lower categories.
type LowerFocus struct {
	goals Ranked
}

// NewLowerFocus returns the lower-focus strategy.
func NewLowerFocus() *LowerFocus {
	return &LowerFocus{goals: Ranked{
		{Tag: "yahtzee", Requires: scoring.SetOf(scoring.Yahtzee), Match: MatchOfAKind(3)},
		{Tag: "large_straight", Requires: scoring.SetOf(scoring.LargeStraight), Match: MatchRun(4)},
		{Tag: "small_straight", Requires: scoring.SetOf(scoring.SmallStraight), Match: MatchRun(3)},
		{Tag: "full_house", Requires: scoring.SetOf(scoring.FullHouse), Match: MatchFullHouse},
		{Tag: "four_of_a_kind", Requires: scoring.SetOf(scoring.FourOfAKind), Match: MatchOfAKind(3)},
		{Tag: "three_of_a_kind", Requires: scoring.SetOf(scoring.ThreeOfAKind), Match: MatchOfAKind(2)},
	}}
}

func (*LowerFocus) Name() string { return "lower-focus" }

// Goals exposes the ranked hold goals.
func (s *LowerFocus) Goals() Ranked { return s.goals }

func (s *LowerFocus) Hold(v dice.Values, avail scoring.CategorySet) []int {
	return s.goals.Hold(v, avail)
}

// Choose takes an open Yahtzee at once, then the best positive lower score,
// then the best positive upper score, then the first open category.
func (*LowerFocus) Choose(v dice.Values, avail scoring.CategorySet) scoring.Category {
	if avail.Has(scoring.Yahtzee) && scoring.IsYahtzee(v) {
		return scoring.Yahtzee
	}
	if c, _, ok := bestOf(v, avail, lowerRanking); ok {
		return c
	}
	if c, _, ok := bestOf(v, avail, upperHighFirst); ok {
		return c
	}
	return firstOf(avail, canonical)
}
