package strategy

import (
	"github.com/lox/yahtzeebots/internal/dice"
	"github.com/lox/yahtzeebots/internal/scoring"
)

// yahtzeeSacrifice is the order categories are zeroed out when nothing scores.
// Cheap upper boxes go first and Yahtzee itself last.
var yahtzeeSacrifice = []scoring.Category{
	scoring.Ones, scoring.Twos, scoring.Threes,
	scoring.Fours, scoring.Fives, scoring.Sixes,
	scoring.Chance,
	scoring.ThreeOfAKind,
	scoring.FourOfAKind,
	scoring.FullHouse,
	scoring.SmallStraight,
	scoring.LargeStraight,
	scoring.Yahtzee,
}

// YahtzeeFocus keeps the most frequent face on every reroll.
type YahtzeeFocus struct {
	goals Ranked
}

// NewYahtzeeFocus returns the yahtzee-focus strategy.
func NewYahtzeeFocus() *YahtzeeFocus {
	return &YahtzeeFocus{goals: Ranked{
		{Tag: "of_a_kind", Match: MatchOfAKind(2)},
	}}
}

func (*YahtzeeFocus) Name() string { return "yahtzee-focus" }

// Hold keeps the most frequent face if it shows at least twice.
func (s *YahtzeeFocus) Hold(v dice.Values, avail scoring.CategorySet) []int {
	return s.goals.Hold(v, avail)
}

func (*YahtzeeFocus) Choose(v dice.Values, avail scoring.CategorySet) scoring.Category {
	if avail.Has(scoring.Yahtzee) && scoring.IsYahtzee(v) {
		return scoring.Yahtzee
	}
	if c, _, ok := bestOf(v, avail.Remove(scoring.Yahtzee), canonical); ok {
		return c
	}
	return firstOf(avail, yahtzeeSacrifice)
}
