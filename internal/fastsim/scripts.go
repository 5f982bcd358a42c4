package fastsim

import (
	"fmt"

	"github.com/lox/yahtzeebots/internal/dice"
	"github.com/lox/yahtzeebots/internal/scoring"
)

// Award labels.
const (
	labelYahtzee      = "yahtzee"
	labelFourOfAKind  = "four_of_a_kind"
	labelThreeOfAKind = "three_of_a_kind"
)

// DiceDriven keeps the most common face and scores Yahtzee, four of a kind
// or three of a kind once each, falling back to the upper score of the most
// common face.
type DiceDriven struct{}

func (DiceDriven) Name() string { return "dice-driven" }

func (DiceDriven) Bound() int {
	return scoring.YahtzeeScore + (turns-1)*dice.Sides*dice.Count
}

func (DiceDriven) PlayGame(src dice.Source) (int, error) {
	used := Used{}
	total := 0
	for turn := 1; turn <= turns; turn++ {
		v, err := playTurn(src, keepMostCommon)
		if err != nil {
			return 0, fmt.Errorf("turn %d: %w", turn, err)
		}
		face, count := v.MostCommon()
		switch {
		case count == 5 && used.Award(labelYahtzee):
			total += scoring.YahtzeeScore
		case count == 4 && used.Award(labelFourOfAKind):
			total += v.Sum()
		case count == 3 && used.Award(labelThreeOfAKind):
			total += v.Sum()
		default:
			total += face * count
		}
	}
	return total, nil
}

// UpperScript plays the six upper faces in order and fills the remaining
// seven turns with half the dice sum.
type UpperScript struct{}

func (UpperScript) Name() string { return "upper-script" }

func (UpperScript) Bound() int {
	return maxUpper + scoring.UpperBonus + fillerTurns*(dice.Sides*dice.Count/2)
}

func (UpperScript) PlayGame(src dice.Source) (int, error) {
	total, err := upperTargets(src)
	if err != nil {
		return 0, err
	}
	for range fillerTurns {
		var v dice.Values
		copy(v[:], dice.Roll(src, dice.Count))
		total += v.Sum() / 2
	}
	return total, nil
}

// YahtzeeScript chases the most common face every turn. The first Yahtzee
// scores 50 and every turn adds a third of the dice sum.
type YahtzeeScript struct{}

func (YahtzeeScript) Name() string { return "yahtzee-script" }

func (YahtzeeScript) Bound() int {
	return scoring.YahtzeeScore + turns*(dice.Sides*dice.Count/3)
}

func (YahtzeeScript) PlayGame(src dice.Source) (int, error) {
	used := Used{}
	total := 0
	for turn := 1; turn <= turns; turn++ {
		v, err := playTurn(src, keepMostCommon)
		if err != nil {
			return 0, fmt.Errorf("turn %d: %w", turn, err)
		}
		if scoring.IsYahtzee(v) && used.Award(labelYahtzee) {
			total += scoring.YahtzeeScore
		}
		total += v.Sum() / 3
	}
	return total, nil
}

// Hybrid plays the six upper faces, then seven most-common-face turns. Those
// score 50 for the first five of a kind, the dice sum for three or more of a
// kind and half the sum otherwise.
type Hybrid struct{}

func (Hybrid) Name() string { return "hybrid" }

func (Hybrid) Bound() int {
	return maxUpper + scoring.UpperBonus + scoring.YahtzeeScore + (fillerTurns-1)*dice.Sides*dice.Count
}

func (Hybrid) PlayGame(src dice.Source) (int, error) {
	total, err := upperTargets(src)
	if err != nil {
		return 0, err
	}
	used := Used{}
	for turn := 1; turn <= fillerTurns; turn++ {
		v, err := playTurn(src, keepMostCommon)
		if err != nil {
			return 0, fmt.Errorf("filler turn %d: %w", turn, err)
		}
		switch _, count := v.MostCommon(); {
		case count == 5 && used.Award(labelYahtzee):
			total += scoring.YahtzeeScore
		case count >= 3:
			total += v.Sum()
		default:
			total += v.Sum() / 2
		}
	}
	return total, nil
}
