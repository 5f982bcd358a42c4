package strategy

import (
	"github.com/lox/yahtzeebots/internal/dice"
	"github.com/lox/yahtzeebots/internal/scoring"
)

// Matcher returns the positions taking part in a dice pattern, or nil when
// the pattern is absent.
type Matcher func(v dice.Values) []int

// Goal is one pattern a strategy is willing to chase.
type Goal struct {
	Tag string
	// Requires gates the goal on at least one of these categories being
	// open. An empty set means the goal is always considered.
	Requires scoring.CategorySet
	Match    Matcher
	// Stop ends the search at this goal once it is open, even when it
	// matches nothing.
	Stop bool
}

func (g Goal) open(avail scoring.CategorySet) bool {
	return g.Requires.Empty() || avail&g.Requires != 0
}

// Ranked holds the dice of the first open goal that matches. Goals are in
// priority order. When nothing matches every die is rerolled.
type Ranked []Goal

// Hold returns the matched positions of the winning goal in ascending order.
func (r Ranked) Hold(v dice.Values, avail scoring.CategorySet) []int {
	_, held := r.Pick(v, avail)
	return held
}

// Pick is Hold that also reports the tag of the winning goal.
func (r Ranked) Pick(v dice.Values, avail scoring.CategorySet) (string, []int) {
	for _, g := range r {
		if !g.open(avail) {
			continue
		}
		if positions := g.Match(v); len(positions) > 0 {
			return g.Tag, sorted(positions)
		}
		if g.Stop {
			return g.Tag, nil
		}
	}
	return "", nil
}

// MatchFace matches every die showing face.
func MatchFace(face int) Matcher {
	return func(v dice.Values) []int {
		return v.Positions(face)
	}
}

// MatchOfAKind matches the most frequent face when it shows at least n
// times. Ties go to the higher face.
func MatchOfAKind(n int) Matcher {
	return func(v dice.Values) []int {
		face, count := v.MostCommon()
		if count < n {
			return nil
		}
		return v.Positions(face)
	}
}

// MatchRun matches the longest run of consecutive faces when it is at least
// n long, keeping one die per face. Ties go to the higher run.
func MatchRun(n int) Matcher {
	return func(v dice.Values) []int {
		length, top := scoring.LongestRun(v)
		if length < n {
			return nil
		}
		positions := make([]int, 0, length)
		for face := top - length + 1; face <= top; face++ {
			positions = append(positions, v.Positions(face)[0])
		}
		return positions
	}
}

// MatchFullHouse matches all five dice when they are a triple plus a pair of
// another face.
func MatchFullHouse(v dice.Values) []int {
	if scoring.Score(scoring.FullHouse, v) == 0 {
		return nil
	}
	return []int{0, 1, 2, 3, 4}
}
