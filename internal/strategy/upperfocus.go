package strategy

import (
	"github.com/lox/yahtzeebots/internal/dice"
	"github.com/lox/yahtzeebots/internal/scoring"
)

// UpperFocus works the upper section from the top down to secure the upper
// bonus.
type UpperFocus struct {
	goals Ranked
}

// NewUpperFocus returns the upper-focus strategy.
func NewUpperFocus() *UpperFocus {
	goals := make(Ranked, 0, dice.Sides)
	for face := dice.Sides; face >= 1; face-- {
		c := scoring.Upper(face)
		goals = append(goals, Goal{
			Tag:      c.String(),
			Requires: scoring.SetOf(c),
			Match:    MatchFace(face),
			Stop:     true,
		})
	}
	return &UpperFocus{goals: goals}
}

func (*UpperFocus) Name() string { return "upper-focus" }

// Hold keeps every die showing the highest face whose upper category is open.
// With no upper category left it keeps nothing.
func (s *UpperFocus) Hold(v dice.Values, avail scoring.CategorySet) []int {
	return s.goals.Hold(v, avail)
}

// Choose prefers an open upper category the dice contribute to, then the best
// positive score anywhere, then the first open category.
func (*UpperFocus) Choose(v dice.Values, avail scoring.CategorySet) scoring.Category {
	if c, _, ok := bestOf(v, avail, upperHighFirst); ok {
		return c
	}
	if c, _, ok := bestOf(v, avail, canonical); ok {
		return c
	}
	return firstOf(avail, canonical)
}
