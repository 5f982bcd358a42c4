package strategy

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/yahtzeebots/internal/dice"
	"github.com/lox/yahtzeebots/internal/randutil"
	"github.com/lox/yahtzeebots/internal/scoring"
)

func allStrategies(t *testing.T) []Strategy {
	t.Helper()
	var out []Strategy
	for _, name := range Names() {
		s, err := New(name)
		require.NoError(t, err)
		require.Equal(t, name, s.Name())
		out = append(out, s)
	}
	return out
}

func TestRegistry(t *testing.T) {
	assert.Equal(t, []string{"upper-focus", "lower-focus", "yahtzee-focus", "greedy"}, Names())
	for _, name := range Names() {
		assert.NotEmpty(t, Describe(name))
	}

	_, err := New("random")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "yahtzee-focus")
	assert.Empty(t, Describe("random"))
}

func TestOnlyChanceLeftScoresChance(t *testing.T) {
	v := dice.Values{2, 3, 4, 4, 6}
	avail := scoring.SetOf(scoring.Chance)
	for _, s := range allStrategies(t) {
		c := s.Choose(v, avail)
		assert.Equal(t, scoring.Chance, c, s.Name())
		assert.Equal(t, 19, scoring.Score(c, v))
	}
}

func TestChooseNeverReturnsFilledCategory(t *testing.T) {
	rng := randutil.New(7)
	strategies := allStrategies(t)
	for i := 0; i < 2000; i++ {
		var v dice.Values
		copy(v[:], dice.Roll(rng, dice.Count))
		avail := scoring.CategorySet(rng.IntN(int(scoring.AllCategories)) + 1)

		for _, s := range strategies {
			c := s.Choose(v, avail)
			require.True(t, avail.Has(c), "%s chose %s from %s with %s", s.Name(), c, avail, v)

			held := s.Hold(v, avail)
			require.True(t, sort.IntsAreSorted(held), "%s held %v", s.Name(), held)
			for _, p := range held {
				require.True(t, p >= 0 && p < dice.Count)
			}
		}
	}
}

func TestChooseEmptySetPanics(t *testing.T) {
	for _, s := range allStrategies(t) {
		assert.Panics(t, func() { s.Choose(dice.Values{1, 2, 3, 4, 5}, 0) }, s.Name())
	}
}

func TestStrategiesAreDeterministic(t *testing.T) {
	v := dice.Values{5, 2, 5, 3, 4}
	avail := scoring.AllCategories.Remove(scoring.Fives)
	for _, s := range allStrategies(t) {
		assert.Equal(t, s.Hold(v, avail), s.Hold(v, avail))
		assert.Equal(t, s.Choose(v, avail), s.Choose(v, avail))
	}
}

func TestYahtzeeFocus(t *testing.T) {
	s := NewYahtzeeFocus()
	all := scoring.AllCategories

	assert.Equal(t, []int{0, 1, 2}, s.Hold(dice.Values{1, 1, 1, 2, 3}, all))
	assert.Equal(t, []int{2, 3}, s.Hold(dice.Values{2, 2, 5, 5, 1}, all), "ties keep the higher face")
	assert.Empty(t, s.Hold(dice.Values{1, 2, 3, 4, 6}, all))

	assert.Equal(t, scoring.Yahtzee, s.Choose(dice.Values{4, 4, 4, 4, 4}, all))
	assert.Equal(t, scoring.Fours, s.Choose(dice.Values{4, 4, 4, 4, 4}, all.Remove(scoring.Yahtzee)))
	assert.Equal(t, scoring.FullHouse, s.Choose(dice.Values{3, 3, 3, 5, 5}, all))

	zero := scoring.SetOf(scoring.Fours, scoring.Sixes, scoring.FullHouse, scoring.Yahtzee)
	assert.Equal(t, scoring.Fours, s.Choose(dice.Values{1, 1, 2, 3, 5}, zero))
	assert.Equal(t, scoring.Chance, s.Choose(dice.Values{1, 1, 2, 3, 5},
		scoring.SetOf(scoring.Chance, scoring.Yahtzee)))
	assert.Equal(t, scoring.Fours, s.Choose(dice.Values{1, 1, 2, 3, 5},
		scoring.SetOf(scoring.Fours, scoring.Yahtzee)), "yahtzee is zeroed last")
	assert.Equal(t, scoring.Yahtzee, s.Choose(dice.Values{1, 1, 2, 3, 5}, scoring.SetOf(scoring.Yahtzee)))
	assert.Equal(t, scoring.Threes, s.Choose(dice.Values{1, 1, 2, 2, 5},
		scoring.SetOf(scoring.FullHouse, scoring.Threes)))
}

func TestLowerFocusHold(t *testing.T) {
	s := NewLowerFocus()
	all := scoring.AllCategories

	tests := []struct {
		name  string
		v     dice.Values
		avail scoring.CategorySet
		want  []int
	}{
		{"triple chases yahtzee", dice.Values{3, 3, 3, 5, 5}, all, []int{0, 1, 2}},
		{"full house once yahtzee is gone", dice.Values{3, 3, 3, 5, 5}, all.Remove(scoring.Yahtzee), []int{0, 1, 2, 3, 4}},
		{"four run", dice.Values{1, 2, 3, 4, 6}, all, []int{0, 1, 2, 3}},
		{"three run", dice.Values{2, 3, 4, 6, 6}, all, []int{0, 1, 2}},
		{"duplicate inside run", dice.Values{1, 2, 2, 3, 4}, all, []int{0, 1, 3, 4}},
		{
			"pair for three of a kind",
			dice.Values{2, 3, 4, 6, 6},
			scoring.SetOf(scoring.ThreeOfAKind, scoring.Chance),
			[]int{3, 4},
		},
		{"nothing open", dice.Values{2, 3, 4, 6, 6}, scoring.SetOf(scoring.Chance, scoring.Ones), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Hold(tt.v, tt.avail))
		})
	}

	tag, _ := s.Goals().Pick(dice.Values{1, 2, 3, 4, 6}, all)
	assert.Equal(t, "large_straight", tag)
}

func TestLowerFocusChoose(t *testing.T) {
	s := NewLowerFocus()
	all := scoring.AllCategories

	assert.Equal(t, scoring.Yahtzee, s.Choose(dice.Values{2, 2, 2, 2, 2}, all))
	assert.Equal(t, scoring.LargeStraight, s.Choose(dice.Values{2, 3, 4, 5, 6}, all))
	assert.Equal(t, scoring.FullHouse, s.Choose(dice.Values{3, 3, 3, 5, 5}, all))
	assert.Equal(t, scoring.Chance, s.Choose(dice.Values{1, 1, 2, 2, 6}, all))
	assert.Equal(t, scoring.Sixes, s.Choose(dice.Values{1, 1, 2, 2, 6},
		scoring.SetOf(scoring.Ones, scoring.Twos, scoring.Sixes, scoring.Yahtzee)))
	assert.Equal(t, scoring.Threes, s.Choose(dice.Values{1, 1, 2, 2, 6},
		scoring.SetOf(scoring.Threes, scoring.Yahtzee)))
}

func TestUpperFocus(t *testing.T) {
	s := NewUpperFocus()
	all := scoring.AllCategories

	assert.Equal(t, []int{0, 2}, s.Hold(dice.Values{6, 2, 6, 3, 1}, all))
	assert.Empty(t, s.Hold(dice.Values{6, 2, 6, 3, 1}, all.Remove(scoring.Sixes)))
	assert.Equal(t, []int{3}, s.Hold(dice.Values{6, 2, 6, 3, 1}, scoring.SetOf(scoring.Threes, scoring.Ones)))
	assert.Empty(t, s.Hold(dice.Values{6, 2, 6, 3, 1}, scoring.LowerCategories))

	assert.Equal(t, scoring.Sixes, s.Choose(dice.Values{6, 6, 2, 3, 1}, all))
	assert.Equal(t, scoring.Chance, s.Choose(dice.Values{6, 6, 2, 3, 1},
		scoring.SetOf(scoring.Fours, scoring.Fives, scoring.Chance)))
	assert.Equal(t, scoring.Fours, s.Choose(dice.Values{6, 6, 2, 3, 1},
		scoring.SetOf(scoring.Fours, scoring.Fives, scoring.Yahtzee)))
}

func TestGreedy(t *testing.T) {
	s := NewGreedy()
	all := scoring.AllCategories

	assert.Equal(t, []int{2, 3}, s.Hold(dice.Values{2, 2, 5, 5, 1}, all))
	assert.Equal(t, []int{4}, s.Hold(dice.Values{1, 2, 3, 4, 6}, all))
	assert.Equal(t, scoring.LargeStraight, s.Choose(dice.Values{2, 3, 4, 5, 6}, all))
	assert.Equal(t, scoring.Ones, s.Choose(dice.Values{2, 2, 3, 3, 5}, scoring.SetOf(scoring.Ones, scoring.Yahtzee)))
}

func TestMatchers(t *testing.T) {
	v := dice.Values{4, 1, 4, 2, 3}

	assert.Equal(t, []int{0, 2}, MatchFace(4)(v))
	assert.Nil(t, MatchFace(6)(v))
	assert.Equal(t, []int{0, 2}, MatchOfAKind(2)(v))
	assert.Nil(t, MatchOfAKind(3)(v))
	assert.Equal(t, []int{1, 3, 4, 0}, MatchRun(4)(v))
	assert.Nil(t, MatchRun(5)(v))
	assert.Nil(t, MatchFullHouse(v))
	assert.Len(t, MatchFullHouse(dice.Values{4, 1, 4, 1, 4}), 5)
}

func TestRankedStopGoalEndsSearch(t *testing.T) {
	goals := Ranked{
		{Tag: "sixes", Requires: scoring.SetOf(scoring.Sixes), Match: MatchFace(6), Stop: true},
		{Tag: "pair", Match: MatchOfAKind(2)},
	}
	v := dice.Values{2, 2, 3, 4, 5}

	tag, held := goals.Pick(v, scoring.AllCategories)
	assert.Equal(t, "sixes", tag)
	assert.Empty(t, held)

	tag, held = goals.Pick(v, scoring.AllCategories.Remove(scoring.Sixes))
	assert.Equal(t, "pair", tag)
	assert.Equal(t, []int{0, 1}, held)
}
