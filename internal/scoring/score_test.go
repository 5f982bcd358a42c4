package scoring

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/yahtzeebots/internal/dice"
)

func mustParse(t *testing.T, s string) dice.Values {
	t.Helper()
	v, err := dice.Parse(s)
	require.NoError(t, err)
	return v
}

func TestScoreAll(t *testing.T) {
	tests := []struct {
		dice string
		want [NumCategories]int
	}{
		{
			dice: "1,1,1,2,3",
			//        1  2  3  4  5  6  3k 4k fh ss ls y  ch
			want: [NumCategories]int{3, 2, 3, 0, 0, 0, 8, 0, 0, 0, 0, 0, 8},
		},
		{
			dice: "3,3,3,5,5",
			want: [NumCategories]int{0, 0, 9, 0, 10, 0, 19, 0, 25, 0, 0, 0, 19},
		},
		{
			dice: "2,3,4,5,6",
			want: [NumCategories]int{0, 2, 3, 4, 5, 6, 0, 0, 0, 30, 40, 0, 20},
		},
		{
			dice: "6,6,6,6,6",
			want: [NumCategories]int{0, 0, 0, 0, 0, 30, 30, 30, 0, 0, 0, 50, 30},
		},
		{
			dice: "1,2,3,4,6",
			want: [NumCategories]int{1, 2, 3, 4, 0, 6, 0, 0, 0, 30, 0, 0, 16},
		},
		{
			dice: "4,4,4,4,1",
			want: [NumCategories]int{1, 0, 0, 16, 0, 0, 17, 17, 0, 0, 0, 0, 17},
		},
		{
			dice: "2,3,4,4,6",
			want: [NumCategories]int{0, 2, 3, 8, 0, 6, 0, 0, 0, 0, 0, 0, 19},
		},
	}

	for _, tt := range tests {
		t.Run(tt.dice, func(t *testing.T) {
			got := ScoreAll(mustParse(t, tt.dice))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ScoreAll(%s) mismatch (-want +got):\n%s", tt.dice, diff)
			}
		})
	}
}

func TestScoreUpperIsFaceTimesCount(t *testing.T) {
	for _, v := range []dice.Values{
		{1, 2, 3, 4, 5},
		{6, 6, 1, 6, 2},
		{5, 5, 5, 5, 5},
		{3, 1, 3, 1, 3},
	} {
		counts := v.Counts()
		for face := 1; face <= dice.Sides; face++ {
			assert.Equal(t, face*counts[face], Score(Upper(face), v), "%s %s", v, Upper(face))
		}
	}
}

func TestFullHouseNeedsExactlyTripleAndPair(t *testing.T) {
	assert.Equal(t, FullHouseScore, Score(FullHouse, dice.Values{2, 5, 2, 5, 2}))
	assert.Zero(t, Score(FullHouse, dice.Values{5, 5, 5, 5, 5}), "yahtzee is not a full house")
	assert.Zero(t, Score(FullHouse, dice.Values{5, 5, 5, 5, 2}))
	assert.Zero(t, Score(FullHouse, dice.Values{1, 1, 2, 2, 3}))
}

func TestYahtzeeOnlyWhenAllEqual(t *testing.T) {
	for face := 1; face <= dice.Sides; face++ {
		v := dice.Values{face, face, face, face, face}
		assert.Equal(t, YahtzeeScore, Score(Yahtzee, v))
		assert.True(t, IsYahtzee(v))

		v[4] = face%dice.Sides + 1
		assert.Zero(t, Score(Yahtzee, v))
		assert.False(t, IsYahtzee(v))
	}
}

// permutations returns every ordering of v.
func permutations(v dice.Values) []dice.Values {
	var out []dice.Values
	var rec func(k int)
	rec = func(k int) {
		if k == len(v) {
			out = append(out, v)
			return
		}
		for i := k; i < len(v); i++ {
			v[k], v[i] = v[i], v[k]
			rec(k + 1)
			v[k], v[i] = v[i], v[k]
		}
	}
	rec(0)
	return out
}

func TestScoresArePermutationInvariant(t *testing.T) {
	for _, s := range []string{"1,2,3,4,6", "2,3,4,5,6", "3,3,3,5,5", "1,3,4,5,6", "1,1,2,3,4"} {
		base := ScoreAll(mustParse(t, s))
		for _, p := range permutations(mustParse(t, s)) {
			if diff := cmp.Diff(base, ScoreAll(p)); diff != "" {
				t.Fatalf("%s scored differently as %s (-want +got):\n%s", s, p, diff)
			}
		}
	}
}

func TestStraightsIgnoreDuplicates(t *testing.T) {
	assert.Equal(t, SmallStraightScore, Score(SmallStraight, dice.Values{3, 4, 4, 5, 6}))
	assert.Zero(t, Score(LargeStraight, dice.Values{3, 4, 4, 5, 6}))
	assert.Equal(t, SmallStraightScore, Score(SmallStraight, dice.Values{1, 2, 3, 4, 5}))
	assert.Zero(t, Score(SmallStraight, dice.Values{1, 2, 3, 5, 6}))
}

func TestLongestRun(t *testing.T) {
	length, top := LongestRun(dice.Values{1, 2, 4, 5, 6})
	assert.Equal(t, 3, length)
	assert.Equal(t, 6, top)

	length, top = LongestRun(dice.Values{1, 2, 4, 5, 1})
	assert.Equal(t, 2, length)
	assert.Equal(t, 5, top, "ties go to the higher run")
}

func TestScoreInvalidCategory(t *testing.T) {
	assert.Zero(t, Score(Category(-1), dice.Values{6, 6, 6, 6, 6}))
	assert.Zero(t, Score(NumCategories, dice.Values{6, 6, 6, 6, 6}))
}

func TestMaxScoreMatchesBestPossibleCard(t *testing.T) {
	best := 0
	upper := 0
	for _, c := range All() {
		var v dice.Values
		switch {
		case c.IsUpper():
			v = dice.Values{c.Face(), c.Face(), c.Face(), c.Face(), c.Face()}
		case c == SmallStraight || c == LargeStraight:
			v = dice.Values{2, 3, 4, 5, 6}
		case c == FullHouse:
			v = dice.Values{6, 6, 6, 5, 5}
		default:
			v = dice.Values{6, 6, 6, 6, 6}
		}
		s := Score(c, v)
		if c.IsUpper() {
			upper += s
		}
		best += s
	}
	if upper >= UpperBonusThreshold {
		best += UpperBonus
	}
	assert.Equal(t, MaxScore, best)
}
