package fastsim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/yahtzeebots/internal/randutil"
)

func TestUsedAwardsOnce(t *testing.T) {
	used := Used{}
	assert.True(t, used.Award("yahtzee"))
	assert.False(t, used.Award("yahtzee"))
	assert.True(t, used.Award("four_of_a_kind"))
	assert.Len(t, used, 2)
}

func TestScriptsStayWithinBounds(t *testing.T) {
	for _, name := range Names() {
		s, err := New(name)
		require.NoError(t, err)
		t.Run(name, func(t *testing.T) {
			for seed := int64(0); seed < 2000; seed++ {
				total, err := s.PlayGame(randutil.New(seed))
				require.NoError(t, err)
				require.GreaterOrEqual(t, total, 0)
				require.LessOrEqual(t, total, s.Bound())
			}
		})
	}
}

func TestScriptsWithOnlyOnes(t *testing.T) {
	// An exhausted script rolls nothing but ones, so every turn is a Yahtzee
	// of ones and only the first one earns 50.
	tests := []struct {
		name string
		want int
	}{
		{"dice-driven", 50 + 12*5},
		{"upper-script", 5 + 7*2},
		{"yahtzee-script", 50 + 13*1},
		{"hybrid", 5 + 50 + 6*5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(tt.name)
			require.NoError(t, err)
			total, err := s.PlayGame(randutil.NewScripted())
			require.NoError(t, err)
			assert.Equal(t, tt.want, total)
		})
	}
}

func TestUpperScriptEarnsBonus(t *testing.T) {
	src := randutil.NewScripted()
	for face := 1; face <= 6; face++ {
		src.Queue(face, face, face, face, face)
	}
	for range 7 {
		src.Queue(6, 6, 6, 6, 6)
	}

	total, err := UpperScript{}.PlayGame(src)
	require.NoError(t, err)
	assert.Equal(t, 105+35+7*15, total)
	assert.Equal(t, UpperScript{}.Bound(), total)
	assert.Zero(t, src.Remaining())
}

func TestScriptsAreDeterministic(t *testing.T) {
	for _, name := range Names() {
		s, err := New(name)
		require.NoError(t, err)
		a, err := s.PlayGame(randutil.New(5))
		require.NoError(t, err)
		b, err := s.PlayGame(randutil.New(5))
		require.NoError(t, err)
		assert.Equal(t, a, b, name)
	}
}

func TestUnknownScript(t *testing.T) {
	_, err := New("upper-focus")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dice-driven")
}
