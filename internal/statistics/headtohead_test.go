package statistics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWinProbability(t *testing.T) {
	win, tie := WinProbability([]int{1, 2, 3}, []int{2, 2})
	assert.InDelta(t, 2.0/6, win, 1e-12)
	assert.InDelta(t, 2.0/6, tie, 1e-12)

	win, tie = WinProbability([]int{10, 20}, []int{1, 2, 3})
	assert.Equal(t, 1.0, win)
	assert.Zero(t, tie)

	win, tie = WinProbability(nil, []int{1})
	assert.Zero(t, win)
	assert.Zero(t, tie)
}

func TestMatrixIsComplementary(t *testing.T) {
	samples := []Sample{
		{"a", []int{180, 220, 205, 190, 240}},
		{"b", []int{200, 200, 210, 150}},
		{"c", []int{175, 230, 205}},
	}
	h := Matrix(samples)

	assert.Equal(t, []string{"a", "b", "c"}, h.Names)
	for i := range samples {
		for j := range samples {
			// P(i>j) + P(i=j) + P(j>i) = 1
			assert.InDelta(t, 1.0, h.Win[i][j]+h.Tie[i][j]+h.Win[j][i], 1e-12, "%d,%d", i, j)
			assert.InDelta(t, h.Tie[i][j], h.Tie[j][i], 1e-12)
		}
	}
	// A sample against itself splits the non-tied pairs evenly.
	assert.InDelta(t, (1-h.Tie[0][0])/2, h.Win[0][0], 1e-12)
}

func TestPairedWinRate(t *testing.T) {
	assert.Equal(t, 0.5, PairedWinRate([]int{3, 1, 5, 2}, []int{2, 2, 4, 2}))
	assert.Zero(t, PairedWinRate(nil, []int{1}))
	assert.Equal(t, 1.0, PairedWinRate([]int{5, 6, 0}, []int{1, 2}))
}
