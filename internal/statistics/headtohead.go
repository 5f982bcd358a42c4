package statistics

import "sort"

// WinProbability returns P(A > B) and P(A = B) for one independent draw from
// each empirical distribution. Every pair of games is counted exactly.
func WinProbability(a, b []int) (win, tie float64) {
	if len(a) == 0 || len(b) == 0 {
		return 0, 0
	}
	sorted := make([]int, len(b))
	copy(sorted, b)
	sort.Ints(sorted)

	var wins, ties int64
	for _, x := range a {
		below := sort.SearchInts(sorted, x)
		upTo := sort.SearchInts(sorted, x+1)
		wins += int64(below)
		ties += int64(upTo - below)
	}
	pairs := float64(len(a)) * float64(len(b))
	return float64(wins) / pairs, float64(ties) / pairs
}

// PairedWinRate returns the fraction of games i where a[i] > b[i]. All
// strategies share seed Seed+i for game i, so this compares them on the
// same initial random stream.
func PairedWinRate(a, b []int) float64 {
	n := min(len(a), len(b))
	if n == 0 {
		return 0
	}
	wins := 0
	for i := range n {
		if a[i] > b[i] {
			wins++
		}
	}
	return float64(wins) / float64(n)
}

// HeadToHead is a win probability matrix: Win[i][j] is P(Names[i] beats
// Names[j]) and Tie[i][j] the probability they draw.
type HeadToHead struct {
	Names []string    `json:"names"`
	Win   [][]float64 `json:"win"`
	Tie   [][]float64 `json:"tie"`
}

// Matrix computes head-to-head probabilities for every ordered pair.
func Matrix(samples []Sample) HeadToHead {
	n := len(samples)
	h := HeadToHead{
		Names: make([]string, n),
		Win:   make([][]float64, n),
		Tie:   make([][]float64, n),
	}
	for i, s := range samples {
		h.Names[i] = s.Name
		h.Win[i] = make([]float64, n)
		h.Tie[i] = make([]float64, n)
		for j, other := range samples {
			h.Win[i][j], h.Tie[i][j] = WinProbability(s.Scores, other.Scores)
		}
	}
	return h
}
