// Package statistics summarises and compares per-game score samples.
package statistics

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat/distuv"
)

// Statistics accumulates game totals for one strategy
type Statistics struct {
	Games  int
	Sum    float64
	SumSq  float64   // Sum of squares for variance calculation
	Values []float64 // Store all values for median/percentile calculation

	MinScore int
	MaxScore int
}

// FromScores builds statistics from an ordered list of game totals.
func FromScores(scores []int) *Statistics {
	s := &Statistics{Values: make([]float64, 0, len(scores))}
	for _, total := range scores {
		s.Add(total)
	}
	return s
}

// Add incorporates one game total
func (s *Statistics) Add(total int) {
	if s.Games == 0 || total < s.MinScore {
		s.MinScore = total
	}
	if s.Games == 0 || total > s.MaxScore {
		s.MaxScore = total
	}
	v := float64(total)
	s.Games++
	s.Sum += v
	s.SumSq += v * v
	s.Values = append(s.Values, v)
}

// Mean returns the arithmetic mean score per game
func (s *Statistics) Mean() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.Sum / float64(s.Games)
}

// Variance returns the sample variance
func (s *Statistics) Variance() float64 {
	if s.Games < 2 {
		return 0
	}
	mean := s.Mean()
	v := (s.SumSq - float64(s.Games)*mean*mean) / float64(s.Games-1)
	if v < 0 {
		// rounding on constant samples
		return 0
	}
	return v
}

// StdDev returns the sample standard deviation
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Games))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean using
// the Student t distribution with Games-1 degrees of freedom.
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	if s.Games < 2 {
		return mean, mean
	}
	tDist := distuv.StudentsT{
		Nu:    float64(s.Games - 1),
		Mu:    0,
		Sigma: 1,
	}
	margin := tDist.Quantile(0.975) * s.StdError()
	return mean - margin, mean + margin
}

func (s *Statistics) sorted() []float64 {
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)
	return sorted
}

// Median returns the median score
func (s *Statistics) Median() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := s.sorted()

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Percentile returns the value at the given percentile (0.0 to 1.0)
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := s.sorted()

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// Validate checks the accumulated data is internally consistent
func (s *Statistics) Validate() error {
	if s.Games <= 0 {
		return fmt.Errorf("invalid games count: %d", s.Games)
	}
	if len(s.Values) != s.Games {
		return fmt.Errorf("values array length (%d) does not match games count (%d)",
			len(s.Values), s.Games)
	}
	if s.MinScore < 0 {
		return fmt.Errorf("negative score: %d", s.MinScore)
	}
	if s.MinScore > s.MaxScore {
		return fmt.Errorf("min score %d exceeds max score %d", s.MinScore, s.MaxScore)
	}
	return nil
}

// Summary is a snapshot of the descriptive statistics.
type Summary struct {
	Games    int     `json:"games"`
	Mean     float64 `json:"mean"`
	Median   float64 `json:"median"`
	StdDev   float64 `json:"std_dev"`
	StdError float64 `json:"std_error"`
	Min      int     `json:"min"`
	Max      int     `json:"max"`
	CI95Low  float64 `json:"ci95_low"`
	CI95High float64 `json:"ci95_high"`
	P25      float64 `json:"p25"`
	P75      float64 `json:"p75"`
}

// Summary computes every descriptive statistic at once.
func (s *Statistics) Summary() Summary {
	low, high := s.ConfidenceInterval95()
	return Summary{
		Games:    s.Games,
		Mean:     s.Mean(),
		Median:   s.Median(),
		StdDev:   s.StdDev(),
		StdError: s.StdError(),
		Min:      s.MinScore,
		Max:      s.MaxScore,
		CI95Low:  low,
		CI95High: high,
		P25:      s.Percentile(0.25),
		P75:      s.Percentile(0.75),
	}
}
