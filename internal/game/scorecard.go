package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lox/yahtzeebots/internal/scoring"
)

var (
	// ErrCategoryFilled is returned when committing to a category twice.
	ErrCategoryFilled = errors.New("category already filled")
	// ErrInvalidCategory is returned for categories outside the enum.
	ErrInvalidCategory = errors.New("invalid category")
	// ErrUnavailableCategory is returned when a strategy picks a filled category.
	ErrUnavailableCategory = errors.New("strategy chose unavailable category")
)

// Scorecard holds at most one score per category.
type Scorecard struct {
	scores [scoring.NumCategories]int
	filled scoring.CategorySet
}

// NewScorecard returns an empty scorecard.
func NewScorecard() *Scorecard {
	return &Scorecard{}
}

// Available returns the categories that have not been scored yet.
func (s *Scorecard) Available() scoring.CategorySet {
	return scoring.AllCategories &^ s.filled
}

// Filled returns the categories that already hold a score.
func (s *Scorecard) Filled() scoring.CategorySet {
	return s.filled
}

// Commit records score in category c. A category can be committed once.
func (s *Scorecard) Commit(c scoring.Category, score int) error {
	if !c.Valid() {
		return fmt.Errorf("commit %d: %w", int(c), ErrInvalidCategory)
	}
	if s.filled.Has(c) {
		return fmt.Errorf("commit %s: %w", c, ErrCategoryFilled)
	}
	s.scores[c] = score
	s.filled = s.filled.Add(c)
	return nil
}

// Score returns the score recorded for c and whether c has been filled.
func (s *Scorecard) Score(c scoring.Category) (int, bool) {
	if !s.filled.Has(c) {
		return 0, false
	}
	return s.scores[c], true
}

// Scores returns every category's score; unfilled categories read as zero.
func (s *Scorecard) Scores() [scoring.NumCategories]int {
	return s.scores
}

// UpperSubtotal sums the filled upper categories.
func (s *Scorecard) UpperSubtotal() int {
	total := 0
	for c := scoring.Ones; c <= scoring.Sixes; c++ {
		total += s.scores[c]
	}
	return total
}

// UpperBonus returns the bonus the current upper subtotal earns. It can be
// read at any point in the game; Total is the only place it is counted.
func (s *Scorecard) UpperBonus() int {
	if s.UpperSubtotal() >= scoring.UpperBonusThreshold {
		return scoring.UpperBonus
	}
	return 0
}

// Total returns every recorded score plus the upper bonus.
func (s *Scorecard) Total() int {
	total := 0
	for _, score := range s.scores {
		total += score
	}
	return total + s.UpperBonus()
}

// Complete reports whether all thirteen categories are filled.
func (s *Scorecard) Complete() bool {
	return s.filled == scoring.AllCategories
}

func (s *Scorecard) String() string {
	var b strings.Builder
	line := func(label, value string) {
		fmt.Fprintf(&b, "%-16s %5s\n", label, value)
	}
	for _, c := range scoring.All() {
		value := "-"
		if score, ok := s.Score(c); ok {
			value = fmt.Sprint(score)
		}
		line(c.String(), value)
		if c == scoring.Sixes {
			line("upper_subtotal", fmt.Sprint(s.UpperSubtotal()))
			line("upper_bonus", fmt.Sprint(s.UpperBonus()))
		}
	}
	line("total", fmt.Sprint(s.Total()))
	return b.String()
}
