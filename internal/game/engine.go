package game

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/lox/yahtzeebots/internal/dice"
	"github.com/lox/yahtzeebots/internal/scoring"
	"github.com/lox/yahtzeebots/internal/strategy"
)

// RerollBudget is the number of rerolls allowed after the opening roll.
const RerollBudget = 2

// Decision is the outcome of one turn's hold and choose phases.
type Decision struct {
	Initial  dice.Values
	Holds    [][]int // positions kept before each reroll
	Final    dice.Values
	Category scoring.Category
	Score    int
}

// TurnRecord is a committed Decision and the scorecard it left behind.
type TurnRecord struct {
	Turn int
	Decision
	Card Scorecard
}

// Result summarises a finished game.
type Result struct {
	Strategy      string
	Total         int
	UpperSubtotal int
	UpperBonus    int
	Scores        [scoring.NumCategories]int
	Turns         []TurnRecord
	Card          *Scorecard
}

// CardAt returns a copy of the scorecard after n turns. Zero gives an empty
// card; n is clamped to the turns played.
func (r Result) CardAt(n int) *Scorecard {
	n = min(n, len(r.Turns))
	if n <= 0 {
		return NewScorecard()
	}
	card := r.Turns[n-1].Card
	return &card
}

// BonusApplied reports whether the upper bonus was earned.
func (r Result) BonusApplied() bool {
	return r.UpperBonus > 0
}

// DecideTurn runs the hold phase for up to budget rerolls and then picks a
// category. It rerolls the hand but never touches a scorecard. The hold phase
// ends early once the strategy keeps all five dice.
func DecideTurn(s strategy.Strategy, hand *dice.Hand, avail scoring.CategorySet, budget int) (Decision, error) {
	d := Decision{Initial: hand.Values()}
	for range budget {
		held := s.Hold(hand.Values(), avail)
		d.Holds = append(d.Holds, held)
		if err := hand.Hold(held); err != nil {
			return d, fmt.Errorf("%s hold %v: %w", s.Name(), held, err)
		}
		if dice.KeepsAll(held) {
			break
		}
	}
	d.Final = hand.Values()
	d.Category = s.Choose(d.Final, avail)
	if !avail.Has(d.Category) {
		return d, fmt.Errorf("%s chose %s: %w", s.Name(), d.Category, ErrUnavailableCategory)
	}
	d.Score = scoring.Score(d.Category, d.Final)
	return d, nil
}

// Engine plays games for a single strategy.
type Engine struct {
	strategy strategy.Strategy
	logger   zerolog.Logger
}

// NewEngine returns an engine for s. Pass zerolog.Nop() to silence turn logs.
func NewEngine(s strategy.Strategy, logger zerolog.Logger) *Engine {
	return &Engine{
		strategy: s,
		logger:   logger.With().Str("strategy", s.Name()).Logger(),
	}
}

// Strategy returns the strategy the engine plays.
func (e *Engine) Strategy() strategy.Strategy {
	return e.strategy
}

// PlayTurn rolls a fresh hand, lets the strategy decide, and commits the
// result to card.
func (e *Engine) PlayTurn(hand *dice.Hand, card *Scorecard) (Decision, error) {
	hand.RollAll()
	d, err := DecideTurn(e.strategy, hand, card.Available(), RerollBudget)
	if err != nil {
		return d, err
	}
	if err := card.Commit(d.Category, d.Score); err != nil {
		return d, err
	}

	e.logger.Debug().
		Stringer("initial", d.Initial).
		Interface("holds", d.Holds).
		Stringer("final", d.Final).
		Stringer("category", d.Category).
		Int("score", d.Score).
		Msg("Turn complete")
	return d, nil
}

// PlayGame plays thirteen turns on a fresh scorecard using src for every roll.
func (e *Engine) PlayGame(src dice.Source) (Result, error) {
	card := NewScorecard()
	hand := dice.NewHandOf(src, dice.Values{})
	result := Result{
		Strategy: e.strategy.Name(),
		Turns:    make([]TurnRecord, 0, scoring.NumCategories),
	}

	for turn := 1; turn <= scoring.NumCategories; turn++ {
		d, err := e.PlayTurn(hand, card)
		if err != nil {
			return result, fmt.Errorf("turn %d: %w", turn, err)
		}
		result.Turns = append(result.Turns, TurnRecord{Turn: turn, Decision: d, Card: *card})
	}
	if !card.Complete() {
		return result, fmt.Errorf("game ended with %d open categories", card.Available().Len())
	}

	result.Total = card.Total()
	result.UpperSubtotal = card.UpperSubtotal()
	result.UpperBonus = card.UpperBonus()
	result.Scores = card.Scores()
	result.Card = card

	e.logger.Debug().
		Int("total", result.Total).
		Int("upper", result.UpperSubtotal).
		Bool("bonus", result.BonusApplied()).
		Msg("Game complete")
	return result, nil
}

// Score plays one game and returns only its total.
func (e *Engine) Score(src dice.Source) (int, error) {
	r, err := e.PlayGame(src)
	if err != nil {
		return 0, err
	}
	return r.Total, nil
}
