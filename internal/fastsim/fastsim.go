// Package fastsim plays reduced-fidelity Yahtzee games.
//
// The scripts here skip the scorecard. Each turn chases a fixed pattern and
// adds a score to a running total, with a small set of labels standing in for
// the categories that may only be awarded once. They are quick estimates for
// large Monte-Carlo runs and their totals are not comparable to full games.
package fastsim

import (
	"fmt"
	"strings"

	"github.com/lox/yahtzeebots/internal/dice"
	"github.com/lox/yahtzeebots/internal/scoring"
)

const (
	turns       = scoring.NumCategories
	upperTurns  = dice.Sides
	fillerTurns = turns - upperTurns
	rerolls     = 2

	// maxUpper is five of every face in the upper section.
	maxUpper = (1 + 2 + 3 + 4 + 5 + 6) * dice.Count
)

// Script is one reduced-fidelity game plan.
type Script interface {
	Name() string
	// PlayGame plays a whole game and returns its total.
	PlayGame(src dice.Source) (int, error)
	// Bound is the highest total the script can produce.
	Bound() int
}

// Used records which once-per-game awards have been taken.
type Used map[string]bool

// Award marks label as used and reports whether it was still free.
func (u Used) Award(label string) bool {
	if u[label] {
		return false
	}
	u[label] = true
	return true
}

// keepFunc picks the positions to hold before a reroll.
type keepFunc func(v dice.Values) []int

// playTurn rolls five dice and rerolls twice, keeping what keep selects.
func playTurn(src dice.Source, keep keepFunc) (dice.Values, error) {
	hand := dice.NewHand(src)
	for range rerolls {
		if err := hand.Hold(keep(hand.Values())); err != nil {
			return hand.Values(), err
		}
	}
	return hand.Values(), nil
}

func keepFace(face int) keepFunc {
	return func(v dice.Values) []int { return v.Positions(face) }
}

func keepMostCommon(v dice.Values) []int {
	face, _ := v.MostCommon()
	return v.Positions(face)
}

// upperTargets plays the six upper turns, one per face, and returns the
// target-face total with the upper bonus applied once.
func upperTargets(src dice.Source) (int, error) {
	upper := 0
	for face := 1; face <= dice.Sides; face++ {
		v, err := playTurn(src, keepFace(face))
		if err != nil {
			return 0, fmt.Errorf("upper turn %d: %w", face, err)
		}
		upper += scoring.Score(scoring.Upper(face), v)
	}
	if upper >= scoring.UpperBonusThreshold {
		upper += scoring.UpperBonus
	}
	return upper, nil
}

var scripts = []Script{
	DiceDriven{},
	UpperScript{},
	YahtzeeScript{},
	Hybrid{},
}

// Names lists the available scripts.
func Names() []string {
	names := make([]string, len(scripts))
	for i, s := range scripts {
		names[i] = s.Name()
	}
	return names
}

// New returns the named script.
func New(name string) (Script, error) {
	for _, s := range scripts {
		if s.Name() == name {
			return s, nil
		}
	}
	return nil, fmt.Errorf("unknown fast script %q (choose from %s)", name, strings.Join(Names(), ", "))
}
