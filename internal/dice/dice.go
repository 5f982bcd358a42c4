// Package dice models the five six-sided dice rolled on every Yahtzee turn.
package dice

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	// Count is the number of dice in a hand.
	Count = 5
	// Sides is the number of faces on each die.
	Sides = 6
)

// ErrInvalidPosition is returned when a reroll names a die outside [0, Count).
var ErrInvalidPosition = errors.New("invalid dice position")

// ErrInvalidFace is returned when parsing a face outside [1, Sides].
var ErrInvalidFace = errors.New("invalid die face")

// Source is the randomness behind every roll. *rand.Rand from math/rand/v2
// satisfies it, as do the sources in internal/randutil.
type Source interface {
	// IntN returns a value in [0, n).
	IntN(n int) int
}

// Values is a snapshot of the five faces in a hand.
type Values [Count]int

// Roll returns n independent uniform faces.
func Roll(src Source, n int) []int {
	faces := make([]int, n)
	for i := range faces {
		faces[i] = 1 + src.IntN(Sides)
	}
	return faces
}

// Counts returns how many dice show each face. Index 0 is unused.
func (v Values) Counts() [Sides + 1]int {
	var counts [Sides + 1]int
	for _, face := range v {
		counts[face]++
	}
	return counts
}

// Sum adds up all five faces.
func (v Values) Sum() int {
	total := 0
	for _, face := range v {
		total += face
	}
	return total
}

// Positions returns the positions showing face, in ascending order.
func (v Values) Positions(face int) []int {
	var positions []int
	for i, f := range v {
		if f == face {
			positions = append(positions, i)
		}
	}
	return positions
}

// MostCommon returns the face with the highest count and that count.
// Ties go to the higher face.
func (v Values) MostCommon() (face, count int) {
	counts := v.Counts()
	for f := Sides; f >= 1; f-- {
		if counts[f] > count {
			face, count = f, counts[f]
		}
	}
	return face, count
}

func (v Values) String() string {
	parts := make([]string, len(v))
	for i, face := range v {
		parts[i] = strconv.Itoa(face)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Parse reads five faces separated by commas or spaces, e.g. "1,1,1,2,3".
func Parse(s string) (Values, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '[' || r == ']'
	})
	if len(fields) != Count {
		return Values{}, fmt.Errorf("expected %d dice, got %d", Count, len(fields))
	}
	var v Values
	for i, field := range fields {
		face, err := strconv.Atoi(field)
		if err != nil {
			return Values{}, fmt.Errorf("die %d: %w", i+1, err)
		}
		if face < 1 || face > Sides {
			return Values{}, fmt.Errorf("die %d: %w: %d", i+1, ErrInvalidFace, face)
		}
		v[i] = face
	}
	return v, nil
}
