package dice

import "fmt"

// Hand is the five dice in play during a turn. It owns its random source;
// strategies only ever see Values snapshots.
type Hand struct {
	values Values
	src    Source
}

// NewHand rolls five fresh dice.
func NewHand(src Source) *Hand {
	h := &Hand{src: src}
	h.RollAll()
	return h
}

// NewHandOf builds a hand with known faces. Later rerolls draw from src.
func NewHandOf(src Source, v Values) *Hand {
	return &Hand{values: v, src: src}
}

// Values returns a copy of the current faces.
func (h *Hand) Values() Values {
	return h.values
}

// RollAll rerolls every die.
func (h *Hand) RollAll() {
	copy(h.values[:], Roll(h.src, Count))
}

// Reroll replaces the dice at the given positions with fresh draws and leaves
// the rest untouched. Positions may repeat; a repeated position is rolled once.
// Nothing changes if any position is out of range.
func (h *Hand) Reroll(positions ...int) error {
	var selected [Count]bool
	for _, p := range positions {
		if p < 0 || p >= Count {
			return fmt.Errorf("reroll position %d: %w", p, ErrInvalidPosition)
		}
		selected[p] = true
	}
	for i, roll := range selected {
		if roll {
			h.values[i] = 1 + h.src.IntN(Sides)
		}
	}
	return nil
}

// Hold rerolls every die not listed in held.
func (h *Hand) Hold(held []int) error {
	var keep [Count]bool
	for _, p := range held {
		if p < 0 || p >= Count {
			return fmt.Errorf("hold position %d: %w", p, ErrInvalidPosition)
		}
		keep[p] = true
	}
	reroll := make([]int, 0, Count)
	for i, k := range keep {
		if !k {
			reroll = append(reroll, i)
		}
	}
	return h.Reroll(reroll...)
}

// KeepsAll reports whether held names every position at least once.
// Out-of-range positions are ignored.
func KeepsAll(held []int) bool {
	var keep [Count]bool
	n := 0
	for _, p := range held {
		if p >= 0 && p < Count && !keep[p] {
			keep[p] = true
			n++
		}
	}
	return n == Count
}
