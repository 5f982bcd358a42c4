// Package scoring implements the thirteen Yahtzee scoring categories.
package scoring

import (
	"fmt"
	"math/bits"
	"strings"
)

// Category identifies one box on the scorecard.
type Category int

// Categories in canonical scorecard order.
const (
	Ones Category = iota
	Twos
	Threes
	Fours
	Fives
	Sixes
	ThreeOfAKind
	FourOfAKind
	FullHouse
	SmallStraight
	LargeStraight
	Yahtzee
	Chance

	// NumCategories is the number of boxes on a scorecard and the number of
	// turns in a game.
	NumCategories = 13
)

var categoryNames = [NumCategories]string{
	"ones",
	"twos",
	"threes",
	"fours",
	"fives",
	"sixes",
	"three_of_a_kind",
	"four_of_a_kind",
	"full_house",
	"small_straight",
	"large_straight",
	"yahtzee",
	"chance",
}

func (c Category) String() string {
	if !c.Valid() {
		return fmt.Sprintf("category(%d)", int(c))
	}
	return categoryNames[c]
}

// Valid reports whether c is one of the thirteen categories.
func (c Category) Valid() bool {
	return c >= Ones && c < NumCategories
}

// IsUpper reports whether c is in the upper section (ones through sixes).
func (c Category) IsUpper() bool {
	return c >= Ones && c <= Sixes
}

// Face returns the die face an upper category counts, or 0 for lower categories.
func (c Category) Face() int {
	if !c.IsUpper() {
		return 0
	}
	return int(c-Ones) + 1
}

// Upper returns the upper category for a die face.
func Upper(face int) Category {
	return Ones + Category(face-1)
}

// ParseCategory accepts the snake_case name of a category. Dashes and spaces
// are treated as underscores.
func ParseCategory(s string) (Category, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer("-", "_", " ", "_").Replace(norm)
	for i, name := range categoryNames {
		if name == norm {
			return Category(i), nil
		}
	}
	return 0, fmt.Errorf("unknown category %q", s)
}

// All returns every category in canonical order.
func All() []Category {
	cats := make([]Category, NumCategories)
	for i := range cats {
		cats[i] = Category(i)
	}
	return cats
}

// CategorySet is a set of categories, one bit per category.
type CategorySet uint16

// AllCategories has every category in it.
const AllCategories CategorySet = 1<<NumCategories - 1

// UpperCategories holds ones through sixes.
const UpperCategories CategorySet = 1<<(Sixes+1) - 1

// LowerCategories holds three_of_a_kind through chance.
const LowerCategories = AllCategories &^ UpperCategories

// SetOf builds a set from the given categories.
func SetOf(cats ...Category) CategorySet {
	var s CategorySet
	for _, c := range cats {
		s = s.Add(c)
	}
	return s
}

// Has reports whether c is in the set.
func (s CategorySet) Has(c Category) bool {
	return c.Valid() && s&(1<<c) != 0
}

// Add returns the set with c added.
func (s CategorySet) Add(c Category) CategorySet {
	if !c.Valid() {
		return s
	}
	return s | 1<<c
}

// Remove returns the set without c.
func (s CategorySet) Remove(c Category) CategorySet {
	if !c.Valid() {
		return s
	}
	return s &^ (1 << c)
}

// Len returns the number of categories in the set.
func (s CategorySet) Len() int {
	return bits.OnesCount16(uint16(s & AllCategories))
}

// Empty reports whether the set has no categories.
func (s CategorySet) Empty() bool {
	return s&AllCategories == 0
}

// Slice lists the set in canonical order.
func (s CategorySet) Slice() []Category {
	cats := make([]Category, 0, s.Len())
	rest := uint16(s & AllCategories)
	for rest != 0 {
		c := Category(bits.TrailingZeros16(rest))
		cats = append(cats, c)
		rest &^= 1 << c
	}
	return cats
}

// First returns the first category in canonical order.
func (s CategorySet) First() (Category, bool) {
	if s.Empty() {
		return 0, false
	}
	return Category(bits.TrailingZeros16(uint16(s & AllCategories))), true
}

func (s CategorySet) String() string {
	names := make([]string, 0, s.Len())
	for _, c := range s.Slice() {
		names = append(names, c.String())
	}
	return "{" + strings.Join(names, ",") + "}"
}
