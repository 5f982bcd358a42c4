package scoring

import "github.com/lox/yahtzeebots/internal/dice"

// Fixed scores and the upper section bonus rule.
const (
	FullHouseScore     = 25
	SmallStraightScore = 30
	LargeStraightScore = 40
	YahtzeeScore       = 50

	UpperBonusThreshold = 63
	UpperBonus          = 35

	// MaxScore is the best possible game total without Yahtzee bonuses.
	MaxScore = 375
)

type scorer func(v dice.Values) int

// scorers is indexed by Category.
var scorers = [NumCategories]scorer{
	Ones:          upper(1),
	Twos:          upper(2),
	Threes:        upper(3),
	Fours:         upper(4),
	Fives:         upper(5),
	Sixes:         upper(6),
	ThreeOfAKind:  ofAKind(3),
	FourOfAKind:   ofAKind(4),
	FullHouse:     fullHouse,
	SmallStraight: straight(4, SmallStraightScore),
	LargeStraight: straight(5, LargeStraightScore),
	Yahtzee:       yahtzee,
	Chance:        chance,
}

// Score returns what v would earn in category c.
func Score(c Category, v dice.Values) int {
	if !c.Valid() {
		return 0
	}
	return scorers[c](v)
}

// ScoreAll scores v in every category.
func ScoreAll(v dice.Values) [NumCategories]int {
	var scores [NumCategories]int
	for c, fn := range scorers {
		scores[c] = fn(v)
	}
	return scores
}

func upper(face int) scorer {
	return func(v dice.Values) int {
		return face * v.Counts()[face]
	}
}

func ofAKind(n int) scorer {
	return func(v dice.Values) int {
		if _, count := v.MostCommon(); count >= n {
			return v.Sum()
		}
		return 0
	}
}

func fullHouse(v dice.Values) int {
	var hasPair, hasTriple bool
	for _, c := range v.Counts() {
		switch c {
		case 2:
			hasPair = true
		case 3:
			hasTriple = true
		}
	}
	if hasPair && hasTriple {
		return FullHouseScore
	}
	return 0
}

// LongestRun returns the length of the longest run of consecutive distinct
// faces in v and the highest face of that run. Ties go to the higher run.
func LongestRun(v dice.Values) (length, top int) {
	counts := v.Counts()
	run := 0
	for face := 1; face <= dice.Sides; face++ {
		if counts[face] == 0 {
			run = 0
			continue
		}
		run++
		if run >= length {
			length, top = run, face
		}
	}
	return length, top
}

func straight(n, points int) scorer {
	return func(v dice.Values) int {
		if length, _ := LongestRun(v); length >= n {
			return points
		}
		return 0
	}
}

// IsYahtzee reports whether all five dice match.
func IsYahtzee(v dice.Values) bool {
	_, count := v.MostCommon()
	return count == dice.Count
}

func yahtzee(v dice.Values) int {
	if IsYahtzee(v) {
		return YahtzeeScore
	}
	return 0
}

func chance(v dice.Values) int {
	return v.Sum()
}
