// Package game runs Yahtzee turns and games for a single strategy.
//
// A Scorecard records one score per category. An Engine drives a Strategy
// through thirteen turns: roll five dice, reroll up to RerollBudget times
// according to Strategy.Hold, then commit the category Strategy.Choose picks.
//
// The Engine owns every mutation. Strategies only ever see dice.Values
// snapshots and the set of open categories, so the same dice sequence always
// produces the same game:
//
//	src := randutil.New(42)
//	engine := game.NewEngine(strategy.NewYahtzeeFocus(), zerolog.Nop())
//	result, err := engine.PlayGame(src)
//
// A strategy that asks for an impossible reroll or an unavailable category is
// a bug, and PlayGame reports it as an error wrapping dice.ErrInvalidPosition
// or ErrUnavailableCategory.
package game
