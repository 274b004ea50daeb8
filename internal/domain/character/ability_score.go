package character

import (
	"fmt"
)

// AbilityScore is a raw score and the modifier derived from it
type AbilityScore struct {
	Score int
	Bonus int
}

// NewAbilityScore creates a score with its modifier already derived
func NewAbilityScore(score int) *AbilityScore {
	return &AbilityScore{Score: score, Bonus: modifierFor(score)}
}

func (a *AbilityScore) String() string {
	return fmt.Sprintf("%d (%+d)", a.Score, a.Bonus)
}

// modifierFor rounds down, so a score of 9 is -1 rather than 0
func modifierFor(score int) int {
	diff := score - 10
	if diff < 0 && diff%2 != 0 {
		return diff/2 - 1
	}
	return diff / 2
}
