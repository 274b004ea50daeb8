package features_test

import (
	"github.com/KirkDiggler/dnd-features/internal/domain/shared"
)

type stubOwner struct {
	classes   map[string]int
	modifiers map[shared.Attribute]int
}

func newStubOwner(warlockLevel int) *stubOwner {
	return &stubOwner{
		classes:   map[string]int{"warlock": warlockLevel},
		modifiers: map[shared.Attribute]int{},
	}
}

func (o *stubOwner) with(attr shared.Attribute, mod int) *stubOwner {
	o.modifiers[attr] = mod
	return o
}

func (o *stubOwner) Level() int {
	total := 0
	for _, lvl := range o.classes {
		total += lvl
	}
	return total
}

func (o *stubOwner) ClassLevel(classKey string) int {
	return o.classes[classKey]
}

func (o *stubOwner) AbilityModifier(attr shared.Attribute) int {
	return o.modifiers[attr]
}
