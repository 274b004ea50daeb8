package features

import (
	rulebook "github.com/KirkDiggler/dnd-features/internal/domain/rulebook/dnd5e"
	"github.com/KirkDiggler/dnd-features/internal/domain/shared"
)

// SourceInvocations tags every eldritch invocation
const SourceInvocations = "Warlock (Eldritch Invocations)"

// Invocation is an eldritch invocation. Invocations with at-will spells
// add them to the owner's known and prepared spells when bound.
type Invocation struct {
	BaseFeature
	prerequisite string
}

// Prerequisite returns the rules prerequisite text, empty when there is none.
// It is informational and never checked.
func (i *Invocation) Prerequisite() string {
	return i.prerequisite
}

func newInvocation(key, name, prerequisite, description string, atWill ...string) *Invocation {
	return &Invocation{
		BaseFeature: BaseFeature{
			key:          key,
			name:         name,
			source:       SourceInvocations,
			description:  description,
			atWillSpells: atWill,
		},
		prerequisite: prerequisite,
	}
}

// castAtWill rewrites a spell so it is cast without a slot or material components
func castAtWill(spell *rulebook.Spell) *rulebook.Spell {
	spell.Level = 0
	spell.RemoveComponent(shared.ComponentMaterial)
	return spell
}
