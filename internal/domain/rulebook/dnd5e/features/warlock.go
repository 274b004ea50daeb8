package features

import (
	"github.com/KirkDiggler/dnd-features/internal/domain/rulebook/dnd5e/spells"
)

// SourceWarlock tags core warlock class features
const SourceWarlock = "Warlock"

const (
	FeatureEldritchInvocations = "eldritch_invocations"
	FeaturePactBoon            = "pact_boon"
	FeaturePactOfTheChain      = "pact_of_the_chain"
	FeaturePactOfTheBlade      = "pact_of_the_blade"
	FeaturePactOfTheTome       = "pact_of_the_tome"
	FeatureMysticArcanum       = "mystic_arcanum"
	FeatureEldritchMaster      = "eldritch_master"
)

// NewEldritchInvocations creates the class feature that unlocks invocations
func NewEldritchInvocations() Feature {
	return &BaseFeature{
		key:    FeatureEldritchInvocations,
		name:   "Eldritch Invocations",
		source: SourceWarlock,
		description: "Fragments of forbidden knowledge grant you lasting magical abilities. You learn two " +
			"invocations at 2nd level and more as you gain warlock levels, and can swap one when you level up.",
	}
}

// NewMysticArcanum creates the Mystic Arcanum feature
func NewMysticArcanum() Feature {
	return &BaseFeature{
		key:    FeatureMysticArcanum,
		name:   "Mystic Arcanum",
		source: SourceWarlock,
		description: "Your patron grants a 6th-level warlock spell you can cast once without a spell slot, " +
			"regaining the use after a long rest. You gain a 7th, 8th and 9th-level arcanum at higher levels.",
	}
}

// NewEldritchMaster creates the Eldritch Master feature
func NewEldritchMaster() Feature {
	return &BaseFeature{
		key:         FeatureEldritchMaster,
		name:        "Eldritch Master",
		source:      SourceWarlock,
		description: "You can spend 1 minute entreating your patron to regain all expended Pact Magic spell slots. Once per long rest.",
	}
}

// PactOfTheChain teaches find familiar and allows special familiar forms
type PactOfTheChain struct {
	BaseFeature
}

// NewPactOfTheChain creates the Pact of the Chain boon
func NewPactOfTheChain() Feature {
	return &PactOfTheChain{
		BaseFeature: BaseFeature{
			key:    FeaturePactOfTheChain,
			name:   "Pact of the Chain",
			source: SourceWarlock,
			description: "You learn find familiar and can cast it as a ritual. Your familiar can take the form " +
				"of an imp, pseudodragon, quasit or sprite, and can attack with its reaction when you forgo one of your attacks.",
			grantedSpells: []string{spells.KeyFindFamiliar},
		},
	}
}

// PactOfTheBlade lets the warlock summon a pact weapon
type PactOfTheBlade struct {
	BaseFeature
}

// NewPactOfTheBlade creates the Pact of the Blade boon
func NewPactOfTheBlade() Feature {
	return &PactOfTheBlade{
		BaseFeature: BaseFeature{
			key:    FeaturePactOfTheBlade,
			name:   "Pact of the Blade",
			source: SourceWarlock,
			description: "As an action you create a melee pact weapon of your chosen form, and are proficient " +
				"with it. You can also bind a magic weapon to yourself through a one-hour ritual.",
		},
	}
}

// PactOfTheTome grants a Book of Shadows
type PactOfTheTome struct {
	BaseFeature
}

// NewPactOfTheTome creates the Pact of the Tome boon
func NewPactOfTheTome() Feature {
	return &PactOfTheTome{
		BaseFeature: BaseFeature{
			key:    FeaturePactOfTheTome,
			name:   "Pact of the Tome",
			source: SourceWarlock,
			description: "Your patron gives you a Book of Shadows holding three cantrips from any class's " +
				"spell list. They count as warlock spells and you can cast them at will while you have the book.",
		},
	}
}

// NewPactBoon creates the selector for the warlock's 3rd-level boon. An
// empty choice leaves it unchosen.
func NewPactBoon(choice string) (*Selector, error) {
	s := newSelector(FeaturePactBoon, "Pact Boon (Select One)", SourceWarlock,
		"At 3rd level your patron bestows a gift. Choose the Pact of the Chain, the Blade or the Tome.",
		Option{Aliases: []string{"chain", "pact of the chain"}, New: NewPactOfTheChain},
		Option{Aliases: []string{"blade", "pact of the blade"}, New: NewPactOfTheBlade},
		Option{Aliases: []string{"tome", "pact of the tome"}, New: NewPactOfTheTome},
	)
	if choice == "" {
		return s, nil
	}
	if err := s.Choose(choice); err != nil {
		return nil, err
	}
	return s, nil
}
