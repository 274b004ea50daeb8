//go:generate mockgen -destination=mock/mock_owner.go -package=mockfeatures . Owner

// Package features models class features, pact boons and eldritch
// invocations, and how they change a character's spells, display text and
// weapon statistics once attached.
package features

import (
	"github.com/KirkDiggler/dnd-features/internal/domain/equipment"
	rulebook "github.com/KirkDiggler/dnd-features/internal/domain/rulebook/dnd5e"
	"github.com/KirkDiggler/dnd-features/internal/domain/shared"
)

// ClassWarlock is the class key owners report warlock levels under
const ClassWarlock = "warlock"

// Owner is the read-only view of a character that features need.
// Implementations must be comparable (pointer types in practice).
type Owner interface {
	// Level returns the total character level
	Level() int

	// ClassLevel returns the level in one class, 0 when the class is absent
	ClassLevel(classKey string) int

	// AbilityModifier returns the current modifier for an ability
	AbilityModifier(attr shared.Attribute) int
}

// Feature is a discrete character capability
type Feature interface {
	// Key returns the unique identifier for this feature
	Key() string

	// Name returns the display name. Names computed from owner state fail
	// with a binding error until the feature is bound.
	Name() (string, error)

	// Source names the rule category the feature comes from
	Source() string

	// Description returns the rules summary
	Description() string

	// Bind attaches the feature to its owner. Binding the same owner again
	// is a no-op, any other owner is rejected.
	Bind(owner Owner) error

	// Owner returns the bound owner
	Owner() (Owner, error)

	// SpellsKnown returns the spells this feature adds to the known list
	SpellsKnown() []*rulebook.Spell

	// SpellsPrepared returns the spells this feature adds to the prepared list
	SpellsPrepared() []*rulebook.Spell

	// AtWillSpells returns the spell keys the feature grants at will
	AtWillSpells() []string

	// Grants returns the spell entries the feature contributes, in order
	Grants() []*rulebook.Spell

	// NeedsImplementation reports that the feature is descriptive only
	NeedsImplementation() bool
}

// Factory builds a new, unbound feature instance
type Factory func() Feature

// WeaponModifier is implemented by features that change weapon statistics
// when the owner attacks
type WeaponModifier interface {
	ModifyWeapon(weapon *equipment.Weapon, owner Owner) *equipment.Weapon
}

// WeaponModifierFunc adapts a plain function to WeaponModifier
type WeaponModifierFunc func(weapon *equipment.Weapon, owner Owner) *equipment.Weapon

// ModifyWeapon calls f
func (f WeaponModifierFunc) ModifyWeapon(weapon *equipment.Weapon, owner Owner) *equipment.Weapon {
	return f(weapon, owner)
}

// Resolver is implemented by selectors that stand in for the feature a
// player chose. Callers attach the resolved feature, never the selector.
type Resolver interface {
	Feature
	ResolveChoice() (Feature, error)
}
