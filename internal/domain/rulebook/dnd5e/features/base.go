package features

import (
	rulebook "github.com/KirkDiggler/dnd-features/internal/domain/rulebook/dnd5e"
	"github.com/KirkDiggler/dnd-features/internal/domain/rulebook/dnd5e/spells"
	dnderr "github.com/KirkDiggler/dnd-features/internal/errors"
)

// BaseFeature provides common feature functionality. Concrete features
// embed it and override what they compute differently.
type BaseFeature struct {
	key                 string
	name                string
	source              string
	description         string
	needsImplementation bool

	// grantedSpells are added to known and prepared unchanged, atWillSpells
	// are rewritten as at-will casts first
	grantedSpells []string
	atWillSpells  []string
	spellSource   spells.Source

	owner          Owner
	spellsKnown    []*rulebook.Spell
	spellsPrepared []*rulebook.Spell
}

// Key returns the feature's unique identifier
func (f *BaseFeature) Key() string {
	return f.key
}

// Name returns the feature's fixed display name
func (f *BaseFeature) Name() (string, error) {
	return f.name, nil
}

// Source returns the rule category tag
func (f *BaseFeature) Source() string {
	return f.source
}

// Description returns the feature's description
func (f *BaseFeature) Description() string {
	return f.description
}

// NeedsImplementation reports whether the feature is descriptive only
func (f *BaseFeature) NeedsImplementation() bool {
	return f.needsImplementation
}

// AtWillSpells returns a copy of the at-will spell keys
func (f *BaseFeature) AtWillSpells() []string {
	return append([]string(nil), f.atWillSpells...)
}

// SpellsKnown returns the spells added to the owner's known list
func (f *BaseFeature) SpellsKnown() []*rulebook.Spell {
	return append([]*rulebook.Spell(nil), f.spellsKnown...)
}

// SpellsPrepared returns the spells added to the owner's prepared list
func (f *BaseFeature) SpellsPrepared() []*rulebook.Spell {
	return append([]*rulebook.Spell(nil), f.spellsPrepared...)
}

// Grants returns the spell entries this feature contributes
func (f *BaseFeature) Grants() []*rulebook.Spell {
	return f.SpellsKnown()
}

type spellSourceSetter interface {
	SetSpellSource(src spells.Source)
}

// SetSpellSource replaces the catalog spells are drawn from. It has no
// effect once the feature is bound.
func (f *BaseFeature) SetSpellSource(src spells.Source) {
	if f.owner != nil || src == nil {
		return
	}
	f.spellSource = src
}

// Owner returns the bound owner or a binding error
func (f *BaseFeature) Owner() (Owner, error) {
	if f.owner == nil {
		return nil, dnderr.Bindingf("feature %s has no owner", f.key).
			WithMeta("feature", f.key)
	}
	return f.owner, nil
}

// Bind attaches the feature to owner and materializes its spell grants.
// All spell lookups happen before the owner is recorded, so a failed bind
// leaves the feature untouched.
func (f *BaseFeature) Bind(owner Owner) error {
	if owner == nil {
		return dnderr.Bindingf("feature %s cannot bind a nil owner", f.key).
			WithMeta("feature", f.key)
	}

	if f.owner != nil {
		if f.owner == owner {
			return nil
		}
		return dnderr.Bindingf("feature %s is already bound to another owner", f.key).
			WithMeta("feature", f.key)
	}

	granted := make([]*rulebook.Spell, 0, len(f.grantedSpells)+len(f.atWillSpells))
	for _, key := range f.grantedSpells {
		spell, err := f.spells().Spell(key)
		if err != nil {
			return dnderr.Wrapf(err, "feature %s failed to grant spell %s", f.key, key)
		}
		granted = append(granted, spell)
	}
	for _, key := range f.atWillSpells {
		spell, err := f.spells().Spell(key)
		if err != nil {
			return dnderr.Wrapf(err, "feature %s failed to grant at-will spell %s", f.key, key)
		}
		granted = append(granted, castAtWill(spell))
	}

	f.owner = owner
	f.spellsKnown = append(f.spellsKnown, granted...)
	f.spellsPrepared = append(f.spellsPrepared, granted...)
	return nil
}

func (f *BaseFeature) spells() spells.Source {
	if f.spellSource == nil {
		return spells.Default()
	}
	return f.spellSource
}
