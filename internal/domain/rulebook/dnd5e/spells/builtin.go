package spells

import (
	rulebook "github.com/KirkDiggler/dnd-features/internal/domain/rulebook/dnd5e"
	"github.com/KirkDiggler/dnd-features/internal/domain/shared"
)

// Keys follow the dnd5eapi.co index so remote data can be merged in.
const (
	KeyAlterSelf        = "alter-self"
	KeyArcaneEye        = "arcane-eye"
	KeyDetectMagic      = "detect-magic"
	KeyDisguiseSelf     = "disguise-self"
	KeyFalseLife        = "false-life"
	KeyFindFamiliar     = "find-familiar"
	KeyInvisibility     = "invisibility"
	KeyJump             = "jump"
	KeyLevitate         = "levitate"
	KeyMageArmor        = "mage-armor"
	KeySilentImage      = "silent-image"
	KeySpeakWithAnimals = "speak-with-animals"
	KeySpeakWithDead    = "speak-with-dead"
)

func vs() []shared.ComponentType {
	return []shared.ComponentType{shared.ComponentVerbal, shared.ComponentSomatic}
}

func vsm() []shared.ComponentType {
	return []shared.ComponentType{shared.ComponentVerbal, shared.ComponentSomatic, shared.ComponentMaterial}
}

// Builtin returns the spells referenced by the warlock feature catalog
func Builtin() []*rulebook.Spell {
	return []*rulebook.Spell{
		{
			Key: KeyAlterSelf, Name: "Alter Self", Level: 2, School: "Transmutation",
			CastingTime: "1 action", Range: "Self", Components: vs(),
			Duration: "Up to 1 hour", Concentration: true,
			Classes: []string{"sorcerer", "wizard"},
		},
		{
			Key: KeyArcaneEye, Name: "Arcane Eye", Level: 4, School: "Divination",
			CastingTime: "1 action", Range: "30 feet", Components: vsm(),
			Duration: "Up to 1 hour", Concentration: true,
			Classes: []string{"cleric", "wizard"},
		},
		{
			Key: KeyDetectMagic, Name: "Detect Magic", Level: 1, School: "Divination",
			CastingTime: "1 action", Range: "Self", Components: vs(),
			Duration: "Up to 10 minutes", Concentration: true, Ritual: true,
			Classes: []string{"bard", "cleric", "druid", "paladin", "ranger", "sorcerer", "wizard"},
		},
		{
			Key: KeyDisguiseSelf, Name: "Disguise Self", Level: 1, School: "Illusion",
			CastingTime: "1 action", Range: "Self", Components: vs(),
			Duration: "1 hour",
			Classes:  []string{"bard", "sorcerer", "wizard"},
		},
		{
			Key: KeyFalseLife, Name: "False Life", Level: 1, School: "Necromancy",
			CastingTime: "1 action", Range: "Self", Components: vsm(),
			Duration: "1 hour",
			Classes:  []string{"sorcerer", "wizard"},
		},
		{
			Key: KeyFindFamiliar, Name: "Find Familiar", Level: 1, School: "Conjuration",
			CastingTime: "1 hour", Range: "10 feet", Components: vsm(),
			Duration: "Instantaneous", Ritual: true,
			Classes: []string{"wizard"},
		},
		{
			Key: KeyInvisibility, Name: "Invisibility", Level: 2, School: "Illusion",
			CastingTime: "1 action", Range: "Touch", Components: vsm(),
			Duration: "Up to 1 hour", Concentration: true,
			Classes: []string{"bard", "sorcerer", "warlock", "wizard"},
		},
		{
			Key: KeyJump, Name: "Jump", Level: 1, School: "Transmutation",
			CastingTime: "1 action", Range: "Touch", Components: vsm(),
			Duration: "1 minute",
			Classes:  []string{"druid", "ranger", "sorcerer", "wizard"},
		},
		{
			Key: KeyLevitate, Name: "Levitate", Level: 2, School: "Transmutation",
			CastingTime: "1 action", Range: "60 feet", Components: vsm(),
			Duration: "Up to 10 minutes", Concentration: true,
			Classes: []string{"sorcerer", "wizard"},
		},
		{
			Key: KeyMageArmor, Name: "Mage Armor", Level: 1, School: "Abjuration",
			CastingTime: "1 action", Range: "Touch", Components: vsm(),
			Duration: "8 hours",
			Classes:  []string{"sorcerer", "wizard"},
		},
		{
			Key: KeySilentImage, Name: "Silent Image", Level: 1, School: "Illusion",
			CastingTime: "1 action", Range: "60 feet", Components: vsm(),
			Duration: "Up to 10 minutes", Concentration: true,
			Classes: []string{"bard", "sorcerer", "wizard"},
		},
		{
			Key: KeySpeakWithAnimals, Name: "Speak with Animals", Level: 1, School: "Divination",
			CastingTime: "1 action", Range: "Self", Components: vs(),
			Duration: "10 minutes", Ritual: true,
			Classes: []string{"bard", "druid", "ranger"},
		},
		{
			Key: KeySpeakWithDead, Name: "Speak with Dead", Level: 3, School: "Necromancy",
			CastingTime: "1 action", Range: "10 feet", Components: vsm(),
			Duration: "10 minutes",
			Classes:  []string{"bard", "cleric"},
		},
	}
}
