package features

import (
	"github.com/rs/zerolog/log"

	"github.com/KirkDiggler/dnd-features/internal/domain/equipment"
	"github.com/KirkDiggler/dnd-features/internal/domain/shared"
)

// SourceHexblade tags Hexblade patron features
const SourceHexblade = "Warlock (Hexblade)"

const (
	FeatureHexbladesCurse  = "hexblades_curse"
	FeatureHexWarrior      = "hex_warrior"
	FeatureAccursedSpecter = "accursed_specter"
	FeatureArmorOfHexes    = "armor_of_hexes"
	FeatureMasterOfHexes   = "master_of_hexes"
)

// NewHexbladesCurse creates the Hexblade's Curse feature
func NewHexbladesCurse() Feature {
	return &BaseFeature{
		key:    FeatureHexbladesCurse,
		name:   "Hexblade's Curse",
		source: SourceHexblade,
		description: "As a bonus action, curse a creature you can see within 30 feet for 1 minute. You add " +
			"your proficiency bonus to damage against it, crit on a 19 or 20, and regain hit points when it dies. " +
			"Once per short or long rest.",
	}
}

// HexWarrior lets the warlock attack with Charisma instead of Strength or
// Dexterity
type HexWarrior struct {
	BaseFeature
}

// NewHexWarrior creates the Hex Warrior feature
func NewHexWarrior() Feature {
	return &HexWarrior{
		BaseFeature: BaseFeature{
			key:    FeatureHexWarrior,
			name:   "Hex Warrior",
			source: SourceHexblade,
			description: "You gain proficiency with medium armor, shields and martial weapons. You can use " +
				"Charisma instead of Strength or Dexterity for attack and damage rolls with your pact weapon " +
				"or a one-handed weapon you touch after a long rest.",
		},
	}
}

// ModifyWeapon raises the attack bonus by how far the owner's Charisma
// modifier beats the ability the weapon would otherwise use. Finesse weapons
// use the better of Strength and Dexterity. A nil owner falls back to the
// bound owner.
func (f *HexWarrior) ModifyWeapon(weapon *equipment.Weapon, owner Owner) *equipment.Weapon {
	if weapon == nil {
		return nil
	}
	if owner == nil {
		owner = f.owner
	}
	if owner == nil {
		return weapon
	}

	replaced := shared.AttributeStrength
	current := owner.AbilityModifier(shared.AttributeStrength)
	if weapon.IsFinesse() {
		if dex := owner.AbilityModifier(shared.AttributeDexterity); dex > current {
			replaced, current = shared.AttributeDexterity, dex
		}
	}

	cha := owner.AbilityModifier(shared.AttributeCharisma)
	if cha <= current {
		return weapon
	}

	weapon.AttackBonus += cha - current
	log.Debug().
		Str("weapon", weapon.GetKey()).
		Int("charisma", cha).
		Str("replaced", replaced.FullName()).
		Int("replaced_modifier", current).
		Msg("hex warrior substituted charisma")
	return weapon
}

// NewAccursedSpecter creates the Accursed Specter feature
func NewAccursedSpecter() Feature {
	return &BaseFeature{
		key:    FeatureAccursedSpecter,
		name:   "Accursed Specter",
		source: SourceHexblade,
		description: "When you slay a humanoid, you can raise its spirit as a specter that serves you until " +
			"your next long rest. It gains temporary hit points equal to half your warlock level. Once per long rest.",
	}
}

// NewArmorOfHexes creates the Armor of Hexes feature
func NewArmorOfHexes() Feature {
	return &BaseFeature{
		key:         FeatureArmorOfHexes,
		name:        "Armor of Hexes",
		source:      SourceHexblade,
		description: "When the target of your Hexblade's Curse hits you, you can use your reaction to roll a d6. On a 4 or higher the attack misses.",
	}
}

// NewMasterOfHexes creates the Master of Hexes feature
func NewMasterOfHexes() Feature {
	return &BaseFeature{
		key:    FeatureMasterOfHexes,
		name:   "Master of Hexes",
		source: SourceHexblade,
		description: "When the creature cursed by your Hexblade's Curse dies, you can move the curse to another " +
			"creature within 30 feet without expending a use, as long as you are not incapacitated.",
	}
}
