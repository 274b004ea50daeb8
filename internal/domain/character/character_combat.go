package character

import (
	"github.com/KirkDiggler/dnd-features/internal/domain/equipment"
	"github.com/KirkDiggler/dnd-features/internal/domain/rulebook/dnd5e/features"
	"github.com/KirkDiggler/dnd-features/internal/domain/shared"
	dnderr "github.com/KirkDiggler/dnd-features/internal/errors"
)

// Equip makes weapon the character's active weapon. The character keeps
// its own copy.
func (c *Character) Equip(weapon *equipment.Weapon) {
	c.EquippedWeapon = weapon.Clone()
}

// WeaponStats runs weapon through every attached weapon modifier, in
// attachment order, and returns the result. A nil weapon means the equipped
// one. The input is never changed.
func (c *Character) WeaponStats(weapon *equipment.Weapon) (*equipment.Weapon, error) {
	if weapon == nil {
		weapon = c.EquippedWeapon
	}
	if weapon == nil {
		return nil, dnderr.NotFound("no weapon equipped").
			WithMeta("character_id", c.ID)
	}

	return features.NewWeaponPipeline(c.Features()...).Apply(weapon, c), nil
}

// AttackModifier is the ability modifier the weapon uses plus every attack
// bonus the attached features grant
func (c *Character) AttackModifier(weapon *equipment.Weapon) (int, error) {
	stats, err := c.WeaponStats(weapon)
	if err != nil {
		return 0, err
	}
	return c.weaponAbilityModifier(stats) + stats.AttackBonus, nil
}

// DamageModifier is the ability modifier the weapon uses plus bonus damage
func (c *Character) DamageModifier(weapon *equipment.Weapon) (int, error) {
	stats, err := c.WeaponStats(weapon)
	if err != nil {
		return 0, err
	}
	return c.weaponAbilityModifier(stats) + stats.BonusDamage, nil
}

// weaponAbilityModifier is the ability the weapon modifiers measure against:
// the better of Strength and Dexterity for finesse weapons, Strength otherwise
func (c *Character) weaponAbilityModifier(weapon *equipment.Weapon) int {
	str := c.AbilityModifier(shared.AttributeStrength)
	if !weapon.IsFinesse() {
		return str
	}
	if dex := c.AbilityModifier(shared.AttributeDexterity); dex > str {
		return dex
	}
	return str
}
