package dnd5e

import (
	"strings"

	apiEntities "github.com/fadedpez/dnd5e-api/entities"

	"github.com/KirkDiggler/dnd-features/internal/domain/equipment"
	rulebook "github.com/KirkDiggler/dnd-features/internal/domain/rulebook/dnd5e"
)

func apiSpellToSpell(input *apiEntities.Spell) *rulebook.Spell {
	spell := &rulebook.Spell{
		Key:           input.Key,
		Name:          input.Name,
		Level:         input.SpellLevel,
		CastingTime:   input.CastingTime,
		Range:         input.Range,
		Duration:      input.Duration,
		Concentration: input.Concentration,
		Ritual:        input.Ritual,
		Classes:       apiReferenceItemsToKeys(input.SpellClasses),
	}

	if input.SpellSchool != nil {
		spell.School = input.SpellSchool.Name
	}

	return spell
}

func apiWeaponToWeapon(input *apiEntities.Weapon) *equipment.Weapon {
	weapon := &equipment.Weapon{
		Base: equipment.BasicEquipment{
			Key:    input.Key,
			Name:   input.Name,
			Weight: input.Weight,
		},
		WeaponCategory: strings.ToLower(input.WeaponCategory), // Normalize to lowercase
		WeaponRange:    input.WeaponRange,
		Properties:     apiReferenceItemsToKeys(input.Properties),
	}

	if input.Damage != nil {
		weapon.DamageDice = input.Damage.DamageDice
		if input.Damage.DamageType != nil {
			weapon.DamageType = input.Damage.DamageType.Key
		}
	}

	return weapon
}

func apiReferenceItemsToKeys(input []*apiEntities.ReferenceItem) []string {
	if input == nil {
		return nil
	}

	keys := make([]string, 0, len(input))
	for _, item := range input {
		if item == nil {
			continue
		}
		keys = append(keys, item.Key)
	}
	return keys
}
