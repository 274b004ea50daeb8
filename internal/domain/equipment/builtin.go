package equipment

import (
	"sort"

	dnderr "github.com/KirkDiggler/dnd-features/internal/errors"
)

var builtinWeapons = map[string]*Weapon{
	"dagger": {
		Base:           BasicEquipment{Key: "dagger", Name: "Dagger", Weight: 1},
		DamageDice:     "1d4",
		DamageType:     "piercing",
		WeaponCategory: "simple",
		WeaponRange:    "Melee",
		Properties:     []string{PropertyFinesse, PropertyLight, PropertyThrown},
	},
	"quarterstaff": {
		Base:           BasicEquipment{Key: "quarterstaff", Name: "Quarterstaff", Weight: 4},
		DamageDice:     "1d6",
		DamageType:     "bludgeoning",
		WeaponCategory: "simple",
		WeaponRange:    "Melee",
		Properties:     []string{PropertyVersatile},
	},
	WeaponKeyShortsword: {
		Base:           BasicEquipment{Key: WeaponKeyShortsword, Name: "Shortsword", Weight: 2},
		DamageDice:     "1d6",
		DamageType:     "piercing",
		WeaponCategory: "martial",
		WeaponRange:    "Melee",
		Properties:     []string{PropertyFinesse, PropertyLight},
	},
	"rapier": {
		Base:           BasicEquipment{Key: "rapier", Name: "Rapier", Weight: 2},
		DamageDice:     "1d8",
		DamageType:     "piercing",
		WeaponCategory: "martial",
		WeaponRange:    "Melee",
		Properties:     []string{PropertyFinesse},
	},
	"longsword": {
		Base:           BasicEquipment{Key: "longsword", Name: "Longsword", Weight: 3},
		DamageDice:     "1d8",
		DamageType:     "slashing",
		WeaponCategory: "martial",
		WeaponRange:    "Melee",
		Properties:     []string{PropertyVersatile},
	},
	"greatsword": {
		Base:           BasicEquipment{Key: "greatsword", Name: "Greatsword", Weight: 6},
		DamageDice:     "2d6",
		DamageType:     "slashing",
		WeaponCategory: "martial",
		WeaponRange:    "Melee",
		Properties:     []string{PropertyHeavy, PropertyTwoHanded},
	},
	"longbow": {
		Base:           BasicEquipment{Key: "longbow", Name: "Longbow", Weight: 2},
		DamageDice:     "1d8",
		DamageType:     "piercing",
		WeaponCategory: "martial",
		WeaponRange:    "Ranged",
		Properties:     []string{PropertyAmmunition, PropertyHeavy, PropertyTwoHanded},
	},
}

// Builtin returns a fresh copy of a built-in weapon archetype
func Builtin(key string) (*Weapon, error) {
	w, ok := builtinWeapons[key]
	if !ok {
		return nil, dnderr.NotFoundf("weapon %s not found", key).
			WithMeta("weapon", key)
	}
	return w.Clone(), nil
}

// BuiltinKeys lists the built-in weapon keys in sorted order
func BuiltinKeys() []string {
	keys := make([]string, 0, len(builtinWeapons))
	for k := range builtinWeapons {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
