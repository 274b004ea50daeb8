package features

import (
	"github.com/KirkDiggler/dnd-features/internal/domain/equipment"
)

// WeaponPipeline applies weapon modifiers left to right. Each modifier sees
// the weapon as changed by the ones before it.
type WeaponPipeline struct {
	modifiers []WeaponModifier
}

// NewWeaponPipeline collects the weapon modifiers among feats, keeping their order
func NewWeaponPipeline(feats ...Feature) *WeaponPipeline {
	p := &WeaponPipeline{}
	for _, f := range feats {
		if m, ok := f.(WeaponModifier); ok {
			p.Add(m)
		}
	}
	return p
}

// Add appends a modifier to the end of the pipeline
func (p *WeaponPipeline) Add(m WeaponModifier) {
	if m == nil {
		return
	}
	p.modifiers = append(p.modifiers, m)
}

// Len returns the number of modifiers
func (p *WeaponPipeline) Len() int {
	return len(p.modifiers)
}

// Apply runs every modifier against a copy of weapon. The caller's weapon
// is never changed, so repeated queries start from the same stats.
func (p *WeaponPipeline) Apply(weapon *equipment.Weapon, owner Owner) *equipment.Weapon {
	if weapon == nil {
		return nil
	}

	current := weapon.Clone()
	for _, m := range p.modifiers {
		if next := m.ModifyWeapon(current, owner); next != nil {
			current = next
		}
	}
	return current
}
