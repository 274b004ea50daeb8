package equipment

const (
	// WeaponKeyShortsword is the key for shortsword weapons
	WeaponKeyShortsword = "shortsword"

	PropertyFinesse    = "finesse"
	PropertyHeavy      = "heavy"
	PropertyLight      = "light"
	PropertyTwoHanded  = "two-handed"
	PropertyVersatile  = "versatile"
	PropertyThrown     = "thrown"
	PropertyAmmunition = "ammunition"
)

// Weapon is a weapon archetype plus the combat numbers that features adjust
// when the owner attacks with it.
type Weapon struct {
	Base           BasicEquipment `json:"base"`
	DamageDice     string         `json:"damage_dice"`
	DamageType     string         `json:"damage_type"`
	WeaponCategory string         `json:"weapon_category"`
	WeaponRange    string         `json:"weapon_range"`
	Properties     []string       `json:"properties"`

	AttackBonus int `json:"attack_bonus"`
	BonusDamage int `json:"bonus_damage"`
	MagicBonus  int `json:"magic_bonus"`
}

func (w *Weapon) IsFinesse() bool {
	return w.HasProperty(PropertyFinesse)
}

// IsMagic reports whether the weapon carries an enchantment bonus
func (w *Weapon) IsMagic() bool {
	return w.MagicBonus > 0
}

// HasProperty checks if the weapon has a specific property
func (w *Weapon) HasProperty(prop string) bool {
	for _, p := range w.Properties {
		if p == prop {
			return true
		}
	}

	return false
}

func (w *Weapon) GetName() string {
	return w.Base.Name
}

func (w *Weapon) GetKey() string {
	return w.Base.Key
}

// Clone returns an independent copy, including the property list
func (w *Weapon) Clone() *Weapon {
	if w == nil {
		return nil
	}

	c := *w
	if w.Properties != nil {
		c.Properties = append([]string(nil), w.Properties...)
	}
	return &c
}
