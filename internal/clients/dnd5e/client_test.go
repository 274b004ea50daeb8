package dnd5e

import (
	"errors"
	"testing"

	apiDnd5e "github.com/fadedpez/dnd5e-api/clients/dnd5e"
	apiEntities "github.com/fadedpez/dnd5e-api/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dnderr "github.com/KirkDiggler/dnd-features/internal/errors"
)

type fakeAPI struct {
	spells    map[string]*apiEntities.Spell
	lists     map[string][]*apiEntities.ReferenceItem
	equipment map[string]apiDnd5e.EquipmentInterface
	err       error
}

func (f *fakeAPI) GetSpell(key string) (*apiEntities.Spell, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.spells[key], nil
}

func (f *fakeAPI) ListSpells(input *apiDnd5e.ListSpellsInput) ([]*apiEntities.ReferenceItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.lists[input.Class], nil
}

func (f *fakeAPI) GetEquipment(key string) (apiDnd5e.EquipmentInterface, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.equipment[key], nil
}

func TestGetSpell(t *testing.T) {
	api := &fakeAPI{spells: map[string]*apiEntities.Spell{
		"hex": {
			Key:           "hex",
			Name:          "Hex",
			SpellLevel:    1,
			CastingTime:   "1 bonus action",
			Range:         "90 feet",
			Duration:      "Up to 1 hour",
			Concentration: true,
			SpellSchool:   &apiEntities.ReferenceItem{Key: "enchantment", Name: "Enchantment"},
			SpellClasses:  []*apiEntities.ReferenceItem{{Key: "warlock", Name: "Warlock"}},
		},
	}}
	c := &client{client: api}

	spell, err := c.GetSpell("hex")
	require.NoError(t, err)
	assert.Equal(t, "Hex", spell.Name)
	assert.Equal(t, 1, spell.Level)
	assert.Equal(t, "Enchantment", spell.School)
	assert.True(t, spell.Concentration)
	assert.Equal(t, []string{"warlock"}, spell.Classes)
	assert.Nil(t, spell.Components)

	_, err = c.GetSpell("wish")
	assert.True(t, dnderr.IsNotFound(err))

	_, err = c.GetSpell("")
	assert.True(t, dnderr.IsInvalidArgument(err))
}

func TestGetSpellUpstreamError(t *testing.T) {
	c := &client{client: &fakeAPI{err: errors.New("503 service unavailable")}}

	_, err := c.GetSpell("hex")
	assert.Equal(t, dnderr.CodeUnavailable, dnderr.GetCode(err))
	assert.Equal(t, "hex", dnderr.GetMeta(err)["spell"])

	_, err = c.ListSpellKeysByClass("warlock")
	assert.Equal(t, dnderr.CodeUnavailable, dnderr.GetCode(err))

	_, err = c.GetWeapon("longsword")
	assert.Equal(t, dnderr.CodeUnavailable, dnderr.GetCode(err))
}

func TestListSpellKeysByClass(t *testing.T) {
	c := &client{client: &fakeAPI{lists: map[string][]*apiEntities.ReferenceItem{
		"warlock": {{Key: "hex"}, nil, {Key: "eldritch-blast"}, {Key: ""}},
	}}}

	keys, err := c.ListSpellKeysByClass("warlock")
	require.NoError(t, err)
	assert.Equal(t, []string{"hex", "eldritch-blast"}, keys)
}

func TestGetWeapon(t *testing.T) {
	api := &fakeAPI{equipment: map[string]apiDnd5e.EquipmentInterface{
		"rapier": &apiEntities.Weapon{
			Key:            "rapier",
			Name:           "Rapier",
			Weight:         2,
			WeaponCategory: "Martial",
			WeaponRange:    "Melee",
			Properties:     []*apiEntities.ReferenceItem{{Key: "finesse", Name: "Finesse"}},
			Damage: &apiEntities.Damage{
				DamageDice: "1d8",
				DamageType: &apiEntities.ReferenceItem{Key: "piercing", Name: "Piercing"},
			},
		},
		"chain-mail": &apiEntities.Armor{Key: "chain-mail", Name: "Chain Mail"},
	}}
	c := &client{client: api}

	weapon, err := c.GetWeapon("rapier")
	require.NoError(t, err)
	assert.Equal(t, "rapier", weapon.GetKey())
	assert.Equal(t, "martial", weapon.WeaponCategory)
	assert.Equal(t, "1d8", weapon.DamageDice)
	assert.Equal(t, "piercing", weapon.DamageType)
	assert.True(t, weapon.IsFinesse())
	assert.Equal(t, "Melee", weapon.WeaponRange)

	_, err = c.GetWeapon("chain-mail")
	assert.True(t, dnderr.IsNotFound(err))

	_, err = c.GetWeapon("vorpal-sword")
	assert.True(t, dnderr.IsNotFound(err))
}
