package character_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dnd-features/internal/domain/character"
	"github.com/KirkDiggler/dnd-features/internal/domain/equipment"
	"github.com/KirkDiggler/dnd-features/internal/domain/rulebook/dnd5e/features"
	"github.com/KirkDiggler/dnd-features/internal/domain/shared"
	dnderr "github.com/KirkDiggler/dnd-features/internal/errors"
)

func newHexblade(t *testing.T, str, dex, cha int) *character.Character {
	c := character.NewCharacter("Hexblade")
	require.NoError(t, c.SetClassLevel(features.ClassWarlock, 5))
	c.SetAbilityScore(shared.AttributeStrength, str)
	c.SetAbilityScore(shared.AttributeDexterity, dex)
	c.SetAbilityScore(shared.AttributeCharisma, cha)
	return c
}

func builtinWeapon(t *testing.T, key string) *equipment.Weapon {
	w, err := equipment.Builtin(key)
	require.NoError(t, err)
	return w
}

func TestWeaponStats(t *testing.T) {
	t.Run("no weapon equipped", func(t *testing.T) {
		c := newHexblade(t, 12, 10, 16)
		_, err := c.WeaponStats(nil)
		assert.True(t, dnderr.IsNotFound(err))
	})

	t.Run("no modifiers attached", func(t *testing.T) {
		c := newHexblade(t, 12, 10, 16)
		c.Equip(builtinWeapon(t, "longsword"))

		stats, err := c.WeaponStats(nil)
		require.NoError(t, err)
		assert.Equal(t, 0, stats.AttackBonus)

		attack, err := c.AttackModifier(nil)
		require.NoError(t, err)
		assert.Equal(t, 1, attack)
	})

	t.Run("hex warrior then improved pact weapon", func(t *testing.T) {
		c := newHexblade(t, 12, 10, 16)
		ipw, err := features.NewInvocation(features.InvocationImprovedPactWeapon)
		require.NoError(t, err)
		_, err = c.AttachAll(features.NewHexWarrior(), ipw)
		require.NoError(t, err)

		sword := builtinWeapon(t, "longsword")
		c.Equip(sword)

		stats, err := c.WeaponStats(nil)
		require.NoError(t, err)
		assert.Equal(t, 3, stats.AttackBonus)
		assert.Equal(t, 1, stats.BonusDamage)
		assert.Equal(t, 1, stats.MagicBonus)

		// repeated queries start from the equipped weapon again
		again, err := c.WeaponStats(nil)
		require.NoError(t, err)
		assert.Equal(t, stats, again)
		assert.Equal(t, 0, c.EquippedWeapon.AttackBonus)
		assert.Equal(t, 0, sword.AttackBonus)

		attack, err := c.AttackModifier(nil)
		require.NoError(t, err)
		assert.Equal(t, 4, attack, "strength +1 plus charisma substitution +2 plus pact weapon +1")

		damage, err := c.DamageModifier(nil)
		require.NoError(t, err)
		assert.Equal(t, 2, damage)
	})

	t.Run("substitution follows ability changes", func(t *testing.T) {
		c := newHexblade(t, 10, 10, 14)
		_, err := c.Attach(features.NewHexWarrior())
		require.NoError(t, err)
		rapier := builtinWeapon(t, "rapier")

		stats, err := c.WeaponStats(rapier)
		require.NoError(t, err)
		assert.Equal(t, 2, stats.AttackBonus)

		c.SetAbilityScore(shared.AttributeDexterity, 16)
		stats, err = c.WeaponStats(rapier)
		require.NoError(t, err)
		assert.Equal(t, 0, stats.AttackBonus)

		attack, err := c.AttackModifier(rapier)
		require.NoError(t, err)
		assert.Equal(t, 3, attack)
	})

	t.Run("non-finesse ranged weapons use strength", func(t *testing.T) {
		c := newHexblade(t, 16, 12, 10)
		attack, err := c.AttackModifier(builtinWeapon(t, "longbow"))
		require.NoError(t, err)
		assert.Equal(t, 3, attack)
	})

	t.Run("hex warrior with a longbow counts charisma once", func(t *testing.T) {
		c := newHexblade(t, 10, 16, 16)
		_, err := c.Attach(features.NewHexWarrior())
		require.NoError(t, err)
		longbow := builtinWeapon(t, "longbow")

		stats, err := c.WeaponStats(longbow)
		require.NoError(t, err)
		assert.Equal(t, 3, stats.AttackBonus)

		attack, err := c.AttackModifier(longbow)
		require.NoError(t, err)
		assert.Equal(t, 3, attack, "charisma replaces strength, dexterity is not added on top")

		damage, err := c.DamageModifier(longbow)
		require.NoError(t, err)
		assert.Equal(t, 0, damage)
	})

	t.Run("detached modifiers stop applying", func(t *testing.T) {
		c := newHexblade(t, 10, 10, 16)
		id, err := c.Attach(features.NewHexWarrior())
		require.NoError(t, err)
		c.Equip(builtinWeapon(t, "quarterstaff"))

		stats, err := c.WeaponStats(nil)
		require.NoError(t, err)
		assert.Equal(t, 3, stats.AttackBonus)

		require.NoError(t, c.Detach(id))
		stats, err = c.WeaponStats(nil)
		require.NoError(t, err)
		assert.Equal(t, 0, stats.AttackBonus)
	})
}
