package rulebook_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	rulebook "github.com/KirkDiggler/dnd-features/internal/domain/rulebook/dnd5e"
	"github.com/KirkDiggler/dnd-features/internal/domain/shared"
)

func TestSpellRemoveComponent(t *testing.T) {
	spell := &rulebook.Spell{
		Key:        "mage-armor",
		Level:      1,
		Components: []shared.ComponentType{shared.ComponentVerbal, shared.ComponentSomatic, shared.ComponentMaterial},
	}

	assert.True(t, spell.RemoveComponent(shared.ComponentMaterial))
	assert.False(t, spell.HasComponent(shared.ComponentMaterial))
	assert.Equal(t, []shared.ComponentType{shared.ComponentVerbal, shared.ComponentSomatic}, spell.Components)

	assert.False(t, spell.RemoveComponent(shared.ComponentMaterial))
}

func TestSpellClone(t *testing.T) {
	spell := &rulebook.Spell{
		Key:        "find-familiar",
		Level:      1,
		Components: []shared.ComponentType{shared.ComponentVerbal, shared.ComponentMaterial},
		Classes:    []string{"wizard"},
	}

	c := spell.Clone()
	c.Level = 0
	c.RemoveComponent(shared.ComponentMaterial)
	c.Classes[0] = "warlock"

	assert.Equal(t, 1, spell.Level)
	assert.False(t, spell.IsCantrip())
	assert.True(t, c.IsCantrip())
	assert.True(t, spell.HasComponent(shared.ComponentMaterial))
	assert.Equal(t, "wizard", spell.Classes[0])
	assert.Nil(t, (*rulebook.Spell)(nil).Clone())
}
