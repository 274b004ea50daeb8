package dnd5e

//go:generate mockgen -destination=mock/mock_client.go -package=mockdnd5e . Client

import (
	"github.com/KirkDiggler/dnd-features/internal/domain/equipment"
	rulebook "github.com/KirkDiggler/dnd-features/internal/domain/rulebook/dnd5e"
)

type Client interface {
	GetSpell(key string) (*rulebook.Spell, error)
	ListSpellKeysByClass(classKey string) ([]string, error)
	GetWeapon(key string) (*equipment.Weapon, error)
}
