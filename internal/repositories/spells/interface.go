package spells

import (
	"context"

	rulebook "github.com/KirkDiggler/dnd-features/internal/domain/rulebook/dnd5e"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=mockspells -source=interface.go

// Repository caches spell archetypes fetched from the remote catalog
type Repository interface {
	// Get returns a cached spell or a not found error
	Get(ctx context.Context, key string) (*rulebook.Spell, error)
	Put(ctx context.Context, spell *rulebook.Spell) error
	Delete(ctx context.Context, key string) error
	// List returns every cached spell that has not expired, sorted by key
	List(ctx context.Context) ([]*rulebook.Spell, error)
}
