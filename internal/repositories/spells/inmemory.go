package spells

import (
	"context"
	"sync"
	"time"

	rulebook "github.com/KirkDiggler/dnd-features/internal/domain/rulebook/dnd5e"
	dnderr "github.com/KirkDiggler/dnd-features/internal/errors"
)

type cachedSpell struct {
	spell     *rulebook.Spell
	expiresAt time.Time
}

// InMemoryRepository is an in-memory spell cache
// Useful for testing and for running without Redis
type InMemoryRepository struct {
	mu           sync.RWMutex
	spells       map[string]cachedSpell
	ttl          time.Duration
	timeProvider TimeProvider
}

// NewInMemoryRepository creates an in-memory cache. A zero TTL never expires.
func NewInMemoryRepository(ttl time.Duration, tp TimeProvider) Repository {
	if tp == nil {
		tp = NewTimeProvider()
	}
	return &InMemoryRepository{
		spells:       make(map[string]cachedSpell),
		ttl:          ttl,
		timeProvider: tp,
	}
}

func (r *InMemoryRepository) Put(ctx context.Context, spell *rulebook.Spell) error {
	if spell == nil {
		return dnderr.InvalidArgument("spell cannot be nil")
	}
	if spell.Key == "" {
		return dnderr.InvalidArgument("spell key is required")
	}

	entry := cachedSpell{spell: spell.Clone()}
	if r.ttl > 0 {
		entry.expiresAt = r.timeProvider.Now().Add(r.ttl)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.spells[spell.Key] = entry

	return nil
}

func (r *InMemoryRepository) Get(ctx context.Context, key string) (*rulebook.Spell, error) {
	if key == "" {
		return nil, dnderr.InvalidArgument("spell key is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, exists := r.spells[key]
	if !exists || r.expired(entry) {
		return nil, dnderr.NotFoundf("spell %s not cached", key).
			WithMeta("spell", key)
	}

	return entry.spell.Clone(), nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.spells, key)

	return nil
}

func (r *InMemoryRepository) List(ctx context.Context) ([]*rulebook.Spell, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	found := make([]*rulebook.Spell, 0, len(r.spells))
	for _, entry := range r.spells {
		if !r.expired(entry) {
			found = append(found, entry.spell.Clone())
		}
	}

	return compact(found), nil
}

func (r *InMemoryRepository) expired(entry cachedSpell) bool {
	return !entry.expiresAt.IsZero() && !r.timeProvider.Now().Before(entry.expiresAt)
}
