package spells

import (
	"sort"
	"sync"

	rulebook "github.com/KirkDiggler/dnd-features/internal/domain/rulebook/dnd5e"
	dnderr "github.com/KirkDiggler/dnd-features/internal/errors"
)

// Source hands out spell instances by archetype key. Every call returns a
// fresh copy that the caller owns.
type Source interface {
	Spell(key string) (*rulebook.Spell, error)
}

// Registry is an in-memory spell archetype catalog
type Registry struct {
	mu     sync.RWMutex
	spells map[string]*rulebook.Spell
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		spells: make(map[string]*rulebook.Spell),
	}
}

// Register adds a new archetype. Keys must be unique.
func (r *Registry) Register(spell *rulebook.Spell) error {
	if spell == nil {
		return dnderr.InvalidArgument("spell cannot be nil")
	}
	if spell.Key == "" {
		return dnderr.InvalidArgument("spell key cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.spells[spell.Key]; exists {
		return dnderr.AlreadyExistsf("spell %s already registered", spell.Key).
			WithMeta("spell", spell.Key)
	}

	r.spells[spell.Key] = spell.Clone()
	return nil
}

// Put inserts or replaces an archetype. A replacement that carries no
// components keeps the component set already on record.
func (r *Registry) Put(spell *rulebook.Spell) error {
	if spell == nil {
		return dnderr.InvalidArgument("spell cannot be nil")
	}
	if spell.Key == "" {
		return dnderr.InvalidArgument("spell key cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	incoming := spell.Clone()
	if existing, ok := r.spells[spell.Key]; ok && len(incoming.Components) == 0 {
		incoming.Components = existing.Clone().Components
	}
	r.spells[spell.Key] = incoming
	return nil
}

// Spell returns a fresh copy of the archetype
func (r *Registry) Spell(key string) (*rulebook.Spell, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	spell, ok := r.spells[key]
	if !ok {
		return nil, dnderr.NotFoundf("spell %s not found", key).
			WithMeta("spell", key)
	}
	return spell.Clone(), nil
}

// Keys lists registered archetypes in sorted order
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.spells))
	for k := range r.spells {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of archetypes
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.spells)
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process-wide registry seeded with the built-in spells
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry()
		for _, s := range Builtin() {
			// Builtin keys are unique, a failure here is a programming error
			if err := defaultRegistry.Register(s); err != nil {
				panic(err)
			}
		}
	})
	return defaultRegistry
}
