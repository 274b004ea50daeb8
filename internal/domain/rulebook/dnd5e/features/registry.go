package features

import (
	"sort"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/KirkDiggler/dnd-features/internal/domain/rulebook/dnd5e/spells"
	dnderr "github.com/KirkDiggler/dnd-features/internal/errors"
)

// Registry maps feature keys to factories so builds can be assembled from
// stored keys
type Registry struct {
	mu          sync.RWMutex
	factories   map[string]Factory
	spellSource spells.Source
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
	}
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// DefaultRegistry returns the shared registry holding the full catalog
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
		if err := RegisterAll(defaultRegistry); err != nil {
			panic(err)
		}
	})
	return defaultRegistry
}

// Register adds a factory under key
func (r *Registry) Register(key string, factory Factory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if key == "" {
		return dnderr.InvalidArgument("feature key cannot be empty")
	}
	if factory == nil {
		return dnderr.InvalidArgumentf("factory for %s cannot be nil", key)
	}
	if _, exists := r.factories[key]; exists {
		return dnderr.AlreadyExistsf("feature %s already registered", key).
			WithMeta("feature", key)
	}

	r.factories[key] = factory
	return nil
}

// SetSpellSource sets the spell catalog handed to every feature the
// registry builds. Nil restores the built-in catalog.
func (r *Registry) SetSpellSource(src spells.Source) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.spellSource = src
}

// New builds an unbound feature. For selectors, choice is recorded so the
// character can resolve it on attach. Passing a choice to any other feature
// is an error.
func (r *Registry) New(key, choice string) (Feature, error) {
	r.mu.RLock()
	factory, exists := r.factories[key]
	src := r.spellSource
	r.mu.RUnlock()

	if !exists {
		return nil, dnderr.NotFoundf("feature %s not found", key).
			WithMeta("feature", key)
	}

	feature := factory()
	if src != nil {
		if setter, ok := feature.(spellSourceSetter); ok {
			setter.SetSpellSource(src)
		}
	}

	if choice == "" {
		return feature, nil
	}

	selector, ok := feature.(*Selector)
	if !ok {
		return nil, dnderr.InvalidArgumentf("feature %s does not take a choice", key).
			WithMeta("feature", key).
			WithMeta("choice", choice)
	}
	if err := selector.Choose(choice); err != nil {
		return nil, err
	}
	return selector, nil
}

// Keys lists registered feature keys in sorted order
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.factories))
	for k := range r.factories {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of registered features
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.factories)
}

// RegisterAll registers the warlock class, patron and invocation catalog
func RegisterAll(r *Registry) error {
	catalog := map[string]Factory{
		FeatureEldritchInvocations: NewEldritchInvocations,
		FeatureMysticArcanum:       NewMysticArcanum,
		FeatureEldritchMaster:      NewEldritchMaster,
		FeaturePactOfTheChain:      NewPactOfTheChain,
		FeaturePactOfTheBlade:      NewPactOfTheBlade,
		FeaturePactOfTheTome:       NewPactOfTheTome,
		FeaturePactBoon: func() Feature {
			boon, _ := NewPactBoon("")
			return boon
		},

		FeatureDarkOnesBlessing:   NewDarkOnesBlessing,
		FeatureDarkOnesOwnLuck:    NewDarkOnesOwnLuck,
		FeatureFiendishResilience: NewFiendishResilience,
		FeatureHurlThroughHell:    NewHurlThroughHell,

		FeatureHexbladesCurse:  NewHexbladesCurse,
		FeatureHexWarrior:      NewHexWarrior,
		FeatureAccursedSpecter: NewAccursedSpecter,
		FeatureArmorOfHexes:    NewArmorOfHexes,
		FeatureMasterOfHexes:   NewMasterOfHexes,
	}
	for _, key := range InvocationKeys() {
		catalog[key] = invocationFactory(key)
	}

	keys := make([]string, 0, len(catalog))
	for k := range catalog {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if err := r.Register(key, catalog[key]); err != nil {
			log.Error().Err(err).Str("feature", key).Msg("failed to register feature")
			return dnderr.Wrapf(err, "failed to register %s", key)
		}
	}
	return nil
}

func invocationFactory(key string) Factory {
	return func() Feature {
		inv, err := NewInvocation(key)
		if err != nil {
			panic(err)
		}
		return inv
	}
}
