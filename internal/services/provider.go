package services

import (
	"github.com/KirkDiggler/dnd-features/internal/clients/dnd5e"
	"github.com/KirkDiggler/dnd-features/internal/domain/rulebook/dnd5e/features"
	"github.com/KirkDiggler/dnd-features/internal/domain/rulebook/dnd5e/spells"
	dnderr "github.com/KirkDiggler/dnd-features/internal/errors"
	spellsrepo "github.com/KirkDiggler/dnd-features/internal/repositories/spells"
	"github.com/KirkDiggler/dnd-features/internal/services/catalog"
)

// Provider holds all service instances
type Provider struct {
	CatalogService catalog.Service

	// Spells starts with the built-in catalog and is what Features draws
	// granted spells from
	Spells   *spells.Registry
	Features *features.Registry
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	DNDClient       dnd5e.Client
	SpellCache      spellsrepo.Repository
	SyncConcurrency int
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) (*Provider, error) {
	if cfg == nil {
		return nil, dnderr.InvalidArgument("provider config is required")
	}

	// Use in-memory cache if none provided
	cache := cfg.SpellCache
	if cache == nil {
		cache = spellsrepo.NewInMemoryRepository(0, nil)
	}

	spellRegistry := spells.NewRegistry()
	for _, spell := range spells.Builtin() {
		if err := spellRegistry.Register(spell); err != nil {
			return nil, dnderr.Wrap(err, "failed to seed spell registry")
		}
	}

	featureRegistry := features.NewRegistry()
	if err := features.RegisterAll(featureRegistry); err != nil {
		return nil, err
	}
	featureRegistry.SetSpellSource(spellRegistry)

	return &Provider{
		CatalogService: catalog.NewService(&catalog.ServiceConfig{
			Client:      cfg.DNDClient,
			Cache:       cache,
			Concurrency: cfg.SyncConcurrency,
		}),
		Spells:   spellRegistry,
		Features: featureRegistry,
	}, nil
}
