package catalog

//go:generate mockgen -destination=mock/mock_service.go -package=mockcatalog -source=service.go

import (
	"context"
	"sort"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/KirkDiggler/dnd-features/internal/clients/dnd5e"
	"github.com/KirkDiggler/dnd-features/internal/domain/equipment"
	rulebook "github.com/KirkDiggler/dnd-features/internal/domain/rulebook/dnd5e"
	"github.com/KirkDiggler/dnd-features/internal/domain/rulebook/dnd5e/spells"
	dnderr "github.com/KirkDiggler/dnd-features/internal/errors"
	"github.com/KirkDiggler/dnd-features/internal/logging"
	spellsrepo "github.com/KirkDiggler/dnd-features/internal/repositories/spells"
)

const defaultConcurrency = 4

// Service looks up spells and weapons in the remote catalog, caching spells
type Service interface {
	// Spell returns a spell archetype, from the cache when possible
	Spell(ctx context.Context, key string) (*rulebook.Spell, error)

	// ClassSpellKeys lists the spell keys on a class spell list
	ClassSpellKeys(ctx context.Context, classKey string) ([]string, error)

	// Weapon returns a weapon, falling back to the built-in table when the
	// remote catalog cannot serve it
	Weapon(ctx context.Context, key string) (*equipment.Weapon, error)

	// Sync fetches each key and puts it into the registry
	Sync(ctx context.Context, registry *spells.Registry, keys []string) (*SyncResult, error)
}

// SyncResult reports which spells made it into the registry
type SyncResult struct {
	Synced []string
	Failed map[string]error
}

// ServiceConfig holds the dependencies for the catalog service
type ServiceConfig struct {
	Client dnd5e.Client
	// Cache defaults to an in-memory cache that never expires
	Cache       spellsrepo.Repository
	Concurrency int
}

type service struct {
	client      dnd5e.Client
	cache       spellsrepo.Repository
	concurrency int
	inflight    singleflight.Group
	logger      zerolog.Logger
}

// NewService creates a catalog service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil {
		panic("config is required")
	}
	if cfg.Client == nil {
		panic("dnd5e client is required")
	}

	svc := &service{
		client:      cfg.Client,
		cache:       cfg.Cache,
		concurrency: cfg.Concurrency,
		logger:      logging.GetLogger("catalog"),
	}
	if svc.cache == nil {
		svc.cache = spellsrepo.NewInMemoryRepository(0, nil)
	}
	if svc.concurrency <= 0 {
		svc.concurrency = defaultConcurrency
	}

	return svc
}

func (s *service) Spell(ctx context.Context, key string) (*rulebook.Spell, error) {
	if key == "" {
		return nil, dnderr.InvalidArgument("spell key is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cached, err := s.cache.Get(ctx, key)
	switch {
	case err == nil:
		s.logger.Debug().Str("spell", key).Msg("spell cache hit")
		return cached, nil
	case dnderr.IsNotFound(err):
		s.logger.Debug().Str("spell", key).Msg("spell cache miss")
	default:
		// cache errors fall through to the remote catalog
		s.logger.Warn().Err(err).Str("spell", key).Msg("spell cache read failed")
	}

	v, err, shared := s.inflight.Do(key, func() (any, error) {
		spell, err := s.client.GetSpell(key)
		if err != nil {
			return nil, err
		}
		// joined callers still want the write-back when the first caller goes away
		if err := s.cache.Put(context.WithoutCancel(ctx), spell); err != nil {
			s.logger.Warn().Err(err).Str("spell", key).Msg("spell cache write failed")
		}
		return spell, nil
	})
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to fetch spell %s", key).
			WithMeta("spell", key)
	}
	if shared {
		s.logger.Debug().Str("spell", key).Msg("joined in-flight spell fetch")
	}

	// callers of a shared fetch each get their own instance
	return v.(*rulebook.Spell).Clone(), nil
}

func (s *service) ClassSpellKeys(ctx context.Context, classKey string) ([]string, error) {
	if classKey == "" {
		return nil, dnderr.InvalidArgument("class key is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	keys, err := s.client.ListSpellKeysByClass(classKey)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to list %s spells", classKey).
			WithMeta("class", classKey)
	}
	return keys, nil
}

func (s *service) Weapon(ctx context.Context, key string) (*equipment.Weapon, error) {
	if key == "" {
		return nil, dnderr.InvalidArgument("weapon key is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	weapon, err := s.client.GetWeapon(key)
	if err == nil {
		return weapon, nil
	}

	builtin, builtinErr := equipment.Builtin(key)
	if builtinErr != nil {
		return nil, dnderr.Wrapf(err, "failed to fetch weapon %s", key).
			WithMeta("weapon", key)
	}

	s.logger.Warn().Err(err).Str("weapon", key).Msg("using built-in weapon")
	return builtin, nil
}

func (s *service) Sync(ctx context.Context, registry *spells.Registry, keys []string) (*SyncResult, error) {
	if registry == nil {
		return nil, dnderr.InvalidArgument("registry is required")
	}

	var (
		mu     sync.Mutex
		result = &SyncResult{Failed: make(map[string]error)}
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for _, key := range dedupe(keys) {
		key := key
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			spell, err := s.Spell(gctx, key)
			if err == nil {
				err = registry.Put(spell)
			}

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				s.logger.Warn().Err(err).Str("spell", key).Msg("spell sync failed")
				result.Failed[key] = err
				return nil
			}
			result.Synced = append(result.Synced, key)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, dnderr.Wrap(err, "spell sync interrupted")
	}

	sort.Strings(result.Synced)
	s.logger.Info().
		Int("synced", len(result.Synced)).
		Int("failed", len(result.Failed)).
		Msg("spell sync complete")

	return result, nil
}

func dedupe(keys []string) []string {
	seen := make(map[string]bool, len(keys))
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return out
}
