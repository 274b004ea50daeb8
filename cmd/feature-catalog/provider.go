package main

import (
	"context"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/KirkDiggler/dnd-features/internal/clients/dnd5e"
	"github.com/KirkDiggler/dnd-features/internal/config"
	spellsrepo "github.com/KirkDiggler/dnd-features/internal/repositories/spells"
	"github.com/KirkDiggler/dnd-features/internal/services"
)

const redisPingTimeout = 5 * time.Second

func newProvider(ctx context.Context, cfg *config.Config) (*services.Provider, func(), error) {
	dndClient, err := dnd5e.New(&dnd5e.Config{
		HttpClient: &http.Client{
			Timeout: cfg.DND5E.Timeout,
		},
	})
	if err != nil {
		return nil, nil, err
	}

	providerConfig := &services.ProviderConfig{
		DNDClient:       dndClient,
		SyncConcurrency: cfg.Spells.Concurrency,
	}
	cleanup := func() {}

	if cfg.UseRedis() {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
		pingErr := redisClient.Ping(pingCtx).Err()
		cancel()

		if pingErr != nil {
			log.Warn().Err(pingErr).Str("addr", cfg.Redis.Addr).Msg("redis unavailable, caching spells in memory")
			_ = redisClient.Close()
		} else {
			cache, err := spellsrepo.NewRedis(&spellsrepo.RedisConfig{
				Client: redisClient,
				TTL:    cfg.Spells.CacheTTL,
			})
			if err != nil {
				_ = redisClient.Close()
				return nil, nil, err
			}
			log.Info().Str("addr", cfg.Redis.Addr).Msg("caching spells in redis")

			providerConfig.SpellCache = cache
			cleanup = func() {
				if err := redisClient.Close(); err != nil {
					log.Warn().Err(err).Msg("failed to close redis client")
				}
			}
		}
	}

	if providerConfig.SpellCache == nil {
		providerConfig.SpellCache = spellsrepo.NewInMemoryRepository(cfg.Spells.CacheTTL, nil)
	}

	provider, err := services.NewProvider(providerConfig)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return provider, cleanup, nil
}
