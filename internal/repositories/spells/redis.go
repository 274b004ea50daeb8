package spells

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	rulebook "github.com/KirkDiggler/dnd-features/internal/domain/rulebook/dnd5e"
	dnderr "github.com/KirkDiggler/dnd-features/internal/errors"
)

const indexKey = "spells:index"

type redisRepo struct {
	client       *redis.Client
	ttl          time.Duration
	timeProvider TimeProvider
}

type RedisConfig struct {
	Client       *redis.Client
	TTL          time.Duration
	TimeProvider TimeProvider
}

// NewRedis creates a Redis backed spell cache. A zero TTL keeps entries
// until they are deleted.
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if cfg == nil || cfg.Client == nil {
		return nil, dnderr.InvalidArgument("redis client is required")
	}

	tp := cfg.TimeProvider
	if tp == nil {
		tp = NewTimeProvider()
	}

	return &redisRepo{
		client:       cfg.Client,
		ttl:          cfg.TTL,
		timeProvider: tp,
	}, nil
}

func spellKey(key string) string {
	return fmt.Sprintf("spell:%s", key)
}

func (r *redisRepo) Put(ctx context.Context, spell *rulebook.Spell) error {
	if spell == nil {
		return dnderr.InvalidArgument("spell cannot be nil")
	}
	if spell.Key == "" {
		return dnderr.InvalidArgument("spell key is required")
	}

	jsonData, err := json.Marshal(toSpellData(spell, r.timeProvider.Now()))
	if err != nil {
		return dnderr.Wrap(err, "failed to marshal spell data")
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, spellKey(spell.Key), string(jsonData), r.ttl)
	pipe.SAdd(ctx, indexKey, spell.Key)
	if _, err := pipe.Exec(ctx); err != nil {
		return dnderr.WrapWithCode(err, dnderr.CodeUnavailable, "failed to set spell in Redis").
			WithMeta("spell", spell.Key)
	}

	return nil
}

func (r *redisRepo) Get(ctx context.Context, key string) (*rulebook.Spell, error) {
	if key == "" {
		return nil, dnderr.InvalidArgument("spell key is required")
	}

	jsonData, err := r.client.Get(ctx, spellKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, dnderr.NotFoundf("spell %s not cached", key).
				WithMeta("spell", key)
		}
		return nil, dnderr.WrapWithCode(err, dnderr.CodeUnavailable, "failed to get spell from Redis").
			WithMeta("spell", key)
	}

	var data Data
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return nil, dnderr.Wrap(err, "failed to unmarshal spell data").
			WithMeta("spell", key)
	}

	return toSpell(&data), nil
}

func (r *redisRepo) Delete(ctx context.Context, key string) error {
	pipe := r.client.Pipeline()
	pipe.Del(ctx, spellKey(key))
	pipe.SRem(ctx, indexKey, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return dnderr.WrapWithCode(err, dnderr.CodeUnavailable, "failed to delete spell from Redis").
			WithMeta("spell", key)
	}

	return nil
}

func (r *redisRepo) List(ctx context.Context) ([]*rulebook.Spell, error) {
	keys, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeUnavailable, "failed to list cached spells")
	}

	found := make([]*rulebook.Spell, len(keys))

	g, ctx := errgroup.WithContext(ctx)
	for i, key := range keys {
		i, key := i, key
		g.Go(func() error {
			spell, err := r.Get(ctx, key)
			if err != nil {
				// expired entries linger in the index
				if dnderr.IsNotFound(err) {
					return nil
				}
				return dnderr.Wrapf(err, "failed to get spell %s", key)
			}
			found[i] = spell
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return compact(found), nil
}

func compact(found []*rulebook.Spell) []*rulebook.Spell {
	result := make([]*rulebook.Spell, 0, len(found))
	for _, s := range found {
		if s != nil {
			result = append(result, s)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Key < result[j].Key
	})
	return result
}
