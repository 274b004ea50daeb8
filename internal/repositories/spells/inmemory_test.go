package spells_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	rulebook "github.com/KirkDiggler/dnd-features/internal/domain/rulebook/dnd5e"
	"github.com/KirkDiggler/dnd-features/internal/domain/shared"
	dnderr "github.com/KirkDiggler/dnd-features/internal/errors"
	"github.com/KirkDiggler/dnd-features/internal/repositories/spells"
	"github.com/KirkDiggler/dnd-features/internal/repositories/spells/mocks"
)

func TestInMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := spells.NewInMemoryRepository(0, nil)

	spell := &rulebook.Spell{
		Key:        "mage-armor",
		Name:       "Mage Armor",
		Level:      1,
		Components: []shared.ComponentType{shared.ComponentVerbal, shared.ComponentMaterial},
	}
	require.NoError(t, repo.Put(ctx, spell))

	// stored values are copies
	spell.Level = 0
	got, err := repo.Get(ctx, "mage-armor")
	require.NoError(t, err)
	assert.Equal(t, 1, got.Level)
	got.RemoveComponent(shared.ComponentMaterial)

	again, err := repo.Get(ctx, "mage-armor")
	require.NoError(t, err)
	assert.True(t, again.HasComponent(shared.ComponentMaterial))

	require.NoError(t, repo.Put(ctx, &rulebook.Spell{Key: "jump", Name: "Jump", Level: 1}))
	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "jump", all[0].Key)

	require.NoError(t, repo.Delete(ctx, "jump"))
	_, err = repo.Get(ctx, "jump")
	assert.True(t, dnderr.IsNotFound(err))

	assert.True(t, dnderr.IsInvalidArgument(repo.Put(ctx, nil)))
	_, err = repo.Get(ctx, "")
	assert.True(t, dnderr.IsInvalidArgument(err))
}

func TestInMemoryRepositoryExpiry(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	start := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	tp := mocks.NewMockTimeProvider(ctrl)
	gomock.InOrder(
		tp.EXPECT().Now().Return(start),
		tp.EXPECT().Now().Return(start.Add(59*time.Minute)),
		tp.EXPECT().Now().Return(start.Add(time.Hour)),
		tp.EXPECT().Now().Return(start.Add(2*time.Hour)),
	)

	repo := spells.NewInMemoryRepository(time.Hour, tp)
	require.NoError(t, repo.Put(ctx, &rulebook.Spell{Key: "hex", Name: "Hex", Level: 1}))

	_, err := repo.Get(ctx, "hex")
	assert.NoError(t, err)

	_, err = repo.Get(ctx, "hex")
	assert.True(t, dnderr.IsNotFound(err))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
