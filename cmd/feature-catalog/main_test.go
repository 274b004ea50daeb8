package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mockdnd5e "github.com/KirkDiggler/dnd-features/internal/clients/dnd5e/mock"
	"github.com/KirkDiggler/dnd-features/internal/config"
	rulebook "github.com/KirkDiggler/dnd-features/internal/domain/rulebook/dnd5e"
	"github.com/KirkDiggler/dnd-features/internal/domain/rulebook/dnd5e/features"
	"github.com/KirkDiggler/dnd-features/internal/domain/rulebook/dnd5e/spells"
	dnderr "github.com/KirkDiggler/dnd-features/internal/errors"
	"github.com/KirkDiggler/dnd-features/internal/services"
	"github.com/KirkDiggler/dnd-features/internal/services/catalog"
	mockcatalog "github.com/KirkDiggler/dnd-features/internal/services/catalog/mock"
)

func fixedProvider(p *services.Provider) providerFactory {
	return func(context.Context, *config.Config) (*services.Provider, func(), error) {
		return p, func() {}, nil
	}
}

func run(t *testing.T, factory providerFactory, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd(factory)
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func realProvider(t *testing.T) *services.Provider {
	ctrl := gomock.NewController(t)
	p, err := services.NewProvider(&services.ProviderConfig{
		DNDClient: mockdnd5e.NewMockClient(ctrl),
	})
	require.NoError(t, err)
	return p
}

func TestListCommand(t *testing.T) {
	t.Run("filters by source", func(t *testing.T) {
		out, err := run(t, fixedProvider(realProvider(t)), "list", "--source", "hexblade")
		require.NoError(t, err)

		assert.Contains(t, out, features.FeatureHexWarrior)
		assert.Contains(t, out, "Warlock (Hexblade)")
		assert.NotContains(t, out, features.FeatureDarkOnesBlessing)
	})

	t.Run("computes names for the sample character", func(t *testing.T) {
		out, err := run(t, fixedProvider(realProvider(t)),
			"list", "--source", "fiend", "--level", "5", "--charisma", "18")
		require.NoError(t, err)

		assert.Contains(t, out, "Dark One's Blessing (9 HP)")
	})

	t.Run("shows at-will spells", func(t *testing.T) {
		out, err := run(t, fixedProvider(realProvider(t)), "list", "--source", "invocations")
		require.NoError(t, err)

		assert.Contains(t, out, features.InvocationArmorOfShadows)
		assert.Contains(t, out, spells.KeyMageArmor)
	})

	t.Run("strict fails on unimplemented features", func(t *testing.T) {
		out, err := run(t, fixedProvider(realProvider(t)), "list", "--unimplemented", "--strict")
		require.Error(t, err)

		assert.True(t, dnderr.IsUnimplemented(err))
		assert.Contains(t, out, features.InvocationEldritchSpear)
		assert.Contains(t, out, statusNeedsImplementation)
		assert.NotContains(t, out, features.InvocationArmorOfShadows)
	})

	t.Run("rejects an impossible level", func(t *testing.T) {
		_, err := run(t, fixedProvider(realProvider(t)), "list", "--level", "25")
		assert.True(t, dnderr.IsInvalidArgument(err))
	})
}

func TestSyncSpellsCommand(t *testing.T) {
	newProvider := func(t *testing.T) (*services.Provider, *mockcatalog.MockService) {
		ctrl := gomock.NewController(t)
		svc := mockcatalog.NewMockService(ctrl)
		p := realProvider(t)
		p.CatalogService = svc
		return p, svc
	}

	t.Run("syncs the requested keys", func(t *testing.T) {
		p, svc := newProvider(t)
		svc.EXPECT().
			Sync(gomock.Any(), p.Spells, []string{"eldritch-blast"}).
			DoAndReturn(func(_ context.Context, registry *spells.Registry, _ []string) (*catalog.SyncResult, error) {
				require.NoError(t, registry.Put(&rulebook.Spell{Key: "eldritch-blast", Name: "Eldritch Blast"}))
				return &catalog.SyncResult{Synced: []string{"eldritch-blast"}, Failed: map[string]error{}}, nil
			})

		out, err := run(t, fixedProvider(p), "sync-spells", "--keys", "eldritch-blast")
		require.NoError(t, err)
		assert.Contains(t, out, "Eldritch Blast")
		assert.Contains(t, out, "synced")
	})

	t.Run("class list plus built-in spells", func(t *testing.T) {
		p, svc := newProvider(t)
		want := append([]string{"hex"}, p.Spells.Keys()...)

		svc.EXPECT().ClassSpellKeys(gomock.Any(), "warlock").Return([]string{"hex"}, nil)
		svc.EXPECT().Sync(gomock.Any(), p.Spells, want).
			Return(&catalog.SyncResult{Failed: map[string]error{
				"hex": dnderr.NotFound("spell hex not found"),
			}}, nil)

		out, err := run(t, fixedProvider(p), "sync-spells")
		require.Error(t, err)
		assert.Equal(t, dnderr.CodeUnavailable, dnderr.GetCode(err))
		assert.Contains(t, out, "spell hex not found")
	})
}
