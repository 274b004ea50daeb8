package features_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/dnd-features/internal/domain/rulebook/dnd5e/features"
	mockfeatures "github.com/KirkDiggler/dnd-features/internal/domain/rulebook/dnd5e/features/mock"
	"github.com/KirkDiggler/dnd-features/internal/domain/shared"
	dnderr "github.com/KirkDiggler/dnd-features/internal/errors"
)

func TestDarkOnesBlessingName(t *testing.T) {
	t.Run("unbound is a binding error", func(t *testing.T) {
		name, err := features.NewDarkOnesBlessing().Name()
		assert.Empty(t, name)
		assert.True(t, dnderr.IsBinding(err))
	})

	t.Run("level plus charisma", func(t *testing.T) {
		testCases := []struct {
			level int
			cha   int
			want  string
		}{
			{1, 3, "Dark One's Blessing (4 HP)"},
			{5, 4, "Dark One's Blessing (9 HP)"},
			{20, 5, "Dark One's Blessing (25 HP)"},
			{1, -1, "Dark One's Blessing (0 HP)"},
		}
		for _, tc := range testCases {
			f := features.NewDarkOnesBlessing()
			require.NoError(t, f.Bind(newStubOwner(tc.level).with(shared.AttributeCharisma, tc.cha)))

			name, err := f.Name()
			require.NoError(t, err)
			assert.Equal(t, tc.want, name)
		}
	})

	t.Run("reflects level up", func(t *testing.T) {
		owner := newStubOwner(3).with(shared.AttributeCharisma, 3)
		f := features.NewDarkOnesBlessing()
		require.NoError(t, f.Bind(owner))

		name, _ := f.Name()
		assert.Equal(t, "Dark One's Blessing (6 HP)", name)

		owner.classes["warlock"] = 4
		name, _ = f.Name()
		assert.Equal(t, "Dark One's Blessing (7 HP)", name)
	})

	t.Run("only warlock levels count", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		owner := mockfeatures.NewMockOwner(ctrl)
		owner.EXPECT().ClassLevel(features.ClassWarlock).Return(6)
		owner.EXPECT().AbilityModifier(shared.AttributeCharisma).Return(2)

		f := features.NewDarkOnesBlessing()
		require.NoError(t, f.Bind(owner))

		name, err := f.Name()
		require.NoError(t, err)
		assert.Equal(t, "Dark One's Blessing (8 HP)", name)
	})
}

func TestPatronSources(t *testing.T) {
	for _, f := range []features.Feature{
		features.NewDarkOnesBlessing(),
		features.NewDarkOnesOwnLuck(),
		features.NewFiendishResilience(),
		features.NewHurlThroughHell(),
	} {
		assert.Equal(t, features.SourceFiend, f.Source(), f.Key())
		assert.NotEmpty(t, f.Description(), f.Key())
	}
	for _, f := range []features.Feature{
		features.NewHexbladesCurse(),
		features.NewHexWarrior(),
		features.NewAccursedSpecter(),
		features.NewArmorOfHexes(),
		features.NewMasterOfHexes(),
	} {
		assert.Equal(t, features.SourceHexblade, f.Source(), f.Key())
		assert.NotEmpty(t, f.Description(), f.Key())
	}
}
