package summon_test

import (
	"testing"

	"github.com/KirkDiggler/druid-summons/internal/domain/shared"
	"github.com/KirkDiggler/druid-summons/internal/domain/summon"
	"github.com/KirkDiggler/druid-summons/internal/testutils"
	mockuuid "github.com/KirkDiggler/druid-summons/internal/uuid/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSummoner_CreateInstances(t *testing.T) {
	ctrl := gomock.NewController(t)
	ids := mockuuid.NewMockGenerator(ctrl)
	summoner := summon.NewSummoner(ids)

	wolf := testutils.CreateTestMonster("Wolf", "Medium beast, unaligned", "1/4 (50 XP)", "11 (2d8+2)")

	t.Run("mighty summoner adds two hp per hit die", func(t *testing.T) {
		gomock.InOrder(
			ids.EXPECT().New().Return("wolf-1"),
			ids.EXPECT().New().Return("wolf-2"),
			ids.EXPECT().New().Return("wolf-3"),
		)

		creatures := summoner.CreateInstances(wolf, summon.Overrides{}, 3, true)

		require.Len(t, creatures, 3)
		seen := map[string]bool{}
		for _, creature := range creatures {
			assert.Equal(t, 4, creature.BonusHP)
			assert.Equal(t, 15, creature.HPMax)
			assert.Equal(t, 15, creature.CurrentHP)
			assert.Equal(t, 0, creature.TempHP)
			assert.Equal(t, "2d8", creature.HitDice)
			assert.Equal(t, "15 (11 (2d8+2))", creature.HitPointsText)
			assert.True(t, creature.MightySummoner)
			assert.False(t, seen[creature.ID])
			seen[creature.ID] = true
		}
		assert.Len(t, seen, 3)
	})

	t.Run("instances do not share ability maps", func(t *testing.T) {
		ids.EXPECT().New().Return("a")
		ids.EXPECT().New().Return("b")

		creatures := summoner.CreateInstances(wolf, summon.Overrides{}, 2, false)
		creatures[0].Abilities[shared.AttributeStrength] = "30 (+10)"

		assert.Equal(t, "12 (+1)", creatures[1].Abilities[shared.AttributeStrength])
	})

	t.Run("without mighty summoner", func(t *testing.T) {
		ids.EXPECT().New().Return("wolf-4")

		creatures := summoner.CreateInstances(wolf, summon.Overrides{}, 1, false)

		require.Len(t, creatures, 1)
		assert.Equal(t, 0, creatures[0].BonusHP)
		assert.Equal(t, 11, creatures[0].HPMax)
		assert.Equal(t, "11 (11 (2d8+2))", creatures[0].HitPointsText)
		assert.False(t, creatures[0].MightySummoner)
	})

	t.Run("no bonus when hit dice cannot be read", func(t *testing.T) {
		ids.EXPECT().New().Return("blob-1")
		blob := testutils.CreateTestMonster("Blob", "Small ooze", "1", "9")

		creatures := summoner.CreateInstances(blob, summon.Overrides{}, 1, true)

		require.Len(t, creatures, 1)
		assert.Equal(t, 0, creatures[0].BonusHP)
		assert.Equal(t, 9, creatures[0].HPMax)
		assert.Equal(t, "", creatures[0].HitDice)
	})

	t.Run("overrides win", func(t *testing.T) {
		ids.EXPECT().New().Return("wolf-5")
		hp := "20 (4d8 + 2)"
		ac := "15"

		creatures := summoner.CreateInstances(wolf, summon.Overrides{
			HitPoints:  &hp,
			ArmorClass: &ac,
			Scores:     map[shared.Attribute]string{shared.AttributeStrength: "16 (+3)"},
		}, 1, true)

		require.Len(t, creatures, 1)
		assert.Equal(t, 28, creatures[0].HPMax)
		assert.Equal(t, 8, creatures[0].BonusHP)
		assert.Equal(t, "4d8", creatures[0].HitDice)
		assert.Equal(t, "15", creatures[0].ArmorClass)
		assert.Equal(t, "16 (+3)", creatures[0].Abilities[shared.AttributeStrength])
		assert.Equal(t, "14 (+2)", creatures[0].Abilities[shared.AttributeDexterity])
	})

	t.Run("zero or negative quantity creates nothing", func(t *testing.T) {
		assert.Empty(t, summoner.CreateInstances(wolf, summon.Overrides{}, 0, false))
		assert.Empty(t, summoner.CreateInstances(wolf, summon.Overrides{}, -2, false))
	})
}

func TestSummonedCreature_WithTempHP(t *testing.T) {
	creature := summon.SummonedCreature{TempHP: 3}

	assert.Equal(t, 5, creature.WithTempHP(5).TempHP)
	assert.Equal(t, 3, creature.WithTempHP(2).TempHP)
	assert.Equal(t, 3, creature.WithTempHP(3).TempHP)
	assert.Equal(t, 3, creature.TempHP)
}

func TestMightySummonerBonus(t *testing.T) {
	assert.Equal(t, 4, summon.MightySummonerBonus("2d8"))
	assert.Equal(t, 22, summon.MightySummonerBonus("11d12"))
	assert.Equal(t, 0, summon.MightySummonerBonus(""))
}
