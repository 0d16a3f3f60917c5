package characters_test

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/druid-summons/internal/clock"
	"github.com/KirkDiggler/druid-summons/internal/domain/character"
	"github.com/KirkDiggler/druid-summons/internal/domain/shared"
	dnderr "github.com/KirkDiggler/druid-summons/internal/errors"
	"github.com/KirkDiggler/druid-summons/internal/repositories/characters"
	"github.com/KirkDiggler/druid-summons/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	client, mr := testutils.CreateTestRedisClient(t)
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	repo := characters.NewRedisRepository(&characters.RedisRepoConfig{
		Client: client,
		Clock:  &clock.Fixed{At: now},
	})

	char := character.New("moonleaf")
	char.Name = "Moonleaf"
	char.SetAbilityScores(map[shared.Attribute]int{
		shared.AttributeStrength:     8,
		shared.AttributeDexterity:    14,
		shared.AttributeConstitution: 14,
		shared.AttributeIntelligence: 10,
		shared.AttributeWisdom:       17,
		shared.AttributeCharisma:     12,
	})
	char.SetClasses([]character.ClassEntry{
		character.NewClassEntry("Druid", "Circle of the Shepherd", 6),
		character.NewClassEntry("Cleric", "Nature Domain", 1),
	})
	char.ClassFeatures.MightySummoner = true

	require.NoError(t, repo.Create(ctx, char))
	assert.True(t, mr.Exists("character:moonleaf"))
	assert.Equal(t, time.Duration(0), mr.TTL("character:moonleaf"))

	got, err := repo.Get(ctx, "moonleaf")
	require.NoError(t, err)
	assert.Equal(t, "Moonleaf", got.Name)
	assert.Equal(t, 7, got.Derived.TotalLevel)
	assert.Equal(t, 7, got.Derived.SpellcasterLevel)
	assert.Equal(t, 7, got.Derived.HitDicePool["d8"])
	assert.True(t, got.ClassFeatures.MightySummoner)
	assert.Equal(t, now, got.CreatedAt)

	got.ClassFeatures.BearSpiritActive = true
	require.NoError(t, repo.Update(ctx, got))

	again, err := repo.Get(ctx, "moonleaf")
	require.NoError(t, err)
	assert.True(t, again.ClassFeatures.BearSpiritActive)

	require.NoError(t, repo.Delete(ctx, "moonleaf"))
	_, err = repo.Get(ctx, "moonleaf")
	assert.True(t, dnderr.IsNotFound(err))
}
