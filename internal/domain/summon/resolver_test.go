package summon_test

import (
	"testing"

	"github.com/KirkDiggler/druid-summons/internal/domain/catalog"
	"github.com/KirkDiggler/druid-summons/internal/domain/shared"
	"github.com/KirkDiggler/druid-summons/internal/domain/summon"
	"github.com/KirkDiggler/druid-summons/internal/testutils"
	"github.com/stretchr/testify/assert"
)

func names(monsters []catalog.MonsterRecord) []string {
	out := make([]string, 0, len(monsters))
	for _, monster := range monsters {
		out = append(out, monster.Name)
	}
	return out
}

func TestResolveSummonable_UnknownSpell(t *testing.T) {
	result := summon.ResolveSummonable("Fireball", testutils.CreateTestMonsters())

	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestResolveSummonable_FindFamiliar(t *testing.T) {
	familiars := []string{
		"Weasel", "Bat", "Cat", "Crab", "Frog", "Hawk", "Lizard", "Octopus",
		"Owl", "Poisonous Snake", "Fish", "Rat", "Raven", "Sea Horse", "Spider",
	}

	monsters := []catalog.MonsterRecord{
		testutils.CreateTestMonster("Wolf", "Medium beast, unaligned", "1/4", "11 (2d8 + 2)"),
		testutils.CreateTestMonster("Imp", "Tiny fiend (devil), lawful evil", "1", "10 (3d4 + 3)"),
	}
	for _, name := range familiars {
		monsters = append(monsters, testutils.CreateTestMonster(name, "Tiny beast, unaligned", "0 (10 XP)", "1 (1d4 - 1)"))
	}

	result := summon.ResolveSummonable(shared.SpellFindFamiliar, monsters)

	assert.Equal(t, []string{
		"Bat", "Cat", "Crab", "Fish", "Frog", "Hawk", "Lizard", "Octopus",
		"Owl", "Poisonous Snake", "Rat", "Raven", "Sea Horse", "Spider", "Weasel",
	}, names(result))
}

func TestResolveSummonable_AllowListIgnoresCase(t *testing.T) {
	monsters := []catalog.MonsterRecord{
		testutils.CreateTestMonster("WARHORSE", "Large beast", "1/2", "19 (3d10 + 3)"),
		testutils.CreateTestMonster("pony", "Medium beast", "1/8", "11 (2d8 + 2)"),
	}

	result := summon.ResolveSummonable(shared.SpellFindSteed, monsters)

	assert.Equal(t, []string{"WARHORSE", "pony"}, names(result))
}

func TestResolveSummonable_ConjureAnimals(t *testing.T) {
	result := summon.ResolveSummonable(shared.SpellConjureAnimals, testutils.CreateTestMonsters())

	assert.Equal(t, []string{"Brown Bear", "Cat", "Giant Elk", "Owl", "Wolf"}, names(result))
	for _, monster := range result {
		assert.LessOrEqual(t, monster.ChallengeRating(), 2.0)
		assert.Contains(t, monster.Meta, "beast")
	}
}

func TestResolveSummonable_TypeMatchIgnoresCase(t *testing.T) {
	monsters := []catalog.MonsterRecord{
		testutils.CreateTestMonster("Sprite", "Tiny FEY, neutral good", "1/4", "2 (1d4)"),
	}

	result := summon.ResolveSummonable(shared.SpellConjureWoodlandBeings, monsters)

	assert.Equal(t, []string{"Sprite"}, names(result))
}

func TestResolveSummonable_ConjureFeyTakesBeastsAndFey(t *testing.T) {
	result := summon.ResolveSummonable(shared.SpellConjureFey, testutils.CreateTestMonsters())

	assert.Equal(t, []string{"Brown Bear", "Cat", "Dryad", "Giant Elk", "Mammoth", "Owl", "Pixie", "Wolf"}, names(result))
}

func TestResolveSummonable_UnparseableChallengeCountsAsZero(t *testing.T) {
	monsters := []catalog.MonsterRecord{
		testutils.CreateTestMonster("Mystery Beast", "Medium beast", "unknown", "9 (2d8)"),
	}

	result := summon.ResolveSummonable(shared.SpellConjureAnimals, monsters)

	assert.Equal(t, []string{"Mystery Beast"}, names(result))
}

func TestResolveSummonable_StableForEqualNames(t *testing.T) {
	first := testutils.CreateTestMonster("Wolf", "Medium beast", "1/4", "11 (2d8 + 2)")
	second := testutils.CreateTestMonster("Wolf", "Medium beast", "1/4", "13 (3d8)")

	result := summon.ResolveSummonable(shared.SpellConjureAnimals, []catalog.MonsterRecord{first, second})

	assert.Equal(t, "11 (2d8 + 2)", result[0].HitPoints)
	assert.Equal(t, "13 (3d8)", result[1].HitPoints)
}

func TestResolveSummonable_UnreadableChallengeCountsAsZero(t *testing.T) {
	monsters := []catalog.MonsterRecord{
		testutils.CreateTestMonster("Wolf", "Medium beast, unaligned", "1/4 (50 XP)", "11 (2d8 + 2)"),
		testutils.CreateTestMonster("Weird Beast", "Medium beast, unaligned", "NaN (0 XP)", "5 (1d8)"),
		testutils.CreateTestMonster("Hex Beast", "Medium beast, unaligned", "0x1p3", "5 (1d8)"),
		testutils.CreateTestMonster("Brown Bear", "Large beast, unaligned", "1 (200 XP)", "34 (4d10 + 12)"),
		testutils.CreateTestMonster("Mammoth", "Huge beast, unaligned", "6 (2,300 XP)", "126 (11d12 + 55)"),
	}

	assert.Equal(t, float64(0), monsters[1].ChallengeRating())
	assert.Equal(t, float64(0), monsters[2].ChallengeRating())

	result := summon.ResolveSummonable(shared.SpellConjureAnimals, monsters)

	assert.Equal(t, []string{"Brown Bear", "Hex Beast", "Weird Beast", "Wolf"}, names(result))
}
