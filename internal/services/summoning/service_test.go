package summoning_test

import (
	"context"
	"errors"
	"testing"

	"github.com/KirkDiggler/druid-summons/internal/domain/catalog"
	mockcatalog "github.com/KirkDiggler/druid-summons/internal/domain/catalog/mock"
	"github.com/KirkDiggler/druid-summons/internal/domain/shared"
	"github.com/KirkDiggler/druid-summons/internal/domain/summon"
	dnderr "github.com/KirkDiggler/druid-summons/internal/errors"
	"github.com/KirkDiggler/druid-summons/internal/repositories/summons"
	mocksummons "github.com/KirkDiggler/druid-summons/internal/repositories/summons/mock"
	mockcharacter "github.com/KirkDiggler/druid-summons/internal/services/character/mock"
	"github.com/KirkDiggler/druid-summons/internal/services/summoning"
	"github.com/KirkDiggler/druid-summons/internal/testutils"
	"github.com/KirkDiggler/druid-summons/internal/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const sessionID = "channel-1"

type SummoningServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockSource     *mockcatalog.MockSource
	mockCharacters *mockcharacter.MockService
	repository     summons.Repository
	service        summoning.Service
	ctx            context.Context
}

func (s *SummoningServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockSource = mockcatalog.NewMockSource(s.ctrl)
	s.mockCharacters = mockcharacter.NewMockService(s.ctrl)
	s.repository = summons.NewInMemoryRepository()
	s.ctx = context.Background()

	s.service = summoning.NewService(&summoning.ServiceConfig{
		Source:           s.mockSource,
		Repository:       s.repository,
		CharacterService: s.mockCharacters,
		UUIDGenerator:    uuid.NewSequentialGenerator("summon"),
	})
}

func (s *SummoningServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestSummoningServiceSuite(t *testing.T) {
	suite.Run(t, new(SummoningServiceTestSuite))
}

func (s *SummoningServiceTestSuite) expectCatalog() {
	s.mockSource.EXPECT().Monsters(gomock.Any()).Return(testutils.CreateTestMonsters(), nil).Times(1)
	s.mockSource.EXPECT().Spells(gomock.Any()).Return(testutils.CreateTestSpells(), nil).Times(1)
}

func (s *SummoningServiceTestSuite) summonWolves(count int) []summon.SummonedCreature {
	mighty := false
	created, err := s.service.Summon(s.ctx, &summoning.SummonInput{
		SessionID:      sessionID,
		CreatureName:   "wolf",
		Quantity:       count,
		MightySummoner: &mighty,
	})
	s.Require().NoError(err)
	return created
}

func names(monsters []catalog.MonsterRecord) []string {
	out := make([]string, 0, len(monsters))
	for _, monster := range monsters {
		out = append(out, monster.Name)
	}
	return out
}

func ptr[T any](v T) *T {
	return &v
}

func (s *SummoningServiceTestSuite) TestCatalogLoadedOnce() {
	s.expectCatalog()

	_, err := s.service.ListConjureSpells(s.ctx)
	s.Require().NoError(err)
	_, err = s.service.SearchCreatures(s.ctx, "", "")
	s.Require().NoError(err)
}

func (s *SummoningServiceTestSuite) TestCatalogLoadRetriedAfterFailure() {
	s.mockSource.EXPECT().Monsters(gomock.Any()).Return(nil, errors.New("file missing"))

	_, err := s.service.ListConjureSpells(s.ctx)
	s.True(dnderr.IsUnavailable(err))

	s.expectCatalog()
	spells, err := s.service.ListConjureSpells(s.ctx)
	s.Require().NoError(err)
	s.NotEmpty(spells)
}

func (s *SummoningServiceTestSuite) TestListConjureSpells() {
	s.expectCatalog()

	spells, err := s.service.ListConjureSpells(s.ctx)
	s.Require().NoError(err)

	got := make([]string, 0, len(spells))
	for _, spell := range spells {
		got = append(got, spell.Name)
	}
	s.Equal([]string{
		shared.SpellFindFamiliar,
		shared.SpellFindSteed,
		shared.SpellConjureAnimals,
		shared.SpellConjureWoodlandBeings,
		shared.SpellConjureMinorElementals,
		shared.SpellConjureElemental,
	}, got)
}

func (s *SummoningServiceTestSuite) TestGetSpellDetail() {
	s.expectCatalog()

	detail, err := s.service.GetSpellDetail(s.ctx, "conjure animals", catalog.CreatureFilter{})
	s.Require().NoError(err)
	s.Equal(shared.SpellConjureAnimals, detail.Spell.Name)
	s.Equal([]string{"Brown Bear", "Cat", "Giant Elk", "Owl", "Wolf"}, names(detail.Creatures))
	s.Equal(5, detail.TotalCreatures)
	s.Equal([]string{"0", "1/4", "1", "2"}, detail.AvailableCRs)
	s.Equal([]string{"Perception", "Stealth"}, detail.AvailableSkills)
	s.Contains(detail.AvailableTraits, "Pack Tactics")
}

func (s *SummoningServiceTestSuite) TestGetSpellDetail_Filtered() {
	s.expectCatalog()

	detail, err := s.service.GetSpellDetail(s.ctx, shared.SpellConjureAnimals, catalog.CreatureFilter{Skill: "perception"})
	s.Require().NoError(err)
	s.Equal([]string{"Brown Bear", "Giant Elk", "Wolf"}, names(detail.Creatures))
	s.Equal(5, detail.TotalCreatures)
	s.Len(detail.AvailableCRs, 4)

	detail, err = s.service.GetSpellDetail(s.ctx, shared.SpellConjureAnimals, catalog.CreatureFilter{CR: "1/4"})
	s.Require().NoError(err)
	s.Equal([]string{"Wolf"}, names(detail.Creatures))
}

func (s *SummoningServiceTestSuite) TestGetSpellDetail_NotFound() {
	s.expectCatalog()

	_, err := s.service.GetSpellDetail(s.ctx, "Wish", catalog.CreatureFilter{})
	s.True(dnderr.IsNotFound(err))
}

func (s *SummoningServiceTestSuite) TestListSummonable() {
	s.expectCatalog()

	creatures, err := s.service.ListSummonable(s.ctx, "find familiar")
	s.Require().NoError(err)
	s.Equal([]string{"Cat", "Owl"}, names(creatures))

	creatures, err = s.service.ListSummonable(s.ctx, shared.SpellConjureMinorElementals)
	s.Require().NoError(err)
	s.Equal([]string{"Steam Mephit"}, names(creatures))
}

func (s *SummoningServiceTestSuite) TestListSummonable_NotASummoningSpell() {
	_, err := s.service.ListSummonable(s.ctx, "Fireball")
	s.True(dnderr.IsNotFound(err))
}

func (s *SummoningServiceTestSuite) TestSearchCreatures() {
	s.expectCatalog()

	found, err := s.service.SearchCreatures(s.ctx, "", "1/4")
	s.Require().NoError(err)
	s.Equal([]string{"Wolf", "Pixie", "Steam Mephit", "Goblin"}, names(found))
}

func (s *SummoningServiceTestSuite) TestGetCreature() {
	s.expectCatalog()

	detail, err := s.service.GetCreature(s.ctx, "BROWN BEAR")
	s.Require().NoError(err)
	s.Equal("Brown Bear", detail.Creature.Name)
	s.Equal(34, detail.HPMax)
	s.Equal("4d10", detail.HitDice)

	_, err = s.service.GetCreature(s.ctx, "Tarrasque")
	s.True(dnderr.IsNotFound(err))
}

func (s *SummoningServiceTestSuite) TestSummon_MightySummonerFromCharacter() {
	s.expectCatalog()
	druid := testutils.CreateTestDruid("druid", 6)
	druid.ClassFeatures.MightySummoner = true
	s.mockCharacters.EXPECT().Get(s.ctx, "druid").Return(druid, nil)

	created, err := s.service.Summon(s.ctx, &summoning.SummonInput{
		SessionID:    sessionID,
		CreatureName: "Wolf",
		Quantity:     3,
		CharacterID:  "druid",
	})
	s.Require().NoError(err)
	s.Require().Len(created, 3)

	for i, creature := range created {
		s.Equal([]string{"summon_1", "summon_2", "summon_3"}[i], creature.ID)
		s.Equal(15, creature.HPMax)
		s.Equal(15, creature.CurrentHP)
		s.Equal(4, creature.BonusHP)
		s.Equal("15 (11 (2d8 + 2))", creature.HitPointsText)
		s.True(creature.MightySummoner)
	}

	listed, err := s.service.ListSummoned(s.ctx, sessionID)
	s.Require().NoError(err)
	s.Len(listed, 3)
}

func (s *SummoningServiceTestSuite) TestSummon_ExplicitFlagAndOverrides() {
	s.expectCatalog()

	created, err := s.service.Summon(s.ctx, &summoning.SummonInput{
		SessionID:      sessionID,
		CreatureName:   "Brown Bear",
		Quantity:       1,
		MightySummoner: ptr(false),
		CharacterID:    "druid",
		Overrides: summon.Overrides{
			ArmorClass: ptr("14 (natural armor)"),
			Scores:     map[shared.Attribute]string{shared.AttributeStrength: "20 (+5)"},
		},
	})
	s.Require().NoError(err)
	s.Require().Len(created, 1)
	s.Equal(34, created[0].HPMax)
	s.Equal("14 (natural armor)", created[0].ArmorClass)
	s.Equal("20 (+5)", created[0].Abilities[shared.AttributeStrength])
	s.False(created[0].MightySummoner)
}

func (s *SummoningServiceTestSuite) TestSummon_ZeroQuantity() {
	s.expectCatalog()

	created := s.summonWolves(0)
	s.Empty(created)

	listed, err := s.service.ListSummoned(s.ctx, sessionID)
	s.Require().NoError(err)
	s.Empty(listed)
}

func (s *SummoningServiceTestSuite) TestSummon_QuantityCapped() {
	created := s.summonWolvesExpectingError(summoning.MaxQuantity + 1)
	s.Nil(created)

	listed, err := s.service.ListSummoned(s.ctx, sessionID)
	s.Require().NoError(err)
	s.Empty(listed)
}

func (s *SummoningServiceTestSuite) TestSummon_MaxQuantity() {
	s.expectCatalog()

	created := s.summonWolves(summoning.MaxQuantity)
	s.Len(created, summoning.MaxQuantity)
}

func (s *SummoningServiceTestSuite) summonWolvesExpectingError(count int) []summon.SummonedCreature {
	mighty := false
	created, err := s.service.Summon(s.ctx, &summoning.SummonInput{
		SessionID:      sessionID,
		CreatureName:   "wolf",
		Quantity:       count,
		MightySummoner: &mighty,
	})
	s.True(dnderr.IsInvalidArgument(err))
	return created
}

func (s *SummoningServiceTestSuite) TestSummon_UnknownCreature() {
	s.expectCatalog()

	_, err := s.service.Summon(s.ctx, &summoning.SummonInput{SessionID: sessionID, CreatureName: "Tarrasque", Quantity: 1})
	s.True(dnderr.IsNotFound(err))
	s.Equal("Tarrasque", dnderr.GetMeta(err)["creature"])
}

func (s *SummoningServiceTestSuite) TestSummon_RequiresSession() {
	_, err := s.service.Summon(s.ctx, &summoning.SummonInput{CreatureName: "Wolf", Quantity: 1})
	s.True(dnderr.IsInvalidArgument(err))

	_, err = s.service.Summon(s.ctx, nil)
	s.True(dnderr.IsInvalidArgument(err))
}

func (s *SummoningServiceTestSuite) TestUpdateHP() {
	s.expectCatalog()
	wolves := s.summonWolves(2)

	updated, err := s.service.UpdateHP(s.ctx, &summoning.UpdateHPInput{
		SessionID:  sessionID,
		CreatureID: wolves[0].ID,
		CurrentHP:  ptr("-3"),
		TempHP:     ptr("5"),
	})
	s.Require().NoError(err)
	s.Equal(-3, updated.CurrentHP)
	s.Equal(5, updated.TempHP)

	listed, err := s.service.ListSummoned(s.ctx, sessionID)
	s.Require().NoError(err)
	s.Equal(-3, listed[0].CurrentHP)
	s.Equal(11, listed[1].CurrentHP)
}

func (s *SummoningServiceTestSuite) TestUpdateHP_InvalidInputLeavesRosterUnchanged() {
	s.expectCatalog()
	wolves := s.summonWolves(1)

	_, err := s.service.UpdateHP(s.ctx, &summoning.UpdateHPInput{
		SessionID:  sessionID,
		CreatureID: wolves[0].ID,
		CurrentHP:  ptr("4"),
		TempHP:     ptr("lots"),
	})
	s.True(dnderr.IsInvalidArgument(err))

	listed, err := s.service.ListSummoned(s.ctx, sessionID)
	s.Require().NoError(err)
	s.Equal(11, listed[0].CurrentHP)
}

func (s *SummoningServiceTestSuite) TestUpdateHP_UnknownCreature() {
	_, err := s.service.UpdateHP(s.ctx, &summoning.UpdateHPInput{
		SessionID:  sessionID,
		CreatureID: "missing",
		CurrentHP:  ptr("4"),
	})
	s.True(dnderr.IsNotFound(err))
}

func (s *SummoningServiceTestSuite) TestSetTempHP() {
	s.expectCatalog()
	wolves := s.summonWolves(1)

	updated, err := s.service.SetTempHP(s.ctx, sessionID, wolves[0].ID, "-4")
	s.Require().NoError(err)
	s.Equal(0, updated.TempHP)

	updated, err = s.service.SetTempHP(s.ctx, sessionID, wolves[0].ID, "7")
	s.Require().NoError(err)
	s.Equal(7, updated.TempHP)

	_, err = s.service.SetTempHP(s.ctx, sessionID, wolves[0].ID, "x")
	s.True(dnderr.IsInvalidArgument(err))
}

func (s *SummoningServiceTestSuite) TestRemove() {
	s.expectCatalog()
	wolves := s.summonWolves(2)

	s.NoError(s.service.Remove(s.ctx, sessionID, wolves[0].ID))

	listed, err := s.service.ListSummoned(s.ctx, sessionID)
	s.Require().NoError(err)
	s.Require().Len(listed, 1)
	s.Equal(wolves[1].ID, listed[0].ID)

	// Dismissing a creature that is already gone is not an error
	s.NoError(s.service.Remove(s.ctx, sessionID, wolves[0].ID))
	s.NoError(s.service.Remove(s.ctx, sessionID, "never-summoned"))

	listed, err = s.service.ListSummoned(s.ctx, sessionID)
	s.Require().NoError(err)
	s.Len(listed, 1)
}

func (s *SummoningServiceTestSuite) TestToggleBearSpirit() {
	s.expectCatalog()
	wolves := s.summonWolves(2)
	_, err := s.service.SetTempHP(s.ctx, sessionID, wolves[1].ID, "20")
	s.Require().NoError(err)

	druid := testutils.CreateTestDruid("druid", 6)
	druid.ClassFeatures.BearSpiritActive = true
	s.mockCharacters.EXPECT().SetBearSpirit(s.ctx, "druid", true).Return(druid, nil)

	result, err := s.service.ToggleBearSpirit(s.ctx, &summoning.BearSpiritInput{
		SessionID:   sessionID,
		CharacterID: "druid",
		Active:      true,
	})
	s.Require().NoError(err)
	s.True(result.Active)
	s.Equal(11, result.TempHP)
	s.Equal(11, result.Creatures[0].TempHP)
	s.Equal(20, result.Creatures[1].TempHP)
}

func (s *SummoningServiceTestSuite) TestToggleBearSpiritOffKeepsTempHP() {
	s.expectCatalog()
	wolves := s.summonWolves(1)
	_, err := s.service.SetTempHP(s.ctx, sessionID, wolves[0].ID, "11")
	s.Require().NoError(err)

	druid := testutils.CreateTestDruid("druid", 6)
	s.mockCharacters.EXPECT().SetBearSpirit(s.ctx, "druid", false).Return(druid, nil)

	result, err := s.service.ToggleBearSpirit(s.ctx, &summoning.BearSpiritInput{
		SessionID:   sessionID,
		CharacterID: "druid",
		Active:      false,
	})
	s.Require().NoError(err)
	s.False(result.Active)
	s.Equal(0, result.TempHP)
	s.Equal(11, result.Creatures[0].TempHP)
}

func (s *SummoningServiceTestSuite) TestToggleBearSpirit_UsesDruidLevelOnly() {
	s.expectCatalog()
	s.summonWolves(1)

	multiclass := testutils.CreateTestDruid("druid", 2)
	multiclass.Classes = append(multiclass.Classes, multiclass.Classes[0])
	multiclass.Classes[1].Name = "Cleric"
	multiclass.Classes[1].Level = 5
	s.mockCharacters.EXPECT().SetBearSpirit(s.ctx, "druid", true).Return(multiclass, nil)

	result, err := s.service.ToggleBearSpirit(s.ctx, &summoning.BearSpiritInput{
		SessionID:   sessionID,
		CharacterID: "druid",
		Active:      true,
	})
	s.Require().NoError(err)
	s.Equal(7, result.TempHP)
}

func (s *SummoningServiceTestSuite) TestEndSession() {
	s.expectCatalog()
	s.summonWolves(3)

	s.NoError(s.service.EndSession(s.ctx, sessionID))

	listed, err := s.service.ListSummoned(s.ctx, sessionID)
	s.Require().NoError(err)
	s.Empty(listed)
}

func TestSummon_SaveFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mockcatalog.NewMockSource(ctrl)
	repo := mocksummons.NewMockRepository(ctrl)
	characters := mockcharacter.NewMockService(ctrl)
	ctx := context.Background()

	source.EXPECT().Monsters(gomock.Any()).Return(testutils.CreateTestMonsters(), nil)
	source.EXPECT().Spells(gomock.Any()).Return(testutils.CreateTestSpells(), nil)
	repo.EXPECT().Get(ctx, sessionID).Return(summon.NewRoster(), nil)
	repo.EXPECT().Save(ctx, sessionID, gomock.Any()).Return(errors.New("redis error"))

	svc := summoning.NewService(&summoning.ServiceConfig{
		Source:           source,
		Repository:       repo,
		CharacterService: characters,
	})

	created, err := svc.Summon(ctx, &summoning.SummonInput{SessionID: sessionID, CreatureName: "Wolf", Quantity: 1})
	require.Error(t, err)
	assert.Nil(t, created)
}

func TestToggleBearSpirit_RosterLoadFailureLeavesFlagAlone(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mockcatalog.NewMockSource(ctrl)
	repo := mocksummons.NewMockRepository(ctrl)
	characters := mockcharacter.NewMockService(ctrl)
	ctx := context.Background()

	repo.EXPECT().Get(ctx, sessionID).Return(nil, errors.New("redis error"))

	svc := summoning.NewService(&summoning.ServiceConfig{
		Source:           source,
		Repository:       repo,
		CharacterService: characters,
	})

	result, err := svc.ToggleBearSpirit(ctx, &summoning.BearSpiritInput{
		SessionID:   sessionID,
		CharacterID: "druid",
		Active:      true,
	})
	require.Error(t, err)
	assert.Nil(t, result)
}

func TestToggleBearSpirit_SaveFailureSwitchesFlagBackOff(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mockcatalog.NewMockSource(ctrl)
	repo := mocksummons.NewMockRepository(ctrl)
	characters := mockcharacter.NewMockService(ctrl)
	ctx := context.Background()

	druid := testutils.CreateTestDruid("druid", 6)
	gomock.InOrder(
		repo.EXPECT().Get(ctx, sessionID).Return(summon.NewRoster(), nil),
		characters.EXPECT().SetBearSpirit(ctx, "druid", true).Return(druid, nil),
		repo.EXPECT().Save(ctx, sessionID, gomock.Any()).Return(errors.New("redis error")),
		characters.EXPECT().SetBearSpirit(ctx, "druid", false).Return(druid, nil),
	)

	svc := summoning.NewService(&summoning.ServiceConfig{
		Source:           source,
		Repository:       repo,
		CharacterService: characters,
	})

	result, err := svc.ToggleBearSpirit(ctx, &summoning.BearSpiritInput{
		SessionID:   sessionID,
		CharacterID: "druid",
		Active:      true,
	})
	require.Error(t, err)
	assert.Nil(t, result)
}
