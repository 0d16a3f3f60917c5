package character_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/KirkDiggler/druid-summons/internal/domain/character"
	"github.com/KirkDiggler/druid-summons/internal/domain/rulebook"
	"github.com/KirkDiggler/druid-summons/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	char := character.New("char-1")

	assert.Equal(t, "char-1", char.ID)
	assert.Len(t, char.AbilityScores, 6)
	for _, attr := range shared.Attributes {
		assert.Equal(t, 10, char.AbilityScores[attr], attr)
	}
	assert.Empty(t, char.Classes)
	assert.Equal(t, 10, char.AC)
	assert.Equal(t, "30 ft", char.Speed)
	assert.Equal(t, 2, char.Derived.ProficiencyBonus)
	assert.Equal(t, 0, char.Derived.TotalLevel)
	assert.False(t, char.ClassFeatures.MightySummoner)
	assert.False(t, char.ClassFeatures.BearSpiritActive)
}

func TestNewClassEntry(t *testing.T) {
	entry := character.NewClassEntry(rulebook.ClassPaladin, "Oath of the Ancients", 2)

	assert.Equal(t, "d10", entry.HitDie)
	assert.Equal(t, rulebook.CasterHalf, entry.Spellcasting)
	assert.Equal(t, map[shared.Attribute]int{
		shared.AttributeStrength: 13,
		shared.AttributeCharisma: 13,
	}, entry.PrimaryAbility)

	unknown := character.NewClassEntry("Artificer", "", 1)
	assert.Equal(t, rulebook.DefaultHitDie, unknown.HitDie)
	assert.Equal(t, rulebook.CasterNone, unknown.Spellcasting)
	assert.Nil(t, unknown.PrimaryAbility)
}

func TestCharacter_ClassLevel(t *testing.T) {
	char := character.New("char-1")
	char.SetClasses([]character.ClassEntry{
		character.NewClassEntry(rulebook.ClassDruid, "Circle of the Shepherd", 6),
		character.NewClassEntry(rulebook.ClassCleric, "", 1),
	})

	assert.Equal(t, 6, char.ClassLevel("druid"))
	assert.Equal(t, 6, char.ClassLevel("DRUID"))
	assert.Equal(t, 1, char.ClassLevel(rulebook.ClassCleric))
	assert.Equal(t, 0, char.ClassLevel(rulebook.ClassWizard))
	assert.Equal(t, 7, char.Derived.TotalLevel)
}

func TestCharacter_CloneIsDeep(t *testing.T) {
	char := character.New("char-1")
	char.SetClasses([]character.ClassEntry{character.NewClassEntry(rulebook.ClassDruid, "", 4)})
	char.SpellsKnownByClass["Druid"] = []string{"Conjure Animals"}

	clone := char.Clone()
	clone.AbilityScores[shared.AttributeWisdom] = 18
	clone.Classes[0].Level = 9
	clone.Derived.HitDicePool["d8"] = 99
	clone.SpellsKnownByClass["Druid"][0] = "Moonbeam"

	assert.Equal(t, 10, char.AbilityScores[shared.AttributeWisdom])
	assert.Equal(t, 4, char.Classes[0].Level)
	assert.Equal(t, 4, char.Derived.HitDicePool["d8"])
	assert.Equal(t, "Conjure Animals", char.SpellsKnownByClass["Druid"][0])
}

func TestCharacter_JSONRoundTripKeepsDerived(t *testing.T) {
	char := character.New("char-1")
	char.SetClasses([]character.ClassEntry{character.NewClassEntry(rulebook.ClassDruid, "", 5)})

	data, err := json.Marshal(char)
	require.NoError(t, err)

	var decoded character.Character
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, char.Derived, decoded.Derived)
	assert.Equal(t, char.Classes, decoded.Classes)
}

func TestParseAbilityScore(t *testing.T) {
	assert.Equal(t, 15, character.ParseAbilityScore("15"))
	assert.Equal(t, 8, character.ParseAbilityScore(" 8 "))
	assert.Equal(t, 10, character.ParseAbilityScore("abc"))
	assert.Equal(t, 10, character.ParseAbilityScore(""))
}

func TestParseClassLevel(t *testing.T) {
	assert.Equal(t, 3, character.ParseClassLevel("3"))
	assert.Equal(t, 1, character.ParseClassLevel("three"))
	assert.Equal(t, 1, character.ParseClassLevel(""))
	assert.Equal(t, 1, character.ParseClassLevel("0"))
	assert.Equal(t, 1, character.ParseClassLevel("-2"))
}

func TestCharacter_ApplySheetUpdate_LevelsBelowOne(t *testing.T) {
	char := character.New("char-1")

	char.ApplySheetUpdate(character.SheetUpdate{
		Classes: []character.ClassInput{
			{Name: rulebook.ClassDruid, Level: "0"},
			{Name: rulebook.ClassWizard, Level: "-2"},
		},
	})

	require.Len(t, char.Classes, 2)
	assert.Equal(t, 1, char.Classes[0].Level)
	assert.Equal(t, 1, char.Classes[1].Level)
	assert.Equal(t, 2, char.Derived.TotalLevel)
	assert.Equal(t, 2, char.Derived.SpellcasterLevel)
	assert.Equal(t, map[string]int{"d8": 1, "d6": 1}, char.Derived.HitDicePool)
}

func TestCharacter_ApplySheetUpdate(t *testing.T) {
	char := character.New("char-1")
	char.ClassFeatures.BearSpiritActive = true

	char.ApplySheetUpdate(character.SheetUpdate{
		Name:       "Rowan",
		Race:       "Firbolg",
		Experience: "not a number",
		MaxHP:      "45",
		CurrentHP:  "",
		AC:         "15",
		Speed:      "30 ft",
		AbilityScores: map[shared.Attribute]string{
			shared.AttributeWisdom:       "18",
			shared.AttributeConstitution: "x",
		},
		Classes: []character.ClassInput{
			{Name: rulebook.ClassDruid, Subclass: "Circle of the Shepherd", Level: "6"},
			{Name: "", Level: "4"},
			{Name: rulebook.ClassCleric, Level: "bad"},
		},
		MightySummoner: true,
	})

	assert.Equal(t, "Rowan", char.Name)
	assert.Equal(t, 0, char.Experience)
	assert.Equal(t, 45, char.MaxHP)
	assert.Equal(t, 0, char.CurrentHP)
	assert.Equal(t, 15, char.AC)
	assert.Equal(t, 18, char.AbilityScores[shared.AttributeWisdom])
	assert.Equal(t, 10, char.AbilityScores[shared.AttributeConstitution])
	assert.Equal(t, 10, char.AbilityScores[shared.AttributeStrength])

	require.Len(t, char.Classes, 2)
	assert.Equal(t, 6, char.Classes[0].Level)
	assert.Equal(t, 1, char.Classes[1].Level)
	assert.Equal(t, 7, char.Derived.TotalLevel)
	assert.Equal(t, 7, char.Derived.SpellcasterLevel)

	assert.True(t, char.ClassFeatures.MightySummoner)
	assert.False(t, char.ClassFeatures.GuardianSpirit)
	assert.True(t, char.ClassFeatures.BearSpiritActive)
}

func TestCharacter_Merge(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("replaces classes and keeps local toggles", func(t *testing.T) {
		char := character.New("char-1")
		char.Name = "Rowan"
		char.ClassFeatures.BearSpiritActive = true
		char.SpellsKnownByClass["Druid"] = []string{"Conjure Animals"}

		var record character.ImportRecord
		require.NoError(t, json.Unmarshal([]byte(`{
			"name": "",
			"race": "Firbolg",
			"classes": [{"name": "Druid", "level": 8}],
			"ability_scores": {"wisdom": 18},
			"max_hp": 60,
			"proficiency_bonus": 9,
			"class_features": {"mighty_summoner": true}
		}`), &record))

		char.Merge(record, now)

		assert.Equal(t, "Rowan", char.Name)
		assert.Equal(t, "Firbolg", char.Race)
		assert.Equal(t, 8, char.Derived.TotalLevel)
		assert.Equal(t, 3, char.Derived.ProficiencyBonus)
		assert.Equal(t, map[string]int{"d8": 8}, char.Derived.HitDicePool)
		assert.Equal(t, 60, char.MaxHP)
		assert.Equal(t, 10, char.AC)
		assert.Equal(t, map[shared.Attribute]int{shared.AttributeWisdom: 18}, char.AbilityScores)
		assert.True(t, char.ClassFeatures.MightySummoner)
		assert.True(t, char.ClassFeatures.BearSpiritActive)
		assert.Equal(t, []string{"Conjure Animals"}, char.SpellsKnownByClass["Druid"])
		assert.Equal(t, character.SourceManualImport, char.Sync.Source)
		assert.Equal(t, "2025-03-01T12:00:00Z", char.Sync.LastSync)
	})

	t.Run("imported levels below one count as level one", func(t *testing.T) {
		char := character.New("char-1")

		var record character.ImportRecord
		require.NoError(t, json.Unmarshal([]byte(`{
			"classes": [
				{"name": "Druid", "hit_die": "d8", "spellcasting": "full", "level": 0},
				{"name": "Wizard", "hit_die": "d6", "spellcasting": "full", "level": -2}
			]
		}`), &record))

		char.Merge(record, now)

		require.Len(t, char.Classes, 2)
		assert.Equal(t, 1, char.Classes[0].Level)
		assert.Equal(t, 1, char.Classes[1].Level)
		assert.Equal(t, 2, char.Derived.TotalLevel)
		assert.Equal(t, 2, char.Derived.SpellcasterLevel)
		assert.Equal(t, map[string]int{"d8": 1, "d6": 1}, char.Derived.HitDicePool)
	})

	t.Run("import can switch bear spirit off", func(t *testing.T) {
		char := character.New("char-1")
		char.ClassFeatures.BearSpiritActive = true
		off := false

		char.Merge(character.ImportRecord{
			ClassFeatures: &character.ImportedFeatures{BearSpiritActive: &off},
		}, now)

		assert.False(t, char.ClassFeatures.BearSpiritActive)
	})

	t.Run("sync metadata is copied when present", func(t *testing.T) {
		char := character.New("char-1")
		sync := &character.SyncInfo{CharacterID: "12345", Source: "dndbeyond_bookmarklet", LastSync: "2025-01-01T00:00:00Z"}

		char.Merge(character.ImportRecord{Sync: sync}, now)

		assert.Equal(t, *sync, char.Sync)
	})
}
