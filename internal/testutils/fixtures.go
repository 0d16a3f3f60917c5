package testutils

import (
	"github.com/KirkDiggler/druid-summons/internal/domain/catalog"
	"github.com/KirkDiggler/druid-summons/internal/domain/character"
	"github.com/KirkDiggler/druid-summons/internal/domain/rulebook"
	"github.com/KirkDiggler/druid-summons/internal/domain/shared"
)

// CreateTestMonster creates a monster record with the fields summoning cares about
func CreateTestMonster(name, meta, challenge, hitPoints string) catalog.MonsterRecord {
	return catalog.MonsterRecord{
		Name:       name,
		Meta:       meta,
		ArmorClass: "12",
		HitPoints:  hitPoints,
		Speed:      "30 ft.",
		STR:        "12 (+1)",
		DEX:        "14 (+2)",
		CON:        "12 (+1)",
		INT:        "2 (-4)",
		WIS:        "12 (+1)",
		CHA:        "6 (-2)",
		Challenge:  challenge,
	}
}

// CreateTestMonsters returns a small bestiary covering beasts, fey, elementals and familiars
func CreateTestMonsters() []catalog.MonsterRecord {
	wolf := CreateTestMonster("Wolf", "Medium beast, unaligned", "1/4 (50 XP)", "11 (2d8 + 2)")
	wolf.Skills = "Perception +3, Stealth +4"
	wolf.Traits = "Keen Hearing and Smell. The wolf has advantage on Wisdom checks. Pack Tactics. The wolf has advantage on attack rolls."

	brownBear := CreateTestMonster("Brown Bear", "Large beast, unaligned", "1 (200 XP)", "34 (4d10 + 12)")
	brownBear.Skills = "Perception +3"
	brownBear.Traits = "Keen Smell. The bear has advantage on Wisdom checks that rely on smell."

	giantElk := CreateTestMonster("Giant Elk", "Huge beast, unaligned", "2 (450 XP)", "42 (5d12 + 10)")
	giantElk.Skills = "Perception +4"
	giantElk.Traits = "Charge. If the elk moves at least 20 feet straight toward a target..."

	mammoth := CreateTestMonster("Mammoth", "Huge beast, unaligned", "6 (2,300 XP)", "126 (11d12 + 55)")

	pixie := CreateTestMonster("Pixie", "Tiny fey, neutral good", "1/4 (50 XP)", "1 (1d4 - 1)")
	dryad := CreateTestMonster("Dryad", "Medium fey, neutral", "1 (200 XP)", "22 (5d8)")
	dryad.Traits = "Magic Resistance. The dryad has advantage on saving throws."

	mephit := CreateTestMonster("Steam Mephit", "Small elemental, neutral evil", "1/4 (50 XP)", "21 (6d6)")
	airElemental := CreateTestMonster("Air Elemental", "Large elemental, neutral", "5 (1,800 XP)", "90 (12d10 + 24)")

	owl := CreateTestMonster("Owl", "Tiny beast, unaligned", "0 (10 XP)", "1 (1d4 - 1)")
	cat := CreateTestMonster("Cat", "Tiny beast, unaligned", "0 (10 XP)", "2 (1d4)")
	goblin := CreateTestMonster("Goblin", "Small humanoid (goblinoid), neutral evil", "1/4 (50 XP)", "7 (2d6)")

	return []catalog.MonsterRecord{
		wolf, brownBear, giantElk, mammoth, pixie, dryad, mephit, airElemental, owl, cat, goblin,
	}
}

// CreateTestSpells returns the conjuring spells plus one unrelated spell
func CreateTestSpells() []catalog.SpellRecord {
	return []catalog.SpellRecord{
		{Name: shared.SpellConjureAnimals, Level: "3", School: "conjuration"},
		{Name: "Fireball", Level: "3", School: "evocation"},
		{Name: shared.SpellFindFamiliar, Level: "1", School: "conjuration"},
		{Name: shared.SpellConjureWoodlandBeings, Level: "4", School: "conjuration"},
		{Name: shared.SpellConjureMinorElementals, Level: "4", School: "conjuration"},
		{Name: shared.SpellConjureElemental, Level: "5", School: "conjuration"},
		{Name: shared.SpellFindSteed, Level: "2", School: "conjuration"},
	}
}

// CreateTestCatalog returns a catalog built from the test monsters and spells
func CreateTestCatalog() *catalog.Catalog {
	return &catalog.Catalog{
		Monsters: CreateTestMonsters(),
		Spells:   CreateTestSpells(),
	}
}

// CreateTestDruid creates a character with the given Druid level
func CreateTestDruid(id string, druidLevel int) *character.Character {
	char := character.New(id)
	char.Name = "Test Druid"
	char.SetClasses([]character.ClassEntry{
		character.NewClassEntry(rulebook.ClassDruid, "Circle of the Shepherd", druidLevel),
	})
	return char
}
