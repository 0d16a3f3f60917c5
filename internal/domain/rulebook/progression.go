package rulebook

// MaxCasterLevel is the highest row in the multiclass spell slot table
const MaxCasterLevel = 20

// SpellLevelNames labels slot levels 1st through 9th
var SpellLevelNames = [9]string{"1st", "2nd", "3rd", "4th", "5th", "6th", "7th", "8th", "9th"}

var multiclassSpellSlots = [MaxCasterLevel][9]int{
	{2, 0, 0, 0, 0, 0, 0, 0, 0},
	{3, 0, 0, 0, 0, 0, 0, 0, 0},
	{4, 2, 0, 0, 0, 0, 0, 0, 0},
	{4, 3, 0, 0, 0, 0, 0, 0, 0},
	{4, 3, 2, 0, 0, 0, 0, 0, 0},
	{4, 3, 3, 0, 0, 0, 0, 0, 0},
	{4, 3, 3, 1, 0, 0, 0, 0, 0},
	{4, 3, 3, 2, 0, 0, 0, 0, 0},
	{4, 3, 3, 3, 1, 0, 0, 0, 0},
	{4, 3, 3, 3, 2, 0, 0, 0, 0},
	{4, 3, 3, 3, 2, 1, 0, 0, 0},
	{4, 3, 3, 3, 2, 1, 0, 0, 0},
	{4, 3, 3, 3, 2, 1, 1, 0, 0},
	{4, 3, 3, 3, 2, 1, 1, 0, 0},
	{4, 3, 3, 3, 2, 1, 1, 1, 0},
	{4, 3, 3, 3, 2, 1, 1, 1, 0},
	{4, 3, 3, 3, 2, 1, 1, 1, 1},
	{4, 3, 3, 3, 3, 1, 1, 1, 1},
	{4, 3, 3, 3, 3, 2, 1, 1, 1},
	{4, 3, 3, 3, 3, 2, 2, 1, 1},
}

// ProficiencyBonus returns the proficiency bonus for a total character level
func ProficiencyBonus(totalLevel int) int {
	switch {
	case totalLevel >= 17:
		return 6
	case totalLevel >= 13:
		return 5
	case totalLevel >= 9:
		return 4
	case totalLevel >= 5:
		return 3
	default:
		return 2
	}
}

// SpellSlotsForLevel returns slot counts for spell levels 1st..9th.
// Levels above 20 use the level 20 row; zero or negative levels have no slots.
func SpellSlotsForLevel(casterLevel int) [9]int {
	if casterLevel <= 0 {
		return [9]int{}
	}
	if casterLevel > MaxCasterLevel {
		casterLevel = MaxCasterLevel
	}
	return multiclassSpellSlots[casterLevel-1]
}
