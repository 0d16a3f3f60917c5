package rulebook

import "strings"

// CasterType describes how a class contributes to multiclass spellcasting
type CasterType string

const (
	CasterFull  CasterType = "full"
	CasterHalf  CasterType = "half"
	CasterThird CasterType = "third"
	CasterPact  CasterType = "pact"
	CasterNone  CasterType = "none"
)

// Class names as stored on a character's class entries
const (
	ClassBarbarian = "Barbarian"
	ClassBard      = "Bard"
	ClassCleric    = "Cleric"
	ClassDruid     = "Druid"
	ClassFighter   = "Fighter"
	ClassMonk      = "Monk"
	ClassPaladin   = "Paladin"
	ClassRanger    = "Ranger"
	ClassRogue     = "Rogue"
	ClassSorcerer  = "Sorcerer"
	ClassWarlock   = "Warlock"
	ClassWizard    = "Wizard"
)

// DefaultHitDie is used for any class the tables do not know
const DefaultHitDie = "d8"

// Subclasses that grant third-caster spellcasting to an otherwise non-casting class
const (
	SubclassEldritchKnight  = "Eldritch Knight"
	SubclassArcaneTrickster = "Arcane Trickster"
)

type classRules struct {
	hitDie     string
	casterType CasterType
}

var classTable = map[string]classRules{
	ClassBarbarian: {hitDie: "d12", casterType: CasterNone},
	ClassBard:      {hitDie: "d8", casterType: CasterFull},
	ClassCleric:    {hitDie: "d8", casterType: CasterFull},
	ClassDruid:     {hitDie: "d8", casterType: CasterFull},
	ClassFighter:   {hitDie: "d10", casterType: CasterNone},
	ClassMonk:      {hitDie: "d8", casterType: CasterNone},
	ClassPaladin:   {hitDie: "d10", casterType: CasterHalf},
	ClassRanger:    {hitDie: "d10", casterType: CasterHalf},
	ClassRogue:     {hitDie: "d8", casterType: CasterNone},
	ClassSorcerer:  {hitDie: "d6", casterType: CasterFull},
	ClassWarlock:   {hitDie: "d8", casterType: CasterPact},
	ClassWizard:    {hitDie: "d6", casterType: CasterFull},
}

// KnownClasses returns the class names the rule tables cover, alphabetically
func KnownClasses() []string {
	return []string{
		ClassBarbarian, ClassBard, ClassCleric, ClassDruid,
		ClassFighter, ClassMonk, ClassPaladin, ClassRanger,
		ClassRogue, ClassSorcerer, ClassWarlock, ClassWizard,
	}
}

// IsKnownClass reports whether the class has an entry in the rule tables.
// Lookups are exact, matching how class names are stored.
func IsKnownClass(className string) bool {
	_, ok := classTable[className]
	return ok
}

// HitDieFor returns the hit die for a class, or DefaultHitDie when unknown
func HitDieFor(className string) string {
	if rules, ok := classTable[className]; ok {
		return rules.hitDie
	}
	return DefaultHitDie
}

// CasterTypeFor returns the spellcasting type for a class, or CasterNone when unknown
func CasterTypeFor(className string) CasterType {
	if rules, ok := classTable[className]; ok {
		return rules.casterType
	}
	return CasterNone
}

// CasterTypeForSubclass accounts for the fighter and rogue subclasses that cast spells
func CasterTypeForSubclass(className, subclass string) CasterType {
	switch {
	case className == ClassFighter && strings.EqualFold(strings.TrimSpace(subclass), SubclassEldritchKnight):
		return CasterThird
	case className == ClassRogue && strings.EqualFold(strings.TrimSpace(subclass), SubclassArcaneTrickster):
		return CasterThird
	}
	return CasterTypeFor(className)
}

// Multiplier returns the caster type's share of a class level in hundredths.
// Third casters use 0.34 rather than an exact third. Pact magic is tracked
// separately and contributes nothing to the multiclass caster level.
func (c CasterType) Multiplier() int {
	switch c {
	case CasterFull:
		return 100
	case CasterHalf:
		return 50
	case CasterThird:
		return 34
	default:
		return 0
	}
}
