package rulebook

import "github.com/KirkDiggler/druid-summons/internal/domain/shared"

// Requirement is a minimum ability score needed to multiclass into a class
type Requirement struct {
	Attribute shared.Attribute `json:"attribute"`
	Minimum   int              `json:"minimum"`
}

// Order matters: the first unmet requirement is the one reported.
// Fighter may also qualify with Dexterity 13, which is not modeled here.
var multiclassPrerequisites = map[string][]Requirement{
	ClassBarbarian: {{shared.AttributeStrength, 13}},
	ClassBard:      {{shared.AttributeCharisma, 13}},
	ClassCleric:    {{shared.AttributeWisdom, 13}},
	ClassDruid:     {{shared.AttributeWisdom, 13}},
	ClassFighter:   {{shared.AttributeStrength, 13}},
	ClassMonk:      {{shared.AttributeDexterity, 13}, {shared.AttributeWisdom, 13}},
	ClassPaladin:   {{shared.AttributeStrength, 13}, {shared.AttributeCharisma, 13}},
	ClassRanger:    {{shared.AttributeDexterity, 13}, {shared.AttributeWisdom, 13}},
	ClassRogue:     {{shared.AttributeDexterity, 13}},
	ClassSorcerer:  {{shared.AttributeCharisma, 13}},
	ClassWarlock:   {{shared.AttributeCharisma, 13}},
	ClassWizard:    {{shared.AttributeIntelligence, 13}},
}

// PrerequisitesFor returns a copy of the class's multiclass requirements.
// Unknown classes have none.
func PrerequisitesFor(className string) []Requirement {
	reqs, ok := multiclassPrerequisites[className]
	if !ok {
		return nil
	}
	out := make([]Requirement, len(reqs))
	copy(out, reqs)
	return out
}
