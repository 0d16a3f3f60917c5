package rulebook

import "github.com/KirkDiggler/druid-summons/internal/domain/shared"

// SummonMapping describes which creatures a conjuring spell may bring forth.
// When Names is set it is the complete allow-list and the CR and type limits
// are informational only.
type SummonMapping struct {
	CRMax float64  `json:"cr_max"`
	Types []string `json:"types,omitempty"`
	Names []string `json:"names,omitempty"`
}

// HasExplicitNames reports whether the mapping is an allow-list
func (m SummonMapping) HasExplicitNames() bool {
	return len(m.Names) > 0
}

var conjureSpellNames = []string{
	shared.SpellConjureAnimals,
	shared.SpellConjureMinorElementals,
	shared.SpellConjureWoodlandBeings,
	shared.SpellConjureCelestial,
	shared.SpellConjureElemental,
	shared.SpellConjureFey,
	shared.SpellFindFamiliar,
	shared.SpellFindSteed,
}

var summonMappings = map[string]SummonMapping{
	shared.SpellConjureAnimals:         {CRMax: 2, Types: []string{"beast"}},
	shared.SpellConjureMinorElementals: {CRMax: 2, Types: []string{"elemental"}},
	shared.SpellConjureWoodlandBeings:  {CRMax: 2, Types: []string{"fey"}},
	shared.SpellConjureCelestial:       {CRMax: 4, Types: []string{"celestial"}},
	shared.SpellConjureElemental:       {CRMax: 5, Types: []string{"elemental"}},
	shared.SpellConjureFey:             {CRMax: 6, Types: []string{"fey", "beast"}},
	shared.SpellFindFamiliar: {
		CRMax: 0,
		Types: []string{"beast"},
		Names: []string{
			"Bat", "Cat", "Crab", "Frog", "Hawk", "Lizard", "Octopus", "Owl",
			"Poisonous Snake", "Fish", "Rat", "Raven", "Sea Horse", "Spider", "Weasel",
		},
	},
	shared.SpellFindSteed: {
		CRMax: 2,
		Types: []string{"beast"},
		Names: []string{"Warhorse", "Pony", "Camel", "Elk", "Mastiff"},
	},
}

// ConjureSpellNames returns the spells that summon creatures
func ConjureSpellNames() []string {
	out := make([]string, len(conjureSpellNames))
	copy(out, conjureSpellNames)
	return out
}

// IsConjureSpell reports whether the spell name has a summon mapping.
// Names are matched exactly as the spell catalog spells them.
func IsConjureSpell(spellName string) bool {
	_, ok := summonMappings[spellName]
	return ok
}

// SummonMappingFor returns the mapping for a conjuring spell
func SummonMappingFor(spellName string) (SummonMapping, bool) {
	mapping, ok := summonMappings[spellName]
	if !ok {
		return SummonMapping{}, false
	}
	mapping.Types = append([]string(nil), mapping.Types...)
	mapping.Names = append([]string(nil), mapping.Names...)
	return mapping, true
}
