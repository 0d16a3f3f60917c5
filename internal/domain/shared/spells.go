package shared

// Conjuring spell names as they appear in the spell catalog
const (
	SpellConjureAnimals         = "Conjure Animals"
	SpellConjureMinorElementals = "Conjure Minor Elementals"
	SpellConjureWoodlandBeings  = "Conjure Woodland Beings"
	SpellConjureCelestial       = "Conjure Celestial"
	SpellConjureElemental       = "Conjure Elemental"
	SpellConjureFey             = "Conjure Fey"
	SpellFindFamiliar           = "Find Familiar"
	SpellFindSteed              = "Find Steed"
)
