package character

import (
	"strings"
	"time"

	"github.com/KirkDiggler/druid-summons/internal/domain/rulebook"
	"github.com/KirkDiggler/druid-summons/internal/domain/shared"
)

// DefaultAbilityScore is the starting value for every ability
const DefaultAbilityScore = 10

// ClassEntry is one class in a multiclass build
type ClassEntry struct {
	Name           string                   `json:"name"`
	Subclass       string                   `json:"subclass"`
	Level          int                      `json:"level"`
	HitDie         string                   `json:"hit_die"`
	Spellcasting   rulebook.CasterType      `json:"spellcasting"`
	PrimaryAbility map[shared.Attribute]int `json:"primary_ability,omitempty"`
}

// NewClassEntry builds a class entry with hit die, caster type and
// multiclass requirements filled from the rule tables
func NewClassEntry(name, subclass string, level int) ClassEntry {
	entry := ClassEntry{
		Name:         name,
		Subclass:     subclass,
		Level:        level,
		HitDie:       rulebook.HitDieFor(name),
		Spellcasting: rulebook.CasterTypeForSubclass(name, subclass),
	}

	if reqs := rulebook.PrerequisitesFor(name); len(reqs) > 0 {
		entry.PrimaryAbility = make(map[shared.Attribute]int, len(reqs))
		for _, req := range reqs {
			entry.PrimaryAbility[req.Attribute] = req.Minimum
		}
	}

	return entry
}

// hitDie falls back to the class table when the entry carries no die
func (e ClassEntry) hitDie() string {
	if e.HitDie != "" {
		return e.HitDie
	}
	return rulebook.HitDieFor(e.Name)
}

func (e ClassEntry) casterType() rulebook.CasterType {
	if e.Spellcasting != "" {
		return e.Spellcasting
	}
	return rulebook.CasterTypeFor(e.Name)
}

// ClassFeatures are the toggles that change summoned creatures
type ClassFeatures struct {
	MightySummoner   bool `json:"mighty_summoner"`
	GuardianSpirit   bool `json:"guardian_spirit"`
	FaithfulSummons  bool `json:"faithful_summons"`
	BearSpiritActive bool `json:"bear_spirit_active"`
}

type Proficiencies struct {
	Armor        []string `json:"armor"`
	Weapons      []string `json:"weapons"`
	Tools        []string `json:"tools"`
	SavingThrows []string `json:"saving_throws"`
	Skills       []string `json:"skills"`
}

// SyncInfo records where the character data was last imported from
type SyncInfo struct {
	CharacterID  string `json:"character_id,omitempty"`
	CharacterURL string `json:"character_url,omitempty"`
	LastSync     string `json:"last_sync,omitempty"`
	Source       string `json:"source"`
}

type Character struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Race       string `json:"race"`
	Background string `json:"background"`
	Alignment  string `json:"alignment"`
	Experience int    `json:"experience"`

	AbilityScores map[shared.Attribute]int `json:"ability_scores"`
	Classes       []ClassEntry             `json:"classes"`

	// Derived is recomputed from Classes and AbilityScores, never edited directly
	Derived DerivedStats `json:"derived"`

	MaxHP       int    `json:"max_hp"`
	CurrentHP   int    `json:"current_hp"`
	AC          int    `json:"ac"`
	Speed       string `json:"speed"`
	Inspiration int    `json:"inspiration"`
	Features    string `json:"features"`
	Equipment   string `json:"equipment"`

	Proficiencies      Proficiencies       `json:"proficiencies"`
	SpellsKnownByClass map[string][]string `json:"spells_known_by_class"`
	ClassFeatures      ClassFeatures       `json:"class_features"`
	Sync               SyncInfo            `json:"dndbeyond_sync"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// New creates a character with default ability scores and no classes
func New(id string) *Character {
	char := &Character{
		ID:                 id,
		AbilityScores:      DefaultAbilityScores(),
		Classes:            []ClassEntry{},
		AC:                 10,
		Speed:              "30 ft",
		SpellsKnownByClass: map[string][]string{},
		Sync:               SyncInfo{Source: "manual"},
	}
	char.Recalculate()
	return char
}

// DefaultAbilityScores returns every ability at DefaultAbilityScore
func DefaultAbilityScores() map[shared.Attribute]int {
	scores := make(map[shared.Attribute]int, len(shared.Attributes))
	for _, attr := range shared.Attributes {
		scores[attr] = DefaultAbilityScore
	}
	return scores
}

// Recalculate refreshes Derived from the current classes and ability scores
func (c *Character) Recalculate() {
	c.Derived = DeriveStats(c.Classes, c.AbilityScores)
}

// SetClasses replaces the class list and recomputes derived stats
func (c *Character) SetClasses(classes []ClassEntry) {
	c.Classes = append([]ClassEntry{}, classes...)
	c.Recalculate()
}

// SetAbilityScores replaces the ability scores and recomputes derived stats
func (c *Character) SetAbilityScores(scores map[shared.Attribute]int) {
	c.AbilityScores = make(map[shared.Attribute]int, len(scores))
	for attr, score := range scores {
		c.AbilityScores[attr] = score
	}
	c.Recalculate()
}

// ClassLevel returns the level in the named class, 0 if the character has none
func (c *Character) ClassLevel(className string) int {
	for _, class := range c.Classes {
		if strings.EqualFold(class.Name, className) {
			return class.Level
		}
	}
	return 0
}

// Clone returns a deep copy of the character
func (c *Character) Clone() *Character {
	if c == nil {
		return nil
	}

	clone := *c

	clone.AbilityScores = make(map[shared.Attribute]int, len(c.AbilityScores))
	for attr, score := range c.AbilityScores {
		clone.AbilityScores[attr] = score
	}

	clone.Classes = make([]ClassEntry, len(c.Classes))
	for i, class := range c.Classes {
		clone.Classes[i] = class
		if class.PrimaryAbility != nil {
			clone.Classes[i].PrimaryAbility = make(map[shared.Attribute]int, len(class.PrimaryAbility))
			for attr, minimum := range class.PrimaryAbility {
				clone.Classes[i].PrimaryAbility[attr] = minimum
			}
		}
	}

	clone.Proficiencies = Proficiencies{
		Armor:        append([]string(nil), c.Proficiencies.Armor...),
		Weapons:      append([]string(nil), c.Proficiencies.Weapons...),
		Tools:        append([]string(nil), c.Proficiencies.Tools...),
		SavingThrows: append([]string(nil), c.Proficiencies.SavingThrows...),
		Skills:       append([]string(nil), c.Proficiencies.Skills...),
	}

	if c.SpellsKnownByClass != nil {
		clone.SpellsKnownByClass = make(map[string][]string, len(c.SpellsKnownByClass))
		for class, spells := range c.SpellsKnownByClass {
			clone.SpellsKnownByClass[class] = append([]string(nil), spells...)
		}
	}

	clone.Derived = c.Derived.clone()

	return &clone
}
