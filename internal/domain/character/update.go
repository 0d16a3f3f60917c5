package character

import (
	"strings"

	"github.com/KirkDiggler/druid-summons/internal/domain/shared"
)

// ClassInput is one submitted class row
type ClassInput struct {
	Name     string
	Subclass string
	Level    string
}

// SheetUpdate holds raw values from a character sheet form. Numbers arrive as
// text and are parsed permissively.
type SheetUpdate struct {
	Name        string
	Race        string
	Background  string
	Alignment   string
	Experience  string
	MaxHP       string
	CurrentHP   string
	AC          string
	Speed       string
	Inspiration string
	Features    string
	Equipment   string

	// AbilityScores keyed by attribute; missing entries reset to the default
	AbilityScores map[shared.Attribute]string
	Classes       []ClassInput

	MightySummoner  bool
	GuardianSpirit  bool
	FaithfulSummons bool
}

// ApplySheetUpdate overwrites the sheet fields and rebuilds the class list.
// Rows with a blank class name are skipped. BearSpiritActive is left alone,
// it is toggled separately.
func (c *Character) ApplySheetUpdate(update SheetUpdate) {
	c.Name = update.Name
	c.Race = update.Race
	c.Background = update.Background
	c.Alignment = update.Alignment
	c.Experience = parseIntOrZero(update.Experience)
	c.MaxHP = parseIntOrZero(update.MaxHP)
	c.CurrentHP = parseIntOrZero(update.CurrentHP)
	c.AC = parseIntOrZero(update.AC)
	c.Speed = update.Speed
	c.Inspiration = parseIntOrZero(update.Inspiration)
	c.Features = update.Features
	c.Equipment = update.Equipment

	scores := make(map[shared.Attribute]int, len(shared.Attributes))
	for _, attr := range shared.Attributes {
		raw, ok := update.AbilityScores[attr]
		if !ok {
			scores[attr] = DefaultAbilityScore
			continue
		}
		scores[attr] = ParseAbilityScore(raw)
	}
	c.AbilityScores = scores

	classes := make([]ClassEntry, 0, len(update.Classes))
	for _, input := range update.Classes {
		name := strings.TrimSpace(input.Name)
		if name == "" {
			continue
		}
		classes = append(classes, NewClassEntry(name, strings.TrimSpace(input.Subclass), ParseClassLevel(input.Level)))
	}
	c.Classes = classes

	c.ClassFeatures.MightySummoner = update.MightySummoner
	c.ClassFeatures.GuardianSpirit = update.GuardianSpirit
	c.ClassFeatures.FaithfulSummons = update.FaithfulSummons

	c.Recalculate()
}
