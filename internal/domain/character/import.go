package character

import (
	"time"

	"github.com/KirkDiggler/druid-summons/internal/domain/shared"
)

// SourceManualImport marks sync metadata synthesized for an import without its own
const SourceManualImport = "manual_import"

// ImportedFeatures carries only the features present in the import payload
type ImportedFeatures struct {
	MightySummoner   *bool `json:"mighty_summoner,omitempty"`
	GuardianSpirit   *bool `json:"guardian_spirit,omitempty"`
	FaithfulSummons  *bool `json:"faithful_summons,omitempty"`
	BearSpiritActive *bool `json:"bear_spirit_active,omitempty"`
}

// ImportRecord is character data exported from an external character sheet.
// Nil fields were absent from the payload and leave the local value untouched.
type ImportRecord struct {
	Name       string `json:"name"`
	Race       string `json:"race"`
	Background string `json:"background"`
	Alignment  string `json:"alignment"`

	Classes       []ClassEntry             `json:"classes"`
	AbilityScores map[shared.Attribute]int `json:"ability_scores"`

	MaxHP     *int    `json:"max_hp"`
	CurrentHP *int    `json:"current_hp"`
	AC        *int    `json:"ac"`
	Speed     *string `json:"speed"`

	// ProficiencyBonus is accepted but ignored, it is always derived
	ProficiencyBonus *int `json:"proficiency_bonus"`

	Proficiencies *Proficiencies    `json:"proficiencies"`
	ClassFeatures *ImportedFeatures `json:"class_features"`
	Sync          *SyncInfo         `json:"dndbeyond_sync"`
}

// Merge applies an import on top of the existing character. Classes are
// replaced wholesale, local-only fields such as known spells are kept, and
// BearSpiritActive survives unless the import sets it.
func (c *Character) Merge(record ImportRecord, now time.Time) {
	if record.Name != "" {
		c.Name = record.Name
	}
	if record.Race != "" {
		c.Race = record.Race
	}
	if record.Background != "" {
		c.Background = record.Background
	}
	if record.Alignment != "" {
		c.Alignment = record.Alignment
	}

	if record.Classes != nil {
		c.Classes = make([]ClassEntry, 0, len(record.Classes))
		for _, class := range record.Classes {
			if class.Level < 1 {
				class.Level = 1
			}
			c.Classes = append(c.Classes, class)
		}
	}

	if record.AbilityScores != nil {
		c.AbilityScores = make(map[shared.Attribute]int, len(record.AbilityScores))
		for attr, score := range record.AbilityScores {
			c.AbilityScores[attr] = score
		}
	}

	if record.MaxHP != nil {
		c.MaxHP = *record.MaxHP
	}
	if record.CurrentHP != nil {
		c.CurrentHP = *record.CurrentHP
	}
	if record.AC != nil {
		c.AC = *record.AC
	}
	if record.Speed != nil {
		c.Speed = *record.Speed
	}

	if record.Proficiencies != nil {
		c.Proficiencies = *record.Proficiencies
	}

	if f := record.ClassFeatures; f != nil {
		if f.MightySummoner != nil {
			c.ClassFeatures.MightySummoner = *f.MightySummoner
		}
		if f.GuardianSpirit != nil {
			c.ClassFeatures.GuardianSpirit = *f.GuardianSpirit
		}
		if f.FaithfulSummons != nil {
			c.ClassFeatures.FaithfulSummons = *f.FaithfulSummons
		}
		if f.BearSpiritActive != nil {
			c.ClassFeatures.BearSpiritActive = *f.BearSpiritActive
		}
	}

	if record.Sync != nil {
		c.Sync = *record.Sync
	} else {
		c.Sync = SyncInfo{
			LastSync: now.Format(time.RFC3339),
			Source:   SourceManualImport,
		}
	}

	c.Recalculate()
}
