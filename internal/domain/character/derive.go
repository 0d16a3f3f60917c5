package character

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"sort"

	"github.com/KirkDiggler/druid-summons/internal/domain/rulebook"
	"github.com/KirkDiggler/druid-summons/internal/domain/shared"
)

// SpellSlot is the number of slots available at one spell level
type SpellSlot struct {
	Level string
	Count int
}

// SpellSlots is ordered from 1st level upward and only holds levels with slots.
// It serializes as a JSON object, e.g. {"1st":4,"2nd":3}.
type SpellSlots []SpellSlot

// Get returns the slot count for a level name such as "3rd"
func (s SpellSlots) Get(level string) int {
	for _, slot := range s {
		if slot.Level == level {
			return slot.Count
		}
	}
	return 0
}

// Map returns the slots keyed by level name
func (s SpellSlots) Map() map[string]int {
	out := make(map[string]int, len(s))
	for _, slot := range s {
		out[slot.Level] = slot.Count
	}
	return out
}

func (s SpellSlots) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, slot := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(slot.Level)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		fmt.Fprintf(&buf, "%d", slot.Count)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (s *SpellSlots) UnmarshalJSON(data []byte) error {
	var raw map[string]int
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	slots := make(SpellSlots, 0, len(raw))
	for level, count := range raw {
		slots = append(slots, SpellSlot{Level: level, Count: count})
	}
	sort.SliceStable(slots, func(i, j int) bool {
		return spellLevelIndex(slots[i].Level) < spellLevelIndex(slots[j].Level)
	})

	*s = slots
	return nil
}

func spellLevelIndex(level string) int {
	for i, name := range rulebook.SpellLevelNames {
		if name == level {
			return i
		}
	}
	return len(rulebook.SpellLevelNames)
}

// DerivedStats are computed from a character's classes and never stored independently
type DerivedStats struct {
	TotalLevel       int            `json:"total_level"`
	ProficiencyBonus int            `json:"proficiency_bonus"`
	HitDicePool      map[string]int `json:"hit_dice"`
	SpellcasterLevel int            `json:"spellcaster_level"`
	SpellSlots       SpellSlots     `json:"spell_slots"`
}

func (d DerivedStats) clone() DerivedStats {
	out := d
	out.HitDicePool = make(map[string]int, len(d.HitDicePool))
	for die, count := range d.HitDicePool {
		out.HitDicePool[die] = count
	}
	out.SpellSlots = append(SpellSlots{}, d.SpellSlots...)
	return out
}

// DeriveStats computes level, proficiency, hit dice and spellcasting for a build.
// None of the current values depend on ability scores.
func DeriveStats(classes []ClassEntry, scores map[shared.Attribute]int) DerivedStats {
	stats := DerivedStats{
		HitDicePool: make(map[string]int),
	}

	casterHundredths := 0
	for _, class := range classes {
		stats.TotalLevel += class.Level
		stats.HitDicePool[class.hitDie()] += class.Level
		casterHundredths += class.Level * class.casterType().Multiplier()
	}

	stats.ProficiencyBonus = rulebook.ProficiencyBonus(stats.TotalLevel)
	stats.SpellcasterLevel = int(math.Floor(float64(casterHundredths) / 100))
	stats.SpellSlots = SpellSlotsFor(stats.SpellcasterLevel)

	return stats
}

// SpellSlotsFor returns the non-empty slot levels for a multiclass caster level
func SpellSlotsFor(casterLevel int) SpellSlots {
	slots := SpellSlots{}
	for i, count := range rulebook.SpellSlotsForLevel(casterLevel) {
		if count > 0 {
			slots = append(slots, SpellSlot{Level: rulebook.SpellLevelNames[i], Count: count})
		}
	}
	return slots
}

// PrerequisiteResult reports whether a character may multiclass into a class
type PrerequisiteResult struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"message"`
}

// CheckPrerequisites validates ability scores against a class's multiclass
// requirements. Missing scores count as 0 and unknown classes always pass.
func CheckPrerequisites(scores map[shared.Attribute]int, className string) PrerequisiteResult {
	for _, req := range rulebook.PrerequisitesFor(className) {
		if scores[req.Attribute] < req.Minimum {
			return PrerequisiteResult{
				Valid:  false,
				Reason: fmt.Sprintf("%s requires %s %d", className, req.Attribute.Title(), req.Minimum),
			}
		}
	}
	return PrerequisiteResult{Valid: true}
}

// PrerequisiteReport checks every class in the rule tables
func PrerequisiteReport(scores map[shared.Attribute]int) map[string]PrerequisiteResult {
	report := make(map[string]PrerequisiteResult)
	for _, className := range rulebook.KnownClasses() {
		report[className] = CheckPrerequisites(scores, className)
	}
	return report
}
