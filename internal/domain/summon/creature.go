package summon

import (
	"fmt"

	"github.com/KirkDiggler/druid-summons/internal/domain/catalog"
	"github.com/KirkDiggler/druid-summons/internal/domain/shared"
	"github.com/KirkDiggler/druid-summons/internal/uuid"
)

// SummonedCreature is one creature in play. It is a value; mutations return
// or store a new copy.
type SummonedCreature struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Meta string `json:"meta,omitempty"`

	// HitPointsText is the display form, e.g. "15 (11 (2d8 + 2))"
	HitPointsText string `json:"hit_points"`
	HPMax         int    `json:"hp_max"`
	CurrentHP     int    `json:"current_hp"`
	TempHP        int    `json:"temp_hp"`
	HitDice       string `json:"hit_dice"`

	ArmorClass string                      `json:"armor_class"`
	Speed      string                      `json:"speed,omitempty"`
	Challenge  string                      `json:"challenge,omitempty"`
	Abilities  map[shared.Attribute]string `json:"abilities"`

	Skills    string `json:"skills,omitempty"`
	Traits    string `json:"traits,omitempty"`
	Actions   string `json:"actions,omitempty"`
	Spells    string `json:"spells,omitempty"`
	Equipment string `json:"equipment,omitempty"`
	ImageURL  string `json:"img_url,omitempty"`

	BonusHP        int  `json:"extra_hp"`
	MightySummoner bool `json:"mighty_summoner"`
}

// WithTempHP applies a new temporary HP source. Temporary HP does not stack,
// the higher value is kept.
func (c SummonedCreature) WithTempHP(proposed int) SummonedCreature {
	if proposed > c.TempHP {
		c.TempHP = proposed
	}
	return c
}

func (c SummonedCreature) clone() SummonedCreature {
	abilities := make(map[shared.Attribute]string, len(c.Abilities))
	for attr, score := range c.Abilities {
		abilities[attr] = score
	}
	c.Abilities = abilities
	return c
}

// Overrides replace catalog values before a creature is created. Nil fields
// and missing scores keep the catalog value.
type Overrides struct {
	HitPoints  *string
	ArmorClass *string
	Scores     map[shared.Attribute]string
}

func (o Overrides) apply(entry catalog.MonsterRecord) catalog.MonsterRecord {
	if o.HitPoints != nil {
		entry.HitPoints = *o.HitPoints
	}
	if o.ArmorClass != nil {
		entry.ArmorClass = *o.ArmorClass
	}
	for attr, score := range o.Scores {
		entry.SetScore(attr, score)
	}
	return entry
}

// MightySummonerBonus is the extra HP per creature: two per hit die
func MightySummonerBonus(hitDice string) int {
	return 2 * catalog.HitDiceCount(hitDice)
}

// Summoner creates creature instances from catalog entries
type Summoner struct {
	ids uuid.Generator
}

func NewSummoner(ids uuid.Generator) *Summoner {
	return &Summoner{ids: ids}
}

// CreateInstances builds quantity independent creatures from a catalog entry.
// Mighty Summoner adds two HP per hit die when the hit dice can be read.
func (s *Summoner) CreateInstances(entry catalog.MonsterRecord, overrides Overrides, quantity int, mighty bool) []SummonedCreature {
	if quantity <= 0 {
		return []SummonedCreature{}
	}

	entry = overrides.apply(entry)
	hpMax, hitDice := catalog.ParseHitPoints(entry.HitPoints)

	bonus := 0
	if mighty && hitDice != "" {
		bonus = MightySummonerBonus(hitDice)
	}
	total := hpMax + bonus

	template := SummonedCreature{
		Name:           entry.Name,
		Meta:           entry.Meta,
		HitPointsText:  fmt.Sprintf("%d (%s)", total, entry.HitPoints),
		HPMax:          total,
		CurrentHP:      total,
		TempHP:         0,
		HitDice:        hitDice,
		ArmorClass:     entry.ArmorClass,
		Speed:          entry.Speed,
		Challenge:      entry.Challenge,
		Abilities:      entry.Scores(),
		Skills:         entry.Skills,
		Traits:         entry.Traits,
		Actions:        entry.Actions,
		Spells:         entry.Spells,
		Equipment:      entry.Equipment,
		ImageURL:       entry.ImageURL,
		BonusHP:        bonus,
		MightySummoner: mighty,
	}

	creatures := make([]SummonedCreature, 0, quantity)
	for i := 0; i < quantity; i++ {
		creature := template.clone()
		creature.ID = s.ids.New()
		creatures = append(creatures, creature)
	}

	return creatures
}
