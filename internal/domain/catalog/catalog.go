package catalog

import (
	"context"
	"sort"
	"strings"

	"github.com/KirkDiggler/druid-summons/internal/domain/rulebook"
)

//go:generate mockgen -destination=mock/mock_source.go -package=mockcatalog -source=catalog.go

// Source loads the reference monsters and spells
type Source interface {
	Monsters(ctx context.Context) ([]MonsterRecord, error)
	Spells(ctx context.Context) ([]SpellRecord, error)
}

// Catalog is a loaded, read-only set of monsters and spells
type Catalog struct {
	Monsters []MonsterRecord
	Spells   []SpellRecord
}

// Load reads both lists from a source
func Load(ctx context.Context, source Source) (*Catalog, error) {
	monsters, err := source.Monsters(ctx)
	if err != nil {
		return nil, err
	}

	spells, err := source.Spells(ctx)
	if err != nil {
		return nil, err
	}

	return &Catalog{Monsters: monsters, Spells: spells}, nil
}

// FindMonster looks up a monster by name, ignoring case
func (c *Catalog) FindMonster(name string) (MonsterRecord, bool) {
	for _, monster := range c.Monsters {
		if strings.EqualFold(monster.Name, name) {
			return monster, true
		}
	}
	return MonsterRecord{}, false
}

// FindSpell looks up a spell by name, ignoring case
func (c *Catalog) FindSpell(name string) (SpellRecord, bool) {
	for _, spell := range c.Spells {
		if strings.EqualFold(spell.Name, name) {
			return spell, true
		}
	}
	return SpellRecord{}, false
}

// SearchMonsters filters by a case-insensitive name substring and a prefix of
// the Challenge text. Empty arguments match everything.
func (c *Catalog) SearchMonsters(query, crPrefix string) []MonsterRecord {
	query = strings.ToLower(query)

	results := make([]MonsterRecord, 0)
	for _, monster := range c.Monsters {
		if query != "" && !strings.Contains(strings.ToLower(monster.Name), query) {
			continue
		}
		if crPrefix != "" && !strings.HasPrefix(monster.Challenge, crPrefix) {
			continue
		}
		results = append(results, monster)
	}
	return results
}

// ConjureSpells returns the summoning spells in the catalog ordered by level
func (c *Catalog) ConjureSpells() []SpellRecord {
	spells := make([]SpellRecord, 0)
	for _, spell := range c.Spells {
		if rulebook.IsConjureSpell(spell.Name) {
			spells = append(spells, spell)
		}
	}

	sort.SliceStable(spells, func(i, j int) bool {
		return spells[i].LevelOrder() < spells[j].LevelOrder()
	})

	return spells
}
