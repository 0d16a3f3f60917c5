package summon

import (
	"sort"
	"strings"

	"github.com/KirkDiggler/druid-summons/internal/domain/catalog"
	"github.com/KirkDiggler/druid-summons/internal/domain/rulebook"
)

// ResolveSummonable returns the monsters a spell may summon, sorted by name.
// Spells with an allow-list match names only; the rest filter on challenge
// rating and creature type. Unknown spells summon nothing.
func ResolveSummonable(spellName string, monsters []catalog.MonsterRecord) []catalog.MonsterRecord {
	mapping, ok := rulebook.SummonMappingFor(spellName)
	if !ok {
		return []catalog.MonsterRecord{}
	}

	var results []catalog.MonsterRecord
	if mapping.HasExplicitNames() {
		results = matchNames(mapping.Names, monsters)
	} else {
		results = matchRatingAndType(mapping, monsters)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Name < results[j].Name
	})

	return results
}

func matchNames(names []string, monsters []catalog.MonsterRecord) []catalog.MonsterRecord {
	allowed := make(map[string]bool, len(names))
	for _, name := range names {
		allowed[strings.ToLower(name)] = true
	}

	results := make([]catalog.MonsterRecord, 0, len(names))
	for _, monster := range monsters {
		if allowed[strings.ToLower(monster.Name)] {
			results = append(results, monster)
		}
	}
	return results
}

func matchRatingAndType(mapping rulebook.SummonMapping, monsters []catalog.MonsterRecord) []catalog.MonsterRecord {
	results := make([]catalog.MonsterRecord, 0)
	for _, monster := range monsters {
		if monster.ChallengeRating() > mapping.CRMax {
			continue
		}
		if !hasAnyType(monster.Meta, mapping.Types) {
			continue
		}
		results = append(results, monster)
	}
	return results
}

func hasAnyType(meta string, types []string) bool {
	meta = strings.ToLower(meta)
	for _, t := range types {
		if strings.Contains(meta, strings.ToLower(t)) {
			return true
		}
	}
	return false
}
