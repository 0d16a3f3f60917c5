package catalog

import (
	"regexp"
	"sort"
	"strings"
)

// CreatureFilter narrows a list of summonable creatures. Empty fields are ignored.
type CreatureFilter struct {
	// CR must equal the first token of the Challenge text
	CR string
	// Skill and Trait are case-insensitive substrings
	Skill string
	Trait string
}

// IsEmpty reports whether the filter matches everything
func (f CreatureFilter) IsEmpty() bool {
	return f.CR == "" && f.Skill == "" && f.Trait == ""
}

// Apply returns the monsters matching every set field, preserving order
func (f CreatureFilter) Apply(monsters []MonsterRecord) []MonsterRecord {
	skill := strings.ToLower(f.Skill)
	trait := strings.ToLower(f.Trait)

	results := make([]MonsterRecord, 0, len(monsters))
	for _, monster := range monsters {
		if f.CR != "" && monster.ChallengeToken() != f.CR {
			continue
		}
		if skill != "" && !strings.Contains(strings.ToLower(monster.Skills), skill) {
			continue
		}
		if trait != "" && !strings.Contains(strings.ToLower(monster.Traits), trait) {
			continue
		}
		results = append(results, monster)
	}
	return results
}

// AvailableCRs lists the distinct CR tokens, lowest first
func AvailableCRs(monsters []MonsterRecord) []string {
	seen := make(map[string]bool)
	crs := make([]string, 0)
	for _, monster := range monsters {
		token := monster.ChallengeToken()
		if token == "" || seen[token] {
			continue
		}
		seen[token] = true
		crs = append(crs, token)
	}

	sort.SliceStable(crs, func(i, j int) bool {
		left, right := ParseChallengeRating(crs[i]), ParseChallengeRating(crs[j])
		if left != right {
			return left < right
		}
		return crs[i] < crs[j]
	})

	return crs
}

// AvailableSkills lists the distinct skill names, e.g. "Perception" from
// "Perception +3, Stealth +4"
func AvailableSkills(monsters []MonsterRecord) []string {
	seen := make(map[string]bool)
	for _, monster := range monsters {
		for _, part := range strings.Split(monster.Skills, ",") {
			fields := strings.Fields(part)
			if len(fields) == 0 {
				continue
			}
			seen[fields[0]] = true
		}
	}
	return sortedKeys(seen)
}

// traitNamePattern matches capitalized trait headings such as "Pack Tactics."
var traitNamePattern = regexp.MustCompile(`([A-Z][a-z]+(?: [A-Z][a-z]+)*)\.`)

// AvailableTraits lists the distinct trait headings found in the Traits text
func AvailableTraits(monsters []MonsterRecord) []string {
	seen := make(map[string]bool)
	for _, monster := range monsters {
		for _, match := range traitNamePattern.FindAllStringSubmatch(monster.Traits, -1) {
			seen[match[1]] = true
		}
	}
	return sortedKeys(seen)
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
