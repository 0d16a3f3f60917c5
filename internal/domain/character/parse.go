package character

import (
	"strconv"
	"strings"
)

// ParseAbilityScore reads a submitted ability score, falling back to DefaultAbilityScore
func ParseAbilityScore(raw string) int {
	score, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return DefaultAbilityScore
	}
	return score
}

// ParseClassLevel reads a submitted class level, falling back to 1 for
// malformed input and levels below 1
func ParseClassLevel(raw string) int {
	level, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || level < 1 {
		return 1
	}
	return level
}

// parseIntOrZero is used for sheet numbers where blank means 0
func parseIntOrZero(raw string) int {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return value
}
