package catalog

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/KirkDiggler/druid-summons/internal/domain/shared"
)

// MonsterRecord is one stat block as published in the SRD monster file
type MonsterRecord struct {
	Name             string `json:"name"`
	Meta             string `json:"meta"`
	ArmorClass       string `json:"Armor Class"`
	HitPoints        string `json:"Hit Points"`
	Speed            string `json:"Speed"`
	STR              string `json:"STR"`
	DEX              string `json:"DEX"`
	CON              string `json:"CON"`
	INT              string `json:"INT"`
	WIS              string `json:"WIS"`
	CHA              string `json:"CHA"`
	SavingThrows     string `json:"Saving Throws,omitempty"`
	Skills           string `json:"Skills,omitempty"`
	Senses           string `json:"Senses,omitempty"`
	Languages        string `json:"Languages,omitempty"`
	Challenge        string `json:"Challenge"`
	Traits           string `json:"Traits,omitempty"`
	Actions          string `json:"Actions,omitempty"`
	LegendaryActions string `json:"Legendary Actions,omitempty"`
	Spells           string `json:"Spells,omitempty"`
	Equipment        string `json:"Equipment,omitempty"`
	ImageURL         string `json:"img_url,omitempty"`
}

// Scores returns the six ability score texts keyed by attribute
func (m MonsterRecord) Scores() map[shared.Attribute]string {
	return map[shared.Attribute]string{
		shared.AttributeStrength:     m.STR,
		shared.AttributeDexterity:    m.DEX,
		shared.AttributeConstitution: m.CON,
		shared.AttributeIntelligence: m.INT,
		shared.AttributeWisdom:       m.WIS,
		shared.AttributeCharisma:     m.CHA,
	}
}

// SetScore overwrites one ability score text
func (m *MonsterRecord) SetScore(attr shared.Attribute, value string) {
	switch attr {
	case shared.AttributeStrength:
		m.STR = value
	case shared.AttributeDexterity:
		m.DEX = value
	case shared.AttributeConstitution:
		m.CON = value
	case shared.AttributeIntelligence:
		m.INT = value
	case shared.AttributeWisdom:
		m.WIS = value
	case shared.AttributeCharisma:
		m.CHA = value
	}
}

// ChallengeRating is the numeric CR of the monster, 0 when unparseable
func (m MonsterRecord) ChallengeRating() float64 {
	return ParseChallengeRating(m.Challenge)
}

// ChallengeToken is the CR as written, e.g. "1/4" from "1/4 (50 XP)"
func (m MonsterRecord) ChallengeToken() string {
	fields := strings.Fields(m.Challenge)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// ParseChallengeRating reads the first token of a Challenge text as a
// fraction or decimal. Anything unparseable, including a zero denominator, is 0.
func ParseChallengeRating(text string) float64 {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return 0
	}
	token := fields[0]

	if num, denom, ok := strings.Cut(token, "/"); ok {
		n, ok := parseDecimal(num)
		if !ok {
			return 0
		}
		d, ok := parseDecimal(denom)
		if !ok || d == 0 {
			return 0
		}
		return n / d
	}

	cr, _ := parseDecimal(token)
	return cr
}

// parseDecimal accepts plain decimal digits only, so NaN, Inf, exponents
// and hex floats are rejected
func parseDecimal(text string) (float64, bool) {
	if !decimalPattern.MatchString(text) {
		return 0, false
	}
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

var (
	decimalPattern    = regexp.MustCompile(`^(\d+(\.\d*)?|\.\d+)$`)
	leadingIntPattern = regexp.MustCompile(`^(\d+)`)
	hitDicePattern    = regexp.MustCompile(`(\d+d\d+)`)
)

// ParseHitPoints splits text like "11 (2d8 + 2)" into its average (11) and
// dice expression ("2d8"). Missing parts come back as 0 and "".
func ParseHitPoints(text string) (int, string) {
	hpMax := 0
	if match := leadingIntPattern.FindStringSubmatch(text); match != nil {
		hpMax, _ = strconv.Atoi(match[1])
	}

	hitDice := ""
	if match := hitDicePattern.FindStringSubmatch(text); match != nil {
		hitDice = match[1]
	}

	return hpMax, hitDice
}

// HitDiceCount returns N from an "NdM" expression, 0 when malformed
func HitDiceCount(hitDice string) int {
	count, _, ok := strings.Cut(hitDice, "d")
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(count)
	if err != nil {
		return 0
	}
	return n
}
