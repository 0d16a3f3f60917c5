package shared

import "strings"

type Attribute string

var Attributes = []Attribute{AttributeStrength, AttributeDexterity, AttributeConstitution, AttributeIntelligence, AttributeWisdom, AttributeCharisma}

const (
	AttributeNone         Attribute = ""
	AttributeStrength     Attribute = "strength"
	AttributeDexterity    Attribute = "dexterity"
	AttributeConstitution Attribute = "constitution"
	AttributeIntelligence Attribute = "intelligence"
	AttributeWisdom       Attribute = "wisdom"
	AttributeCharisma     Attribute = "charisma"
)

// Short returns the three letter stat block abbreviation, e.g. "STR"
func (a Attribute) Short() string {
	if len(a) < 3 {
		return strings.ToUpper(string(a))
	}
	return strings.ToUpper(string(a[:3]))
}

// Title returns the display name, e.g. "Strength"
func (a Attribute) Title() string {
	if a == AttributeNone {
		return ""
	}
	return strings.ToUpper(string(a[:1])) + string(a[1:])
}

// ParseAttribute accepts full names or stat block abbreviations in any case
func ParseAttribute(s string) Attribute {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, attr := range Attributes {
		if s == string(attr) || s == strings.ToLower(attr.Short()) {
			return attr
		}
	}
	return AttributeNone
}
