package catalog

import (
	"strconv"
	"strings"
)

// SpellRecord is one entry from the spell list
type SpellRecord struct {
	Name        string `json:"name"`
	Level       string `json:"level"`
	School      string `json:"school,omitempty"`
	CastingTime string `json:"casting_time,omitempty"`
	Range       string `json:"range,omitempty"`
	Components  string `json:"components,omitempty"`
	Duration    string `json:"duration,omitempty"`
	Description string `json:"description,omitempty"`
	Classes     string `json:"classes,omitempty"`
}

// LevelOrder is the sort key for a spell level; cantrips and anything
// non-numeric sort as 0
func (s SpellRecord) LevelOrder() int {
	if s.Level == "cantrip" {
		return 0
	}
	if s.Level == "" || strings.TrimLeft(s.Level, "0123456789") != "" {
		return 0
	}
	level, err := strconv.Atoi(s.Level)
	if err != nil {
		return 0
	}
	return level
}
