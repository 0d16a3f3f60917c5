package shared_test

import (
	"testing"

	"github.com/KirkDiggler/druid-summons/internal/domain/shared"
	"github.com/stretchr/testify/assert"
)

func TestAttribute_Names(t *testing.T) {
	assert.Equal(t, "STR", shared.AttributeStrength.Short())
	assert.Equal(t, "CHA", shared.AttributeCharisma.Short())
	assert.Equal(t, "Dexterity", shared.AttributeDexterity.Title())
	assert.Equal(t, "", shared.AttributeNone.Title())
}

func TestParseAttribute(t *testing.T) {
	tests := []struct {
		input    string
		expected shared.Attribute
	}{
		{"strength", shared.AttributeStrength},
		{"STR", shared.AttributeStrength},
		{" Wis ", shared.AttributeWisdom},
		{"Intelligence", shared.AttributeIntelligence},
		{"luck", shared.AttributeNone},
		{"", shared.AttributeNone},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.ParseAttribute(tt.input))
		})
	}
}
