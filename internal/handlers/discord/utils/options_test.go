package utils_test

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/druid-summons/internal/handlers/discord/utils"
)

func interaction(options ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type: discordgo.InteractionApplicationCommand,
			Data: discordgo.ApplicationCommandInteractionData{
				Name: "summons",
				Options: []*discordgo.ApplicationCommandInteractionDataOption{
					{
						Name:    "summon",
						Type:    discordgo.ApplicationCommandOptionSubCommand,
						Options: options,
					},
				},
			},
		},
	}
}

func TestOptions(t *testing.T) {
	i := interaction(
		&discordgo.ApplicationCommandInteractionDataOption{Name: "creature", Type: discordgo.ApplicationCommandOptionString, Value: "Wolf"},
		&discordgo.ApplicationCommandInteractionDataOption{Name: "quantity", Type: discordgo.ApplicationCommandOptionInteger, Value: float64(4)},
		&discordgo.ApplicationCommandInteractionDataOption{Name: "mighty", Type: discordgo.ApplicationCommandOptionBoolean, Value: false},
	)

	assert.Equal(t, "summon", utils.GetSubcommand(i))
	assert.Equal(t, "Wolf", utils.GetStringOption(i, "creature"))
	assert.Equal(t, 4, utils.GetIntOption(i, "quantity", 1))

	mighty := utils.GetOptionalBool(i, "mighty")
	require.NotNil(t, mighty)
	assert.False(t, *mighty)

	assert.Nil(t, utils.GetOptionalString(i, "hp"))
	assert.Equal(t, 1, utils.GetIntOption(i, "missing", 1))
	assert.Equal(t, "", utils.GetStringOption(i, "missing"))
	assert.Nil(t, utils.GetFocusedOption(i))
}

func TestGetFocusedOption(t *testing.T) {
	i := interaction(
		&discordgo.ApplicationCommandInteractionDataOption{Name: "quantity", Type: discordgo.ApplicationCommandOptionInteger, Value: float64(2)},
		&discordgo.ApplicationCommandInteractionDataOption{Name: "creature", Type: discordgo.ApplicationCommandOptionString, Value: "wo", Focused: true},
	)

	focused := utils.GetFocusedOption(i)
	require.NotNil(t, focused)
	assert.Equal(t, "creature", focused.Name)
}
