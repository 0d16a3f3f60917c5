package discord

import (
	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/druid-summons/internal/domain/rulebook"
	summoningService "github.com/KirkDiggler/druid-summons/internal/services/summoning"
)

// CommandName is the slash command every subcommand hangs off
const CommandName = "summons"

// Commands returns the slash command definitions
func Commands() []*discordgo.ApplicationCommand {
	spellChoices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(rulebook.ConjureSpellNames()))
	for _, name := range rulebook.ConjureSpellNames() {
		spellChoices = append(spellChoices, &discordgo.ApplicationCommandOptionChoice{Name: name, Value: name})
	}

	minQuantity := float64(1)

	return []*discordgo.ApplicationCommand{
		{
			Name:        CommandName,
			Description: "Druid summons and character sheet",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Name:        "character",
					Description: "Show the character sheet",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
				},
				{
					Name:        "spells",
					Description: "List the summoning spells",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
				},
				{
					Name:        "summonable",
					Description: "Show what a spell can summon",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "spell",
							Description: "Summoning spell",
							Required:    true,
							Choices:     spellChoices,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "cr",
							Description: "Only this challenge rating, e.g. 1/4",
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "skill",
							Description: "Only creatures with this skill",
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "trait",
							Description: "Only creatures with this trait",
						},
					},
				},
				{
					Name:        "creature",
					Description: "Show a creature's stat block",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:         discordgo.ApplicationCommandOptionString,
							Name:         "name",
							Description:  "Creature name",
							Required:     true,
							Autocomplete: true,
						},
					},
				},
				{
					Name:        "summon",
					Description: "Summon creatures into this channel",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:         discordgo.ApplicationCommandOptionString,
							Name:         "creature",
							Description:  "Creature name",
							Required:     true,
							Autocomplete: true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "quantity",
							Description: "How many (default 1)",
							MinValue:    &minQuantity,
							MaxValue:    summoningService.MaxQuantity,
						},
						{
							Type:        discordgo.ApplicationCommandOptionBoolean,
							Name:        "mighty",
							Description: "Force Mighty Summoner on or off (default: character sheet)",
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "hp",
							Description: "Hit points override, e.g. 30 (4d8 + 12)",
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "ac",
							Description: "Armor class override",
						},
					},
				},
				{
					Name:        "list",
					Description: "List the creatures summoned in this channel",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
				},
				{
					Name:        "hp",
					Description: "Set a summoned creature's HP",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "id",
							Description: "Creature ID from /summons list",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "current",
							Description: "Current HP",
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "temp",
							Description: "Temporary HP",
						},
					},
				},
				{
					Name:        "remove",
					Description: "Dismiss a summoned creature",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "id",
							Description: "Creature ID from /summons list",
							Required:    true,
						},
					},
				},
				{
					Name:        "bear-spirit",
					Description: "Toggle the Bear Spirit aura",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionBoolean,
							Name:        "active",
							Description: "Turn the aura on or off",
							Required:    true,
						},
					},
				},
				{
					Name:        "end",
					Description: "Dismiss every creature in this channel",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
				},
			},
		},
	}
}
