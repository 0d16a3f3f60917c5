package discord

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/druid-summons/internal/domain/catalog"
	domain "github.com/KirkDiggler/druid-summons/internal/domain/character"
	"github.com/KirkDiggler/druid-summons/internal/domain/shared"
	"github.com/KirkDiggler/druid-summons/internal/domain/summon"
	summoningService "github.com/KirkDiggler/druid-summons/internal/services/summoning"
)

const (
	colorGreen = 0x2ecc71
	colorBlue  = 0x3498db
	colorBrown = 0x8b5a2b

	// Discord caps embed field values at 1024 characters
	maxFieldLength = 1024
	maxFields      = 25
)

func characterEmbed(char *domain.Character) *discordgo.MessageEmbed {
	title := char.Name
	if title == "" {
		title = "Unnamed Character"
	}

	classes := make([]string, 0, len(char.Classes))
	for _, class := range char.Classes {
		if class.Subclass != "" {
			classes = append(classes, fmt.Sprintf("%s (%s) %d", class.Name, class.Subclass, class.Level))
			continue
		}
		classes = append(classes, fmt.Sprintf("%s %d", class.Name, class.Level))
	}
	description := strings.Join(classes, " / ")
	if description == "" {
		description = "No classes yet"
	}

	var scores strings.Builder
	for _, attr := range shared.Attributes {
		scores.WriteString(fmt.Sprintf("**%s** %d  ", attr.Short(), char.AbilityScores[attr]))
	}

	slots := make([]string, 0, len(char.Derived.SpellSlots))
	for _, slot := range char.Derived.SpellSlots {
		slots = append(slots, fmt.Sprintf("%s: %d", slot.Level, slot.Count))
	}
	slotText := strings.Join(slots, ", ")
	if slotText == "" {
		slotText = "None"
	}

	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       colorGreen,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Ability Scores", Value: strings.TrimSpace(scores.String())},
			{Name: "Level", Value: strconv.Itoa(char.Derived.TotalLevel), Inline: true},
			{Name: "Proficiency", Value: fmt.Sprintf("+%d", char.Derived.ProficiencyBonus), Inline: true},
			{Name: "Caster Level", Value: strconv.Itoa(char.Derived.SpellcasterLevel), Inline: true},
			{Name: "Spell Slots", Value: slotText},
			{
				Name: "Features",
				Value: fmt.Sprintf("Mighty Summoner: %s\nBear Spirit: %s",
					yesNo(char.ClassFeatures.MightySummoner), yesNo(char.ClassFeatures.BearSpiritActive)),
			},
		},
	}
}

func spellsEmbed(spells []catalog.SpellRecord) *discordgo.MessageEmbed {
	var sb strings.Builder
	for _, spell := range spells {
		sb.WriteString(fmt.Sprintf("**%s** (level %s)\n", spell.Name, spell.Level))
	}
	if sb.Len() == 0 {
		sb.WriteString("No summoning spells in the catalog.")
	}

	return &discordgo.MessageEmbed{
		Title:       "Summoning Spells",
		Description: sb.String(),
		Color:       colorBlue,
	}
}

// spellDetailEmbed groups the creatures by challenge rating, highest first
func spellDetailEmbed(detail *summoningService.SpellDetail) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       detail.Spell.Name,
		Description: fmt.Sprintf("Showing %d of %d creatures", len(detail.Creatures), detail.TotalCreatures),
		Color:       colorBlue,
	}

	byCR := make(map[string][]string)
	ratings := make(map[string]float64)
	for _, creature := range detail.Creatures {
		token := creature.ChallengeToken()
		byCR[token] = append(byCR[token], creature.Name)
		ratings[token] = creature.ChallengeRating()
	}

	tokens := make([]string, 0, len(byCR))
	for token := range byCR {
		tokens = append(tokens, token)
	}
	sort.Slice(tokens, func(a, b int) bool {
		return ratings[tokens[a]] > ratings[tokens[b]]
	})

	for _, token := range tokens {
		if len(embed.Fields) == maxFields {
			break
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("CR %s", token),
			Value: truncate(strings.Join(byCR[token], ", "), maxFieldLength),
		})
	}

	return embed
}

func creatureEmbed(detail *summoningService.CreatureDetail) *discordgo.MessageEmbed {
	c := detail.Creature

	hp := strconv.Itoa(detail.HPMax)
	if detail.HitDice != "" {
		hp = fmt.Sprintf("%d (%s)", detail.HPMax, detail.HitDice)
	}

	embed := &discordgo.MessageEmbed{
		Title:       c.Name,
		Description: c.Meta,
		Color:       colorBrown,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "AC", Value: orDash(c.ArmorClass), Inline: true},
			{Name: "HP", Value: hp, Inline: true},
			{Name: "CR", Value: orDash(c.ChallengeToken()), Inline: true},
			{Name: "Speed", Value: orDash(c.Speed)},
			{
				Name: "Abilities",
				Value: fmt.Sprintf("STR %s | DEX %s | CON %s\nINT %s | WIS %s | CHA %s",
					c.STR, c.DEX, c.CON, c.INT, c.WIS, c.CHA),
			},
		},
	}

	if c.Skills != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{Name: "Skills", Value: truncate(c.Skills, maxFieldLength)})
	}
	if c.Traits != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{Name: "Traits", Value: truncate(c.Traits, maxFieldLength)})
	}
	if c.Actions != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{Name: "Actions", Value: truncate(c.Actions, maxFieldLength)})
	}
	if c.ImageURL != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: c.ImageURL}
	}

	return embed
}

func rosterEmbed(title string, creatures []summon.SummonedCreature) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: title,
		Color: colorGreen,
	}

	for _, creature := range creatures {
		if len(embed.Fields) == maxFields {
			embed.Footer = &discordgo.MessageEmbedFooter{
				Text: fmt.Sprintf("%d more not shown", len(creatures)-maxFields),
			}
			break
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("%s `%s`", creature.Name, creature.ID),
			Value: fmt.Sprintf("HP %s | AC %s", hpText(creature), orDash(creature.ArmorClass)),
		})
	}

	return embed
}

func creatureLine(c summon.SummonedCreature) string {
	return fmt.Sprintf("**%s** `%s` HP %s", c.Name, c.ID, hpText(c))
}

func hpText(c summon.SummonedCreature) string {
	text := fmt.Sprintf("%d/%d", c.CurrentHP, c.HPMax)
	if c.TempHP > 0 {
		text += fmt.Sprintf(" (+%d temp)", c.TempHP)
	}
	return text
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-3]) + "..."
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
