package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/druid-summons/internal/domain/catalog"
	dnderr "github.com/KirkDiggler/druid-summons/internal/errors"
	"github.com/KirkDiggler/druid-summons/internal/handlers/discord/utils"
	summoningService "github.com/KirkDiggler/druid-summons/internal/services/summoning"
)

func errorResponse(message string) *discordgo.InteractionResponseData {
	return &discordgo.InteractionResponseData{
		Content: fmt.Sprintf("❌ %s", message),
		Flags:   discordgo.MessageFlagsEphemeral,
	}
}

func userMessage(err error) string {
	return dnderr.UserMessage(err)
}

func (h *Handler) handleCharacter(ctx context.Context) (*discordgo.InteractionResponseData, error) {
	char, err := h.characterService.Get(ctx, h.characterID)
	if err != nil {
		return nil, err
	}

	return &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{characterEmbed(char)},
	}, nil
}

func (h *Handler) handleSpells(ctx context.Context) (*discordgo.InteractionResponseData, error) {
	spells, err := h.summoningService.ListConjureSpells(ctx)
	if err != nil {
		return nil, err
	}

	return &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{spellsEmbed(spells)},
	}, nil
}

func (h *Handler) handleSummonable(ctx context.Context, i *discordgo.InteractionCreate) (*discordgo.InteractionResponseData, error) {
	filter := catalog.CreatureFilter{
		CR:    utils.GetStringOption(i, "cr"),
		Skill: utils.GetStringOption(i, "skill"),
		Trait: utils.GetStringOption(i, "trait"),
	}

	detail, err := h.summoningService.GetSpellDetail(ctx, utils.GetStringOption(i, "spell"), filter)
	if err != nil {
		return nil, err
	}

	return &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{spellDetailEmbed(detail)},
	}, nil
}

func (h *Handler) handleCreature(ctx context.Context, i *discordgo.InteractionCreate) (*discordgo.InteractionResponseData, error) {
	detail, err := h.summoningService.GetCreature(ctx, utils.GetStringOption(i, "name"))
	if err != nil {
		return nil, err
	}

	return &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{creatureEmbed(detail)},
	}, nil
}

func (h *Handler) handleSummon(ctx context.Context, i *discordgo.InteractionCreate, sessionID string) (*discordgo.InteractionResponseData, error) {
	input := &summoningService.SummonInput{
		SessionID:      sessionID,
		CreatureName:   utils.GetStringOption(i, "creature"),
		Quantity:       utils.GetIntOption(i, "quantity", 1),
		MightySummoner: utils.GetOptionalBool(i, "mighty"),
		CharacterID:    h.characterID,
	}
	input.Overrides.HitPoints = utils.GetOptionalString(i, "hp")
	input.Overrides.ArmorClass = utils.GetOptionalString(i, "ac")

	created, err := h.summoningService.Summon(ctx, input)
	if err != nil {
		return nil, err
	}

	if len(created) == 0 {
		return &discordgo.InteractionResponseData{Content: "Nothing was summoned."}, nil
	}

	return &discordgo.InteractionResponseData{
		Content: fmt.Sprintf("🐾 Summoned %d × **%s**", len(created), created[0].Name),
		Embeds:  []*discordgo.MessageEmbed{rosterEmbed("New Summons", created)},
	}, nil
}

func (h *Handler) handleList(ctx context.Context, sessionID string) (*discordgo.InteractionResponseData, error) {
	creatures, err := h.summoningService.ListSummoned(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if len(creatures) == 0 {
		return &discordgo.InteractionResponseData{
			Content: "Nothing is summoned here. Use `/summons summon` to call something up.",
		}, nil
	}

	return &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{rosterEmbed("Summoned Creatures", creatures)},
	}, nil
}

func (h *Handler) handleHP(ctx context.Context, i *discordgo.InteractionCreate, sessionID string) (*discordgo.InteractionResponseData, error) {
	input := &summoningService.UpdateHPInput{
		SessionID:  sessionID,
		CreatureID: utils.GetStringOption(i, "id"),
		CurrentHP:  utils.GetOptionalString(i, "current"),
		TempHP:     utils.GetOptionalString(i, "temp"),
	}
	if input.CurrentHP == nil && input.TempHP == nil {
		return errorResponse("Give a current and/or temp value."), nil
	}

	updated, err := h.summoningService.UpdateHP(ctx, input)
	if err != nil {
		return nil, err
	}

	return &discordgo.InteractionResponseData{
		Content: fmt.Sprintf("❤️ %s", creatureLine(*updated)),
	}, nil
}

func (h *Handler) handleRemove(ctx context.Context, i *discordgo.InteractionCreate, sessionID string) (*discordgo.InteractionResponseData, error) {
	id := utils.GetStringOption(i, "id")
	if err := h.summoningService.Remove(ctx, sessionID, id); err != nil {
		return nil, err
	}

	return &discordgo.InteractionResponseData{
		Content: fmt.Sprintf("💨 Dismissed `%s`", id),
	}, nil
}

func (h *Handler) handleBearSpirit(ctx context.Context, i *discordgo.InteractionCreate, sessionID string) (*discordgo.InteractionResponseData, error) {
	active := false
	if value := utils.GetOptionalBool(i, "active"); value != nil {
		active = *value
	}

	result, err := h.summoningService.ToggleBearSpirit(ctx, &summoningService.BearSpiritInput{
		SessionID:   sessionID,
		CharacterID: h.characterID,
		Active:      active,
	})
	if err != nil {
		return nil, err
	}

	if !result.Active {
		return &discordgo.InteractionResponseData{
			Content: "🐻 Bear Spirit dismissed. Temporary HP already granted stays.",
		}, nil
	}

	data := &discordgo.InteractionResponseData{
		Content: fmt.Sprintf("🐻 Bear Spirit grants %d temporary HP to each creature", result.TempHP),
	}
	if len(result.Creatures) > 0 {
		data.Embeds = []*discordgo.MessageEmbed{rosterEmbed("Summoned Creatures", result.Creatures)}
	}
	return data, nil
}

func (h *Handler) handleEnd(ctx context.Context, sessionID string) (*discordgo.InteractionResponseData, error) {
	if err := h.summoningService.EndSession(ctx, sessionID); err != nil {
		return nil, err
	}

	return &discordgo.InteractionResponseData{
		Content: "✨ All summoned creatures in this channel are dismissed.",
	}, nil
}
