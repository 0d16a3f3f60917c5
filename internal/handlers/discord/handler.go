package discord

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/druid-summons/internal/handlers/discord/utils"
	"github.com/KirkDiggler/druid-summons/internal/services"
	characterService "github.com/KirkDiggler/druid-summons/internal/services/character"
	summoningService "github.com/KirkDiggler/druid-summons/internal/services/summoning"
)

const (
	interactionTimeout = 10 * time.Second
	maxAutocomplete    = 25
)

// Handler handles all Discord interactions
type Handler struct {
	characterService characterService.Service
	summoningService summoningService.Service
	characterID      string
}

// HandlerConfig holds configuration for the Discord handler
type HandlerConfig struct {
	ServiceProvider *services.Provider // Required
	CharacterID     string             // Required
}

// NewHandler creates a new Discord handler
func NewHandler(cfg *HandlerConfig) *Handler {
	if cfg.ServiceProvider == nil {
		panic("service provider is required")
	}

	return &Handler{
		characterService: cfg.ServiceProvider.CharacterService,
		summoningService: cfg.ServiceProvider.SummoningService,
		characterID:      cfg.CharacterID,
	}
}

// RegisterCommands registers all slash commands with Discord
func (h *Handler) RegisterCommands(s *discordgo.Session, guildID string) error {
	for _, cmd := range Commands() {
		_, err := s.ApplicationCommandCreate(s.State.User.ID, guildID, cmd)
		if err != nil {
			return fmt.Errorf("failed to create command %s: %w", cmd.Name, err)
		}
		log.Printf("Registered command: %s", cmd.Name)
	}

	return nil
}

// HandleInteraction handles all Discord interactions
func (h *Handler) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx, cancel := context.WithTimeout(context.Background(), interactionTimeout)
	defer cancel()

	var resp *discordgo.InteractionResponse
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		resp = h.Respond(ctx, i)
	case discordgo.InteractionApplicationCommandAutocomplete:
		resp = h.Autocomplete(ctx, i)
	}

	if resp == nil {
		return
	}

	if err := s.InteractionRespond(i.Interaction, resp); err != nil {
		log.Printf("Failed to respond to interaction: %v", err)
	}
}

// Respond builds the reply to a /summons command. The channel is the session
// whose summons are tracked.
func (h *Handler) Respond(ctx context.Context, i *discordgo.InteractionCreate) *discordgo.InteractionResponse {
	if i.ApplicationCommandData().Name != CommandName {
		return nil
	}

	sessionID := i.ChannelID
	subcommand := utils.GetSubcommand(i)

	var (
		data *discordgo.InteractionResponseData
		err  error
	)

	switch subcommand {
	case "character":
		data, err = h.handleCharacter(ctx)
	case "spells":
		data, err = h.handleSpells(ctx)
	case "summonable":
		data, err = h.handleSummonable(ctx, i)
	case "creature":
		data, err = h.handleCreature(ctx, i)
	case "summon":
		data, err = h.handleSummon(ctx, i, sessionID)
	case "list":
		data, err = h.handleList(ctx, sessionID)
	case "hp":
		data, err = h.handleHP(ctx, i, sessionID)
	case "remove":
		data, err = h.handleRemove(ctx, i, sessionID)
	case "bear-spirit":
		data, err = h.handleBearSpirit(ctx, i, sessionID)
	case "end":
		data, err = h.handleEnd(ctx, sessionID)
	default:
		data = errorResponse(fmt.Sprintf("Unknown command: %s", subcommand))
	}

	if err != nil {
		log.Printf("Error handling /%s %s in channel %s: %v", CommandName, subcommand, sessionID, err)
		data = errorResponse(userMessage(err))
	}

	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	}
}

// Autocomplete suggests creature names while the user types
func (h *Handler) Autocomplete(ctx context.Context, i *discordgo.InteractionCreate) *discordgo.InteractionResponse {
	focused := utils.GetFocusedOption(i)
	if focused == nil {
		return nil
	}

	choices := []*discordgo.ApplicationCommandOptionChoice{}

	query, _ := focused.Value.(string)
	creatures, err := h.summoningService.SearchCreatures(ctx, query, "")
	if err != nil {
		log.Printf("Autocomplete search for %q failed: %v", query, err)
	}

	for _, creature := range creatures {
		if len(choices) == maxAutocomplete {
			break
		}
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  creature.Name,
			Value: creature.Name,
		})
	}

	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionApplicationCommandAutocompleteResult,
		Data: &discordgo.InteractionResponseData{
			Choices: choices,
		},
	}
}
