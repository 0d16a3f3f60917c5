package discord

import (
	"log"
	"runtime/debug"

	"github.com/bwmarrin/discordgo"
)

// RecoverMiddleware wraps handler functions to recover from panics
func RecoverMiddleware(handlerName string, handler func(*discordgo.Session, *discordgo.InteractionCreate)) func(*discordgo.Session, *discordgo.InteractionCreate) {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("PANIC in %s handler: %v\nStack trace:\n%s", handlerName, r, debug.Stack())
				respondWithError(s, i, "An unexpected error occurred.")
			}
		}()

		handler(s, i)
	}
}

// respondWithError sends an ephemeral error, falling back to a followup when
// the interaction was already answered
func respondWithError(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	data := errorResponse(message)

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
	if err == nil {
		return
	}

	_, err = s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
		Content: data.Content,
		Flags:   data.Flags,
	})
	if err != nil {
		log.Printf("Failed to send error response to user: %s", message)
	}
}
