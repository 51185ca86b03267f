package discord

import (
	"log"

	"github.com/bwmarrin/discordgo"
)

// AckInteraction sends a deferred ephemeral response for the given interaction.
func AckInteraction(session *discordgo.Session, interaction *discordgo.Interaction) {
	err := session.InteractionRespond(interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Printf("Failed to ack interaction: %v", err)
	}
}

// SendFollowup creates an ephemeral followup message with the given content.
func SendFollowup(session *discordgo.Session, interaction *discordgo.Interaction, content string) {
	_, err := session.FollowupMessageCreate(interaction, true, &discordgo.WebhookParams{
		Content: content,
		Flags:   discordgo.MessageFlagsEphemeral,
	})
	if err != nil {
		log.Printf("Failed to send followup: %v", err)
	}
}
