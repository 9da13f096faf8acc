package discord

import (
	"github.com/bwmarrin/discordgo"
)

const (
	InfoColor      = 0x5865F2
	RobloxColor    = 0x00A2FF
	MinecraftColor = 0x3BA55D
)

// Plain-text soft failures. The platform expects a 200 acknowledgment for
// every recognized command, so these travel as regular channel messages.
const (
	TextGameNotSupported = "Game not supported."
	TextFetchFailed      = "Failed to fetch profile data."
)

// HTTP error bodies.
const (
	ErrUnknownCommand = "Unknown Command"
	ErrUnknownType    = "Unknown Type"
	ErrBadSignature   = "Bad request signature"
	ErrInternal       = "Internal server error"
)

// ErrorBody is the JSON body sent with every non-200 response.
func ErrorBody(msg string) map[string]string {
	return map[string]string{"error": msg}
}

// --- Interaction responses ---

// Pong acknowledges a PING interaction.
func Pong() *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{Type: discordgo.InteractionResponsePong}
}

// Message builds a public text reply.
func Message(content string) *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Content: content},
	}
}

// Embed builds a public embed reply with optional link buttons laid out in
// a single action row.
func Embed(embed *discordgo.MessageEmbed, buttons ...discordgo.Button) *discordgo.InteractionResponse {
	data := &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{embed},
	}
	if len(buttons) > 0 {
		row := discordgo.ActionsRow{}
		for _, b := range buttons {
			row.Components = append(row.Components, b)
		}
		data.Components = []discordgo.MessageComponent{row}
	}
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	}
}

// LinkButton is a button that opens url.
func LinkButton(label, url string) discordgo.Button {
	return discordgo.Button{
		Label: label,
		Style: discordgo.LinkButton,
		URL:   url,
	}
}

func GameNotSupported() *discordgo.InteractionResponse { return Message(TextGameNotSupported) }

func FetchFailed() *discordgo.InteractionResponse { return Message(TextFetchFailed) }

// Info describes the bot.
func Info(about string) *discordgo.InteractionResponse {
	return Embed(&discordgo.MessageEmbed{
		Title:       "About This Bot",
		Description: about,
		Color:       InfoColor,
	})
}
