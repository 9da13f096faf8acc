package command

import (
	"context"

	"profile-bot/internal/discord"
	"profile-bot/pkg/cmd"

	"github.com/bwmarrin/discordgo"
)

type InfoCommand struct {
	About string
}

func (c *InfoCommand) Name() string        { return "info" }
func (c *InfoCommand) Description() string { return "Get an information about this bot." }

func (c *InfoCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
	}
}

func (c *InfoCommand) Run(ctx context.Context, inv *cmd.Invocation) error {
	slash, err := FromInvocation(inv)
	if err != nil {
		return err
	}
	slash.Respond(discord.Info(c.About))
	return nil
}
