package command

import (
	"context"

	"profile-bot/internal/discord"
	"profile-bot/pkg/cmd"

	"github.com/bwmarrin/discordgo"
)

type HelpCommand struct {
	Registry *cmd.Registry
}

func (c *HelpCommand) Name() string        { return "help" }
func (c *HelpCommand) Description() string { return "Get a list of commands available." }

func (c *HelpCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
	}
}

func (c *HelpCommand) Run(ctx context.Context, inv *cmd.Invocation) error {
	slash, err := FromInvocation(inv)
	if err != nil {
		return err
	}
	slash.Respond(discord.Help(Definitions(c.Registry)))
	return nil
}
