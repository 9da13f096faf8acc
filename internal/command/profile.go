package command

import (
	"context"
	"log"
	"strings"

	"profile-bot/internal/discord"
	"profile-bot/internal/profile"
	"profile-bot/internal/profile/minecraft"
	"profile-bot/internal/profile/roblox"
	"profile-bot/pkg/cmd"

	"github.com/bwmarrin/discordgo"
)

type RobloxFetcher interface {
	Fetch(ctx context.Context, username string) (*roblox.Profile, error)
}

type MinecraftFetcher interface {
	Fetch(ctx context.Context, username string) (*minecraft.Profile, error)
}

// ProfileCommand shows the configured owner's profile for one game.
type ProfileCommand struct {
	Roblox            RobloxFetcher
	Minecraft         MinecraftFetcher
	RobloxUsername    string
	MinecraftUsername string
}

func (c *ProfileCommand) Name() string        { return "profile" }
func (c *ProfileCommand) Description() string { return "Fetch the Developer's Game Profile." }

func (c *ProfileCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "game",
				Description: "Game platform",
				Required:    true,
				Choices: []*discordgo.ApplicationCommandOptionChoice{
					{Name: "Roblox", Value: roblox.Game},
					{Name: "Minecraft", Value: minecraft.Game},
				},
			},
		},
	}
}

func (c *ProfileCommand) Run(ctx context.Context, inv *cmd.Invocation) error {
	slash, err := FromInvocation(inv)
	if err != nil {
		return err
	}

	game := strings.ToLower(slash.Option("game"))

	switch game {
	case roblox.Game:
		p, err := c.Roblox.Fetch(ctx, c.RobloxUsername)
		if err != nil {
			slash.Respond(fetchFailed(game, err))
			return nil
		}
		slash.Respond(discord.RobloxProfile(p))

	case minecraft.Game:
		p, err := c.Minecraft.Fetch(ctx, c.MinecraftUsername)
		if err != nil {
			slash.Respond(fetchFailed(game, err))
			return nil
		}
		slash.Respond(discord.MinecraftProfile(p))

	default:
		log.Printf("[INFO] Unsupported game requested: %q", game)
		slash.Respond(discord.GameNotSupported())
	}

	return nil
}

func fetchFailed(game string, err error) *discordgo.InteractionResponse {
	log.Printf("[ERR] Failed to fetch %s profile (reason=%s): %v", game, profile.ReasonOf(err), err)
	return discord.FetchFailed()
}
