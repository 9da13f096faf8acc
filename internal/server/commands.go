package server

import (
	"profile-bot/internal/command"
	"profile-bot/internal/middleware"
	"profile-bot/pkg/cmd"
)

// Deps are the collaborators the built-in commands need.
type Deps struct {
	Roblox            command.RobloxFetcher
	Minecraft         command.MinecraftFetcher
	RobloxUsername    string
	MinecraftUsername string
	About             string
}

// Commands builds the registry served by the webhook. Every command is
// wrapped with the response check and the command logger.
func Commands(d Deps) *cmd.Registry {
	reg := cmd.NewRegistry()

	register := func(c cmd.Command) {
		reg.Register(cmd.Apply(c,
			middleware.WithResponseCheck(),
			middleware.WithCommandLogger(),
		))
	}

	register(&command.HelpCommand{Registry: reg})
	register(&command.InfoCommand{About: d.About})
	register(&command.ProfileCommand{
		Roblox:            d.Roblox,
		Minecraft:         d.Minecraft,
		RobloxUsername:    d.RobloxUsername,
		MinecraftUsername: d.MinecraftUsername,
	})

	return reg
}
