// cmd/register/main.go
package main

import (
	"log"
	"strings"

	"profile-bot/internal/command"
	"profile-bot/internal/config"
	"profile-bot/internal/discord"
	"profile-bot/internal/server"

	"github.com/bwmarrin/discordgo"
)

func main() {
	cfg, err := config.LoadRegister()
	if err != nil {
		log.Fatal(err)
	}

	session, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		log.Fatalf("[ERR] Failed to create Discord session: %v", err)
	}

	defs := command.Definitions(server.Commands(server.Deps{}))

	res, err := discord.SyncCommands(session, cfg.AppID, cfg.GuildID, defs)
	log.Printf("[INFO] Created: [%s] Deleted: [%s]", strings.Join(res.Created, ", "), strings.Join(res.Deleted, ", "))
	if err != nil {
		log.Fatalf("[ERR] Command sync incomplete: %v (failed: %s)", err, strings.Join(res.Failed, ", "))
	}
	log.Println("[INFO] Commands are up to date")
}
