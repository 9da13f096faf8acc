package main

import (
	"bytes"
	"fmt"
	"os"
	"text/template"

	"profile-bot/internal/command"
	"profile-bot/internal/discord"
	"profile-bot/internal/server"

	"github.com/bwmarrin/discordgo"
)

const readme = `# profile-bot

Discord interaction webhook that shows the owner's Roblox and Minecraft profiles.

## Commands

{{.Commands}}
## Running

Set ` + "`DISCORD_PUBLIC_KEY`" + ` and start ` + "`cmd/webhook`" + `. Register the slash commands once with
` + "`cmd/register`" + ` (needs ` + "`DISCORD_TOKEN`" + ` and ` + "`DISCORD_APP_ID`" + `).
`

func main() {
	defs := command.Definitions(server.Commands(server.Deps{}))

	var buf bytes.Buffer
	for _, d := range defs {
		fmt.Fprintf(&buf, "* **`/%s`**\n  %s\n", d.Name, d.Description)
		for _, usage := range discord.Usages([]*discordgo.ApplicationCommand{d}) {
			if usage != "/"+d.Name {
				fmt.Fprintf(&buf, "  * `%s`\n", usage)
			}
		}
		buf.WriteString("\n")
	}

	tmpl, err := template.New("readme").Parse(readme)
	if err != nil {
		panic(err)
	}

	var out bytes.Buffer
	if err := tmpl.Execute(&out, map[string]any{"Commands": buf.String()}); err != nil {
		panic(err)
	}

	if err := os.WriteFile("README.md", out.Bytes(), 0644); err != nil {
		panic(err)
	}
}
