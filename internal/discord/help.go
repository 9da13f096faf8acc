package discord

import (
	"strings"

	"github.com/bwmarrin/discordgo"
)

// Help lists slash usages as plain text.
func Help(defs []*discordgo.ApplicationCommand) *discordgo.InteractionResponse {
	return Message("Available commands: " + strings.Join(Usages(defs), ", "))
}

// Usages renders one "/name" entry per command, or one "/name choice" entry
// per choice of its first string option that has choices.
func Usages(defs []*discordgo.ApplicationCommand) []string {
	var out []string
	for _, d := range defs {
		if d == nil {
			continue
		}
		name := "/" + strings.ToLower(d.Name)

		var choices []*discordgo.ApplicationCommandOptionChoice
		for _, o := range d.Options {
			if o.Type == discordgo.ApplicationCommandOptionString && len(o.Choices) > 0 {
				choices = o.Choices
				break
			}
		}

		if len(choices) == 0 {
			out = append(out, name)
			continue
		}
		for _, ch := range choices {
			if v, ok := ch.Value.(string); ok {
				out = append(out, name+" "+v)
			}
		}
	}
	return out
}
