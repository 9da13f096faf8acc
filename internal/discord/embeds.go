package discord

import (
	"fmt"
	"strings"

	"profile-bot/internal/profile/minecraft"
	"profile-bot/internal/profile/roblox"

	"github.com/bwmarrin/discordgo"
)

const fieldValueLimit = 1024

// RobloxProfile renders a Roblox profile with its worn items.
func RobloxProfile(p *roblox.Profile) *discordgo.InteractionResponse {
	description := p.Description
	if strings.TrimSpace(description) == "" {
		description = "No description"
	}

	embed := &discordgo.MessageEmbed{
		Title:       "Roblox Profile for @" + p.Name,
		URL:         p.ProfileURL(),
		Description: description,
		Color:       RobloxColor,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "User ID", Value: fmt.Sprint(p.UserID)},
			{Name: "Created", Value: orDash(p.Created)},
			{Name: "User's Wearing", Value: clamp(wornItems(p.Assets)), Inline: false},
		},
	}
	if p.AvatarURL != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: p.AvatarURL}
	}

	return Embed(embed, LinkButton("Complete Profile", p.ProfileURL()))
}

// MinecraftProfile renders a crafty.gg player record.
func MinecraftProfile(p *minecraft.Profile) *discordgo.InteractionResponse {
	skins := "Skins: None"
	if p.PreviewSkin != "" {
		skins = fmt.Sprintf("Skins: [View Current Skin](%s)", p.PreviewSkin)
	}
	capes := "Capes: None"
	if p.PreviewCape != "" {
		capes = fmt.Sprintf("Capes: [View Current Cape](%s)", p.PreviewCape)
	}

	embed := &discordgo.MessageEmbed{
		Title:     "Minecraft Profile for " + p.Name,
		URL:       p.PageURL,
		Color:     MinecraftColor,
		Thumbnail: &discordgo.MessageEmbedThumbnail{URL: p.SkinURL},
		Fields: []*discordgo.MessageEmbedField{
			{Name: "UUID", Value: "``" + p.UUID + "``"},
			{Name: "Textures", Value: skins + "\n" + capes, Inline: true},
			{
				Name: "Information",
				Value: fmt.Sprintf("Location: %s\nMonthly Views: %d\nLifetime Views: %d",
					p.Location, p.MonthlyViews, p.LifetimeViews),
			},
		},
	}

	return Embed(embed,
		LinkButton("Complete Profile", p.ProfileURL),
		LinkButton("Download Skin", p.DownloadSkin),
	)
}

func wornItems(assets []roblox.Asset) string {
	if len(assets) == 0 {
		return "Not wearing anything"
	}
	lines := make([]string, 0, len(assets))
	for _, a := range assets {
		lines = append(lines, fmt.Sprintf("%s - by %s", a.Name, a.CreatorName))
	}
	return strings.Join(lines, "\n")
}

// clamp keeps a field value within Discord's limit, cutting at a line
// boundary when possible.
func clamp(s string) string {
	if len([]rune(s)) <= fieldValueLimit {
		return s
	}
	r := []rune(s)[:fieldValueLimit-1]
	cut := string(r)
	if i := strings.LastIndex(cut, "\n"); i > 0 {
		cut = cut[:i]
	}
	return cut + "…"
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
