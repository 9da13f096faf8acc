package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
)

type fakeCommandAPI struct {
	remote  []*discordgo.ApplicationCommand
	created []string
	deleted []string
}

func (f *fakeCommandAPI) ApplicationCommands(appID, guildID string, options ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error) {
	return f.remote, nil
}

func (f *fakeCommandAPI) ApplicationCommandCreate(appID, guildID string, cmd *discordgo.ApplicationCommand, options ...discordgo.RequestOption) (*discordgo.ApplicationCommand, error) {
	f.created = append(f.created, cmd.Name)
	return cmd, nil
}

func (f *fakeCommandAPI) ApplicationCommandDelete(appID, guildID, cmdID string, options ...discordgo.RequestOption) error {
	f.deleted = append(f.deleted, cmdID)
	return nil
}

func TestSyncCommands(t *testing.T) {
	unchanged := &discordgo.ApplicationCommand{Name: "help", Description: "Get a list of commands available."}
	api := &fakeCommandAPI{remote: []*discordgo.ApplicationCommand{
		{ID: "1", Name: "help", Description: "Get a list of commands available.", Type: discordgo.ChatApplicationCommand},
		{ID: "2", Name: "info", Description: "old text", Type: discordgo.ChatApplicationCommand},
		{ID: "3", Name: "purge", Description: "gone", Type: discordgo.ChatApplicationCommand},
	}}

	defs := []*discordgo.ApplicationCommand{
		unchanged,
		{Name: "info", Description: "Get an information about this bot."},
		{Name: "profile", Description: "Fetch the Developer's Game Profile."},
	}

	res, err := SyncCommands(api, "app", "", defs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(api.deleted) != 1 || api.deleted[0] != "3" {
		t.Errorf("expected obsolete command to be deleted, got %v", api.deleted)
	}
	if len(api.created) != 2 || api.created[0] != "info" || api.created[1] != "profile" {
		t.Errorf("expected changed and new commands to be created, got %v", api.created)
	}
	if len(res.Created) != 2 || len(res.Deleted) != 1 {
		t.Errorf("unexpected result %+v", res)
	}
}
