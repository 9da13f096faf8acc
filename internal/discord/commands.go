package discord

import (
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/bwmarrin/discordgo"
)

// CommandAPI is the part of *discordgo.Session used to manage application
// commands.
type CommandAPI interface {
	ApplicationCommands(appID, guildID string, options ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error)
	ApplicationCommandCreate(appID, guildID string, cmd *discordgo.ApplicationCommand, options ...discordgo.RequestOption) (*discordgo.ApplicationCommand, error)
	ApplicationCommandDelete(appID, guildID, cmdID string, options ...discordgo.RequestOption) error
}

// SyncResult reports what SyncCommands changed.
type SyncResult struct {
	Created []string
	Deleted []string
	Failed  []string
}

// SyncCommands makes the remote command set (global when guildID is empty)
// match defs: deletes obsolete commands and (re)creates those whose
// definition differs from the remote one.
func SyncCommands(api CommandAPI, appID, guildID string, defs []*discordgo.ApplicationCommand) (SyncResult, error) {
	var res SyncResult

	remote, err := api.ApplicationCommands(appID, guildID)
	if err != nil {
		return res, fmt.Errorf("list commands: %w", err)
	}
	remoteByName := make(map[string]*discordgo.ApplicationCommand, len(remote))
	for _, c := range remote {
		remoteByName[c.Name] = c
	}

	localNames := make(map[string]struct{}, len(defs))
	for _, d := range defs {
		localNames[d.Name] = struct{}{}
	}

	for name, rc := range remoteByName {
		if _, exists := localNames[name]; exists {
			continue
		}
		log.Printf("[INFO] [%s] Deleting obsolete command: %s", scope(guildID), name)
		if err := api.ApplicationCommandDelete(appID, guildID, rc.ID); err != nil {
			log.Printf("[ERR] [%s] Failed to delete %s: %v", scope(guildID), name, err)
			res.Failed = append(res.Failed, name)
			continue
		}
		res.Deleted = append(res.Deleted, name)
	}

	for _, d := range defs {
		if d.Type == 0 {
			d.Type = discordgo.ChatApplicationCommand
		}
		if rc, ok := remoteByName[d.Name]; ok && hashCommand(rc) == hashCommand(d) {
			continue
		}
		if _, err := api.ApplicationCommandCreate(appID, guildID, d); err != nil {
			log.Printf("[ERR] [%s] Failed to register %s: %v", scope(guildID), d.Name, err)
			res.Failed = append(res.Failed, d.Name)
		} else {
			log.Printf("[INFO] [%s] Registered: %s", scope(guildID), d.Name)
			res.Created = append(res.Created, d.Name)
		}
		time.Sleep(25 * time.Millisecond) // stay well under Discord's rate limit
	}

	sort.Strings(res.Deleted)
	if len(res.Failed) > 0 {
		return res, fmt.Errorf("%d command(s) failed to sync", len(res.Failed))
	}
	return res, nil
}

func scope(guildID string) string {
	if guildID == "" {
		return "global"
	}
	return guildID
}

// hashCommand returns a deterministic SHA-1 of a command's stable fields.
func hashCommand(c *discordgo.ApplicationCommand) string {
	typ := c.Type
	if typ == 0 {
		typ = discordgo.ChatApplicationCommand
	}
	stable := map[string]interface{}{
		"name":        c.Name,
		"description": c.Description,
		"type":        typ,
	}
	if len(c.Options) > 0 {
		stable["options"] = normalizeOptions(c.Options)
	}
	data, _ := json.Marshal(stable)
	sum := sha1.Sum(data)
	return fmt.Sprintf("%x", sum)
}

func normalizeOptions(opts []*discordgo.ApplicationCommandOption) []map[string]interface{} {
	out := make([]map[string]interface{}, len(opts))
	for i, o := range opts {
		entry := map[string]interface{}{
			"name":        o.Name,
			"description": o.Description,
			"type":        o.Type,
			"required":    o.Required,
		}
		if len(o.Choices) > 0 {
			choices := make([]map[string]interface{}, len(o.Choices))
			for j, ch := range o.Choices {
				choices[j] = map[string]interface{}{"name": ch.Name, "value": ch.Value}
			}
			entry["choices"] = choices
		}
		if len(o.Options) > 0 {
			entry["options"] = normalizeOptions(o.Options)
		}
		out[i] = entry
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i]["name"].(string) < out[j]["name"].(string)
	})
	return out
}
