package command

import (
	"errors"
	"fmt"
	"strings"

	"profile-bot/pkg/cmd"

	"github.com/bwmarrin/discordgo"
)

// SlashProvider describes how a command is registered with Discord.
type SlashProvider interface {
	SlashDefinition() *discordgo.ApplicationCommand
}

// Context is what the interaction webhook hands a command through
// cmd.Invocation.Data. A command answers by calling Respond exactly once.
type Context struct {
	Interaction *discordgo.Interaction
	Name        string
	Options     map[string]string

	response *discordgo.InteractionResponse
}

// NewContext flattens the top-level options of an application command
// interaction into name -> string value.
func NewContext(i *discordgo.Interaction) *Context {
	data := i.ApplicationCommandData()
	opts := make(map[string]string, len(data.Options))
	for _, o := range data.Options {
		if o == nil {
			continue
		}
		opts[strings.ToLower(o.Name)] = optionString(o.Value)
	}
	return &Context{
		Interaction: i,
		Name:        strings.ToLower(data.Name),
		Options:     opts,
	}
}

// Option returns a trimmed option value.
func (c *Context) Option(name string) string {
	return strings.TrimSpace(c.Options[strings.ToLower(name)])
}

func (c *Context) Respond(resp *discordgo.InteractionResponse) {
	c.response = resp
}

func (c *Context) Response() *discordgo.InteractionResponse {
	return c.response
}

// User returns whoever invoked the interaction: the member in guilds, the
// user in DMs.
func (c *Context) User() *discordgo.User {
	if c.Interaction == nil {
		return nil
	}
	if c.Interaction.Member != nil && c.Interaction.Member.User != nil {
		return c.Interaction.Member.User
	}
	return c.Interaction.User
}

var ErrWrongContext = errors.New("wrong context type")

// FromInvocation extracts the Discord context set by the webhook.
func FromInvocation(inv *cmd.Invocation) (*Context, error) {
	if inv == nil {
		return nil, ErrWrongContext
	}
	ctx, ok := inv.Data.(*Context)
	if !ok || ctx == nil {
		return nil, fmt.Errorf("%w: %T", ErrWrongContext, inv.Data)
	}
	return ctx, nil
}

// Definitions returns the slash definitions of every registered command,
// walking through middleware wrappers via cmd.Root.
func Definitions(reg *cmd.Registry) []*discordgo.ApplicationCommand {
	var defs []*discordgo.ApplicationCommand
	for _, c := range reg.GetAll() {
		slash, ok := cmd.Root(c).(SlashProvider)
		if !ok {
			continue
		}
		if def := slash.SlashDefinition(); def != nil {
			if def.Type == 0 {
				def.Type = discordgo.ChatApplicationCommand
			}
			defs = append(defs, def)
		}
	}
	return defs
}

func optionString(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	default:
		return fmt.Sprint(t)
	}
}
