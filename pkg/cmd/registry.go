package cmd

import (
	"sort"
	"strings"
)

// Registry stores commands by lower-cased name. It does not perform dispatch;
// each adapter looks up commands and invokes them with its own context.
// A registry is filled once at startup and only read afterwards.
type Registry struct {
	commands map[string]Command
}

// NewRegistry returns a registry holding cmds.
func NewRegistry(cmds ...Command) *Registry {
	r := &Registry{commands: make(map[string]Command, len(cmds))}
	for _, c := range cmds {
		r.Register(c)
	}
	return r
}

// Register adds a command, replacing any command with the same name.
func (r *Registry) Register(c Command) {
	r.commands[strings.ToLower(c.Name())] = c
}

// Get returns the command with the given name, ignoring case, or nil.
func (r *Registry) Get(name string) Command {
	return r.commands[strings.ToLower(strings.TrimSpace(name))]
}

// GetAll returns all registered commands, sorted by name.
func (r *Registry) GetAll() []Command {
	list := make([]Command, 0, len(r.commands))
	for _, c := range r.commands {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool {
		return strings.ToLower(list[i].Name()) < strings.ToLower(list[j].Name())
	})
	return list
}
