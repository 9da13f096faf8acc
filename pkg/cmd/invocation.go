// Package cmd provides a transport-agnostic command core: a command is something
// with a name, description, and Run(ctx, invocation). How it is registered and
// dispatched (Discord interaction webhook, CLI) is defined by adapters that wrap this.
package cmd

import "context"

// Invocation carries the minimal input any command runner can pass: arguments
// and an opaque payload. Adapters set Data to their context (e.g. the decoded
// Discord interaction plus a response slot).
type Invocation struct {
	Args []string
	Data interface{}
}

// Command is the universal contract: identity plus execution. Option parsing
// and transport-specific registration stay in adapters.
type Command interface {
	Name() string
	Description() string
	Run(ctx context.Context, inv *Invocation) error
}
