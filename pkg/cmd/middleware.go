package cmd

import "context"

// Middleware wraps a command (e.g. logging, timing). The wrapped value is
// still a Command.
type Middleware func(Command) Command

// Apply wraps c with mws in order, so the last middleware ends up outermost.
func Apply(c Command, mws ...Middleware) Command {
	for _, mw := range mws {
		c = mw(c)
	}
	return c
}

// Wrap returns a command whose Run is replaced by run while Name and
// Description still come from c. Root recovers c.
func Wrap(c Command, run func(ctx context.Context, inv *Invocation) error) Command {
	return &wrapped{inner: c, run: run}
}

// Root strips every middleware layer and returns the command that was
// originally registered, so adapters can type-assert provider interfaces.
func Root(c Command) Command {
	for {
		w, ok := c.(*wrapped)
		if !ok {
			return c
		}
		c = w.inner
	}
}

type wrapped struct {
	inner Command
	run   func(ctx context.Context, inv *Invocation) error
}

func (w *wrapped) Name() string        { return w.inner.Name() }
func (w *wrapped) Description() string { return w.inner.Description() }

func (w *wrapped) Run(ctx context.Context, inv *Invocation) error {
	if w.run == nil {
		return w.inner.Run(ctx, inv)
	}
	return w.run(ctx, inv)
}
